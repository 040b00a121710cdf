// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - CreateJournalEntryRequest: content
  - AnalyzeRequest: content
  - HabitRequest: name, description, category
  - ToggleCompletionRequest: date
  - MoodRequest: emotion, intensity, notes

# Response Types

  - AnalyzeResponse: emotion, analysis
  - ToggleCompletionResponse: habit_id, date, completed
  - SeedHabitsResponse: inserted
  - ErrorResponse: error, message

# Domain Types

  - JournalEntry: free-text entry with its classified emotion and analysis
  - Habit: tracked habit plus the days it was completed
  - MoodEntry: one mood log per calendar day

# Constants

Emotions (the only labels the analyzer may return):

	happy, calm, sad, anxious, angry, neutral

Habit categories:

	self-care, mindfulness, physical, social, productivity, other

Dates for moods and habit completions use DateLayout ("2006-01-02").
Mood intensity is bounded by MinIntensity and MaxIntensity.
*/
package models
