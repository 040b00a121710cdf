// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Mindful API.

# Handler Types

Each handler is a struct built on a store.Store:

  - JournalHandler: journal entries and ad-hoc sentiment analysis
  - HabitHandler: habits, completions and default seeding
  - MoodHandler: one mood entry per day

Handlers are created via constructor functions that accept *sql.DB:

	journalHandler := handlers.NewJournalHandler(db, analyzer)
	habitHandler := handlers.NewHabitHandler(db)

# Journal

	POST   /journal       → CreateEntry (analyzes, then saves)
	GET    /journal       → ListEntries (newest first)
	GET    /journal/{id}  → GetEntry
	DELETE /journal/{id}  → DeleteEntry
	POST   /analyze       → Analyze (nothing stored)

Sentiment analysis never fails a request. When the model is unreachable or
replies with something unusable, the entry is saved as "neutral" with a
fixed fallback analysis.

# Habits

	GET    /habits              → ListHabits (with completed_dates)
	POST   /habits              → CreateHabit
	GET    /habits/{id}         → GetHabit
	PUT    /habits/{id}         → UpdateHabit
	DELETE /habits/{id}         → DeleteHabit
	POST   /habits/{id}/toggle  → ToggleCompletion
	POST   /habits/seed         → SeedDefaults (only when no habits exist)

# Moods

	GET /moods         → ListMoods (oldest first)
	GET /moods/{date}  → GetMood
	PUT /moods/{date}  → SaveMood (upsert by date)

# Errors

store.ErrNotFound maps to 404, store.ErrInvalid to 400, anything else to 500.
*/
package handlers
