package models

import "time"

// Emotion constants
const (
	EmotionHappy   = "happy"
	EmotionCalm    = "calm"
	EmotionSad     = "sad"
	EmotionAnxious = "anxious"
	EmotionAngry   = "angry"
	EmotionNeutral = "neutral"
)

// Emotions lists every label the analyzer and mood log accept.
var Emotions = []string{
	EmotionHappy,
	EmotionCalm,
	EmotionSad,
	EmotionAnxious,
	EmotionAngry,
	EmotionNeutral,
}

// IsValidEmotion reports whether e is one of Emotions.
func IsValidEmotion(e string) bool {
	for _, v := range Emotions {
		if v == e {
			return true
		}
	}
	return false
}

// Habit category constants
const (
	CategorySelfCare     = "self-care"
	CategoryMindfulness  = "mindfulness"
	CategoryPhysical     = "physical"
	CategorySocial       = "social"
	CategoryProductivity = "productivity"
	CategoryOther        = "other"
)

var Categories = []string{
	CategorySelfCare,
	CategoryMindfulness,
	CategoryPhysical,
	CategorySocial,
	CategoryProductivity,
	CategoryOther,
}

func IsValidCategory(c string) bool {
	for _, v := range Categories {
		if v == c {
			return true
		}
	}
	return false
}

// Mood intensity bounds (inclusive)
const (
	MinIntensity = 1
	MaxIntensity = 10
)

// DateLayout is the calendar-day format used for moods and habit completions.
const DateLayout = "2006-01-02"

// Request types

type CreateJournalEntryRequest struct {
	Content string `json:"content"`
}

type AnalyzeRequest struct {
	Content string `json:"content"`
}

type HabitRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

type ToggleCompletionRequest struct {
	Date string `json:"date"`
}

type MoodRequest struct {
	Emotion   string `json:"emotion"`
	Intensity int    `json:"intensity"`
	Notes     string `json:"notes"`
}

// Response types

type AnalyzeResponse struct {
	Emotion  string `json:"emotion"`
	Analysis string `json:"analysis"`
}

type ToggleCompletionResponse struct {
	HabitID   string `json:"habit_id"`
	Date      string `json:"date"`
	Completed bool   `json:"completed"`
}

type SeedHabitsResponse struct {
	Inserted int `json:"inserted"`
}

// Domain types

type JournalEntry struct {
	ID       string    `json:"id"`
	Content  string    `json:"content"`
	Emotion  string    `json:"emotion"`
	Analysis string    `json:"analysis"`
	Date     time.Time `json:"date"`
}

type Habit struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	Category       string    `json:"category"`
	CreatedAt      time.Time `json:"created_at"`
	CompletedDates []string  `json:"completed_dates"` // YYYY-MM-DD, ascending
}

type MoodEntry struct {
	ID        string `json:"id"`
	Date      string `json:"date"` // YYYY-MM-DD, unique
	Emotion   string `json:"emotion"`
	Intensity int    `json:"intensity"`
	Notes     string `json:"notes"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
