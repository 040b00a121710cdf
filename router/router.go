// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/mindful/handlers"
	"github.com/danielhkuo/mindful/middleware"
	"github.com/danielhkuo/mindful/sentiment"
)

func NewRouter(db *sql.DB, analyzer *sentiment.Analyzer) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	journalHandler := handlers.NewJournalHandler(db, analyzer)
	habitHandler := handlers.NewHabitHandler(db)
	moodHandler := handlers.NewMoodHandler(db)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Journal
	mux.HandleFunc("POST /journal", middleware.WithLogging(journalHandler.CreateEntry))
	mux.HandleFunc("GET /journal", middleware.WithLogging(journalHandler.ListEntries))
	mux.HandleFunc("GET /journal/{id}", middleware.WithLogging(journalHandler.GetEntry))
	mux.HandleFunc("DELETE /journal/{id}", middleware.WithLogging(journalHandler.DeleteEntry))
	mux.HandleFunc("POST /analyze", middleware.WithLogging(journalHandler.Analyze))

	// Habits
	mux.HandleFunc("GET /habits", middleware.WithLogging(habitHandler.ListHabits))
	mux.HandleFunc("POST /habits", middleware.WithLogging(habitHandler.CreateHabit))
	mux.HandleFunc("POST /habits/seed", middleware.WithLogging(habitHandler.SeedDefaults))
	mux.HandleFunc("GET /habits/{id}", middleware.WithLogging(habitHandler.GetHabit))
	mux.HandleFunc("PUT /habits/{id}", middleware.WithLogging(habitHandler.UpdateHabit))
	mux.HandleFunc("DELETE /habits/{id}", middleware.WithLogging(habitHandler.DeleteHabit))
	mux.HandleFunc("POST /habits/{id}/toggle", middleware.WithLogging(habitHandler.ToggleCompletion))

	// Moods
	mux.HandleFunc("GET /moods", middleware.WithLogging(moodHandler.ListMoods))
	mux.HandleFunc("GET /moods/{date}", middleware.WithLogging(moodHandler.GetMood))
	mux.HandleFunc("PUT /moods/{date}", middleware.WithLogging(moodHandler.SaveMood))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("mindful API v1"))
	})

	return mux
}
