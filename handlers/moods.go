// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/mindful/middleware"
	"github.com/danielhkuo/mindful/models"
	"github.com/danielhkuo/mindful/store"
)

type MoodHandler struct {
	store *store.Store
}

func NewMoodHandler(db *sql.DB) *MoodHandler {
	return &MoodHandler{store: store.New(db)}
}

// ListMoods handles GET /moods
func (h *MoodHandler) ListMoods(w http.ResponseWriter, r *http.Request) {
	entries, err := h.store.ListMoodEntries(r.Context())
	if err != nil {
		writeStoreError(w, err, "", "list mood entries")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, entries)
}

// GetMood handles GET /moods/{date}
func (h *MoodHandler) GetMood(w http.ResponseWriter, r *http.Request) {
	entry, err := h.store.GetMoodEntry(r.Context(), r.PathValue("date"))
	if err != nil {
		writeStoreError(w, err, "No mood logged for this date", "query mood entry")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, entry)
}

// SaveMood handles PUT /moods/{date}
// Creates the day's mood or replaces it.
func (h *MoodHandler) SaveMood(w http.ResponseWriter, r *http.Request) {
	date := r.PathValue("date")

	var req models.MoodRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	entry, err := h.store.SaveMoodEntry(r.Context(), models.MoodEntry{
		Date:      date,
		Emotion:   req.Emotion,
		Intensity: req.Intensity,
		Notes:     req.Notes,
	})
	if err != nil {
		writeStoreError(w, err, "", "save mood entry")
		return
	}

	slog.Info("mood saved", "date", entry.Date, "emotion", entry.Emotion, "intensity", entry.Intensity)

	middleware.JSONResponse(w, http.StatusOK, entry)
}
