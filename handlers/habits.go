// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/mindful/middleware"
	"github.com/danielhkuo/mindful/models"
	"github.com/danielhkuo/mindful/store"
)

type HabitHandler struct {
	store *store.Store
}

func NewHabitHandler(db *sql.DB) *HabitHandler {
	return &HabitHandler{store: store.New(db)}
}

// ListHabits handles GET /habits
func (h *HabitHandler) ListHabits(w http.ResponseWriter, r *http.Request) {
	habits, err := h.store.ListHabits(r.Context())
	if err != nil {
		writeStoreError(w, err, "", "list habits")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, habits)
}

// CreateHabit handles POST /habits
func (h *HabitHandler) CreateHabit(w http.ResponseWriter, r *http.Request) {
	var req models.HabitRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	habit, err := h.store.CreateHabit(r.Context(), models.Habit{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
	})
	if err != nil {
		writeStoreError(w, err, "", "create habit")
		return
	}

	slog.Info("habit created", "habit_id", habit.ID, "name", habit.Name)

	middleware.JSONResponse(w, http.StatusCreated, habit)
}

// GetHabit handles GET /habits/{id}
func (h *HabitHandler) GetHabit(w http.ResponseWriter, r *http.Request) {
	habit, err := h.store.GetHabit(r.Context(), r.PathValue("id"))
	if err != nil {
		writeStoreError(w, err, "Habit not found", "query habit")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, habit)
}

// UpdateHabit handles PUT /habits/{id}
func (h *HabitHandler) UpdateHabit(w http.ResponseWriter, r *http.Request) {
	habitID := r.PathValue("id")

	var req models.HabitRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	habit, err := h.store.UpdateHabit(r.Context(), models.Habit{
		ID:          habitID,
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
	})
	if err != nil {
		writeStoreError(w, err, "Habit not found", "update habit")
		return
	}

	slog.Info("habit updated", "habit_id", habitID)

	middleware.JSONResponse(w, http.StatusOK, habit)
}

// DeleteHabit handles DELETE /habits/{id}
func (h *HabitHandler) DeleteHabit(w http.ResponseWriter, r *http.Request) {
	habitID := r.PathValue("id")

	if err := h.store.DeleteHabit(r.Context(), habitID); err != nil {
		writeStoreError(w, err, "Habit not found", "delete habit")
		return
	}

	slog.Info("habit deleted", "habit_id", habitID)
	w.WriteHeader(http.StatusNoContent)
}

// ToggleCompletion handles POST /habits/{id}/toggle
// An empty or absent date means today (UTC).
func (h *HabitHandler) ToggleCompletion(w http.ResponseWriter, r *http.Request) {
	habitID := r.PathValue("id")

	var req models.ToggleCompletionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil && !errors.Is(err, io.EOF) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Date == "" {
		req.Date = time.Now().UTC().Format(models.DateLayout)
	}

	completed, err := h.store.ToggleHabitCompletion(r.Context(), habitID, req.Date)
	if err != nil {
		writeStoreError(w, err, "Habit not found", "toggle habit completion")
		return
	}

	slog.Info("habit completion toggled", "habit_id", habitID, "date", req.Date, "completed", completed)

	middleware.JSONResponse(w, http.StatusOK, models.ToggleCompletionResponse{
		HabitID:   habitID,
		Date:      req.Date,
		Completed: completed,
	})
}

// SeedDefaults handles POST /habits/seed
func (h *HabitHandler) SeedDefaults(w http.ResponseWriter, r *http.Request) {
	inserted, err := h.store.SeedDefaultHabits(r.Context())
	if err != nil {
		writeStoreError(w, err, "", "seed default habits")
		return
	}

	if inserted > 0 {
		slog.Info("default habits seeded", "count", inserted)
	}

	middleware.JSONResponse(w, http.StatusOK, models.SeedHabitsResponse{Inserted: inserted})
}
