// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/danielhkuo/mindful/middleware"
	"github.com/danielhkuo/mindful/models"
	"github.com/danielhkuo/mindful/sentiment"
	"github.com/danielhkuo/mindful/store"
)

type JournalHandler struct {
	store    *store.Store
	analyzer *sentiment.Analyzer
}

func NewJournalHandler(db *sql.DB, analyzer *sentiment.Analyzer) *JournalHandler {
	return &JournalHandler{store: store.New(db), analyzer: analyzer}
}

// writeStoreError maps store errors to HTTP responses
func writeStoreError(w http.ResponseWriter, err error, notFound, action string) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, notFound)
	case errors.Is(err, store.ErrInvalid):
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
	default:
		slog.Error("failed to "+action, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
	}
}

// CreateEntry handles POST /journal
// The entry is analyzed before it is saved; analysis failures store the neutral fallback.
func (h *JournalHandler) CreateEntry(w http.ResponseWriter, r *http.Request) {
	var req models.CreateJournalEntryRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if strings.TrimSpace(req.Content) == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "content is required")
		return
	}

	result := h.analyzer.Analyze(r.Context(), req.Content)

	entry, err := h.store.SaveJournalEntry(r.Context(), models.JournalEntry{
		Content:  req.Content,
		Emotion:  result.Emotion,
		Analysis: result.Analysis,
	})
	if err != nil {
		writeStoreError(w, err, "", "save journal entry")
		return
	}

	slog.Info("journal entry saved", "entry_id", entry.ID, "emotion", entry.Emotion)

	middleware.JSONResponse(w, http.StatusCreated, entry)
}

// ListEntries handles GET /journal
func (h *JournalHandler) ListEntries(w http.ResponseWriter, r *http.Request) {
	entries, err := h.store.ListJournalEntries(r.Context())
	if err != nil {
		writeStoreError(w, err, "", "list journal entries")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, entries)
}

// GetEntry handles GET /journal/{id}
func (h *JournalHandler) GetEntry(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "id is required")
		return
	}

	entry, err := h.store.GetJournalEntry(r.Context(), id)
	if err != nil {
		writeStoreError(w, err, "Journal entry not found", "query journal entry")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, entry)
}

// DeleteEntry handles DELETE /journal/{id}
func (h *JournalHandler) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "id is required")
		return
	}

	if err := h.store.DeleteJournalEntry(r.Context(), id); err != nil {
		writeStoreError(w, err, "Journal entry not found", "delete journal entry")
		return
	}

	slog.Info("journal entry deleted", "entry_id", id)
	w.WriteHeader(http.StatusNoContent)
}

// Analyze handles POST /analyze
// Runs sentiment analysis without storing anything.
func (h *JournalHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req models.AnalyzeRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if strings.TrimSpace(req.Content) == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "content is required")
		return
	}

	result := h.analyzer.Analyze(r.Context(), req.Content)

	middleware.JSONResponse(w, http.StatusOK, models.AnalyzeResponse{
		Emotion:  result.Emotion,
		Analysis: result.Analysis,
	})
}
