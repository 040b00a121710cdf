// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/danielhkuo/mindful/auth"
	"github.com/danielhkuo/mindful/models"
)

// SaveJournalEntry inserts entry and returns the stored row.
// A missing ID or date is filled in.
func (s *Store) SaveJournalEntry(ctx context.Context, entry models.JournalEntry) (models.JournalEntry, error) {
	if strings.TrimSpace(entry.Content) == "" {
		return models.JournalEntry{}, fmt.Errorf("%w: content is required", ErrInvalid)
	}
	if err := validateEmotion(entry.Emotion); err != nil {
		return models.JournalEntry{}, err
	}
	if entry.ID == "" {
		entry.ID = auth.GenerateID()
	} else if !auth.IsValidID(entry.ID) {
		return models.JournalEntry{}, fmt.Errorf("%w: id must be a UUID", ErrInvalid)
	}
	if entry.Date.IsZero() {
		entry.Date = s.now()
	}
	entry.Date = timestamp(entry.Date)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO journal_entries (id, content, emotion, analysis, date)
		VALUES ($1, $2, $3, $4, $5)
	`, entry.ID, entry.Content, entry.Emotion, entry.Analysis, entry.Date)
	if err != nil {
		return models.JournalEntry{}, fmt.Errorf("insert journal entry: %w", err)
	}

	return entry, nil
}

// ListJournalEntries returns every entry, newest first.
func (s *Store) ListJournalEntries(ctx context.Context) ([]models.JournalEntry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, content, emotion, analysis, date
		FROM journal_entries
		ORDER BY date DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("query journal entries: %w", err)
	}
	defer rows.Close()

	entries := []models.JournalEntry{}
	for rows.Next() {
		var e models.JournalEntry
		if err := rows.Scan(&e.ID, &e.Content, &e.Emotion, &e.Analysis, &e.Date); err != nil {
			return nil, fmt.Errorf("scan journal entry: %w", err)
		}
		e.Date = e.Date.UTC()
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate journal entries: %w", err)
	}

	return entries, nil
}

func (s *Store) GetJournalEntry(ctx context.Context, id string) (models.JournalEntry, error) {
	var e models.JournalEntry
	err := s.db.QueryRowContext(ctx, `
		SELECT id, content, emotion, analysis, date
		FROM journal_entries
		WHERE id = $1
	`, id).Scan(&e.ID, &e.Content, &e.Emotion, &e.Analysis, &e.Date)
	if errors.Is(err, sql.ErrNoRows) {
		return models.JournalEntry{}, ErrNotFound
	}
	if err != nil {
		return models.JournalEntry{}, fmt.Errorf("query journal entry: %w", err)
	}
	e.Date = e.Date.UTC()

	return e, nil
}

func (s *Store) DeleteJournalEntry(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM journal_entries WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete journal entry: %w", err)
	}
	return affected(res)
}
