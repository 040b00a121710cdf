// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/danielhkuo/mindful/auth"
	"github.com/danielhkuo/mindful/models"
)

func validateMood(m models.MoodEntry) error {
	if err := validateDate(m.Date); err != nil {
		return err
	}
	if err := validateEmotion(m.Emotion); err != nil {
		return err
	}
	if m.Intensity < models.MinIntensity || m.Intensity > models.MaxIntensity {
		return fmt.Errorf("%w: intensity must be between %d and %d", ErrInvalid, models.MinIntensity, models.MaxIntensity)
	}
	return nil
}

// SaveMoodEntry stores the mood for entry.Date, replacing emotion,
// intensity and notes if that day already has one. The existing row ID is kept.
func (s *Store) SaveMoodEntry(ctx context.Context, entry models.MoodEntry) (models.MoodEntry, error) {
	if err := validateMood(entry); err != nil {
		return models.MoodEntry{}, err
	}

	err := s.db.QueryRowContext(ctx, `
		INSERT INTO mood_entries (id, date, emotion, intensity, notes)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (date) DO UPDATE
		SET emotion = excluded.emotion, intensity = excluded.intensity, notes = excluded.notes
		RETURNING id
	`, auth.GenerateID(), entry.Date, entry.Emotion, entry.Intensity, entry.Notes).Scan(&entry.ID)
	if err != nil {
		return models.MoodEntry{}, fmt.Errorf("upsert mood entry: %w", err)
	}

	return entry, nil
}

// ListMoodEntries returns every mood entry, oldest day first.
func (s *Store) ListMoodEntries(ctx context.Context) ([]models.MoodEntry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, date, emotion, intensity, notes
		FROM mood_entries
		ORDER BY date ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query mood entries: %w", err)
	}
	defer rows.Close()

	entries := []models.MoodEntry{}
	for rows.Next() {
		var m models.MoodEntry
		if err := rows.Scan(&m.ID, &m.Date, &m.Emotion, &m.Intensity, &m.Notes); err != nil {
			return nil, fmt.Errorf("scan mood entry: %w", err)
		}
		entries = append(entries, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate mood entries: %w", err)
	}

	return entries, nil
}

func (s *Store) GetMoodEntry(ctx context.Context, date string) (models.MoodEntry, error) {
	if err := validateDate(date); err != nil {
		return models.MoodEntry{}, err
	}

	var m models.MoodEntry
	err := s.db.QueryRowContext(ctx, `
		SELECT id, date, emotion, intensity, notes
		FROM mood_entries
		WHERE date = $1
	`, date).Scan(&m.ID, &m.Date, &m.Emotion, &m.Intensity, &m.Notes)
	if errors.Is(err, sql.ErrNoRows) {
		return models.MoodEntry{}, ErrNotFound
	}
	if err != nil {
		return models.MoodEntry{}, fmt.Errorf("query mood entry: %w", err)
	}

	return m, nil
}
