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

// DefaultHabits are inserted by SeedDefaultHabits into an empty habits table.
var DefaultHabits = []models.Habit{
	{
		Name:        "Drink Water",
		Description: "Drink at least 8 glasses of water throughout the day",
		Category:    models.CategorySelfCare,
	},
	{
		Name:        "5-Minute Meditation",
		Description: "Take 5 minutes to meditate and center yourself",
		Category:    models.CategoryMindfulness,
	},
	{
		Name:        "Stretching",
		Description: "Do some gentle stretching to release tension",
		Category:    models.CategoryPhysical,
	},
}

func validateHabit(h models.Habit) error {
	if strings.TrimSpace(h.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalid)
	}
	if !models.IsValidCategory(h.Category) {
		return fmt.Errorf("%w: category must be one of %s", ErrInvalid, strings.Join(models.Categories, ", "))
	}
	return nil
}

// execer is satisfied by both *sql.DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func (s *Store) insertHabit(ctx context.Context, ex execer, h models.Habit) (models.Habit, error) {
	h.ID = auth.GenerateID()
	h.CreatedAt = timestamp(s.now())
	h.CompletedDates = []string{}

	_, err := ex.ExecContext(ctx, `
		INSERT INTO habits (id, name, description, category, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, h.ID, h.Name, h.Description, h.Category, h.CreatedAt)
	if err != nil {
		return models.Habit{}, fmt.Errorf("insert habit: %w", err)
	}
	return h, nil
}

func (s *Store) CreateHabit(ctx context.Context, h models.Habit) (models.Habit, error) {
	if err := validateHabit(h); err != nil {
		return models.Habit{}, err
	}
	return s.insertHabit(ctx, s.db, h)
}

// ListHabits returns every habit with its completed dates, oldest habit first.
func (s *Store) ListHabits(ctx context.Context) ([]models.Habit, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, description, category, created_at
		FROM habits
		ORDER BY created_at, name
	`)
	if err != nil {
		return nil, fmt.Errorf("query habits: %w", err)
	}
	defer rows.Close()

	habits := []models.Habit{}
	index := map[string]int{}
	for rows.Next() {
		var h models.Habit
		if err := rows.Scan(&h.ID, &h.Name, &h.Description, &h.Category, &h.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan habit: %w", err)
		}
		h.CreatedAt = h.CreatedAt.UTC()
		h.CompletedDates = []string{}
		index[h.ID] = len(habits)
		habits = append(habits, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate habits: %w", err)
	}
	rows.Close()

	completions, err := s.db.QueryContext(ctx, `
		SELECT habit_id, date
		FROM habit_completions
		ORDER BY date
	`)
	if err != nil {
		return nil, fmt.Errorf("query habit completions: %w", err)
	}
	defer completions.Close()

	for completions.Next() {
		var habitID, date string
		if err := completions.Scan(&habitID, &date); err != nil {
			return nil, fmt.Errorf("scan habit completion: %w", err)
		}
		if i, ok := index[habitID]; ok {
			habits[i].CompletedDates = append(habits[i].CompletedDates, date)
		}
	}
	if err := completions.Err(); err != nil {
		return nil, fmt.Errorf("iterate habit completions: %w", err)
	}

	return habits, nil
}

func (s *Store) GetHabit(ctx context.Context, id string) (models.Habit, error) {
	var h models.Habit
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, description, category, created_at
		FROM habits
		WHERE id = $1
	`, id).Scan(&h.ID, &h.Name, &h.Description, &h.Category, &h.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Habit{}, ErrNotFound
	}
	if err != nil {
		return models.Habit{}, fmt.Errorf("query habit: %w", err)
	}
	h.CreatedAt = h.CreatedAt.UTC()

	rows, err := s.db.QueryContext(ctx, `
		SELECT date FROM habit_completions
		WHERE habit_id = $1
		ORDER BY date
	`, id)
	if err != nil {
		return models.Habit{}, fmt.Errorf("query habit completions: %w", err)
	}
	defer rows.Close()

	h.CompletedDates = []string{}
	for rows.Next() {
		var date string
		if err := rows.Scan(&date); err != nil {
			return models.Habit{}, fmt.Errorf("scan habit completion: %w", err)
		}
		h.CompletedDates = append(h.CompletedDates, date)
	}
	if err := rows.Err(); err != nil {
		return models.Habit{}, fmt.Errorf("iterate habit completions: %w", err)
	}

	return h, nil
}

// UpdateHabit overwrites name, description and category.
func (s *Store) UpdateHabit(ctx context.Context, h models.Habit) (models.Habit, error) {
	if err := validateHabit(h); err != nil {
		return models.Habit{}, err
	}

	res, err := s.db.ExecContext(ctx, `
		UPDATE habits
		SET name = $1, description = $2, category = $3
		WHERE id = $4
	`, h.Name, h.Description, h.Category, h.ID)
	if err != nil {
		return models.Habit{}, fmt.Errorf("update habit: %w", err)
	}
	if err := affected(res); err != nil {
		return models.Habit{}, err
	}

	return s.GetHabit(ctx, h.ID)
}

// DeleteHabit removes the habit and its completions.
func (s *Store) DeleteHabit(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM habit_completions WHERE habit_id = $1", id); err != nil {
		return fmt.Errorf("delete habit completions: %w", err)
	}
	res, err := tx.ExecContext(ctx, "DELETE FROM habits WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete habit: %w", err)
	}
	if err := affected(res); err != nil {
		return err
	}

	return tx.Commit()
}

// ToggleHabitCompletion flips the completion of habitID on date and
// reports whether the habit is now completed for that day.
func (s *Store) ToggleHabitCompletion(ctx context.Context, habitID, date string) (bool, error) {
	if err := validateDate(date); err != nil {
		return false, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	var exists int
	err = tx.QueryRowContext(ctx, "SELECT 1 FROM habits WHERE id = $1", habitID).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return false, ErrNotFound
	}
	if err != nil {
		return false, fmt.Errorf("query habit: %w", err)
	}

	res, err := tx.ExecContext(ctx, `
		DELETE FROM habit_completions
		WHERE habit_id = $1 AND date = $2
	`, habitID, date)
	if err != nil {
		return false, fmt.Errorf("delete habit completion: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete habit completion: %w", err)
	}

	completed := n == 0
	if completed {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO habit_completions (id, habit_id, date)
			VALUES ($1, $2, $3)
		`, auth.GenerateID(), habitID, date)
		if err != nil {
			return false, fmt.Errorf("insert habit completion: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit transaction: %w", err)
	}
	return completed, nil
}

// SeedDefaultHabits inserts DefaultHabits when no habits exist yet and
// returns how many were inserted.
func (s *Store) SeedDefaultHabits(ctx context.Context) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	var count int
	if err := tx.QueryRowContext(ctx, "SELECT COUNT(*) FROM habits").Scan(&count); err != nil {
		return 0, fmt.Errorf("count habits: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	for _, h := range DefaultHabits {
		if _, err := s.insertHabit(ctx, tx, h); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit transaction: %w", err)
	}
	return len(DefaultHabits), nil
}
