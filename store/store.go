// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/danielhkuo/mindful/models"
)

var (
	ErrNotFound = errors.New("not found")
	ErrInvalid  = errors.New("invalid input")
)

// Store runs every query the API needs against a *sql.DB opened with
// either the postgres or the sqlite driver.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

func New(db *sql.DB) *Store {
	return &Store{db: db, now: time.Now}
}

// timestamp normalizes t the way both backends will hand it back.
func timestamp(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}

func validateDate(date string) error {
	if _, err := time.Parse(models.DateLayout, date); err != nil {
		return fmt.Errorf("%w: date must be YYYY-MM-DD, got %q", ErrInvalid, date)
	}
	return nil
}

func validateEmotion(emotion string) error {
	if !models.IsValidEmotion(emotion) {
		return fmt.Errorf("%w: emotion must be one of %s", ErrInvalid, strings.Join(models.Emotions, ", "))
	}
	return nil
}

// affected maps a zero-row write to ErrNotFound.
func affected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
