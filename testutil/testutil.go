// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/tmc/langchaingo/llms"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/mindful/auth"
	"github.com/danielhkuo/mindful/db"
)

// TestDBURL is an in-memory SQLite database with foreign keys enabled
const TestDBURL = "file::memory:?_pragma=foreign_keys(1)"

// SetupTestDB creates a fresh in-memory database with the full schema.
// The pool is pinned to one connection so every query sees the same database.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", TestDBURL)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// CreateTestHabit inserts a habit and returns its ID
func CreateTestHabit(t *testing.T, conn *sql.DB, name, category string) string {
	t.Helper()

	id := auth.GenerateID()
	_, err := conn.Exec(`
		INSERT INTO habits (id, name, description, category, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, id, name, "test habit", category, time.Now().UTC())
	if err != nil {
		t.Fatalf("Failed to create test habit: %v", err)
	}

	return id
}

// CompleteTestHabit marks a habit as completed on date (YYYY-MM-DD)
func CompleteTestHabit(t *testing.T, conn *sql.DB, habitID, date string) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO habit_completions (id, habit_id, date)
		VALUES ($1, $2, $3)
	`, auth.GenerateID(), habitID, date)
	if err != nil {
		t.Fatalf("Failed to complete test habit: %v", err)
	}
}

// CreateTestJournalEntry inserts a journal entry and returns its ID
func CreateTestJournalEntry(t *testing.T, conn *sql.DB, content, emotion string, date time.Time) string {
	t.Helper()

	id := auth.GenerateID()
	_, err := conn.Exec(`
		INSERT INTO journal_entries (id, content, emotion, analysis, date)
		VALUES ($1, $2, $3, $4, $5)
	`, id, content, emotion, "test analysis", date.UTC())
	if err != nil {
		t.Fatalf("Failed to create test journal entry: %v", err)
	}

	return id
}

// CreateTestMood inserts a mood entry for date and returns its ID
func CreateTestMood(t *testing.T, conn *sql.DB, date, emotion string, intensity int) string {
	t.Helper()

	id := auth.GenerateID()
	_, err := conn.Exec(`
		INSERT INTO mood_entries (id, date, emotion, intensity, notes)
		VALUES ($1, $2, $3, $4, $5)
	`, id, date, emotion, intensity, "")
	if err != nil {
		t.Fatalf("Failed to create test mood: %v", err)
	}

	return id
}

// FakeModel is an llms.Model that returns a canned reply and records prompts
type FakeModel struct {
	Reply string
	Err   error

	mu      sync.Mutex
	prompts []string
}

func (f *FakeModel) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	f.mu.Lock()
	for _, m := range messages {
		for _, part := range m.Parts {
			if text, ok := part.(llms.TextContent); ok {
				f.prompts = append(f.prompts, text.Text)
			}
		}
	}
	f.mu.Unlock()

	if f.Err != nil {
		return nil, f.Err
	}
	return &llms.ContentResponse{
		Choices: []*llms.ContentChoice{{Content: f.Reply}},
	}, nil
}

func (f *FakeModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, f, prompt, options...)
}

// Prompts returns every prompt the model has received
func (f *FakeModel) Prompts() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.prompts...)
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
