// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/mindful/models"
)

// captureLogs routes the default slog logger into a buffer for the test
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

// logRecords decodes every JSON log line in buf
func logRecords(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var records []map[string]any
	dec := json.NewDecoder(buf)
	for {
		var rec map[string]any
		if err := dec.Decode(&rec); err == io.EOF {
			return records
		} else if err != nil {
			t.Fatalf("Failed to decode log line: %v", err)
		}
		records = append(records, rec)
	}
}

func TestWithLogging(t *testing.T) {
	logs := captureLogs(t)

	handler := WithLogging(func(w http.ResponseWriter, r *http.Request) {
		ErrorResponse(w, http.StatusNotFound, "Habit not found")
	})

	req := httptest.NewRequest("GET", "/habits/missing", nil)
	req.RemoteAddr = "10.0.0.1:5555"
	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	w := httptest.NewRecorder()

	handler(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", w.Code)
	}

	records := logRecords(t, logs)
	if len(records) != 2 {
		t.Fatalf("Expected 2 log records, got %d: %s", len(records), logs.String())
	}

	started, completed := records[0], records[1]
	if started["msg"] != "request started" || started["remote"] != "203.0.113.7" {
		t.Errorf("Expected start record with forwarded client IP, got %v", started)
	}
	if started["path"] != "/habits/missing" {
		t.Errorf("Expected path /habits/missing, got %v", started["path"])
	}
	// JSON numbers decode as float64
	if completed["msg"] != "request completed" || completed["status"] != float64(http.StatusNotFound) {
		t.Errorf("Expected completion record with status 404, got %v", completed)
	}
}

func TestWithLogging_DefaultStatus(t *testing.T) {
	logs := captureLogs(t)

	handler := WithLogging(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("[]"))
	})

	w := httptest.NewRecorder()
	handler(w, httptest.NewRequest("GET", "/journal", nil))

	if w.Body.String() != "[]" {
		t.Errorf("Expected body to pass through, got %q", w.Body.String())
	}

	records := logRecords(t, logs)
	if len(records) != 2 || records[1]["status"] != float64(http.StatusOK) {
		t.Errorf("Expected implicit 200 to be logged, got %v", records)
	}
}

func TestErrorResponse(t *testing.T) {
	testCases := []struct {
		status    int
		message   string
		wantError string
	}{
		{http.StatusBadRequest, "invalid date \"07/01/2025\"", "Bad Request"},
		{http.StatusUnauthorized, "Invalid or missing API token", "Unauthorized"},
		{http.StatusNotFound, "Journal entry not found", "Not Found"},
		{http.StatusInternalServerError, "Database error", "Internal Server Error"},
	}

	for _, tc := range testCases {
		t.Run(tc.wantError, func(t *testing.T) {
			w := httptest.NewRecorder()

			ErrorResponse(w, tc.status, tc.message)

			if w.Code != tc.status {
				t.Errorf("Expected status %d, got %d", tc.status, w.Code)
			}
			if ct := w.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("Expected Content-Type application/json, got '%s'", ct)
			}

			var resp models.ErrorResponse
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("Failed to decode error response: %v", err)
			}
			if resp.Error != tc.wantError || resp.Message != tc.message {
				t.Errorf("Expected {%s %s}, got %+v", tc.wantError, tc.message, resp)
			}
		})
	}
}

func TestJSONResponse_ListsStayArrays(t *testing.T) {
	w := httptest.NewRecorder()

	JSONResponse(w, http.StatusOK, []models.MoodEntry{})

	if body := strings.TrimSpace(w.Body.String()); body != "[]" {
		t.Errorf("Expected empty array, got %s", body)
	}
}

func TestParseJSONBody(t *testing.T) {
	t.Run("mood request", func(t *testing.T) {
		req := httptest.NewRequest("PUT", "/moods/2025-08-01",
			strings.NewReader(`{"emotion":"calm","intensity":4,"notes":"walked"}`))

		var mood models.MoodRequest
		if err := ParseJSONBody(req, &mood); err != nil {
			t.Fatalf("Expected no error, got: %v", err)
		}
		if mood.Emotion != models.EmotionCalm || mood.Intensity != 4 || mood.Notes != "walked" {
			t.Errorf("Unexpected mood request: %+v", mood)
		}
	})

	t.Run("malformed", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/journal", strings.NewReader(`{"content":`))

		var entry models.CreateJournalEntryRequest
		if err := ParseJSONBody(req, &entry); err == nil {
			t.Error("Expected error for truncated JSON")
		}
	})

	// Handlers that accept an optional body rely on io.EOF here
	t.Run("empty body is io.EOF", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/habits/abc/toggle", nil)

		var toggle models.ToggleCompletionRequest
		if err := ParseJSONBody(req, &toggle); !errors.Is(err, io.EOF) {
			t.Errorf("Expected io.EOF, got %v", err)
		}
	})
}

func TestCORS(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("handled"))
	})

	testCases := []struct {
		name            string
		allowedOrigin   string
		method          string
		requestOrigin   string
		wantOrigin      string
		wantCredentials string
		wantBody        string
	}{
		{"configured origin", "https://mindful.example", "GET", "https://mindful.example", "https://mindful.example", "true", "handled"},
		{"configured origin ignores caller", "https://mindful.example", "GET", "https://evil.example", "https://mindful.example", "true", "handled"},
		{"unset origin is wildcard", "", "GET", "https://evil.example", "*", "", "handled"},
		{"preflight short-circuits", "https://mindful.example", "OPTIONS", "https://mindful.example", "https://mindful.example", "true", ""},
		{"preflight without origin", "", "OPTIONS", "http://localhost:3000", "*", "", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, "/journal", nil)
			req.Header.Set("Origin", tc.requestOrigin)
			w := httptest.NewRecorder()

			CORS(tc.allowedOrigin, next).ServeHTTP(w, req)

			if w.Code != http.StatusOK {
				t.Errorf("Expected status 200, got %d", w.Code)
			}
			if got := w.Header().Get("Access-Control-Allow-Origin"); got != tc.wantOrigin {
				t.Errorf("Expected Allow-Origin '%s', got '%s'", tc.wantOrigin, got)
			}
			if got := w.Header().Get("Access-Control-Allow-Credentials"); got != tc.wantCredentials {
				t.Errorf("Expected Allow-Credentials '%s', got '%s'", tc.wantCredentials, got)
			}
			if !strings.Contains(w.Header().Get("Access-Control-Allow-Headers"), "Authorization") {
				t.Error("Expected Authorization in allowed headers")
			}
			if !strings.Contains(w.Header().Get("Access-Control-Allow-Methods"), "PUT") {
				t.Error("Expected PUT in allowed methods for mood upserts")
			}
			if w.Body.String() != tc.wantBody {
				t.Errorf("Expected body '%s', got '%s'", tc.wantBody, w.Body.String())
			}
		})
	}
}

func TestGetClientIP(t *testing.T) {
	testCases := []struct {
		name       string
		header     string
		value      string
		remoteAddr string
		want       string
	}{
		{"first forwarded hop", "X-Forwarded-For", "203.0.113.7, 10.0.0.1", "127.0.0.1:9000", "203.0.113.7"},
		{"real IP from proxy", "X-Real-IP", "198.51.100.4", "127.0.0.1:9000", "198.51.100.4"},
		{"direct connection", "", "", "192.0.2.10:51234", "192.0.2.10"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/habits", nil)
			req.RemoteAddr = tc.remoteAddr
			if tc.header != "" {
				req.Header.Set(tc.header, tc.value)
			}

			if got := GetClientIP(req); got != tc.want {
				t.Errorf("Expected IP '%s', got '%s'", tc.want, got)
			}
		})
	}
}

func TestRequireToken(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("handled"))
	})

	testCases := []struct {
		name       string
		token      string
		method     string
		path       string
		header     string
		wantStatus int
	}{
		{"disabled", "", "GET", "/habits", "", http.StatusOK},
		{"valid token", "s3cret", "GET", "/habits", "Bearer s3cret", http.StatusOK},
		{"wrong token", "s3cret", "GET", "/habits", "Bearer nope", http.StatusUnauthorized},
		{"missing header", "s3cret", "GET", "/habits", "", http.StatusUnauthorized},
		{"wrong scheme", "s3cret", "GET", "/habits", "Basic s3cret", http.StatusUnauthorized},
		{"health is open", "s3cret", "GET", "/health", "", http.StatusOK},
		{"preflight is open", "s3cret", "OPTIONS", "/habits", "", http.StatusOK},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()

			RequireToken(tc.token, next).ServeHTTP(w, req)

			if w.Code != tc.wantStatus {
				t.Errorf("Expected status %d, got %d", tc.wantStatus, w.Code)
			}
			if tc.wantStatus == http.StatusUnauthorized {
				var resp models.ErrorResponse
				if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
					t.Fatalf("Failed to decode error response: %v", err)
				}
				if resp.Error != "Unauthorized" {
					t.Errorf("Expected error 'Unauthorized', got '%s'", resp.Error)
				}
			}
		})
	}
}
