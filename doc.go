// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Mindful API server.

Mindful is a personal wellness tracker: journal entries, habits and a daily
mood log. Each journal entry is classified by a language model into one of
six emotions (happy, calm, sad, anxious, angry, neutral) with a short
analysis.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=file:mindful.db go run .

Or with flags against PostgreSQL:

	go run . -p 3318 -t postgres -d "postgres://..."

A .env file in the working directory is loaded first.

# Configuration

Required settings:

  - DATABASE_URL (-d): database connection string

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - XAI_API_KEY (--xai-key): enables sentiment analysis
  - LLM_BASE_URL (--llm-url), LLM_MODEL (--model): model endpoint
  - API_TOKEN (--api-token): bearer token required on every request
  - ALLOWED_ORIGIN (--origin): CORS origin

# Architecture

  - handlers: HTTP request handlers (journal, habits, moods)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, API token, JSON helpers
  - sentiment: Prompt building and model reply parsing
  - store: Data access for every table
  - models: Request/response types
  - auth: Token checks and ID generation
  - db: Schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
