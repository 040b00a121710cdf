// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseURL: database connection string (required)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - APIToken: bearer token required on every request (optional)
  - XAIAPIKey: key for the sentiment model (optional)
  - LLMBaseURL: OpenAI-compatible endpoint (default: https://api.x.ai/v1)
  - LLMModel: model name (default: grok-2)
  - AllowedOrigin: CORS origin (optional)

# CLI Flags

	-p          Server port
	-d          Database URL
	-t          Database type
	--origin    Allowed CORS origin
	--llm-url   LLM base URL
	--model     LLM model
	--api-token API token
	--xai-key   xAI API key

# Environment Variables

Flags fall back to environment variables:

	PORT           → -p
	DATABASE_URL   → -d
	DATABASE_TYPE  → -t
	ALLOWED_ORIGIN → --origin
	LLM_BASE_URL   → --llm-url
	LLM_MODEL      → --model
	API_TOKEN      → --api-token
	XAI_API_KEY    → --xai-key

CLI flags take precedence over environment variables. main loads a .env
file (if present) into the environment before ParseFlags runs.

# Validation

ParseFlags returns an error if:

  - DATABASE_URL is missing
  - PORT is not a number
  - DATABASE_TYPE is not sqlite or postgres

Without XAI_API_KEY the server still runs; every journal entry is stored
with the neutral fallback analysis.
*/
package cliparse
