package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
)

const (
	DefaultPort       = 3318
	DefaultLLMBaseURL = "https://api.x.ai/v1"
	DefaultLLMModel   = "grok-2"
)

type Config struct {
	Port          int
	DatabaseURL   string
	DatabaseType  string
	APIToken      string
	XAIAPIKey     string
	LLMBaseURL    string
	LLMModel      string
	AllowedOrigin string
}

// ParseFlags validates flags and sets port number
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("mindful", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.StringVar(&cfg.AllowedOrigin, "origin", "", "Allowed CORS origin (default: *, without credentials)")

	// LLM
	fs.StringVar(&cfg.LLMBaseURL, "llm-url", "", "OpenAI-compatible API base URL")
	fs.StringVar(&cfg.LLMModel, "model", "", "Model used for sentiment analysis")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.APIToken, "api-token", "", "Bearer token required on every request (prefer env)")
	fs.StringVar(&cfg.XAIAPIKey, "xai-key", "", "xAI API key (prefer env)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = DefaultPort
		}
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, errors.New("database type must be sqlite or postgres")
	}

	if cfg.AllowedOrigin == "" {
		cfg.AllowedOrigin = os.Getenv("ALLOWED_ORIGIN")
	}

	if cfg.LLMBaseURL == "" {
		cfg.LLMBaseURL = os.Getenv("LLM_BASE_URL")
		if cfg.LLMBaseURL == "" {
			cfg.LLMBaseURL = DefaultLLMBaseURL
		}
	}
	if cfg.LLMModel == "" {
		cfg.LLMModel = os.Getenv("LLM_MODEL")
		if cfg.LLMModel == "" {
			cfg.LLMModel = DefaultLLMModel
		}
	}

	// Secrets - optional; missing ones disable the feature
	if cfg.APIToken == "" {
		cfg.APIToken = os.Getenv("API_TOKEN")
	}
	if cfg.XAIAPIKey == "" {
		cfg.XAIAPIKey = os.Getenv("XAI_API_KEY")
	}

	return cfg, nil
}
