// cliparse/cliparse_test.go
package cliparse

import (
	"testing"
)

func TestParseFlags_EnvVars(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_URL", "postgres://test")
	t.Setenv("DATABASE_TYPE", "postgres")
	t.Setenv("XAI_API_KEY", "xai-test")
	t.Setenv("API_TOKEN", "token")

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.DatabaseType != "postgres" {
		t.Errorf("expected postgres, got %s", cfg.DatabaseType)
	}
	if cfg.XAIAPIKey != "xai-test" {
		t.Errorf("expected xai key from env, got %q", cfg.XAIAPIKey)
	}
	if cfg.APIToken != "token" {
		t.Errorf("expected api token from env, got %q", cfg.APIToken)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("LLM_MODEL", "grok-env")

	cfg, err := ParseFlags([]string{"-p", "8080", "-d", "file:test.db", "-model", "grok-cli"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
	if cfg.LLMModel != "grok-cli" {
		t.Errorf("CLI should override env: expected grok-cli, got %s", cfg.LLMModel)
	}
}

func TestParseFlags_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DATABASE_TYPE", "")
	t.Setenv("LLM_BASE_URL", "")
	t.Setenv("LLM_MODEL", "")
	t.Setenv("XAI_API_KEY", "")
	t.Setenv("API_TOKEN", "")

	cfg, err := ParseFlags([]string{"-d", "file::memory:"})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != DefaultPort {
		t.Errorf("expected default port %d, got %d", DefaultPort, cfg.Port)
	}
	if cfg.DatabaseType != "sqlite" {
		t.Errorf("expected sqlite default, got %s", cfg.DatabaseType)
	}
	if cfg.LLMBaseURL != DefaultLLMBaseURL {
		t.Errorf("expected default LLM URL, got %s", cfg.LLMBaseURL)
	}
	if cfg.LLMModel != DefaultLLMModel {
		t.Errorf("expected default model, got %s", cfg.LLMModel)
	}
	if cfg.XAIAPIKey != "" || cfg.APIToken != "" {
		t.Error("secrets should stay empty when unset")
	}
}

func TestParseFlags_Errors(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	if _, err := ParseFlags([]string{}); err == nil {
		t.Error("expected error without database URL")
	}

	t.Setenv("PORT", "not-a-port")
	if _, err := ParseFlags([]string{"-d", "file:test.db"}); err == nil {
		t.Error("expected error for invalid PORT")
	}

	t.Setenv("PORT", "")
	if _, err := ParseFlags([]string{"-d", "file:test.db", "-t", "mysql"}); err == nil {
		t.Error("expected error for unsupported database type")
	}
}
