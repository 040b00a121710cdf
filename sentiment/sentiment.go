// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package sentiment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/danielhkuo/mindful/models"
)

// FallbackAnalysis is stored whenever the model reply cannot be used.
const FallbackAnalysis = "Unable to analyze sentiment. Please try again later."

// DefaultTimeout bounds a single model request.
const DefaultTimeout = 30 * time.Second

var (
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrInvalidReply  = errors.New("invalid model reply")
)

type Result struct {
	Emotion  string `json:"emotion"`
	Analysis string `json:"analysis"`
}

// Fallback returns the neutral result used on any failure.
func Fallback() Result {
	return Result{Emotion: models.EmotionNeutral, Analysis: FallbackAnalysis}
}

const promptTemplate = `
Analyze the following journal entry and determine the primary emotion expressed.
Choose exactly one emotion from this list: %[1]s.
Also provide a brief analysis (2-3 sentences) of the emotional state reflected in the entry.

Journal entry: "%[2]s"

Return your response in JSON format with two fields:
- emotion: the primary emotion (one of: %[1]s)
- analysis: brief analysis of the emotional state

IMPORTANT: Return ONLY the JSON object without any markdown formatting, code blocks, or additional text.
`

// BuildPrompt embeds the journal content in the classification prompt.
func BuildPrompt(content string) string {
	return fmt.Sprintf(promptTemplate, strings.Join(models.Emotions, ", "), content)
}

// First fenced block wins; the language tag is optional.
var fencePattern = regexp.MustCompile("```(?i:json)?\\s*([\\s\\S]*?)\\s*```")

// ParseReply extracts the emotion and analysis from a model reply.
// The reply may be bare JSON or JSON wrapped in a markdown code fence.
func ParseReply(text string) (Result, error) {
	jsonStr := strings.TrimSpace(text)
	if m := fencePattern.FindStringSubmatch(jsonStr); m != nil && m[1] != "" {
		jsonStr = strings.TrimSpace(m[1])
	}

	var reply struct {
		Emotion  string `json:"emotion"`
		Analysis string `json:"analysis"`
	}
	if err := json.Unmarshal([]byte(jsonStr), &reply); err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrInvalidReply, err)
	}

	emotion := strings.ToLower(strings.TrimSpace(reply.Emotion))
	if !models.IsValidEmotion(emotion) {
		return Result{}, fmt.Errorf("%w: unknown emotion %q", ErrInvalidReply, reply.Emotion)
	}

	analysis := strings.TrimSpace(reply.Analysis)
	if analysis == "" {
		return Result{}, fmt.Errorf("%w: empty analysis", ErrInvalidReply)
	}

	return Result{Emotion: emotion, Analysis: analysis}, nil
}

// Config holds the connection settings for an OpenAI-compatible endpoint.
type Config struct {
	BaseURL string
	Model   string
	APIKey  string
}

func (c Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("%w: base URL required", ErrInvalidConfig)
	}
	if c.Model == "" {
		return fmt.Errorf("%w: model required", ErrInvalidConfig)
	}
	if c.APIKey == "" {
		return fmt.Errorf("%w: API key required", ErrInvalidConfig)
	}
	return nil
}

// NewModel creates a langchaingo client for the configured endpoint.
func NewModel(cfg Config) (llms.Model, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	llm, err := openai.New(
		openai.WithBaseURL(cfg.BaseURL),
		openai.WithModel(cfg.Model),
		openai.WithToken(cfg.APIKey),
	)
	if err != nil {
		return nil, fmt.Errorf("creating OpenAI client: %w", err)
	}
	return llm, nil
}

// Analyzer classifies journal entries with a language model.
type Analyzer struct {
	model   llms.Model
	timeout time.Duration
}

// NewAnalyzer returns an Analyzer backed by model. A nil model is allowed;
// such an analyzer always returns Fallback.
func NewAnalyzer(model llms.Model) *Analyzer {
	return &Analyzer{model: model, timeout: DefaultTimeout}
}

// WithTimeout overrides the per-request timeout.
func (a *Analyzer) WithTimeout(d time.Duration) *Analyzer {
	a.timeout = d
	return a
}

// Enabled reports whether a model is configured.
func (a *Analyzer) Enabled() bool {
	return a != nil && a.model != nil
}

// Analyze never fails: any error is logged and Fallback is returned.
func (a *Analyzer) Analyze(ctx context.Context, content string) Result {
	if !a.Enabled() {
		slog.Warn("sentiment analysis skipped", "reason", "no model configured")
		return Fallback()
	}

	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	text, err := llms.GenerateFromSinglePrompt(ctx, a.model, BuildPrompt(content))
	if err != nil {
		slog.Error("error analyzing sentiment", "error", err)
		return Fallback()
	}

	result, err := ParseReply(text)
	if err != nil {
		slog.Error("error analyzing sentiment", "error", err)
		return Fallback()
	}

	return result
}
