// Package ai wraps the external text-generation providers. The engine never
// sees these clients; it only consumes the analysis text produced here.
package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/postpilot/content-planner-go/internal/constants"
	"github.com/postpilot/content-planner-go/internal/domain"
	"github.com/postpilot/content-planner-go/internal/prompt"
	"github.com/postpilot/content-planner-go/internal/util"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

// ErrUnavailable is returned while the circuit breaker is open; callers score
// heuristically instead of waiting out the provider outage.
var ErrUnavailable = errors.New("ai providers unavailable")

// Analyzer produces free-text engagement analysis for a draft post, with a
// Gemini primary and an optional OpenAI fallback behind a circuit breaker.
type Analyzer struct {
	primary  TextProvider
	fallback TextProvider
	breaker  *util.CircuitBreaker
	logger   *zap.Logger
}

type AnalyzerConfig struct {
	GeminiAPIKey   string
	GeminiModel    string
	OpenAIAPIKey   string
	OpenAIModel    string
	EnableFallback bool
}

func NewAnalyzer(ctx context.Context, cfg AnalyzerConfig, logger *zap.Logger) (*Analyzer, error) {
	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	geminiClient, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := cfg.GeminiModel
	if model == "" {
		model = "gemini-2.5-flash"
	}

	a := &Analyzer{
		primary: NewGeminiProvider(geminiClient, model, logger),
		breaker: util.NewCircuitBreaker(
			constants.CircuitBreakerConfig.FailureThreshold,
			constants.CircuitBreakerConfig.ResetTimeout,
			logger,
		),
		logger: logger,
	}

	if cfg.EnableFallback {
		openaiModel := cfg.OpenAIModel
		if openaiModel == "" {
			openaiModel = "gpt-4.1-mini"
		}
		if p := NewOpenAIProvider(cfg.OpenAIAPIKey, openaiModel, logger); p != nil {
			a.fallback = p
			logger.Info("OpenAI fallback enabled", zap.String("model", openaiModel))
		} else {
			logger.Info("OpenAI fallback disabled (no API key)")
		}
	}

	return a, nil
}

// AnalyzeContent asks a provider for prose analysis of the draft. Inputs are
// truncated to the configured limits before prompting. Returns the raw text;
// scoring happens downstream.
func (a *Analyzer) AnalyzeContent(ctx context.Context, platform string, features domain.ContentFeatures) (string, error) {
	if !a.breaker.CanExecute() {
		a.logger.Warn("AI analysis skipped (circuit open)")
		return "", ErrUnavailable
	}

	promptText := prompt.BuildAnalysisPrompt(prompt.AnalysisPromptVars{
		Platform: platform,
		Title:    truncate(features.Title, constants.AIInputLimits.MaxTitleLength),
		Caption:  truncate(features.Caption, constants.AIInputLimits.MaxCaptionLength),
		Hashtags: truncate(features.Hashtags, constants.AIInputLimits.MaxHashtagsLength),
	})

	result, err := a.primary.GenerateText(ctx, promptText)
	if err == nil {
		a.breaker.RecordSuccess()
		return result.Text, nil
	}

	if a.fallback != nil {
		a.logger.Warn("Primary provider failed, trying fallback", zap.Error(err))
		fallbackResult, fallbackErr := a.fallback.GenerateText(ctx, promptText)
		if fallbackErr == nil {
			a.breaker.RecordSuccess()
			return fallbackResult.Text, nil
		}
		a.recordFailure(fallbackErr)
		return "", fmt.Errorf("all providers failed: %w", fallbackErr)
	}

	a.recordFailure(err)
	return "", err
}

func (a *Analyzer) recordFailure(err error) {
	timeout := time.Duration(0)
	if isRateLimitError(err) {
		timeout = constants.CircuitBreakerConfig.RateLimitTimeout
	}
	a.breaker.RecordFailure(timeout)
}

func isRateLimitError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "429") ||
		strings.Contains(msg, "rate limit") ||
		strings.Contains(msg, "quota") ||
		strings.Contains(msg, "resource_exhausted")
}

func truncate(s string, maxRunes int) string {
	s = strings.TrimSpace(s)
	runes := []rune(s)
	if len(runes) <= maxRunes {
		return s
	}
	return string(runes[:maxRunes])
}
