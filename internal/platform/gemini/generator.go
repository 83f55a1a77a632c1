package gemini

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"
	"time"

	"github.com/phrazzld/flashgen/internal/config"
	"github.com/phrazzld/flashgen/internal/generation"
	"github.com/phrazzld/flashgen/internal/redact"
	"google.golang.org/genai"
)

// Retry settings used when the configuration carries out-of-range values.
const (
	defaultMaxRetries     = 3
	defaultRetryDelay     = 2 * time.Second
	defaultRequestTimeout = 30 * time.Second
)

// modelsClient is the subset of *genai.Models used by GeminiGenerator.
type modelsClient interface {
	GenerateContent(
		ctx context.Context,
		model string,
		contents []*genai.Content,
		config *genai.GenerateContentConfig,
	) (*genai.GenerateContentResponse, error)
}

// GeminiGenerator implements generation.Completer using Google's Gemini API.
type GeminiGenerator struct {
	logger *slog.Logger
	models modelsClient
	model  string

	temperature    float32
	maxRetries     int
	retryDelay     time.Duration
	requestTimeout time.Duration

	// after is time.After, replaceable in tests.
	after func(time.Duration) <-chan time.Time
}

var _ generation.Completer = (*GeminiGenerator)(nil)

// NewGeminiGenerator creates a GeminiGenerator from the LLM configuration.
// The API key and model name are required.
func NewGeminiGenerator(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) (*GeminiGenerator, error) {
	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v",
			generation.ErrInvalidConfig, redact.Error(err))
	}

	return newGeminiGenerator(logger, cfg, client.Models)
}

func newGeminiGenerator(logger *slog.Logger, cfg config.LLMConfig, models modelsClient) (*GeminiGenerator, error) {
	if cfg.ModelName == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}
	if logger == nil {
		logger = slog.Default()
	}

	g := &GeminiGenerator{
		logger:         logger.With(slog.String("component", "gemini"), slog.String("model", cfg.ModelName)),
		models:         models,
		model:          cfg.ModelName,
		temperature:    cfg.Temperature,
		maxRetries:     cfg.MaxRetries,
		retryDelay:     cfg.RetryDelay(),
		requestTimeout: cfg.RequestTimeout(),
		after:          time.After,
	}

	if g.maxRetries < 0 {
		g.logger.Warn("invalid max retries value, using default", "max_retries", defaultMaxRetries)
		g.maxRetries = defaultMaxRetries
	}
	if g.retryDelay <= 0 {
		g.logger.Warn("invalid retry delay value, using default", "retry_delay", defaultRetryDelay)
		g.retryDelay = defaultRetryDelay
	}
	if g.requestTimeout <= 0 {
		g.requestTimeout = defaultRequestTimeout
	}
	return g, nil
}

// Complete sends prompt to the model and returns its text.
//
// Transient failures (rate limiting, server errors, network errors and
// per-attempt timeouts) are retried up to maxRetries times with exponential
// backoff and jitter. Blocked content, empty responses and rejected requests
// are returned immediately.
func (g *GeminiGenerator) Complete(ctx context.Context, prompt string) (string, error) {
	contents := []*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)}
	temperature := g.temperature
	cfg := &genai.GenerateContentConfig{Temperature: &temperature}

	for attempt := 0; ; attempt++ {
		attemptNum := attempt + 1
		g.logger.DebugContext(ctx, "making Gemini API call",
			"attempt", attemptNum,
			"max_attempts", g.maxRetries+1,
			"prompt_length", len(prompt))

		text, retryable, err := g.attempt(ctx, contents, cfg)
		if err == nil {
			g.logger.DebugContext(ctx, "Gemini API call successful",
				"attempt", attemptNum,
				"response_length", len(text))
			return text, nil
		}

		g.logger.WarnContext(ctx, "Gemini API call failed",
			"attempt", attemptNum,
			"retryable", retryable,
			"error", redact.Error(err))

		if !retryable {
			return "", err
		}
		if attempt >= g.maxRetries {
			return "", fmt.Errorf("%w: exceeded maximum retry attempts (%d): %w",
				generation.ErrTransientFailure, g.maxRetries, err)
		}

		delay := g.backoff(attempt)
		select {
		case <-g.after(delay):
		case <-ctx.Done():
			return "", fmt.Errorf("%w: cancelled during retry delay: %v",
				generation.ErrTransientFailure, ctx.Err())
		}
	}
}

// attempt makes a single bounded call.
func (g *GeminiGenerator) attempt(
	ctx context.Context,
	contents []*genai.Content,
	cfg *genai.GenerateContentConfig,
) (string, bool, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, g.requestTimeout)
	defer cancel()

	resp, err := g.models.GenerateContent(attemptCtx, g.model, contents, cfg)
	if err != nil {
		if ctx.Err() != nil {
			return "", false, fmt.Errorf("%w: %v", generation.ErrTransientFailure, ctx.Err())
		}
		retryable, classified := classifyError(err)
		return "", retryable, classified
	}

	text, err := responseText(resp)
	if err != nil {
		return "", false, err
	}
	return text, false, nil
}

// backoff returns retryDelay * 2^attempt scaled by a jitter factor in
// [0.5, 1.0).
func (g *GeminiGenerator) backoff(attempt int) time.Duration {
	base := float64(g.retryDelay) * math.Pow(2, float64(attempt))
	jitter := 0.5 + rand.Float64()*0.5
	return time.Duration(base * jitter)
}
