package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/flashgen/internal/config"
	"github.com/phrazzld/flashgen/internal/generation"
	"github.com/phrazzld/flashgen/internal/platform/gemini"
	"github.com/phrazzld/flashgen/internal/service/auth"
)

// application holds all the shared application dependencies.
type application struct {
	config *config.Config
	logger *slog.Logger

	service    *generation.Service
	jwtService auth.JWTService
}

// newApplication wires the generation pipeline and, when configured, the
// Gemini client and token service. offline forces the fallback path even
// when an API key is present.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger, offline bool) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
	}

	var completer generation.Completer
	switch {
	case offline:
		logger.Info("offline mode requested, serving fallback generation only")
	case !cfg.LLM.Online():
		logger.Warn("no Gemini API key configured, serving fallback generation only")
	default:
		generator, err := gemini.NewGeminiGenerator(ctx, logger.With("component", "llm_generator"), cfg.LLM)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize LLM generator: %w", err)
		}
		completer = generator
		logger.Info("LLM generator initialized successfully", "model", cfg.LLM.ModelName)
	}

	prompts, err := generation.NewPromptBuilder(cfg.LLM.PromptTemplatePath, cfg.Generation.FlashcardCount)
	if err != nil {
		return nil, fmt.Errorf("failed to load prompt template: %w", err)
	}

	app.service, err = generation.NewService(completer, prompts, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create generation service: %w", err)
	}

	if cfg.Auth.Enabled() {
		app.jwtService, err = auth.NewJWTService(cfg.Auth)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
		}
		logger.Info("JWT authentication service initialized",
			"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)
	} else {
		logger.Warn("no JWT secret configured, API authentication disabled")
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run serves the HTTP API until ctx is canceled.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
