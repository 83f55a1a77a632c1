package main

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/phrazzld/flashgen/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef-test"

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port:                   config.DefaultPort,
			LogLevel:               "debug",
			ShutdownTimeoutSeconds: 1,
		},
		Auth: config.AuthConfig{
			TokenLifetimeMinutes: config.DefaultTokenLifetimeMinutes,
		},
		LLM: config.LLMConfig{
			ModelName:             config.DefaultModelName,
			MaxRetries:            config.DefaultMaxRetries,
			RetryDelaySeconds:     config.DefaultRetryDelaySeconds,
			RequestTimeoutSeconds: config.DefaultRequestTimeoutSeconds,
			Temperature:           config.DefaultTemperature,
		},
		Generation: config.GenerationConfig{
			FlashcardCount: config.DefaultFlashcardCount,
		},
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestNewApplication(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		mutate     func(*config.Config)
		offline    bool
		wantOnline bool
		wantAuth   bool
		wantErr    string
	}{
		{name: "no api key runs offline"},
		{
			name:    "offline flag wins over api key",
			mutate:  func(c *config.Config) { c.LLM.GeminiAPIKey = "test-key" },
			offline: true,
		},
		{
			name:     "secret enables auth",
			mutate:   func(c *config.Config) { c.Auth.JWTSecret = testSecret },
			wantAuth: true,
		},
		{
			name:    "short secret is rejected",
			mutate:  func(c *config.Config) { c.Auth.JWTSecret = "short" },
			wantErr: "failed to initialize JWT service",
		},
		{
			name:    "missing template is rejected",
			mutate:  func(c *config.Config) { c.LLM.PromptTemplatePath = "/nonexistent/flashcards.tmpl" },
			wantErr: "failed to load prompt template",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg := testConfig()
			if tc.mutate != nil {
				tc.mutate(cfg)
			}

			app, err := newApplication(context.Background(), cfg, testLogger(), tc.offline)
			if tc.wantErr != "" {
				require.Error(t, err)
				assert.True(t, strings.Contains(err.Error(), tc.wantErr), "error: %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantOnline, app.service.Online())
			assert.Equal(t, tc.wantAuth, app.jwtService != nil)
		})
	}
}
