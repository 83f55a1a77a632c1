package main

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/phrazzld/flashgen/internal/config"
	"github.com/phrazzld/flashgen/internal/generation"
	"github.com/phrazzld/flashgen/internal/service/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestGenerateCommand_Offline(t *testing.T) {
	t.Setenv("FLASHGEN_LLM_GEMINI_API_KEY", "test-key")

	stdout, stderr, err := execute(t, "generate", "--offline",
		"--question", "What is photosynthesis?",
		"--answer", "Plants convert sunlight into chemical energy.",
		"--subject", "Biology")
	require.NoError(t, err, stderr)

	var out generateOutput
	require.NoError(t, json.Unmarshal([]byte(stdout), &out), stdout)
	assert.Equal(t, generation.SourceFallback, out.Source)
	assert.Equal(t, 5, out.Count)
	assert.Len(t, out.Flashcards, 5)
	assert.Contains(t, stderr, "offline mode requested")
}

func TestGenerateCommand_MissingFields(t *testing.T) {
	_, _, err := execute(t, "generate", "--offline", "--question", "Q")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "answer")
}

func TestTokenCommand(t *testing.T) {
	t.Setenv("FLASHGEN_AUTH_JWT_SECRET", testSecret)

	clientID := uuid.New()
	stdout, _, err := execute(t, "token", "--client-id", clientID.String())
	require.NoError(t, err)

	svc, err := auth.NewJWTService(config.AuthConfig{
		JWTSecret:            testSecret,
		TokenLifetimeMinutes: config.DefaultTokenLifetimeMinutes,
	})
	require.NoError(t, err)

	claims, err := svc.ValidateToken(context.Background(), strings.TrimSpace(stdout))
	require.NoError(t, err)
	assert.Equal(t, clientID, claims.ClientID)
}

func TestTokenCommand_Errors(t *testing.T) {
	t.Run("auth disabled", func(t *testing.T) {
		t.Setenv("FLASHGEN_AUTH_JWT_SECRET", "")
		_, _, err := execute(t, "token")
		assert.ErrorIs(t, err, errAuthDisabled)
	})

	t.Run("bad client id", func(t *testing.T) {
		t.Setenv("FLASHGEN_AUTH_JWT_SECRET", testSecret)
		_, _, err := execute(t, "token", "--client-id", "not-a-uuid")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid --client-id")
	})
}
