package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/flashgen/internal/generation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealth(t *testing.T) {
	t.Parallel()

	for _, online := range []bool{true, false} {
		t.Run(fmt.Sprintf("online=%t", online), func(t *testing.T) {
			t.Parallel()

			handler := NewGenerationHandler(&stubService{online: online}, nil)
			rr := httptest.NewRecorder()
			handler.Health(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

			require.Equal(t, http.StatusOK, rr.Code)
			var resp HealthResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, "healthy", resp.Status)
			assert.Equal(t, online, resp.GeminiConfigured)
			assert.Equal(t, online, resp.ModelInitialized)
		})
	}
}

func TestTestAI(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		service        *stubService
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "probe succeeds",
			service:        &stubService{online: true, raw: "  {'question': 'What is 2+2?', 'answer': '4'}\n"},
			expectedStatus: http.StatusOK,
			expectedBody:   MsgAIWorking,
		},
		{
			name:           "offline",
			service:        &stubService{},
			expectedStatus: http.StatusServiceUnavailable,
			expectedBody:   "AI model not initialized",
		},
		{
			name:           "probe blocked",
			service:        &stubService{online: true, probeErr: fmt.Errorf("complete: %w", generation.ErrContentBlocked)},
			expectedStatus: http.StatusBadGateway,
			expectedBody:   "AI test failed",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			handler := NewGenerationHandler(tc.service, nil)
			rr := httptest.NewRecorder()
			handler.TestAI(rr, httptest.NewRequest(http.MethodGet, "/api/test-ai", nil))

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tc.expectedBody)

			if tc.expectedStatus == http.StatusOK {
				var resp TestAIResponse
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, "{'question': 'What is 2+2?', 'answer': '4'}", resp.AIResponse)
			}
		})
	}
}
