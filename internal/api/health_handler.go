package api

import (
	"net/http"

	"github.com/phrazzld/flashgen/internal/api/shared"
	"github.com/phrazzld/flashgen/internal/generation"
)

// Health handles GET /health requests. It never calls the model.
func (h *GenerationHandler) Health(w http.ResponseWriter, r *http.Request) {
	online := h.service.Online()
	shared.RespondWithJSON(w, r, http.StatusOK, HealthResponse{
		Status:           "healthy",
		Message:          MsgHealthy,
		GeminiConfigured: online,
		ModelInitialized: online,
	})
}

// TestAI handles GET /api/test-ai requests by sending the probe prompt and
// returning the raw model text.
func (h *GenerationHandler) TestAI(w http.ResponseWriter, r *http.Request) {
	if !h.service.Online() {
		HandleAPIError(w, r, generation.ErrUpstreamUnavailable, "")
		return
	}

	text, err := h.service.Probe(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "AI test failed")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, TestAIResponse{
		Success:    true,
		AIResponse: text,
		Message:    MsgAIWorking,
	})
}
