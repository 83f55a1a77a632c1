package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/phrazzld/flashgen/internal/api/shared"
	"github.com/phrazzld/flashgen/internal/domain"
)

// GenerateQuiz handles POST /api/quiz/generate requests.
func (h *GenerationHandler) GenerateQuiz(w http.ResponseWriter, r *http.Request) {
	log := h.requestLogger(r)

	var req GenerateQuizRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	quizReq, err := req.toDomain()
	if err != nil {
		log.Debug("rejected quiz request", slog.String("reason", err.Error()))
		userMessage := ""
		if errors.Is(err, domain.ErrEmptyContent) {
			userMessage = MsgMissingQuizFields
		}
		HandleAPIError(w, r, err, userMessage)
		return
	}

	outcome := h.service.GenerateQuiz(r.Context(), quizReq)

	log.Info("quiz generated",
		slog.String("subject", quizReq.Subject),
		slog.Int("requested", quizReq.QuestionCount),
		slog.String("source", string(outcome.Source)),
		slog.Int("count", len(outcome.Value)))

	shared.RespondWithJSON(w, r, http.StatusOK, newQuizResponse(outcome))
}
