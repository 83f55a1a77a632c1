package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/phrazzld/flashgen/internal/api/shared"
	"github.com/phrazzld/flashgen/internal/domain"
	"github.com/phrazzld/flashgen/internal/generation"
	"github.com/phrazzld/flashgen/internal/platform/logger"
)

// GenerationService is the generation pipeline the handlers call. Every
// generation method always yields a value; only Probe reports failures.
type GenerationService interface {
	Online() bool
	GenerateFlashcards(ctx context.Context, req domain.FlashcardRequest) generation.FlashcardOutcome
	GenerateStudyPlan(ctx context.Context, req domain.StudyPlanRequest) generation.StudyPlanOutcome
	GenerateStudyTips(ctx context.Context, req domain.StudyTipsRequest) generation.StudyTipsOutcome
	AnalyzeProgress(ctx context.Context, req domain.ProgressRequest) generation.ProgressOutcome
	GenerateQuiz(ctx context.Context, req domain.QuizRequest) generation.QuizOutcome
	Probe(ctx context.Context) (string, error)
}

// GenerationHandler handles the generation endpoints.
type GenerationHandler struct {
	service GenerationService
	logger  *slog.Logger
}

// NewGenerationHandler creates a new GenerationHandler.
func NewGenerationHandler(service GenerationService, logger *slog.Logger) *GenerationHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &GenerationHandler{
		service: service,
		logger:  logger.With(slog.String("component", "generation_handler")),
	}
}

// GenerateFlashcards handles POST /api/flashcards/generate requests.
func (h *GenerationHandler) GenerateFlashcards(w http.ResponseWriter, r *http.Request) {
	log := h.requestLogger(r)

	var req GenerateFlashcardsRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	flashcardReq, err := domain.NewFlashcardRequest(req.Question, req.Answer, req.Subject, req.Difficulty)
	if err != nil {
		log.Debug("rejected flashcard request", slog.String("reason", err.Error()))
		HandleAPIError(w, r, err, MsgMissingFlashcardFields)
		return
	}

	if !flashcardReq.Difficulty.IsKnown() {
		log.Debug("passing through unrecognized difficulty",
			slog.String("difficulty", string(flashcardReq.Difficulty)))
	}

	outcome := h.service.GenerateFlashcards(r.Context(), flashcardReq)

	log.Info("flashcards generated",
		slog.String("subject", flashcardReq.Subject),
		slog.String("difficulty", string(flashcardReq.Difficulty)),
		slog.String("source", string(outcome.Source)),
		slog.Int("count", len(outcome.Value)))

	shared.RespondWithJSON(w, r, http.StatusOK, newFlashcardsResponse(outcome))
}

// requestLogger returns the request-scoped logger tagged with the client ID
// when the request is authenticated.
func (h *GenerationHandler) requestLogger(r *http.Request) *slog.Logger {
	log := logger.FromContextOrDefault(r.Context(), h.logger)
	if clientID, ok := shared.GetClientID(r.Context()); ok {
		log = log.With(slog.String("client_id", clientID.String()))
	}
	return log
}

// decodeAndValidate decodes the JSON body into v and runs its validation
// tags. It writes the error response and returns false on failure.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := shared.DecodeJSON(w, r, v); err != nil {
		HandleAPIError(w, r, err, "")
		return false
	}
	if err := shared.ValidateRequest(v); err != nil {
		HandleAPIError(w, r, err, SanitizeValidationError(err))
		return false
	}
	return true
}
