package generation

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/phrazzld/flashgen/internal/domain"
	"github.com/phrazzld/flashgen/internal/platform/logger"
	"github.com/phrazzld/flashgen/internal/redact"
)

// rawPreviewLength bounds how much model text is logged on a fallback.
const rawPreviewLength = 300

// Service runs every generation pipeline against a Completer. A nil
// Completer puts the service in offline mode: each request is served by the
// fallback synthesizers with ErrUpstreamUnavailable as the reason.
type Service struct {
	completer Completer
	prompts   *PromptBuilder
	logger    *slog.Logger
}

// NewService creates a Service. completer may be nil.
func NewService(completer Completer, prompts *PromptBuilder, logger *slog.Logger) (*Service, error) {
	if prompts == nil {
		return nil, domain.NewValidationError("prompts", "cannot be nil", domain.ErrValidation)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Service{
		completer: completer,
		prompts:   prompts,
		logger:    logger.With(slog.String("component", "generation_service")),
	}, nil
}

// Online reports whether a Completer is configured.
func (s *Service) Online() bool {
	return s.completer != nil
}

// GenerateFlashcards builds the flashcard prompt for req, asks the model and
// reconciles its answer. It never fails: any AI problem yields the
// synthesized set.
func (s *Service) GenerateFlashcards(ctx context.Context, req domain.FlashcardRequest) FlashcardOutcome {
	raw, err := s.complete(ctx, s.prompts.Flashcards(req))
	outcome := Resolve(req, raw, err)
	s.logOutcome(ctx, "flashcards", outcome.Source, outcome.Reason, raw, len(outcome.Value))
	return outcome
}

// GenerateStudyPlan produces a study plan for req.
func (s *Service) GenerateStudyPlan(ctx context.Context, req domain.StudyPlanRequest) StudyPlanOutcome {
	raw, err := s.complete(ctx, s.prompts.StudyPlan(req))
	outcome := ResolveStudyPlan(req, raw, err)
	s.logOutcome(ctx, "study_plan", outcome.Source, outcome.Reason, raw, len(outcome.Value.WeeklyPlans))
	return outcome
}

// GenerateStudyTips produces study tips for req.
func (s *Service) GenerateStudyTips(ctx context.Context, req domain.StudyTipsRequest) StudyTipsOutcome {
	raw, err := s.complete(ctx, s.prompts.StudyTips(req))
	outcome := ResolveStudyTips(req, raw, err)
	s.logOutcome(ctx, "study_tips", outcome.Source, outcome.Reason, raw, len(outcome.Value))
	return outcome
}

// AnalyzeProgress produces a progress analysis for req.
func (s *Service) AnalyzeProgress(ctx context.Context, req domain.ProgressRequest) ProgressOutcome {
	raw, err := s.complete(ctx, s.prompts.Progress(req))
	outcome := ResolveProgress(req, raw, err)
	s.logOutcome(ctx, "progress", outcome.Source, outcome.Reason, raw, 1)
	return outcome
}

// GenerateQuiz produces quiz questions for req.
func (s *Service) GenerateQuiz(ctx context.Context, req domain.QuizRequest) QuizOutcome {
	raw, err := s.complete(ctx, s.prompts.Quiz(req))
	outcome := ResolveQuiz(req, raw, err)
	s.logOutcome(ctx, "quiz", outcome.Source, outcome.Reason, raw, len(outcome.Value))
	return outcome
}

// Probe sends ProbePrompt and returns the raw model text. Unlike the
// generation methods it reports failures, since its purpose is to check the
// model connection.
func (s *Service) Probe(ctx context.Context) (string, error) {
	raw, err := s.complete(ctx, ProbePrompt)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(raw), nil
}

func (s *Service) complete(ctx context.Context, prompt string) (string, error) {
	if s.completer == nil {
		return "", ErrUpstreamUnavailable
	}
	raw, err := s.completer.Complete(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("complete: %w", err)
	}
	return raw, nil
}

func (s *Service) logOutcome(ctx context.Context, kind string, source Source, reason error, raw string, items int) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if source == SourceAI {
		log.DebugContext(ctx, "generation reconciled from model response",
			slog.String("kind", kind),
			slog.Int("items", items))
		return
	}

	attrs := []any{
		slog.String("kind", kind),
		slog.Int("items", items),
		slog.String("reason", redact.Error(reason)),
	}
	if raw != "" {
		attrs = append(attrs, slog.String("response_preview", redact.Preview(raw, rawPreviewLength)))
	}
	log.WarnContext(ctx, "serving fallback generation", attrs...)
}
