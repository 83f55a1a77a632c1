package api

import (
	"context"
	"errors"
	"strings"

	"github.com/phrazzld/flashgen/internal/domain"
	"github.com/phrazzld/flashgen/internal/generation"
)

// stubService drives the handlers through the real resolve functions so
// that the fallback path is exercised end to end. raw and err are what the
// model would have returned.
type stubService struct {
	online   bool
	raw      string
	err      error
	probeErr error

	gotFlashcards domain.FlashcardRequest
	gotPlan       domain.StudyPlanRequest
	gotTips       domain.StudyTipsRequest
	gotProgress   domain.ProgressRequest
	gotQuiz       domain.QuizRequest
}

var _ GenerationService = (*stubService)(nil)

func (s *stubService) Online() bool { return s.online }

func (s *stubService) GenerateFlashcards(_ context.Context, req domain.FlashcardRequest) generation.FlashcardOutcome {
	s.gotFlashcards = req
	return generation.Resolve(req, s.raw, s.err)
}

func (s *stubService) GenerateStudyPlan(_ context.Context, req domain.StudyPlanRequest) generation.StudyPlanOutcome {
	s.gotPlan = req
	return generation.ResolveStudyPlan(req, s.raw, s.err)
}

func (s *stubService) GenerateStudyTips(_ context.Context, req domain.StudyTipsRequest) generation.StudyTipsOutcome {
	s.gotTips = req
	return generation.ResolveStudyTips(req, s.raw, s.err)
}

func (s *stubService) AnalyzeProgress(_ context.Context, req domain.ProgressRequest) generation.ProgressOutcome {
	s.gotProgress = req
	return generation.ResolveProgress(req, s.raw, s.err)
}

func (s *stubService) GenerateQuiz(_ context.Context, req domain.QuizRequest) generation.QuizOutcome {
	s.gotQuiz = req
	return generation.ResolveQuiz(req, s.raw, s.err)
}

func (s *stubService) Probe(context.Context) (string, error) {
	if s.probeErr != nil {
		return "", s.probeErr
	}
	return strings.TrimSpace(s.raw), nil
}

var errModelDown = errors.New("model down")
