package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/flashgen/internal/api/shared"
)

// GenerateStudyPlan handles POST /api/study-plan requests.
func (h *GenerationHandler) GenerateStudyPlan(w http.ResponseWriter, r *http.Request) {
	var req StudyPlanRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	planReq := req.toDomain()
	outcome := h.service.GenerateStudyPlan(r.Context(), planReq)

	h.requestLogger(r).Info("study plan generated",
		slog.Int("subjects", len(planReq.Subjects)),
		slog.String("source", string(outcome.Source)),
		slog.Int("weeks", len(outcome.Value.WeeklyPlans)))

	shared.RespondWithJSON(w, r, http.StatusOK, newStudyPlanResponse(outcome))
}

// GenerateStudyTips handles POST /api/study-tips requests.
func (h *GenerationHandler) GenerateStudyTips(w http.ResponseWriter, r *http.Request) {
	var req StudyTipsRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	tipsReq := req.toDomain()
	outcome := h.service.GenerateStudyTips(r.Context(), tipsReq)

	h.requestLogger(r).Info("study tips generated",
		slog.String("learning_style", tipsReq.LearningStyle),
		slog.String("source", string(outcome.Source)),
		slog.Int("count", len(outcome.Value)))

	shared.RespondWithJSON(w, r, http.StatusOK, newStudyTipsResponse(outcome))
}

// AnalyzeProgress handles POST /api/analyze-progress requests.
func (h *GenerationHandler) AnalyzeProgress(w http.ResponseWriter, r *http.Request) {
	var req ProgressRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	progressReq := req.toDomain()
	outcome := h.service.AnalyzeProgress(r.Context(), progressReq)

	h.requestLogger(r).Info("progress analyzed",
		slog.String("timeframe", progressReq.Timeframe),
		slog.String("source", string(outcome.Source)),
		slog.String("performance_level", outcome.Value.PerformanceLevel))

	shared.RespondWithJSON(w, r, http.StatusOK, newProgressResponse(progressReq, outcome))
}
