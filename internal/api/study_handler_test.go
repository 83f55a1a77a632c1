package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/phrazzld/flashgen/internal/domain"
	"github.com/phrazzld/flashgen/internal/generation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateStudyPlan(t *testing.T) {
	t.Parallel()

	t.Run("fallback applies defaults", func(t *testing.T) {
		t.Parallel()

		svc := &stubService{err: errModelDown}
		handler := NewGenerationHandler(svc, nil)

		rr := postJSON(t, handler.GenerateStudyPlan, "/api/study-plan", `{"subjects":["Math"," ","Physics"]}`)
		require.Equal(t, http.StatusOK, rr.Code)

		var resp StudyPlanResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, generation.SourceFallback, resp.Source)
		assert.Equal(t, MsgStudyPlanFallback, resp.Message)
		assert.Len(t, resp.StudyPlan.WeeklyPlans, 4)

		assert.Equal(t, []string{"Math", "Physics"}, svc.gotPlan.Subjects)
		assert.Equal(t, domain.DefaultAvailableHours, svc.gotPlan.AvailableHours)
		assert.Equal(t, domain.DefaultCurrentLevel, svc.gotPlan.CurrentLevel)
	})

	t.Run("model plan is returned", func(t *testing.T) {
		t.Parallel()

		svc := &stubService{raw: `Plan: {"total_weeks":1,"weekly_hours":5,"weekly_plans":[{"week":1,"theme":"Basics"}]}`}
		handler := NewGenerationHandler(svc, nil)

		rr := postJSON(t, handler.GenerateStudyPlan, "/api/study-plan", `{"subjects":["Math"],"availableHours":5}`)
		require.Equal(t, http.StatusOK, rr.Code)

		var resp StudyPlanResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, generation.SourceAI, resp.Source)
		assert.Equal(t, MsgStudyPlanAI, resp.Message)
		assert.Equal(t, "Basics", resp.StudyPlan.WeeklyPlans[0].Theme)
	})

	t.Run("negative hours are rejected", func(t *testing.T) {
		t.Parallel()

		handler := NewGenerationHandler(&stubService{}, nil)
		rr := postJSON(t, handler.GenerateStudyPlan, "/api/study-plan", `{"availableHours":-3}`)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "Invalid availableHours")
	})
}

func TestGenerateStudyTips(t *testing.T) {
	t.Parallel()

	t.Run("fallback uses learning style", func(t *testing.T) {
		t.Parallel()

		svc := &stubService{raw: "no tips today"}
		handler := NewGenerationHandler(svc, nil)

		rr := postJSON(t, handler.GenerateStudyTips, "/api/study-tips", `{"subjects":["History"]}`)
		require.Equal(t, http.StatusOK, rr.Code)

		var resp StudyTipsResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, generation.SourceFallback, resp.Source)
		assert.Equal(t, MsgStudyTipsFallback, resp.Message)
		require.Len(t, resp.Tips, 2)
		assert.Equal(t, "Optimize for visual learning", resp.Tips[0].Title)
		assert.Equal(t, domain.DefaultLearningStyle, svc.gotTips.LearningStyle)
	})

	t.Run("model tips are returned", func(t *testing.T) {
		t.Parallel()

		svc := &stubService{raw: `[{"title":"Chunk it","description":"Split work into blocks"},{"title":""}]`}
		handler := NewGenerationHandler(svc, nil)

		rr := postJSON(t, handler.GenerateStudyTips, "/api/study-tips", `{"learningStyle":"auditory"}`)
		require.Equal(t, http.StatusOK, rr.Code)

		var resp StudyTipsResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, generation.SourceAI, resp.Source)
		assert.Equal(t, "Generated 1 personalized study tips!", resp.Message)
		require.Len(t, resp.Tips, 1)
		assert.Equal(t, "Chunk it", resp.Tips[0].Title)
	})
}

func TestAnalyzeProgress(t *testing.T) {
	t.Parallel()

	t.Run("fallback scores completion rate", func(t *testing.T) {
		t.Parallel()

		svc := &stubService{err: errModelDown}
		handler := NewGenerationHandler(svc, nil)

		rr := postJSON(t, handler.AnalyzeProgress, "/api/analyze-progress",
			`{"completedTasks":7,"totalTasks":10,"studyHours":12.5,"grades":[{"subject":"Math","grade":45,"maxGrade":50}]}`)
		require.Equal(t, http.StatusOK, rr.Code)

		var resp ProgressResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, generation.SourceFallback, resp.Source)
		assert.Equal(t, MsgProgressFallback, resp.Message)
		assert.InDelta(t, 70.0, resp.Analysis.OverallScore, 0.001)
		assert.Equal(t, domain.PerformanceGood, resp.Analysis.PerformanceLevel)
		assert.InDelta(t, 70.0, resp.Metrics.CompletionRate, 0.001)
		assert.InDelta(t, 90.0, resp.Metrics.AverageGrade, 0.001)
		assert.Equal(t, domain.DefaultTimeframe, resp.Metrics.Timeframe)
	})

	t.Run("zero tasks does not divide by zero", func(t *testing.T) {
		t.Parallel()

		handler := NewGenerationHandler(&stubService{err: errModelDown}, nil)
		rr := postJSON(t, handler.AnalyzeProgress, "/api/analyze-progress", `{}`)
		require.Equal(t, http.StatusOK, rr.Code)

		var resp ProgressResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Zero(t, resp.Analysis.OverallScore)
		assert.Equal(t, domain.PerformanceNeedsImprovement, resp.Analysis.PerformanceLevel)
	})

	t.Run("model analysis is returned", func(t *testing.T) {
		t.Parallel()

		svc := &stubService{raw: `{"overall_score":88,"performance_level":"Excellent","strengths":["focus"]}`}
		handler := NewGenerationHandler(svc, nil)

		rr := postJSON(t, handler.AnalyzeProgress, "/api/analyze-progress", `{"completedTasks":1,"totalTasks":2}`)
		require.Equal(t, http.StatusOK, rr.Code)

		var resp ProgressResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, generation.SourceAI, resp.Source)
		assert.Equal(t, MsgProgressAI, resp.Message)
		assert.InDelta(t, 88.0, resp.Analysis.OverallScore, 0.001)
		assert.InDelta(t, 50.0, resp.Metrics.CompletionRate, 0.001)
	})
}
