package generation

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/phrazzld/flashgen/internal/domain"
)

// ProgressOutcome is the outcome of progress analysis.
type ProgressOutcome = Outcome[domain.ProgressAnalysis]

// ReconcileProgress extracts and validates a progress analysis object from
// raw.
func ReconcileProgress(raw string) (domain.ProgressAnalysis, error) {
	doc, payload, err := extractObject(raw)
	if err != nil {
		return domain.ProgressAnalysis{}, err
	}
	if err := validateAgainst(progressSchema, doc); err != nil {
		return domain.ProgressAnalysis{}, err
	}

	var analysis domain.ProgressAnalysis
	if err := json.Unmarshal(payload, &analysis); err != nil {
		return domain.ProgressAnalysis{}, fmt.Errorf("%w: decode progress analysis: %v", ErrValidationEmpty, err)
	}
	return analysis, nil
}

// SynthesizeProgress scores the request by its completion rate alone.
func SynthesizeProgress(req domain.ProgressRequest) domain.ProgressAnalysis {
	rate := req.Normalize().CompletionRate()

	return domain.ProgressAnalysis{
		OverallScore:        math.Trunc(rate),
		PerformanceLevel:    domain.PerformanceLevelFor(rate),
		Strengths:           []string{"Task completion", "Study consistency"},
		AreasForImprovement: []string{"Time management", "Study efficiency"},
		Recommendations: []domain.Recommendation{{
			Category:       "Time Management",
			Action:         "Create a detailed study schedule",
			ExpectedImpact: "Better organization and productivity",
			Timeline:       "This week",
		}},
		NextGoals: []domain.Goal{{
			Goal:        "Improve completion rate",
			TargetValue: "90%",
			Deadline:    "Next week",
		}},
		Insights:          []string{"Consistency is key", "Small improvements lead to big results"},
		MotivationMessage: "You're making great progress! Keep up the good work.",
	}
}

// ResolveProgress composes ReconcileProgress with SynthesizeProgress.
func ResolveProgress(req domain.ProgressRequest, raw string, upstreamErr error) ProgressOutcome {
	if upstreamErr != nil {
		return ProgressOutcome{
			Value:  SynthesizeProgress(req),
			Source: SourceFallback,
			Reason: fmt.Errorf("%w: %w", ErrUpstreamFailed, upstreamErr),
		}
	}

	analysis, err := ReconcileProgress(raw)
	if err != nil {
		return ProgressOutcome{Value: SynthesizeProgress(req), Source: SourceFallback, Reason: err}
	}
	return ProgressOutcome{Value: analysis, Source: SourceAI}
}
