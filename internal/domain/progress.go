package domain

import "strings"

// Performance levels assigned by progress analysis.
const (
	PerformanceExcellent        = "Excellent"
	PerformanceGood             = "Good"
	PerformanceNeedsImprovement = "Needs Improvement"
)

// Grade is a single graded piece of work.
type Grade struct {
	Subject  string  `json:"subject"`
	Grade    float64 `json:"grade"`
	MaxGrade float64 `json:"maxGrade"`
}

// ProgressRequest carries the raw study metrics of a student for one
// timeframe.
type ProgressRequest struct {
	CompletedTasks int     `json:"completedTasks"`
	TotalTasks     int     `json:"totalTasks"`
	StudyHours     float64 `json:"studyHours"`
	Grades         []Grade `json:"grades"`
	Timeframe      string  `json:"timeframe"`
}

// Normalize applies the default timeframe.
func (r ProgressRequest) Normalize() ProgressRequest {
	r.Timeframe = strings.TrimSpace(r.Timeframe)
	if r.Timeframe == "" {
		r.Timeframe = DefaultTimeframe
	}
	if r.Grades == nil {
		r.Grades = []Grade{}
	}
	return r
}

// CompletionRate is the percentage of tasks completed, 0 when there are no
// tasks.
func (r ProgressRequest) CompletionRate() float64 {
	if r.TotalTasks <= 0 {
		return 0
	}
	return float64(r.CompletedTasks) / float64(r.TotalTasks) * 100
}

// AverageGrade is the mean of grade/maxGrade as a percentage. Grades with a
// non-positive maximum are ignored.
func (r ProgressRequest) AverageGrade() float64 {
	var sum float64
	var n int
	for _, g := range r.Grades {
		if g.MaxGrade <= 0 {
			continue
		}
		sum += g.Grade / g.MaxGrade
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n) * 100
}

// PerformanceLevelFor maps a completion rate to a performance level.
func PerformanceLevelFor(completionRate float64) string {
	switch {
	case completionRate >= 80:
		return PerformanceExcellent
	case completionRate >= 60:
		return PerformanceGood
	default:
		return PerformanceNeedsImprovement
	}
}

// ProgressAnalysis is an assessment of a student's progress.
type ProgressAnalysis struct {
	OverallScore        float64          `json:"overall_score"`
	PerformanceLevel    string           `json:"performance_level"`
	Strengths           []string         `json:"strengths"`
	AreasForImprovement []string         `json:"areas_for_improvement"`
	Recommendations     []Recommendation `json:"recommendations"`
	NextGoals           []Goal           `json:"next_goals"`
	Insights            []string         `json:"insights"`
	MotivationMessage   string           `json:"motivation_message"`
}

// Recommendation is one actionable improvement.
type Recommendation struct {
	Category       string `json:"category"`
	Action         string `json:"action"`
	ExpectedImpact string `json:"expected_impact"`
	Timeline       string `json:"timeline"`
}

// Goal is a measurable target for the next timeframe.
type Goal struct {
	Goal        string `json:"goal"`
	TargetValue string `json:"target_value"`
	Deadline    string `json:"deadline"`
}
