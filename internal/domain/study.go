package domain

import "strings"

// Defaults applied to study-planning requests that omit optional fields.
const (
	DefaultAvailableHours = 10
	DefaultCurrentLevel   = "intermediate"
	DefaultLearningStyle  = "visual"
	DefaultTimeframe      = "week"
)

// StudyPlanRequest describes a student asking for a multi-week study plan.
type StudyPlanRequest struct {
	Subjects       []string `json:"subjects"`
	AvailableHours int      `json:"availableHours"`
	ExamDate       string   `json:"examDate"`
	CurrentLevel   string   `json:"currentLevel"`
	Goals          []string `json:"goals"`
}

// Normalize trims text fields, drops blank subjects and goals, and applies
// defaults for missing hours and level.
func (r StudyPlanRequest) Normalize() StudyPlanRequest {
	r.Subjects = compactStrings(r.Subjects)
	r.Goals = compactStrings(r.Goals)
	r.ExamDate = strings.TrimSpace(r.ExamDate)
	r.CurrentLevel = strings.TrimSpace(r.CurrentLevel)
	if r.CurrentLevel == "" {
		r.CurrentLevel = DefaultCurrentLevel
	}
	if r.AvailableHours <= 0 {
		r.AvailableHours = DefaultAvailableHours
	}
	return r
}

// StudyPlan is a week-by-week schedule.
type StudyPlan struct {
	TotalWeeks      int                 `json:"total_weeks"`
	WeeklyHours     float64             `json:"weekly_hours"`
	SubjectsFocus   map[string]any      `json:"subjects_focus"`
	WeeklyPlans     []WeeklyPlan        `json:"weekly_plans"`
	StudyTechniques map[string][]string `json:"study_techniques"`
	Tips            []string            `json:"tips"`
}

// WeeklyPlan is one week of a StudyPlan.
type WeeklyPlan struct {
	Week          int             `json:"week"`
	Theme         string          `json:"theme"`
	DailySchedule []DailySchedule `json:"daily_schedule"`
	Goals         []string        `json:"goals"`
	ReviewTopics  []string        `json:"review_topics"`
}

// DailySchedule is one day of a WeeklyPlan.
type DailySchedule struct {
	Day        string   `json:"day"`
	Tasks      []string `json:"tasks"`
	TimeSlots  []string `json:"time_slots"`
	Subjects   []string `json:"subjects"`
	Techniques []string `json:"techniques"`
}

// StudyTipsRequest describes a student asking for personalized study tips.
type StudyTipsRequest struct {
	StudyHabits   []string `json:"studyHabits"`
	Challenges    []string `json:"challenges"`
	Subjects      []string `json:"subjects"`
	LearningStyle string   `json:"learningStyle"`
}

// Normalize trims text fields and applies the default learning style.
func (r StudyTipsRequest) Normalize() StudyTipsRequest {
	r.StudyHabits = compactStrings(r.StudyHabits)
	r.Challenges = compactStrings(r.Challenges)
	r.Subjects = compactStrings(r.Subjects)
	r.LearningStyle = strings.TrimSpace(r.LearningStyle)
	if r.LearningStyle == "" {
		r.LearningStyle = DefaultLearningStyle
	}
	return r
}

// StudyTip is a single actionable piece of study advice.
type StudyTip struct {
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	Category           string   `json:"category"`
	Difficulty         string   `json:"difficulty"`
	Implementation     []string `json:"implementation"`
	SubjectsApplicable []string `json:"subjects_applicable"`
	TimeRequired       string   `json:"time_required"`
}

// compactStrings trims every element and drops the blank ones. It never
// returns nil so encoded results carry [] rather than null.
func compactStrings(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
