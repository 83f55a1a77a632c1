package generation

import (
	"encoding/json"
	"fmt"

	"github.com/phrazzld/flashgen/internal/domain"
)

// fallbackPlanWeeks is the length of a synthesized study plan.
const fallbackPlanWeeks = 4

// StudyPlanOutcome is the outcome of study-plan generation.
type StudyPlanOutcome = Outcome[domain.StudyPlan]

// StudyTipsOutcome is the outcome of study-tip generation.
type StudyTipsOutcome = Outcome[[]domain.StudyTip]

// ReconcileStudyPlan extracts the first-to-last brace span of raw, checks it
// against the study plan schema and decodes it.
func ReconcileStudyPlan(raw string) (domain.StudyPlan, error) {
	doc, payload, err := extractObject(raw)
	if err != nil {
		return domain.StudyPlan{}, err
	}
	if err := validateAgainst(studyPlanSchema, doc); err != nil {
		return domain.StudyPlan{}, err
	}

	var plan domain.StudyPlan
	if err := json.Unmarshal(payload, &plan); err != nil {
		return domain.StudyPlan{}, fmt.Errorf("%w: decode study plan: %v", ErrValidationEmpty, err)
	}
	return plan, nil
}

// SynthesizeStudyPlan builds a four-week plan that splits the available
// hours evenly across the subjects and rotates the focus subject weekly.
func SynthesizeStudyPlan(req domain.StudyPlanRequest) domain.StudyPlan {
	req = req.Normalize()
	subjects := req.Subjects

	focus := make(map[string]any, len(subjects))
	techniques := make(map[string][]string, len(subjects))
	for _, subject := range subjects {
		focus[subject] = fmt.Sprintf("%d%%", 100/len(subjects))
		techniques[subject] = []string{"Reading", "Practice", "Review"}
	}

	paired := subjects
	if len(paired) > 2 {
		paired = paired[:2]
	}

	weeks := make([]domain.WeeklyPlan, 0, fallbackPlanWeeks)
	for i := range fallbackPlanWeeks {
		focusSubject := "main subject"
		if len(subjects) > 0 {
			focusSubject = subjects[i%len(subjects)]
		}
		weeks = append(weeks, domain.WeeklyPlan{
			Week:  i + 1,
			Theme: fmt.Sprintf("Week %d Focus", i+1),
			DailySchedule: []domain.DailySchedule{{
				Day:        "Monday",
				Tasks:      []string{"Study " + focusSubject, "Review notes"},
				TimeSlots:  []string{"9:00-10:30", "14:00-15:30"},
				Subjects:   append([]string{}, paired...),
				Techniques: []string{"Active reading", "Practice problems"},
			}},
			Goals:        []string{fmt.Sprintf("Complete week %d objectives", i+1), "Review previous material"},
			ReviewTopics: []string{"Previous week topics"},
		})
	}

	return domain.StudyPlan{
		TotalWeeks:      fallbackPlanWeeks,
		WeeklyHours:     float64(req.AvailableHours),
		SubjectsFocus:   focus,
		WeeklyPlans:     weeks,
		StudyTechniques: techniques,
		Tips:            []string{"Stay consistent", "Take regular breaks", "Review regularly"},
	}
}

// ResolveStudyPlan composes ReconcileStudyPlan with SynthesizeStudyPlan.
func ResolveStudyPlan(req domain.StudyPlanRequest, raw string, upstreamErr error) StudyPlanOutcome {
	if upstreamErr != nil {
		return StudyPlanOutcome{
			Value:  SynthesizeStudyPlan(req),
			Source: SourceFallback,
			Reason: fmt.Errorf("%w: %w", ErrUpstreamFailed, upstreamErr),
		}
	}

	plan, err := ReconcileStudyPlan(raw)
	if err != nil {
		return StudyPlanOutcome{Value: SynthesizeStudyPlan(req), Source: SourceFallback, Reason: err}
	}
	return StudyPlanOutcome{Value: plan, Source: SourceAI}
}

// ReconcileStudyTips extracts a JSON array of tips from raw. Elements that do
// not carry a title and description are skipped.
func ReconcileStudyTips(raw string) ([]domain.StudyTip, error) {
	elements, err := extractArray(raw)
	if err != nil {
		return nil, err
	}

	tips := make([]domain.StudyTip, 0, len(elements))
	for _, element := range elements {
		var doc any
		if err := json.Unmarshal(element, &doc); err != nil {
			continue
		}
		if err := validateAgainst(studyTipSchema, doc); err != nil {
			continue
		}
		var tip domain.StudyTip
		if err := json.Unmarshal(element, &tip); err != nil {
			continue
		}
		tips = append(tips, tip)
	}

	if len(tips) == 0 {
		return nil, fmt.Errorf("%w: %d elements, none with title and description",
			ErrValidationEmpty, len(elements))
	}
	return tips, nil
}

// SynthesizeStudyTips returns two generic tips tailored to the learning
// style.
func SynthesizeStudyTips(req domain.StudyTipsRequest) []domain.StudyTip {
	req = req.Normalize()
	style := req.LearningStyle

	return []domain.StudyTip{
		{
			Title:              fmt.Sprintf("Optimize for %s learning", style),
			Description:        fmt.Sprintf("Use %s-based techniques for better retention", style),
			Category:           "memory",
			Difficulty:         "beginner",
			Implementation:     []string{"Identify your style", "Apply techniques", "Practice regularly"},
			SubjectsApplicable: append([]string{}, req.Subjects...),
			TimeRequired:       "10-15 minutes daily",
		},
		{
			Title:              "Active recall practice",
			Description:        "Test yourself regularly without looking at notes",
			Category:           "memory",
			Difficulty:         "intermediate",
			Implementation:     []string{"Close your books", "Write what you remember", "Check accuracy"},
			SubjectsApplicable: append([]string{}, req.Subjects...),
			TimeRequired:       "15-20 minutes per session",
		},
	}
}

// ResolveStudyTips composes ReconcileStudyTips with SynthesizeStudyTips.
func ResolveStudyTips(req domain.StudyTipsRequest, raw string, upstreamErr error) StudyTipsOutcome {
	if upstreamErr != nil {
		return StudyTipsOutcome{
			Value:  SynthesizeStudyTips(req),
			Source: SourceFallback,
			Reason: fmt.Errorf("%w: %w", ErrUpstreamFailed, upstreamErr),
		}
	}

	tips, err := ReconcileStudyTips(raw)
	if err != nil {
		return StudyTipsOutcome{Value: SynthesizeStudyTips(req), Source: SourceFallback, Reason: err}
	}
	return StudyTipsOutcome{Value: tips, Source: SourceAI}
}
