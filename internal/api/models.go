package api

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/phrazzld/flashgen/internal/domain"
	"github.com/phrazzld/flashgen/internal/generation"
)

// Response messages. The fallback variants tell clients the model was not
// used without exposing why.
const (
	MsgMissingFlashcardFields = "Missing required fields: question, answer, and subject are required"
	MsgStudyPlanAI            = "Personalized study plan generated successfully!"
	MsgStudyPlanFallback      = "Study plan generated with fallback method"
	MsgStudyTipsFallback      = "Study tips generated with fallback method"
	MsgProgressAI             = "Progress analysis completed successfully!"
	MsgProgressFallback       = "Progress analysis completed with fallback method"
	MsgMissingQuizFields      = "Missing required fields: topic, subject, and questionTypes"
	MsgHealthy                = "Flashcard API is running"
	MsgAIWorking              = "AI is working correctly"
)

// GenerateFlashcardsRequest is the payload of POST /api/flashcards/generate.
// Blank question, answer or subject is rejected by the handler after
// trimming.
type GenerateFlashcardsRequest struct {
	Question   string `json:"question"   validate:"max=4000"`
	Answer     string `json:"answer"     validate:"max=4000"`
	Subject    string `json:"subject"    validate:"max=200"`
	Difficulty string `json:"difficulty" validate:"max=32"`
}

// GenerateFlashcardsResponse carries a generated flashcard set.
type GenerateFlashcardsResponse struct {
	Success      bool                `json:"success"`
	Flashcards   domain.FlashcardSet `json:"flashcards"`
	Count        int                 `json:"count"`
	Source       generation.Source   `json:"source"`
	GenerationID uuid.UUID           `json:"generation_id"`
	Message      string              `json:"message"`
}

func newFlashcardsResponse(outcome generation.FlashcardOutcome) GenerateFlashcardsResponse {
	message := fmt.Sprintf("Generated %d flashcards using Gemini AI", len(outcome.Value))
	if outcome.Source == generation.SourceFallback {
		message = fmt.Sprintf("Generated %d flashcards with fallback method", len(outcome.Value))
	}

	return GenerateFlashcardsResponse{
		Success:      true,
		Flashcards:   outcome.Value,
		Count:        len(outcome.Value),
		Source:       outcome.Source,
		GenerationID: uuid.New(),
		Message:      message,
	}
}

// StudyPlanRequest is the payload of POST /api/study-plan.
type StudyPlanRequest struct {
	Subjects       []string `json:"subjects"       validate:"max=20,dive,max=200"`
	AvailableHours int      `json:"availableHours" validate:"gte=0,lte=168"`
	ExamDate       string   `json:"examDate"       validate:"max=64"`
	CurrentLevel   string   `json:"currentLevel"   validate:"max=64"`
	Goals          []string `json:"goals"          validate:"max=20,dive,max=500"`
}

func (r StudyPlanRequest) toDomain() domain.StudyPlanRequest {
	return domain.StudyPlanRequest{
		Subjects:       r.Subjects,
		AvailableHours: r.AvailableHours,
		ExamDate:       r.ExamDate,
		CurrentLevel:   r.CurrentLevel,
		Goals:          r.Goals,
	}.Normalize()
}

// StudyPlanResponse carries a generated study plan.
type StudyPlanResponse struct {
	Success   bool              `json:"success"`
	StudyPlan domain.StudyPlan  `json:"study_plan"`
	Source    generation.Source `json:"source"`
	Message   string            `json:"message"`
}

func newStudyPlanResponse(outcome generation.StudyPlanOutcome) StudyPlanResponse {
	message := MsgStudyPlanAI
	if outcome.Source == generation.SourceFallback {
		message = MsgStudyPlanFallback
	}
	return StudyPlanResponse{
		Success:   true,
		StudyPlan: outcome.Value,
		Source:    outcome.Source,
		Message:   message,
	}
}

// StudyTipsRequest is the payload of POST /api/study-tips.
type StudyTipsRequest struct {
	StudyHabits   []string `json:"studyHabits"   validate:"max=20,dive,max=500"`
	Challenges    []string `json:"challenges"    validate:"max=20,dive,max=500"`
	Subjects      []string `json:"subjects"      validate:"max=20,dive,max=200"`
	LearningStyle string   `json:"learningStyle" validate:"max=64"`
}

func (r StudyTipsRequest) toDomain() domain.StudyTipsRequest {
	return domain.StudyTipsRequest{
		StudyHabits:   r.StudyHabits,
		Challenges:    r.Challenges,
		Subjects:      r.Subjects,
		LearningStyle: r.LearningStyle,
	}.Normalize()
}

// StudyTipsResponse carries generated study tips.
type StudyTipsResponse struct {
	Success bool              `json:"success"`
	Tips    []domain.StudyTip `json:"tips"`
	Source  generation.Source `json:"source"`
	Message string            `json:"message"`
}

func newStudyTipsResponse(outcome generation.StudyTipsOutcome) StudyTipsResponse {
	message := fmt.Sprintf("Generated %d personalized study tips!", len(outcome.Value))
	if outcome.Source == generation.SourceFallback {
		message = MsgStudyTipsFallback
	}
	return StudyTipsResponse{
		Success: true,
		Tips:    outcome.Value,
		Source:  outcome.Source,
		Message: message,
	}
}

// GradeRequest is one graded assessment.
type GradeRequest struct {
	Subject  string  `json:"subject"  validate:"max=200"`
	Grade    float64 `json:"grade"    validate:"gte=0"`
	MaxGrade float64 `json:"maxGrade" validate:"gte=0"`
}

// ProgressRequest is the payload of POST /api/analyze-progress.
type ProgressRequest struct {
	CompletedTasks int            `json:"completedTasks" validate:"gte=0"`
	TotalTasks     int            `json:"totalTasks"     validate:"gte=0"`
	StudyHours     float64        `json:"studyHours"     validate:"gte=0"`
	Grades         []GradeRequest `json:"grades"         validate:"max=100,dive"`
	Timeframe      string         `json:"timeframe"      validate:"max=32"`
}

func (r ProgressRequest) toDomain() domain.ProgressRequest {
	grades := make([]domain.Grade, 0, len(r.Grades))
	for _, g := range r.Grades {
		grades = append(grades, domain.Grade{Subject: g.Subject, Grade: g.Grade, MaxGrade: g.MaxGrade})
	}
	return domain.ProgressRequest{
		CompletedTasks: r.CompletedTasks,
		TotalTasks:     r.TotalTasks,
		StudyHours:     r.StudyHours,
		Grades:         grades,
		Timeframe:      r.Timeframe,
	}.Normalize()
}

// ProgressMetrics are the figures the analysis was computed from.
type ProgressMetrics struct {
	CompletionRate float64 `json:"completion_rate"`
	AverageGrade   float64 `json:"average_grade"`
	StudyHours     float64 `json:"study_hours"`
	Timeframe      string  `json:"timeframe"`
}

// ProgressResponse carries a progress analysis.
type ProgressResponse struct {
	Success  bool                    `json:"success"`
	Analysis domain.ProgressAnalysis `json:"analysis"`
	Metrics  ProgressMetrics         `json:"metrics"`
	Source   generation.Source       `json:"source"`
	Message  string                  `json:"message"`
}

func newProgressResponse(req domain.ProgressRequest, outcome generation.ProgressOutcome) ProgressResponse {
	message := MsgProgressAI
	if outcome.Source == generation.SourceFallback {
		message = MsgProgressFallback
	}
	return ProgressResponse{
		Success:  true,
		Analysis: outcome.Value,
		Metrics: ProgressMetrics{
			CompletionRate: req.CompletionRate(),
			AverageGrade:   req.AverageGrade(),
			StudyHours:     req.StudyHours,
			Timeframe:      req.Timeframe,
		},
		Source:  outcome.Source,
		Message: message,
	}
}

// GenerateQuizRequest is the payload of POST /api/quiz/generate. Blank topic
// or subject and an empty questionTypes list are rejected by the handler
// after trimming.
type GenerateQuizRequest struct {
	Topic         string   `json:"topic"         validate:"max=500"`
	Description   string   `json:"description"   validate:"max=4000"`
	Subject       string   `json:"subject"       validate:"max=200"`
	Difficulty    string   `json:"difficulty"    validate:"max=32"`
	QuestionCount int      `json:"questionCount" validate:"gte=0,lte=50"`
	QuestionTypes []string `json:"questionTypes" validate:"max=3,dive,max=32"`
}

func (r GenerateQuizRequest) toDomain() (domain.QuizRequest, error) {
	return domain.NewQuizRequest(r.Topic, r.Description, r.Subject, r.Difficulty, r.QuestionCount, r.QuestionTypes)
}

// GenerateQuizResponse carries generated quiz questions.
type GenerateQuizResponse struct {
	Success   bool                  `json:"success"`
	Questions []domain.QuizQuestion `json:"questions"`
	Count     int                   `json:"count"`
	Source    generation.Source     `json:"source"`
	Message   string                `json:"message"`
}

func newQuizResponse(outcome generation.QuizOutcome) GenerateQuizResponse {
	message := fmt.Sprintf("Generated %d mixed quiz questions using Gemini AI!", len(outcome.Value))
	if outcome.Source == generation.SourceFallback {
		message = fmt.Sprintf("Generated %d quiz questions with fallback method", len(outcome.Value))
	}
	return GenerateQuizResponse{
		Success:   true,
		Questions: outcome.Value,
		Count:     len(outcome.Value),
		Source:    outcome.Source,
		Message:   message,
	}
}

// HealthResponse reports service liveness and model configuration.
type HealthResponse struct {
	Status           string `json:"status"`
	Message          string `json:"message"`
	GeminiConfigured bool   `json:"gemini_configured"`
	ModelInitialized bool   `json:"model_initialized"`
}

// TestAIResponse carries the raw text of the model probe.
type TestAIResponse struct {
	Success    bool   `json:"success"`
	AIResponse string `json:"ai_response"`
	Message    string `json:"message"`
}
