package generation

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/phrazzld/flashgen/internal/domain"
)

// QuizOutcome is the outcome of quiz generation.
type QuizOutcome = Outcome[[]domain.QuizQuestion]

// quizQuestionWire is the loosely typed shape of one model-produced question.
// Scalars are kept raw so numbers and strings are accepted alike.
type quizQuestionWire struct {
	ID            json.RawMessage `json:"id"`
	Type          string          `json:"type"`
	Difficulty    json.RawMessage `json:"difficulty"`
	Question      json.RawMessage `json:"question"`
	Options       []string        `json:"options"`
	CorrectAnswer json.RawMessage `json:"correct_answer"`
	Explanation   json.RawMessage `json:"explanation"`
	Points        json.RawMessage `json:"points"`
}

// ReconcileQuiz extracts a JSON array of quiz questions from raw. Elements
// that fail the per-type rules of the quiz question schema are skipped. Kept
// questions are numbered q1, q2, ... unless they carry an id, inherit
// difficulty when they have none, and score their type's default points when
// the model gives no positive score.
func ReconcileQuiz(raw string, difficulty domain.Difficulty) ([]domain.QuizQuestion, error) {
	elements, err := extractArray(raw)
	if err != nil {
		return nil, err
	}

	questions := make([]domain.QuizQuestion, 0, len(elements))
	for _, element := range elements {
		var doc any
		if err := json.Unmarshal(element, &doc); err != nil {
			continue
		}
		if err := validateAgainst(quizQuestionSchema, doc); err != nil {
			continue
		}
		var wire quizQuestionWire
		if err := json.Unmarshal(element, &wire); err != nil {
			continue
		}

		q := domain.QuizQuestion{
			ID:            coerceText(wire.ID),
			Type:          domain.QuestionType(wire.Type),
			Difficulty:    coerceText(wire.Difficulty),
			Question:      coerceText(wire.Question),
			CorrectAnswer: coerceText(wire.CorrectAnswer),
			Explanation:   coerceText(wire.Explanation),
			Points:        quizPoints(wire.Points, domain.QuestionType(wire.Type)),
		}
		if q.Question == "" || q.CorrectAnswer == "" {
			continue
		}
		if q.Type == domain.QuestionMultipleChoice {
			q.Options = wire.Options
		}
		if q.ID == "" {
			q.ID = fmt.Sprintf("q%d", len(questions)+1)
		}
		if q.Difficulty == "" {
			q.Difficulty = string(difficulty)
		}
		questions = append(questions, q)
	}

	if len(questions) == 0 {
		return nil, fmt.Errorf("%w: %d elements, none a well-formed quiz question",
			ErrValidationEmpty, len(elements))
	}
	return questions, nil
}

func quizPoints(raw json.RawMessage, t domain.QuestionType) int {
	var points float64
	if err := json.Unmarshal(raw, &points); err != nil || points <= 0 {
		return t.DefaultPoints()
	}
	return int(math.Round(points))
}

// SynthesizeQuiz returns one multiple-choice and one short-answer question
// about the request topic.
func SynthesizeQuiz(req domain.QuizRequest) []domain.QuizQuestion {
	return []domain.QuizQuestion{
		{
			ID:            "q1",
			Type:          domain.QuestionMultipleChoice,
			Question:      fmt.Sprintf("What is the main concept in %s?", req.Topic),
			Options:       []string{"Option A", "Option B", "Option C", "Option D"},
			CorrectAnswer: "Option A",
			Explanation:   fmt.Sprintf("This relates to the fundamental concepts of %s in %s.", req.Topic, req.Subject),
			Points:        domain.QuestionMultipleChoice.DefaultPoints(),
		},
		{
			ID:            "q2",
			Type:          domain.QuestionShortAnswer,
			Question:      fmt.Sprintf("Briefly explain a key aspect of %s.", req.Topic),
			CorrectAnswer: fmt.Sprintf("A key aspect involves the main principles of %s.", req.Topic),
			Explanation:   fmt.Sprintf("This question tests understanding of %s fundamentals.", req.Topic),
			Points:        domain.QuestionShortAnswer.DefaultPoints(),
		},
	}
}

// ResolveQuiz composes ReconcileQuiz with SynthesizeQuiz.
func ResolveQuiz(req domain.QuizRequest, raw string, upstreamErr error) QuizOutcome {
	if upstreamErr != nil {
		return QuizOutcome{
			Value:  SynthesizeQuiz(req),
			Source: SourceFallback,
			Reason: fmt.Errorf("%w: %w", ErrUpstreamFailed, upstreamErr),
		}
	}

	questions, err := ReconcileQuiz(raw, req.Difficulty)
	if err != nil {
		return QuizOutcome{Value: SynthesizeQuiz(req), Source: SourceFallback, Reason: err}
	}
	return QuizOutcome{Value: questions, Source: SourceAI}
}
