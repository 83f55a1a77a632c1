package domain

import "strings"

// QuestionType is the answer format of a quiz question.
type QuestionType string

const (
	QuestionMultipleChoice QuestionType = "multiple_choice"
	QuestionShortAnswer    QuestionType = "short_answer"
	QuestionLongAnswer     QuestionType = "long_answer"
)

// MultipleChoiceOptions is the exact number of options a multiple-choice
// question carries.
const MultipleChoiceOptions = 4

// DefaultQuestionCount is used when a quiz request omits the count.
const DefaultQuestionCount = 5

// IsKnown reports whether t is one of the supported question types.
func (t QuestionType) IsKnown() bool {
	switch t {
	case QuestionMultipleChoice, QuestionShortAnswer, QuestionLongAnswer:
		return true
	}
	return false
}

// DefaultPoints is the score of a question of type t when the model does not
// assign one. Unknown types score zero.
func (t QuestionType) DefaultPoints() int {
	switch t {
	case QuestionMultipleChoice:
		return 3
	case QuestionShortAnswer:
		return 4
	case QuestionLongAnswer:
		return 7
	}
	return 0
}

// QuizRequest describes a topic to build a mixed-format quiz about.
type QuizRequest struct {
	Topic         string         `json:"topic"`
	Description   string         `json:"description"`
	Subject       string         `json:"subject"`
	Difficulty    Difficulty     `json:"difficulty"`
	QuestionCount int            `json:"questionCount"`
	QuestionTypes []QuestionType `json:"questionTypes"`
}

// NewQuizRequest trims every field, drops blank and repeated question types,
// applies the difficulty and count defaults and validates the result.
func NewQuizRequest(topic, description, subject, difficulty string, count int, types []string) (QuizRequest, error) {
	req := QuizRequest{
		Topic:         strings.TrimSpace(topic),
		Description:   strings.TrimSpace(description),
		Subject:       strings.TrimSpace(subject),
		Difficulty:    Difficulty(strings.TrimSpace(difficulty)),
		QuestionCount: count,
		QuestionTypes: make([]QuestionType, 0, len(types)),
	}
	if req.Difficulty == "" {
		req.Difficulty = DefaultDifficulty
	}
	if req.QuestionCount <= 0 {
		req.QuestionCount = DefaultQuestionCount
	}

	seen := make(map[QuestionType]struct{}, len(types))
	for _, raw := range types {
		t := QuestionType(strings.TrimSpace(raw))
		if t == "" {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		req.QuestionTypes = append(req.QuestionTypes, t)
	}

	if err := req.Validate(); err != nil {
		return QuizRequest{}, err
	}
	return req, nil
}

// Validate checks that topic and subject are non-blank and that at least one
// question type is requested, all of them supported.
func (r QuizRequest) Validate() error {
	if strings.TrimSpace(r.Topic) == "" {
		return NewValidationError("topic", "cannot be empty", ErrEmptyContent)
	}
	if strings.TrimSpace(r.Subject) == "" {
		return NewValidationError("subject", "cannot be empty", ErrEmptyContent)
	}
	if len(r.QuestionTypes) == 0 {
		return NewValidationError("questionTypes", "cannot be empty", ErrEmptyContent)
	}
	for _, t := range r.QuestionTypes {
		if !t.IsKnown() {
			return NewValidationError("questionTypes", "contains unsupported type "+string(t), ErrValidation)
		}
	}
	return nil
}

// QuizQuestion is a single question of a generated quiz. Options are present
// only for multiple-choice questions.
type QuizQuestion struct {
	ID            string       `json:"id"`
	Type          QuestionType `json:"type"`
	Difficulty    string       `json:"difficulty,omitempty"`
	Question      string       `json:"question"`
	Options       []string     `json:"options,omitempty"`
	CorrectAnswer string       `json:"correct_answer"`
	Explanation   string       `json:"explanation,omitempty"`
	Points        int          `json:"points"`
}
