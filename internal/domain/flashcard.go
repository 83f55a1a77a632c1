package domain

import "strings"

// Difficulty is the requested difficulty of generated flashcards. The three
// named levels are the documented values but any free text is tolerated and
// passed through to the prompt verbatim.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"

	// DefaultDifficulty is used when a request omits the difficulty.
	DefaultDifficulty = DifficultyMedium
)

// IsKnown reports whether d is one of the documented difficulty levels.
func (d Difficulty) IsKnown() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// FlashcardRequest is a worked example from which related flashcards are
// generated.
type FlashcardRequest struct {
	Question   string     `json:"question"`
	Answer     string     `json:"answer"`
	Subject    string     `json:"subject"`
	Difficulty Difficulty `json:"difficulty"`
}

// NewFlashcardRequest trims every field, defaults an empty difficulty to
// DefaultDifficulty and validates the result.
func NewFlashcardRequest(question, answer, subject, difficulty string) (FlashcardRequest, error) {
	req := FlashcardRequest{
		Question:   strings.TrimSpace(question),
		Answer:     strings.TrimSpace(answer),
		Subject:    strings.TrimSpace(subject),
		Difficulty: Difficulty(strings.TrimSpace(difficulty)),
	}
	if req.Difficulty == "" {
		req.Difficulty = DefaultDifficulty
	}

	if err := req.Validate(); err != nil {
		return FlashcardRequest{}, err
	}
	return req, nil
}

// Validate checks that question, answer and subject are non-blank.
func (r FlashcardRequest) Validate() error {
	if strings.TrimSpace(r.Question) == "" {
		return NewValidationError("question", "cannot be empty", ErrEmptyContent)
	}
	if strings.TrimSpace(r.Answer) == "" {
		return NewValidationError("answer", "cannot be empty", ErrEmptyContent)
	}
	if strings.TrimSpace(r.Subject) == "" {
		return NewValidationError("subject", "cannot be empty", ErrEmptyContent)
	}
	return nil
}

// Flashcard is a single question/answer pair.
type Flashcard struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// IsValid reports whether both sides are non-blank.
func (f Flashcard) IsValid() bool {
	return strings.TrimSpace(f.Question) != "" && strings.TrimSpace(f.Answer) != ""
}

// FlashcardSet is an ordered sequence of flashcards. Its length is whatever
// the producer yielded; five is only the nominal count.
type FlashcardSet []Flashcard
