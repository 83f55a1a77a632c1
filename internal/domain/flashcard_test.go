package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFlashcardRequest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		question   string
		answer     string
		subject    string
		difficulty string
		wantErr    bool
		wantField  string
		want       FlashcardRequest
	}{
		{
			name:       "trims and keeps difficulty",
			question:   "  What is photosynthesis? ",
			answer:     "\tPlants convert light\n",
			subject:    " Biology ",
			difficulty: " hard ",
			want: FlashcardRequest{
				Question:   "What is photosynthesis?",
				Answer:     "Plants convert light",
				Subject:    "Biology",
				Difficulty: DifficultyHard,
			},
		},
		{
			name:     "defaults difficulty",
			question: "Q",
			answer:   "A",
			subject:  "S",
			want: FlashcardRequest{
				Question:   "Q",
				Answer:     "A",
				Subject:    "S",
				Difficulty: DefaultDifficulty,
			},
		},
		{
			name:       "free text difficulty tolerated",
			question:   "Q",
			answer:     "A",
			subject:    "S",
			difficulty: "graduate level",
			want: FlashcardRequest{
				Question:   "Q",
				Answer:     "A",
				Subject:    "S",
				Difficulty: Difficulty("graduate level"),
			},
		},
		{name: "blank question", question: "   ", answer: "A", subject: "S", wantErr: true, wantField: "question"},
		{name: "blank answer", question: "Q", answer: "", subject: "S", wantErr: true, wantField: "answer"},
		{name: "blank subject", question: "Q", answer: "A", subject: "\n", wantErr: true, wantField: "subject"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := NewFlashcardRequest(tc.question, tc.answer, tc.subject, tc.difficulty)
			if tc.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrEmptyContent), "error should wrap ErrEmptyContent")

				var vErr *ValidationError
				require.True(t, errors.As(err, &vErr))
				assert.Equal(t, tc.wantField, vErr.Field)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDifficultyIsKnown(t *testing.T) {
	t.Parallel()

	assert.True(t, DifficultyEasy.IsKnown())
	assert.True(t, DifficultyMedium.IsKnown())
	assert.True(t, DifficultyHard.IsKnown())
	assert.False(t, Difficulty("expert").IsKnown())
}

func TestFlashcardIsValid(t *testing.T) {
	t.Parallel()

	assert.True(t, Flashcard{Question: "Q", Answer: "A"}.IsValid())
	assert.False(t, Flashcard{Question: " ", Answer: "A"}.IsValid())
	assert.False(t, Flashcard{Question: "Q"}.IsValid())
}

func TestValidationErrorMessage(t *testing.T) {
	t.Parallel()

	err := NewValidationError("subject", "cannot be empty", ErrEmptyContent)
	assert.Equal(t, "content cannot be empty: subject cannot be empty", err.Error())

	err = NewValidationError("", "request body missing", ErrValidation)
	assert.Equal(t, "validation failed: request body missing", err.Error())
}
