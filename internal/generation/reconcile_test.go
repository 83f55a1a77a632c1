package generation_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/phrazzld/flashgen/internal/domain"
	"github.com/phrazzld/flashgen/internal/generation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReconcile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		raw     string
		want    domain.FlashcardSet
		wantErr error
	}{
		{
			name: "fenced json array",
			raw:  "```json\n[{\"question\":\"Q1\",\"answer\":\"A1\"}]\n```",
			want: domain.FlashcardSet{{Question: "Q1", Answer: "A1"}},
		},
		{
			name: "bare fence without language tag",
			raw:  "```\n[{\"question\":\"Q1\",\"answer\":\"A1\"}]\n```",
			want: domain.FlashcardSet{{Question: "Q1", Answer: "A1"}},
		},
		{
			name: "array surrounded by prose",
			raw:  "Here you go:\n[{\"question\":\"Q1\",\"answer\":\"A1\"},{\"question\":\"Q2\",\"answer\":\"A2\"}]\nHope this helps!",
			want: domain.FlashcardSet{
				{Question: "Q1", Answer: "A1"},
				{Question: "Q2", Answer: "A2"},
			},
		},
		{
			name: "fence markers inside the text",
			raw:  "Cards:\n```json\n[{\"question\":\"Q1\",\"answer\":\"A1\"}]```\nDone",
			want: domain.FlashcardSet{{Question: "Q1", Answer: "A1"}},
		},
		{
			name: "partially invalid keeps valid subset in order",
			raw: `[{"question":"Q1","answer":"A1"},{"question":"Q2"},"junk",` +
				`{"answer":"A3"},{"question":"Q4","answer":"A4"}]`,
			want: domain.FlashcardSet{
				{Question: "Q1", Answer: "A1"},
				{Question: "Q4", Answer: "A4"},
			},
		},
		{
			name: "values are trimmed and coerced to text",
			raw:  `[{"question":"  What is 2+2?  ","answer":4},{"question":"Tags","answer":["a","b"]}]`,
			want: domain.FlashcardSet{
				{Question: "What is 2+2?", Answer: "4"},
				{Question: "Tags", Answer: `["a","b"]`},
			},
		},
		{
			name: "extra keys are ignored",
			raw:  `[{"question":"Q1","answer":"A1","difficulty":"hard"}]`,
			want: domain.FlashcardSet{{Question: "Q1", Answer: "A1"}},
		},
		{
			name: "single valid element is accepted",
			raw:  `[{"question":"Only","answer":"One"}]`,
			want: domain.FlashcardSet{{Question: "Only", Answer: "One"}},
		},
		{
			name:    "missing answer key",
			raw:     "Sure! Here are some cards: [{\"question\":\"Q\"}]",
			wantErr: generation.ErrValidationEmpty,
		},
		{
			name:    "blank values",
			raw:     `[{"question":"   ","answer":"A"},{"question":"Q","answer":null}]`,
			wantErr: generation.ErrValidationEmpty,
		},
		{
			name:    "empty array",
			raw:     `[]`,
			wantErr: generation.ErrValidationEmpty,
		},
		{
			name:    "no array",
			raw:     "I cannot help with that.",
			wantErr: generation.ErrExtractionFailed,
		},
		{
			name:    "empty text",
			raw:     "",
			wantErr: generation.ErrExtractionFailed,
		},
		{
			name:    "closing bracket before opening",
			raw:     "] nothing here [",
			wantErr: generation.ErrExtractionFailed,
		},
		{
			name:    "malformed json",
			raw:     `[{"question":"Q1","answer":"A1"},]`,
			wantErr: generation.ErrExtractionFailed,
		},
		{
			name:    "object instead of array",
			raw:     `{"question":"Q1","answer":"A1"}`,
			wantErr: generation.ErrExtractionFailed,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := generation.Reconcile(tc.raw)
			if tc.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Empty(t, got)
				return
			}

			require.NoError(t, err)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Reconcile() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestResolve(t *testing.T) {
	t.Parallel()

	req := domain.FlashcardRequest{
		Question:   "What is photosynthesis?",
		Answer:     "Plants convert light into energy via chlorophyll",
		Subject:    "Biology",
		Difficulty: domain.DifficultyMedium,
	}

	t.Run("valid response is used", func(t *testing.T) {
		t.Parallel()

		outcome := generation.Resolve(req, `[{"question":"Q1","answer":"A1"}]`, nil)

		assert.Equal(t, generation.SourceAI, outcome.Source)
		assert.NoError(t, outcome.Reason)
		assert.Equal(t, domain.FlashcardSet{{Question: "Q1", Answer: "A1"}}, outcome.Value)
	})

	t.Run("missing answer key falls back to synthesis", func(t *testing.T) {
		t.Parallel()

		outcome := generation.Resolve(req, "Sure! Here are some cards: [{\"question\":\"Q\"}]", nil)

		assert.Equal(t, generation.SourceFallback, outcome.Source)
		assert.ErrorIs(t, outcome.Reason, generation.ErrValidationEmpty)
		assert.Equal(t, generation.Synthesize(req), outcome.Value)
	})

	t.Run("unparseable response falls back to synthesis", func(t *testing.T) {
		t.Parallel()

		outcome := generation.Resolve(req, "no json at all", nil)

		assert.Equal(t, generation.SourceFallback, outcome.Source)
		assert.ErrorIs(t, outcome.Reason, generation.ErrExtractionFailed)
		assert.Len(t, outcome.Value, len(generation.FallbackTemplates))
	})

	t.Run("upstream failure ignores raw text", func(t *testing.T) {
		t.Parallel()

		cause := errors.New("quota exceeded")
		outcome := generation.Resolve(req, `[{"question":"Q1","answer":"A1"}]`, cause)

		assert.Equal(t, generation.SourceFallback, outcome.Source)
		assert.ErrorIs(t, outcome.Reason, generation.ErrUpstreamFailed)
		assert.ErrorIs(t, outcome.Reason, cause)
		assert.Equal(t, generation.Synthesize(req), outcome.Value)
	})
}
