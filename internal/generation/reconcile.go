package generation

import (
	"encoding/json"
	"fmt"

	"github.com/phrazzld/flashgen/internal/domain"
)

// Source identifies which path produced a generation outcome.
type Source string

const (
	// SourceAI means the value was reconciled from the model response.
	SourceAI Source = "ai"

	// SourceFallback means the value was synthesized deterministically.
	SourceFallback Source = "fallback"
)

// Outcome is the result of a generation that always succeeds. Reason is nil
// for SourceAI and carries the classified cause of the fallback otherwise.
type Outcome[T any] struct {
	Value  T
	Source Source
	Reason error
}

// FlashcardOutcome is the outcome of flashcard generation.
type FlashcardOutcome = Outcome[domain.FlashcardSet]

// Reconcile converts untrusted model text into a validated FlashcardSet.
//
// The text is normalized (trimmed, code fences removed), the span from the
// first '[' to the last ']' is parsed as a JSON array, and every element that
// is an object with non-blank "question" and "answer" values is kept, in
// order. Malformed elements are skipped. No count is enforced.
//
// On failure the returned error wraps ErrExtractionFailed (no array, or
// malformed JSON) or ErrValidationEmpty (no element survived). Both are
// non-fatal: callers route them to Synthesize.
func Reconcile(raw string) (domain.FlashcardSet, error) {
	elements, err := extractArray(raw)
	if err != nil {
		return nil, err
	}

	cards := validateFlashcards(elements)
	if len(cards) == 0 {
		return nil, fmt.Errorf("%w: %d elements, none with question and answer",
			ErrValidationEmpty, len(elements))
	}
	return cards, nil
}

// validateFlashcards keeps the well-formed subset of elements.
func validateFlashcards(elements []json.RawMessage) domain.FlashcardSet {
	cards := make(domain.FlashcardSet, 0, len(elements))
	for _, element := range elements {
		var record map[string]json.RawMessage
		if err := json.Unmarshal(element, &record); err != nil || record == nil {
			continue
		}

		question, hasQuestion := record["question"]
		answer, hasAnswer := record["answer"]
		if !hasQuestion || !hasAnswer {
			continue
		}

		card := domain.Flashcard{
			Question: coerceText(question),
			Answer:   coerceText(answer),
		}
		if !card.IsValid() {
			continue
		}
		cards = append(cards, card)
	}
	return cards
}

// Resolve composes reconciliation with the fallback synthesizer. If the AI
// call failed (upstreamErr != nil) the raw text is ignored and the request is
// synthesized directly. The returned set is never empty.
func Resolve(req domain.FlashcardRequest, raw string, upstreamErr error) FlashcardOutcome {
	if upstreamErr != nil {
		return FlashcardOutcome{
			Value:  Synthesize(req),
			Source: SourceFallback,
			Reason: fmt.Errorf("%w: %w", ErrUpstreamFailed, upstreamErr),
		}
	}

	cards, err := Reconcile(raw)
	if err != nil {
		return FlashcardOutcome{
			Value:  Synthesize(req),
			Source: SourceFallback,
			Reason: err,
		}
	}

	return FlashcardOutcome{Value: cards, Source: SourceAI}
}
