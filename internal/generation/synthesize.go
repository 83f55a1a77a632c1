package generation

import (
	"strings"

	"github.com/phrazzld/flashgen/internal/domain"
)

// AnswerContextLength is the number of characters of the original answer
// quoted in every fallback answer.
const AnswerContextLength = 100

// genericSubject stands in for the subject when a request has none.
const genericSubject = "this topic"

// Placeholders understood by FallbackTemplates.
const (
	termPlaceholder    = "{term}"
	subjectPlaceholder = "{subject}"
	contextPlaceholder = "{context}"
)

// FallbackTemplate is one fixed flashcard shape used when the model output is
// unusable. Question and Answer may contain {term}, {subject} and {context}.
type FallbackTemplate struct {
	Kind     string
	Question string
	Answer   string
}

// FallbackTemplates are instantiated in this order by Synthesize. Template i
// uses key term i modulo MaxKeyTerms.
var FallbackTemplates = []FallbackTemplate{
	{
		Kind:     "definition",
		Question: "What is the definition of {term} in {subject}?",
		Answer:   "{term} is an important concept in {subject}. In the original example: {context}",
	},
	{
		Kind:     "application",
		Question: "How is {term} applied in {subject}?",
		Answer:   "In {subject}, {term} is applied in practical situations such as this one: {context}",
	},
	{
		Kind:     "characteristics",
		Question: "What are the key characteristics of {term} in {subject}?",
		Answer:   "The key characteristics of {term} in {subject} can be seen here: {context}",
	},
	{
		Kind:     "importance",
		Question: "Why is {term} important in {subject}, and how does it compare with related ideas?",
		Answer:   "{term} is important in {subject} because it underpins ideas such as: {context}",
	},
	{
		Kind:     "relation",
		Question: "How does {term} relate to other {subject} concepts?",
		Answer:   "{term} connects to other {subject} concepts through shared principles, for example: {context}",
	},
}

// Synthesize deterministically builds len(FallbackTemplates) flashcards from
// the key terms of req's question and answer. Missing key terms are replaced
// by the subject name, so the result is never empty and every record
// mentions a key term or the subject. The same input always yields the same
// output.
func Synthesize(req domain.FlashcardRequest) domain.FlashcardSet {
	subject := strings.TrimSpace(req.Subject)
	if subject == "" {
		subject = genericSubject
	}

	terms := selectKeyTerms(req.Question+" "+req.Answer, subject)

	quote := answerContext(req.Answer)
	if quote == "" {
		quote = subject
	}

	cards := make(domain.FlashcardSet, 0, len(FallbackTemplates))
	for i, tmpl := range FallbackTemplates {
		replacer := strings.NewReplacer(
			termPlaceholder, terms[i%len(terms)],
			subjectPlaceholder, subject,
			contextPlaceholder, quote,
		)
		cards = append(cards, domain.Flashcard{
			Question: replacer.Replace(tmpl.Question),
			Answer:   replacer.Replace(tmpl.Answer),
		})
	}
	return cards
}

// selectKeyTerms returns exactly MaxKeyTerms terms, padding with filler.
func selectKeyTerms(text, filler string) []string {
	terms := ExtractKeyTerms(text)
	if len(terms) > MaxKeyTerms {
		terms = terms[:MaxKeyTerms]
	}
	for len(terms) < MaxKeyTerms {
		terms = append(terms, filler)
	}
	return terms
}

// answerContext returns the first AnswerContextLength characters of answer,
// followed by an ellipsis when it was cut.
func answerContext(answer string) string {
	answer = strings.TrimSpace(answer)
	runes := []rune(answer)
	if len(runes) <= AnswerContextLength {
		return answer
	}
	return strings.TrimSpace(string(runes[:AnswerContextLength])) + "..."
}
