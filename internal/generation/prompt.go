package generation

import (
	"embed"
	"fmt"
	"os"
	"strings"
	"text/template"

	"github.com/phrazzld/flashgen/internal/domain"
)

// DefaultFlashcardCount is the number of flashcards requested from the model
// when no count is configured.
const DefaultFlashcardCount = 5

// DefaultStudyTipCount is the number of study tips requested from the model.
const DefaultStudyTipCount = 8

// ProbePrompt is sent by the AI self-test endpoint.
const ProbePrompt = `Generate a simple math flashcard about addition. Return only: {"question": "What is 2+2?", "answer": "4"}`

// FormatExamples are the sample records rendered into the output-format
// section of the flashcard prompt. At most Count of them are shown.
var FormatExamples = []domain.Flashcard{
	{Question: "What is...", Answer: "The answer is..."},
	{Question: "How does...", Answer: "It works by..."},
	{Question: "Why is...", Answer: "Because..."},
	{Question: "When should...", Answer: "You should..."},
	{Question: "Where can...", Answer: "It can be found..."},
}

// Template names inside the embedded prompts directory.
const (
	flashcardsTemplate = "flashcards.tmpl"
	studyPlanTemplate  = "study_plan.tmpl"
	studyTipsTemplate  = "study_tips.tmpl"
	progressTemplate   = "progress.tmpl"
	quizTemplate       = "quiz.tmpl"
)

//go:embed prompts/*.tmpl
var promptFS embed.FS

var promptFuncs = template.FuncMap{
	"list": listOrDefault,
}

var defaultTemplates = template.Must(
	template.New("prompts").Funcs(promptFuncs).ParseFS(promptFS, "prompts/*.tmpl"),
)

// flashcardPromptData represents the data passed to the flashcard prompt template.
type flashcardPromptData struct {
	Question   string
	Answer     string
	Subject    string
	Difficulty string
	Count      int
	Examples   []domain.Flashcard
}

type studyTipsPromptData struct {
	domain.StudyTipsRequest
	Count int
}

type quizPromptData struct {
	domain.QuizRequest
	Types []string
}

// BuildFlashcardPrompt renders the default flashcard prompt for req, asking
// for count new flashcards. A non-positive count means
// DefaultFlashcardCount. Inputs are interpolated verbatim.
func BuildFlashcardPrompt(req domain.FlashcardRequest, count int) string {
	return render(defaultTemplates, flashcardsTemplate, newFlashcardPromptData(req, count))
}

func newFlashcardPromptData(req domain.FlashcardRequest, count int) flashcardPromptData {
	if count <= 0 {
		count = DefaultFlashcardCount
	}
	examples := FormatExamples
	if count < len(examples) {
		examples = examples[:count]
	}
	return flashcardPromptData{
		Question:   req.Question,
		Answer:     req.Answer,
		Subject:    req.Subject,
		Difficulty: string(req.Difficulty),
		Count:      count,
		Examples:   examples,
	}
}

// PromptBuilder renders every prompt the service sends. The flashcard prompt
// may be replaced by an operator-supplied text/template file that receives
// the fields Question, Answer, Subject, Difficulty, Count and Examples.
type PromptBuilder struct {
	flashcards *template.Template
	count      int
}

// NewPromptBuilder creates a PromptBuilder requesting count flashcards per
// prompt. When templatePath is empty the embedded default template is used.
// A custom template is parsed and test-rendered here so that building a
// prompt later cannot fail.
func NewPromptBuilder(templatePath string, count int) (*PromptBuilder, error) {
	if count <= 0 {
		count = DefaultFlashcardCount
	}

	b := &PromptBuilder{
		flashcards: defaultTemplates.Lookup(flashcardsTemplate),
		count:      count,
	}
	if templatePath == "" {
		return b, nil
	}

	content, err := os.ReadFile(templatePath)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read prompt template from %s: %v",
			ErrInvalidConfig, templatePath, err)
	}

	tmpl, err := template.New(flashcardsTemplate).Funcs(promptFuncs).Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse prompt template: %v", ErrInvalidConfig, err)
	}

	sample := domain.FlashcardRequest{
		Question:   "What is 2+2?",
		Answer:     "4",
		Subject:    "Math",
		Difficulty: domain.DefaultDifficulty,
	}
	var sb strings.Builder
	if err := tmpl.Execute(&sb, newFlashcardPromptData(sample, count)); err != nil {
		return nil, fmt.Errorf("%w: failed to execute prompt template: %v", ErrInvalidConfig, err)
	}

	b.flashcards = tmpl
	return b, nil
}

// Count returns the number of flashcards requested per prompt.
func (b *PromptBuilder) Count() int {
	return b.count
}

// Flashcards renders the flashcard prompt for req.
func (b *PromptBuilder) Flashcards(req domain.FlashcardRequest) string {
	data := newFlashcardPromptData(req, b.count)

	var sb strings.Builder
	if err := b.flashcards.Execute(&sb, data); err != nil {
		return render(defaultTemplates, flashcardsTemplate, data)
	}
	return sb.String()
}

// StudyPlan renders the study-plan prompt for req.
func (b *PromptBuilder) StudyPlan(req domain.StudyPlanRequest) string {
	return render(defaultTemplates, studyPlanTemplate, req.Normalize())
}

// StudyTips renders the study-tips prompt for req.
func (b *PromptBuilder) StudyTips(req domain.StudyTipsRequest) string {
	return render(defaultTemplates, studyTipsTemplate, studyTipsPromptData{
		StudyTipsRequest: req.Normalize(),
		Count:            DefaultStudyTipCount,
	})
}

// Progress renders the progress-analysis prompt for req.
func (b *PromptBuilder) Progress(req domain.ProgressRequest) string {
	return render(defaultTemplates, progressTemplate, req.Normalize())
}

// Quiz renders the quiz prompt for req.
func (b *PromptBuilder) Quiz(req domain.QuizRequest) string {
	types := make([]string, 0, len(req.QuestionTypes))
	for _, t := range req.QuestionTypes {
		types = append(types, string(t))
	}
	return render(defaultTemplates, quizTemplate, quizPromptData{QuizRequest: req, Types: types})
}

// render executes one of the embedded templates. They are parsed at init and
// only reference fields of the data types above, so execution cannot fail.
func render(t *template.Template, name string, data any) string {
	var sb strings.Builder
	if err := t.ExecuteTemplate(&sb, name, data); err != nil {
		panic(fmt.Sprintf("generation: embedded template %s: %v", name, err))
	}
	return sb.String()
}

func listOrDefault(items []string) string {
	if len(items) == 0 {
		return "Not specified"
	}
	return strings.Join(items, ", ")
}
