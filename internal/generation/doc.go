// Package generation turns a worked example into related flashcards using an
// external AI text model, and guarantees a well-formed result even when that
// model is unreachable or answers with something other than the requested
// JSON.
//
// The package has three layers:
//
//   - Prompt building: BuildFlashcardPrompt and PromptBuilder render the
//     instruction sent to the model, including a literal example of the JSON
//     array-of-objects shape expected back.
//   - Reconciliation: Reconcile normalizes the free-form model text, locates
//     the embedded JSON array, parses it and keeps only well-formed
//     question/answer records. Failures are classified (ErrExtractionFailed,
//     ErrValidationEmpty) rather than thrown.
//   - Fallback synthesis: Synthesize deterministically builds five flashcards
//     from key terms of the original example, using the exported StopWords and
//     FallbackTemplates tables.
//
// Resolve composes the last two, and Service wires them to a Completer (the
// Gemini adapter in production). The same prompt, extract, validate and
// fall back pattern is applied to study plans, study tips, progress analysis
// and quizzes, whose model responses are additionally checked against JSON
// schemas.
//
// Everything here except Service is a pure function of its inputs and safe
// for concurrent use.
package generation
