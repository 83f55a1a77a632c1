// Package gemini implements generation.Completer on top of Google's Gemini
// API (google.golang.org/genai).
//
// GeminiGenerator sends one prompt per call and returns the raw response
// text; it never interprets that text, which is the job of the generation
// package's reconcilers. Each call is bounded by a per-attempt timeout.
// Rate limiting, server errors and network failures are retried with
// exponential backoff and jitter, while blocked content, empty responses
// and rejected requests fail immediately.
package gemini
