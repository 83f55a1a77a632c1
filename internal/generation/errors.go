package generation

import "errors"

// Common errors returned by the generation package
var (
	// ErrExtractionFailed is returned by the reconcilers when no parseable
	// JSON payload of the expected kind could be located in the model text.
	// It never reaches API callers; it routes the request to the fallback.
	ErrExtractionFailed = errors.New("no parseable JSON payload in model response")

	// ErrValidationEmpty is returned when a payload was parsed but none of its
	// records passed validation.
	ErrValidationEmpty = errors.New("model response contained no valid records")

	// ErrUpstreamFailed marks a fallback caused by the AI call itself failing.
	ErrUpstreamFailed = errors.New("language model call failed")

	// ErrUpstreamUnavailable is returned when no language model is configured.
	ErrUpstreamUnavailable = errors.New("language model not configured")

	// ErrInvalidResponse is returned when the LLM response cannot be parsed or is malformed
	ErrInvalidResponse = errors.New("invalid response from language model")

	// ErrContentBlocked is returned when the LLM blocks the content due to safety filters
	ErrContentBlocked = errors.New("content blocked by language model safety filters")

	// ErrTransientFailure is returned for temporary errors that might resolve on retry
	ErrTransientFailure = errors.New("transient error during generation")

	// ErrInvalidConfig is returned when the generator configuration is invalid
	ErrInvalidConfig = errors.New("invalid generator configuration")
)
