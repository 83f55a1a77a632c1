package generation

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// codeFenceRegex matches a Markdown code-fence delimiter together with an
// optional language tag, e.g. "```" or "```json".
var codeFenceRegex = regexp.MustCompile("```[A-Za-z0-9_+-]*")

// normalizeResponse trims the model text and removes every code-fence
// delimiter, wherever it appears.
func normalizeResponse(raw string) string {
	text := strings.TrimSpace(raw)
	text = codeFenceRegex.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

// locatePayload returns the substring running from the first open delimiter
// to the last close delimiter, inclusive. It fails when the open delimiter is
// missing or the last close does not come after it.
func locatePayload(text string, open, closing byte) (string, error) {
	start := strings.IndexByte(text, open)
	if start == -1 {
		return "", fmt.Errorf("%w: no %q found", ErrExtractionFailed, open)
	}

	end := strings.LastIndexByte(text, closing)
	if end <= start {
		return "", fmt.Errorf("%w: no %q after position %d", ErrExtractionFailed, closing, start)
	}

	return text[start : end+1], nil
}

// extractArray normalizes raw and decodes the embedded JSON array into its
// raw elements.
func extractArray(raw string) ([]json.RawMessage, error) {
	payload, err := locatePayload(normalizeResponse(raw), '[', ']')
	if err != nil {
		return nil, err
	}

	var elements []json.RawMessage
	if err := json.Unmarshal([]byte(payload), &elements); err != nil {
		return nil, fmt.Errorf("%w: malformed JSON array: %v", ErrExtractionFailed, err)
	}
	return elements, nil
}

// extractObject normalizes raw and decodes the embedded JSON object into a
// generic value suitable for schema validation, along with its raw bytes.
func extractObject(raw string) (any, []byte, error) {
	payload, err := locatePayload(normalizeResponse(raw), '{', '}')
	if err != nil {
		return nil, nil, err
	}

	var doc any
	if err := json.Unmarshal([]byte(payload), &doc); err != nil {
		return nil, nil, fmt.Errorf("%w: malformed JSON object: %v", ErrExtractionFailed, err)
	}
	return doc, []byte(payload), nil
}

// coerceText renders a decoded JSON value as text. Strings are returned as
// is, numbers keep their literal form, null becomes empty, and composite
// values are re-encoded as compact JSON.
func coerceText(value json.RawMessage) string {
	trimmed := bytes.TrimSpace(value)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return ""
	}

	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err == nil {
			return strings.TrimSpace(s)
		}
	}

	var compact bytes.Buffer
	if err := json.Compact(&compact, trimmed); err != nil {
		return strings.TrimSpace(string(trimmed))
	}
	return strings.TrimSpace(compact.String())
}
