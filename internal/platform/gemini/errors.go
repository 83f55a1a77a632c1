package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/phrazzld/flashgen/internal/generation"
	"google.golang.org/genai"
)

// ErrRequestRejected is returned when the Gemini API refuses a request for a
// reason that retrying cannot fix, such as an invalid key or model name.
var ErrRequestRejected = errors.New("request rejected by Gemini API")

// classifyError reports whether an error from GenerateContent may be retried
// and maps it to one of the sentinel errors.
func classifyError(err error) (bool, error) {
	var apiErr *genai.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.Code == http.StatusTooManyRequests, apiErr.Code >= http.StatusInternalServerError:
			return true, fmt.Errorf("%w: status %d: %v", generation.ErrTransientFailure, apiErr.Code, err)
		default:
			return false, fmt.Errorf("%w: status %d: %v", ErrRequestRejected, apiErr.Code, err)
		}
	}

	if errors.Is(err, context.Canceled) {
		return false, fmt.Errorf("%w: %v", generation.ErrTransientFailure, err)
	}

	// Network failures and per-attempt timeouts.
	return true, fmt.Errorf("%w: %v", generation.ErrTransientFailure, err)
}

// responseText extracts the text of a successful response.
func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil {
		return "", fmt.Errorf("%w: nil response", generation.ErrInvalidResponse)
	}

	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("%w: no content generated", generation.ErrInvalidResponse)
	}

	if resp.Candidates[0].FinishReason == genai.FinishReasonSafety {
		return "", fmt.Errorf("%w: content blocked by safety filters", generation.ErrContentBlocked)
	}

	if resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("%w: empty content in response", generation.ErrInvalidResponse)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("%w: response contained no text", generation.ErrInvalidResponse)
	}
	return text, nil
}
