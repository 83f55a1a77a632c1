package generation

import "context"

// Completer is the single capability required from the AI collaborator:
// turn a prompt into response text. Implementations may block, retry and
// fail; the generation pipeline treats any error as "no response text".
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// CompleterFunc adapts an ordinary function to the Completer interface.
type CompleterFunc func(ctx context.Context, prompt string) (string, error)

// Complete calls f(ctx, prompt).
func (f CompleterFunc) Complete(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}
