package llm

import "context"

// Client abstracts hosted LLM providers behind a single synchronous
// prompt-completion call. No streaming, no retries.
type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
