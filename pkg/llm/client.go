package llm

import "context"

// Completer is a single model invocation against a completion service.
type Completer interface {
	Complete(ctx context.Context, model, prompt string, maxTokens int) (string, error)
}

// SummaryClient is what the pipeline needs from the completion layer: a
// call that always yields text, with failures already encoded in it.
type SummaryClient interface {
	Complete(ctx context.Context, prompt string, maxTokens int) string
}
