package llm

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// retiredMarkers are the substrings the completion service puts in errors
// when a model id is no longer served or rejected outright. Only this
// failure class earns a fallback hop.
var retiredMarkers = []string{
	"decommission",
	"model_decommissioned",
	"invalid_request_error",
}

// isModelRetired reports whether err looks like a retired or rejected model.
// Matching is a case-insensitive substring check on the error text.
func isModelRetired(err error) bool {
	msg := strings.ToLower(err.Error())
	for _, marker := range retiredMarkers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}

// FallbackClient wraps a Completer with a primary model and a single
// fallback hop. Complete never surfaces an error: failures come back as
// text, which downstream code writes verbatim into the outputs. One
// source's completion failure must not abort the rest of the run.
type FallbackClient struct {
	inner    Completer
	primary  string
	fallback string
}

func NewFallbackClient(inner Completer, primary, fallback string) *FallbackClient {
	return &FallbackClient{inner: inner, primary: primary, fallback: fallback}
}

func (c *FallbackClient) Complete(ctx context.Context, prompt string, maxTokens int) string {
	out, err := c.inner.Complete(ctx, c.primary, prompt, maxTokens)
	if err == nil {
		return out
	}

	if !isModelRetired(err) {
		return fmt.Sprintf("[LLM error] %v", err)
	}

	slog.Warn("primary model failed, attempting fallback",
		"primary", c.primary, "fallback", c.fallback, "error", err)

	out, err = c.inner.Complete(ctx, c.fallback, prompt, maxTokens)
	if err != nil {
		return fmt.Sprintf("[LLM error fallback] %v", err)
	}
	return out
}
