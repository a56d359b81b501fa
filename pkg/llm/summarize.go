package llm

import (
	"context"

	"insiderdigest/internal/model"
)

const (
	filingMaxTokens = 1024
	postsMaxTokens  = 1200
)

// SummarizeFilings produces the filings digest. An empty input short-circuits
// to the sentinel without spending a completion call.
func SummarizeFilings(ctx context.Context, client SummaryClient, filings []model.Filing) string {
	if len(filings) == 0 {
		return NoFilingsSentinel
	}
	return client.Complete(ctx, BuildFilingPrompt(filings, DefaultFilingItems), filingMaxTokens)
}

// SummarizePosts produces the per-platform sentiment digest, with the same
// empty-input short circuit.
func SummarizePosts(ctx context.Context, client SummaryClient, posts []model.Post, platform string) string {
	if len(posts) == 0 {
		return NoPostsSentinel(platform)
	}
	return client.Complete(ctx, BuildPostsPrompt(posts, platform, DefaultTruncateAt), postsMaxTokens)
}
