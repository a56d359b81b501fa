package llm

import (
	"fmt"
	"strings"
	"time"

	"insiderdigest/internal/model"
)

const (
	// DefaultFilingItems bounds how many filings are rendered into a prompt.
	DefaultFilingItems = 20
	// DefaultTruncateAt bounds per-post content length in a prompt.
	DefaultTruncateAt = 400
)

// NoFilingsSentinel is returned in place of a prompt when there is nothing
// to summarize; callers must not invoke the completion service for it.
const NoFilingsSentinel = "No SEC filings to summarize."

func NoPostsSentinel(platform string) string {
	return fmt.Sprintf("No %s posts to summarize.", platform)
}

// truncate cuts by characters, not bytes, so a multi-byte rune is never
// split at the boundary.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}

// BuildFilingPrompt renders at most maxItems filings, in input order, into
// the analyst instruction.
func BuildFilingPrompt(filings []model.Filing, maxItems int) string {
	if len(filings) == 0 {
		return NoFilingsSentinel
	}
	if len(filings) > maxItems {
		filings = filings[:maxItems]
	}

	var sb strings.Builder
	sb.WriteString("You are an expert financial analyst. Summarize the following recent SEC Form 4 insider filings for an investor:\n\n")
	for _, f := range filings {
		sb.WriteString(fmt.Sprintf("- %s\n  link: %s\n  updated: %s\n", f.Company, f.Link, f.Updated.Format(time.RFC3339)))
	}
	sb.WriteString("\nProvide 4-6 concise bullet points: notable insider buys/sells, companies to watch, and whether the activity is notable.")
	return sb.String()
}

// BuildPostsPrompt renders the posts with their content truncated to keep
// the prompt bounded. The JSON shape is requested, not enforced: whatever
// the model returns is passed through unmodified.
func BuildPostsPrompt(posts []model.Post, platform string, truncateAt int) string {
	if len(posts) == 0 {
		return NoPostsSentinel(platform)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("You are an expert market/entertainment analyst. For the %s posts below, ", platform))
	sb.WriteString("label sentiment as 'positive', 'negative', or 'neutral', give a 1-2 word main theme, and summarize overall in 3 sentences.\n\n")
	for i, p := range posts {
		sb.WriteString(fmt.Sprintf("[%d] user: %s\n    content: %s\n", i, p.User, truncate(p.Content, truncateAt)))
	}
	sb.WriteString("\nRespond in JSON with keys: per_post (list of {user, content, label, theme}), overall (summary).")
	return sb.String()
}
