package llm

import (
	"fmt"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/go-playground/assert/v2"

	"insiderdigest/internal/model"
)

func TestBuildFilingPrompt(t *testing.T) {
	filings := []model.Filing{
		{
			Company: "4 - ACME CORP (Issuer)",
			Link:    "https://www.sec.gov/Archives/edgar/data/1/doc.html",
			Updated: time.Date(2025, 6, 1, 11, 30, 0, 0, time.UTC),
		},
	}

	got := BuildFilingPrompt(filings, DefaultFilingItems)

	assert.Equal(t, true, strings.Contains(got, "4 - ACME CORP (Issuer)"))
	assert.Equal(t, true, strings.Contains(got, "https://www.sec.gov/Archives/edgar/data/1/doc.html"))
	assert.Equal(t, true, strings.Contains(got, "2025-06-01T11:30:00Z"))
	assert.Equal(t, true, strings.Contains(got, "4-6 concise bullet points"))
}

func TestBuildFilingPrompt_Empty(t *testing.T) {
	got := BuildFilingPrompt(nil, DefaultFilingItems)

	assert.Equal(t, NoFilingsSentinel, got)
}

func TestBuildFilingPrompt_BoundsItems(t *testing.T) {
	var filings []model.Filing
	for i := 0; i < 25; i++ {
		filings = append(filings, model.Filing{Company: fmt.Sprintf("company-%d", i)})
	}

	got := BuildFilingPrompt(filings, 20)

	assert.Equal(t, true, strings.Contains(got, "company-19"))
	assert.Equal(t, false, strings.Contains(got, "company-20"))
}

func TestBuildPostsPrompt(t *testing.T) {
	posts := []model.Post{
		{User: "alice", Content: "market looks great"},
		{User: "bob", Content: "not convinced"},
	}

	got := BuildPostsPrompt(posts, "Twitter", DefaultTruncateAt)

	assert.Equal(t, true, strings.Contains(got, "Twitter posts"))
	assert.Equal(t, true, strings.Contains(got, "user: alice"))
	assert.Equal(t, true, strings.Contains(got, "market looks great"))
	assert.Equal(t, true, strings.Contains(got, "per_post"))
	assert.Equal(t, true, strings.Contains(got, "'positive', 'negative', or 'neutral'"))
}

func TestBuildPostsPrompt_Empty(t *testing.T) {
	got := BuildPostsPrompt(nil, "YouTube", DefaultTruncateAt)

	assert.Equal(t, "No YouTube posts to summarize.", got)
}

func TestBuildPostsPrompt_TruncatesLongContent(t *testing.T) {
	posts := []model.Post{
		{User: "alice", Content: strings.Repeat("a", 450)},
	}

	got := BuildPostsPrompt(posts, "Twitter", 400)

	assert.Equal(t, true, strings.Contains(got, strings.Repeat("a", 400)+"..."))
	assert.Equal(t, false, strings.Contains(got, strings.Repeat("a", 401)))
}

func TestBuildPostsPrompt_TruncatesByRunes(t *testing.T) {
	// The emoji straddles the byte boundary; truncation must count
	// characters and keep the prompt valid UTF-8.
	posts := []model.Post{
		{User: "alice", Content: strings.Repeat("a", 399) + "😀😀"},
	}

	got := BuildPostsPrompt(posts, "Twitter", 400)

	assert.Equal(t, true, utf8.ValidString(got))
	assert.Equal(t, true, strings.Contains(got, strings.Repeat("a", 399)+"😀..."))
	assert.Equal(t, false, strings.Contains(got, "😀😀"))
}

func TestBuildPostsPrompt_NoEllipsisAtExactLength(t *testing.T) {
	posts := []model.Post{
		{User: "alice", Content: strings.Repeat("a", 400)},
	}

	got := BuildPostsPrompt(posts, "Twitter", 400)

	assert.Equal(t, true, strings.Contains(got, strings.Repeat("a", 400)))
	assert.Equal(t, false, strings.Contains(got, "a..."))
}
