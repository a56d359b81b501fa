package model

const (
	SectionSEC     = "sec_summary"
	SectionTwitter = "twitter_summary"
	SectionYouTube = "youtube_summary"
)

// SummarySection is one generated summary, one per source category per run.
type SummarySection struct {
	Section string
	Content string
}
