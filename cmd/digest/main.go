package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"insiderdigest/internal/config"
	"insiderdigest/internal/model"
	"insiderdigest/internal/report"
	"insiderdigest/pkg/llm"
	"insiderdigest/pkg/sec"
	"insiderdigest/pkg/social"
)

// The pipeline is strictly sequential: each stage runs to completion before
// the next starts, and every failure past startup degrades to an empty set
// or an error string in the output instead of aborting the run. Concurrent
// runs against the same output paths are the caller's responsibility.
func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("error loading configuration: %v", err)
	}

	var completer llm.Completer
	switch cfg.Provider {
	case config.ProviderAnthropic:
		completer = llm.NewAnthropicClient(cfg.APIKey)
	default:
		completer = llm.NewGroqClient(cfg.APIKey)
	}
	client := llm.NewFallbackClient(completer, cfg.PrimaryModel, cfg.FallbackModel)

	ctx := context.Background()

	secClient := sec.NewClient(cfg.FeedURL, cfg.FeedTimeout)
	items, err := secClient.FetchCurrent(ctx)
	if err != nil {
		slog.Warn("sec feed fetch failed, continuing with empty set", "error", err)
	}

	filings := sec.FilterRecent(items, time.Now().UTC(), cfg.LookbackWindow, cfg.FilingLimit)
	if len(filings) > 0 {
		if err := report.WriteFilingsCSV(cfg.FilingsCSV, filings); err != nil {
			slog.Error("error writing filings CSV", "path", cfg.FilingsCSV, "error", err)
		} else {
			slog.Info("saved sec filings", "count", len(filings), "path", cfg.FilingsCSV)
		}
	} else {
		slog.Warn("no recent sec form 4 filings found", "window", cfg.LookbackWindow.String())
	}
	secSummary := llm.SummarizeFilings(ctx, client, filings)

	tweets := loadPosts(cfg.TweetsCSV, cfg.PerUserCap)
	twitterSummary := llm.SummarizePosts(ctx, client, tweets, "Twitter")

	youtube := loadPosts(cfg.YouTubeCSV, cfg.PerUserCap)
	youtubeSummary := llm.SummarizePosts(ctx, client, youtube, "YouTube")

	sections := []model.SummarySection{
		{Section: model.SectionSEC, Content: secSummary},
		{Section: model.SectionTwitter, Content: twitterSummary},
		{Section: model.SectionYouTube, Content: youtubeSummary},
	}

	if err := report.WriteSummariesCSV(cfg.SummariesCSV, sections); err != nil {
		slog.Error("error writing summaries CSV", "path", cfg.SummariesCSV, "error", err)
	}
	if err := report.WriteWorkbook(cfg.SummariesXLSX, filings, tweets, youtube, sections); err != nil {
		slog.Error("error writing workbook", "path", cfg.SummariesXLSX, "error", err)
	}

	slog.Info("pipeline complete",
		"filings", len(filings), "tweets", len(tweets), "youtube", len(youtube))
}

// loadPosts reads a dataset, caps it per user and persists the capped set
// next to the input. Any read failure degrades to an empty set.
func loadPosts(path string, perUser int) []model.Post {
	posts, err := social.ReadPosts(path)
	if err != nil {
		slog.Warn("dataset unavailable, skipping", "path", path, "error", err)
		return nil
	}

	capped := social.CapPerEntity(posts, perUser)

	normalized := report.NormalizedPath(path)
	if err := report.WritePostsCSV(normalized, capped); err != nil {
		slog.Error("error writing normalized CSV", "path", normalized, "error", err)
	} else {
		slog.Info("normalized dataset saved", "path", normalized, "rows", len(capped))
	}

	return capped
}
