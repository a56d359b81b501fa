package config

import (
	"fmt"
	"os"
	"time"
)

const (
	ProviderGroq      = "groq"
	ProviderAnthropic = "anthropic"
)

const defaultFeedURL = "https://www.sec.gov/cgi-bin/browse-edgar?action=getcurrent&type=4&count=100&output=atom"

// Config is the full process configuration, loaded once at startup and
// passed to components. Nothing reads the environment after Load returns.
type Config struct {
	Provider string
	APIKey   string

	PrimaryModel  string
	FallbackModel string

	FeedURL     string
	FeedTimeout time.Duration

	TweetsCSV  string
	YouTubeCSV string

	PerUserCap     int
	LookbackWindow time.Duration
	FilingLimit    int

	FilingsCSV    string
	SummariesCSV  string
	SummariesXLSX string
}

// Load builds the configuration from the environment, filling in defaults.
// A missing API key for the selected provider is the only fatal condition.
func Load() (Config, error) {
	cfg := Config{
		Provider:       ProviderGroq,
		FeedURL:        defaultFeedURL,
		FeedTimeout:    30 * time.Second,
		TweetsCSV:      "tweets_dataset.csv",
		YouTubeCSV:     "youtube_dataset.csv",
		PerUserCap:     5,
		LookbackWindow: 48 * time.Hour,
		FilingLimit:    20,
		FilingsCSV:     "sec_filings.csv",
		SummariesCSV:   "sentiment_results.csv",
		SummariesXLSX:  "sentiment_results.xlsx",
	}

	if provider := os.Getenv("LLM_PROVIDER"); provider != "" {
		cfg.Provider = provider
	}

	switch cfg.Provider {
	case ProviderGroq:
		cfg.APIKey = os.Getenv("GROQ_API_KEY")
		cfg.PrimaryModel = "llama-3.3-70b-versatile"
		cfg.FallbackModel = "llama-3.1-8b-instant"
		if cfg.APIKey == "" {
			return Config{}, fmt.Errorf("missing GROQ_API_KEY in environment")
		}
	case ProviderAnthropic:
		cfg.APIKey = os.Getenv("ANTHROPIC_API_KEY")
		cfg.PrimaryModel = "claude-haiku-4-5"
		cfg.FallbackModel = "claude-3-5-haiku-latest"
		if cfg.APIKey == "" {
			return Config{}, fmt.Errorf("missing ANTHROPIC_API_KEY in environment")
		}
	default:
		return Config{}, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}

	if model := os.Getenv("PRIMARY_MODEL"); model != "" {
		cfg.PrimaryModel = model
	}
	if model := os.Getenv("FALLBACK_MODEL"); model != "" {
		cfg.FallbackModel = model
	}
	if url := os.Getenv("SEC_FEED_URL"); url != "" {
		cfg.FeedURL = url
	}
	if path := os.Getenv("TWEETS_CSV_PATH"); path != "" {
		cfg.TweetsCSV = path
	}
	if path := os.Getenv("YOUTUBE_CSV_PATH"); path != "" {
		cfg.YouTubeCSV = path
	}
	if timeout := os.Getenv("FEED_TIMEOUT"); timeout != "" {
		d, err := time.ParseDuration(timeout)
		if err != nil {
			return Config{}, fmt.Errorf("invalid FEED_TIMEOUT: %w", err)
		}
		cfg.FeedTimeout = d
	}

	return cfg, nil
}
