package sec

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"
)

// EDGAR rejects requests without a contact-identifying User-Agent.
const userAgent = "insiderdigest/1.0 (+contact@example.com)"

// Client fetches the current Form 4 filings feed from EDGAR.
type Client struct {
	feedURL    string
	httpClient *http.Client
}

func NewClient(feedURL string, timeout time.Duration) *Client {
	return &Client{
		feedURL:    feedURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// FetchCurrent downloads and parses the feed, returning entries in feed
// order. EDGAR serves newest first.
func (c *Client) FetchCurrent(ctx context.Context) ([]*gofeed.Item, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("sec request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sec fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("sec feed returned status %d", resp.StatusCode)
	}

	feed, err := gofeed.NewParser().Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("sec feed parse: %w", err)
	}

	return feed.Items, nil
}
