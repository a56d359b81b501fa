package sec

import (
	"time"

	"github.com/mmcdole/gofeed"

	"insiderdigest/internal/model"
)

// entryTime normalizes an entry timestamp to a UTC instant. The feed carries
// RFC3339 strings with a Z or numeric offset; gofeed also exposes pre-parsed
// times for shapes it recognizes, and either path is accepted.
func entryTime(item *gofeed.Item) (time.Time, bool) {
	for _, raw := range []string{item.Updated, item.Published} {
		if raw == "" {
			continue
		}
		if t, err := time.Parse(time.RFC3339, raw); err == nil {
			return t.UTC(), true
		}
	}
	for _, parsed := range []*time.Time{item.UpdatedParsed, item.PublishedParsed} {
		if parsed != nil {
			return parsed.UTC(), true
		}
	}
	return time.Time{}, false
}

// FilterRecent keeps entries updated within the trailing window, preserving
// feed order, and stops once limit entries have been collected even if later
// entries would qualify. An entry exactly at the window boundary is kept.
// Entries with no parseable timestamp are dropped silently.
func FilterRecent(items []*gofeed.Item, now time.Time, window time.Duration, limit int) []model.Filing {
	cutoff := now.UTC().Add(-window)

	filings := make([]model.Filing, 0, limit)
	for _, item := range items {
		if len(filings) >= limit {
			break
		}

		t, ok := entryTime(item)
		if !ok {
			continue
		}
		if t.Before(cutoff) {
			continue
		}

		filings = append(filings, model.Filing{
			Company: item.Title,
			Link:    item.Link,
			Updated: t,
			Summary: item.Description,
		})
	}

	return filings
}
