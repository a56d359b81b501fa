package model

import "time"

// Filing is one insider-trading disclosure entry from the EDGAR Form 4 feed.
// Updated is always UTC. Filings are never mutated after fetch.
type Filing struct {
	Company string
	Link    string
	Updated time.Time
	Summary string
}
