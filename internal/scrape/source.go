package scrape

import "context"

// DocumentSource produces the raw traffic-stats page for one game and stat
// date. Implementations fetch live from the partner portal or replay saved
// snapshots.
type DocumentSource interface {
	// Fetch returns the page HTML for the app's given stat date (YYYY-MM-DD).
	Fetch(ctx context.Context, appID int64, statDate string) (string, error)

	// Name identifies the source in logs.
	Name() string
}
