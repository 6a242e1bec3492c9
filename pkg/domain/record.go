package domain

// URLRecord is one generated discussion-search page URL for an app.
type URLRecord struct {
	AppID string // Steam application ID the URL belongs to
	URL   string // full search URL for one result page
}
