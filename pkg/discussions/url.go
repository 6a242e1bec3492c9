// Package discussions generates Steam discussion-search page URLs for app
// IDs. It fetches the first result page per app, infers the total number of
// result pages from the markup, and emits every page URL in order.
package discussions

import "fmt"

// The search URL layout is a service contract with steamcommunity.com: a
// fixed forum selector, deleted content included, empty search term. Page 1
// carries no page parameter; pages 2+ append "&p=N".
const (
	baseURLTemplate = "https://steamcommunity.com/app/%s/discussions/search/?gidforum=1638661595058265180&include_deleted=1&q=+"
	pageURLTemplate = "%s&p=%d"
)

// BaseURL returns the search URL for the first page of an app's discussions.
func BaseURL(appID string) string {
	return fmt.Sprintf(baseURLTemplate, appID)
}

// PageURL returns the search URL for the given result page of an app's
// discussions. Page 1 of a run is emitted as BaseURL, without the page
// parameter.
func PageURL(appID string, page int) string {
	return fmt.Sprintf(pageURLTemplate, BaseURL(appID), page)
}
