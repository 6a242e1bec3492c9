package discussions

import (
	"context"
	"fmt"
	"net/http"

	"github.com/PuerkitoBio/goquery"

	"discussion-urls/pkg/httpclient"
)

// Fetcher fetches a URL and returns the parsed document. Implementations
// abstract "perform a GET and parse" so the generator can be tested with
// canned documents.
type Fetcher interface {
	FetchDocument(ctx context.Context, url string) (*goquery.Document, error)
}

// DocumentFetcher fetches pages over HTTP using the shared client.
type DocumentFetcher struct {
	client *httpclient.Client
}

// NewDocumentFetcher creates a fetcher backed by the given HTTP client.
func NewDocumentFetcher(client *httpclient.Client) *DocumentFetcher {
	return &DocumentFetcher{client: client}
}

// FetchDocument performs a GET for url and parses the response body.
// Non-2xx responses are errors.
func (f *DocumentFetcher) FetchDocument(ctx context.Context, url string) (*goquery.Document, error) {
	resp, err := f.client.Get(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("fetch %s: unexpected status code %d", url, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", url, err)
	}

	return doc, nil
}
