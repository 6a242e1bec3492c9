// Package httpclient wraps http.Client with the request headers and timeout
// used for all outgoing Steam requests.
package httpclient

import (
	"context"
	"net/http"
	"time"
)

// DefaultUserAgent mimics a desktop browser; the discussion search pages
// serve a reduced markup variant to unknown clients.
const DefaultUserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 " +
	"(KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"

// Config holds client settings shared by every request.
type Config struct {
	UserAgent string
	Timeout   time.Duration
}

// Client is an http.Client wrapper that applies the configured headers on
// every request.
type Client struct {
	client    *http.Client
	userAgent string
}

// NewClient creates a client with the given configuration. Zero values fall
// back to DefaultUserAgent and a 30 second timeout.
func NewClient(cfg Config) *Client {
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}

	return &Client{
		client: &http.Client{
			Timeout: cfg.Timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// Follow up to 10 redirects
				if len(via) >= 10 {
					return http.ErrUseLastResponse
				}
				return nil
			},
		},
		userAgent: cfg.UserAgent,
	}
}

// Do executes a request with the configured headers applied.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	c.setHeaders(req)
	return c.client.Do(req)
}

// Get is a convenience method for context-bound GET requests.
func (c *Client) Get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	return c.Do(req)
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
}
