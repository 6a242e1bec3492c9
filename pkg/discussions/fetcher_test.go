package discussions

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"discussion-urls/pkg/httpclient"
)

func TestDocumentFetcher_SendsConfiguredUserAgent(t *testing.T) {
	var gotUserAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		w.Write([]byte(`<div class="forum_pagination">Page 1 of 2</div>`))
	}))
	defer server.Close()

	client := httpclient.NewClient(httpclient.Config{UserAgent: "discussion-urls-test/1.0"})
	fetcher := NewDocumentFetcher(client)

	doc, err := fetcher.FetchDocument(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("FetchDocument failed: %v", err)
	}

	if gotUserAgent != "discussion-urls-test/1.0" {
		t.Errorf("Expected configured User-Agent, got %q", gotUserAgent)
	}
	if got := MaxPage(doc); got != 2 {
		t.Errorf("Expected page count 2 from served markup, got %d", got)
	}
}

func TestDocumentFetcher_RejectsNonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer server.Close()

	fetcher := NewDocumentFetcher(httpclient.NewClient(httpclient.Config{}))

	if _, err := fetcher.FetchDocument(context.Background(), server.URL); err == nil {
		t.Fatal("Expected an error for a 404 response")
	}
}
