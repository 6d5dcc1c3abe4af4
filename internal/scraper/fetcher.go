// Package scraper implements on-demand page fetching and the extraction
// endpoint. The extension normally ships the page HTML it already has; the
// fetcher covers the URL-only path where the service downloads the posting
// itself.
package scraper

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	httpTimeout = 15 * time.Second

	// Job postings are text pages; anything bigger than this is not one.
	maxBodyBytes = 4 << 20

	userAgent = "jobtrack/1.0 (+job application tracker)"
)

// PageFetcher downloads a single posting page over HTTP.
type PageFetcher struct {
	client *http.Client
}

// NewPageFetcher constructs a fetcher with a shared HTTP client.
func NewPageFetcher() *PageFetcher {
	return &PageFetcher{
		client: &http.Client{Timeout: httpTimeout},
	}
}

// Fetch retrieves the page at pageURL and returns its HTML. Non-200
// responses are errors; the body read is capped at maxBodyBytes.
func (f *PageFetcher) Fetch(ctx context.Context, pageURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("http GET: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch %s returned %d", pageURL, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}

	return string(body), nil
}
