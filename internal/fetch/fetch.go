// Package fetch retrieves raw source payloads over HTTP.
//
// Every request carries a fixed browser User-Agent (UFCStats serves a
// different page to obvious bots) and a hard timeout so a stuck fetch can
// never hang the scheduler loop. Non-2xx responses surface as a
// *TransportError, never as a decoded body.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	// UserAgent mirrors a desktop browser; see package comment.
	UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 " +
		"(KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"
	Timeout = 20 * time.Second
)

// Fetcher retrieves the raw bytes behind a URL.
type Fetcher interface {
	Get(ctx context.Context, url string) ([]byte, error)
}

// TransportError reports a failed fetch: network error, timeout, or a
// non-2xx response. StatusCode is zero when the request never completed.
type TransportError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetching %s: unexpected status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetching %s: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// HTTPFetcher is the production Fetcher.
type HTTPFetcher struct {
	client *http.Client
}

// New creates an HTTPFetcher with the package timeout.
func New() *HTTPFetcher {
	return &HTTPFetcher{
		client: &http.Client{
			Timeout: Timeout,
		},
	}
}

// Get fetches url and returns the response body.
func (f *HTTPFetcher) Get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &TransportError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &TransportError{URL: url, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{URL: url, Err: err}
	}
	return body, nil
}
