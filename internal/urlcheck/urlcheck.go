// Package urlcheck performs a one-shot HTTP reachability check.
package urlcheck

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// NewClient returns an HTTP client with the given total request timeout.
// Redirects are followed; the final response is what gets judged.
func NewClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

// Check issues a GET against url and returns the response status code.
// A transport-level failure (DNS, refused connection, timeout) is
// returned as an error; any received status, 200 or not, is not.
func Check(ctx context.Context, client *http.Client, url string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, fmt.Errorf("invalid URL: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	// Drain so the connection can be reused.
	_, _ = io.Copy(io.Discard, resp.Body)

	return resp.StatusCode, nil
}
