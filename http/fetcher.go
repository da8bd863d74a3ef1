// Package http implements the watch collection JSON API and HTTP-based
// document and link sources for pages that don't require JavaScript rendering.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/watchapi"
	"golang.org/x/time/rate"
)

// DefaultFetchTimeout bounds a single page request.
const DefaultFetchTimeout = 10 * time.Second

// MaxPageBytes caps how much of a collection page is read.
const MaxPageBytes = 10 << 20

// UserAgent identifies page requests to the upstream shop.
const UserAgent = "watchapi/1.0"

// Ensure Fetcher implements watchapi.Fetcher at compile time.
var _ watchapi.Fetcher = (*Fetcher)(nil)

// Fetcher downloads collection pages over plain HTTP. Scripts on the page
// are not executed, so the viewer element must be in the served markup.
//
// Requests are paced by a token bucket with a burst of 1. Unlimited unless
// WithRateLimit is given.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
	limiter *rate.Limiter
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithRateLimit allows at most rps requests per second.
// A non-positive rps removes the limit.
func WithRateLimit(rps float64) Option {
	return func(f *Fetcher) {
		limit := rate.Inf
		if rps > 0 {
			limit = rate.Limit(rps)
		}
		f.limiter = rate.NewLimiter(limit, 1)
	}
}

// NewFetcher creates a new Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
		limiter: rate.NewLimiter(rate.Inf, 1),
	}
	for _, opt := range opts {
		opt(f)
	}
	f.client = &http.Client{Timeout: f.timeout}
	return f
}

// Fetch waits for the rate limiter, then downloads url. Any status other
// than 200 is an error. Bodies larger than MaxPageBytes are truncated.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("waiting for rate limit: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", watchapi.Errorf(watchapi.EINVALID, "invalid page URL %q: %v", url, err)
	}
	req.Header.Set("User-Agent", UserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d fetching %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxPageBytes))
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", url, err)
	}
	return string(body), nil
}

// Close is a no-op. It exists to satisfy watchapi.Fetcher.
func (f *Fetcher) Close() error {
	return nil
}
