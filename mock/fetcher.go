package mock

import (
	"context"

	"github.com/fwojciec/watchapi"
)

var _ watchapi.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of watchapi.Fetcher.
// A nil CloseFn makes Close a no-op.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

// Fetch calls FetchFn.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

// Close calls CloseFn when set.
func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}
