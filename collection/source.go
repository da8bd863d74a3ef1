package collection

import (
	"context"
	"fmt"

	"github.com/fwojciec/watchapi"
	"golang.org/x/sync/errgroup"
)

// Ensure FetchedSource implements watchapi.DocumentSource at compile time.
var _ watchapi.DocumentSource = (*FetchedSource)(nil)

// FetchedSource loads the collection page with a Fetcher and its product
// links from a LinkSource. Both are requested concurrently.
type FetchedSource struct {
	Fetcher watchapi.Fetcher
	URL     string

	// Links supplies the product links. A nil Links yields no links.
	Links watchapi.LinkSource
}

// Load fetches the page and links. If either fails, the other is canceled.
func (s *FetchedSource) Load(ctx context.Context) (*watchapi.Document, error) {
	var doc watchapi.Document

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		html, err := s.Fetcher.Fetch(ctx, s.URL)
		if err != nil {
			return fmt.Errorf("fetching %s: %w", s.URL, err)
		}
		doc.HTML = html
		return nil
	})
	if s.Links != nil {
		g.Go(func() error {
			links, err := s.Links.Links(ctx)
			if err != nil {
				return fmt.Errorf("loading links: %w", err)
			}
			doc.Links = links
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &doc, nil
}
