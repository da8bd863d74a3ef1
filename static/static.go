// Package static provides the embedded reference collection page and the
// product links that accompany it.
//
// The page is a snapshot of the watch collection viewer. Its collection strip
// holds eight watches, the viewer element is configured for the "Watches"
// category, and the 3D toggle is active.
package static

import (
	"context"
	_ "embed"

	"github.com/fwojciec/watchapi"
)

//go:embed assets/collection.html
var collectionHTML string

//go:embed assets/links.txt
var linksText string

// Ensure Source implements watchapi.DocumentSource at compile time.
var _ watchapi.DocumentSource = (*Source)(nil)

// HTML returns the reference collection page markup.
func HTML() string {
	return collectionHTML
}

// Links returns the product links for the reference page, in strip order.
func Links() []string {
	return watchapi.ParseLinks(linksText)
}

// Source serves the reference document. It never fails.
type Source struct{}

// NewSource creates a new Source.
func NewSource() *Source {
	return &Source{}
}

// Load returns the reference document. Each call returns a fresh link slice.
func (s *Source) Load(ctx context.Context) (*watchapi.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &watchapi.Document{HTML: HTML(), Links: Links()}, nil
}
