// Package fs implements document and link sources backed by local files.
package fs

import (
	"context"
	"fmt"
	"os"

	"github.com/fwojciec/watchapi"
)

// Ensure Source implements watchapi.DocumentSource at compile time.
var _ watchapi.DocumentSource = (*Source)(nil)

// Source reads the collection page from a file on every Load, so edits to
// the file are picked up without a restart.
type Source struct {
	htmlPath string
	links    watchapi.LinkSource
}

// NewSource creates a Source reading markup from htmlPath.
// If links is nil the document carries no links.
func NewSource(htmlPath string, links watchapi.LinkSource) *Source {
	return &Source{htmlPath: htmlPath, links: links}
}

// Load reads the markup file and the link list.
func (s *Source) Load(ctx context.Context) (*watchapi.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.htmlPath)
	if err != nil {
		return nil, fmt.Errorf("reading collection page: %w", err)
	}

	doc := &watchapi.Document{HTML: string(data)}
	if s.links != nil {
		if doc.Links, err = s.links.Links(ctx); err != nil {
			return nil, err
		}
	}
	return doc, nil
}

// Ensure LinkFile implements watchapi.LinkSource at compile time.
var _ watchapi.LinkSource = LinkFile("")

// LinkFile is the path of a link list with one URL per line.
// Blank lines and lines starting with # are ignored.
type LinkFile string

// Links reads and parses the file.
func (f LinkFile) Links(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(string(f))
	if err != nil {
		return nil, fmt.Errorf("reading link list: %w", err)
	}
	return watchapi.ParseLinks(string(data)), nil
}
