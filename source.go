package watchapi

import (
	"context"
	"strings"
)

// Document is the raw input to extraction: the collection page markup and
// the ordered product links paired positionally with its images.
type Document struct {
	HTML  string
	Links []string
}

// DocumentSource supplies the document to extract a collection from.
type DocumentSource interface {
	// Load returns the current document.
	// The context controls timeout and cancellation for remote sources.
	Load(ctx context.Context) (*Document, error)
}

// LinkSource supplies the ordered list of product links.
type LinkSource interface {
	Links(ctx context.Context) ([]string, error)
}

// StaticLinks is a LinkSource over a fixed list.
type StaticLinks []string

// Links returns a copy of the list.
func (l StaticLinks) Links(_ context.Context) ([]string, error) {
	return append([]string(nil), l...), nil
}

// Fetcher retrieves HTML from URLs.
// Implementations may use browser automation to handle JavaScript-rendered content.
type Fetcher interface {
	// Fetch retrieves the page at url and returns its HTML.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases resources held by the fetcher.
	Close() error
}

// ParseLinks reads a link list with one URL per line.
// Blank lines and lines starting with # are skipped; order is preserved.
func ParseLinks(text string) []string {
	var links []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		links = append(links, line)
	}
	return links
}
