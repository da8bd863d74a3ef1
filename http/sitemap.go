package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/watchapi"
)

// Ensure SitemapLinks implements watchapi.LinkSource.
var _ watchapi.LinkSource = (*SitemapLinks)(nil)

// SitemapLinks reads product links from a sitemap. URLs keep their
// sitemap order, which must match the order of the collection strip.
type SitemapLinks struct {
	client *http.Client
	url    string
	prefix string
}

// NewSitemapLinks creates a SitemapLinks for the sitemap at sitemapURL.
// Only URLs starting with prefix are kept; an empty prefix keeps all.
// If client is nil, http.DefaultClient is used.
func NewSitemapLinks(client *http.Client, sitemapURL, prefix string) *SitemapLinks {
	if client == nil {
		client = http.DefaultClient
	}
	return &SitemapLinks{client: client, url: sitemapURL, prefix: prefix}
}

// Links fetches the sitemap, following sitemap indexes, and returns the
// deduplicated URLs that match the prefix.
func (s *SitemapLinks) Links(ctx context.Context) ([]string, error) {
	urls, err := s.processSitemap(ctx, s.url, make(map[string]bool))
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	links := []string{}
	for _, u := range urls {
		if seen[u] || !strings.HasPrefix(u, s.prefix) {
			continue
		}
		seen[u] = true
		links = append(links, u)
	}
	return links, nil
}

// processSitemap fetches and parses a sitemap, handling both urlset and sitemapindex.
func (s *SitemapLinks) processSitemap(ctx context.Context, sitemapURL string, seen map[string]bool) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Avoid processing the same sitemap twice
	if seen[sitemapURL] {
		return nil, nil
	}
	seen[sitemapURL] = true

	body, err := s.fetchURL(ctx, sitemapURL)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(body); err != nil {
		return nil, fmt.Errorf("parsing sitemap XML: %w", err)
	}

	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("empty sitemap XML")
	}

	if root.Tag == "sitemapindex" {
		var all []string
		for _, loc := range locs(root, "sitemap") {
			urls, err := s.processSitemap(ctx, loc, seen)
			if err != nil {
				return nil, err
			}
			all = append(all, urls...)
		}
		return all, nil
	}

	return locs(root, "url"), nil
}

// locs returns the trimmed <loc> text of each child element named tag.
func locs(root *etree.Element, tag string) []string {
	var out []string
	for _, el := range root.SelectElements(tag) {
		loc := el.SelectElement("loc")
		if loc == nil {
			continue
		}
		if u := strings.TrimSpace(loc.Text()); u != "" {
			out = append(out, u)
		}
	}
	return out
}

// fetchURL fetches a URL and returns the response body.
func (s *SitemapLinks) fetchURL(ctx context.Context, targetURL string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, targetURL)
	}

	return resp.Body, nil
}
