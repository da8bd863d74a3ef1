// Package config provides YAML configuration for the watch collection server.
//
// The file selects where the collection page and its product links come from.
// Without a file the embedded reference page is served.
//
// Example configuration:
//
//	source: rod
//	page_url: https://shop.example.com/watches
//	wait_selector: shopar-3d
//	sitemap_url: https://shop.example.com/sitemap.xml
//	sitemap_prefix: https://shop.example.com/products/
//	fetch_timeout: 15s
//	rate_limit: 0.5
package config

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/fwojciec/watchapi"
	"gopkg.in/yaml.v3"
)

// Source kinds.
const (
	SourceStatic = "static"
	SourceFile   = "file"
	SourceHTTP   = "http"
	SourceRod    = "rod"
)

// Defaults applied by Parse.
const (
	DefaultFetchTimeout = 10 * time.Second
	DefaultRateLimit    = 1.0
)

// Config is the root configuration structure.
type Config struct {
	// Source is one of static, file, http, rod. Defaults to static.
	Source string `yaml:"source"`

	// HTMLPath is the collection page file read by the file source.
	HTMLPath string `yaml:"html_path"`

	// PageURL is the collection page fetched by the http and rod sources.
	PageURL string `yaml:"page_url"`

	// WaitSelector is the element the rod source waits for before reading
	// the page. Empty uses the fetcher default.
	WaitSelector string `yaml:"wait_selector"`

	// Links lists product links inline, in strip order.
	Links []string `yaml:"links"`

	// LinksPath is a file with one product link per line.
	LinksPath string `yaml:"links_path"`

	// SitemapURL is a sitemap whose locations become the product links.
	SitemapURL string `yaml:"sitemap_url"`

	// SitemapPrefix keeps only sitemap locations starting with it.
	SitemapPrefix string `yaml:"sitemap_prefix"`

	// FetchTimeout bounds each remote fetch. Defaults to 10s.
	FetchTimeout Duration `yaml:"fetch_timeout"`

	// RateLimit is the number of remote fetches allowed per second.
	// Defaults to 1.
	RateLimit float64 `yaml:"rate_limit"`
}

// Duration wraps time.Duration for YAML unmarshalling.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler for Duration.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}

	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}

	*d = Duration(parsed)
	return nil
}

// Duration returns the underlying time.Duration value.
func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads and parses a configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, watchapi.Errorf(watchapi.EINVALID, "failed to read config file: %v", err)
	}
	return Parse(data)
}

// Parse decodes YAML, applies defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, watchapi.Errorf(watchapi.EINVALID, "failed to parse YAML: %v", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Source == "" {
		c.Source = SourceStatic
	}
	if c.FetchTimeout == 0 {
		c.FetchTimeout = Duration(DefaultFetchTimeout)
	}
	if c.RateLimit == 0 {
		c.RateLimit = DefaultRateLimit
	}
}

// Validate reports the first configuration problem found.
func (c *Config) Validate() error {
	switch c.Source {
	case SourceStatic:
	case SourceFile:
		if c.HTMLPath == "" {
			return watchapi.Errorf(watchapi.EINVALID, "source %q requires html_path", c.Source)
		}
	case SourceHTTP, SourceRod:
		if c.PageURL == "" {
			return watchapi.Errorf(watchapi.EINVALID, "source %q requires page_url", c.Source)
		}
		if err := validateURL("page_url", c.PageURL); err != nil {
			return err
		}
	default:
		return watchapi.Errorf(watchapi.EINVALID, "unknown source %q", c.Source)
	}

	if c.SitemapURL != "" {
		if err := validateURL("sitemap_url", c.SitemapURL); err != nil {
			return err
		}
	}
	if c.SitemapPrefix != "" && c.SitemapURL == "" {
		return watchapi.Errorf(watchapi.EINVALID, "sitemap_prefix requires sitemap_url")
	}

	var linkSources int
	for _, set := range []bool{len(c.Links) > 0, c.LinksPath != "", c.SitemapURL != ""} {
		if set {
			linkSources++
		}
	}
	if linkSources > 1 {
		return watchapi.Errorf(watchapi.EINVALID, "only one of links, links_path, sitemap_url may be set")
	}
	if c.Source == SourceStatic && linkSources > 0 {
		return watchapi.Errorf(watchapi.EINVALID, "source %q uses its embedded links", c.Source)
	}

	if c.FetchTimeout < 0 {
		return watchapi.Errorf(watchapi.EINVALID, "fetch_timeout must be positive")
	}
	if c.RateLimit <= 0 {
		return watchapi.Errorf(watchapi.EINVALID, "rate_limit must be positive")
	}
	return nil
}

// validateURL requires an absolute http or https URL with a host.
func validateURL(field, raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return watchapi.Errorf(watchapi.EINVALID, "%s is not a valid URL: %v", field, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return watchapi.Errorf(watchapi.EINVALID, "%s must be an http or https URL, got %q", field, raw)
	}
	return nil
}
