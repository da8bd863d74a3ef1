package main

import (
	"log/slog"
	"net/http"

	"github.com/fwojciec/watchapi"
	"github.com/fwojciec/watchapi/collection"
	"github.com/fwojciec/watchapi/config"
	"github.com/fwojciec/watchapi/fs"
	watchhttp "github.com/fwojciec/watchapi/http"
	"github.com/fwojciec/watchapi/rod"
	wslog "github.com/fwojciec/watchapi/slog"
	"github.com/fwojciec/watchapi/static"
)

func nopClose() error { return nil }

// buildSource wires the document source selected by cfg. The returned
// function releases any fetcher the source holds.
func buildSource(cfg *config.Config, logger *slog.Logger) (watchapi.DocumentSource, func() error, error) {
	links := buildLinks(cfg, logger)

	switch cfg.Source {
	case config.SourceFile:
		return fs.NewSource(cfg.HTMLPath, links), nopClose, nil

	case config.SourceHTTP:
		fetcher := wslog.NewLoggingFetcher(watchhttp.NewFetcher(
			watchhttp.WithTimeout(cfg.FetchTimeout.Duration()),
			watchhttp.WithRateLimit(cfg.RateLimit),
		), logger)
		return &collection.FetchedSource{Fetcher: fetcher, URL: cfg.PageURL, Links: links}, fetcher.Close, nil

	case config.SourceRod:
		opts := []rod.Option{rod.WithFetchTimeout(cfg.FetchTimeout.Duration())}
		if cfg.WaitSelector != "" {
			opts = append(opts, rod.WithWaitSelector(cfg.WaitSelector))
		}
		f, err := rod.NewFetcher(opts...)
		if err != nil {
			return nil, nil, watchapi.Errorf(watchapi.EINTERNAL, "failed to start browser: %v", err)
		}
		fetcher := wslog.NewLoggingFetcher(f, logger)
		return &collection.FetchedSource{Fetcher: fetcher, URL: cfg.PageURL, Links: links}, fetcher.Close, nil

	default:
		return static.NewSource(), nopClose, nil
	}
}

// buildLinks returns the configured link source, or nil when none is set.
func buildLinks(cfg *config.Config, logger *slog.Logger) watchapi.LinkSource {
	var links watchapi.LinkSource
	switch {
	case len(cfg.Links) > 0:
		links = watchapi.StaticLinks(cfg.Links)
	case cfg.LinksPath != "":
		links = fs.LinkFile(cfg.LinksPath)
	case cfg.SitemapURL != "":
		client := &http.Client{Timeout: cfg.FetchTimeout.Duration()}
		links = watchhttp.NewSitemapLinks(client, cfg.SitemapURL, cfg.SitemapPrefix)
	default:
		return nil
	}
	return wslog.NewLoggingLinkSource(links, logger)
}
