package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/watchapi"
)

// Ensure LoggingDocumentSource implements watchapi.DocumentSource.
var _ watchapi.DocumentSource = (*LoggingDocumentSource)(nil)

// LoggingDocumentSource wraps a DocumentSource with debug logging.
type LoggingDocumentSource struct {
	next   watchapi.DocumentSource
	logger *slog.Logger
}

// NewLoggingDocumentSource creates a new LoggingDocumentSource.
func NewLoggingDocumentSource(next watchapi.DocumentSource, logger *slog.Logger) *LoggingDocumentSource {
	return &LoggingDocumentSource{next: next, logger: logger}
}

// Load delegates to the wrapped source and logs the document size.
func (s *LoggingDocumentSource) Load(ctx context.Context) (doc *watchapi.Document, err error) {
	defer func(begin time.Time) {
		var bytes, links int
		if doc != nil {
			bytes, links = len(doc.HTML), len(doc.Links)
		}
		s.logger.Debug("load document",
			"bytes", bytes,
			"links", links,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Load(ctx)
}

// Ensure LoggingLinkSource implements watchapi.LinkSource.
var _ watchapi.LinkSource = (*LoggingLinkSource)(nil)

// LoggingLinkSource wraps a LinkSource with debug logging.
type LoggingLinkSource struct {
	next   watchapi.LinkSource
	logger *slog.Logger
}

// NewLoggingLinkSource creates a new LoggingLinkSource.
func NewLoggingLinkSource(next watchapi.LinkSource, logger *slog.Logger) *LoggingLinkSource {
	return &LoggingLinkSource{next: next, logger: logger}
}

// Links delegates to the wrapped source and logs the link count.
func (s *LoggingLinkSource) Links(ctx context.Context) (links []string, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("load links",
			"count", len(links),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Links(ctx)
}
