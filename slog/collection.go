package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/watchapi"
)

// Ensure LoggingCollectionService implements watchapi.CollectionService.
var _ watchapi.CollectionService = (*LoggingCollectionService)(nil)

// LoggingCollectionService wraps a CollectionService with logging.
type LoggingCollectionService struct {
	next   watchapi.CollectionService
	logger *slog.Logger
}

// NewLoggingCollectionService creates a new LoggingCollectionService.
func NewLoggingCollectionService(next watchapi.CollectionService, logger *slog.Logger) *LoggingCollectionService {
	return &LoggingCollectionService{next: next, logger: logger}
}

// Collection delegates to the wrapped service and logs the watch count.
func (s *LoggingCollectionService) Collection(ctx context.Context) (c *watchapi.Collection, err error) {
	defer func(begin time.Time) {
		var count int
		if c != nil {
			count = len(c.Watches)
		}
		s.logger.Info("collection",
			"watches", count,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Collection(ctx)
}

// FindWatchByName delegates to the wrapped service and logs whether a watch matched.
func (s *LoggingCollectionService) FindWatchByName(ctx context.Context, name string) (w *watchapi.Watch, err error) {
	defer func(begin time.Time) {
		s.logger.Info("find watch by name",
			"name", name,
			"found", w != nil,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindWatchByName(ctx, name)
}
