// Package collection builds watch collections by running an extractor over
// a document source.
package collection

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/fwojciec/watchapi"
)

// Ensure Service implements watchapi.CollectionService at compile time.
var _ watchapi.CollectionService = (*Service)(nil)

// Service loads the document and extracts a collection on every call.
// No state is kept between calls.
type Service struct {
	Source    watchapi.DocumentSource
	Extractor watchapi.Extractor
	Logger    *slog.Logger
}

// Process loads the document and extracts every record from it.
//
// Missing structure is logged and reported through the Extraction's Found
// flags. Errors are returned only when the document cannot be loaded or
// parsed.
func (s *Service) Process(ctx context.Context) (*watchapi.Extraction, error) {
	logger := s.logger()

	doc, err := s.Source.Load(ctx)
	if err != nil {
		// Any source failure is internal, whatever code the source gave it.
		if watchapi.ErrorCode(err) != watchapi.EINTERNAL {
			return nil, watchapi.Errorf(watchapi.EINTERNAL, "loading document: %s", watchapi.ErrorMessage(err))
		}
		return nil, fmt.Errorf("loading document: %w", err)
	}

	x, err := s.Extractor.Extract(doc.HTML, doc.Links)
	if err != nil {
		return nil, watchapi.Errorf(watchapi.EINTERNAL, "extracting collection: %s", watchapi.ErrorMessage(err))
	}

	if !x.WatchesFound {
		logger.Warn("watch container not found")
	}
	for _, i := range x.Skipped {
		logger.Warn("no image found for watch item", "index", i)
	}
	if !x.ViewerFound {
		logger.Warn("viewer element not found")
	}
	if !x.ModeFound {
		logger.Warn("mode toggles not found")
	}

	current := x.Mode.Current()
	next := current.Toggle()
	logger.Info("mode switch", "from", current, "to", next)
	logger.Info("extracted collection",
		"watches", len(x.Watches),
		"current_mode", current,
		"next_mode", next,
	)

	return x, nil
}

// Collection returns the full collection payload.
func (s *Service) Collection(ctx context.Context) (*watchapi.Collection, error) {
	x, err := s.Process(ctx)
	if err != nil {
		return nil, err
	}

	watches := x.Watches
	if watches == nil {
		watches = []watchapi.Watch{}
	}
	return &watchapi.Collection{
		Watches:    watches,
		Viewer:     x.Viewer,
		ModeStatus: x.Mode,
	}, nil
}

// FindWatchByName re-extracts the collection and returns the first watch
// whose name matches name case-insensitively.
func (s *Service) FindWatchByName(ctx context.Context, name string) (*watchapi.Watch, error) {
	x, err := s.Process(ctx)
	if err != nil {
		return nil, err
	}

	if w := watchapi.MatchName(x.Watches, name); w != nil {
		return w, nil
	}
	return nil, watchapi.Errorf(watchapi.ENOTFOUND, "Watch '%s' not found", name)
}

func (s *Service) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return s.Logger
}
