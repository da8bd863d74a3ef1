package mock

import (
	"context"

	"github.com/fwojciec/watchapi"
)

var _ watchapi.CollectionService = (*CollectionService)(nil)

// CollectionService is a mock implementation of watchapi.CollectionService.
type CollectionService struct {
	CollectionFn      func(ctx context.Context) (*watchapi.Collection, error)
	FindWatchByNameFn func(ctx context.Context, name string) (*watchapi.Watch, error)
}

func (s *CollectionService) Collection(ctx context.Context) (*watchapi.Collection, error) {
	return s.CollectionFn(ctx)
}

func (s *CollectionService) FindWatchByName(ctx context.Context, name string) (*watchapi.Watch, error) {
	return s.FindWatchByNameFn(ctx, name)
}
