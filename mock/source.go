package mock

import (
	"context"

	"github.com/fwojciec/watchapi"
)

var _ watchapi.DocumentSource = (*DocumentSource)(nil)

// DocumentSource is a mock implementation of watchapi.DocumentSource.
type DocumentSource struct {
	LoadFn func(ctx context.Context) (*watchapi.Document, error)
}

func (s *DocumentSource) Load(ctx context.Context) (*watchapi.Document, error) {
	return s.LoadFn(ctx)
}

var _ watchapi.LinkSource = (*LinkSource)(nil)

// LinkSource is a mock implementation of watchapi.LinkSource.
type LinkSource struct {
	LinksFn func(ctx context.Context) ([]string, error)
}

func (s *LinkSource) Links(ctx context.Context) ([]string, error) {
	return s.LinksFn(ctx)
}
