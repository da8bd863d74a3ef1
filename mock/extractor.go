package mock

import "github.com/fwojciec/watchapi"

var _ watchapi.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of watchapi.Extractor.
type Extractor struct {
	ExtractFn func(html string, links []string) (*watchapi.Extraction, error)
}

func (e *Extractor) Extract(html string, links []string) (*watchapi.Extraction, error) {
	return e.ExtractFn(html, links)
}
