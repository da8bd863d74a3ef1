package watchapi

import "context"

// Collection is the full API payload for a watch collection.
type Collection struct {
	Watches    []Watch      `json:"watches"`
	Viewer     ViewerConfig `json:"config_3d_ar"`
	ModeStatus ModeStatus   `json:"mode_status"`
}

// CollectionService builds collections from a document source.
type CollectionService interface {
	// Collection loads the document and extracts the full collection.
	// Missing structure yields empty fields, not an error.
	Collection(ctx context.Context) (*Collection, error)

	// FindWatchByName extracts the collection and returns the first watch
	// whose name matches case-insensitively.
	// Returns ENOTFOUND if no watch matches.
	FindWatchByName(ctx context.Context, name string) (*Watch, error)
}
