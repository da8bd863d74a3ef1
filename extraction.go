package watchapi

// Extraction holds every record found in a collection page.
// Each Found flag reports whether the structure the record is read from
// was present, so an absent structure can be told apart from one that
// was present but empty.
type Extraction struct {
	Watches      []Watch
	WatchesFound bool

	Viewer      ViewerConfig
	ViewerFound bool

	Mode      ModeStatus
	ModeFound bool

	// Skipped lists positions of collection items that had no image.
	Skipped []int
}

// Extractor extracts collection records from page markup.
type Extractor interface {
	// Extract parses html and reads the watches, viewer config and mode
	// status from it. Links are paired with watches by position.
	// An error is returned only when the markup cannot be parsed;
	// missing structure is reported through the Found flags.
	Extract(html string, links []string) (*Extraction, error)
}
