package watchapi

import "strings"

// DefaultWatchName is used when a collection image carries no alt text.
const DefaultWatchName = "Unknown Watch"

// Watch is one product shown in the collection strip.
// Link is paired with the image by position, not by content.
type Watch struct {
	Name     string `json:"name"`
	ImageURL string `json:"image_url"`
	Link     string `json:"link"`
}

// MatchName returns the first watch whose name equals name, ignoring case
// and surrounding whitespace in the query. Returns nil if nothing matches.
func MatchName(watches []Watch, name string) *Watch {
	name = strings.TrimSpace(name)
	for i := range watches {
		if strings.EqualFold(watches[i].Name, name) {
			w := watches[i]
			return &w
		}
	}
	return nil
}
