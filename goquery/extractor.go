// Package goquery implements watchapi.Extractor using goquery over the
// golang.org/x/net/html parser.
package goquery

import (
	"slices"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/watchapi"
	"golang.org/x/net/html"
)

// Markup markers of the collection viewer page.
const (
	// ContainerClass is the exact class list of the collection strip,
	// compared after collapsing whitespace.
	ContainerClass = "flex space-x-4 min-h-[60px]"

	// ItemSelector matches one watch in the collection strip.
	ItemSelector = "div.inline-block"

	// ViewerTag is the custom element carrying the viewer configuration.
	ViewerTag = "shopar-3d"

	// ToggleSelector matches the display mode toggle buttons.
	ToggleSelector = "button.flex"

	// ActiveClass marks the selected mode toggle.
	ActiveClass = "bg-black"

	// InactiveClass marks the unselected mode toggle.
	InactiveClass = "bg-gray-100"
)

// Ensure Extractor implements watchapi.Extractor at compile time.
var _ watchapi.Extractor = (*Extractor)(nil)

// Extractor reads watches, viewer config, and mode status from a collection page.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses markup once and runs all three extractors against it.
func (e *Extractor) Extract(markup string, links []string) (*watchapi.Extraction, error) {
	doc, err := Parse(markup)
	if err != nil {
		return nil, err
	}

	var x watchapi.Extraction
	x.Watches, x.Skipped, x.WatchesFound = ExtractWatches(doc, links)
	x.Viewer, x.ViewerFound = ExtractViewerConfig(doc)
	x.Mode, x.ModeFound = ExtractModeStatus(doc)
	return &x, nil
}

// Parse builds a queryable document from markup.
func Parse(markup string) (*goquery.Document, error) {
	root, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		return nil, watchapi.Errorf(watchapi.EINVALID, "failed to parse HTML: %v", err)
	}
	return goquery.NewDocumentFromNode(root), nil
}

// ExtractWatches reads the watches in the collection strip in document order.
//
// The item at position i is paired with links[i], or an empty link once links
// run out. Items without an image are skipped but still consume their
// position; their positions are returned in skipped. found is false when the
// collection strip is absent, in which case watches is empty.
func ExtractWatches(doc *goquery.Document, links []string) (watches []watchapi.Watch, skipped []int, found bool) {
	container := doc.Find("div").FilterFunction(func(_ int, s *goquery.Selection) bool {
		class, _ := s.Attr("class")
		return strings.Join(strings.Fields(class), " ") == ContainerClass
	}).First()
	if container.Length() == 0 {
		return []watchapi.Watch{}, nil, false
	}

	watches = []watchapi.Watch{}
	container.ChildrenFiltered(ItemSelector).Each(func(i int, item *goquery.Selection) {
		img := item.Find("img").First()
		if img.Length() == 0 {
			skipped = append(skipped, i)
			return
		}

		var link string
		if i < len(links) {
			link = links[i]
		}
		watches = append(watches, watchapi.Watch{
			Name:     img.AttrOr("alt", watchapi.DefaultWatchName),
			ImageURL: img.AttrOr("src", ""),
			Link:     link,
		})
	})
	return watches, skipped, true
}

// ExtractViewerConfig reads the viewer element's attributes verbatim.
// Missing attributes are empty. found is false when the element is absent,
// in which case every field is empty.
func ExtractViewerConfig(doc *goquery.Document) (cfg watchapi.ViewerConfig, found bool) {
	el := doc.Find(ViewerTag).First()
	if el.Length() == 0 {
		return watchapi.ViewerConfig{}, false
	}

	attr := func(name string) string { return el.AttrOr(name, "") }
	return watchapi.ViewerConfig{
		GLBURL:                attr("glb-url"),
		EnvURL:                attr("env-url"),
		ToneMapping:           attr("tone-mapping"),
		ToneMappingExposure:   attr("tone-mapping-exposure"),
		Category:              attr("category"),
		MinZoom:               attr("min-zoom"),
		MaxZoom:               attr("max-zoom"),
		FOVMultiplier:         attr("fov-multiplier"),
		InteractionPromptURL:  attr("interaction-prompt-url"),
		InteractionPromptSize: attr("interaction-prompt-size"),
	}, true
}

// ExtractModeStatus inspects the mode toggles. The 3D flag is set when a
// toggle whose text contains "3D" carries ActiveClass. found is false when
// the page has no toggles.
//
// ModeAR is always false. A toggle reading "AR" with InactiveClass clears it
// and no toggle sets it.
func ExtractModeStatus(doc *goquery.Document) (status watchapi.ModeStatus, found bool) {
	toggles := doc.Find(ToggleSelector)
	toggles.Each(func(_ int, s *goquery.Selection) {
		text := strings.TrimSpace(s.Text())
		classes := strings.Fields(s.AttrOr("class", ""))
		switch {
		case strings.Contains(text, string(watchapi.Mode3D)) && slices.Contains(classes, ActiveClass):
			status.Mode3D = true
		case strings.Contains(text, string(watchapi.ModeAR)) && slices.Contains(classes, InactiveClass):
			status.ModeAR = false
		}
	})
	return status, toggles.Length() > 0
}
