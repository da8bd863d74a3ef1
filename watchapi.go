// Package watchapi serves a watch collection scraped from a product viewer
// page. It extracts the list of watches shown in the collection strip, the
// attributes of the 3D/AR viewer element, and which display mode is active,
// and exposes them over a small JSON API.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, rod/, http/).
package watchapi
