package shell

import (
	"strings"

	"git.home.luguber.info/inful/coffeedocs/internal/content"
)

// Breadcrumb is the "Home" link plus the current path segment.
type Breadcrumb struct {
	HomeLabel string
	HomeHref  string
	// Current is the path without its leading slash; empty on the home page.
	Current string
}

// NewBreadcrumb derives the breadcrumb from path alone.
func NewBreadcrumb(path string) Breadcrumb {
	return Breadcrumb{
		HomeLabel: "Home",
		HomeHref:  "/",
		Current:   strings.TrimPrefix(CleanPath(path), "/"),
	}
}

// NavEntry is one sidebar link.
type NavEntry struct {
	Label  string
	Href   string
	Active bool
}

// Sidebar is the two-section menu of the side panel.
type Sidebar struct {
	Upper []NavEntry
	Lower []NavEntry
}

// NewSidebar marks the entry matching path as active. Links carry the drawer
// state so that navigating keeps the panel as it is.
func NewSidebar(menu content.Menu, path string, d Drawer) Sidebar {
	path = CleanPath(path)
	entries := func(in []content.MenuEntry) []NavEntry {
		out := make([]NavEntry, 0, len(in))
		for _, e := range in {
			out = append(out, NavEntry{
				Label:  e.Label,
				Href:   d.Href(e.RoutePath),
				Active: CleanPath(e.RoutePath) == path,
			})
		}
		return out
	}
	return Sidebar{Upper: entries(menu.Upper), Lower: entries(menu.Lower)}
}
