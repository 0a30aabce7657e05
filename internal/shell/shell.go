// Package shell is the navigation chrome around every page: app bar, side
// panel, breadcrumb, the drawer state and route dispatch.
package shell

import (
	"git.home.luguber.info/inful/coffeedocs/internal/content"
	"git.home.luguber.info/inful/coffeedocs/internal/page"
)

// Title is shown in the app bar.
const Title = "Coffee API Gdl"

// View is everything the layout template needs for one request.
type View struct {
	Title      string
	Path       string
	Layout     Layout
	Breadcrumb Breadcrumb
	Sidebar    Sidebar
	Page       *page.Page
}

// Options tune the shell.
type Options struct {
	Title       string
	DrawerWidth int
}

// Mount wraps p in the shell for path and drawer state d.
func Mount(p *page.Page, path string, d Drawer, menu content.Menu, opts Options) View {
	title := opts.Title
	if title == "" {
		title = Title
	}
	path = CleanPath(path)
	return View{
		Title:      title,
		Path:       path,
		Layout:     NewLayout(d, opts.DrawerWidth, path),
		Breadcrumb: NewBreadcrumb(path),
		Sidebar:    NewSidebar(menu, path, d),
		Page:       p,
	}
}
