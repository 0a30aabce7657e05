package shell

import "fmt"

// DefaultDrawerWidth is the side panel width in pixels.
const DefaultDrawerWidth = 240

// Layout is the geometry of the shell for one drawer state.
type Layout struct {
	DrawerOpen  bool
	DrawerWidth int

	// AppBarWidth and AppBarMargin are CSS values for the app bar.
	AppBarWidth  string
	AppBarMargin string

	ShowOpenButton  bool
	ShowCloseButton bool
	OpenHref        string
	CloseHref       string
}

// NewLayout derives the layout from the drawer state. Exactly one of the
// open and close buttons is shown.
func NewLayout(d Drawer, width int, path string) Layout {
	if width <= 0 {
		width = DefaultDrawerWidth
	}
	l := Layout{
		DrawerOpen:   d.IsOpen(),
		DrawerWidth:  width,
		AppBarWidth:  "100%",
		AppBarMargin: "0",
	}
	if d.IsOpen() {
		l.AppBarWidth = fmt.Sprintf("calc(100%% - %dpx)", width)
		l.AppBarMargin = fmt.Sprintf("%dpx", width)
		l.ShowCloseButton = true
		closed := d
		closed.Close()
		l.CloseHref = closed.Href(path)
		return l
	}
	l.ShowOpenButton = true
	opened := d
	opened.Open()
	l.OpenHref = opened.Href(path)
	return l
}
