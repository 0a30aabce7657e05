package shell

import "net/url"

const (
	// DrawerParam is the query parameter carrying the drawer state.
	DrawerParam = "drawer"
	drawerOpen  = "open"
)

// Drawer is the open/closed state of the side panel. The zero value is closed.
type Drawer struct {
	open bool
}

// ParseDrawer reads the drawer state from a request query.
// Anything other than drawer=open yields the closed state.
func ParseDrawer(q url.Values) Drawer {
	return Drawer{open: q.Get(DrawerParam) == drawerOpen}
}

// IsOpen reports whether the panel is open.
func (d Drawer) IsOpen() bool { return d.open }

// Open moves a closed drawer to open and reports whether the state changed.
func (d *Drawer) Open() bool {
	if d.open {
		return false
	}
	d.open = true
	return true
}

// Close moves an open drawer to closed and reports whether the state changed.
func (d *Drawer) Close() bool {
	if !d.open {
		return false
	}
	d.open = false
	return true
}

// Href returns path carrying the drawer state.
func (d Drawer) Href(path string) string {
	if !d.open {
		return path
	}
	return path + "?" + url.Values{DrawerParam: {drawerOpen}}.Encode()
}
