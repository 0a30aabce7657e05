package shell

import (
	"path"

	"git.home.luguber.info/inful/coffeedocs/internal/content"
)

// Route maps one path to a page.
type Route struct {
	Path string         `json:"path"`
	Page content.PageID `json:"page"`
}

// Routes is the fixed dispatch table.
var Routes = []Route{
	{Path: "/", Page: content.PageHome},
	{Path: "/coffee-shop-documentation", Page: content.PageCoffeeShopDocs},
	{Path: "/users-documentation", Page: content.PageUsersDocs},
	{Path: "/coffee-shop-model", Page: content.PageCoffeeShopModel},
	{Path: "/user-model", Page: content.PageUserModel},
}

// CleanPath normalizes a request path to a rooted, slash-collapsed form:
// empty becomes "/", "." and ".." elements are resolved and a trailing
// slash is dropped. Repeated leading slashes collapse so the result never
// reads as a protocol-relative URL.
func CleanPath(p string) string {
	return path.Clean("/" + p)
}

// Dispatch returns the page served at path. ok is false for unmatched paths.
func Dispatch(path string) (id content.PageID, ok bool) {
	path = CleanPath(path)
	for _, r := range Routes {
		if r.Path == path {
			return r.Page, true
		}
	}
	return "", false
}
