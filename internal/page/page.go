// Package page assembles full page view models from registry slices.
package page

import (
	"fmt"

	"git.home.luguber.info/inful/coffeedocs/internal/content"
	"git.home.luguber.info/inful/coffeedocs/internal/foundation/errors"
	"git.home.luguber.info/inful/coffeedocs/internal/render"
)

// Headings of the documentation pages.
var headings = map[content.PageID]string{
	content.PageCoffeeShopDocs:  "Coffee shop documentation",
	content.PageUsersDocs:       "Users documentation",
	content.PageCoffeeShopModel: "Coffee shop model",
	content.PageUserModel:       "User model",
}

// Heading returns the heading of a documentation page.
func Heading(id content.PageID) string { return headings[id] }

// Listing is a heading followed by blocks in registry order.
type Listing struct {
	Heading   string
	Endpoints []render.EndpointBlock
	Fields    []render.FieldBlock
}

// Link is a labeled hyperlink.
type Link struct {
	Label string
	Href  string
}

// Image is a responsive image with density variants.
type Image struct {
	Src    string
	SrcSet string
	Sizes  string
	Alt    string
}

// Landing is the home page.
type Landing struct {
	Title      string
	Subtitle   string
	Hero       Image
	APIExample Link
	Docs       Link
}

// Missing is the page shown for unmatched paths.
type Missing struct {
	Path string
	Home Link
}

// Page is one renderable page. Exactly one of Listing, Landing and Missing is set.
type Page struct {
	ID      content.PageID
	Title   string
	Listing *Listing
	Landing *Landing
	Missing *Missing
}

// Site carries the outbound links shown on the landing page.
type Site struct {
	Name          string
	SwaggerURL    string
	APIExampleURL string
	StaticPrefix  string
}

// Composer builds pages with a shared renderer.
type Composer struct {
	r    *render.Renderer
	site Site
}

// NewComposer returns a composer for site.
func NewComposer(r *render.Renderer, site Site) *Composer {
	if r == nil {
		r = render.New(nil)
	}
	return &Composer{r: r, site: site}
}

// Endpoints composes a listing of endpoint blocks, keeping input order.
func (c *Composer) Endpoints(heading string, ds []content.EndpointDescriptor) (*Listing, error) {
	l := &Listing{Heading: heading, Endpoints: make([]render.EndpointBlock, 0, len(ds))}
	for _, d := range ds {
		b, err := c.r.Endpoint(d)
		if err != nil {
			return nil, err
		}
		l.Endpoints = append(l.Endpoints, b)
	}
	return l, nil
}

// Fields composes a listing of field blocks, keeping input order.
func (c *Composer) Fields(heading string, ds []content.ModelFieldDescriptor) (*Listing, error) {
	l := &Listing{Heading: heading, Fields: make([]render.FieldBlock, 0, len(ds))}
	for _, d := range ds {
		b, err := c.r.Field(d)
		if err != nil {
			return nil, err
		}
		l.Fields = append(l.Fields, b)
	}
	return l, nil
}

// Build returns page id composed from reg.
func (c *Composer) Build(reg *content.Registry, id content.PageID) (*Page, error) {
	switch id.Kind() {
	case content.KindEndpoints:
		l, err := c.Endpoints(headings[id], reg.Endpoints(id))
		if err != nil {
			return nil, err
		}
		return &Page{ID: id, Title: c.title(l.Heading), Listing: l}, nil
	case content.KindFields:
		l, err := c.Fields(headings[id], reg.Fields(id))
		if err != nil {
			return nil, err
		}
		return &Page{ID: id, Title: c.title(l.Heading), Listing: l}, nil
	}
	if id == content.PageHome {
		return c.Home(), nil
	}
	return nil, errors.NotFoundError("unknown page").WithContext("page", string(id)).Build()
}

// Home returns the landing page.
func (c *Composer) Home() *Page {
	return &Page{
		ID:    content.PageHome,
		Title: c.site.Name,
		Landing: &Landing{
			Title:    "Coffee API Gdl V1",
			Subtitle: "API Description",
			Hero: Image{
				Src:    c.site.StaticPrefix + "/cup-360w.png",
				SrcSet: fmt.Sprintf("%[1]s/cup-360w.png 360w, %[1]s/cup-180w.png 180w", c.site.StaticPrefix),
				Sizes:  "(max-width: 480px) 180px, 360px",
				Alt:    "A rainbow cup of coffee",
			},
			APIExample: Link{Label: c.site.APIExampleURL, Href: c.site.APIExampleURL},
			Docs:       Link{Label: "Go to Coffee API documentation", Href: c.site.SwaggerURL},
		},
	}
}

// NotFound returns the fallback page for path.
func (c *Composer) NotFound(path string) *Page {
	return &Page{
		Title:   c.title("Page not found"),
		Missing: &Missing{Path: path, Home: Link{Label: "Back to the home page", Href: "/"}},
	}
}

func (c *Composer) title(heading string) string {
	if c.site.Name == "" {
		return heading
	}
	return heading + " | " + c.site.Name
}
