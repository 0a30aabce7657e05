// Package content holds the read-only documentation registry: endpoint
// descriptors, model field descriptors and the sidebar menu.
package content

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// PageID identifies one documentation page.
type PageID string

const (
	PageHome            PageID = "home"
	PageCoffeeShopDocs  PageID = "coffee-shop-documentation"
	PageUsersDocs       PageID = "users-documentation"
	PageCoffeeShopModel PageID = "coffee-shop-model"
	PageUserModel       PageID = "user-model"
)

// PageKind tells which descriptor type a page lists.
type PageKind int

const (
	KindLanding PageKind = iota
	KindEndpoints
	KindFields
)

// Kind returns the descriptor kind listed on the page, or KindLanding for unknown ids.
func (p PageID) Kind() PageKind {
	switch p {
	case PageCoffeeShopDocs, PageUsersDocs:
		return KindEndpoints
	case PageCoffeeShopModel, PageUserModel:
		return KindFields
	default:
		return KindLanding
	}
}

// Method is the HTTP method of a documented endpoint.
type Method string

const (
	MethodGet    Method = "GET"
	MethodPost   Method = "POST"
	MethodPut    Method = "PUT"
	MethodDelete Method = "DELETE"
)

// ParseMethod accepts any casing of the four documented methods.
func ParseMethod(raw string) (Method, error) {
	m := Method(strings.ToUpper(strings.TrimSpace(raw)))
	switch m {
	case MethodGet, MethodPost, MethodPut, MethodDelete:
		return m, nil
	}
	return "", fmt.Errorf("unsupported method %q", raw)
}

// EndpointDescriptor documents one API endpoint.
type EndpointDescriptor struct {
	Method             Method  `yaml:"method"`
	URI                string  `yaml:"uri"`
	Summary            string  `yaml:"summary"`
	Description        string  `yaml:"description"`
	ExamplePayload     *string `yaml:"example_payload,omitempty"`
	RequiredPermission *string `yaml:"required_permission,omitempty"`
}

// Key is the endpoint identity, "METHOD URI".
func (d EndpointDescriptor) Key() string {
	return string(d.Method) + " " + d.URI
}

func (d EndpointDescriptor) clone() EndpointDescriptor {
	d.ExamplePayload = cloneString(d.ExamplePayload)
	d.RequiredPermission = cloneString(d.RequiredPermission)
	return d
}

// Limit is a maximum-length attribute that may be written as a number or a string.
type Limit string

// UnmarshalYAML keeps the scalar text as written so 100 and "100" both load.
func (l *Limit) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: max_length must be a scalar", n.Line)
	}
	*l = Limit(strings.TrimSpace(n.Value))
	return nil
}

// ModelFieldDescriptor documents one field of a data model.
type ModelFieldDescriptor struct {
	FieldName   string `yaml:"field"`
	Description string `yaml:"description"`
	DataType    string `yaml:"type"`
	Nullable    *bool  `yaml:"nullable,omitempty"`
	Blankable   *bool  `yaml:"blankable,omitempty"`
	MaxLength   *Limit `yaml:"max_length,omitempty"`
}

func (d ModelFieldDescriptor) clone() ModelFieldDescriptor {
	if d.Nullable != nil {
		v := *d.Nullable
		d.Nullable = &v
	}
	if d.Blankable != nil {
		v := *d.Blankable
		d.Blankable = &v
	}
	if d.MaxLength != nil {
		v := *d.MaxLength
		d.MaxLength = &v
	}
	return d
}

// MenuEntry is one sidebar link.
type MenuEntry struct {
	Label     string `yaml:"label"`
	RoutePath string `yaml:"route"`
}

// Menu groups sidebar entries into the two sidebar sections.
type Menu struct {
	Upper []MenuEntry `yaml:"upper"`
	Lower []MenuEntry `yaml:"lower"`
}

// Text, Flag and Max build the optional descriptor attributes.
func Text(s string) *string { return &s }

func Flag(b bool) *bool { return &b }

func Max(n int) *Limit {
	l := Limit(strconv.Itoa(n))
	return &l
}

func MaxText(s string) *Limit {
	l := Limit(s)
	return &l
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
