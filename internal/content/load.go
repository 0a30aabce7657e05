package content

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/coffeedocs/internal/foundation/errors"
)

// file is the on-disk shape of an alternative registry.
type file struct {
	Menu      Menu                              `yaml:"menu"`
	Endpoints map[PageID][]EndpointDescriptor   `yaml:"endpoints"`
	Models    map[PageID][]ModelFieldDescriptor `yaml:"models"`
}

// LoadFile reads and validates a registry from a YAML file.
func LoadFile(path string) (*Registry, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryFileSystem, "failed to read content file").
			WithContext("file", path).
			Build()
	}
	reg, err := Parse(data)
	if err != nil {
		if c, ok := errors.AsClassified(err); ok {
			return nil, c.WithContext("file", path)
		}
		return nil, err
	}
	return reg, nil
}

// Parse decodes and validates a registry document. Unknown keys are rejected.
func Parse(data []byte) (*Registry, error) {
	var f file
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, errors.WrapError(err, errors.CategoryContent, "failed to decode content file").Build()
	}
	if err := f.normalize(); err != nil {
		return nil, err
	}
	return &Registry{endpoints: f.Endpoints, fields: f.Models, menu: f.Menu}, nil
}

// Marshal writes reg in the format Parse reads.
func Marshal(reg *Registry) ([]byte, error) {
	f := file{
		Menu:      reg.Menu(),
		Endpoints: map[PageID][]EndpointDescriptor{},
		Models:    map[PageID][]ModelFieldDescriptor{},
	}
	for id := range reg.endpoints {
		f.Endpoints[id] = reg.Endpoints(id)
	}
	for id := range reg.fields {
		f.Models[id] = reg.Fields(id)
	}
	return yaml.Marshal(&f)
}

func (f *file) normalize() error {
	for id, list := range f.Endpoints {
		if id.Kind() != KindEndpoints {
			return invalid("endpoints listed under a page that does not list endpoints", "page", id)
		}
		seen := make(map[string]bool, len(list))
		for i := range list {
			d := &list[i]
			m, err := ParseMethod(string(d.Method))
			if err != nil {
				return invalid(err.Error(), "page", id, "uri", d.URI)
			}
			d.Method = m
			d.URI = strings.TrimSpace(d.URI)
			if !strings.HasPrefix(d.URI, "/") {
				return invalid("endpoint uri must start with /", "page", id, "uri", d.URI)
			}
			if strings.TrimSpace(d.Summary) == "" {
				return invalid("endpoint summary is required", "page", id, "uri", d.URI)
			}
			if seen[d.Key()] {
				return invalid("duplicate endpoint", "page", id, "endpoint", d.Key())
			}
			seen[d.Key()] = true
			d.ExamplePayload = blankToNil(d.ExamplePayload)
			d.RequiredPermission = blankToNil(d.RequiredPermission)
		}
	}
	for id, list := range f.Models {
		if id.Kind() != KindFields {
			return invalid("model fields listed under a page that does not list fields", "page", id)
		}
		seen := make(map[string]bool, len(list))
		for i := range list {
			d := &list[i]
			d.FieldName = strings.TrimSpace(d.FieldName)
			if d.FieldName == "" {
				return invalid("field name is required", "page", id, "index", i)
			}
			if seen[d.FieldName] {
				return invalid("duplicate field", "page", id, "field", d.FieldName)
			}
			seen[d.FieldName] = true
			if d.MaxLength != nil && *d.MaxLength == "" {
				d.MaxLength = nil
			}
		}
	}
	for _, section := range [][]MenuEntry{f.Menu.Upper, f.Menu.Lower} {
		for _, e := range section {
			if e.Label == "" || !strings.HasPrefix(e.RoutePath, "/") {
				return invalid("menu entries need a label and an absolute route", "label", e.Label, "route", e.RoutePath)
			}
		}
	}
	return nil
}

func invalid(msg string, kv ...any) error {
	b := errors.ContentError(msg)
	for i := 0; i+1 < len(kv); i += 2 {
		b = b.WithContext(fmt.Sprint(kv[i]), fmt.Sprint(kv[i+1]))
	}
	return b.Build()
}

// Empty optional text is the same as an absent attribute.
func blankToNil(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	return s
}
