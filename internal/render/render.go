// Package render maps single content descriptors to display blocks.
package render

import (
	"html/template"
	"strconv"
	"strings"

	"git.home.luguber.info/inful/coffeedocs/internal/content"
	"git.home.luguber.info/inful/coffeedocs/internal/foundation/errors"
	"git.home.luguber.info/inful/coffeedocs/internal/markdown"
)

const (
	SeverityInfo    = "info"
	SeverityWarning = "warning"

	payloadLabel    = "Payload example:"
	payloadLanguage = "javascript"
)

// Notice is an alert-style line inside a block.
type Notice struct {
	Severity string
	Text     string
}

// PayloadBlock is the labeled example body of an endpoint.
type PayloadBlock struct {
	Label    string
	Language string
	Code     string
}

// EndpointBlock is the display form of one endpoint.
type EndpointBlock struct {
	Anchor     string
	Title      string
	Method     string
	URI        string
	Marker     string
	Body       template.HTML
	Payload    *PayloadBlock
	Permission *Notice
}

// FieldLine is one "key: value" attribute line.
type FieldLine struct {
	Key   string
	Value string
}

func (l FieldLine) String() string { return l.Key + ": " + l.Value }

// FieldBlock is the display form of one model field.
type FieldBlock struct {
	Anchor string
	Title  string
	Body   template.HTML
	Lines  []FieldLine
}

// Renderer builds blocks; it holds no per-call state.
type Renderer struct {
	md *markdown.Renderer
}

// New returns a renderer using md for description bodies.
func New(md *markdown.Renderer) *Renderer {
	if md == nil {
		md = markdown.New()
	}
	return &Renderer{md: md}
}

// Endpoint renders d. The payload and permission parts exist only when d carries them.
func (r *Renderer) Endpoint(d content.EndpointDescriptor) (EndpointBlock, error) {
	body, err := r.md.Render(d.Description)
	if err != nil {
		return EndpointBlock{}, errors.WrapError(err, errors.CategoryRender, "failed to render endpoint description").
			WithContext("endpoint", d.Key()).
			Build()
	}
	b := EndpointBlock{
		Anchor: Slug(d.Key()),
		Title:  d.Summary,
		Method: string(d.Method),
		URI:    d.URI,
		Marker: d.Key(),
		Body:   body,
	}
	if d.ExamplePayload != nil && *d.ExamplePayload != "" {
		b.Payload = &PayloadBlock{Label: payloadLabel, Language: payloadLanguage, Code: *d.ExamplePayload}
	}
	if d.RequiredPermission != nil && *d.RequiredPermission != "" {
		b.Permission = &Notice{Severity: SeverityWarning, Text: PermissionText(*d.RequiredPermission)}
	}
	return b, nil
}

// PermissionText is the warning shown on restricted endpoints.
func PermissionText(role string) string {
	return "Only " + role + " members allowed"
}

// Field renders d. Lines start with the data type and then list the present
// optional attributes in a fixed order; absent ones produce no line.
func (r *Renderer) Field(d content.ModelFieldDescriptor) (FieldBlock, error) {
	body, err := r.md.Render(d.Description)
	if err != nil {
		return FieldBlock{}, errors.WrapError(err, errors.CategoryRender, "failed to render field description").
			WithContext("field", d.FieldName).
			Build()
	}
	b := FieldBlock{Anchor: Slug(d.FieldName), Title: d.FieldName, Body: body}
	if d.DataType != "" {
		b.Lines = append(b.Lines, FieldLine{Key: "type", Value: d.DataType})
	}
	if d.Nullable != nil {
		b.Lines = append(b.Lines, FieldLine{Key: "null", Value: strconv.FormatBool(*d.Nullable)})
	}
	if d.Blankable != nil {
		b.Lines = append(b.Lines, FieldLine{Key: "blank", Value: strconv.FormatBool(*d.Blankable)})
	}
	if d.MaxLength != nil && *d.MaxLength != "" {
		b.Lines = append(b.Lines, FieldLine{Key: "max length", Value: string(*d.MaxLength)})
	}
	return b, nil
}

// Slug turns s into an HTML id: lower case, runs of other characters collapsed to '-'.
func Slug(s string) string {
	var sb strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' {
			sb.WriteRune(r)
			dash = false
			continue
		}
		if !dash && sb.Len() > 0 {
			sb.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(sb.String(), "-")
}
