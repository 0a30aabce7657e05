// Package markdown renders descriptor descriptions to HTML.
package markdown

import (
	"bytes"
	"html/template"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// Renderer converts Markdown text to HTML. Raw HTML in the source is
// dropped, so descriptions can never inject markup into a page.
type Renderer struct {
	md goldmark.Markdown
}

// New returns a renderer with GitHub-style autolinks and tables enabled.
func New() *Renderer {
	return &Renderer{md: goldmark.New(
		goldmark.WithExtensions(extension.Linkify, extension.Table),
		goldmark.WithRendererOptions(html.WithHardWraps()),
	)}
}

// Render converts text to HTML. Blank text renders to nothing.
func (r *Renderer) Render(text string) (template.HTML, error) {
	if strings.TrimSpace(text) == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(text), &buf); err != nil {
		return "", err
	}
	// #nosec G203 -- goldmark output with unsafe rendering disabled.
	return template.HTML(buf.String()), nil
}
