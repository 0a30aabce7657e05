package markdown

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRender_PlainParagraph(t *testing.T) {
	out, err := New().Render("Create a coffee shop object.")
	require.NoError(t, err)
	require.Equal(t, "<p>Create a coffee shop object.</p>\n", string(out))
}

func TestRender_Blank(t *testing.T) {
	out, err := New().Render("  \n")
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestRender_DropsRawHTML(t *testing.T) {
	out, err := New().Render("before <script>alert(1)</script> after")
	require.NoError(t, err)
	require.NotContains(t, string(out), "<script>")
	require.Contains(t, string(out), "raw HTML omitted")
}

func TestRender_InlineCodeAndEmphasis(t *testing.T) {
	out, err := New().Render("Use `page` and **size** arguments.")
	require.NoError(t, err)
	s := string(out)
	require.Contains(t, s, "<code>page</code>")
	require.Contains(t, s, "<strong>size</strong>")
}

func TestRender_Linkify(t *testing.T) {
	out, err := New().Render("See https://example.com/docs for more.")
	require.NoError(t, err)
	require.True(t, strings.Contains(string(out), `<a href="https://example.com/docs">`), string(out))
}
