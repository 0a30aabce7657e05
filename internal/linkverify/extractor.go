package linkverify

import (
	"io"
	"net/url"
	"strings"

	"golang.org/x/net/html"

	"git.home.luguber.info/inful/coffeedocs/internal/foundation/errors"
)

// Link represents an extracted link from HTML content.
type Link struct {
	URL        string // The URL or path
	Text       string // Link text/title
	Tag        string // HTML tag (a, img, link, etc.)
	Attribute  string // Attribute containing the link (href, src, etc.)
	IsInternal bool   // True if link is internal to the site
}

// Document is what the verifier needs from one rendered page.
type Document struct {
	Links []*Link
	IDs   map[string]bool
}

// ExtractFromReader extracts all references and element ids from an HTML reader.
func ExtractFromReader(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryValidation, "failed to parse HTML").Build()
	}

	doc := &Document{IDs: map[string]bool{}}
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if id := getAttr(n, "id"); id != "" {
				doc.IDs[id] = true
			}
			doc.Links = append(doc.Links, elementLinks(n)...)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return doc, nil
}

func elementLinks(n *html.Node) []*Link {
	var out []*Link
	add := func(attr, text string) {
		if v := getAttr(n, attr); v != "" {
			out = append(out, newLink(v, text, n.Data, attr))
		}
	}
	switch n.Data {
	case "a":
		add("href", extractText(n))
	case "link":
		add("href", getAttr(n, "rel"))
	case "img", "source":
		add("src", getAttr(n, "alt"))
		for _, candidate := range srcsetURLs(getAttr(n, "srcset")) {
			out = append(out, newLink(candidate, getAttr(n, "alt"), n.Data, "srcset"))
		}
	case "script":
		add("src", "")
	}
	return out
}

func newLink(u, text, tag, attr string) *Link {
	return &Link{URL: u, Text: text, Tag: tag, Attribute: attr, IsInternal: isInternalLink(u)}
}

// srcsetURLs returns the URL of each comma separated srcset candidate.
func srcsetURLs(srcset string) []string {
	var out []string
	for _, candidate := range strings.Split(srcset, ",") {
		if fields := strings.Fields(candidate); len(fields) > 0 {
			out = append(out, fields[0])
		}
	}
	return out
}

// getAttr retrieves an attribute value from an HTML node.
func getAttr(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

// extractText returns the whitespace-collapsed text content of n.
func extractText(n *html.Node) string {
	var text strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			text.WriteString(n.Data)
			text.WriteByte(' ')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(strings.Fields(text.String()), " ")
}

// isInternalLink reports whether linkURL points into this site.
func isInternalLink(linkURL string) bool {
	if strings.HasPrefix(linkURL, "#") {
		return true
	}
	u, err := url.Parse(linkURL)
	if err != nil {
		return false
	}
	return u.Scheme == "" && u.Host == ""
}

// ShouldVerifyLink filters out references that cannot be resolved to a page.
func ShouldVerifyLink(link *Link) bool {
	if link.URL == "" {
		return false
	}
	for _, prefix := range []string{"mailto:", "tel:", "javascript:", "data:"} {
		if strings.HasPrefix(link.URL, prefix) {
			return false
		}
	}
	return true
}
