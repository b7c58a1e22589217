package browser

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// skipElements are elements whose text content is never rendered.
var skipElements = map[string]bool{
	"script":   true,
	"style":    true,
	"noscript": true,
	"template": true,
	"head":     true,
}

// VisibleText extracts the user-visible text from an HTML document,
// collapsing runs of whitespace to single spaces. It does not evaluate CSS,
// so display:none content is included; good enough for asserting that a
// rendered page mentions something.
func VisibleText(r io.Reader) (string, error) {
	root, err := html.Parse(r)
	if err != nil {
		return "", fmt.Errorf("parse html: %w", err)
	}

	var b strings.Builder
	collectText(root, &b)
	return strings.Join(strings.Fields(b.String()), " "), nil
}

func collectText(n *html.Node, b *strings.Builder) {
	if n.Type == html.ElementNode && skipElements[n.Data] {
		return
	}
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
		b.WriteByte(' ')
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		collectText(child, b)
	}
}
