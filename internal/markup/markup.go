package markup

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Parse builds a traversable document from raw HTML.
func Parse(raw string) (*goquery.Document, error) {
	return goquery.NewDocumentFromReader(strings.NewReader(raw))
}

// Text concatenates all descendant text of the selection, collapsing runs
// of whitespace into single spaces and stripping the ends.
func Text(sel *goquery.Selection) string {
	var buf bytes.Buffer
	for _, n := range sel.Nodes {
		nodeText(n, &buf)
	}
	return strings.Join(strings.Fields(buf.String()), " ")
}

func nodeText(n *html.Node, buf *bytes.Buffer) {
	if n == nil {
		return
	}
	if n.Type == html.TextNode {
		buf.WriteString(n.Data)
		buf.WriteByte(' ')
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		nodeText(c, buf)
	}
}

// Root returns the <main> element when the document has one, otherwise the
// whole document. API endpoints here return full pages or bare fragments
// interchangeably.
func Root(doc *goquery.Document) *goquery.Selection {
	if main := doc.Find("main"); main.Length() > 0 {
		return main.First()
	}
	return doc.Selection
}

// AncestorTexts walks up from sel through at most maxLevels ancestors and
// yields each ancestor's normalized text, nearest first. The walk stops at
// the document root.
func AncestorTexts(sel *goquery.Selection, maxLevels int) []string {
	texts := make([]string, 0, maxLevels)
	node := sel
	for i := 0; i < maxLevels; i++ {
		node = node.Parent()
		if node.Length() == 0 {
			break
		}
		texts = append(texts, Text(node))
	}
	return texts
}
