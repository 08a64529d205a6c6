// Package html parses markup text into the document tree consumed by
// style resolution, using golang.org/x/net/html as the underlying
// parser implementation.
package html

import (
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/hibari-browser/hibari/dom"
)

// Parse parses an HTML document from a string.
//
// The returned tree is rooted at a synthetic container element with an
// empty tag name, so documents with several top-level nodes stay legal.
// Comments and doctypes are dropped; whitespace-only text between
// elements is not kept.
func Parse(content string) (*dom.Node, error) {
	return ParseReader(strings.NewReader(content))
}

// ParseReader parses an HTML document from a reader.
func ParseReader(r io.Reader) (*dom.Node, error) {
	parsed, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	return dom.NewElement("", nil, convertChildren(parsed)), nil
}

func convertChildren(n *html.Node) []*dom.Node {
	var children []*dom.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if converted := convertNode(c); converted != nil {
			children = append(children, converted)
		}
	}
	return children
}

// convertNode converts a golang.org/x/net/html node to our node shape.
// Nodes outside the document data model (comments, doctypes) convert
// to nil.
func convertNode(n *html.Node) *dom.Node {
	switch n.Type {
	case html.ElementNode:
		attributes := make(map[string]string, len(n.Attr))
		for _, attr := range n.Attr {
			// Keys are unique in the document model; first one wins.
			if _, ok := attributes[attr.Key]; !ok {
				attributes[attr.Key] = attr.Val
			}
		}
		return dom.NewElement(n.Data, attributes, convertChildren(n))
	case html.TextNode:
		if strings.TrimSpace(n.Data) == "" {
			return nil
		}
		return dom.NewText(n.Data)
	default:
		return nil
	}
}

// DocumentStylesheet extracts the text of every <style> element in the
// tree, concatenated in document order. This is the author stylesheet
// a page carries inline.
func DocumentStylesheet(root *dom.Node) string {
	styleTags := dom.Select(root, func(n *dom.Node) bool {
		el, ok := n.Element()
		return ok && el.TagName == "style"
	})
	var sb strings.Builder
	for _, tag := range styleTags {
		sb.WriteString(dom.TextContent(tag))
		sb.WriteByte('\n')
	}
	return sb.String()
}
