// Package dom defines the document tree consumed by style resolution
// and layout. Nodes are built once by an upstream parser and treated as
// immutable afterwards; every later pipeline stage projects them into a
// fresh read-only tree instead of mutating them in place.
package dom

// Node is a single node in the document tree. It owns its children
// outright; the tree is acyclic with no parent back-references.
type Node struct {
	Type     NodeType
	Children []*Node
}

// NodeType is the closed set of node payloads. Only Element and Text
// implement it.
type NodeType interface {
	isNodeType()
}

// Element is a markup element with a tag name and its attributes.
// Attribute keys are unique.
type Element struct {
	TagName    string
	Attributes map[string]string
}

func (*Element) isNodeType() {}

// Text is a text node.
type Text struct {
	Data string
}

func (*Text) isNodeType() {}

// NewElement builds an element node.
func NewElement(tagName string, attributes map[string]string, children []*Node) *Node {
	if attributes == nil {
		attributes = map[string]string{}
	}
	return &Node{
		Type:     &Element{TagName: tagName, Attributes: attributes},
		Children: children,
	}
}

// NewText builds a text node.
func NewText(data string) *Node {
	return &Node{Type: &Text{Data: data}}
}

// Element returns the node's element payload, if it is an element.
func (n *Node) Element() (*Element, bool) {
	el, ok := n.Type.(*Element)
	return el, ok
}

// Text returns the node's text payload, if it is a text node.
func (n *Node) Text() (string, bool) {
	t, ok := n.Type.(*Text)
	if !ok {
		return "", false
	}
	return t.Data, true
}

// Attr returns the value of the named attribute on an element.
func (e *Element) Attr(name string) (string, bool) {
	v, ok := e.Attributes[name]
	return v, ok
}

// Select collects, in document order, every node in the tree rooted at
// root for which pred holds.
func Select(root *Node, pred func(*Node) bool) []*Node {
	var result []*Node
	if pred(root) {
		result = append(result, root)
	}
	for _, child := range root.Children {
		result = append(result, Select(child, pred)...)
	}
	return result
}

// TextContent concatenates the data of all text nodes in the tree
// rooted at n, in document order.
func TextContent(n *Node) string {
	if data, ok := n.Text(); ok {
		return data
	}
	var s string
	for _, child := range n.Children {
		s += TextContent(child)
	}
	return s
}
