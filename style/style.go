// Package style resolves stylesheets against a document tree.
//
// Resolution is one pass: it walks the document tree once, applies the
// cascade per node and produces a fresh styled tree that borrows the
// node payloads of its source. The styled tree owns its child list
// outright and is immutable once returned.
// Reference: https://www.w3.org/TR/css-cascade-4/
package style

import (
	"github.com/hibari-browser/hibari/css"
	"github.com/hibari-browser/hibari/dom"
)

// Node is a document node annotated with its resolved properties.
// Pruned descendants are omitted; the remaining children keep their
// document order.
type Node struct {
	Type       dom.NodeType
	Properties map[string]css.Value
	Children   []*Node
}

// Display returns the node's resolved display value, if any.
func (n *Node) Display() (css.Keyword, bool) {
	kw, ok := n.Properties["display"].(css.Keyword)
	return kw, ok
}

// scored tracks a property value together with the specificity that
// set it; the specificity is cascade bookkeeping only and is stripped
// from the output.
type scored struct {
	specificity int
	value       css.Value
}

// Resolve computes the styled tree for the document tree rooted at
// node. A nil result means the node resolved to display:none and was
// pruned together with its entire subtree.
//
// Conflicting declarations for one property are resolved by selector
// specificity; ties go to the later rule in document order. Rules pair
// their selector list with their declaration list positionally (index i
// with index i, extra entries on either side ignored). This pairing is
// not standard cascade semantics — in real CSS the best matching
// specificity weights every declaration of the rule — but it is the
// engine's documented behavior and must not be "corrected" silently.
func Resolve(node *dom.Node, sheet css.Stylesheet) *Node {
	properties := map[string]scored{}

	for ri := range sheet.Rules {
		rule := &sheet.Rules[ri]
		if !rule.Matches(node) {
			continue
		}
		n := len(rule.Selectors)
		if len(rule.Declarations) < n {
			n = len(rule.Declarations)
		}
		for i := 0; i < n; i++ {
			decl := rule.Declarations[i]
			specificity := rule.Selectors[i].Specificity()
			if prev, ok := properties[decl.Name]; ok && prev.specificity > specificity {
				continue
			}
			properties[decl.Name] = scored{specificity: specificity, value: decl.Value}
		}
	}

	// User agent defaults fill unset properties on elements only; an
	// author value is never overridden and text nodes get no defaults.
	if el, ok := node.Element(); ok {
		if _, ok := properties["display"]; !ok {
			properties["display"] = scored{value: css.DefaultDisplay(el.TagName)}
		}
		if _, ok := properties["font-weight"]; !ok {
			properties["font-weight"] = scored{value: css.DefaultFontWeight(el.TagName)}
		}
	}

	// display:none prunes the node and its whole subtree, regardless
	// of any descendant's own rules.
	if display, ok := properties["display"]; ok && display.value == css.Keyword("none") {
		return nil
	}

	var children []*Node
	for _, child := range node.Children {
		if styled := Resolve(child, sheet); styled != nil {
			children = append(children, styled)
		}
	}

	resolved := make(map[string]css.Value, len(properties))
	for name, s := range properties {
		resolved[name] = s.value
	}
	return &Node{Type: node.Type, Properties: resolved, Children: children}
}
