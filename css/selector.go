package css

import (
	"strings"

	"github.com/hibari-browser/hibari/dom"
)

// Selector is a simple selector. The set of variants is closed:
// universal, type, single-attribute and class selectors. Combinators
// and selector chains are out of scope.
// Reference: https://www.w3.org/TR/selectors-3/#selector-syntax
type Selector interface {
	// Matches reports whether the selector matches the node. Matching
	// is a pure predicate with no side effects.
	Matches(n *dom.Node) bool

	// Specificity is the selector's precedence weight used by the
	// cascade. This is a single scalar, not the standard three-tier
	// tuple: Universal=0, Type=1, Attribute=10, Class=10. The exact
	// values are part of the engine's contract.
	Specificity() int
}

// UniversalSelector matches every node, text nodes included.
type UniversalSelector struct{}

func (UniversalSelector) Matches(*dom.Node) bool { return true }
func (UniversalSelector) Specificity() int       { return 0 }

// TypeSelector matches elements by tag name.
type TypeSelector struct {
	TagName string
}

func (s TypeSelector) Matches(n *dom.Node) bool {
	el, ok := n.Element()
	return ok && el.TagName == s.TagName
}

func (s TypeSelector) Specificity() int { return 1 }

// AttrOp is an attribute selector operator.
type AttrOp int

const (
	// AttrEq requires the attribute value to equal the selector value
	// exactly (the `=` operator).
	AttrEq AttrOp = iota
	// AttrContain requires the selector value to be one
	// whitespace-separated token of the attribute value (the `~=`
	// operator).
	AttrContain
)

// AttributeSelector matches elements by tag name plus a single
// attribute test, e.g. `p[foo=bar]` or `a[rel~=noopener]`.
type AttributeSelector struct {
	TagName   string
	Attribute string
	Op        AttrOp
	Value     string
}

func (s AttributeSelector) Matches(n *dom.Node) bool {
	el, ok := n.Element()
	if !ok || el.TagName != s.TagName {
		return false
	}
	attr, ok := el.Attr(s.Attribute)
	if !ok {
		return false
	}
	switch s.Op {
	case AttrEq:
		return attr == s.Value
	case AttrContain:
		for _, token := range strings.Fields(attr) {
			if token == s.Value {
				return true
			}
		}
	}
	return false
}

func (s AttributeSelector) Specificity() int { return 10 }

// ClassSelector matches elements whose `class` attribute value equals
// the class name exactly. This is a whole-value comparison, not the
// standard token-contains test.
type ClassSelector struct {
	ClassName string
}

func (s ClassSelector) Matches(n *dom.Node) bool {
	el, ok := n.Element()
	if !ok {
		return false
	}
	class, ok := el.Attr("class")
	return ok && class == s.ClassName
}

func (s ClassSelector) Specificity() int { return 10 }
