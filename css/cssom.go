// Package css provides the CSS object model, the selector matcher and
// the stylesheet parser used by style resolution.
// Reference: https://www.w3.org/TR/css-syntax-3/
package css

import "github.com/hibari-browser/hibari/dom"

// Stylesheet is an ordered list of rules. Document order is significant:
// later rules win specificity ties during the cascade.
type Stylesheet struct {
	Rules []Rule
}

// Rule is a single qualified rule: a comma-separated selector list and
// the declarations of its block.
type Rule struct {
	Selectors    []Selector
	Declarations []Declaration
}

// Matches reports whether any selector in the rule's selector list
// matches the node.
func (r *Rule) Matches(n *dom.Node) bool {
	for _, sel := range r.Selectors {
		if sel.Matches(n) {
			return true
		}
	}
	return false
}

// Declaration is a single property declaration, e.g. "display: block".
type Declaration struct {
	Name  string
	Value Value
}

// Value is a CSS component value. The value grammar is closed: only
// keyword values exist, anything else is rejected upstream by the
// parser.
type Value interface {
	isValue()
}

// Keyword is a CSS keyword value such as "block" or "none".
type Keyword string

func (Keyword) isValue() {}
