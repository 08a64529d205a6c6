package dom

import (
	"reflect"
	"testing"
)

func TestNodeAccessors(t *testing.T) {
	el := NewElement("p", map[string]string{"class": "foo"}, []*Node{NewText("hi")})

	element, ok := el.Element()
	if !ok {
		t.Fatal("Element() not ok for an element node")
	}
	if element.TagName != "p" {
		t.Errorf("TagName = %q, want p", element.TagName)
	}
	if v, ok := element.Attr("class"); !ok || v != "foo" {
		t.Errorf("Attr(class) = %q, %v; want foo, true", v, ok)
	}
	if _, ok := element.Attr("missing"); ok {
		t.Error("Attr(missing) ok, want false")
	}
	if _, ok := el.Text(); ok {
		t.Error("Text() ok for an element node")
	}

	text := el.Children[0]
	if data, ok := text.Text(); !ok || data != "hi" {
		t.Errorf("Text() = %q, %v; want hi, true", data, ok)
	}
}

func TestSelect(t *testing.T) {
	tree := NewElement("body", nil, []*Node{
		NewElement("style", nil, []*Node{NewText("p { color: red; }")}),
		NewElement("div", nil, []*Node{
			NewElement("style", nil, nil),
		}),
	})

	isStyle := func(n *Node) bool {
		el, ok := n.Element()
		return ok && el.TagName == "style"
	}
	if got := len(Select(tree, isStyle)); got != 2 {
		t.Errorf("Select() found %d style nodes, want 2", got)
	}

	tags := []string{}
	for _, n := range Select(tree, func(*Node) bool { return true }) {
		if el, ok := n.Element(); ok {
			tags = append(tags, el.TagName)
		}
	}
	want := []string{"body", "style", "div", "style"}
	if !reflect.DeepEqual(tags, want) {
		t.Errorf("document order = %v, want %v", tags, want)
	}
}

func TestTextContent(t *testing.T) {
	tree := NewElement("div", nil, []*Node{
		NewText("a"),
		NewElement("span", nil, []*Node{NewText("b")}),
		NewText("c"),
	})
	if got := TextContent(tree); got != "abc" {
		t.Errorf("TextContent() = %q, want abc", got)
	}
}
