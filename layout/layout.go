// Package layout places a styled tree into a box tree of terminal
// cells. Coordinates and sizes are integer columns and rows; line
// breaking walks grapheme clusters and measures them in display
// columns, so multi-byte and double-width text wraps at user-perceived
// character boundaries.
package layout

import (
	"fmt"

	"github.com/hibari-browser/hibari/css"
	"github.com/hibari-browser/hibari/dom"
	"github.com/hibari-browser/hibari/style"
)

// Rect is a rectangle in terminal columns (x, width) and rows (y,
// height).
type Rect struct {
	X, Y, Width, Height int
}

// Object is a positioned box. The set of variants is closed: Block and
// Texts. Inline elements influence placement of their contents but
// never appear as a distinct box kind in the output.
type Object interface {
	// Bounds is the box's own bounding rectangle. For a Texts leaf the
	// width is the sum of its line widths — the columns the text
	// consumed — not a visual max-width.
	Bounds() Rect

	isObject()
}

// Block is a container box holding its laid-out children in document
// order.
type Block struct {
	Area     Rect
	Children []Object
}

func (b *Block) Bounds() Rect { return b.Area }
func (*Block) isObject()      {}

// Texts is a text leaf broken into lines.
type Texts struct {
	Area  Rect
	Lines []Line
}

func (t *Texts) Bounds() Rect { return t.Area }
func (*Texts) isObject()      {}

// Line is a single visual line of a text leaf. Text slices the source
// string; its rectangle never exceeds the viewport width.
type Line struct {
	Area Rect
	Text string
}

// Layout places the styled tree into the viewport and returns the box
// tree. The viewport width must be at least one column; a narrower
// viewport is a contract violation and panics.
func Layout(n *style.Node, viewport Rect) Object {
	if viewport.Width < 1 {
		panic(fmt.Sprintf("layout: viewport width must be >= 1, got %d", viewport.Width))
	}
	return layoutNode(n, viewport, 0)
}

// layoutNode dispatches on the node kind. offset is the number of
// display columns already consumed on the current line before this
// call, letting a wrapped inline run continue across siblings.
func layoutNode(n *style.Node, area Rect, offset int) Object {
	if text, ok := textOf(n); ok {
		return textToObject(text, area, offset)
	}
	return childrenToObject(n, area, offset)
}

// inline reports whether the node participates in inline flow: text
// nodes always do, elements do when their resolved display is
// "inline". Everything else is block and claims its own line(s).
func inline(n *style.Node) bool {
	if _, ok := textOf(n); ok {
		return true
	}
	display, ok := n.Display()
	return ok && display == css.Keyword("inline")
}

func textOf(n *style.Node) (string, bool) {
	t, ok := n.Type.(*dom.Text)
	if !ok {
		return "", false
	}
	return t.Data, true
}

// textToObject breaks a text run into lines within area. Each produced
// line gets its own rectangle at x = area.X on consecutive rows. The
// leaf's bounding width is the sum of the line widths so the caller
// can account for the columns consumed.
func textToObject(text string, area Rect, offset int) *Texts {
	var lines []Line
	y := area.Y
	contentLen := 0
	for _, chunk := range splitByWidth(text, area.Width, offset) {
		width := displayWidth(chunk)
		lines = append(lines, Line{
			Area: Rect{X: area.X, Y: y, Width: width, Height: 1},
			Text: chunk,
		})
		y++
		contentLen += width
	}
	return &Texts{
		Area:  Rect{X: area.X, Y: area.Y, Width: contentLen, Height: len(lines)},
		Lines: lines,
	}
}

// childrenToObject lays out an element's children in flow order.
// contentLen is a virtual running column count across a ribbon of
// width area.Width: inline children extend it and the current row and
// height are derived from it, while a block child closes the line,
// advances the row by its own height and resets the count.
//
// Every recursive call receives the element's original incoming
// offset, not the running contentLen.
func childrenToObject(n *style.Node, area Rect, offset int) *Block {
	y := area.Y
	height := 0
	width := 0
	contentLen := offset
	var children []Object
	for _, child := range n.Children {
		childArea := Rect{
			X:      area.X + contentLen%area.Width,
			Y:      y,
			Width:  area.Width,
			Height: area.Height,
		}
		object := layoutNode(child, childArea, offset)
		contentLen += object.Bounds().Width
		if !inline(child) {
			y += object.Bounds().Height
			height += object.Bounds().Height
			if width < contentLen {
				width = contentLen
			}
			contentLen = 0
		} else {
			y = area.Y + contentLen/area.Width
			height = (contentLen + area.Width - 1) / area.Width
		}
		children = append(children, object)
	}
	if width < contentLen {
		width = contentLen
	}
	return &Block{
		Area:     Rect{X: area.X, Y: area.Y, Width: width, Height: height},
		Children: children,
	}
}
