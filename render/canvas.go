// Package render paints a finished box tree onto a fixed-width
// character grid: one grapheme cluster per cell, with double-width
// clusters claiming their trailing cell as a continuation.
package render

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/hibari-browser/hibari/layout"
)

// continuation marks the trailing cell of a double-width cluster.
const continuation = "\x00"

// Canvas is a Width x Height grid of grapheme clusters.
type Canvas struct {
	Width  int
	Height int
	cells  [][]string
}

// NewCanvas creates a blank canvas of the given size.
func NewCanvas(width, height int) *Canvas {
	cells := make([][]string, height)
	for i := range cells {
		cells[i] = make([]string, width)
	}
	return &Canvas{Width: width, Height: height, cells: cells}
}

// Paint draws a box tree onto the canvas. Blocks contribute nothing
// themselves; all visible output comes from text lines, clipped to the
// canvas bounds.
func (c *Canvas) Paint(object layout.Object) {
	switch o := object.(type) {
	case *layout.Block:
		for _, child := range o.Children {
			c.Paint(child)
		}
	case *layout.Texts:
		for _, line := range o.Lines {
			c.drawLine(line)
		}
	}
}

// drawLine writes one text line at its rectangle, one grapheme cluster
// per cell.
func (c *Canvas) drawLine(line layout.Line) {
	y := line.Area.Y
	if y < 0 || y >= c.Height {
		return
	}
	x := line.Area.X
	graphemes := uniseg.NewGraphemes(line.Text)
	for graphemes.Next() {
		cluster := graphemes.Str()
		width := runewidth.StringWidth(cluster)
		if x >= c.Width {
			return
		}
		if width == 0 {
			// Lone combining mark outside a cluster; attach it to the
			// preceding cell.
			if x > 0 && x-1 < c.Width && c.cells[y][x-1] != "" {
				c.cells[y][x-1] += cluster
			}
			continue
		}
		if x >= 0 {
			c.cells[y][x] = cluster
			if width == 2 && x+1 < c.Width {
				c.cells[y][x+1] = continuation
			}
		}
		x += width
	}
}

// Frame returns the canvas as newline-separated rows, empty cells
// rendered as spaces.
func (c *Canvas) Frame() string {
	var sb strings.Builder
	for y, row := range c.cells {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, cell := range row {
			switch cell {
			case "":
				sb.WriteByte(' ')
			case continuation:
				// Covered by the preceding wide cluster.
			default:
				sb.WriteString(cell)
			}
		}
	}
	return sb.String()
}

// Row returns one rendered row, trailing spaces trimmed. Useful in
// tests and for dump output.
func (c *Canvas) Row(y int) string {
	if y < 0 || y >= c.Height {
		return ""
	}
	var sb strings.Builder
	for _, cell := range c.cells[y] {
		switch cell {
		case "":
			sb.WriteByte(' ')
		case continuation:
		default:
			sb.WriteString(cell)
		}
	}
	return strings.TrimRight(sb.String(), " ")
}
