package render

import (
	"testing"

	"github.com/hibari-browser/hibari/layout"
)

func TestPaintTextLines(t *testing.T) {
	canvas := NewCanvas(10, 3)
	canvas.Paint(&layout.Texts{
		Area: layout.Rect{X: 0, Y: 0, Width: 8, Height: 2},
		Lines: []layout.Line{
			{Area: layout.Rect{X: 0, Y: 0, Width: 5, Height: 1}, Text: "hello"},
			{Area: layout.Rect{X: 0, Y: 1, Width: 3, Height: 1}, Text: "wor"},
		},
	})

	if got := canvas.Row(0); got != "hello" {
		t.Errorf("row 0 = %q, want %q", got, "hello")
	}
	if got := canvas.Row(1); got != "wor" {
		t.Errorf("row 1 = %q, want %q", got, "wor")
	}
	if got := canvas.Row(2); got != "" {
		t.Errorf("row 2 = %q, want empty", got)
	}
}

func TestPaintBlockRecurses(t *testing.T) {
	object := &layout.Block{
		Area: layout.Rect{X: 0, Y: 0, Width: 10, Height: 2},
		Children: []layout.Object{
			&layout.Texts{
				Area: layout.Rect{X: 0, Y: 0, Width: 3, Height: 1},
				Lines: []layout.Line{
					{Area: layout.Rect{X: 0, Y: 0, Width: 3, Height: 1}, Text: "aaa"},
				},
			},
			&layout.Block{
				Area: layout.Rect{X: 0, Y: 1, Width: 5, Height: 1},
				Children: []layout.Object{
					&layout.Texts{
						Area: layout.Rect{X: 0, Y: 1, Width: 5, Height: 1},
						Lines: []layout.Line{
							{Area: layout.Rect{X: 0, Y: 1, Width: 5, Height: 1}, Text: "bbbbb"},
						},
					},
				},
			},
		},
	}

	canvas := NewCanvas(10, 2)
	canvas.Paint(object)
	if got := canvas.Row(0); got != "aaa" {
		t.Errorf("row 0 = %q, want %q", got, "aaa")
	}
	if got := canvas.Row(1); got != "bbbbb" {
		t.Errorf("row 1 = %q, want %q", got, "bbbbb")
	}
}

func TestPaintWideClusters(t *testing.T) {
	canvas := NewCanvas(8, 1)
	canvas.Paint(&layout.Texts{
		Area: layout.Rect{X: 1, Y: 0, Width: 6, Height: 1},
		Lines: []layout.Line{
			{Area: layout.Rect{X: 1, Y: 0, Width: 6, Height: 1}, Text: "今日は"},
		},
	})

	if got := canvas.Row(0); got != " 今日は" {
		t.Errorf("row 0 = %q, want %q", got, " 今日は")
	}
}

func TestPaintClipsToCanvas(t *testing.T) {
	canvas := NewCanvas(4, 1)
	canvas.Paint(&layout.Texts{
		Area: layout.Rect{X: 0, Y: 0, Width: 11, Height: 2},
		Lines: []layout.Line{
			{Area: layout.Rect{X: 0, Y: 0, Width: 11, Height: 1}, Text: "hello world"},
			{Area: layout.Rect{X: 0, Y: 5, Width: 3, Height: 1}, Text: "off"},
		},
	})

	if got := canvas.Row(0); got != "hell" {
		t.Errorf("row 0 = %q, want %q (clipped)", got, "hell")
	}
}

func TestFrameDimensions(t *testing.T) {
	canvas := NewCanvas(3, 2)
	frame := canvas.Frame()
	if frame != "   \n   " {
		t.Errorf("blank frame = %q, want three spaces per row", frame)
	}
}
