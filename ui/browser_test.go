package ui

import (
	"strings"
	"testing"

	"github.com/hibari-browser/hibari/css"
	"github.com/hibari-browser/hibari/html"
)

func renderPage(t *testing.T, page string, width, height int) []string {
	t.Helper()
	document, err := html.Parse(page)
	if err != nil {
		t.Fatalf("html.Parse() error: %v", err)
	}
	sheet := css.ParseStylesheet(html.DocumentStylesheet(document))
	browser := New(document, sheet)
	return strings.Split(browser.RenderFrame(width, height), "\n")
}

func trimRows(rows []string) []string {
	out := make([]string, len(rows))
	for i, row := range rows {
		out[i] = strings.TrimRight(row, " ")
	}
	return out
}

func TestRenderFrameBlocks(t *testing.T) {
	rows := trimRows(renderPage(t, `<body><div>aaa</div><div>bbbbb</div></body>`, 10, 4))

	want := []string{"aaa", "bbbbb", "", ""}
	for i, row := range want {
		if rows[i] != row {
			t.Errorf("row %d = %q, want %q", i, rows[i], row)
		}
	}
}

func TestRenderFrameInlineFlow(t *testing.T) {
	page := `<body>
		<div>とても<strong>強い</strong></div>
		<style>strong { display: inline; }</style>
	</body>`
	rows := trimRows(renderPage(t, page, 20, 3))

	if rows[0] != "とても強い" {
		t.Errorf("row 0 = %q, want %q", rows[0], "とても強い")
	}
}

func TestRenderFrameWraps(t *testing.T) {
	rows := trimRows(renderPage(t, `<body><p>hello world</p></body>`, 3, 5))

	want := []string{"hel", "lo", "wor", "ld", ""}
	for i, row := range want {
		if rows[i] != row {
			t.Errorf("row %d = %q, want %q", i, rows[i], row)
		}
	}
}

func TestRenderFramePrunedDocument(t *testing.T) {
	page := `<body class="none">text<style>.none { display: none; }</style></body>`
	document, err := html.Parse(page)
	if err != nil {
		t.Fatalf("html.Parse() error: %v", err)
	}
	sheet := css.ParseStylesheet(html.DocumentStylesheet(document))
	browser := New(document, sheet)

	frame := browser.RenderFrame(5, 2)
	if strings.TrimSpace(frame) != "" {
		t.Errorf("frame = %q, want blank for a pruned document", frame)
	}
}

func TestRenderFrameDimensions(t *testing.T) {
	rows := renderPage(t, `<body><p>x</p></body>`, 7, 3)
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(rows))
	}
	for i, row := range rows {
		if got := len([]rune(strings.TrimRight(row, " "))); got > 7 {
			t.Errorf("row %d content %q exceeds width", i, row)
		}
	}
}
