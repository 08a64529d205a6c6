package layout

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// displayWidth is the number of terminal columns s occupies: most
// Latin-script clusters take one column, most East-Asian clusters two,
// combining marks zero.
func displayWidth(s string) int {
	return runewidth.StringWidth(s)
}

// splitByWidth breaks text into chunks of at most width display
// columns, cutting only at grapheme cluster boundaries. offset seeds
// the running column count of the first line, so a run can continue a
// partially filled line. A cluster that would overflow the current
// line forces a break before itself and opens the next line at its own
// width; a cluster is never split.
//
// A break happens only on overflow, not when a line is exactly full,
// so a width that is not a multiple of the cluster widths leaves slack
// at the end of the line instead of splitting a cluster.
func splitByWidth(text string, width, offset int) []string {
	var result []string
	currWidth := offset
	prevIndex := 0
	currIndex := 0

	graphemes := uniseg.NewGraphemes(text)
	for graphemes.Next() {
		cluster := graphemes.Str()
		clusterWidth := displayWidth(cluster)
		if currWidth+clusterWidth > width {
			result = append(result, text[prevIndex:currIndex])
			prevIndex = currIndex
			currWidth = clusterWidth
		} else {
			currWidth += clusterWidth
		}
		currIndex += len(cluster)
	}

	return append(result, text[prevIndex:])
}
