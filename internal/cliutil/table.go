package cliutil

import (
	"strings"

	"golang.org/x/text/width"
)

// displayWidth approximates the terminal column width of s, folding
// fullwidth/halfwidth Unicode forms to their canonical width class so
// column alignment accounts for wide runes instead of counting bytes or
// code points.
func displayWidth(s string) int {
	n := 0
	for _, r := range s {
		folded := width.Fold(r)
		switch width.LookupRune(folded).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			n += 2
		default:
			n++
		}
	}
	return n
}

// RenderTable renders rows as a two-column (location, value) table with the
// first column padded to the display width of its widest entry.
func RenderTable(rows [][2]string) string {
	widest := 0
	for _, row := range rows {
		if w := displayWidth(row[0]); w > widest {
			widest = w
		}
	}
	var b strings.Builder
	for _, row := range rows {
		b.WriteString(row[0])
		for pad := widest - displayWidth(row[0]); pad > 0; pad-- {
			b.WriteByte(' ')
		}
		b.WriteString("  ")
		b.WriteString(row[1])
		b.WriteByte('\n')
	}
	return b.String()
}
