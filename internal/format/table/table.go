package table

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

const gutter = "  "

// Format pads rows so every column is as wide as its widest cell. Widths are
// measured in terminal cells, so styled cells line up with plain ones. Rows
// shorter than the first row are padded with empty cells.
func Format(rows [][]string, alignments []Alignment) []string {
	if len(rows) == 0 {
		return nil
	}
	colCount := len(rows[0])
	widths := make([]int, colCount)
	for _, row := range rows {
		for c := 0; c < colCount && c < len(row); c++ {
			if w := ansi.StringWidth(row[c]); w > widths[c] {
				widths[c] = w
			}
		}
	}
	out := make([]string, len(rows))
	for i, row := range rows {
		var b strings.Builder
		for c := 0; c < colCount; c++ {
			cell := ""
			if c < len(row) {
				cell = row[c]
			}
			if c > 0 {
				b.WriteString(gutter)
			}
			pad := widths[c] - ansi.StringWidth(cell)
			if pad < 0 {
				pad = 0
			}
			last := c == colCount-1
			if c < len(alignments) && alignments[c] == AlignRight {
				b.WriteString(strings.Repeat(" ", pad))
				b.WriteString(cell)
			} else {
				b.WriteString(cell)
				if !last {
					b.WriteString(strings.Repeat(" ", pad))
				}
			}
		}
		out[i] = b.String()
	}
	return out
}
