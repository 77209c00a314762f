package table

import (
	"strings"

	"github.com/fatih/color"
)

type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

// Styler picks the color for a cell; nil leaves it plain.
type Styler func(row, col int) *color.Color

// Format returns the rows padded according to the widest entry in each column.
func Format(rows [][]string, alignments []Alignment) []string {
	return FormatStyled(rows, alignments, nil)
}

// FormatStyled pads like Format and then colors each cell. Widths are
// measured on the plain text, so escape codes never skew the columns.
func FormatStyled(rows [][]string, alignments []Alignment, style Styler) []string {
	if len(rows) == 0 {
		return nil
	}
	colCount := 0
	for _, row := range rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}
	widths := make([]int, colCount)
	for _, row := range rows {
		for c, cell := range row {
			width := cellWidth(cell)
			if width > widths[c] {
				widths[c] = width
			}
		}
	}
	out := make([]string, len(rows))
	for i, row := range rows {
		var b strings.Builder
		for c, cell := range row {
			if c > 0 {
				b.WriteString("  ")
			}
			padding := widths[c] - cellWidth(cell)
			if c == len(row)-1 && (c >= len(alignments) || alignments[c] != AlignRight) {
				// no trailing spaces after the last left-aligned column
				padding = 0
			}
			var padded string
			if c < len(alignments) && alignments[c] == AlignRight {
				padded = spaces(padding) + cell
			} else {
				padded = cell + spaces(padding)
			}
			if style != nil {
				if clr := style(i, c); clr != nil {
					padded = clr.Sprint(padded)
				}
			}
			b.WriteString(padded)
		}
		out[i] = b.String()
	}
	return out
}

func cellWidth(text string) int {
	return len([]rune(text))
}

func spaces(count int) string {
	if count <= 0 {
		return ""
	}
	return strings.Repeat(" ", count)
}
