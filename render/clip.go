// Package render draws text frames onto a terminal or an in-memory grid
package render

import (
	"strings"
)

// Clip bounds drawing to the area inside a border of width Border
// The bottom-right cell of the viewport is never addressed
type Clip struct {
	Rows, Columns int
	Border        int
}

// Frame calls put for every visible, non-space cell of a multi-line frame at (row, column)
func (c Clip) Frame(row, column int, text string, put func(row, column int, r rune)) {
	for i, line := range strings.Split(text, "\n") {
		y := row + i
		if y < c.Border {
			continue
		}
		if y >= c.Rows-c.Border {
			break
		}

		x := column
		for _, r := range line {
			if x >= c.Columns-c.Border {
				break
			}
			if x >= c.Border && r != ' ' && !c.corner(y, x) {
				put(y, x, r)
			}
			x++
		}
	}
}

// Cell reports whether a single glyph at (row, column) is drawable inside the border
func (c Clip) Cell(row, column int) bool {
	if row < c.Border || row >= c.Rows-c.Border {
		return false
	}
	if column < c.Border || column >= c.Columns-c.Border {
		return false
	}
	return !c.corner(row, column)
}

// Label calls put for every cell of a single line, clipped to the viewport only
func (c Clip) Label(row, column int, text string, put func(row, column int, r rune)) {
	if row < 0 || row >= c.Rows {
		return
	}
	x := column
	for _, r := range text {
		if x >= c.Columns {
			break
		}
		if x >= 0 && !c.corner(row, x) {
			put(row, x, r)
		}
		x++
	}
}

func (c Clip) corner(row, column int) bool {
	return row == c.Rows-1 && column == c.Columns-1
}
