package render

import (
	"strings"

	"github.com/lixenwraith/orbit/engine"
)

// Grid is an in-memory canvas with the same clipping as Screen
type Grid struct {
	clip   Clip
	cells  [][]rune
	bright [][]engine.Brightness
	shows  int
}

// NewGrid creates a blank grid
func NewGrid(rows, columns, border int) *Grid {
	g := &Grid{
		clip:   Clip{Rows: rows, Columns: columns, Border: border},
		cells:  make([][]rune, rows),
		bright: make([][]engine.Brightness, rows),
	}
	for i := range g.cells {
		g.cells[i] = []rune(strings.Repeat(" ", columns))
		g.bright[i] = make([]engine.Brightness, columns)
	}
	return g
}

func (g *Grid) Size() (int, int) { return g.clip.Rows, g.clip.Columns }

func (g *Grid) Draw(row, column int, text string, erase bool) {
	g.clip.Frame(row, column, text, func(y, x int, r rune) {
		if erase {
			r = ' '
		}
		g.cells[y][x] = r
		g.bright[y][x] = engine.BrightnessNormal
	})
}

func (g *Grid) DrawGlyph(row, column int, r rune, b engine.Brightness) {
	if !g.clip.Cell(row, column) {
		return
	}
	g.cells[row][column] = r
	g.bright[row][column] = b
}

func (g *Grid) DrawLabel(row, column int, text string) {
	g.clip.Label(row, column, text, func(y, x int, r rune) {
		g.cells[y][x] = r
	})
}

func (g *Grid) Show() { g.shows++ }

// At returns the rune at a cell, or 0 outside the grid
func (g *Grid) At(row, column int) rune {
	if row < 0 || row >= len(g.cells) || column < 0 || column >= len(g.cells[row]) {
		return 0
	}
	return g.cells[row][column]
}

// BrightnessAt returns the brightness last drawn at a cell
func (g *Grid) BrightnessAt(row, column int) engine.Brightness {
	return g.bright[row][column]
}

// Line returns one row as a string
func (g *Grid) Line(row int) string { return string(g.cells[row]) }

// String returns all rows joined by newlines
func (g *Grid) String() string {
	lines := make([]string, len(g.cells))
	for i := range g.cells {
		lines[i] = string(g.cells[i])
	}
	return strings.Join(lines, "\n")
}

// Blank reports whether no cell holds a visible rune
func (g *Grid) Blank() bool {
	for _, row := range g.cells {
		for _, r := range row {
			if r != ' ' {
				return false
			}
		}
	}
	return true
}

// Shows returns how many frames were presented
func (g *Grid) Shows() int { return g.shows }
