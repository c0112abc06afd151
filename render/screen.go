package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/orbit/engine"
)

// Screen is the tcell-backed canvas
type Screen struct {
	screen tcell.Screen
	clip   Clip
	style  tcell.Style
}

// NewScreen wraps an initialized tcell screen
// Geometry is read once; resizes are not tracked
func NewScreen(screen tcell.Screen, border int) *Screen {
	w, h := screen.Size()
	return &Screen{
		screen: screen,
		clip:   Clip{Rows: h, Columns: w, Border: border},
		style:  tcell.StyleDefault,
	}
}

func (s *Screen) Size() (int, int) { return s.clip.Rows, s.clip.Columns }

func (s *Screen) Draw(row, column int, text string, erase bool) {
	s.clip.Frame(row, column, text, func(y, x int, r rune) {
		if erase {
			r = ' '
		}
		s.screen.SetContent(x, y, r, nil, s.style)
	})
}

func (s *Screen) DrawGlyph(row, column int, r rune, b engine.Brightness) {
	if !s.clip.Cell(row, column) {
		return
	}
	s.screen.SetContent(column, row, r, nil, brightnessStyle(s.style, b))
}

func (s *Screen) DrawLabel(row, column int, text string) {
	s.clip.Label(row, column, text, func(y, x int, r rune) {
		s.screen.SetContent(x, y, r, nil, s.style)
	})
}

func (s *Screen) Show() { s.screen.Show() }

// DrawBorder outlines the viewport with a box of width one
func (s *Screen) DrawBorder() {
	rows, cols := s.clip.Rows, s.clip.Columns
	if rows < 2 || cols < 2 {
		return
	}
	for x := 1; x < cols-1; x++ {
		s.screen.SetContent(x, 0, tcell.RuneHLine, nil, s.style)
		s.screen.SetContent(x, rows-1, tcell.RuneHLine, nil, s.style)
	}
	for y := 1; y < rows-1; y++ {
		s.screen.SetContent(0, y, tcell.RuneVLine, nil, s.style)
		s.screen.SetContent(cols-1, y, tcell.RuneVLine, nil, s.style)
	}
	s.screen.SetContent(0, 0, tcell.RuneULCorner, nil, s.style)
	s.screen.SetContent(cols-1, 0, tcell.RuneURCorner, nil, s.style)
	s.screen.SetContent(0, rows-1, tcell.RuneLLCorner, nil, s.style)
	// Bottom-right cell stays unwritten
}

func brightnessStyle(base tcell.Style, b engine.Brightness) tcell.Style {
	switch b {
	case engine.BrightnessDim:
		return base.Dim(true)
	case engine.BrightnessBold:
		return base.Bold(true)
	}
	return base
}
