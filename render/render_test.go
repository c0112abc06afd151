package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/orbit/engine"
)

// mockScreen is a minimal mock for tcell.Screen recording cell writes
type mockScreen struct {
	tcell.Screen
	width, height int
	cells         map[[2]int]rune
	styles        map[[2]int]tcell.Style
	shows         int
}

func newMockScreen(width, height int) *mockScreen {
	return &mockScreen{
		width:  width,
		height: height,
		cells:  map[[2]int]rune{},
		styles: map[[2]int]tcell.Style{},
	}
}

func (m *mockScreen) Size() (int, int) { return m.width, m.height }
func (m *mockScreen) Show()            { m.shows++ }
func (m *mockScreen) SetContent(x, y int, mainc rune, combc []rune, style tcell.Style) {
	m.cells[[2]int{y, x}] = mainc
	m.styles[[2]int{y, x}] = style
}

var (
	_ engine.Canvas = (*Grid)(nil)
	_ engine.Canvas = (*Screen)(nil)
)

func TestGridDrawAndErase(t *testing.T) {
	g := NewGrid(6, 10, 1)

	g.Draw(2, 3, "ab\n c", false)
	assert.Equal(t, 'a', g.At(2, 3))
	assert.Equal(t, 'b', g.At(2, 4))
	assert.Equal(t, ' ', g.At(3, 3), "spaces are transparent")
	assert.Equal(t, 'c', g.At(3, 4))

	g.Draw(2, 3, "ab\n c", true)
	assert.True(t, g.Blank())
}

func TestGridSpacesDoNotOverwrite(t *testing.T) {
	g := NewGrid(6, 10, 1)
	g.Draw(2, 2, "xxx", false)
	g.Draw(2, 2, "y y", false)
	assert.Equal(t, "yxy", g.Line(2)[2:5])
}

func TestClipSkipsBorder(t *testing.T) {
	g := NewGrid(5, 8, 1)

	// Frame straddling every edge
	g.Draw(-1, -1, "#########\n#########\n#########\n#########\n#########\n#########\n#########", false)

	for row := 0; row < 5; row++ {
		for col := 0; col < 8; col++ {
			inside := row >= 1 && row < 4 && col >= 1 && col < 7
			if inside {
				assert.Equal(t, '#', g.At(row, col), "(%d,%d)", row, col)
			} else {
				assert.Equal(t, ' ', g.At(row, col), "(%d,%d) is border", row, col)
			}
		}
	}
}

func TestClipNeverWritesBottomRightCell(t *testing.T) {
	// Zero border makes the corner reachable through Draw
	g := NewGrid(3, 4, 0)
	g.Draw(2, 0, "abcd", false)
	assert.Equal(t, "abc ", g.Line(2))

	g.DrawLabel(2, 0, "wxyz")
	assert.Equal(t, "wxy ", g.Line(2))

	g.DrawGlyph(2, 3, '*', engine.BrightnessBold)
	assert.Equal(t, ' ', g.At(2, 3))
}

func TestGridGlyphBrightness(t *testing.T) {
	g := NewGrid(5, 5, 1)
	g.DrawGlyph(2, 2, '*', engine.BrightnessDim)
	assert.Equal(t, '*', g.At(2, 2))
	assert.Equal(t, engine.BrightnessDim, g.BrightnessAt(2, 2))

	g.DrawGlyph(0, 2, '*', engine.BrightnessDim)
	assert.Equal(t, ' ', g.At(0, 2), "glyphs clip to the border")
}

func TestLabelWritesOnBorder(t *testing.T) {
	g := NewGrid(4, 12, 1)
	g.DrawLabel(3, 2, "Year 1957")
	assert.Equal(t, "  Year 1957 ", g.Line(3))

	g.DrawLabel(3, 10, "overflow")
	assert.Equal(t, 'o', g.At(3, 10))
	assert.Equal(t, ' ', g.At(3, 11))

	g.DrawLabel(9, 0, "off grid")
	g.DrawLabel(-1, 0, "off grid")
}

func TestScreenDrawsThroughTcell(t *testing.T) {
	ms := newMockScreen(10, 6)
	s := NewScreen(ms, 1)

	rows, cols := s.Size()
	assert.Equal(t, 6, rows)
	assert.Equal(t, 10, cols)

	s.Draw(2, 3, "a b", false)
	assert.Equal(t, 'a', ms.cells[[2]int{2, 3}])
	_, written := ms.cells[[2]int{2, 4}]
	assert.False(t, written, "space must not be written")
	assert.Equal(t, 'b', ms.cells[[2]int{2, 5}])

	s.Draw(2, 3, "a b", true)
	assert.Equal(t, ' ', ms.cells[[2]int{2, 3}])

	s.DrawGlyph(3, 3, '+', engine.BrightnessBold)
	assert.Equal(t, tcell.StyleDefault.Bold(true), ms.styles[[2]int{3, 3}])

	s.Show()
	assert.Equal(t, 1, ms.shows)
}

func TestScreenBorderSkipsCorner(t *testing.T) {
	ms := newMockScreen(6, 4)
	s := NewScreen(ms, 1)
	s.DrawBorder()

	assert.Equal(t, tcell.RuneULCorner, ms.cells[[2]int{0, 0}])
	assert.Equal(t, tcell.RuneHLine, ms.cells[[2]int{3, 2}])
	assert.Equal(t, tcell.RuneVLine, ms.cells[[2]int{1, 5}])
	_, written := ms.cells[[2]int{3, 5}]
	assert.False(t, written)
}
