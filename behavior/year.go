package behavior

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/lixenwraith/orbit/asset"
	"github.com/lixenwraith/orbit/engine"
)

const labelColumn = 2

// YearCounter advances the in-game year every TicksPerYear ticks and prints it,
// with the milestone phrase of that year, on the bottom border line
type YearCounter struct {
	ticksPerYear int
	timeline     *asset.Timeline
	count        int
	labelWidth   int
}

// NewYearCounter creates the counter; timeline may be nil
func NewYearCounter(ticksPerYear int, timeline *asset.Timeline) *YearCounter {
	if ticksPerYear < 1 {
		ticksPerYear = 1
	}
	return &YearCounter{ticksPerYear: ticksPerYear, timeline: timeline}
}

func (y *YearCounter) Name() string { return "year" }

func (y *YearCounter) Step(w *engine.World) engine.Status {
	y.count++
	if y.count >= y.ticksPerYear {
		y.count = 0
		w.State.AdvanceYear()
	}

	label := y.Label(w.State.Year())
	width := utf8.RuneCountInString(label)
	// Pad over the remains of a longer previous label
	if width < y.labelWidth {
		label += strings.Repeat(" ", y.labelWidth-width)
	}
	y.labelWidth = width
	w.Canvas.DrawLabel(w.Rows-1, labelColumn, label)
	return engine.Running
}

// Label formats the year line
func (y *YearCounter) Label(year int) string {
	label := fmt.Sprintf(" Year %d ", year)
	if y.timeline != nil {
		if phrase, ok := y.timeline.Phrase(year); ok {
			label += phrase + " "
		}
	}
	return label
}
