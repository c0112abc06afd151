// Package behavior implements the entities driven by the scheduler
package behavior

import (
	"github.com/lixenwraith/orbit/engine"
)

// Phase is one entry of a blink schedule
type Phase struct {
	Ticks      int
	Brightness engine.Brightness
}

// brightnessCycle is the blink order, one entry per phase
var brightnessCycle = [...]engine.Brightness{
	engine.BrightnessDim,
	engine.BrightnessNormal,
	engine.BrightnessBold,
	engine.BrightnessNormal,
}

// Star blinks through its schedule forever
type Star struct {
	Row, Column int
	Symbol      rune
	phases      []Phase
	phase       int
	held        int
}

// NewStar creates a star; an empty schedule holds normal brightness forever
func NewStar(row, column int, symbol rune, phases []Phase) *Star {
	if len(phases) == 0 {
		phases = []Phase{{Ticks: 1, Brightness: engine.BrightnessNormal}}
	}
	for i := range phases {
		if phases[i].Ticks < 1 {
			phases[i].Ticks = 1
		}
	}
	return &Star{Row: row, Column: column, Symbol: symbol, phases: phases}
}

func (s *Star) Name() string { return "star" }

func (s *Star) Step(w *engine.World) engine.Status {
	p := s.phases[s.phase]
	w.Canvas.DrawGlyph(s.Row, s.Column, s.Symbol, p.Brightness)

	s.held++
	if s.held >= p.Ticks {
		s.held = 0
		s.phase = (s.phase + 1) % len(s.phases)
	}
	return engine.Running
}

// Brightness returns the brightness of the current phase
func (s *Star) Brightness() engine.Brightness { return s.phases[s.phase].Brightness }
