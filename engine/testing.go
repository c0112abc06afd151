package engine

import (
	"math/rand"
	"time"
)

// Test doubles shared by package tests across the module

// DrawCall is one recorded canvas operation
type DrawCall struct {
	Row, Column int
	Text        string
	Erase       bool
}

// CountingCanvas records draw calls and presents without a terminal
type CountingCanvas struct {
	Rows, Columns int
	Draws         []DrawCall
	Labels        []DrawCall
	Glyphs        int
	Shows         int
}

// NewCountingCanvas creates a canvas of the given size
func NewCountingCanvas(rows, columns int) *CountingCanvas {
	return &CountingCanvas{Rows: rows, Columns: columns}
}

func (c *CountingCanvas) Size() (int, int) { return c.Rows, c.Columns }

func (c *CountingCanvas) Draw(row, column int, text string, erase bool) {
	c.Draws = append(c.Draws, DrawCall{Row: row, Column: column, Text: text, Erase: erase})
}

func (c *CountingCanvas) DrawGlyph(row, column int, r rune, b Brightness) { c.Glyphs++ }

func (c *CountingCanvas) DrawLabel(row, column int, text string) {
	c.Labels = append(c.Labels, DrawCall{Row: row, Column: column, Text: text})
}

func (c *CountingCanvas) Show() { c.Shows++ }

// ScriptedControls replays a fixed input sequence, then returns zero input
type ScriptedControls struct {
	Script []ControlInput
	polls  int
}

// Poll implements Controls
func (s *ScriptedControls) Poll() ControlInput {
	s.polls++
	if len(s.Script) == 0 {
		return ControlInput{}
	}
	in := s.Script[0]
	s.Script = s.Script[1:]
	return in
}

// Polls returns how many times Poll was called
func (s *ScriptedControls) Polls() int { return s.polls }

// SoundRecorder records played cues
type SoundRecorder struct {
	Played []Sound
}

// Play implements SoundPlayer
func (r *SoundRecorder) Play(s Sound) { r.Played = append(r.Played, s) }

// Count returns how many times s was played
func (r *SoundRecorder) Count(s Sound) int {
	n := 0
	for _, p := range r.Played {
		if p == s {
			n++
		}
	}
	return n
}

// NewTestWorld creates a world with an attached scheduler over the given canvas
func NewTestWorld(canvas Canvas, controls Controls, sound SoundPlayer) (*World, *Scheduler) {
	w := NewWorld(WorldConfig{
		Canvas:    canvas,
		Controls:  controls,
		Sound:     sound,
		Rand:      rand.New(rand.NewSource(1)),
		Border:    1,
		StartYear: 1957,
	})
	s := NewScheduler(w, SchedulerConfig{Tick: 100 * time.Millisecond})
	return w, s
}
