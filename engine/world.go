package engine

import (
	"math/rand"

	"go.uber.org/zap"

	"github.com/lixenwraith/orbit/vmath"
)

// Brightness selects the glyph intensity for DrawGlyph
type Brightness uint8

const (
	BrightnessDim Brightness = iota
	BrightnessNormal
	BrightnessBold
)

// Sound identifies a short audio cue
type Sound uint8

const (
	SoundShot Sound = iota
	SoundExplosion
	SoundGameOver
)

// Canvas is the text grid behaviors draw on
type Canvas interface {
	// Size returns the viewport in cells, assumed stable for the session
	Size() (rows, columns int)
	// Draw draws or erases a multi-line frame; spaces are transparent, the border and
	// the bottom-right cell are never written
	Draw(row, column int, text string, erase bool)
	// DrawGlyph draws a single cell with the given brightness, clipped like Draw
	DrawGlyph(row, column int, r rune, b Brightness)
	// DrawLabel writes a single line of text anywhere in the viewport, border included
	DrawLabel(row, column int, text string)
	// Show presents the frame
	Show()
}

// ControlInput is the folded keyboard state of one tick
type ControlInput struct {
	Row, Column int // direction, each in {-1, 0, 1}
	Fire        bool
}

// Controls drains pending input without blocking
type Controls interface {
	Poll() ControlInput
}

// SoundPlayer plays audio cues without blocking
type SoundPlayer interface {
	Play(s Sound)
}

// Position is a continuous playfield coordinate, rounded to cells for drawing and collision
type Position struct {
	Row, Column float64
}

// Cell returns the grid cell of the position
func (p Position) Cell() (row, column int) {
	return vmath.Cell(p.Row), vmath.Cell(p.Column)
}

type nopControls struct{}

func (nopControls) Poll() ControlInput { return ControlInput{} }

type nopSound struct{}

func (nopSound) Play(Sound) {}

// WorldConfig holds the collaborators of a World
// Nil fields get inert defaults
type WorldConfig struct {
	Canvas    Canvas
	Controls  Controls
	Sound     SoundPlayer
	Rand      *rand.Rand
	Logger    *zap.Logger
	Border    int
	StartYear int
}

// World is the shared context handed to every behavior step
// Obstacles and State are the only cross-behavior mutable state
type World struct {
	Canvas    Canvas
	Controls  Controls
	Sound     SoundPlayer
	Obstacles *ObstacleRegistry
	State     *GameState
	Rand      *rand.Rand
	Log       *zap.Logger

	// Viewport geometry captured at creation
	Rows, Columns int
	Border        int

	spawn func(Behavior)
	tick  uint64
}

// NewWorld creates a world sized to the canvas
func NewWorld(cfg WorldConfig) *World {
	if cfg.Canvas == nil {
		panic("engine: world requires a canvas")
	}
	rows, columns := cfg.Canvas.Size()

	w := &World{
		Canvas:   cfg.Canvas,
		Controls: cfg.Controls,
		Sound:    cfg.Sound,
		Rand:     cfg.Rand,
		Log:      cfg.Logger,
		Rows:     rows,
		Columns:  columns,
		Border:   cfg.Border,
	}
	if w.Controls == nil {
		w.Controls = nopControls{}
	}
	if w.Sound == nil {
		w.Sound = nopSound{}
	}
	if w.Rand == nil {
		w.Rand = rand.New(rand.NewSource(1))
	}
	if w.Log == nil {
		w.Log = zap.NewNop()
	}
	w.Obstacles = NewObstacleRegistry(rows, columns)
	w.State = NewGameState(cfg.StartYear)
	return w
}

// Spawn adds a behavior to the live set
// During a tick the behavior is admitted at the tick boundary and first runs next tick
func (w *World) Spawn(b Behavior) {
	if w.spawn == nil {
		panic("engine: spawn before scheduler attached")
	}
	w.spawn(b)
}

// Tick returns the number of the tick being executed, starting at 1
func (w *World) Tick() uint64 { return w.tick }

// Playfield returns the drawable area inside the border
func (w *World) Playfield() vmath.Rect {
	return vmath.Rect{
		Row:     w.Border,
		Column:  w.Border,
		Rows:    w.Rows - 2*w.Border,
		Columns: w.Columns - 2*w.Border,
	}
}
