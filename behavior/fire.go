package behavior

import (
	"github.com/lixenwraith/orbit/asset"
	"github.com/lixenwraith/orbit/engine"
)

type fireState uint8

const (
	fireMuzzle fireState = iota // '*'
	fireCharge                  // 'O'
	fireFlight
)

// Fire is a projectile: a two-tick muzzle flash, then straight flight until it leaves
// the playfield or strikes an obstacle
type Fire struct {
	pos       engine.Position
	rowSpeed  float64
	colSpeed  float64
	glyph     rune
	explosion []string
	state     fireState
	drawn     bool
	drawnRow  int
	drawnCol  int
	hitID     engine.ObstacleID
	hit       bool
}

// NewFire creates a projectile at start moving by (rowSpeed, columnSpeed) cells per tick
// explosion frames are played at the center of a struck obstacle
func NewFire(start engine.Position, rowSpeed, columnSpeed float64, explosion []string) *Fire {
	glyph := '|'
	if columnSpeed != 0 {
		glyph = '-'
	}
	return &Fire{
		pos:       start,
		rowSpeed:  rowSpeed,
		colSpeed:  columnSpeed,
		glyph:     glyph,
		explosion: explosion,
	}
}

func (f *Fire) Name() string { return "fire" }

// Position returns the current continuous position
func (f *Fire) Position() engine.Position { return f.pos }

// Hit returns the obstacle the projectile destroyed, if any
func (f *Fire) Hit() (engine.ObstacleID, bool) { return f.hitID, f.hit }

// Step checks the occupied cell against obstacles, then moves and checks the entered cell
// Checking both keeps a projectile and a one-row obstacle moving toward each other from
// swapping cells within a tick without colliding
func (f *Fire) Step(w *engine.World) engine.Status {
	f.erase(w)

	row, col := f.pos.Cell()
	if o, hit := w.Obstacles.AnyCollision(row, col, 1, 1); hit {
		return f.strike(w, o)
	}

	switch f.state {
	case fireMuzzle:
		f.draw(w, row, col, '*')
		f.state = fireCharge
		return engine.Running

	case fireCharge:
		f.draw(w, row, col, 'O')
		f.state = fireFlight
		w.Sound.Play(engine.SoundShot)
		return engine.Running
	}

	f.pos.Row += f.rowSpeed
	f.pos.Column += f.colSpeed
	if !f.inFlightBounds(w) {
		return engine.Done
	}
	row, col = f.pos.Cell()
	if o, hit := w.Obstacles.AnyCollision(row, col, 1, 1); hit {
		return f.strike(w, o)
	}
	f.draw(w, row, col, f.glyph)
	return engine.Running
}

// strike destroys o and hands its center to an explosion
func (f *Fire) strike(w *engine.World, o engine.Obstacle) engine.Status {
	w.Obstacles.Remove(o.ID)
	f.hitID, f.hit = o.ID, true
	cr, cc := o.Center()
	w.Spawn(NewExplosion(cr, cc, f.explosion))
	w.Sound.Play(engine.SoundExplosion)
	w.Log.Debug("projectile hit")
	return engine.Done
}

// inFlightBounds keeps the projectile strictly inside the border with one cell of margin
func (f *Fire) inFlightBounds(w *engine.World) bool {
	lo := float64(w.Border)
	maxRow := float64(w.Rows - 1 - w.Border)
	maxCol := float64(w.Columns - 1 - w.Border)
	return lo < f.pos.Row && f.pos.Row < maxRow && lo < f.pos.Column && f.pos.Column < maxCol
}

func (f *Fire) draw(w *engine.World, row, col int, r rune) {
	w.Canvas.DrawGlyph(row, col, r, engine.BrightnessNormal)
	f.drawn, f.drawnRow, f.drawnCol = true, row, col
}

func (f *Fire) erase(w *engine.World) {
	if !f.drawn {
		return
	}
	w.Canvas.DrawGlyph(f.drawnRow, f.drawnCol, ' ', engine.BrightnessNormal)
	f.drawn = false
}

// Explosion plays its frames once, centered on a cell, one frame per tick
type Explosion struct {
	row, col int
	frames   []string
	next     int
	drawn    bool
	drawnRow int
	drawnCol int
}

// NewExplosion creates an explosion centered on (row, column)
func NewExplosion(row, column int, frames []string) *Explosion {
	return &Explosion{row: row, col: column, frames: frames}
}

func (e *Explosion) Name() string { return "explosion" }

func (e *Explosion) Step(w *engine.World) engine.Status {
	if e.drawn {
		w.Canvas.Draw(e.drawnRow, e.drawnCol, e.frames[e.next-1], true)
		e.drawn = false
	}
	if e.next >= len(e.frames) {
		return engine.Done
	}

	frame := e.frames[e.next]
	rows, cols := asset.FrameSize(frame)
	e.drawnRow, e.drawnCol = e.row-rows/2, e.col-cols/2
	w.Canvas.Draw(e.drawnRow, e.drawnCol, frame, false)
	e.drawn = true
	e.next++
	return engine.Running
}
