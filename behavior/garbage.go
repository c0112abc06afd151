package behavior

import (
	"github.com/lixenwraith/orbit/asset"
	"github.com/lixenwraith/orbit/engine"
	"github.com/lixenwraith/orbit/vmath"
)

// Garbage falls from the top row at a fixed column, registered as an obstacle
type Garbage struct {
	frame      string
	rows, cols int
	row        float64
	column     int
	speed      float64

	id         engine.ObstacleID
	registered bool
	drawn      bool
	drawnRow   int
}

// NewGarbage creates a falling obstacle; column is clamped at registration
func NewGarbage(column int, frame string, speed float64) *Garbage {
	rows, cols := asset.FrameSize(frame)
	return &Garbage{frame: frame, rows: rows, cols: cols, column: column, speed: speed}
}

func (g *Garbage) Name() string { return "garbage" }

// ID returns the obstacle handle, valid after the first step
func (g *Garbage) ID() engine.ObstacleID { return g.id }

// Column returns the column after clamping
func (g *Garbage) Column() int { return g.column }

func (g *Garbage) Step(w *engine.World) engine.Status {
	if !g.registered {
		g.column = vmath.MedianInt(w.Border+1, g.column, w.Columns-1-w.Border)
		g.id = w.Obstacles.Register(0, g.column, g.rows, g.cols)
		g.registered = true
		g.draw(w)
		return engine.Running
	}

	g.erase(w)

	// Removed by a projectile since the last tick
	if !w.Obstacles.Contains(g.id) {
		return engine.Done
	}

	g.row += g.speed
	if g.row >= float64(w.Rows) {
		w.Obstacles.Remove(g.id)
		return engine.Done
	}
	w.Obstacles.UpdatePosition(g.id, vmath.Cell(g.row))
	g.draw(w)
	return engine.Running
}

func (g *Garbage) draw(w *engine.World) {
	g.drawnRow = vmath.Cell(g.row)
	w.Canvas.Draw(g.drawnRow, g.column, g.frame, false)
	g.drawn = true
}

func (g *Garbage) erase(w *engine.World) {
	if !g.drawn {
		return
	}
	w.Canvas.Draw(g.drawnRow, g.column, g.frame, true)
	g.drawn = false
}
