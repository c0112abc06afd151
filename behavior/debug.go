package behavior

import (
	"strings"
	"unicode/utf8"

	"github.com/lixenwraith/orbit/engine"
	"github.com/lixenwraith/orbit/status"
	"github.com/lixenwraith/orbit/vmath"
)

// ObstacleFrames outlines every live obstacle, redrawn each tick
type ObstacleFrames struct {
	drawn []vmath.Rect
}

// NewObstacleFrames creates the overlay
func NewObstacleFrames() *ObstacleFrames { return &ObstacleFrames{} }

func (o *ObstacleFrames) Name() string { return "obstacle_frames" }

func (o *ObstacleFrames) Step(w *engine.World) engine.Status {
	for _, r := range o.drawn {
		w.Canvas.Draw(r.Row, r.Column, BoxFrame(r.Rows, r.Columns), true)
	}
	o.drawn = o.drawn[:0]

	for _, ob := range w.Obstacles.Snapshot() {
		w.Canvas.Draw(ob.Row, ob.Column, BoxFrame(ob.Rows, ob.Columns), false)
		o.drawn = append(o.drawn, ob.Rect)
	}
	return engine.Running
}

// BoxFrame returns the outline of a rows x columns rectangle with a transparent inside
func BoxFrame(rows, columns int) string {
	if rows <= 0 || columns <= 0 {
		return ""
	}
	if rows == 1 {
		return strings.Repeat("-", columns)
	}
	if columns == 1 {
		return strings.TrimSuffix(strings.Repeat("|\n", rows), "\n")
	}

	edge := "+" + strings.Repeat("-", columns-2) + "+"
	side := "|" + strings.Repeat(" ", columns-2) + "|"
	lines := make([]string, 0, rows)
	lines = append(lines, edge)
	for i := 0; i < rows-2; i++ {
		lines = append(lines, side)
	}
	lines = append(lines, edge)
	return strings.Join(lines, "\n")
}

// StatusLine prints every registered metric on the top border line
type StatusLine struct {
	metrics *status.Registry
	width   int
}

// NewStatusLine creates the counter line over a metrics registry
func NewStatusLine(metrics *status.Registry) *StatusLine {
	return &StatusLine{metrics: metrics}
}

func (s *StatusLine) Name() string { return "status_line" }

func (s *StatusLine) Step(w *engine.World) engine.Status {
	line := " " + s.metrics.Line() + " "
	width := utf8.RuneCountInString(line)
	if width < s.width {
		line += strings.Repeat(" ", s.width-width)
	}
	s.width = width
	w.Canvas.DrawLabel(0, labelColumn, line)
	return engine.Running
}
