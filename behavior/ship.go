package behavior

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/orbit/asset"
	"github.com/lixenwraith/orbit/engine"
	"github.com/lixenwraith/orbit/physics"
	"github.com/lixenwraith/orbit/vmath"
)

// ShipConfig tunes the player craft
type ShipConfig struct {
	Frames    []string
	FrameHold int // ticks each frame stays before the next, minimum 1
	Physics   physics.Params
	// SpeedScale converts velocity to cells moved per tick
	SpeedScale float64
	// GunUnlockYear arms the gun from that calendar year, 0 arms it from the start
	GunUnlockYear int

	ProjectileRowSpeed    float64
	ProjectileColumnSpeed float64
	Explosion             []string
	Banner                string
}

// Ship is the player craft; it completes only by colliding with an obstacle
type Ship struct {
	cfg   ShipConfig
	pos   engine.Position
	vel   physics.Velocity
	frame int
	held  int

	drawn      bool
	drawnRow   int
	drawnCol   int
	drawnFrame string
}

// NewShip creates a craft at start, at rest
func NewShip(start engine.Position, cfg ShipConfig) *Ship {
	if cfg.FrameHold < 1 {
		cfg.FrameHold = 1
	}
	if len(cfg.Frames) == 0 {
		panic("behavior: ship requires at least one frame")
	}
	return &Ship{cfg: cfg, pos: start}
}

func (s *Ship) Name() string { return "ship" }

// SetVelocity replaces the current velocity
func (s *Ship) SetVelocity(v physics.Velocity) { s.vel = v }

// Velocity returns the current velocity
func (s *Ship) Velocity() physics.Velocity { return s.vel }

// Position returns the current continuous position
func (s *Ship) Position() engine.Position { return s.pos }

// Armed reports whether the gun fires in the current year
func (s *Ship) Armed(w *engine.World) bool {
	return s.cfg.GunUnlockYear == 0 || w.State.Year() >= s.cfg.GunUnlockYear
}

func (s *Ship) Step(w *engine.World) engine.Status {
	s.erase(w)

	in := w.Controls.Poll()
	s.vel = physics.UpdateSpeed(s.vel, in.Row, in.Column, s.cfg.Physics)

	frame := s.cfg.Frames[s.frame]
	rows, cols := asset.FrameSize(frame)
	s.pos.Row = vmath.Median(float64(w.Border), s.pos.Row+s.vel.Row*s.cfg.SpeedScale, float64(w.Rows-rows-w.Border))
	s.pos.Column = vmath.Median(float64(w.Border), s.pos.Column+s.vel.Column*s.cfg.SpeedScale, float64(w.Columns-cols-w.Border))

	s.held++
	if s.held >= s.cfg.FrameHold {
		s.held = 0
		s.frame = (s.frame + 1) % len(s.cfg.Frames)
	}

	if in.Fire && s.Armed(w) {
		muzzle := engine.Position{Row: s.pos.Row, Column: s.pos.Column + float64(cols/2)}
		w.Spawn(NewFire(muzzle, s.cfg.ProjectileRowSpeed, s.cfg.ProjectileColumnSpeed, s.cfg.Explosion))
	}

	row, col := s.pos.Cell()
	if _, hit := w.Obstacles.AnyCollision(row, col, rows, cols); hit {
		if w.State.TriggerGameOver() {
			w.Spawn(NewGameOver(s.cfg.Banner))
			w.Sound.Play(engine.SoundGameOver)
			w.Log.Info("ship destroyed", zap.Int("year", w.State.Year()))
		}
		return engine.Done
	}

	w.Canvas.Draw(row, col, frame, false)
	s.drawn, s.drawnRow, s.drawnCol, s.drawnFrame = true, row, col, frame
	return engine.Running
}

func (s *Ship) erase(w *engine.World) {
	if !s.drawn {
		return
	}
	w.Canvas.Draw(s.drawnRow, s.drawnCol, s.drawnFrame, true)
	s.drawn = false
}
