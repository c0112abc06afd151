package physics

import (
	"math"

	"github.com/lixenwraith/orbit/vmath"
)

// Params tunes the acceleration/decay model
type Params struct {
	Acceleration float64 // speed gained per tick while a direction is held
	Limit        float64 // maximum speed magnitude per axis
	Fading       float64 // fraction of speed kept per tick without input, [0, 1]
	Epsilon      float64 // speeds below this snap to zero while fading
}

// DefaultParams returns the tuning used by the craft
func DefaultParams() Params {
	return Params{
		Acceleration: 0.75,
		Limit:        2,
		Fading:       0.8,
		Epsilon:      0.1,
	}
}

// Velocity is speed in cells per tick along each axis
type Velocity struct {
	Row, Column float64
}

// Zero reports whether the craft is at rest
func (v Velocity) Zero() bool { return v.Row == 0 && v.Column == 0 }

// UpdateSpeed returns the velocity after one tick of directional input
// Directions are reduced to their sign; each axis is handled independently
func UpdateSpeed(v Velocity, rowDir, columnDir int, p Params) Velocity {
	return Velocity{
		Row:    axis(v.Row, rowDir, p),
		Column: axis(v.Column, columnDir, p),
	}
}

func axis(speed float64, dir int, p Params) float64 {
	limit := math.Abs(p.Limit)

	if d := vmath.Sign(dir); d != 0 {
		return vmath.Median(-limit, speed+float64(d)*p.Acceleration, limit)
	}

	speed = vmath.Median(-limit, speed*p.Fading, limit)
	if math.Abs(speed) < p.Epsilon {
		return 0
	}
	return speed
}
