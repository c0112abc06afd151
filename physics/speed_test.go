package physics

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateSpeedNeverExceedsLimit(t *testing.T) {
	p := DefaultParams()
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 5000; i++ {
		v := Velocity{Row: rng.Float64()*40 - 20, Column: rng.Float64()*40 - 20}
		rowDir := rng.Intn(3) - 1
		colDir := rng.Intn(3) - 1

		got := UpdateSpeed(v, rowDir, colDir, p)
		if math.Abs(got.Row) > p.Limit || math.Abs(got.Column) > p.Limit {
			t.Fatalf("UpdateSpeed(%+v, %d, %d) = %+v exceeds limit %v", v, rowDir, colDir, got, p.Limit)
		}
	}
}

func TestUpdateSpeedConvergesToZero(t *testing.T) {
	p := DefaultParams()
	// From the limit, fading 0.8 needs ceil(log(eps/limit)/log(fading)) ticks
	bound := int(math.Ceil(math.Log(p.Epsilon/p.Limit)/math.Log(p.Fading))) + 1

	for _, start := range []Velocity{{Row: 2, Column: -2}, {Row: -1000, Column: 0.3}, {Row: 0.05}} {
		v := start
		ticks := 0
		for !v.Zero() {
			v = UpdateSpeed(v, 0, 0, p)
			ticks++
			require.LessOrEqual(t, ticks, bound, "speed %+v did not stop within %d ticks", start, bound)
		}
		assert.Equal(t, Velocity{}, v)
	}
}

func TestUpdateSpeedAccelerates(t *testing.T) {
	p := DefaultParams()

	v := UpdateSpeed(Velocity{}, -1, 1, p)
	assert.InDelta(t, -0.75, v.Row, 1e-9)
	assert.InDelta(t, 0.75, v.Column, 1e-9)

	for i := 0; i < 10; i++ {
		v = UpdateSpeed(v, -1, 1, p)
	}
	assert.Equal(t, Velocity{Row: -2, Column: 2}, v)
}

func TestUpdateSpeedAxesDecoupled(t *testing.T) {
	p := DefaultParams()

	v := UpdateSpeed(Velocity{Row: 1, Column: 1}, 1, 0, p)
	assert.InDelta(t, 1.75, v.Row, 1e-9)
	assert.InDelta(t, 0.8, v.Column, 1e-9)
}

func TestUpdateSpeedNormalisesDirection(t *testing.T) {
	p := DefaultParams()
	assert.Equal(t, UpdateSpeed(Velocity{}, 1, -1, p), UpdateSpeed(Velocity{}, 7, -3, p))
}

func TestUpdateSpeedReversal(t *testing.T) {
	p := DefaultParams()

	v := Velocity{Row: 2}
	v = UpdateSpeed(v, -1, 0, p)
	assert.InDelta(t, 1.25, v.Row, 1e-9)
}
