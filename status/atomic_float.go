package status

import (
	"math"
	"sync/atomic"
)

// AtomicFloat is a float64 gauge stored as its IEEE-754 bits
// Zero value reads 0.0
type AtomicFloat struct {
	bits atomic.Uint64
}

// Store sets the value
func (f *AtomicFloat) Store(val float64) {
	f.bits.Store(math.Float64bits(val))
}

// Load returns the value
func (f *AtomicFloat) Load() float64 {
	return math.Float64frombits(f.bits.Load())
}

// Blend moves the value toward sample by weight in [0,1] and returns the result
// Weight 1 replaces the value; weight 0 leaves it unchanged
func (f *AtomicFloat) Blend(sample, weight float64) float64 {
	for {
		old := f.bits.Load()
		cur := math.Float64frombits(old)
		next := cur + (sample-cur)*weight
		if f.bits.CompareAndSwap(old, math.Float64bits(next)) {
			return next
		}
	}
}
