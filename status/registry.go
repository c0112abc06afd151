package status

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Metric keys written by the scheduler
const (
	KeyTicks     = "engine.ticks"
	KeyLive      = "engine.live"
	KeyObstacles = "engine.obstacles"
	KeyOverruns  = "engine.overruns"
	KeyTickMs    = "engine.tick_ms"
)

// Registry holds the counters shown on the debug status line
// Producers cache cell pointers at construction and write atomics from the tick loop
type Registry struct {
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
}

// NewRegistry creates an empty Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
}

// Line renders every metric as "name=value", integers first, each group in key order
// The key prefix up to the last dot is dropped
func (r *Registry) Line() string {
	var parts []string
	r.Ints.Range(func(key string, cell *atomic.Int64) {
		parts = append(parts, fmt.Sprintf("%s=%d", shortName(key), cell.Load()))
	})
	r.Floats.Range(func(key string, cell *AtomicFloat) {
		parts = append(parts, fmt.Sprintf("%s=%.1f", shortName(key), cell.Load()))
	})
	return strings.Join(parts, " ")
}

func shortName(key string) string {
	if i := strings.LastIndexByte(key, '.'); i >= 0 {
		return key[i+1:]
	}
	return key
}
