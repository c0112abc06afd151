package engine

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/orbit/status"
)

// counter counts resumptions and completes after a fixed number of steps
type counter struct {
	id      int
	steps   int
	limit   int // 0 = never completes
	onStep  func(w *World, p *counter)
	journal *[]int
}

func (p *counter) Step(w *World) Status {
	p.steps++
	if p.journal != nil {
		*p.journal = append(*p.journal, p.id)
	}
	if p.onStep != nil {
		p.onStep(w, p)
	}
	if p.limit > 0 && p.steps >= p.limit {
		return Done
	}
	return Running
}

func (p *counter) Name() string { return "counter" }

func newTestScheduler(t *testing.T) (*World, *Scheduler, *CountingCanvas) {
	t.Helper()
	canvas := NewCountingCanvas(24, 80)
	w, s := NewTestWorld(canvas, nil, nil)
	return w, s, canvas
}

func TestSchedulerResumesEachBehaviorOncePerTick(t *testing.T) {
	_, s, canvas := newTestScheduler(t)

	var journal []int
	probes := make([]*counter, 5)
	for i := range probes {
		probes[i] = &counter{id: i, journal: &journal}
		s.Spawn(probes[i])
	}

	s.Step()
	assert.Equal(t, []int{0, 1, 2, 3, 4}, journal, "insertion order")
	for _, p := range probes {
		assert.Equal(t, 1, p.steps)
	}
	assert.Equal(t, 1, canvas.Shows, "frame presented exactly once per tick")

	s.Step()
	for _, p := range probes {
		assert.Equal(t, 2, p.steps)
	}
	assert.Equal(t, 2, canvas.Shows)
	assert.Equal(t, uint64(2), s.Ticks())
}

func TestSchedulerSpawnedBehaviorWaitsForNextTick(t *testing.T) {
	_, s, _ := newTestScheduler(t)

	child := &counter{id: 99}
	parent := &counter{id: 1, onStep: func(w *World, p *counter) {
		if p.steps == 1 {
			w.Spawn(child)
		}
	}}
	s.Spawn(parent)

	s.Step()
	assert.Equal(t, 0, child.steps, "spawned behavior must not run in its spawn tick")
	assert.Equal(t, 2, s.Live())

	s.Step()
	assert.Equal(t, 1, child.steps)
	assert.Equal(t, 2, parent.steps)
}

func TestSchedulerRemovesCompletedPreservingOrder(t *testing.T) {
	_, s, _ := newTestScheduler(t)

	var journal []int
	s.Spawn(&counter{id: 0, journal: &journal})
	s.Spawn(&counter{id: 1, limit: 1, journal: &journal})
	s.Spawn(&counter{id: 2, journal: &journal})
	s.Spawn(&counter{id: 3, limit: 2, journal: &journal})
	s.Spawn(&counter{id: 4, journal: &journal})

	s.Step()
	require.Equal(t, 4, s.Live())
	s.Step()
	require.Equal(t, 3, s.Live())

	journal = nil
	s.Step()
	assert.Equal(t, []int{0, 2, 4}, journal)
}

func TestSchedulerCompletedBehaviorNeverResumed(t *testing.T) {
	_, s, _ := newTestScheduler(t)

	once := &counter{id: 0, limit: 1}
	s.Spawn(once)
	for i := 0; i < 5; i++ {
		s.Step()
	}
	assert.Equal(t, 1, once.steps)
	assert.Equal(t, 0, s.Live())
}

// Post-tick live set equals (start - completed) + spawned, for random populations
func TestSchedulerTickInvariantRandomised(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	for round := 0; round < 50; round++ {
		_, s, _ := newTestScheduler(t)
		nextID := 0

		var start []*counter
		n := 1 + rng.Intn(30)
		for i := 0; i < n; i++ {
			p := &counter{id: nextID}
			nextID++
			s.Spawn(p)
			start = append(start, p)
		}

		completes := map[int]bool{}
		var spawned []*counter
		for _, p := range start {
			if rng.Intn(3) == 0 {
				p.limit = 1
				completes[p.id] = true
			}
			if rng.Intn(4) == 0 {
				child := &counter{id: nextID}
				nextID++
				spawned = append(spawned, child)
				p.onStep = func(w *World, _ *counter) { w.Spawn(child) }
			}
		}

		s.Step()

		want := []Behavior{}
		for _, p := range start {
			assert.Equal(t, 1, p.steps, "counter %d resumed %d times", p.id, p.steps)
			if !completes[p.id] {
				want = append(want, p)
			}
		}
		for _, c := range spawned {
			assert.Equal(t, 0, c.steps)
			want = append(want, c)
		}
		assert.Equal(t, want, s.Behaviors())
	}
}

func TestSchedulerMetrics(t *testing.T) {
	canvas := NewCountingCanvas(24, 80)
	w := NewWorld(WorldConfig{Canvas: canvas, Border: 1})
	metrics := status.NewRegistry()
	s := NewScheduler(w, SchedulerConfig{Tick: 10 * time.Millisecond, Metrics: metrics})

	w.Obstacles.Register(2, 2, 1, 1)
	s.Spawn(&counter{})
	s.Spawn(&counter{limit: 1})
	s.Step()

	assert.Equal(t, int64(1), metrics.Ints.Get(status.KeyTicks).Load())
	assert.Equal(t, int64(1), metrics.Ints.Get(status.KeyLive).Load())
	assert.Equal(t, int64(1), metrics.Ints.Get(status.KeyObstacles).Load())
}

func TestSchedulerRunSleepsRemainingBudget(t *testing.T) {
	canvas := NewCountingCanvas(24, 80)
	w := NewWorld(WorldConfig{Canvas: canvas})
	clock := NewManualClock(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	metrics := status.NewRegistry()
	s := NewScheduler(w, SchedulerConfig{Tick: 100 * time.Millisecond, Clock: clock, Metrics: metrics})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s.Spawn(BehaviorFunc(func(w *World) Status {
		clock.Advance(30 * time.Millisecond)
		if w.Tick() == 3 {
			cancel()
		}
		return Running
	}))

	require.NoError(t, s.Run(ctx))
	assert.Equal(t, uint64(3), s.Ticks())
	// Third tick cancels, so its sleep is skipped
	assert.Equal(t, []time.Duration{70 * time.Millisecond, 70 * time.Millisecond}, clock.Sleeps())
	// 0 -> 3 -> 5.7 -> 8.13 while converging on 30ms
	assert.InDelta(t, 8.13, metrics.Floats.Get(status.KeyTickMs).Load(), 1e-9)
}

func TestSchedulerRunToleratesOverrun(t *testing.T) {
	canvas := NewCountingCanvas(24, 80)
	w := NewWorld(WorldConfig{Canvas: canvas})
	clock := NewManualClock(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	metrics := status.NewRegistry()
	s := NewScheduler(w, SchedulerConfig{Tick: 50 * time.Millisecond, Clock: clock, Metrics: metrics})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s.Spawn(BehaviorFunc(func(w *World) Status {
		switch w.Tick() {
		case 1:
			clock.Advance(80 * time.Millisecond) // over budget
		case 2:
			clock.Advance(10 * time.Millisecond)
			cancel()
		}
		return Running
	}))

	require.NoError(t, s.Run(ctx))
	assert.Empty(t, clock.Sleeps(), "overrun tick must not sleep")
	assert.Equal(t, int64(1), metrics.Ints.Get(status.KeyOverruns).Load())
	assert.Equal(t, uint64(2), s.Ticks())
}

func TestSchedulerRunStopsOnCancelledContext(t *testing.T) {
	_, s, _ := newTestScheduler(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, s.Run(ctx))
	assert.Equal(t, uint64(0), s.Ticks())
}

func TestSchedulerBehaviorPanicPropagates(t *testing.T) {
	_, s, _ := newTestScheduler(t)
	s.Spawn(BehaviorFunc(func(*World) Status { panic("corrupted state") }))

	assert.PanicsWithValue(t, "corrupted state", func() { s.Step() })
}

func TestSpawnNilIgnored(t *testing.T) {
	_, s, _ := newTestScheduler(t)
	s.Spawn(nil)
	assert.Equal(t, 0, s.Live())
}

func TestNameOf(t *testing.T) {
	assert.Equal(t, "counter", NameOf(&counter{}))
	assert.Equal(t, "anonymous", NameOf(BehaviorFunc(func(*World) Status { return Done })))
	assert.Equal(t, "done", Done.String())
}
