package engine

import (
	"context"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/orbit/status"
)

// tickMsWeight smooths the reported tick duration over roughly the last ten ticks
const tickMsWeight = 0.1

// SchedulerConfig configures the tick loop
type SchedulerConfig struct {
	Tick    time.Duration    // fixed tick period
	Clock   Clock            // nil uses SystemClock
	Metrics *status.Registry // nil creates a private registry
}

// Scheduler drives the live behavior set forward one step per tick
// All behaviors run on the goroutine calling Step/Run; no locking is needed because a
// behavior is never interrupted between two suspension points
type Scheduler struct {
	world *World
	tick  time.Duration
	clock Clock

	live    []Behavior
	pending []Behavior // spawned during the current tick
	inTick  bool

	ticks atomic.Uint64

	// Cached metric pointers
	statTicks     *atomic.Int64
	statLive      *atomic.Int64
	statObstacles *atomic.Int64
	statOverruns  *atomic.Int64
	statTickMs    *status.AtomicFloat
}

// NewScheduler creates a scheduler and attaches it as the world's spawner
func NewScheduler(w *World, cfg SchedulerConfig) *Scheduler {
	if cfg.Tick <= 0 {
		panic("engine: scheduler tick must be positive")
	}
	if cfg.Clock == nil {
		cfg.Clock = NewSystemClock()
	}
	if cfg.Metrics == nil {
		cfg.Metrics = status.NewRegistry()
	}

	s := &Scheduler{
		world:         w,
		tick:          cfg.Tick,
		clock:         cfg.Clock,
		statTicks:     cfg.Metrics.Ints.Get(status.KeyTicks),
		statLive:      cfg.Metrics.Ints.Get(status.KeyLive),
		statObstacles: cfg.Metrics.Ints.Get(status.KeyObstacles),
		statOverruns:  cfg.Metrics.Ints.Get(status.KeyOverruns),
		statTickMs:    cfg.Metrics.Floats.Get(status.KeyTickMs),
	}
	w.spawn = s.Spawn
	return s
}

// Spawn adds a behavior to the live set
// Outside a tick it is appended immediately; inside a tick it is buffered and
// admitted after every behavior live at tick start has been resumed
func (s *Scheduler) Spawn(b Behavior) {
	if b == nil {
		return
	}
	if s.inTick {
		s.pending = append(s.pending, b)
		return
	}
	s.live = append(s.live, b)
	s.statLive.Store(int64(len(s.live)))
}

// Live returns the number of live behaviors
func (s *Scheduler) Live() int { return len(s.live) }

// Behaviors returns a copy of the live set in resumption order
func (s *Scheduler) Behaviors() []Behavior {
	out := make([]Behavior, len(s.live))
	copy(out, s.live)
	return out
}

// Ticks returns the number of completed ticks
func (s *Scheduler) Ticks() uint64 { return s.ticks.Load() }

// Step executes one tick: resume, compact, admit, present
func (s *Scheduler) Step() {
	tick := s.ticks.Load() + 1
	s.world.tick = tick

	s.inTick = true
	n := len(s.live)
	completed := 0
	for i := 0; i < n; i++ {
		b := s.live[i]
		if b.Step(s.world) == Done {
			s.live[i] = nil
			completed++
			s.world.Log.Debug("behavior completed",
				zap.String("kind", NameOf(b)),
				zap.Uint64("tick", tick),
			)
		}
	}
	s.inTick = false

	if completed > 0 {
		s.compact()
	}
	if len(s.pending) > 0 {
		s.live = append(s.live, s.pending...)
		clear(s.pending)
		s.pending = s.pending[:0]
	}

	s.world.Canvas.Show()

	s.ticks.Store(tick)
	s.statTicks.Store(int64(tick))
	s.statLive.Store(int64(len(s.live)))
	s.statObstacles.Store(int64(s.world.Obstacles.Len()))
}

// compact removes completed slots while preserving resumption order
func (s *Scheduler) compact() {
	kept := s.live[:0]
	for _, b := range s.live {
		if b != nil {
			kept = append(kept, b)
		}
	}
	clear(s.live[len(kept):])
	s.live = kept
}

// Run steps the scheduler on a fixed period until ctx is cancelled
// An overrunning tick is followed immediately by the next one without catching up
func (s *Scheduler) Run(ctx context.Context) error {
	s.world.Log.Info("scheduler started",
		zap.Duration("tick", s.tick),
		zap.Int("live", len(s.live)),
	)
	defer func() {
		s.world.Log.Info("scheduler stopped", zap.Uint64("ticks", s.ticks.Load()))
	}()

	for {
		if ctx.Err() != nil {
			return nil
		}

		start := s.clock.Now()
		s.Step()
		elapsed := s.clock.Now().Sub(start)
		s.statTickMs.Blend(float64(elapsed)/float64(time.Millisecond), tickMsWeight)

		remaining := s.tick - elapsed
		if remaining <= 0 {
			s.statOverruns.Add(1)
			s.world.Log.Debug("tick overrun",
				zap.Uint64("tick", s.ticks.Load()),
				zap.Duration("elapsed", elapsed),
			)
			continue
		}
		if err := s.clock.Sleep(ctx, remaining); err != nil {
			return nil
		}
	}
}
