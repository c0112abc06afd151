package behavior

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/orbit/asset"
	"github.com/lixenwraith/orbit/engine"
)

// DelayPolicy picks the wait before the next launch
// ok is false while no garbage should fly yet; the policy is asked again next tick
type DelayPolicy interface {
	Delay(w *engine.World) (ticks int, ok bool)
}

// RandomDelay waits a uniform number of ticks in [Min, Max]
type RandomDelay TickRange

// Delay implements DelayPolicy
func (r RandomDelay) Delay(w *engine.World) (int, bool) {
	ticks := TickRange(r).Roll(w)
	if ticks < 1 {
		ticks = 1
	}
	return ticks, true
}

// TimelineDelay follows the year-based delay table of a timeline
type TimelineDelay struct {
	Timeline *asset.Timeline
}

// Delay implements DelayPolicy
func (t TimelineDelay) Delay(w *engine.World) (int, bool) {
	if t.Timeline == nil {
		return 0, false
	}
	return t.Timeline.GarbageDelayTicks(w.State.Year())
}

// Spawner launches garbage at random columns until the game ends
type Spawner struct {
	frames   []string
	speed    float64
	policy   DelayPolicy
	wait     int
	waiting  bool
	launched int
}

// NewSpawner creates a spawner choosing among frames
func NewSpawner(frames []string, speed float64, policy DelayPolicy) *Spawner {
	if len(frames) == 0 {
		panic("behavior: spawner requires at least one garbage frame")
	}
	return &Spawner{frames: frames, speed: speed, policy: policy}
}

func (s *Spawner) Name() string { return "spawner" }

// Launched returns how many garbage behaviors were spawned
func (s *Spawner) Launched() int { return s.launched }

func (s *Spawner) Step(w *engine.World) engine.Status {
	if w.State.GameOver() {
		w.Log.Debug("spawner stopped", zap.Int("launched", s.launched))
		return engine.Done
	}

	if !s.waiting {
		ticks, ok := s.policy.Delay(w)
		if !ok {
			return engine.Running
		}
		s.wait, s.waiting = ticks, true
	}

	s.wait--
	if s.wait > 0 {
		return engine.Running
	}
	s.waiting = false

	lo, hi := w.Border+1, w.Columns-1-w.Border
	column := lo
	if hi > lo {
		column += w.Rand.Intn(hi - lo + 1)
	}
	w.Spawn(NewGarbage(column, s.frames[w.Rand.Intn(len(s.frames))], s.speed))
	s.launched++
	return engine.Running
}
