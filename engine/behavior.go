package engine

// Status is the outcome of one behavior step
type Status uint8

const (
	// Running means the behavior suspended at a tick boundary and resumes next tick
	Running Status = iota
	// Done means the behavior completed and is removed from the live set
	Done
)

func (s Status) String() string {
	switch s {
	case Running:
		return "running"
	case Done:
		return "done"
	}
	return "unknown"
}

// Behavior is a suspendable unit of entity logic
// Step runs the behavior from its current resume point to the next tick boundary
// A behavior must leave shared state (obstacles, game state) consistent before returning
// Once Step returns Done it is never called again
type Behavior interface {
	Step(w *World) Status
}

// BehaviorFunc adapts a plain function to Behavior
type BehaviorFunc func(w *World) Status

// Step implements Behavior
func (f BehaviorFunc) Step(w *World) Status { return f(w) }

// Named is implemented by behaviors that report a kind for logs and metrics
type Named interface {
	Name() string
}

// NameOf returns the behavior kind or "anonymous"
func NameOf(b Behavior) string {
	if n, ok := b.(Named); ok {
		return n.Name()
	}
	return "anonymous"
}
