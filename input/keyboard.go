package input

import (
	"sync"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/orbit/engine"
)

const defaultBuffer = 256

// EventSource is the blocking half of tcell.Screen
type EventSource interface {
	PollEvent() tcell.Event
}

// KeyboardConfig configures a Keyboard
type KeyboardConfig struct {
	Table  *KeyTable
	Buffer int
	OnQuit func()
	Logger *zap.Logger
}

// Keyboard queues intents from the poller goroutine and folds them into one
// ControlInput per tick on the scheduler goroutine
type Keyboard struct {
	table   *KeyTable
	events  chan IntentType
	onQuit  func()
	quit    sync.Once
	log     *zap.Logger
	dropped atomic.Int64
}

// NewKeyboard creates a keyboard with an empty queue
func NewKeyboard(cfg KeyboardConfig) *Keyboard {
	if cfg.Table == nil {
		cfg.Table = DefaultKeyTable()
	}
	if cfg.Buffer <= 0 {
		cfg.Buffer = defaultBuffer
	}
	if cfg.OnQuit == nil {
		cfg.OnQuit = func() {}
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return &Keyboard{
		table:  cfg.Table,
		events: make(chan IntentType, cfg.Buffer),
		onQuit: cfg.OnQuit,
		log:    cfg.Logger,
	}
}

// HandleKey classifies one key press, returns false for unbound keys
// Quit fires OnQuit once; other intents are queued, dropped when the queue is full
func (k *Keyboard) HandleKey(key tcell.Key, r rune) bool {
	intent := k.table.Lookup(key, r)
	switch intent {
	case IntentNone:
		return false
	case IntentQuit:
		k.quit.Do(func() {
			k.log.Info("quit requested")
			k.onQuit()
		})
		return true
	}

	select {
	case k.events <- intent:
	default:
		k.dropped.Add(1)
	}
	return true
}

// Listen pumps events from src until it reports closure with a nil event
func (k *Keyboard) Listen(src EventSource) {
	for {
		ev := src.PollEvent()
		if ev == nil {
			k.log.Debug("event source closed")
			return
		}
		switch e := ev.(type) {
		case *tcell.EventKey:
			k.HandleKey(e.Key(), e.Rune())
		case *tcell.EventResize:
			// Viewport geometry is fixed for the session
		}
	}
}

// Poll drains every queued intent without blocking
// A later direction on the same axis overrides an earlier one
func (k *Keyboard) Poll() engine.ControlInput {
	var in engine.ControlInput
	for {
		select {
		case intent := <-k.events:
			switch intent {
			case IntentUp:
				in.Row = -1
			case IntentDown:
				in.Row = 1
			case IntentLeft:
				in.Column = -1
			case IntentRight:
				in.Column = 1
			case IntentFire:
				in.Fire = true
			}
		default:
			return in
		}
	}
}

// Dropped returns how many intents were discarded on a full queue
func (k *Keyboard) Dropped() int64 { return k.dropped.Load() }
