package terminal

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/orbit/core"
	"github.com/lixenwraith/orbit/input"
)

// ErrNotInitialized is returned by Start before a successful Init
var ErrNotInitialized = errors.New("terminal: not initialized")

// Listener consumes screen events until PollEvent returns nil
type Listener interface {
	Listen(src input.EventSource)
}

// ScreenFactory opens a screen; tcell.NewScreen in production
type ScreenFactory func() (tcell.Screen, error)

// TerminalService manages the screen lifecycle and the input poller
type TerminalService struct {
	open     ScreenFactory
	log      *zap.Logger
	screen   tcell.Screen
	listener Listener

	mu      sync.Mutex
	running bool
	doneCh  chan struct{}
}

// NewService creates a terminal service; nil open uses tcell.NewScreen
func NewService(open ScreenFactory, log *zap.Logger) *TerminalService {
	if open == nil {
		open = tcell.NewScreen
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &TerminalService{open: open, log: log}
}

// Name implements Service
func (s *TerminalService) Name() string {
	return "terminal"
}

// Dependencies implements Service
func (s *TerminalService) Dependencies() []string {
	return nil
}

// Init implements Service
// args[0]: Listener fed from the poller goroutine (optional)
func (s *TerminalService) Init(args ...any) error {
	if len(args) > 0 {
		if l, ok := args[0].(Listener); ok {
			s.listener = l
		}
	}

	screen, err := s.open()
	if err != nil {
		return fmt.Errorf("terminal open: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	screen.HideCursor()
	screen.Clear()

	s.mu.Lock()
	s.screen = screen
	s.mu.Unlock()
	core.SetCrashScreen(screen)
	rows, cols := s.Size()
	s.log.Info("terminal ready", zap.Int("rows", rows), zap.Int("columns", cols))
	return nil
}

// Start implements Service - launches the input poller
func (s *TerminalService) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.screen == nil {
		return ErrNotInitialized
	}
	if s.running {
		return nil
	}
	s.running = true
	s.doneCh = make(chan struct{})

	screen, listener, done := s.screen, s.listener, s.doneCh
	core.Go(func() {
		defer close(done)
		if listener != nil {
			listener.Listen(screen)
			return
		}
		for screen.PollEvent() != nil {
		}
	})
	return nil
}

// Stop implements Service - restores the terminal and waits for the poller
func (s *TerminalService) Stop() error {
	s.mu.Lock()
	screen, running, done := s.screen, s.running, s.doneCh
	s.running = false
	s.screen = nil
	s.mu.Unlock()

	if screen == nil {
		return nil
	}
	core.SetCrashScreen(nil)
	// Fini makes PollEvent return nil
	screen.Fini()
	if running {
		<-done
	}
	return nil
}

// Screen returns the open screen, nil before Init or after Stop
func (s *TerminalService) Screen() tcell.Screen {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.screen
}

// Size returns the viewport as rows, columns
func (s *TerminalService) Size() (rows, columns int) {
	screen := s.Screen()
	if screen == nil {
		return 0, 0
	}
	w, h := screen.Size()
	return h, w
}

// Beep rings the terminal bell
func (s *TerminalService) Beep() error {
	screen := s.Screen()
	if screen == nil {
		return nil
	}
	return screen.Beep()
}
