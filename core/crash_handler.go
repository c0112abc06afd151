// Package core holds process-wide crash handling
package core

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"

	"go.uber.org/zap"
)

// Finalizer restores the terminal, satisfied by tcell.Screen
type Finalizer interface {
	Fini()
}

var (
	mu          sync.Mutex
	crashScreen Finalizer
	crashLog    = zap.NewNop()
	crashOut    = io.Writer(os.Stderr)
	exit        = os.Exit
)

// SetCrashScreen registers the terminal to restore on crash, nil clears it
func SetCrashScreen(s Finalizer) {
	mu.Lock()
	crashScreen = s
	mu.Unlock()
}

// SetCrashLogger registers the logger that records the panic
func SetCrashLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	mu.Lock()
	crashLog = l
	mu.Unlock()
}

// HandleCrash is the unified panic handler that resets the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}
	stack := debug.Stack()

	mu.Lock()
	screen, log, out, exitFn := crashScreen, crashLog, crashOut, exit
	crashScreen = nil
	mu.Unlock()

	// Restore terminal to sane state before printing
	if screen != nil {
		screen.Fini()
	}

	log.Error("crash", zap.Any("panic", r), zap.ByteString("stack", stack))
	_ = log.Sync()

	fmt.Fprintf(out, "\n\x1b[31mORBIT CRASHED: %v\x1b[0m\n", r)
	fmt.Fprintf(out, "Stack Trace:\n%s\n", stack)

	exitFn(1)
}

// Go runs a function in a new goroutine with panic recovery
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
