// Package terminal owns the tcell screen for a session.
//
// The service opens the screen on Init, runs the input poller on Start and
// restores the terminal on Stop. Rendering goes through render.Screen and
// input through input.Keyboard; this package only manages their lifetime.
package terminal
