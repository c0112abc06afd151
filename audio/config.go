// Package audio plays shot, explosion and game-over cues
package audio

import (
	"fmt"
	"strings"
)

// Mode selects the audio backend
type Mode string

const (
	ModeBell  Mode = "bell"  // terminal bell through tcell
	ModeSynth Mode = "synth" // beep speaker output
	ModeOff   Mode = "off"
)

// Config holds audio settings
type Config struct {
	Mode   Mode
	Volume float64 // 0..1, synth only
}

// DefaultConfig returns the bell backend at full volume
func DefaultConfig() Config {
	return Config{Mode: ModeBell, Volume: 1}
}

// ParseMode validates a mode name
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case ModeBell, ModeSynth, ModeOff:
		return m, nil
	case "":
		return ModeBell, nil
	}
	return "", fmt.Errorf("unknown audio mode %q", s)
}
