package audio

import (
	"github.com/lixenwraith/orbit/engine"
)

// Beeper rings the terminal bell, satisfied by tcell.Screen
type Beeper interface {
	Beep() error
}

// Bell maps the shot cue to the terminal bell, other cues are silent
type Bell struct {
	beeper Beeper
}

// NewBell creates a bell player
func NewBell(b Beeper) *Bell {
	return &Bell{beeper: b}
}

// Play implements engine.SoundPlayer
func (b *Bell) Play(s engine.Sound) {
	if b.beeper == nil || s != engine.SoundShot {
		return
	}
	_ = b.beeper.Beep()
}

// Silent discards every cue
type Silent struct{}

// Play implements engine.SoundPlayer
func (Silent) Play(engine.Sound) {}
