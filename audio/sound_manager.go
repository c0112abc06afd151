package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/orbit/engine"
)

const (
	sampleRate = beep.SampleRate(48000)
)

// SoundManager plays synthesized cues through the beep speaker
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewSoundManager creates a sound manager at the given volume (0..1)
func NewSoundManager(volume float64) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup clears pending cues and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

// Play implements engine.SoundPlayer, a no-op before Initialize
func (sm *SoundManager) Play(s engine.Sound) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	streamer := cue(s)
	if streamer == nil {
		return
	}

	speaker.Lock()
	sm.mixer.Add(withVolume(streamer, sm.volume))
	speaker.Unlock()
}

// cue builds a finite streamer for a sound, nil for unknown sounds
func cue(s engine.Sound) beep.Streamer {
	switch s {
	case engine.SoundShot:
		return beep.Take(sampleRate.N(time.Millisecond*120), NewZapGenerator(sampleRate))
	case engine.SoundExplosion:
		return beep.Take(sampleRate.N(time.Millisecond*300), NewBlastGenerator(sampleRate, 1))
	case engine.SoundGameOver:
		var notes []beep.Streamer
		for _, freq := range []float64{440, 349.23, 293.66, 220} {
			sine, err := generators.SineTone(sampleRate, freq)
			if err != nil {
				continue
			}
			notes = append(notes, beep.Take(sampleRate.N(time.Millisecond*180), sine))
		}
		return beep.Seq(notes...)
	}
	return nil
}

func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// ZapGenerator generates a falling laser chirp
type ZapGenerator struct {
	sr  beep.SampleRate
	pos int
}

// NewZapGenerator creates a zap sound generator
func NewZapGenerator(sr beep.SampleRate) *ZapGenerator {
	return &ZapGenerator{sr: sr}
}

func (g *ZapGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Exponential sweep 1800Hz -> ~300Hz
		freq := 300 + 1500*math.Exp(-t*25)
		envelope := math.Exp(-t * 12)
		sample := 0.25 * envelope * math.Sin(2*math.Pi*freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ZapGenerator) Err() error {
	return nil
}

// BlastGenerator generates a noise burst over a low rumble
type BlastGenerator struct {
	sr   beep.SampleRate
	pos  int
	seed int64
}

// NewBlastGenerator creates a blast sound generator
func NewBlastGenerator(sr beep.SampleRate, seed int64) *BlastGenerator {
	return &BlastGenerator{sr: sr, seed: seed}
}

func (g *BlastGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Quick attack, slower decay
		envelope := math.Exp(-t * 8)

		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(g.seed)/float64(0x7fffffff)*2 - 1

		rumble := 0.3 * math.Sin(2*math.Pi*60*t)

		sample := envelope * (0.3*noise + rumble)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BlastGenerator) Err() error {
	return nil
}
