package audio

import (
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/lixenwraith/orbit/engine"
)

// AudioService wraps the configured backend as a Service
// Handles graceful degradation when no audio device is available
type AudioService struct {
	config   Config
	beeper   Beeper
	log      *zap.Logger
	synth    *SoundManager
	player   engine.SoundPlayer
	disabled atomic.Bool
}

// NewService creates an audio service, beeper backs bell mode
func NewService(beeper Beeper, log *zap.Logger) *AudioService {
	if log == nil {
		log = zap.NewNop()
	}
	return &AudioService{config: DefaultConfig(), beeper: beeper, log: log}
}

// Name implements Service
func (s *AudioService) Name() string {
	return "audio"
}

// Dependencies implements Service
func (s *AudioService) Dependencies() []string {
	return []string{"terminal"}
}

// Init implements Service
// args[0]: Config, defaults to DefaultConfig
func (s *AudioService) Init(args ...any) error {
	if len(args) > 0 {
		if cfg, ok := args[0].(Config); ok {
			s.config = cfg
		}
	}
	return nil
}

// Start implements Service
// A synth that cannot open the speaker falls back to silence (no error returned)
func (s *AudioService) Start() error {
	switch s.config.Mode {
	case ModeOff:
		s.disabled.Store(true)
		s.player = Silent{}
	case ModeSynth:
		sm := NewSoundManager(s.config.Volume)
		if err := sm.Initialize(); err != nil {
			s.log.Warn("audio unavailable, continuing silent", zap.Error(err))
			s.disabled.Store(true)
			s.player = Silent{}
			return nil
		}
		s.synth = sm
		s.player = sm
	default:
		s.player = NewBell(s.beeper)
	}
	s.log.Info("audio started", zap.String("mode", string(s.config.Mode)), zap.Bool("disabled", s.disabled.Load()))
	return nil
}

// Stop implements Service
func (s *AudioService) Stop() error {
	if s.synth != nil {
		s.synth.Cleanup()
		s.synth = nil
	}
	return nil
}

// IsDisabled returns true if audio is unavailable or off
func (s *AudioService) IsDisabled() bool {
	return s.disabled.Load()
}

// Player returns the cue player, silent before Start
func (s *AudioService) Player() engine.SoundPlayer {
	if s.player == nil {
		return Silent{}
	}
	return s.player
}
