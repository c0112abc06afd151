// Package config loads orbit settings from TOML
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Loop       LoopConfig       `toml:"loop"`
	Playfield  PlayfieldConfig  `toml:"playfield"`
	Stars      StarsConfig      `toml:"stars"`
	Ship       ShipConfig       `toml:"ship"`
	Physics    PhysicsConfig    `toml:"physics"`
	Projectile ProjectileConfig `toml:"projectile"`
	Garbage    GarbageConfig    `toml:"garbage"`
	Years      YearsConfig      `toml:"years"`
	Audio      AudioConfig      `toml:"audio"`
	Logging    LoggingConfig    `toml:"logging"`
	Debug      DebugConfig      `toml:"debug"`
	Assets     AssetsConfig     `toml:"assets"`
}

type LoopConfig struct {
	Tick time.Duration `toml:"tick"`
}

type PlayfieldConfig struct {
	Border int `toml:"border"`
}

// Range is an inclusive tick interval
type Range struct {
	Min int `toml:"min"`
	Max int `toml:"max"`
}

type StarsConfig struct {
	Count      int     `toml:"count"`
	Symbols    string  `toml:"symbols"`
	Phases     []Range `toml:"phases"`     // dim, normal, bold, normal hold times
	Clustering float64 `toml:"clustering"` // 0 = uniform, 1 = noise-gated
}

type ShipConfig struct {
	FrameHoldTicks int     `toml:"frame_hold_ticks"`
	SpeedScale     float64 `toml:"speed_scale"`     // cells per unit of velocity per tick
	GunUnlockYear  int     `toml:"gun_unlock_year"` // 0 = armed from the start
}

type PhysicsConfig struct {
	Acceleration float64 `toml:"acceleration"`
	Limit        float64 `toml:"limit"`
	Fading       float64 `toml:"fading"`
	Epsilon      float64 `toml:"epsilon"`
}

type ProjectileConfig struct {
	RowSpeed    float64 `toml:"row_speed"`
	ColumnSpeed float64 `toml:"column_speed"`
}

type GarbageConfig struct {
	Speed    float64 `toml:"speed"`
	MinDelay int     `toml:"min_delay"`
	MaxDelay int     `toml:"max_delay"`
	Policy   string  `toml:"policy"` // "random" or "timeline"
}

type YearsConfig struct {
	Start        int `toml:"start"`
	TicksPerYear int `toml:"ticks_per_year"`
}

type AudioConfig struct {
	Mode   string  `toml:"mode"` // "bell", "synth" or "off"
	Volume float64 `toml:"volume"`
}

type LoggingConfig struct {
	File   string `toml:"file"` // empty = discard
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

type DebugConfig struct {
	ObstacleFrames bool `toml:"obstacle_frames"`
	StatusLine     bool `toml:"status_line"`
}

type AssetsConfig struct {
	Dir      string `toml:"dir"`      // empty = embedded frames
	Timeline string `toml:"timeline"` // empty = embedded timeline
}

// Garbage spawn policies
const (
	PolicyRandom   = "random"
	PolicyTimeline = "timeline"
)

// Load reads path over the defaults and validates the result
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Default returns the built-in settings
func Default() *Config {
	return &Config{
		Loop: LoopConfig{
			Tick: 100 * time.Millisecond,
		},
		Playfield: PlayfieldConfig{
			Border: 1,
		},
		Stars: StarsConfig{
			Count:   100,
			Symbols: "+*.:°",
			Phases: []Range{
				{Min: 5, Max: 25},
				{Min: 2, Max: 8},
				{Min: 3, Max: 10},
				{Min: 2, Max: 8},
			},
		},
		Ship: ShipConfig{
			FrameHoldTicks: 2,
			SpeedScale:     1,
		},
		Physics: PhysicsConfig{
			Acceleration: 0.75,
			Limit:        2,
			Fading:       0.8,
			Epsilon:      0.1,
		},
		Projectile: ProjectileConfig{
			RowSpeed: -0.3,
		},
		Garbage: GarbageConfig{
			Speed:    0.5,
			MinDelay: 5,
			MaxDelay: 35,
			Policy:   PolicyRandom,
		},
		Years: YearsConfig{
			Start:        1957,
			TicksPerYear: 15,
		},
		Audio: AudioConfig{
			Mode:   "bell",
			Volume: 1,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Validate rejects settings the simulation cannot run with
func (c *Config) Validate() error {
	var errs []error
	if c.Loop.Tick <= 0 {
		errs = append(errs, errors.New("loop.tick must be positive"))
	}
	if c.Playfield.Border < 0 {
		errs = append(errs, errors.New("playfield.border must not be negative"))
	}
	if c.Stars.Count < 0 {
		errs = append(errs, errors.New("stars.count must not be negative"))
	}
	if c.Stars.Count > 0 && c.Stars.Symbols == "" {
		errs = append(errs, errors.New("stars.symbols must not be empty"))
	}
	if len(c.Stars.Phases) == 0 {
		errs = append(errs, errors.New("stars.phases must not be empty"))
	}
	for i, p := range c.Stars.Phases {
		if p.Min < 1 || p.Max < p.Min {
			errs = append(errs, fmt.Errorf("stars.phases[%d]: need 1 <= min <= max", i))
		}
	}
	if c.Stars.Clustering < 0 || c.Stars.Clustering > 1 {
		errs = append(errs, errors.New("stars.clustering must be within [0,1]"))
	}
	if c.Ship.FrameHoldTicks < 1 {
		errs = append(errs, errors.New("ship.frame_hold_ticks must be at least 1"))
	}
	if c.Physics.Limit <= 0 {
		errs = append(errs, errors.New("physics.limit must be positive"))
	}
	// Zero input must bring the craft to rest in a bounded number of ticks
	if c.Physics.Fading < 0 || c.Physics.Fading >= 1 {
		errs = append(errs, errors.New("physics.fading must be within [0,1)"))
	}
	if c.Physics.Epsilon <= 0 {
		errs = append(errs, errors.New("physics.epsilon must be positive"))
	}
	if c.Projectile.RowSpeed == 0 && c.Projectile.ColumnSpeed == 0 {
		errs = append(errs, errors.New("projectile speed must not be zero"))
	}
	if c.Garbage.Speed <= 0 {
		errs = append(errs, errors.New("garbage.speed must be positive"))
	}
	if c.Garbage.MinDelay < 1 || c.Garbage.MaxDelay < c.Garbage.MinDelay {
		errs = append(errs, errors.New("garbage delay: need 1 <= min_delay <= max_delay"))
	}
	if c.Garbage.Policy != PolicyRandom && c.Garbage.Policy != PolicyTimeline {
		errs = append(errs, fmt.Errorf("garbage.policy: unknown policy %q", c.Garbage.Policy))
	}
	if c.Years.TicksPerYear < 1 {
		errs = append(errs, errors.New("years.ticks_per_year must be at least 1"))
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		errs = append(errs, errors.New("audio.volume must be within [0,1]"))
	}
	return errors.Join(errs...)
}
