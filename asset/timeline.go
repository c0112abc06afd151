package asset

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DelayStep sets the garbage launch delay from a year onward
type DelayStep struct {
	From  int `yaml:"from"`
	Ticks int `yaml:"ticks"`
}

// Timeline maps calendar years to phrases and difficulty
type Timeline struct {
	Phrases       map[int]string `yaml:"phrases"`
	GarbageDelay  []DelayStep    `yaml:"garbage_delay"`
	PlasmaGunYear int            `yaml:"plasma_gun_year"`
}

// DefaultTimeline returns the embedded timeline
func DefaultTimeline() (*Timeline, error) {
	data, err := embedded.ReadFile("timeline.yaml")
	if err != nil {
		return nil, fmt.Errorf("embedded timeline: %w", err)
	}
	return ParseTimeline(data)
}

// LoadTimeline reads a timeline file from disk
func LoadTimeline(path string) (*Timeline, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read timeline %s: %w", path, err)
	}
	return ParseTimeline(data)
}

// ParseTimeline decodes and validates timeline YAML
func ParseTimeline(data []byte) (*Timeline, error) {
	var t Timeline
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parse timeline: %w", err)
	}
	for i, step := range t.GarbageDelay {
		if step.Ticks <= 0 {
			return nil, fmt.Errorf("timeline: garbage_delay[%d]: ticks must be positive", i)
		}
		if i > 0 && step.From <= t.GarbageDelay[i-1].From {
			return nil, fmt.Errorf("timeline: garbage_delay[%d]: years must increase", i)
		}
	}
	return &t, nil
}

// Phrase returns the milestone text for a year
func (t *Timeline) Phrase(year int) (string, bool) {
	p, ok := t.Phrases[year]
	return p, ok
}

// GarbageDelayTicks returns the launch delay in effect for year
// ok is false before the first step, meaning no garbage yet
func (t *Timeline) GarbageDelayTicks(year int) (ticks int, ok bool) {
	for _, step := range t.GarbageDelay {
		if year < step.From {
			break
		}
		ticks, ok = step.Ticks, true
	}
	return ticks, ok
}
