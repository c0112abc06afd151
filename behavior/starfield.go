package behavior

import (
	"github.com/aquilax/go-perlin"

	"github.com/lixenwraith/orbit/engine"
	"github.com/lixenwraith/orbit/vmath"
)

// TickRange is an inclusive interval of ticks
type TickRange struct {
	Min, Max int
}

// Roll returns a uniform value in the range using the world generator
func (r TickRange) Roll(w *engine.World) int {
	if r.Max <= r.Min {
		return r.Min
	}
	return r.Min + w.Rand.Intn(r.Max-r.Min+1)
}

// StarfieldConfig controls PlaceStars
type StarfieldConfig struct {
	Count      int
	Symbols    []rune
	Phases     []TickRange
	Clustering float64 // 0 = uniform placement, 1 = placement fully gated by noise
	Seed       int64
}

const (
	noiseAlpha   = 2.0
	noiseBeta    = 2.0
	noiseOctaves = int32(3)
	noiseScale   = 12.0 // cells per noise unit
	maxAttempts  = 32
)

// PlaceStars creates Count stars at random cells strictly inside the border
// With clustering, candidate cells are kept with a probability raised by 2-D Perlin
// noise, which groups stars into patches
func PlaceStars(w *engine.World, cfg StarfieldConfig) []*Star {
	if cfg.Count <= 0 || len(cfg.Symbols) == 0 {
		return nil
	}
	rowLo, rowHi := w.Border+1, w.Rows-1-w.Border
	colLo, colHi := w.Border+1, w.Columns-1-w.Border
	if rowHi < rowLo || colHi < colLo {
		return nil
	}

	clustering := vmath.Median(0, cfg.Clustering, 1)
	var noise *perlin.Perlin
	if clustering > 0 {
		noise = perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctaves, cfg.Seed)
	}

	stars := make([]*Star, 0, cfg.Count)
	for i := 0; i < cfg.Count; i++ {
		var row, col int
		for attempt := 0; attempt < maxAttempts; attempt++ {
			row = rowLo + w.Rand.Intn(rowHi-rowLo+1)
			col = colLo + w.Rand.Intn(colHi-colLo+1)
			if noise == nil {
				break
			}
			density := (noise.Noise2D(float64(col)/noiseScale, float64(row)/noiseScale) + 1) / 2
			keep := (1 - clustering) + clustering*density
			if w.Rand.Float64() < keep {
				break
			}
		}

		phases := make([]Phase, len(cfg.Phases))
		for j, r := range cfg.Phases {
			phases[j] = Phase{Ticks: r.Roll(w), Brightness: brightnessCycle[j%len(brightnessCycle)]}
		}
		symbol := cfg.Symbols[w.Rand.Intn(len(cfg.Symbols))]
		stars = append(stars, NewStar(row, col, symbol, phases))
	}
	return stars
}
