package behavior

import (
	"github.com/lixenwraith/orbit/asset"
	"github.com/lixenwraith/orbit/engine"
)

// GameOver draws the banner centered on the playfield every tick, forever
// Spawned only by the caller that wins GameState.TriggerGameOver
type GameOver struct {
	banner string
}

// NewGameOver creates the banner behavior
func NewGameOver(banner string) *GameOver {
	if banner == "" {
		banner = "GAME OVER"
	}
	return &GameOver{banner: banner}
}

func (g *GameOver) Name() string { return "game_over" }

func (g *GameOver) Step(w *engine.World) engine.Status {
	row, col := g.Origin(w)
	w.Canvas.Draw(row, col, g.banner, false)
	return engine.Running
}

// Origin returns the top-left cell that centers the banner on the playfield
func (g *GameOver) Origin(w *engine.World) (row, column int) {
	pf := w.Playfield()
	rows, cols := asset.FrameSize(g.banner)
	return pf.Row + (pf.Rows-rows)/2, pf.Column + (pf.Columns-cols)/2
}
