package engine

import "sync/atomic"

// GameState holds the process-wide flags shared between behaviors
// Fields are atomics so the bootstrap goroutine can read them while the tick loop runs
type GameState struct {
	// ===== WRITER: year counter =====
	elapsed   atomic.Int64 // years since StartYear, monotonic
	startYear int

	// ===== WRITER: first caller of TriggerGameOver =====
	gameOver atomic.Bool // one-way false -> true
}

// NewGameState creates state starting at the given calendar year
func NewGameState(startYear int) *GameState {
	return &GameState{startYear: startYear}
}

// ElapsedYears returns whole years since the start of the session
func (s *GameState) ElapsedYears() int64 { return s.elapsed.Load() }

// Year returns the current in-game calendar year
func (s *GameState) Year() int { return s.startYear + int(s.elapsed.Load()) }

// AdvanceYear increments the elapsed year counter and returns the new calendar year
func (s *GameState) AdvanceYear() int {
	return s.startYear + int(s.elapsed.Add(1))
}

// GameOver reports whether the game has ended
func (s *GameState) GameOver() bool { return s.gameOver.Load() }

// TriggerGameOver flips the game-over flag
// Returns true only for the call that performed the transition, so exactly one
// caller spawns the banner no matter how many paths detect the end
func (s *GameState) TriggerGameOver() bool {
	return s.gameOver.CompareAndSwap(false, true)
}
