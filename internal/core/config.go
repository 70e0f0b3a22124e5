package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to size its camera and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW    int     // Screen width in cells (or pixels for the window host)
	ScreenH    int     // Screen height in cells (or pixels for the window host)
	CellAspect float64 // Height/width ratio of one cell; 2 for terminals, 1 for pixels
	TickRate   int     // Frames per second (default 60)
	Seed       int64   // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:    80,
		ScreenH:    24,
		CellAspect: 2,
		TickRate:   60,
		Seed:       0, // 0 means use current time in platform layer
	}
}

// Aspect returns the width/height ratio of the drawing surface, corrected for
// non-square cells.
func (c RuntimeConfig) Aspect() float64 {
	if c.ScreenW <= 0 || c.ScreenH <= 0 {
		return 1
	}
	cell := c.CellAspect
	if cell <= 0 {
		cell = 1
	}
	return float64(c.ScreenW) / (float64(c.ScreenH) * cell)
}

// GameState represents the current state of the game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score  int    // Current score
	Rounds int    // Game-over transitions so far
	Frame  uint64 // Completed frames
	Paused bool   // Whether the game is paused
}

// StepResult is returned by Game.Step() after each frame.
// Contains the updated game state and the events that occurred.
type StepResult struct {
	State     GameState
	Collected bool // A ring was collected this frame
	GameOver  bool // The game-over transition ran this frame
}
