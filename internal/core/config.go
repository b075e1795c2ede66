package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed; 0 means the platform picks one from the clock
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}

// GameState is the status a game reports to the platform after each tick.
type GameState struct {
	Score    int  // Current score
	Best     int  // Best score for this process, including restarts
	Won      bool // A tile reached the target (informational, play continues)
	GameOver bool // No legal moves remain
	Paused   bool // Game is paused or cannot run (window too small)
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
