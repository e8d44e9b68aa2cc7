package core

// RuntimeConfig contains configuration passed to the simulation at
// initialization. The screen dimensions double as the world bounds for
// wrap-around, and the seed makes gameplay deterministic.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is the platform-facing summary of a game.
// Returned by the simulation to communicate status to the host loop.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended (destroyed or field cleared)
	Paused   bool // Whether the game is paused
}
