package core

// RuntimeConfig describes the host surface a game is rendered into.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Frames per second driving the controller (default 30)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
	}
}

// GameState is the status a game reports to the platform after each step.
type GameState struct {
	Score        int  // Diamonds collected
	DiamondsLeft int  // Diamonds still on the grid
	Cleared      bool // No diamonds remain
	Paused       bool
}
