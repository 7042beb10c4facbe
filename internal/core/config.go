package core

// RuntimeConfig is what the platform tells a game on Reset.
type RuntimeConfig struct {
	ScreenW  int   // Terminal width in cells
	ScreenH  int   // Terminal height in cells
	TickRate int   // Steps per second
	Seed     int64 // Piece sequence seed; 0 lets the platform pick one
}

// DefaultConfig is an 80x24 terminal at 60 steps per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}
}

// Normalized fills unset sizes and tick rate from DefaultConfig.
// The seed is kept as is.
func (c RuntimeConfig) Normalized() RuntimeConfig {
	def := DefaultConfig()
	if c.ScreenW <= 0 {
		c.ScreenW = def.ScreenW
	}
	if c.ScreenH <= 0 {
		c.ScreenH = def.ScreenH
	}
	if c.TickRate <= 0 {
		c.TickRate = def.TickRate
	}
	return c
}

// GameState is the part of a game the platform cares about:
// what to save and whether to keep ticking.
type GameState struct {
	Score    int
	Lines    int // Rows cleared so far
	Level    int
	GameOver bool
	Paused   bool
	Autoplay bool // The pilot is in control
}

// StepResult is returned by every Step.
type StepResult struct {
	State        GameState
	LinesCleared int // Rows removed during this step
}
