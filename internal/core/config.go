package core

// RuntimeConfig is what the shell hands a game on Reset: the terminal area
// it may draw on and the simulation clock and seed.
type RuntimeConfig struct {
	ScreenW  int   // Terminal columns
	ScreenH  int   // Terminal rows
	TickRate int   // Simulation ticks per second
	Seed     int64 // Spawn RNG seed; 0 lets the shell pick one
}

// DefaultConfig returns an 80x24 terminal ticking at 60 Hz.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// WithDefaults returns c with every non-positive size or rate taken from
// DefaultConfig. Seed is left as is.
func (c RuntimeConfig) WithDefaults() RuntimeConfig {
	d := DefaultConfig()
	if c.ScreenW <= 0 {
		c.ScreenW = d.ScreenW
	}
	if c.ScreenH <= 0 {
		c.ScreenH = d.ScreenH
	}
	if c.TickRate <= 0 {
		c.TickRate = d.TickRate
	}
	return c
}

// GameState is the status a game reports to the shell after every step.
type GameState struct {
	Score    int
	GameOver bool
	Paused   bool
	Tick     int // Simulation ticks consumed so far
}

// StepResult is returned by Game.Step.
type StepResult struct {
	State GameState
}
