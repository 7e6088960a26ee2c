package core

import "fmt"

// Tick rate bounds. Above MaxTickRate a tick would be shorter than the
// millisecond resolution of the game clock.
const (
	DefaultTickRate = 50
	MaxTickRate     = 1000
)

// RuntimeConfig is handed to a game when it starts.
// It describes the terminal the game renders into and how fast it is ticked.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed; 0 lets the platform pick one from the clock
}

// DefaultConfig returns the runtime defaults. 50 ticks per second matches the
// 20 ms frame the game is tuned for.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: DefaultTickRate,
	}
}

// Rate returns the tick rate, falling back to the default when unset and
// capping it at MaxTickRate.
func (c RuntimeConfig) Rate() int {
	switch {
	case c.TickRate <= 0:
		return DefaultTickRate
	case c.TickRate > MaxTickRate:
		return MaxTickRate
	}
	return c.TickRate
}

// MillisAt returns the game time in milliseconds after the given number of
// ticks. Multiplying first keeps rates that do not divide 1000 exact.
func (c RuntimeConfig) MillisAt(tick int64) int64 {
	return tick * 1000 / int64(c.Rate())
}

// ValidateTickRate rejects rates the game clock cannot represent.
func ValidateTickRate(rate int) error {
	if rate < 1 || rate > MaxTickRate {
		return fmt.Errorf("tick rate must be within [1, %d], got %d", MaxTickRate, rate)
	}
	return nil
}

// GameState is the summary a game reports to the platform after each step.
type GameState struct {
	Score         int   // Current score
	ElapsedMillis int64 // Run time in milliseconds
	GameOver      bool  // Whether the current run has ended
	InMenu        bool  // Whether the game is showing its start menu
}

// StepResult is returned by Game.Step after every tick.
type StepResult struct {
	State GameState
}
