// Package core holds the platform-neutral types shared by the terminal UI
// screens: semantic input actions and the runtime configuration.
package core

import "time"

// RuntimeConfig contains configuration passed to screens at initialization.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // RNG seed for round selection
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    0, // 0 means use current time
	}
}

// EffectiveSeed returns Seed, or a time-based seed when Seed is 0.
func (c RuntimeConfig) EffectiveSeed() int64 {
	if c.Seed == 0 {
		return time.Now().UnixNano()
	}
	return c.Seed
}
