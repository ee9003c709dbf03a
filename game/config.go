package game

import "time"

// Config holds the demo configuration.
type Config struct {
	// GridSize is the number of cells along each side of the square grid
	GridSize int

	// WallFrequency is the approximate fraction of cells generated as walls
	WallFrequency float64

	// SurfaceSize is the side length of the square render surface in pixels
	SurfaceSize int

	// MoveDuration is how long the player takes to walk a committed path.
	// The movement lock is held for the same duration.
	MoveDuration time.Duration

	// Seed seeds grid generation; 0 means derive from the current time
	Seed int64

	// Diagonal enables 8-connected movement instead of 4-connected
	Diagonal bool
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		GridSize:      20,
		WallFrequency: 0.1,
		SurfaceSize:   600,
		MoveDuration:  500 * time.Millisecond,
	}
}

// Option patches a single configuration key. Regenerate applies the supplied
// options in order and leaves every key no option names untouched.
type Option func(*Config)

// WithGridSize sets the number of cells per grid side.
func WithGridSize(n int) Option {
	return func(c *Config) { c.GridSize = n }
}

// WithWallFrequency sets the fraction of cells generated as walls.
func WithWallFrequency(f float64) Option {
	return func(c *Config) { c.WallFrequency = f }
}
