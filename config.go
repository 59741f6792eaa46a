package pooled

import "go.uber.org/zap"

const (
	// MinimumCapacity is the smallest buffer a list ever rents.
	MinimumCapacity = 32

	// DefaultMinClassSize is the smallest size class of a pool (16 elements).
	DefaultMinClassSize = 1 << 4

	// DefaultMaxClassSize is the largest size class of a pool (1Mi elements).
	// Larger rentals are allocated exactly and dropped on return.
	DefaultMaxClassSize = 1 << 20

	// DefaultMaxRetained is the number of idle buffers a single size class keeps.
	DefaultMaxRetained = 32
)

// Config tunes a Pool. The zero value is valid; unset or invalid fields
// fall back to their defaults.
type Config struct {
	// MinClassSize is the smallest size class, rounded up to a power of two.
	MinClassSize int
	// MaxClassSize is the largest size class, rounded up to a power of two.
	MaxClassSize int
	// MaxRetained caps the idle buffers kept per size class.
	MaxRetained int
	// ClearOnReturn zeroes every returned buffer. Buffers of element types
	// that contain pointers are always zeroed so the pool does not pin garbage.
	ClearOnReturn bool
	// Logger receives pool diagnostics. Nil means the package Logger().
	Logger *zap.Logger
}

// DefaultConfig returns the configuration used by Shared pools.
func DefaultConfig() Config {
	return Config{
		MinClassSize: DefaultMinClassSize,
		MaxClassSize: DefaultMaxClassSize,
		MaxRetained:  DefaultMaxRetained,
	}
}

// normalize replaces invalid fields with defaults and rounds class bounds
// up to powers of two.
func (c Config) normalize() Config {
	if c.MinClassSize <= 0 {
		c.MinClassSize = DefaultMinClassSize
	}
	if c.MaxClassSize <= 0 {
		c.MaxClassSize = DefaultMaxClassSize
	}
	c.MinClassSize = 1 << classShift(c.MinClassSize)
	c.MaxClassSize = 1 << classShift(c.MaxClassSize)
	if c.MaxClassSize < c.MinClassSize {
		c.MaxClassSize = c.MinClassSize
	}
	if c.MaxRetained <= 0 {
		c.MaxRetained = DefaultMaxRetained
	}
	if c.Logger == nil {
		c.Logger = Logger()
	}
	return c
}
