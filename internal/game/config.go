package game

import (
	"fmt"
	"time"
)

const (
	DefaultCols  = 9
	DefaultRows  = 20
	DefaultDelay = 150 * time.Millisecond
	DefaultUnit  = 28

	// a piece that locks with its anchor above this row wipes the board
	resetRows = 3
	minSize   = 4
)

// Policy decides what happens to moves that push a piece off the board.
type Policy string

const (
	// PolicyClamp rejects translations and rotations that would leave the board.
	PolicyClamp Policy = "clamp"
	// PolicyFaithful applies every move unchecked; off-board cells are never
	// occupied and are dropped when the piece locks.
	PolicyFaithful Policy = "faithful"
)

// Config holds the tunables of a game.
type Config struct {
	Cols        int
	Rows        int
	Delay       time.Duration
	Unit        int
	Policy      Policy
	ClearTopRow bool
	// Seed for shape selection, 0 picks one from the clock
	Seed int64
}

// DefaultConfig returns the classic 9x20 board at 150ms per tick.
func DefaultConfig() Config {
	return Config{
		Cols:   DefaultCols,
		Rows:   DefaultRows,
		Delay:  DefaultDelay,
		Unit:   DefaultUnit,
		Policy: PolicyClamp,
	}
}

func (c Config) Validate() error {
	if c.Cols < minSize {
		return fmt.Errorf("cols must be at least %d, got %d", minSize, c.Cols)
	}
	if c.Rows < minSize {
		return fmt.Errorf("rows must be at least %d, got %d", minSize, c.Rows)
	}
	if c.Delay <= 0 {
		return fmt.Errorf("delay must be positive, got %s", c.Delay)
	}
	if c.Unit <= 0 {
		return fmt.Errorf("unit must be positive, got %d", c.Unit)
	}
	switch c.Policy {
	case PolicyClamp, PolicyFaithful:
	default:
		return fmt.Errorf("policy must be either '%s' or '%s', got '%s'", PolicyClamp, PolicyFaithful, c.Policy)
	}
	return nil
}

// Width and Height are the drawing surface size in pixels.
func (c Config) Width() int  { return c.Cols * c.Unit }
func (c Config) Height() int { return c.Rows * c.Unit }
