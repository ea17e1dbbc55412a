package tetris

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every Config validation failure.
var ErrInvalidConfig = errors.New("tetris: invalid config")

const (
	DefaultWidth  = 10
	DefaultHeight = 16
	DefaultSpawnX = 4
)

// Randomizer picks shapes. *rand.Rand from math/rand/v2 satisfies it.
type Randomizer interface {
	IntN(n int) int
}

// Config describes a game session.
type Config struct {
	Width  int
	Height int
	// SpawnX is the column of a new piece's bounding-box origin.
	SpawnX int
	// Seed makes the spawn sequence reproducible. Zero picks a random seed.
	Seed uint64
	// Rand overrides the shape source; Seed is ignored when set.
	Rand Randomizer
}

// DefaultConfig returns the classic 10×16 board.
func DefaultConfig() Config {
	return Config{
		Width:  DefaultWidth,
		Height: DefaultHeight,
		SpawnX: DefaultSpawnX,
	}
}

// Validate checks that every piece fits the board and that there is room
// below the spawn row to detect game over.
func (c Config) Validate() error {
	if c.Width < MaxPieceSize {
		return fmt.Errorf("%w: width %d is below %d", ErrInvalidConfig, c.Width, MaxPieceSize)
	}
	if c.Height < MaxPieceSize+1 {
		return fmt.Errorf("%w: height %d is below %d", ErrInvalidConfig, c.Height, MaxPieceSize+1)
	}
	if c.SpawnX < 0 || c.SpawnX+MaxPieceSize > c.Width {
		return fmt.Errorf("%w: spawn column %d does not fit a %d-wide board", ErrInvalidConfig, c.SpawnX, c.Width)
	}
	return nil
}
