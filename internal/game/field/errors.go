package field

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfBounds is returned when a coordinate lies outside the field.
	// No operation mutates the field before this check passes.
	ErrOutOfBounds = errors.New("coordinate out of bounds")

	// ErrInvalidPlacement is returned when a ship would overlap an
	// occupied or bordered cell, or run off the grid.
	ErrInvalidPlacement = errors.New("invalid ship placement")

	// ErrNoSpaceLeft is returned when no legal placement exists for the
	// requested ship length.
	ErrNoSpaceLeft = errors.New("no space left for ship")

	// ErrNoTargets is returned when no unresolved cell remains to shoot at.
	ErrNoTargets = errors.New("no targets left")
)

func (b *Board) outOfBounds(c Coord) error {
	return fmt.Errorf("cell (%d; %d) for field %dx%d: %w", c.X, c.Y, b.w, b.h, ErrOutOfBounds)
}
