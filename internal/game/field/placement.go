package field

import (
	"fmt"
	"iter"
	"math/rand"
	"slices"
)

// Fleet lists the lengths of the ships to place, in placement order.
type Fleet []int

// StandardFleet is one 4-cell ship, two 3s, three 2s and four 1s.
func StandardFleet() Fleet {
	return Fleet{4, 3, 3, 2, 2, 2, 1, 1, 1, 1}
}

func (f Fleet) CellCount() int {
	var n int
	for _, length := range f {
		n += length
	}
	return n
}

// Placement is a ship position: origin cell, length and orientation.
type Placement struct {
	Coord
	Length   int  `json:"length"`
	Vertical bool `json:"vertical"`
}

// Cells yields the ship's body cells, origin first.
func (p Placement) Cells() iter.Seq[Coord] {
	return RayN(p.Coord, p.Vertical, p.Length)
}

// IsSuitable reports whether every body cell of the placement is
// in-bounds and free for placement.
func (b *Board) IsSuitable(p Placement) bool {
	if p.Length < 1 {
		return false
	}
	for c := range p.Cells() {
		if !b.IsFreeForPlacement(c) {
			return false
		}
	}
	return true
}

func (b *Board) markShip(p Placement) {
	for c := range p.Cells() {
		b.put(c, Ship)
	}
}

// markBorder marks cells Border, skipping anything already occupied,
// e.g. a neighboring ship's earlier buffer. Cells must be in bounds.
func (b *Board) markBorder(cells []Coord) {
	for _, c := range cells {
		if b.IsFreeForPlacement(c) {
			b.put(c, Border)
		}
	}
}

// PlaceShip marks the placement's body cells Ship and surrounds them
// with a Border buffer. Returns ErrOutOfBounds if the origin is invalid
// and ErrInvalidPlacement if any body cell is occupied or off the grid;
// the field is left untouched on error.
func (b *Board) PlaceShip(p Placement) error {
	if !b.Contains(p.Coord) {
		return b.outOfBounds(p.Coord)
	}

	if !b.IsSuitable(p) {
		return fmt.Errorf("ship %dx1 at (%d; %d): %w", p.Length, p.X, p.Y, ErrInvalidPlacement)
	}

	b.markShip(p)
	b.markBorder(b.BorderStrip(p.Coord, p.Length, p.Vertical))

	return nil
}

// SuitablePlacements yields every placement of the given length that is
// currently suitable, in row-major coordinate order with vertical before
// horizontal at each coordinate.
func (b *Board) SuitablePlacements(length int) iter.Seq[Placement] {
	return func(yield func(Placement) bool) {
		for c := range b.Coords() {
			for _, vertical := range [2]bool{true, false} {
				p := Placement{Coord: c, Length: length, Vertical: vertical}
				if b.IsSuitable(p) && !yield(p) {
					return
				}
			}
		}
	}
}

// PlaceShipRandom places a ship of the given length on a uniformly
// chosen suitable placement. Returns ErrNoSpaceLeft if none exists.
func (b *Board) PlaceShipRandom(rng *rand.Rand, length int) (Placement, error) {
	candidates := slices.Collect(b.SuitablePlacements(length))
	if len(candidates) == 0 {
		return Placement{}, fmt.Errorf("ship of length %d: %w", length, ErrNoSpaceLeft)
	}

	p := candidates[rng.Intn(len(candidates))]
	b.markShip(p)
	b.markBorder(b.BorderStrip(p.Coord, p.Length, p.Vertical))

	return p, nil
}

// PlaceFleetRandom places each fleet ship in order via PlaceShipRandom.
// There is no backtracking: on ErrNoSpaceLeft the ships placed so far
// stay on the field, and retrying with a fresh board is up to the caller.
func (b *Board) PlaceFleetRandom(rng *rand.Rand, fleet Fleet) error {
	for _, length := range fleet {
		if _, err := b.PlaceShipRandom(rng, length); err != nil {
			return err
		}
	}
	return nil
}
