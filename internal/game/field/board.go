package field

import (
	"fmt"
	"iter"
	"strings"
)

// Board is a fixed-size rectangular grid of cells. It owns all cell state
// exclusively; every public coordinate-taking operation validates bounds
// before mutating anything.
//
// Board is not safe for concurrent use. A turn-based game has no
// overlapping writers; integrators must serialize access per board.
type Board struct {
	w, h  int
	cells []Cell
}

func New(w, h int) (*Board, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("non-positive field size: [%d %d]", w, h)
	}

	return &Board{
		w:     w,
		h:     h,
		cells: make([]Cell, w*h),
	}, nil
}

func (b *Board) Width() int  { return b.w }
func (b *Board) Height() int { return b.h }

func (b *Board) Contains(c Coord) bool {
	return c.X >= 0 && c.X < b.w && c.Y >= 0 && c.Y < b.h
}

// at and put skip bounds checking; callers must have validated or
// bounds-filtered the coordinate already.
func (b *Board) at(c Coord) Cell {
	return b.cells[c.Y*b.w+c.X]
}

func (b *Board) put(c Coord, cell Cell) {
	b.cells[c.Y*b.w+c.X] = cell
}

func (b *Board) Get(c Coord) (Cell, error) {
	if !b.Contains(c) {
		return Empty, b.outOfBounds(c)
	}
	return b.at(c), nil
}

func (b *Board) Set(c Coord, cell Cell) error {
	if !b.Contains(c) {
		return b.outOfBounds(c)
	}
	b.put(c, cell)
	return nil
}

// IsShip reports whether the cell currently belongs to a ship, damaged
// or not. Out-of-bounds cells are not ships.
func (b *Board) IsShip(c Coord) bool {
	if !b.Contains(c) {
		return false
	}
	cell := b.at(c)
	return cell == Ship || cell == Hit
}

// IsFreeForPlacement reports whether a new ship or its border may still
// occupy the cell. ProbablyShip only ever appears on tracking boards and
// counts as free.
func (b *Board) IsFreeForPlacement(c Coord) bool {
	if !b.Contains(c) {
		return false
	}
	cell := b.at(c)
	return cell == Empty || cell == ProbablyShip
}

// HasIntactShip reports whether any undamaged ship segment remains.
func (b *Board) HasIntactShip() bool {
	for _, cell := range b.cells {
		if cell == Ship {
			return true
		}
	}
	return false
}

// Coords yields every coordinate in row-major order. The sequence is
// finite and restartable.
func (b *Board) Coords() iter.Seq[Coord] {
	return func(yield func(Coord) bool) {
		for y := 0; y < b.h; y++ {
			for x := 0; x < b.w; x++ {
				if !yield(Coord{x, y}) {
					return
				}
			}
		}
	}
}

func (b *Board) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Field %dx%d", b.w, b.h)
	for y := 0; y < b.h; y++ {
		sb.WriteString("\n\t")
		for x := 0; x < b.w; x++ {
			sb.WriteRune(b.at(Coord{x, y}).rune())
		}
	}
	sb.WriteByte('\n')
	return sb.String()
}
