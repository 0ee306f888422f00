package field

import "iter"

// Coord addresses a single cell. X grows rightwards, Y grows downwards.
type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (c Coord) shifted(vertical bool, step int) Coord {
	if vertical {
		c.Y += step
	} else {
		c.X += step
	}
	return c
}

// Ray walks from `from` along the x axis (or the y axis if vertical),
// moving by `step` cells at a time. The sequence is unbounded; the caller
// is expected to break out of it.
func Ray(from Coord, vertical bool, step int) iter.Seq[Coord] {
	return func(yield func(Coord) bool) {
		for c := from; ; c = c.shifted(vertical, step) {
			if !yield(c) {
				return
			}
		}
	}
}

// RayN is Ray bounded to exactly `length` cells.
func RayN(from Coord, vertical bool, length int) iter.Seq[Coord] {
	return func(yield func(Coord) bool) {
		c := from
		for i := 0; i < length; i++ {
			if !yield(c) {
				return
			}
			c = c.shifted(vertical, 1)
		}
	}
}

var (
	cornerDeltas = [4]Coord{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	ribDeltas    = [4]Coord{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
)

func (b *Board) neighbors(c Coord, deltas [4]Coord) []Coord {
	out := make([]Coord, 0, 4)
	for _, d := range deltas {
		n := Coord{c.X + d.X, c.Y + d.Y}
		if b.Contains(n) {
			out = append(out, n)
		}
	}
	return out
}

// Corners returns the in-bounds diagonal neighbors of a cell.
func (b *Board) Corners(c Coord) []Coord {
	return b.neighbors(c, cornerDeltas)
}

// Ribs returns the in-bounds orthogonal neighbors of a cell.
func (b *Board) Ribs(c Coord) []Coord {
	return b.neighbors(c, ribDeltas)
}

// BorderStrip returns the one-cell-thick perimeter around a ship of the
// given length placed at origin: two end caps of length+2 running
// perpendicular through the corners, plus two side rails of the ship's
// length. Out-of-bounds cells are filtered out.
func (b *Board) BorderStrip(origin Coord, length int, vertical bool) []Coord {
	vLen, hLen := 1, length
	if vertical {
		vLen, hLen = length, 1
	}

	var out []Coord
	collect := func(from Coord, vert bool, n int) {
		for c := range RayN(from, vert, n) {
			if b.Contains(c) {
				out = append(out, c)
			}
		}
	}

	collect(Coord{origin.X - 1, origin.Y - 1}, true, vLen+2)
	collect(Coord{origin.X + hLen, origin.Y - 1}, true, vLen+2)
	collect(Coord{origin.X, origin.Y - 1}, false, hLen)
	collect(Coord{origin.X, origin.Y + vLen}, false, hLen)

	return out
}
