package field

import "encoding/json"

// Signal is the outcome kind of a single shot. Win refines Killed: it is
// reported instead of Killed when the destroyed ship was the last one,
// and carries the same cell set.
type Signal int

const (
	Miss Signal = iota
	ShipHit
	Killed
	Win
)

func (s Signal) String() string {
	switch s {
	case Miss:
		return "miss"
	case ShipHit:
		return "hit"
	case Killed:
		return "kill"
	case Win:
		return "win"
	default:
		panic("invalid shot signal")
	}
}

func (s Signal) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// ShotResult describes the outcome of one shot. Killed and Win carry the
// destroyed ship's full cell set; Miss and ShipHit carry the shot cell.
type ShotResult struct {
	Signal Signal  `json:"signal"`
	Cells  []Coord `json:"cells"`
}

// shipRun collects the maximal contiguous straight run of ship cells
// through origin by walking outward in all four directions.
func (b *Board) shipRun(origin Coord) []Coord {
	run := []Coord{origin}
	for _, vertical := range [2]bool{false, true} {
		for _, step := range [2]int{-1, 1} {
			for c := range Ray(origin.shifted(vertical, step), vertical, step) {
				if !b.IsShip(c) {
					break
				}
				run = append(run, c)
			}
		}
	}
	return run
}

// ResolveShot applies an incoming shot to the field and reports the
// outcome. A shot at a ship cell marks it Hit and, when it was the run's
// last undamaged segment, yields Killed with the whole run — or Win when
// no intact ship remains anywhere on the field.
func (b *Board) ResolveShot(c Coord) (ShotResult, error) {
	if !b.Contains(c) {
		return ShotResult{}, b.outOfBounds(c)
	}

	if !b.IsShip(c) {
		b.put(c, Missed)
		return ShotResult{Signal: Miss, Cells: []Coord{c}}, nil
	}

	b.put(c, Hit)

	run := b.shipRun(c)
	for _, cell := range run {
		if b.at(cell) != Hit {
			return ShotResult{Signal: ShipHit, Cells: []Coord{c}}, nil
		}
	}

	signal := Killed
	if !b.HasIntactShip() {
		signal = Win
	}

	return ShotResult{Signal: signal, Cells: run}, nil
}

// ShipVector reconstructs a ship placement from its cell set: the origin
// is the minimum corner, the length spans the cells, and the orientation
// is vertical iff the y span carries the length. cells must not be empty.
func ShipVector(cells []Coord) Placement {
	lo, hi := cells[0], cells[0]
	for _, c := range cells[1:] {
		lo.X = min(lo.X, c.X)
		lo.Y = min(lo.Y, c.Y)
		hi.X = max(hi.X, c.X)
		hi.Y = max(hi.Y, c.Y)
	}

	span := max(hi.X-lo.X, hi.Y-lo.Y)

	return Placement{
		Coord:    lo,
		Length:   span + 1,
		Vertical: lo.Y+span == hi.Y,
	}
}

// ApplyShotResult mirrors a shot outcome onto a tracking field: the
// result's cells are marked Hit or Missed, a killed ship additionally
// gets its reconstructed vector's full border, and a plain hit gets its
// diagonal corners marked. Every coordinate is validated before any
// mutation.
func (b *Board) ApplyShotResult(res ShotResult) error {
	for _, c := range res.Cells {
		if !b.Contains(c) {
			return b.outOfBounds(c)
		}
	}

	if len(res.Cells) == 0 {
		return nil
	}

	mark := Missed
	if res.Signal != Miss {
		mark = Hit
	}
	for _, c := range res.Cells {
		b.put(c, mark)
	}

	switch res.Signal {
	case Killed, Win:
		v := ShipVector(res.Cells)
		b.markBorder(b.BorderStrip(v.Coord, v.Length, v.Vertical))
	case ShipHit:
		b.markBorder(b.Corners(res.Cells[0]))
	}

	return nil
}
