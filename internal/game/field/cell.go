package field

// Cell is the state of a single grid position. Every position holds
// exactly one state at any time.
type Cell int

const (
	Empty Cell = iota
	Border
	Ship
	Hit
	Missed
	ProbablyShip
)

func (c Cell) String() string {
	switch c {
	case Empty:
		return "empty"
	case Border:
		return "border"
	case Ship:
		return "ship"
	case Hit:
		return "hit"
	case Missed:
		return "missed"
	case ProbablyShip:
		return "probably_ship"
	default:
		panic("invalid cell state")
	}
}

// rune representation used by Board.String dumps.
func (c Cell) rune() rune {
	switch c {
	case Empty:
		return '.'
	case Border:
		return ','
	case Ship:
		return 'S'
	case Hit:
		return 'X'
	case Missed:
		return 'o'
	case ProbablyShip:
		return '?'
	default:
		panic("invalid cell state")
	}
}
