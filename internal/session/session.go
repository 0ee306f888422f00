package session

import (
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/mrsobakin/seawar/internal/game"
	"github.com/mrsobakin/seawar/internal/game/field"
)

var (
	ErrNotFound       = errors.New("game not found")
	ErrFleetPlaced    = errors.New("fleet is already placed")
	ErrFleetNotPlaced = errors.New("fleet is not placed yet")
	ErrGameOver       = errors.New("game is over")
)

// Move is one resolved shot of the game transcript returned to clients.
type Move struct {
	By     string        `json:"by"` // "player" or "bot"
	Cell   field.Coord   `json:"cell"`
	Signal field.Signal  `json:"signal"`
	Cells  []field.Coord `json:"cells"`
}

// Session is one human-versus-bot game. The human owns a placement field
// (ground truth for the bot's shots) and a tracking field of its own
// shots; the bot keeps its pair internally. All session methods are
// serialized by a per-session mutex: the engine itself performs no
// locking and assumes exclusive sequential access per field pair.
type Session struct {
	ID      string
	Created time.Time

	mu          sync.Mutex
	rng         *rand.Rand
	conf        field.Config
	own         *field.Board
	tracking    *field.Board
	bot         *game.Bot
	fleetPlaced bool
	over        bool
}

// PlaceFleet randomly places the human fleet on the own field. A fleet
// may be placed only once per session.
func (s *Session) PlaceFleet() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.fleetPlaced {
		return ErrFleetPlaced
	}

	own, err := game.NewFleetBoard(s.rng, s.conf)
	if err != nil {
		return err
	}

	s.own = own
	s.fleetPlaced = true
	return nil
}

// Fire plays one human shot at the bot's field and, when the human
// misses, lets the bot shoot back until it misses or wins. Returns the
// transcript of every shot taken, in order.
func (s *Session) Fire(c field.Coord) ([]Move, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.fleetPlaced {
		return nil, ErrFleetNotPlaced
	}
	if s.over {
		return nil, ErrGameOver
	}

	res, err := s.bot.TakeShot(c)
	if err != nil {
		return nil, err
	}

	if err := s.tracking.ApplyShotResult(res); err != nil {
		return nil, err
	}

	moves := []Move{{By: "player", Cell: c, Signal: res.Signal, Cells: res.Cells}}

	if res.Signal == field.Win {
		s.over = true
		return moves, nil
	}
	if res.Signal != field.Miss {
		return moves, nil
	}

	for {
		target, botRes, err := s.bot.TakeTurn(s.own)
		if errors.Is(err, field.ErrNoTargets) {
			s.over = true
			break
		}
		if err != nil {
			return moves, err
		}

		moves = append(moves, Move{By: "bot", Cell: target, Signal: botRes.Signal, Cells: botRes.Cells})

		if botRes.Signal == field.Win {
			s.over = true
			break
		}
		if botRes.Signal == field.Miss {
			break
		}
	}

	return moves, nil
}

// View is a JSON-renderable snapshot of the session for the human side:
// the own field is ground truth, the target field is the tracking record.
type View struct {
	ID          string     `json:"id"`
	Width       int        `json:"width"`
	Height      int        `json:"height"`
	FleetPlaced bool       `json:"fleet_placed"`
	Over        bool       `json:"over"`
	Own         [][]string `json:"own"`
	Target      [][]string `json:"target"`
}

func renderBoard(b *field.Board) [][]string {
	rows := make([][]string, b.Height())
	for y := range rows {
		rows[y] = make([]string, b.Width())
	}
	for c := range b.Coords() {
		cell, _ := b.Get(c)
		rows[c.Y][c.X] = cell.String()
	}
	return rows
}

func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	return View{
		ID:          s.ID,
		Width:       s.conf.W,
		Height:      s.conf.H,
		FleetPlaced: s.fleetPlaced,
		Over:        s.over,
		Own:         renderBoard(s.own),
		Target:      renderBoard(s.tracking),
	}
}
