package game

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/mrsobakin/seawar/internal/game/field"
)

// Random fleet placement does not backtrack, so a dense fleet can run out
// of space; the bot simply rerolls a fresh field a bounded number of times.
const maxFleetRerolls = 64

// RecordResult mirrors a shot outcome onto the shooter's tracking field
// and, on a plain hit, marks the empty orthogonal neighbors of the hit
// cell ProbablyShip so the hunt continues around it.
func RecordResult(tracking *field.Board, res field.ShotResult) error {
	if err := tracking.ApplyShotResult(res); err != nil {
		return err
	}

	if res.Signal != field.ShipHit {
		return nil
	}

	for _, c := range res.Cells {
		for _, rib := range tracking.Ribs(c) {
			if cell, _ := tracking.Get(rib); cell == field.Empty {
				tracking.Set(rib, field.ProbablyShip)
			}
		}
	}

	return nil
}

// SelectTarget picks the next shot on a tracking field: uniformly among
// ProbablyShip cells while hunting, otherwise uniformly among cells not
// yet fired at. Returns `field.ErrNoTargets` when the field is exhausted.
func SelectTarget(rng *rand.Rand, tracking *field.Board) (field.Coord, error) {
	var probable, untried []field.Coord

	for c := range tracking.Coords() {
		switch cell, _ := tracking.Get(c); cell {
		case field.ProbablyShip:
			probable = append(probable, c)
		case field.Empty:
			untried = append(untried, c)
		}
	}

	if len(probable) > 0 {
		return probable[rng.Intn(len(probable))], nil
	}
	if len(untried) > 0 {
		return untried[rng.Intn(len(untried))], nil
	}

	return field.Coord{}, field.ErrNoTargets
}

// Bot is the computer player: a randomly placed own field, a tracking
// field of its shots and the rib-hunting target heuristic. It carries no
// state beyond the two fields.
type Bot struct {
	rng      *rand.Rand
	own      *field.Board
	tracking *field.Board
}

func NewBot(rng *rand.Rand) *Bot {
	return &Bot{rng: rng}
}

// NewFleetBoard builds a field with the configured fleet randomly placed
// on it, rerolling a fresh field when a non-backtracking placement runs
// out of space.
func NewFleetBoard(rng *rand.Rand, conf field.Config) (*field.Board, error) {
	if err := conf.IsValid(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	var err error
	for i := 0; i < maxFleetRerolls; i++ {
		board, newErr := field.New(conf.W, conf.H)
		if newErr != nil {
			return nil, newErr
		}

		if err = board.PlaceFleetRandom(rng, conf.Fleet); err == nil {
			return board, nil
		}

		if !errors.Is(err, field.ErrNoSpaceLeft) {
			return nil, err
		}
	}

	return nil, fmt.Errorf("fleet does not fit after %d attempts: %w", maxFleetRerolls, err)
}

func (b *Bot) PlaceFleet(conf field.Config) error {
	own, err := NewFleetBoard(b.rng, conf)
	if err != nil {
		return err
	}

	tracking, err := field.New(conf.W, conf.H)
	if err != nil {
		return err
	}

	b.own = own
	b.tracking = tracking
	return nil
}

var errFleetNotPlaced = errors.New("fleet is not placed")

func (b *Bot) NextShot() (field.Coord, error) {
	if b.tracking == nil {
		return field.Coord{}, errFleetNotPlaced
	}
	return SelectTarget(b.rng, b.tracking)
}

func (b *Bot) AcceptResult(res field.ShotResult) error {
	if b.tracking == nil {
		return errFleetNotPlaced
	}
	return RecordResult(b.tracking, res)
}

func (b *Bot) TakeShot(c field.Coord) (field.ShotResult, error) {
	if b.own == nil {
		return field.ShotResult{}, errFleetNotPlaced
	}
	return b.own.ResolveShot(c)
}

func (b *Bot) Close() error {
	return nil
}

// TakeTurn plays one full bot move against the enemy field: select a
// target, resolve the shot there and record the outcome. The chosen
// coordinate and the outcome are returned for the caller to render.
func (b *Bot) TakeTurn(enemy *field.Board) (field.Coord, field.ShotResult, error) {
	target, err := b.NextShot()
	if err != nil {
		return field.Coord{}, field.ShotResult{}, err
	}

	res, err := enemy.ResolveShot(target)
	if err != nil {
		return target, field.ShotResult{}, err
	}

	if err := b.AcceptResult(res); err != nil {
		return target, res, err
	}

	return target, res, nil
}
