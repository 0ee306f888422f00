package judge

import (
	"errors"
	"math/rand"

	"github.com/mrsobakin/seawar/internal/game"
	"github.com/mrsobakin/seawar/internal/game/field"
)

// SweepPlayer is a baseline opponent: it places its fleet randomly and
// shoots every cell exactly once in row-major order, ignoring feedback.
// Useful as a reference contestant for the heuristic bot.
type SweepPlayer struct {
	rng  *rand.Rand
	own  *field.Board
	conf field.Config
	x, y int
}

func NewSweepPlayer(rng *rand.Rand) *SweepPlayer {
	return &SweepPlayer{rng: rng}
}

func (p *SweepPlayer) PlaceFleet(conf field.Config) error {
	own, err := game.NewFleetBoard(p.rng, conf)
	if err != nil {
		return err
	}

	p.own = own
	p.conf = conf
	return nil
}

func (p *SweepPlayer) NextShot() (field.Coord, error) {
	if p.y >= p.conf.H {
		return field.Coord{}, field.ErrNoTargets
	}

	c := field.Coord{X: p.x, Y: p.y}

	p.x++
	if p.x == p.conf.W {
		p.x = 0
		p.y++
	}

	return c, nil
}

func (p *SweepPlayer) AcceptResult(field.ShotResult) error {
	return nil
}

func (p *SweepPlayer) TakeShot(c field.Coord) (field.ShotResult, error) {
	if p.own == nil {
		return field.ShotResult{}, errors.New("fleet is not placed")
	}
	return p.own.ResolveShot(c)
}

func (p *SweepPlayer) Close() error {
	return nil
}
