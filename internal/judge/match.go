package judge

import (
	"errors"
	"fmt"

	"github.com/mrsobakin/seawar/internal/game"
	"github.com/mrsobakin/seawar/internal/game/field"
)

var errPlayerWon error = errors.New("player won")

type roleError struct {
	Role game.Role
	Err  error
}

func failedAs(role game.Role, err error) *roleError {
	return &roleError{
		role,
		err,
	}
}

func wonAs(role game.Role) *roleError {
	return &roleError{
		role,
		errPlayerWon,
	}
}

type match struct {
	master, slave game.Player
	conf          field.Config
}

func newMatch(master, slave game.Player, conf field.Config) *match {
	return &match{
		master: master,
		slave:  slave,
		conf:   conf,
	}
}

func (m *match) playerByRole(role game.Role) game.Player {
	if role == game.RoleMaster {
		return m.master
	} else {
		return m.slave
	}
}

func (m *match) Close() {
	m.master.Close()
	m.slave.Close()
}

func (m *match) placeFleets() *roleError {
	for _, role := range [2]game.Role{game.RoleMaster, game.RoleSlave} {
		if err := m.playerByRole(role).PlaceFleet(m.conf); err != nil {
			return failedAs(role, fmt.Errorf("failed to place fleet: %w", err))
		}
	}
	return nil
}

func (m *match) isValidShot(c field.Coord) bool {
	return c.X >= 0 && c.Y >= 0 && c.X < m.conf.W && c.Y < m.conf.H
}

// Shoot plays one shot of the given role against the other one and
// reports whether the shooter keeps the turn.
func (m *match) Shoot(shooterRole game.Role) (bool, *roleError) {
	victimRole := shooterRole.Other()

	shooter := m.playerByRole(shooterRole)
	victim := m.playerByRole(victimRole)

	target, err := shooter.NextShot()
	if err != nil {
		return false, failedAs(shooterRole, fmt.Errorf("failed to pick a shot: %w", err))
	}

	if !m.isValidShot(target) {
		return false, failedAs(shooterRole, fmt.Errorf("invalid shot position (%d; %d)", target.X, target.Y))
	}

	result, err := victim.TakeShot(target)
	if err != nil {
		return false, failedAs(victimRole, fmt.Errorf("failed to take a shot: %w", err))
	}

	if err := shooter.AcceptResult(result); err != nil {
		return false, failedAs(shooterRole, fmt.Errorf("failed to accept shot result: %w", err))
	}

	if result.Signal == field.Win {
		return true, wonAs(shooterRole)
	}

	return result.Signal != field.Miss, nil
}

// Play runs the match until someone wins, a player errors out or the
// move limit is reached (nil result). The slave shoots first; a shooter
// keeps the turn for as long as it hits.
func (m *match) Play(maxMoves int) (int, *roleError) {
	if err := m.placeFleets(); err != nil {
		return 0, err
	}

	currentPlayer := game.RoleSlave
	for move := 1; move <= maxMoves; move++ {
		hit, err := m.Shoot(currentPlayer)
		if err != nil {
			return move, err
		}

		if !hit {
			currentPlayer = currentPlayer.Other()
		}
	}

	return maxMoves, nil
}
