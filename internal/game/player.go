package game

import (
	"github.com/mrsobakin/seawar/internal/game/field"
)

type Role int

const (
	RoleMaster Role = iota
	RoleSlave
)

func (r Role) Other() Role {
	if r == RoleMaster {
		return RoleSlave
	} else {
		return RoleMaster
	}
}

func (r Role) String() string {
	if r == RoleMaster {
		return "master"
	} else {
		return "slave"
	}
}

type Player interface {
	// Prepares the player's own field for the given configuration,
	// placing its whole fleet. MUST be called exactly once, before
	// any other method.
	PlaceFleet(field.Config) error

	// Picks the coordinate of the player's next shot.
	//
	// Returns `field.ErrNoTargets` when no unresolved cell remains
	// on the player's tracking field.
	NextShot() (field.Coord, error)

	// Reports the outcome of this player's last shot so it can
	// update its tracking field.
	AcceptResult(field.ShotResult) error

	// Resolves an incoming shot against the player's own field.
	TakeShot(field.Coord) (field.ShotResult, error)

	// Releases any player resources.
	Close() error
}

type PlayerFactory interface {
	NewPlayer() Player
}
