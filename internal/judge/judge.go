package judge

import (
	"encoding/json"
	"errors"

	"github.com/mrsobakin/seawar/internal/game"
	"github.com/mrsobakin/seawar/internal/game/field"
)

type Result int

const (
	Tie Result = iota
	MasterWon
	SlaveWon
)

func (r Result) String() string {
	switch r {
	case Tie:
		return "tie"
	case MasterWon:
		return "master"
	case SlaveWon:
		return "slave"
	default:
		panic("invalid verdict")
	}
}

func (r Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

func ResultFromWinner(role game.Role) Result {
	if role == game.RoleMaster {
		return MasterWon
	}
	if role == game.RoleSlave {
		return SlaveWon
	}
	panic("unknown role")
}

type Reason int

const (
	Ok Reason = iota
	PlayerError
	MoveLimit
)

func (r Reason) String() string {
	switch r {
	case Ok:
		return "OK"
	case PlayerError:
		return "PE"
	case MoveLimit:
		return "MVL"
	default:
		panic("invalid reason")
	}
}

func (r Reason) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

type Verdict struct {
	Winner  Result `json:"winner"`
	Reason  Reason `json:"reason"`
	Moves   int    `json:"moves"`
	Details string `json:"details"`
}

type Judge struct {
	Conf field.Config

	// Upper bound on total shots before the match is called a tie.
	// Guards against a Player that never finishes the game.
	// Zero means "derive from the field size".
	MaxMoves int
}

func (j *Judge) maxMoves() int {
	if j.MaxMoves > 0 {
		return j.MaxMoves
	}

	// Each side has W*H cells to exhaust; re-shooting resolved cells
	// is legal, so leave some slack on top.
	return 4 * j.Conf.W * j.Conf.H
}

// As per our rules:
//   - If player wins, he wins.
//   - If player errors out, the other player wins.
//   - If nobody wins within the move limit, it's a tie.
func (j *Judge) Judge(master, slave game.PlayerFactory) Verdict {
	m := newMatch(master.NewPlayer(), slave.NewPlayer(), j.Conf)
	defer m.Close()

	moves, result := m.Play(j.maxMoves())

	verdict := Verdict{Moves: moves}

	switch {
	case result == nil:
		verdict.Winner = Tie
		verdict.Reason = MoveLimit
	case errors.Is(result.Err, errPlayerWon):
		verdict.Winner = ResultFromWinner(result.Role)
		verdict.Reason = Ok
	default:
		verdict.Winner = ResultFromWinner(result.Role.Other())
		verdict.Reason = PlayerError
		verdict.Details = result.Err.Error()
	}

	return verdict
}
