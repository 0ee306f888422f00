package game_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrsobakin/seawar/internal/game"
	"github.com/mrsobakin/seawar/internal/game/field"
)

func newBoard(t *testing.T, w, h int) *field.Board {
	t.Helper()

	b, err := field.New(w, h)
	require.NoError(t, err)

	return b
}

func newRng() *rand.Rand {
	return rand.New(rand.NewSource(99))
}

func TestRecordResult_HitMarksRibs(t *testing.T) {
	tracking := newBoard(t, 5, 5)

	require.NoError(t, game.RecordResult(tracking, field.ShotResult{
		Signal: field.ShipHit,
		Cells:  []field.Coord{{X: 2, Y: 2}},
	}))

	for _, rib := range []field.Coord{{X: 1, Y: 2}, {X: 3, Y: 2}, {X: 2, Y: 1}, {X: 2, Y: 3}} {
		cell, err := tracking.Get(rib)
		require.NoError(t, err)
		assert.Equal(t, field.ProbablyShip, cell, "rib %v", rib)
	}

	for _, corner := range []field.Coord{{X: 1, Y: 1}, {X: 3, Y: 1}, {X: 1, Y: 3}, {X: 3, Y: 3}} {
		cell, err := tracking.Get(corner)
		require.NoError(t, err)
		assert.Equal(t, field.Border, cell, "corner %v", corner)
	}
}

func TestRecordResult_MissMarksNothing(t *testing.T) {
	tracking := newBoard(t, 5, 5)

	res := field.ShotResult{Signal: field.Miss, Cells: []field.Coord{{X: 2, Y: 2}}}
	require.NoError(t, game.RecordResult(tracking, res))
	require.NoError(t, game.RecordResult(tracking, res), "recording a miss twice is idempotent")

	for c := range tracking.Coords() {
		cell, err := tracking.Get(c)
		require.NoError(t, err)

		if (c == field.Coord{X: 2, Y: 2}) {
			assert.Equal(t, field.Missed, cell)
		} else {
			assert.Equal(t, field.Empty, cell)
		}
	}
}

func TestRecordResult_KillClearsHunt(t *testing.T) {
	tracking := newBoard(t, 5, 5)

	require.NoError(t, game.RecordResult(tracking, field.ShotResult{
		Signal: field.ShipHit,
		Cells:  []field.Coord{{X: 1, Y: 1}},
	}))
	require.NoError(t, game.RecordResult(tracking, field.ShotResult{
		Signal: field.Killed,
		Cells:  []field.Coord{{X: 1, Y: 1}, {X: 1, Y: 2}},
	}))

	// The killed ship's border overwrites the ProbablyShip marks around
	// it, so the hunt is over.
	for c := range tracking.Coords() {
		cell, err := tracking.Get(c)
		require.NoError(t, err)
		assert.NotEqual(t, field.ProbablyShip, cell, "cell %v", c)
	}
}

func TestSelectTarget(t *testing.T) {
	rng := newRng()

	t.Run("PrefersProbable", func(t *testing.T) {
		tracking := newBoard(t, 5, 5)
		require.NoError(t, tracking.Set(field.Coord{X: 3, Y: 1}, field.ProbablyShip))

		for i := 0; i < 20; i++ {
			c, err := game.SelectTarget(rng, tracking)
			require.NoError(t, err)
			assert.Equal(t, field.Coord{X: 3, Y: 1}, c)
		}
	})

	t.Run("FallsBackToUntried", func(t *testing.T) {
		tracking := newBoard(t, 2, 1)
		require.NoError(t, tracking.Set(field.Coord{X: 0, Y: 0}, field.Missed))

		c, err := game.SelectTarget(rng, tracking)
		require.NoError(t, err)
		assert.Equal(t, field.Coord{X: 1, Y: 0}, c)
	})

	t.Run("Exhausted", func(t *testing.T) {
		tracking := newBoard(t, 1, 1)
		require.NoError(t, tracking.Set(field.Coord{X: 0, Y: 0}, field.Missed))

		_, err := game.SelectTarget(rng, tracking)
		assert.ErrorIs(t, err, field.ErrNoTargets)
	})
}

func TestBot_RequiresFleet(t *testing.T) {
	bot := game.NewBot(newRng())

	_, err := bot.NextShot()
	assert.Error(t, err)
	_, err = bot.TakeShot(field.Coord{})
	assert.Error(t, err)
}

func TestBot_PlaceFleet(t *testing.T) {
	t.Run("Standard", func(t *testing.T) {
		bot := game.NewBot(newRng())
		require.NoError(t, bot.PlaceFleet(field.DefaultConfig()))

		// 20 fleet cells means 20 hits before everything is dead.
		var hits int
		for y := 0; y < 10; y++ {
			for x := 0; x < 10; x++ {
				res, err := bot.TakeShot(field.Coord{X: x, Y: y})
				require.NoError(t, err)
				if res.Signal != field.Miss {
					hits++
				}
			}
		}
		assert.Equal(t, 20, hits)
	})

	t.Run("ImpossibleFleet", func(t *testing.T) {
		bot := game.NewBot(newRng())
		err := bot.PlaceFleet(field.Config{W: 4, H: 4, Fleet: field.StandardFleet()})
		assert.ErrorIs(t, err, field.ErrNoSpaceLeft)
	})

	t.Run("InvalidConfig", func(t *testing.T) {
		bot := game.NewBot(newRng())
		assert.Error(t, bot.PlaceFleet(field.Config{W: 0, H: 10, Fleet: field.StandardFleet()}))
		assert.Error(t, bot.PlaceFleet(field.Config{W: 10, H: 10}))
	})
}

func TestNewFleetBoard(t *testing.T) {
	rng := newRng()

	board, err := game.NewFleetBoard(rng, field.DefaultConfig())
	require.NoError(t, err)

	var shipCells int
	for c := range board.Coords() {
		if board.IsShip(c) {
			shipCells++
		}
	}
	assert.Equal(t, 20, shipCells)
}

// The bot must never shoot the same resolved cell twice, and must finish
// any board within W*H shots.
func TestBot_TakeTurn_FullGame(t *testing.T) {
	rng := newRng()

	for i := 0; i < 10; i++ {
		conf := field.Config{W: 5, H: 5, Fleet: field.Fleet{3, 1}}

		enemy, err := game.NewFleetBoard(rng, conf)
		require.NoError(t, err)

		bot := game.NewBot(rng)
		require.NoError(t, bot.PlaceFleet(conf))

		seen := map[field.Coord]bool{}
		won := false

		for turn := 0; turn < conf.W*conf.H; turn++ {
			target, res, err := bot.TakeTurn(enemy)
			require.NoError(t, err)

			assert.False(t, seen[target], "target %v shot twice", target)
			seen[target] = true

			if res.Signal == field.Win {
				won = true
				break
			}
		}

		assert.True(t, won, "bot must sink a 4-cell fleet within 25 shots")
	}
}
