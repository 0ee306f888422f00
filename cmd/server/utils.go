package main

import (
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrsobakin/seawar/internal/game"
	"github.com/mrsobakin/seawar/internal/game/field"
	"github.com/mrsobakin/seawar/internal/judge"
	"github.com/mrsobakin/seawar/internal/session"
)

func tryBindParams(ctx *gin.Context, obj any) (ok bool) {
	if err := ctx.BindJSON(&obj); err != nil {
		ctx.JSON(422, map[string]any{
			"error":   ErrBadFormat,
			"details": err.Error(),
		})
		return false
	}
	return true
}

func replyError(c *gin.Context, err error) {
	var code int
	var kind string

	switch {
	case errors.Is(err, session.ErrNotFound):
		code, kind = 404, ErrNoGame
	case errors.Is(err, field.ErrOutOfBounds), errors.Is(err, field.ErrInvalidPlacement):
		code, kind = 400, ErrBadMove
	case errors.Is(err, field.ErrNoSpaceLeft):
		code, kind = 409, ErrNoSpace
	case errors.Is(err, session.ErrFleetPlaced),
		errors.Is(err, session.ErrFleetNotPlaced),
		errors.Is(err, session.ErrGameOver):
		code, kind = 409, ErrBadMove
	default:
		code, kind = 500, ErrUnknown
	}

	c.JSON(code, map[string]any{
		"error":   kind,
		"details": err.Error(),
	})
}

// seedSource hands out rngs for players; rand.Rand itself is not safe
// for concurrent use, so every player gets its own.
type seedSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func newSeedSource() *seedSource {
	return &seedSource{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (s *seedSource) New() *rand.Rand {
	s.mu.Lock()
	defer s.mu.Unlock()
	return rand.New(rand.NewSource(s.rng.Int63()))
}

type playerFactory struct {
	kind  string
	seeds *seedSource
}

func (s *server) newFactory(kind string) game.PlayerFactory {
	switch kind {
	case "bot", "":
		kind = "bot"
	case "sweep":
	default:
		return nil
	}

	return &playerFactory{
		kind:  kind,
		seeds: s.seeds,
	}
}

func (f *playerFactory) NewPlayer() game.Player {
	if f.kind == "sweep" {
		return judge.NewSweepPlayer(f.seeds.New())
	}
	return game.NewBot(f.seeds.New())
}
