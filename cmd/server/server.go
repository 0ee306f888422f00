package main

import (
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/semaphore"

	"github.com/mrsobakin/seawar/internal/game/field"
	"github.com/mrsobakin/seawar/internal/judge"
	"github.com/mrsobakin/seawar/internal/session"
)

const (
	ErrBadFormat string = "bad_format"
	ErrBadMove   string = "bad_move"
	ErrNoGame    string = "no_game"
	ErrNoSpace   string = "no_space"
	ErrUnknown   string = "unknown"
)

const maxSimulatedGames = 256

type server struct {
	sessions *session.Manager
	jobs     *semaphore.Weighted
	seeds    *seedSource
}

type fieldParams struct {
	Width  int   `json:"width"`
	Height int   `json:"height"`
	Fleet  []int `json:"fleet"`
}

// config fills the blanks with the standard 10x10 game.
func (p *fieldParams) config() field.Config {
	conf := field.DefaultConfig()
	if p.Width > 0 {
		conf.W = p.Width
	}
	if p.Height > 0 {
		conf.H = p.Height
	}
	if len(p.Fleet) > 0 {
		conf.Fleet = field.Fleet(p.Fleet)
	}
	return conf
}

func (s *server) handleCreate(c *gin.Context) {
	var params fieldParams

	if !tryBindParams(c, &params) {
		return
	}

	sess, err := s.sessions.Create(params.config())
	if err != nil {
		replyError(c, err)
		return
	}

	c.JSON(201, sess.View())
}

func (s *server) handleState(c *gin.Context) {
	sess, err := s.sessions.Get(c.Param("id"))
	if err != nil {
		replyError(c, err)
		return
	}

	c.JSON(200, sess.View())
}

func (s *server) handlePlaceFleet(c *gin.Context) {
	sess, err := s.sessions.Get(c.Param("id"))
	if err != nil {
		replyError(c, err)
		return
	}

	if err := sess.PlaceFleet(); err != nil {
		replyError(c, err)
		return
	}

	c.JSON(200, sess.View())
}

func (s *server) handleShot(c *gin.Context) {
	var params struct {
		X *int `json:"x" binding:"required"`
		Y *int `json:"y" binding:"required"`
	}

	if !tryBindParams(c, &params) {
		return
	}

	sess, err := s.sessions.Get(c.Param("id"))
	if err != nil {
		replyError(c, err)
		return
	}

	moves, err := sess.Fire(field.Coord{X: *params.X, Y: *params.Y})
	if err != nil {
		replyError(c, err)
		return
	}

	c.JSON(200, map[string]any{
		"moves": moves,
	})
}

func (s *server) handleDelete(c *gin.Context) {
	if err := s.sessions.Delete(c.Param("id")); err != nil {
		replyError(c, err)
		return
	}

	c.Status(204)
}

func (s *server) handleSimulate(c *gin.Context) {
	var params struct {
		fieldParams
		Games    int    `json:"games"`
		Opponent string `json:"opponent"`
	}

	if !tryBindParams(c, &params) {
		return
	}

	games := params.Games
	if games < 1 {
		games = 1
	}
	if games > maxSimulatedGames {
		games = maxSimulatedGames
	}

	master := s.newFactory("bot")
	slave := s.newFactory(params.Opponent)
	if slave == nil {
		c.JSON(422, map[string]any{
			"error":   ErrBadFormat,
			"details": "unknown opponent: " + params.Opponent,
		})
		return
	}

	j := judge.Judge{Conf: params.config()}

	verdicts := make([]judge.Verdict, games)
	var wg sync.WaitGroup

	for i := 0; i < games; i++ {
		if err := s.jobs.Acquire(c, 1); err != nil {
			// Client is gone; let the started games finish.
			break
		}

		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			defer s.jobs.Release(1)
			verdicts[i] = j.Judge(master, slave)
		}(i)
	}

	wg.Wait()

	wins := map[string]int{}
	for _, v := range verdicts {
		wins[v.Winner.String()]++
	}

	c.JSON(200, map[string]any{
		"verdicts": verdicts,
		"wins":     wins,
	})
}

func (s *server) RegisterEndpoints(e *gin.Engine) {
	e.POST("/games", s.handleCreate)
	e.GET("/games/:id", s.handleState)
	e.POST("/games/:id/fleet", s.handlePlaceFleet)
	e.POST("/games/:id/shot", s.handleShot)
	e.DELETE("/games/:id", s.handleDelete)
	e.POST("/simulate", s.handleSimulate)
}
