package handlers

import (
	"errors"
	"math/rand/v2"
	"net/http"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper-engine/internal/mines"
)

// GameHandler serves a single game session. Requests are serialised, so the
// engine only ever sees one mutator.
type GameHandler struct {
	log    logrus.FieldLogger
	rnd    *rand.Rand
	params mines.GameParams

	mu        sync.Mutex
	game      *mines.Game
	startedAt time.Time
	endedAt   *time.Time
}

func NewGameHandler(
	log logrus.FieldLogger,
	params mines.GameParams,
	rnd *rand.Rand,
) (*GameHandler, error) {
	g := &GameHandler{
		log:    log,
		rnd:    rnd,
		params: params,
	}
	if err := g.reset(params); err != nil {
		return nil, err
	}
	return g, nil
}

// reset must be called with mu held or before the handler is shared.
func (g *GameHandler) reset(params mines.GameParams) error {
	game, err := mines.NewGame(params, g.rnd)
	if err != nil {
		return err
	}
	g.game = game
	g.params = params
	g.startedAt = time.Now().UTC()
	g.endedAt = nil
	return nil
}

func (g *GameHandler) respond(w http.ResponseWriter, notice string) {
	if g.game.Ended() && g.endedAt == nil {
		now := time.Now().UTC()
		g.endedAt = &now
	}
	sendJSONOrLog(w, g.log, NewGameSessionDTO(g.startedAt, g.endedAt, g.game, notice))
}

func (g *GameHandler) NewGame(w http.ResponseWriter, r *http.Request) {
	g.mu.Lock()
	defer g.mu.Unlock()

	params, err := ParseCreateNewGameDTO(r.URL.Query(), g.params)
	if err != nil {
		sendErrorOrLog(w, g.log, http.StatusBadRequest, err)
		return
	}
	if err := g.reset(params); err != nil {
		sendErrorOrLog(w, g.log, http.StatusBadRequest, err)
		return
	}

	g.log.WithField("params", params.Seed()).Info("new game")
	g.respond(w, "")
}

func (g *GameHandler) Fetch(w http.ResponseWriter, r *http.Request) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.respond(w, "")
}

func (g *GameHandler) MakeAMove(w http.ResponseWriter, r *http.Request) {
	move, err := mines.ParseMove(r.PathValue("move"))
	if err != nil {
		sendErrorOrLog(w, g.log, http.StatusNotFound, err)
		return
	}

	pos, err := ParsePosition(r.URL.Query())
	if err != nil {
		sendErrorOrLog(w, g.log, http.StatusBadRequest, err)
		return
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	wasEnded := g.game.Ended()
	out, err := g.game.Apply(move, pos.Row, pos.Col)
	if errors.Is(err, mines.ErrOutOfBounds) {
		sendErrorOrLog(w, g.log, http.StatusBadRequest, err)
		return
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.log.WithError(err).Error("unable to apply move")
		return
	}

	won := g.game.CheckOutcome()
	g.log.WithFields(logrus.Fields{
		"move":     move.String(),
		"row":      pos.Row,
		"col":      pos.Col,
		"outcome":  out.String(),
		"attempts": g.game.Attempts(),
	}).Debug("move applied")
	if !wasEnded && g.game.Ended() {
		g.log.WithFields(logrus.Fields{
			"won":      won,
			"attempts": g.game.Attempts(),
		}).Info("game over")
	}

	notice := ""
	if out.Informational() {
		notice = out.String()
	}
	g.respond(w, notice)
}

func (g *GameHandler) Forfeit(w http.ResponseWriter, r *http.Request) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.game.ForceRevealAll()
	g.respond(w, "")
}
