package handlers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vancomm/sudoku-server/internal/config"
	"github.com/vancomm/sudoku-server/internal/game"
	"github.com/vancomm/sudoku-server/internal/middleware"
	"github.com/vancomm/sudoku-server/internal/repository"
)

type GameHandler struct {
	logger *slog.Logger
	repo   *repository.Queries
	ws     *config.WebSocket
	rnd    *rand.Rand
}

func NewGameHandler(
	logger *slog.Logger,
	db *pgxpool.Pool,
	ws *config.WebSocket,
	rnd *rand.Rand,
) *GameHandler {
	return &GameHandler{
		logger: logger,
		repo:   repository.New(db),
		ws:     ws,
		rnd:    rnd,
	}
}

func (g *GameHandler) NewGame(w http.ResponseWriter, r *http.Request) {
	dto, err := ParseCreateNewGameDTO(r.URL.Query())
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, g.logger, wrapError(err))
		return
	}

	state := game.New(dto.difficulty(), g.rnd)

	b, err := state.Bytes()
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("unable to encode game state", "error", err)
		return
	}

	var playerId *int64
	claims, loggedIn := r.Context().Value(middleware.CtxPlayerClaims).(*config.PlayerClaims)
	if loggedIn {
		g.logger.Debug("creating player session", "claims", claims)
		playerId = &claims.PlayerId
	} else {
		g.logger.Debug("creating anonymous session")
	}

	session, err := g.repo.CreateSession(r.Context(), repository.CreateSessionParams{
		PlayerID:   playerId,
		Difficulty: string(state.Difficulty),
		State:      b,
	})
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("unable to create game session", "error", err)
		return
	}

	sendJSONOrLog(w, g.logger, NewGameSessionDTO(
		session.GameSessionID, session.StartedAt, nil, state,
	))
}

func (g *GameHandler) fetchSession(
	w http.ResponseWriter, r *http.Request,
) (*repository.GameSession, *game.State, bool) {
	sessionId, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return nil, nil, false
	}

	session, err := g.repo.GetSession(r.Context(), sessionId)
	if errors.Is(err, pgx.ErrNoRows) {
		w.WriteHeader(http.StatusNotFound)
		return nil, nil, false
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("unable to fetch session from db", "error", err)
		return nil, nil, false
	}

	state, err := game.DecodeState(session.State)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("db returned invalid game_session.state", "error", err)
		return nil, nil, false
	}

	return session, state, true
}

func (g *GameHandler) updateSession(
	ctx context.Context, session *repository.GameSession, state *game.State,
) error {
	if state.Over() && session.EndedAt == nil {
		endedAt := time.Now().UTC()
		session.EndedAt = &endedAt
	}

	b, err := state.Bytes()
	if err != nil {
		return fmt.Errorf("unable to serialize game state: %w", err)
	}

	mistakes := int32(state.Mistakes)
	_, err = g.repo.UpdateSession(ctx, repository.UpdateSessionParams{
		GameSessionID: session.GameSessionID,
		State:         &b,
		Mistakes:      &mistakes,
		Won:           &state.Won,
		Forfeited:     &state.Forfeited,
		EndedAt:       session.EndedAt,
	})
	return err
}

func (g *GameHandler) persistSession(
	w http.ResponseWriter, r *http.Request,
	session *repository.GameSession, state *game.State,
) bool {
	if err := g.updateSession(r.Context(), session, state); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("unable to update session in db", "error", err)
		return false
	}
	return true
}

func (g *GameHandler) Fetch(w http.ResponseWriter, r *http.Request) {
	session, state, ok := g.fetchSession(w, r)
	if !ok {
		return
	}
	sendJSONOrLog(w, g.logger, NewGameSessionDTO(
		session.GameSessionID, session.StartedAt, session.EndedAt, state,
	))
}

func (g *GameHandler) MakeAMove(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	move, err := ParseGameMove(query.Get("move"))
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, g.logger, wrapError(err))
		return
	}

	dto, err := ParseMoveDTO(query)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, g.logger, wrapError(err))
		return
	}

	session, state, ok := g.fetchSession(w, r)
	if !ok {
		return
	}

	switch move {
	case Enter:
		err = state.Enter(dto.Row, dto.Col, dto.Value)
	case Erase:
		err = state.Erase(dto.Row, dto.Col)
	}
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, g.logger, wrapError(err))
		return
	}

	if !g.persistSession(w, r, session, state) {
		return
	}

	sendJSONOrLog(w, g.logger, NewGameSessionDTO(
		session.GameSessionID, session.StartedAt, session.EndedAt, state,
	))
}

func (g *GameHandler) Forfeit(w http.ResponseWriter, r *http.Request) {
	session, state, ok := g.fetchSession(w, r)
	if !ok {
		return
	}

	state.Forfeit()

	if !g.persistSession(w, r, session, state) {
		return
	}

	sendJSONOrLog(w, g.logger, NewGameSessionDTO(
		session.GameSessionID, session.StartedAt, session.EndedAt, state,
	))
}
