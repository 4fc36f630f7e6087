// internal/httpserver/routes_match.go
//
// HTTP routes for matches.
//   - POST   /match                 → create a match, returns seat tokens
//   - GET    /match/{id}            → current state (public, the target stays hidden)
//   - POST   /match/{id}/ready      → any seat
//   - POST   /match/{id}/guess      → current player's seat, body {"guess":"CRANE"}
//   - POST   /match/{id}/skip       → current player's seat
//   - POST   /match/{id}/letter     → current player's seat, body {"letter":"C"}
//   - POST   /match/{id}/backspace  → current player's seat
//   - POST   /match/{id}/enter      → current player's seat; any seat before a round (ready)
//   - POST   /match/{id}/reset      → any seat
//   - DELETE /match/{id}            → any seat, tears the match down
//
// Inputs the engine ignores are not errors: the response carries
// "applied": false and the unchanged state.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"unicode/utf8"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/lingo/internal/display"
	"github.com/robalobadob/lingo/internal/game"
	"github.com/robalobadob/lingo/internal/session"
	"github.com/robalobadob/lingo/internal/store"
	"github.com/robalobadob/lingo/internal/words"
)

// mountMatch registers all /match routes.
func (s *Server) mountMatch() {
	s.r.Post("/match", s.handleNewMatch)
	s.r.Get("/match/{id}", s.handleGetMatch)

	seated := s.r.With(s.requireSeat)
	seated.Post("/match/{id}/ready", s.anySeat(func(m *game.Match) bool { return m.Ready() }))
	seated.Post("/match/{id}/reset", s.anySeat(func(m *game.Match) bool { m.Reset(); return true }))
	seated.Post("/match/{id}/skip", s.onTurn(func(m *game.Match) bool { return m.Skip() }))
	seated.Post("/match/{id}/backspace", s.onTurn(func(m *game.Match) bool { return m.DeleteLetter() }))
	seated.Post("/match/{id}/enter", s.onTurn(func(m *game.Match) bool { return m.SubmitRow() }))
	seated.Post("/match/{id}/guess", s.handleGuess)
	seated.Post("/match/{id}/letter", s.handleLetter)
	seated.Delete("/match/{id}", s.handleDeleteMatch)
}

// -----------------------------------------------------------------------------
// POST /match

// newMatchReq overrides match defaults; every field is optional.
type newMatchReq struct {
	WordLengths   []int  `json:"wordLengths"`
	MaxAttempts   int    `json:"maxAttempts"`
	InitialPlayer int    `json:"initialPlayer"`
	Seed          string `json:"seed"` // "daily" or any string for reproducible words
	Player1       string `json:"player1"`
	Player2       string `json:"player2"`
}

type newMatchRes struct {
	MatchID string            `json:"matchId"`
	Seats   map[string]string `json:"seats"`
	State   session.State     `json:"state"`
}

// handleNewMatch builds a match with its view, starts its session and issues
// one seat token per player.
func (s *Server) handleNewMatch(w http.ResponseWriter, r *http.Request) {
	var req newMatchReq
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeErr(w, http.StatusBadRequest, "bad_json")
			return
		}
	}

	cfg := s.opts.Match
	if len(req.WordLengths) > 0 {
		cfg.RoundWordLengths = req.WordLengths
	}
	if req.MaxAttempts > 0 {
		cfg.MaxAttempts = req.MaxAttempts
	}
	if req.InitialPlayer != 0 {
		cfg.InitialPlayer = game.Player(req.InitialPlayer)
	}

	source := s.opts.Source
	if req.Seed != "" {
		if s.opts.Lists == nil {
			writeErr(w, http.StatusBadRequest, "seeds_unavailable")
			return
		}
		source = s.opts.Lists.Seeded(s.opts.Salt, words.ResolveSeed(req.Seed, s.opts.Clock.Now()))
	}

	id := uuid.NewString()
	view := display.NewView()
	view.SetPlayerNames(req.Player1, req.Player2)
	sinks := display.Fanout{view, display.NewLogger(log.With().Str("match", id).Logger())}

	m, err := game.NewMatch(cfg, source, sinks, sinks)
	if err != nil {
		writeErr(w, http.StatusBadRequest, "invalid_config", err.Error())
		return
	}
	sess, err := session.New(session.Config{ID: id, Tick: s.opts.Tick, Clock: s.opts.Clock}, m, view)
	if err != nil {
		writeErr(w, http.StatusInternalServerError, "session_failed")
		return
	}

	seats := make(map[string]string, 2)
	for _, p := range []game.Player{game.PlayerOne, game.PlayerTwo} {
		tok, err := s.opts.Seats.Issue(id, p)
		if err != nil {
			log.Error().Err(err).Msg("issue seat")
			writeErr(w, http.StatusInternalServerError, "sign_failed")
			return
		}
		seats[strconv.Itoa(int(p))] = tok
	}

	sess.Start(s.ctx)
	if err := s.store.Save(r.Context(), sess); err != nil {
		sess.Close()
		log.Error().Err(err).Msg("save session")
		writeErr(w, http.StatusInternalServerError, "save_failed")
		return
	}

	st, err := sess.Snapshot(r.Context())
	if err != nil {
		writeErr(w, http.StatusInternalServerError, "snapshot_failed")
		return
	}
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(newMatchRes{MatchID: id, Seats: seats, State: st})
}

// -----------------------------------------------------------------------------
// GET /match/{id}

func (s *Server) handleGetMatch(w http.ResponseWriter, r *http.Request) {
	sess, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeErr(w, http.StatusNotFound, "not_found")
		return
	}
	st, err := sess.Snapshot(r.Context())
	if err != nil {
		writeSessionErr(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(st)
}

// -----------------------------------------------------------------------------
// inputs

// inputRes is returned by every input route.
type inputRes struct {
	Applied bool          `json:"applied"`
	State   session.State `json:"state"`
}

type guessReq struct {
	Guess string `json:"guess"`
}

type letterReq struct {
	Letter string `json:"letter"`
}

func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, http.StatusBadRequest, "bad_json")
		return
	}
	s.onTurn(func(m *game.Match) bool { return m.SubmitGuess(req.Guess) })(w, r)
}

func (s *Server) handleLetter(w http.ResponseWriter, r *http.Request) {
	var req letterReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || utf8.RuneCountInString(req.Letter) != 1 {
		writeErr(w, http.StatusBadRequest, "bad_letter")
		return
	}
	c, _ := utf8.DecodeRuneInString(req.Letter)
	s.onTurn(func(m *game.Match) bool { return m.TypeLetter(c) })(w, r)
}

// errNotYourTurn is raised inside the loop when the seat does not match the
// player expected to act.
var errNotYourTurn = errors.New("not your turn")

// onTurn runs op only if the caller's seat is the player to act. Outside the
// guess phases any seat may call it (enter is the ready signal before a round).
// The seat check and the input run in one loop turn, so a phase change cannot
// slip between.
func (s *Server) onTurn(op func(m *game.Match) bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := sessionFrom(r.Context())
		seat := seatFrom(r.Context())

		var applied bool
		var turnErr error
		st, err := sess.Exec(r.Context(), func(m *game.Match) {
			rd := m.Round()
			if rd == nil || (m.State().AcceptsGuess() && rd.Current() != seat) {
				turnErr = errNotYourTurn
				return
			}
			applied = op(m)
		})
		if err != nil {
			writeSessionErr(w, err)
			return
		}
		if turnErr != nil && st.State.AcceptsGuess() {
			w.WriteHeader(http.StatusForbidden)
			_ = json.NewEncoder(w).Encode(map[string]any{"error": "not_your_turn", "state": st})
			return
		}
		_ = json.NewEncoder(w).Encode(inputRes{Applied: applied, State: st})
	}
}

// anySeat runs op for either seat of the match.
func (s *Server) anySeat(op func(m *game.Match) bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var applied bool
		st, err := sessionFrom(r.Context()).Exec(r.Context(), func(m *game.Match) {
			applied = op(m)
		})
		if err != nil {
			writeSessionErr(w, err)
			return
		}
		_ = json.NewEncoder(w).Encode(inputRes{Applied: applied, State: st})
	}
}

// -----------------------------------------------------------------------------
// DELETE /match/{id}

func (s *Server) handleDeleteMatch(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeErr(w, http.StatusNotFound, "not_found")
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]bool{"ok": true})
}

// ---------------------------- seat middleware ------------------------------

// ctxSessionKey is the context key type for the resolved session.
type ctxSessionKey struct{}

func sessionFrom(ctx context.Context) *session.Session {
	sess, _ := ctx.Value(ctxSessionKey{}).(*session.Session)
	return sess
}

// requireSeat verifies the bearer seat token against the {id} in the path and
// injects the session and seat into the request context.
func (s *Server) requireSeat(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tok := bearer(r)
		if tok == "" {
			writeErr(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		matchID, seat, err := s.opts.Seats.Verify(tok)
		if err != nil || matchID != chi.URLParam(r, "id") {
			writeErr(w, http.StatusUnauthorized, "invalid_token")
			return
		}
		sess, err := s.store.Get(r.Context(), matchID)
		if err != nil {
			writeErr(w, http.StatusNotFound, "not_found")
			return
		}
		ctx := context.WithValue(r.Context(), ctxSeatKey{}, seat)
		ctx = context.WithValue(ctx, ctxSessionKey{}, sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// writeSessionErr maps session and store errors to HTTP statuses.
func writeSessionErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, session.ErrClosed), errors.Is(err, store.ErrNotFound):
		writeErr(w, http.StatusGone, "gone")
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		writeErr(w, http.StatusServiceUnavailable, "timeout")
	default:
		writeErr(w, http.StatusInternalServerError, "server_error")
	}
}
