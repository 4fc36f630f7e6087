// internal/httpserver/server.go
//
// HTTP server wiring for the Lingo match server.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health", "/debug/words", GET /match/{id}.
//   - Match creation: POST /match returns the match ID and one seat token per player.
//   - Match input (seat token required): ready, guess, skip, letter, backspace,
//     enter, reset, DELETE.
//
// Notes:
//   - Every match runs in its own session loop; handlers only enqueue work.
//   - CORS is origin-aware so a browser front end on another port can call in.

package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/robalobadob/lingo/internal/common/clock"
	"github.com/robalobadob/lingo/internal/game"
	"github.com/robalobadob/lingo/internal/store"
	"github.com/robalobadob/lingo/internal/words"
)

// Options carries the server's dependencies and defaults.
type Options struct {
	Match        game.Config     // defaults for new matches
	Source       game.WordSource // word source for unseeded matches
	Lists        *words.Lists    // backing lists for seeded matches; nil disables seeds
	Salt         string          // HMAC salt for seeded matches
	Seats        *SeatSigner
	Tick         time.Duration
	Clock        clock.Clock
	ClientOrigin string
	WordStats    func(ctx context.Context) (map[int]int, error)
}

// Server bundles router, session store and match defaults.
type Server struct {
	r      *chi.Mux
	store  store.Store
	opts   Options
	ctx    context.Context
	cancel context.CancelFunc
}

// New constructs a Server, installs middleware, and registers routes.
func New(st store.Store, opts Options) *Server {
	if opts.Clock == nil {
		opts.Clock = &clock.DefaultClock{}
	}
	if opts.Seats == nil {
		opts.Seats = NewSeatSigner("dev_secret_change_me", 0)
	}
	if opts.ClientOrigin == "" {
		opts.ClientOrigin = "http://localhost:5173"
	}
	ctx, cancel := context.WithCancel(context.Background())
	s := &Server{r: chi.NewRouter(), store: st, opts: opts, ctx: ctx, cancel: cancel}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(cors(opts.ClientOrigin))         // single-origin CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"lingo","endpoints":["/health","POST /match","GET /match/{id}","POST /match/{id}/guess"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Get("/debug/words", s.handleWordStats)

	s.mountMatch()

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeErr(w, http.StatusNotFound, "not_found", r.URL.Path)
	})

	return s
}

// Handler exposes the router (useful for tests and custom http.Server setups).
func (s *Server) Handler() http.Handler { return s.r }

// Close stops every running match.
func (s *Server) Close() {
	s.cancel()
	s.store.CloseAll()
}

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// cors enables CORS for a single origin.
func cors(origin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,DELETE,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// errorRes is the body of every error response.
type errorRes struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

// writeErr writes a JSON error body with status. detail is optional context
// such as a validation message or the unmatched path.
func writeErr(w http.ResponseWriter, status int, code string, detail ...string) {
	res := errorRes{Error: code}
	if len(detail) > 0 {
		res.Detail = detail[0]
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(res)
}

// ------------------------------- debug -------------------------------------

func (s *Server) handleWordStats(w http.ResponseWriter, r *http.Request) {
	if s.opts.WordStats == nil {
		_ = json.NewEncoder(w).Encode(map[string]int{})
		return
	}
	stats, err := s.opts.WordStats(r.Context())
	if err != nil {
		writeErr(w, http.StatusInternalServerError, "stats_failed")
		return
	}
	_ = json.NewEncoder(w).Encode(stats)
}
