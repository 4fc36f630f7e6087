// internal/session/session.go
//
// A Session is the single owner of one game.Match. Every input and every tick
// is executed on the session's loop goroutine, one at a time, so the match
// itself needs no locking. Front ends talk to the match only through Exec.
//
// Ticks measure real elapsed time with the injected clock and feed it to
// Match.Advance. Closing the session cancels the loop, which tears the match
// down (cancelling any pending round advance) before the loop exits.

package session

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/lingo/internal/common/clock"
	"github.com/robalobadob/lingo/internal/display"
	"github.com/robalobadob/lingo/internal/game"
)

// DefaultTick is the loop period when none is configured.
const DefaultTick = 100 * time.Millisecond

// SessionError is a sentinel error of this package.
type SessionError string

func (e SessionError) Error() string { return string(e) }

const (
	ErrClosed     SessionError = "session closed"
	ErrNilMatch   SessionError = "match cannot be nil"
	ErrNotStarted SessionError = "session not started"
)

// Config configures a session loop.
type Config struct {
	ID    string
	Tick  time.Duration
	Clock clock.Clock
	// Ticks replaces the internal ticker when set; each receive is one tick.
	Ticks <-chan time.Time
}

// State is what front ends see of a match after an operation.
type State struct {
	ID             string             `json:"matchId"`
	State          game.State         `json:"state"`
	RoundNumber    int                `json:"roundNumber"`
	RoundCount     int                `json:"roundCount"`
	Starter        game.Player        `json:"starter"`
	CurrentPlayer  game.Player        `json:"currentPlayer"`
	AttemptsUsed   int                `json:"attemptsUsed"`
	MaxAttempts    int                `json:"maxAttempts"`
	Typed          string             `json:"typed"`
	AdvancePending bool               `json:"advancePending"`
	History        []game.Attempt     `json:"history"`
	Results        []game.RoundResult `json:"results"`
	Leader         game.Player        `json:"leader"`
	View           display.Snapshot   `json:"view"`
}

// Session runs one match.
type Session struct {
	id    string
	match *game.Match
	view  *display.View
	clock clock.Clock
	tick  time.Duration
	ticks <-chan time.Time

	cmds      chan func()
	done      chan struct{}
	mu        sync.Mutex
	cancel    context.CancelFunc
	started   bool
	closeOnce sync.Once

	lastActive atomic.Int64 // unix nanoseconds, see Touch
}

// New wraps match. view may be nil when the caller does not need snapshots.
func New(cfg Config, match *game.Match, view *display.View) (*Session, error) {
	if match == nil {
		return nil, ErrNilMatch
	}
	if cfg.Tick <= 0 {
		cfg.Tick = DefaultTick
	}
	if cfg.Clock == nil {
		cfg.Clock = &clock.DefaultClock{}
	}
	if view == nil {
		view = display.NewView()
	}
	return &Session{
		id:    cfg.ID,
		match: match,
		view:  view,
		clock: cfg.Clock,
		tick:  cfg.Tick,
		ticks: cfg.Ticks,
		cmds:  make(chan func()),
		done:  make(chan struct{}),
	}, nil
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Touch records activity at t. The store uses it to expire idle sessions.
func (s *Session) Touch(t time.Time) { s.lastActive.Store(t.UnixNano()) }

// LastActive is the time of the latest Touch, zero if never touched.
func (s *Session) LastActive() time.Time {
	n := s.lastActive.Load()
	if n == 0 {
		return time.Time{}
	}
	return time.Unix(0, n)
}

// Done is closed once the loop has exited.
func (s *Session) Done() <-chan struct{} { return s.done }

// Start launches the loop and the match's first round. The loop stops when ctx
// is cancelled or Close is called.
func (s *Session) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return
	}
	s.started = true
	ctx, s.cancel = context.WithCancel(ctx)
	go s.run(ctx)
}

// startTicks returns the tick source and the function that stops it.
func (s *Session) startTicks() (<-chan time.Time, func()) {
	if s.ticks != nil {
		return s.ticks, func() {}
	}
	t := time.NewTicker(s.tick)
	return t.C, t.Stop
}

// run is the loop. Ticks only flow while the match can still change over
// time: once it reaches GameEnded the ticker is stopped, and a Reset from
// GameEnded starts it again. Exec is served throughout.
func (s *Session) run(ctx context.Context) {
	defer close(s.done)

	s.match.Start()
	ticks, stop := s.startTicks()
	defer func() { stop() }()
	last := s.clock.Now()
	log.Info().Str("match", s.id).Msg("session started")

	for {
		select {
		case <-ctx.Done():
			s.match.Close()
			log.Info().Str("match", s.id).Msg("session stopped")
			return
		case fn := <-s.cmds:
			fn()
		case <-ticks:
			now := s.clock.Now()
			s.match.Advance(now.Sub(last))
			last = now
		}

		switch {
		case ticks != nil && s.match.Ended():
			stop()
			ticks, stop = nil, func() {}
			log.Debug().Str("match", s.id).Msg("match ended, ticks stopped")
		case ticks == nil && !s.match.Ended() && !s.match.Closed():
			ticks, stop = s.startTicks()
			last = s.clock.Now()
			log.Debug().Str("match", s.id).Msg("ticks resumed")
		}
	}
}

// Exec runs fn on the loop goroutine and returns the state captured right
// after it, in the same loop turn.
func (s *Session) Exec(ctx context.Context, fn func(m *game.Match)) (State, error) {
	s.mu.Lock()
	started := s.started
	s.mu.Unlock()
	if !started {
		return State{}, ErrNotStarted
	}

	var st State
	finished := make(chan struct{})
	cmd := func() {
		if fn != nil {
			fn(s.match)
		}
		st = s.capture()
		close(finished)
	}

	select {
	case s.cmds <- cmd:
	case <-s.done:
		return State{}, ErrClosed
	case <-ctx.Done():
		return State{}, ctx.Err()
	}
	// A received command always runs to completion before the loop can exit.
	<-finished
	return st, nil
}

// Snapshot returns the current state.
func (s *Session) Snapshot(ctx context.Context) (State, error) {
	return s.Exec(ctx, nil)
}

// Close stops the loop and waits for it to exit. Safe to call more than once.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		s.mu.Lock()
		started, cancel := s.started, s.cancel
		s.started = true
		s.mu.Unlock()

		if !started {
			s.match.Close()
			close(s.done)
			return
		}
		cancel()
		<-s.done
	})
}

// capture must run on the loop goroutine.
func (s *Session) capture() State {
	m := s.match
	st := State{
		ID:             s.id,
		State:          m.State(),
		RoundNumber:    min(m.RoundNumber(), m.RoundCount()),
		RoundCount:     m.RoundCount(),
		Starter:        m.Starter(),
		MaxAttempts:    m.Config().MaxAttempts,
		AdvancePending: m.AdvancePending(),
		Results:        m.Results(),
		Leader:         m.Leader(),
		View:           s.view.Snapshot(),
	}
	if r := m.Round(); r != nil {
		st.CurrentPlayer = r.Current()
		st.AttemptsUsed = r.AttemptsUsed()
		st.Typed = r.Typed()
		st.History = r.History()
	}
	return st
}
