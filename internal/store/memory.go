// internal/store/memory.go
//
// In-memory registry of running match sessions.
//
// Characteristics:
//   - Stores *session.Session objects keyed by ID in a map.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - Delete tears the session down; state is lost when the process restarts.
//   - Save and Get touch the session. With an idle TTL, Sweep closes and
//     forgets sessions nobody has touched for that long.

package store

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/lingo/internal/common/clock"
	"github.com/robalobadob/lingo/internal/session"
)

// StoreError is a sentinel error of this package.
type StoreError string

func (e StoreError) Error() string { return string(e) }

const (
	ErrNotFound  StoreError = "not found"
	ErrMissingID StoreError = "session has no id"
)

// Store defines the registry interface for match sessions.
type Store interface {
	// Save adds or replaces a session.
	Save(ctx context.Context, s *session.Session) error

	// Get retrieves a session by ID.
	// Returns ErrNotFound if the session is unknown.
	Get(ctx context.Context, id string) (*session.Session, error)

	// Delete removes a session and closes it.
	Delete(ctx context.Context, id string) error

	// Len is the number of registered sessions.
	Len() int

	// CloseAll closes and forgets every session.
	CloseAll()

	// Sweep closes and forgets idle sessions and reports how many it removed.
	Sweep(ctx context.Context) int
}

// Option configures the memory store.
type Option func(*memory)

// WithIdleTTL expires sessions untouched for ttl. Zero disables expiry.
func WithIdleTTL(ttl time.Duration) Option {
	return func(m *memory) { m.ttl = ttl }
}

// WithClock sets the clock used to stamp activity.
func WithClock(c clock.Clock) Option {
	return func(m *memory) {
		if c != nil {
			m.clock = c
		}
	}
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu       sync.RWMutex                // guards sessions map
	sessions map[string]*session.Session // keyed by Session.ID
	ttl      time.Duration
	clock    clock.Clock
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore(opts ...Option) Store {
	m := &memory{
		sessions: make(map[string]*session.Session),
		clock:    &clock.DefaultClock{},
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Save adds or updates the session in the map. A replaced session is closed.
func (m *memory) Save(ctx context.Context, s *session.Session) error {
	if s.ID() == "" {
		return ErrMissingID
	}
	s.Touch(m.clock.Now())
	m.mu.Lock()
	old := m.sessions[s.ID()]
	m.sessions[s.ID()] = s
	m.mu.Unlock()

	if old != nil && old != s {
		old.Close()
	}
	return nil
}

// Get looks up a session by ID and marks it active.
func (m *memory) Get(ctx context.Context, id string) (*session.Session, error) {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	s.Touch(m.clock.Now())
	return s, nil
}

// Delete removes and closes the session.
func (m *memory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	s, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()

	if !ok {
		return ErrNotFound
	}
	s.Close()
	log.Info().Str("match", id).Msg("session deleted")
	return nil
}

// Len returns the number of sessions.
func (m *memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// CloseAll closes every session and empties the store.
func (m *memory) CloseAll() {
	m.mu.Lock()
	all := m.sessions
	m.sessions = make(map[string]*session.Session)
	m.mu.Unlock()

	for _, s := range all {
		s.Close()
	}
}

// Sweep closes every session idle for at least the TTL.
func (m *memory) Sweep(ctx context.Context) int {
	if m.ttl <= 0 {
		return 0
	}
	now := m.clock.Now()

	var expired []*session.Session
	m.mu.Lock()
	for id, s := range m.sessions {
		if now.Sub(s.LastActive()) >= m.ttl {
			expired = append(expired, s)
			delete(m.sessions, id)
		}
	}
	m.mu.Unlock()

	for _, s := range expired {
		s.Close()
		log.Info().Str("match", s.ID()).Dur("ttl", m.ttl).Msg("idle session expired")
	}
	return len(expired)
}

// RunSweeper calls st.Sweep every interval until ctx is done.
func RunSweeper(ctx context.Context, st Store, every time.Duration) {
	if every <= 0 {
		return
	}
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			st.Sweep(ctx)
		}
	}
}
