// internal/game/match.go
//
// Match controller: owns the sequence of rounds, starting-player rotation,
// cumulative scores and game-end detection, and drives one Round at a time.
//
// The only deferred transition in the system lives here: when a round ends
// the match waits RoundEndDelay worth of Advance time before starting the next
// round. Reset and Close cancel that pending advance.

package game

import (
	"time"
	"unicode/utf8"

	"github.com/robalobadob/lingo/internal/words"
)

// Match is the aggregate a front end owns. It is not safe for concurrent use;
// serialize inputs and ticks onto one goroutine (see internal/session).
type Match struct {
	cfg    Config
	words  WordSource
	board  BoardSink
	status StatusSink

	scores     Scoreboard
	roundIndex int
	starter    Player
	round      *Round
	results    []RoundResult
	ended      bool
	closed     bool

	pending *pendingAdvance
}

// pendingAdvance is the scheduled RoundEnded -> next round transition.
type pendingAdvance struct {
	remaining time.Duration
}

// NewMatch validates cfg and builds a match that has not started yet.
func NewMatch(cfg Config, source WordSource, board BoardSink, status StatusSink) (*Match, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if board == nil {
		board = Discard
	}
	if status == nil {
		status = Discard
	}
	return &Match{
		cfg:     cfg.clone(),
		words:   source,
		board:   board,
		status:  status,
		starter: cfg.InitialPlayer,
	}, nil
}

// Start enters the first round.
func (m *Match) Start() {
	if m.round != nil || m.ended || m.closed {
		return
	}
	m.StartNewRound()
}

// StartNewRound ends the match once every configured round has been played,
// otherwise fetches a target and enters the round's WaitingForReady state.
func (m *Match) StartNewRound() {
	if m.closed {
		return
	}
	m.pending = nil
	if m.roundIndex >= len(m.cfg.RoundWordLengths) {
		m.endGame()
		return
	}

	length := max(1, m.cfg.RoundWordLengths[m.roundIndex])
	target := m.targetWord(length)
	m.round = newRound(m.roundIndex+1, target, m.starter, m.cfg, &m.scores, m.board, m.status, m.roundEnded)
}

// AdvanceAfterRound moves to the next round index, hands the start to the
// other player and starts the round.
func (m *Match) AdvanceAfterRound() {
	if m.closed || m.ended {
		return
	}
	m.roundIndex++
	m.starter = m.starter.Other()
	m.StartNewRound()
}

// Advance feeds elapsed time to the active timer, or to the pending round
// advance while a finished round is on display.
func (m *Match) Advance(elapsed time.Duration) {
	if m.closed || m.ended || m.round == nil {
		return
	}
	if m.pending != nil {
		m.pending.remaining -= elapsed
		if m.pending.remaining <= 0 {
			m.AdvanceAfterRound()
		}
		return
	}
	m.round.Advance(elapsed)
}

// Ready forwards the ready signal to the current round.
func (m *Match) Ready() bool {
	if r := m.activeRound(); r != nil {
		return r.Ready()
	}
	return false
}

// SubmitGuess forwards a whole-word guess to the current round.
func (m *Match) SubmitGuess(guess string) bool {
	if r := m.activeRound(); r != nil {
		return r.Submit(guess)
	}
	return false
}

// Skip forfeits the current main-phase attempt.
func (m *Match) Skip() bool {
	if r := m.activeRound(); r != nil {
		return r.Skip()
	}
	return false
}

// TypeLetter adds a letter to the active row.
func (m *Match) TypeLetter(c rune) bool {
	if r := m.activeRound(); r != nil {
		return r.TypeLetter(c)
	}
	return false
}

// DeleteLetter removes the last typed letter.
func (m *Match) DeleteLetter() bool {
	if r := m.activeRound(); r != nil {
		return r.DeleteLetter()
	}
	return false
}

// SubmitRow submits the typed row.
func (m *Match) SubmitRow() bool {
	if r := m.activeRound(); r != nil {
		return r.SubmitRow()
	}
	return false
}

// Reset cancels any pending advance and restarts the match from round one with
// zero scores.
func (m *Match) Reset() {
	if m.closed {
		return
	}
	m.pending = nil
	m.scores = Scoreboard{}
	m.roundIndex = 0
	m.starter = m.cfg.InitialPlayer
	m.round = nil
	m.results = nil
	m.ended = false
	m.StartNewRound()
}

// Close tears the match down. The pending round advance is cancelled and every
// later call is a no-op.
func (m *Match) Close() {
	m.pending = nil
	m.closed = true
	m.board.LockInput()
}

// State is GameEnded once the match is over, otherwise the round's state.
func (m *Match) State() State {
	if m.ended {
		return StateGameEnded
	}
	if m.round == nil {
		return StateWaitingForReady
	}
	return m.round.State()
}

// Round returns the current round, nil before Start.
func (m *Match) Round() *Round { return m.round }

// RoundNumber is the 1-based index of the current round.
func (m *Match) RoundNumber() int { return m.roundIndex + 1 }

// RoundCount is the number of configured rounds.
func (m *Match) RoundCount() int { return len(m.cfg.RoundWordLengths) }

// Starter is the starting player of the current round.
func (m *Match) Starter() Player { return m.starter }

// Scores returns both cumulative scores in seat order.
func (m *Match) Scores() (int, int) { return m.scores.Totals() }

// Leader is the player ahead on points, NoPlayer on a tie.
func (m *Match) Leader() Player { return m.scores.Leader() }

// Results lists finished rounds in order.
func (m *Match) Results() []RoundResult { return append([]RoundResult(nil), m.results...) }

// AdvancePending reports whether a round advance is scheduled.
func (m *Match) AdvancePending() bool { return m.pending != nil }

// Config returns the match configuration.
func (m *Match) Config() Config { return m.cfg.clone() }

// Ended reports whether the match reached GameEnded.
func (m *Match) Ended() bool { return m.ended }

// Closed reports whether the match was torn down.
func (m *Match) Closed() bool { return m.closed }

func (m *Match) activeRound() *Round {
	if m.closed || m.ended || m.pending != nil {
		return nil
	}
	return m.round
}

func (m *Match) roundEnded(res RoundResult) {
	m.results = append(m.results, res)
	m.pending = &pendingAdvance{remaining: m.cfg.RoundEndDelay}
}

func (m *Match) endGame() {
	m.ended = true
	m.board.LockInput()
	m.status.GameEnded(m.scores.Totals())
}

// targetWord asks the source for a word and falls back to the placeholder when
// the source is missing or returns something unusable.
func (m *Match) targetWord(length int) string {
	if m.words != nil {
		if w, ok := words.Normalize(m.words.WordByLength(length)); ok && utf8.RuneCountInString(w) == length {
			return w
		}
	}
	return words.Placeholder(length)
}
