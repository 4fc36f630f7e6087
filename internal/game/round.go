// internal/game/round.go
//
// Round engine: the state machine of a single round.
//
//   WaitingForReady --Ready--> WaitingForPlayerGuess
//   WaitingForPlayerGuess --wrong guess | Skip | timeout--> WaitingForPlayerGuess (next row)
//   WaitingForPlayerGuess --attempts exhausted--> WaitingForStealGuess
//   WaitingForPlayerGuess --correct guess--> RoundEnded
//   WaitingForStealGuess --any guess | timeout--> RoundEnded
//
// Ticks: inputs arriving between two Advance calls belong to the tick closed by
// the second call. Every input in a tick is applied, in arrival order, so a
// skip followed by a guess is two transitions in one tick. The timer is the
// only transition that is exclusive: if any input moved the state machine
// during a tick, that tick's Advance leaves the timer alone. An input and a
// timeout therefore never both consume an attempt in one tick. Inputs win.

package game

import (
	"strings"
	"time"
	"unicode/utf8"
)

// Round owns the state of one round. It is not safe for concurrent use; the
// owning Match is driven from a single goroutine.
type Round struct {
	number  int
	target  string
	starter Player
	cfg     Config
	scores  *Scoreboard
	board   BoardSink
	status  StatusSink
	onEnd   func(RoundResult)

	state        State
	current      Player
	attemptsUsed int
	remaining    time.Duration
	rowIndex     int
	row          *Row
	history      []Attempt
	result       *RoundResult
	moved        bool
}

// newRound sets the board up and enters WaitingForReady.
func newRound(number int, target string, starter Player, cfg Config, scores *Scoreboard,
	board BoardSink, status StatusSink, onEnd func(RoundResult)) *Round {
	var first rune
	if cfg.FixedFirstLetter {
		first, _ = utf8.DecodeRuneInString(target)
	}
	length := utf8.RuneCountInString(target)

	r := &Round{
		number:  number,
		target:  target,
		starter: starter,
		cfg:     cfg,
		scores:  scores,
		board:   board,
		status:  status,
		onEnd:   onEnd,
		state:   StateWaitingForReady,
		current: starter,
		row:     NewRow(length, first),
	}

	board.SetupBoard(length, cfg.MaxAttempts, first)
	board.LockInput()
	status.RoundStarted(number, length, starter)
	status.Scores(scores.Totals())
	status.ReadyPhase()
	return r
}

// Ready starts the main phase. Ignored outside WaitingForReady.
func (r *Round) Ready() bool {
	if r.state != StateWaitingForReady {
		return false
	}
	r.state = StateWaitingForPlayerGuess
	r.current = r.starter
	r.remaining = r.cfg.RowTimeLimit
	r.activateRow(0)
	r.board.UnlockInput()
	r.status.MainPhase(r.current, r.attemptsUsed+1, r.remaining)
	r.moved = true
	return true
}

// Submit evaluates a guess for the current phase. Empty guesses, guesses of the
// wrong length and guesses outside an input state are ignored without
// consuming an attempt.
func (r *Round) Submit(guess string) bool {
	if !r.state.AcceptsGuess() {
		return false
	}
	guess = strings.ToUpper(strings.TrimSpace(guess))
	if guess == "" || utf8.RuneCountInString(guess) != utf8.RuneCountInString(r.target) {
		return false
	}

	if r.state == StateWaitingForPlayerGuess {
		r.mainGuess(guess)
	} else {
		r.stealGuess(guess)
	}
	r.moved = true
	return true
}

// Skip forfeits the current main-phase attempt. Nothing is evaluated and no
// feedback is recorded.
func (r *Round) Skip() bool {
	if r.state != StateWaitingForPlayerGuess {
		return false
	}
	r.nextAttempt()
	r.moved = true
	return true
}

// TypeLetter appends c to the active row.
func (r *Round) TypeLetter(c rune) bool {
	if !r.state.AcceptsGuess() || !r.row.Add(c) {
		return false
	}
	r.board.ShowRowLetters(r.rowIndex, r.row.String())
	return true
}

// DeleteLetter removes the last typed letter of the active row.
func (r *Round) DeleteLetter() bool {
	if !r.state.AcceptsGuess() || !r.row.Remove() {
		return false
	}
	r.board.ShowRowLetters(r.rowIndex, r.row.String())
	return true
}

// SubmitRow submits the active row once it is full. A partial row is ignored,
// or skips the attempt in the main phase when EnterSkipsAttempt is set. Before
// the round starts, submitting is the ready signal.
func (r *Round) SubmitRow() bool {
	if r.state == StateWaitingForReady {
		return r.Ready()
	}
	if !r.state.AcceptsGuess() {
		return false
	}
	if !r.row.Full() {
		if r.cfg.EnterSkipsAttempt {
			return r.Skip()
		}
		return false
	}
	return r.Submit(r.row.String())
}

// Advance moves the active timer forward by elapsed and fires its expiry at
// most once.
func (r *Round) Advance(elapsed time.Duration) {
	if r.moved {
		r.moved = false
		return
	}
	switch r.state {
	case StateWaitingForPlayerGuess:
		r.remaining -= elapsed
		r.status.MainTimer(r.current, r.attemptsUsed+1, max(0, r.remaining))
		if r.remaining <= 0 {
			r.nextAttempt()
		}
	case StateWaitingForStealGuess:
		r.remaining -= elapsed
		r.status.StealTimer(r.current, max(0, r.remaining))
		if r.remaining <= 0 {
			r.end(NoPlayer, 0)
		}
	}
}

func (r *Round) mainGuess(guess string) {
	results := Evaluate(r.target, guess)
	r.record(guess, results, false)
	r.board.ShowGuessResult(r.rowIndex, results)

	if IsAllCorrect(results) {
		r.end(r.current, r.cfg.Scoring.Calculate(r.attemptsUsed, true, r.cfg.MaxAttempts))
		return
	}
	r.nextAttempt()
}

func (r *Round) stealGuess(guess string) {
	results := Evaluate(r.target, guess)
	r.record(guess, results, true)
	r.board.ShowGuessResult(r.rowIndex, results)

	if IsAllCorrect(results) {
		r.end(r.current, r.cfg.Scoring.Calculate(r.attemptsUsed, false, r.cfg.MaxAttempts))
		return
	}
	r.end(NoPlayer, 0)
}

// nextAttempt is the shared path of a wrong guess, a skip and a timeout.
func (r *Round) nextAttempt() {
	r.attemptsUsed++
	if r.attemptsUsed >= r.cfg.MaxAttempts {
		r.startSteal()
		return
	}
	r.remaining = r.cfg.RowTimeLimit
	r.activateRow(r.attemptsUsed)
	r.board.UnlockInput()
	r.status.MainPhase(r.current, r.attemptsUsed+1, r.remaining)
}

func (r *Round) startSteal() {
	r.state = StateWaitingForStealGuess
	r.current = r.starter.Other()
	r.rowIndex = r.cfg.MaxAttempts
	r.row.Reset()
	r.remaining = r.cfg.StealTimeLimit
	r.board.OpenStealRow(r.rowIndex)
	r.status.StealPhase(r.current, r.remaining)
	r.board.UnlockInput()
}

func (r *Round) activateRow(i int) {
	r.rowIndex = i
	r.row.Reset()
	r.board.SetActiveRow(i)
}

func (r *Round) record(guess string, results []LetterResult, steal bool) {
	r.history = append(r.history, Attempt{
		Row:     r.rowIndex,
		Player:  r.current,
		Guess:   guess,
		Results: results,
		Steal:   steal,
	})
}

// end enters RoundEnded: input is locked, the word revealed and the owner
// notified so it can schedule the next round.
func (r *Round) end(winner Player, points int) {
	stolen := winner.Valid() && r.state == StateWaitingForStealGuess
	r.state = StateRoundEnded
	r.scores.AddScore(winner, points)

	r.board.LockInput()
	r.status.RevealWord(r.target)
	r.status.Scores(r.scores.Totals())

	r.result = &RoundResult{
		Number:       r.number,
		Target:       r.target,
		Starter:      r.starter,
		Winner:       winner,
		Points:       points,
		Stolen:       stolen,
		AttemptsUsed: r.attemptsUsed,
	}
	if r.onEnd != nil {
		r.onEnd(*r.result)
	}
}

// State returns the current state of the round.
func (r *Round) State() State { return r.state }

// Number is the 1-based round number.
func (r *Round) Number() int { return r.number }

// WordLength is the number of letters in the target.
func (r *Round) WordLength() int { return r.row.Len() }

// Starter is the main-phase player.
func (r *Round) Starter() Player { return r.starter }

// Stealer is the player who gets the steal attempt.
func (r *Round) Stealer() Player { return r.starter.Other() }

// Current is the player expected to act in the current phase.
func (r *Round) Current() Player { return r.current }

// AttemptsUsed counts consumed main-phase attempts.
func (r *Round) AttemptsUsed() int { return r.attemptsUsed }

// Remaining is the time left on the active timer.
func (r *Round) Remaining() time.Duration { return max(0, r.remaining) }

// ActiveRow is the index of the row receiving input.
func (r *Round) ActiveRow() int { return r.rowIndex }

// Typed returns the letters in the active row.
func (r *Round) Typed() string { return r.row.String() }

// History returns the evaluated attempts in order.
func (r *Round) History() []Attempt { return append([]Attempt(nil), r.history...) }

// Revealed returns the target once the round has ended, otherwise "".
func (r *Round) Revealed() string {
	if r.state != StateRoundEnded {
		return ""
	}
	return r.target
}

// Result returns the outcome once the round has ended.
func (r *Round) Result() (RoundResult, bool) {
	if r.result == nil {
		return RoundResult{}, false
	}
	return *r.result, true
}
