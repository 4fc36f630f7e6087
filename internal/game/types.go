// internal/game/types.go
//
// Core type definitions for the Lingo round engine.
// Defines:
//   - Player: seat identity (1 or 2).
//   - Feedback / LetterResult: per-letter evaluation of a guess.
//   - State: the round/match state machine states.
//   - Attempt / RoundResult: what a round records and reports.

package game

import "fmt"

// Player identifies one of the two seats in a match.
type Player int

const (
	NoPlayer  Player = 0
	PlayerOne Player = 1
	PlayerTwo Player = 2
)

// Other returns the opposing seat. NoPlayer has no opponent.
func (p Player) Other() Player {
	switch p {
	case PlayerOne:
		return PlayerTwo
	case PlayerTwo:
		return PlayerOne
	}
	return NoPlayer
}

// Valid reports whether p is seat 1 or 2.
func (p Player) Valid() bool { return p == PlayerOne || p == PlayerTwo }

func (p Player) String() string {
	if !p.Valid() {
		return "none"
	}
	return fmt.Sprintf("P%d", int(p))
}

// Feedback represents the evaluation result for a single letter in a guess.
// None is only a placeholder for letters that have not been submitted yet.
type Feedback string

const (
	FeedbackNone    Feedback = ""
	FeedbackCorrect Feedback = "correct"
	FeedbackPresent Feedback = "present"
	FeedbackAbsent  Feedback = "absent"
)

// LetterResult pairs a guessed letter with its feedback.
type LetterResult struct {
	Letter   rune     `json:"letter"`
	Feedback Feedback `json:"feedback"`
}

// State is a node of the round/match state machine.
type State string

const (
	StateWaitingForReady       State = "waiting_for_ready"
	StateWaitingForPlayerGuess State = "waiting_for_player_guess"
	StateWaitingForStealGuess  State = "waiting_for_steal_guess"
	StateRoundEnded            State = "round_ended"
	StateGameEnded             State = "game_ended"
)

func (s State) String() string { return string(s) }

// AcceptsGuess reports whether guesses and row input are taken in s.
func (s State) AcceptsGuess() bool {
	return s == StateWaitingForPlayerGuess || s == StateWaitingForStealGuess
}

// Attempt is one evaluated guess. Skipped and timed-out attempts leave no
// Attempt behind.
type Attempt struct {
	Row     int            `json:"row"`
	Player  Player         `json:"player"`
	Guess   string         `json:"guess"`
	Results []LetterResult `json:"results"`
	Steal   bool           `json:"steal"`
}

// RoundResult summarizes a finished round.
type RoundResult struct {
	Number       int    `json:"number"`
	Target       string `json:"target"`
	Starter      Player `json:"starter"`
	Winner       Player `json:"winner"` // NoPlayer when nobody solved it
	Points       int    `json:"points"`
	Stolen       bool   `json:"stolen"`
	AttemptsUsed int    `json:"attemptsUsed"`
}
