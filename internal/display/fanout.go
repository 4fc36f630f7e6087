// internal/display/fanout.go
//
// Fanout sends each board and status event to several sinks in order.

package display

import (
	"time"

	"github.com/robalobadob/lingo/internal/game"
)

// Sink is a presentation layer that takes both board and status events.
type Sink interface {
	game.BoardSink
	game.StatusSink
}

// Fanout forwards every event to each sink in order.
type Fanout []Sink

func (f Fanout) SetupBoard(wordLength, maxAttempts int, firstLetter rune) {
	for _, s := range f {
		s.SetupBoard(wordLength, maxAttempts, firstLetter)
	}
}

func (f Fanout) SetActiveRow(row int) {
	for _, s := range f {
		s.SetActiveRow(row)
	}
}

func (f Fanout) OpenStealRow(row int) {
	for _, s := range f {
		s.OpenStealRow(row)
	}
}

func (f Fanout) ShowRowLetters(row int, letters string) {
	for _, s := range f {
		s.ShowRowLetters(row, letters)
	}
}

func (f Fanout) ShowGuessResult(row int, results []game.LetterResult) {
	for _, s := range f {
		s.ShowGuessResult(row, results)
	}
}

func (f Fanout) LockInput() {
	for _, s := range f {
		s.LockInput()
	}
}

func (f Fanout) UnlockInput() {
	for _, s := range f {
		s.UnlockInput()
	}
}

func (f Fanout) RoundStarted(round, wordLength int, starter game.Player) {
	for _, s := range f {
		s.RoundStarted(round, wordLength, starter)
	}
}

func (f Fanout) ReadyPhase() {
	for _, s := range f {
		s.ReadyPhase()
	}
}

func (f Fanout) MainPhase(player game.Player, attempt int, remaining time.Duration) {
	for _, s := range f {
		s.MainPhase(player, attempt, remaining)
	}
}

func (f Fanout) StealPhase(player game.Player, remaining time.Duration) {
	for _, s := range f {
		s.StealPhase(player, remaining)
	}
}

func (f Fanout) MainTimer(player game.Player, attempt int, remaining time.Duration) {
	for _, s := range f {
		s.MainTimer(player, attempt, remaining)
	}
}

func (f Fanout) StealTimer(player game.Player, remaining time.Duration) {
	for _, s := range f {
		s.StealTimer(player, remaining)
	}
}

func (f Fanout) Scores(player1, player2 int) {
	for _, s := range f {
		s.Scores(player1, player2)
	}
}

func (f Fanout) RevealWord(word string) {
	for _, s := range f {
		s.RevealWord(word)
	}
}

func (f Fanout) GameEnded(player1, player2 int) {
	for _, s := range f {
		s.GameEnded(player1, player2)
	}
}
