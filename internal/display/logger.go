// internal/display/logger.go
//
// A board and status sink that writes every event to zerolog. Used next to
// the View so each match leaves a trace in the server log.

package display

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/robalobadob/lingo/internal/game"
)

// Logger writes sink events to a zerolog logger. Timer ticks go to trace so
// they stay out of normal logs.
type Logger struct {
	log zerolog.Logger
}

// NewLogger returns a sink logging through l.
func NewLogger(l zerolog.Logger) *Logger { return &Logger{log: l} }

func (l *Logger) SetupBoard(wordLength, maxAttempts int, firstLetter rune) {
	ev := l.log.Debug().Int("wordLength", wordLength).Int("maxAttempts", maxAttempts)
	if firstLetter != 0 {
		ev = ev.Str("firstLetter", string(firstLetter))
	}
	ev.Msg("board set up")
}

func (l *Logger) SetActiveRow(row int) {
	l.log.Debug().Int("row", row).Msg("row activated")
}

func (l *Logger) OpenStealRow(row int) {
	l.log.Debug().Int("row", row).Msg("steal row opened")
}

func (l *Logger) ShowRowLetters(row int, letters string) {
	l.log.Trace().Int("row", row).Str("letters", letters).Msg("row typed")
}

func (l *Logger) ShowGuessResult(row int, results []game.LetterResult) {
	marks := make([]string, len(results))
	for i, r := range results {
		marks[i] = string(r.Feedback)
	}
	l.log.Debug().Int("row", row).Strs("feedback", marks).Msg("guess evaluated")
}

func (l *Logger) LockInput()   {}
func (l *Logger) UnlockInput() {}

func (l *Logger) RoundStarted(round, wordLength int, starter game.Player) {
	l.log.Info().Int("round", round).Int("wordLength", wordLength).
		Stringer("starter", starter).Msg("round started")
}

func (l *Logger) ReadyPhase() {}

func (l *Logger) MainPhase(player game.Player, attempt int, remaining time.Duration) {
	l.log.Debug().Stringer("player", player).Int("attempt", attempt).
		Dur("remaining", remaining).Msg("main phase")
}

func (l *Logger) StealPhase(player game.Player, remaining time.Duration) {
	l.log.Info().Stringer("player", player).Dur("remaining", remaining).Msg("steal phase")
}

func (l *Logger) MainTimer(player game.Player, attempt int, remaining time.Duration) {
	l.log.Trace().Stringer("player", player).Int("attempt", attempt).Dur("remaining", remaining).Msg("tick")
}

func (l *Logger) StealTimer(player game.Player, remaining time.Duration) {
	l.log.Trace().Stringer("player", player).Dur("remaining", remaining).Msg("tick")
}

func (l *Logger) Scores(player1, player2 int) {
	l.log.Debug().Int("p1", player1).Int("p2", player2).Msg("scores")
}

func (l *Logger) RevealWord(word string) {
	l.log.Info().Str("word", word).Msg("word revealed")
}

func (l *Logger) GameEnded(player1, player2 int) {
	l.log.Info().Int("p1", player1).Int("p2", player2).Msg("game ended")
}
