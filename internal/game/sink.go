// internal/game/sink.go
//
// Output ports of the engine. The core only ever calls into these; it never
// reads presentation state back. Implementations live in internal/display.

package game

import "time"

//go:generate mockgen -package=mocks -destination=mocks/mock_sink.go github.com/robalobadob/lingo/internal/game BoardSink,StatusSink,WordSource

// BoardSink receives letter-grid updates.
type BoardSink interface {
	// SetupBoard lays out maxAttempts empty rows of wordLength cells. A
	// non-zero firstLetter is shown locked in column 0 of every row.
	SetupBoard(wordLength, maxAttempts int, firstLetter rune)
	// SetActiveRow makes row the input row and clears its typed letters.
	SetActiveRow(row int)
	// OpenStealRow appends the steal row at index row and activates it.
	OpenStealRow(row int)
	// ShowRowLetters displays the letters typed so far in row.
	ShowRowLetters(row int, letters string)
	// ShowGuessResult paints the evaluated guess into row.
	ShowGuessResult(row int, results []LetterResult)
	LockInput()
	UnlockInput()
}

// StatusSink receives round, timer and score updates.
type StatusSink interface {
	RoundStarted(round, wordLength int, starter Player)
	ReadyPhase()
	MainPhase(player Player, attempt int, remaining time.Duration)
	StealPhase(player Player, remaining time.Duration)
	MainTimer(player Player, attempt int, remaining time.Duration)
	StealTimer(player Player, remaining time.Duration)
	Scores(player1, player2 int)
	RevealWord(word string)
	GameEnded(player1, player2 int)
}

// WordSource supplies round targets. Implementations must return an uppercase
// word of exactly length letters and fall back to a placeholder rather than fail.
type WordSource interface {
	WordByLength(length int) string
}

// WordSourceFunc adapts a function to WordSource.
type WordSourceFunc func(length int) string

func (f WordSourceFunc) WordByLength(length int) string { return f(length) }

// Discard is a BoardSink and StatusSink that ignores every event.
var Discard discard

type discard struct{}

func (discard) SetupBoard(int, int, rune) {}
func (discard) SetActiveRow(int) {}
func (discard) OpenStealRow(int) {}
func (discard) ShowRowLetters(int, string) {}
func (discard) ShowGuessResult(int, []LetterResult) {}
func (discard) LockInput() {}
func (discard) UnlockInput() {}
func (discard) RoundStarted(int, int, Player) {}
func (discard) ReadyPhase() {}
func (discard) MainPhase(Player, int, time.Duration) {}
func (discard) StealPhase(Player, time.Duration) {}
func (discard) MainTimer(Player, int, time.Duration) {}
func (discard) StealTimer(Player, time.Duration) {}
func (discard) Scores(int, int) {}
func (discard) RevealWord(string) {}
func (discard) GameEnded(int, int) {}
