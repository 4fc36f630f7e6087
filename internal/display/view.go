// internal/display/view.go
//
// View is the presentation model of one match: the letter grid, the status
// panel texts and the scores, assembled purely from sink events. Front ends
// render or serialize Snapshot; they never talk to the engine for display
// state.

package display

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/robalobadob/lingo/internal/game"
)

// Phase names used in snapshots.
const (
	PhaseIdle     = "idle"
	PhaseReady    = "ready"
	PhaseMain     = "main"
	PhaseSteal    = "steal"
	PhaseRoundEnd = "round_end"
	PhaseGameOver = "game_over"
)

// Cell is one letter square.
type Cell struct {
	Letter   string        `json:"letter"`
	Feedback game.Feedback `json:"feedback"`
	Locked   bool          `json:"locked,omitempty"`
}

// Snapshot is a deep copy of the view at one instant.
type Snapshot struct {
	Round            int         `json:"round"`
	WordLength       int         `json:"wordLength"`
	Starter          game.Player `json:"starter"`
	Stealer          game.Player `json:"stealer"`
	Phase            string      `json:"phase"`
	CurrentPlayer    game.Player `json:"currentPlayer"`
	Attempt          int         `json:"attempt"`
	RemainingSeconds int         `json:"remainingSeconds"`
	Rows             [][]Cell    `json:"rows"`
	ActiveRow        int         `json:"activeRow"`
	StealRow         int         `json:"stealRow"`
	InputLocked      bool        `json:"inputLocked"`
	Player1Name      string      `json:"player1Name"`
	Player2Name      string      `json:"player2Name"`
	Player1Score     int         `json:"player1Score"`
	Player2Score     int         `json:"player2Score"`
	RevealedWord     string      `json:"revealedWord,omitempty"`
	RoundText        string      `json:"roundText"`
	TimerText        string      `json:"timerText"`
	ScoreText        string      `json:"scoreText"`
	WordText         string      `json:"wordText"`
	GameOver         bool        `json:"gameOver"`
}

// View implements game.BoardSink and game.StatusSink.
type View struct {
	mu    sync.Mutex
	names [2]string
	first rune
	s     Snapshot
}

// NewView returns an empty view with default player names.
func NewView() *View {
	v := &View{}
	v.SetPlayerNames("", "")
	v.s.Phase = PhaseIdle
	v.s.StealRow = -1
	v.s.InputLocked = true
	return v
}

// SetPlayerNames sets display names; empty names fall back to P1/P2.
func (v *View) SetPlayerNames(p1, p2 string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if p1 == "" {
		p1 = "P1"
	}
	if p2 == "" {
		p2 = "P2"
	}
	v.names = [2]string{p1, p2}
	v.s.Player1Name, v.s.Player2Name = p1, p2
}

// Name returns the display name of p.
func (v *View) Name(p game.Player) string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.name(p)
}

func (v *View) name(p game.Player) string {
	if p == game.PlayerTwo {
		return v.names[1]
	}
	return v.names[0]
}

// Snapshot returns a deep copy of the current view.
func (v *View) Snapshot() Snapshot {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := v.s
	out.Rows = make([][]Cell, len(v.s.Rows))
	for i, row := range v.s.Rows {
		out.Rows[i] = append([]Cell(nil), row...)
	}
	return out
}

// --- BoardSink ---

func (v *View) SetupBoard(wordLength, maxAttempts int, firstLetter rune) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.first = firstLetter
	v.s.WordLength = wordLength
	v.s.Rows = make([][]Cell, 0, maxAttempts+1)
	for i := 0; i < maxAttempts; i++ {
		v.s.Rows = append(v.s.Rows, v.emptyRow())
	}
	v.s.ActiveRow = 0
	v.s.StealRow = -1
}

func (v *View) SetActiveRow(row int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if row < 0 || row >= len(v.s.Rows) {
		return
	}
	v.s.ActiveRow = row
	v.s.Rows[row] = v.emptyRow()
}

func (v *View) OpenStealRow(row int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	for len(v.s.Rows) <= row {
		v.s.Rows = append(v.s.Rows, v.emptyRow())
	}
	v.s.StealRow = row
	v.s.ActiveRow = row
}

func (v *View) ShowRowLetters(row int, letters string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if row < 0 || row >= len(v.s.Rows) {
		return
	}
	cells := v.emptyRow()
	for i, r := range []rune(letters) {
		if i >= len(cells) {
			break
		}
		cells[i].Letter = string(r)
	}
	v.s.Rows[row] = cells
}

func (v *View) ShowGuessResult(row int, results []game.LetterResult) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if row < 0 || row >= len(v.s.Rows) {
		return
	}
	cells := v.s.Rows[row]
	for i := 0; i < len(results) && i < len(cells); i++ {
		cells[i].Letter = string(results[i].Letter)
		cells[i].Feedback = results[i].Feedback
	}
}

func (v *View) LockInput() {
	v.mu.Lock()
	v.s.InputLocked = true
	v.mu.Unlock()
}

func (v *View) UnlockInput() {
	v.mu.Lock()
	v.s.InputLocked = false
	v.mu.Unlock()
}

// --- StatusSink ---

func (v *View) RoundStarted(round, wordLength int, starter game.Player) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.s.Round = round
	v.s.WordLength = wordLength
	v.s.Starter = starter
	v.s.Stealer = starter.Other()
	v.s.CurrentPlayer = starter
	v.s.Attempt = 0
	v.s.RemainingSeconds = 0
	v.s.RevealedWord = ""
	v.s.RoundText = fmt.Sprintf("Round: %d\nWord: %d letters | Starter: %s | Steal: %s\nPress READY to start.",
		round, wordLength, v.name(starter), v.name(starter.Other()))
	v.s.WordText = ""
	v.s.TimerText = ""
}

func (v *View) ReadyPhase() {
	v.mu.Lock()
	v.s.Phase = PhaseReady
	v.mu.Unlock()
}

func (v *View) MainPhase(player game.Player, attempt int, remaining time.Duration) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.s.Phase = PhaseMain
	v.mainTimer(player, attempt, remaining)
}

func (v *View) StealPhase(player game.Player, remaining time.Duration) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.s.Phase = PhaseSteal
	v.stealTimer(player, remaining)
}

func (v *View) MainTimer(player game.Player, attempt int, remaining time.Duration) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.mainTimer(player, attempt, remaining)
}

func (v *View) StealTimer(player game.Player, remaining time.Duration) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.stealTimer(player, remaining)
}

func (v *View) Scores(player1, player2 int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.s.Player1Score, v.s.Player2Score = player1, player2
	v.s.ScoreText = v.scoreLine(player1, player2)
}

func (v *View) RevealWord(word string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.s.Phase = PhaseRoundEnd
	v.s.RevealedWord = word
	v.s.WordText = "Correct Word: " + word
}

func (v *View) GameEnded(player1, player2 int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.s.Phase = PhaseGameOver
	v.s.GameOver = true
	v.s.InputLocked = true
	v.s.Player1Score, v.s.Player2Score = player1, player2
	v.s.ScoreText = v.scoreLine(player1, player2)
	v.s.RoundText = "GAME OVER\n" + v.s.ScoreText + "\nReset the match to play again."
}

func (v *View) mainTimer(player game.Player, attempt int, remaining time.Duration) {
	v.s.CurrentPlayer = player
	v.s.Attempt = attempt
	v.s.RemainingSeconds = ceilSeconds(remaining)
	v.s.TimerText = fmt.Sprintf("%s | Attempt %d | Time: %ds", v.name(player), attempt, v.s.RemainingSeconds)
}

func (v *View) stealTimer(player game.Player, remaining time.Duration) {
	v.s.CurrentPlayer = player
	v.s.RemainingSeconds = ceilSeconds(remaining)
	v.s.TimerText = fmt.Sprintf("STEAL | %s | Time: %ds", v.name(player), v.s.RemainingSeconds)
}

func (v *View) scoreLine(player1, player2 int) string {
	return fmt.Sprintf("%s: %d  |  %s: %d", v.names[0], player1, v.names[1], player2)
}

func (v *View) emptyRow() []Cell {
	cells := make([]Cell, v.s.WordLength)
	if v.first != 0 && len(cells) > 0 {
		cells[0] = Cell{Letter: string(v.first), Locked: true}
	}
	return cells
}

// ceilSeconds rounds up so a timer shows 1s until it actually expires.
func ceilSeconds(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	return int(math.Ceil(d.Seconds()))
}
