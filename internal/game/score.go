// internal/game/score.go
//
// Scoring rules for solved rounds.
//   - A main-phase solve earns the base plus a bonus per unused attempt.
//   - A steal earns the base only.

package game

const (
	DefaultBaseScore    = 100
	DefaultAttemptBonus = 10
)

// ScoreRules holds the scoring constants of a match.
type ScoreRules struct {
	Base         int `json:"base"`
	AttemptBonus int `json:"attemptBonus"`
}

// DefaultScoreRules returns 100 base points and 10 points per unused attempt.
func DefaultScoreRules() ScoreRules {
	return ScoreRules{Base: DefaultBaseScore, AttemptBonus: DefaultAttemptBonus}
}

// Calculate returns the points for a correct guess. A main-phase solve earns
// the base plus a bonus for every attempt left unused; a steal earns the
// base only.
func (s ScoreRules) Calculate(attemptsUsed int, solvedByMainPlayer bool, maxAttempts int) int {
	if !solvedByMainPlayer {
		return s.Base
	}
	return s.Base + max(0, (maxAttempts-attemptsUsed)*s.AttemptBonus)
}

// CalculateScore applies the default rules.
func CalculateScore(attemptsUsed int, solvedByMainPlayer bool, maxAttempts int) int {
	return DefaultScoreRules().Calculate(attemptsUsed, solvedByMainPlayer, maxAttempts)
}

// Scoreboard holds cumulative match scores. Scores only ever grow.
type Scoreboard struct {
	player1 int
	player2 int
}

// AddScore credits points to p. Non-positive amounts and unknown players are ignored.
func (b *Scoreboard) AddScore(p Player, points int) {
	if points <= 0 {
		return
	}
	switch p {
	case PlayerOne:
		b.player1 += points
	case PlayerTwo:
		b.player2 += points
	}
}

// Score returns the score of p.
func (b *Scoreboard) Score(p Player) int {
	switch p {
	case PlayerOne:
		return b.player1
	case PlayerTwo:
		return b.player2
	}
	return 0
}

// Totals returns both scores in seat order.
func (b *Scoreboard) Totals() (int, int) { return b.player1, b.player2 }

// Leader returns the player ahead, or NoPlayer on a tie.
func (b *Scoreboard) Leader() Player {
	switch {
	case b.player1 > b.player2:
		return PlayerOne
	case b.player2 > b.player1:
		return PlayerTwo
	}
	return NoPlayer
}
