// internal/game/config.go
//
// Match configuration: round word lengths, attempt budget, timers, scoring and
// input options. Validate bounds every value so a config coming from a request
// body cannot build an oversized board.

package game

import (
	"errors"
	"fmt"
	"time"
)

// Board bounds accepted by Validate.
const (
	MaxWordLength  = 12
	MaxAttemptsCap = 10
)

// Config is the static, load-time configuration of a match. It is copied into
// the match and never changes while the match runs.
type Config struct {
	RoundWordLengths  []int         // one entry per round
	MaxAttempts       int           // main-phase attempts per round
	RowTimeLimit      time.Duration // time per main-phase attempt
	StealTimeLimit    time.Duration // time for the single steal attempt
	RoundEndDelay     time.Duration // pause between a round ending and the next one
	Scoring           ScoreRules
	InitialPlayer     Player
	FixedFirstLetter  bool // pre-fill and lock the target's first letter
	EnterSkipsAttempt bool // submitting a non-full row skips the attempt
}

// DefaultConfig mirrors the classic five-round setup.
func DefaultConfig() Config {
	return Config{
		RoundWordLengths: []int{4, 5, 5, 5, 6},
		MaxAttempts:      5,
		RowTimeLimit:     30 * time.Second,
		StealTimeLimit:   15 * time.Second,
		RoundEndDelay:    time.Second,
		Scoring:          DefaultScoreRules(),
		InitialPlayer:    PlayerOne,
		FixedFirstLetter: true,
	}
}

// Validate reports the first problem that would make a match unplayable.
func (c Config) Validate() error {
	if len(c.RoundWordLengths) == 0 {
		return errors.New("config: at least one round is required")
	}
	for i, n := range c.RoundWordLengths {
		if n < 1 || n > MaxWordLength {
			return fmt.Errorf("config: round %d word length must be 1..%d, got %d", i+1, MaxWordLength, n)
		}
	}
	if c.MaxAttempts < 1 || c.MaxAttempts > MaxAttemptsCap {
		return fmt.Errorf("config: max attempts must be 1..%d, got %d", MaxAttemptsCap, c.MaxAttempts)
	}
	if c.RowTimeLimit <= 0 || c.StealTimeLimit <= 0 {
		return errors.New("config: time limits must be positive")
	}
	if c.RoundEndDelay < 0 {
		return errors.New("config: round end delay must not be negative")
	}
	if !c.InitialPlayer.Valid() {
		return fmt.Errorf("config: initial player must be 1 or 2, got %d", int(c.InitialPlayer))
	}
	return nil
}

// clone copies the slice so callers cannot mutate a running match's rounds.
func (c Config) clone() Config {
	c.RoundWordLengths = append([]int(nil), c.RoundWordLengths...)
	return c
}
