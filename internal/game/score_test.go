package game_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/robalobadob/lingo/internal/game"
)

func TestCalculateScore(t *testing.T) {
	assert.Equal(t, 150, game.CalculateScore(0, true, 5))
	assert.Equal(t, 110, game.CalculateScore(4, true, 5))
	assert.Equal(t, 100, game.CalculateScore(5, true, 5))
	assert.Equal(t, 100, game.CalculateScore(9, true, 5), "bonus never goes negative")

	for used := 0; used <= 5; used++ {
		assert.Equal(t, 100, game.CalculateScore(used, false, 5), "steal is flat base")
	}
}

func TestScoreRules_Custom(t *testing.T) {
	rules := game.ScoreRules{Base: 50, AttemptBonus: 5}
	assert.Equal(t, 75, rules.Calculate(1, true, 6))
	assert.Equal(t, 50, rules.Calculate(1, false, 6))
	assert.Equal(t, rules.Calculate(2, true, 6), rules.Calculate(2, true, 6))
}

func TestScoreboard(t *testing.T) {
	var b game.Scoreboard
	assert.Equal(t, game.NoPlayer, b.Leader())

	b.AddScore(game.PlayerOne, 150)
	b.AddScore(game.PlayerTwo, 100)
	b.AddScore(game.PlayerTwo, 0)
	b.AddScore(game.PlayerTwo, -40)
	b.AddScore(game.NoPlayer, 500)

	p1, p2 := b.Totals()
	assert.Equal(t, 150, p1)
	assert.Equal(t, 100, p2)
	assert.Equal(t, 150, b.Score(game.PlayerOne))
	assert.Equal(t, 0, b.Score(game.NoPlayer))
	assert.Equal(t, game.PlayerOne, b.Leader())

	b.AddScore(game.PlayerTwo, 50)
	assert.Equal(t, game.NoPlayer, b.Leader())
}
