package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/lingo/internal/game"
)

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, "5175", cfg.Port)
	assert.Equal(t, 12*time.Hour, cfg.SeatTTL)
	assert.Equal(t, 100*time.Millisecond, cfg.TickInterval)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
	assert.Equal(t, time.Minute, cfg.SweepEvery)
	assert.Equal(t, game.DefaultConfig(), cfg.Game())
}

func TestParse_Overrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("MATCH_ROUND_WORD_LENGTHS", "5,6")
	t.Setenv("MATCH_MAX_ATTEMPTS", "6")
	t.Setenv("MATCH_ROW_TIME_LIMIT", "20s")
	t.Setenv("MATCH_INITIAL_PLAYER", "2")
	t.Setenv("MATCH_FIXED_FIRST_LETTER", "false")
	t.Setenv("MATCH_BASE_SCORE", "50")

	cfg, err := Parse()
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Port)

	g := cfg.Game()
	assert.Equal(t, []int{5, 6}, g.RoundWordLengths)
	assert.Equal(t, 6, g.MaxAttempts)
	assert.Equal(t, 20*time.Second, g.RowTimeLimit)
	assert.Equal(t, game.PlayerTwo, g.InitialPlayer)
	assert.False(t, g.FixedFirstLetter)
	assert.Equal(t, 50, g.Scoring.Base)
	assert.Equal(t, 10, g.Scoring.AttemptBonus)
}

func TestParse_Invalid(t *testing.T) {
	cases := map[string]string{
		"MATCH_MAX_ATTEMPTS":       "0",
		"MATCH_INITIAL_PLAYER":     "3",
		"MATCH_ROW_TIME_LIMIT":     "soon",
		"SEAT_TTL":                 "-1h",
		"MATCH_ROUND_END_DELAY":    "-1s",
		"MATCH_ROUND_WORD_LENGTHS": "5,2000",
		"SESSION_IDLE_TTL":         "-1m",
	}
	for key, val := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, val)
			_, err := Parse()
			assert.Error(t, err)
		})
	}
}

func TestLoad_DotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("WORDS_SALT=from_file\n"), 0o644))
	t.Setenv("WORDS_SALT", "") // restores the variable afterwards
	require.NoError(t, os.Unsetenv("WORDS_SALT"))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from_file", cfg.WordsSalt)
}
