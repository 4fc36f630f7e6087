package game_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/lingo/internal/game"
)

func threeRoundConfig() game.Config {
	cfg := game.DefaultConfig()
	cfg.RoundWordLengths = []int{4, 5, 6}
	cfg.RoundEndDelay = 0
	return cfg
}

func TestNewMatch_InvalidConfig(t *testing.T) {
	bad := []func(*game.Config){
		func(c *game.Config) { c.RoundWordLengths = nil },
		func(c *game.Config) { c.MaxAttempts = 0 },
		func(c *game.Config) { c.RowTimeLimit = 0 },
		func(c *game.Config) { c.StealTimeLimit = -time.Second },
		func(c *game.Config) { c.RoundEndDelay = -time.Second },
		func(c *game.Config) { c.InitialPlayer = game.NoPlayer },
		func(c *game.Config) { c.RoundWordLengths = []int{5, 0} },
		func(c *game.Config) { c.RoundWordLengths = []int{game.MaxWordLength + 1} },
		func(c *game.Config) { c.RoundWordLengths = []int{1 << 30} },
		func(c *game.Config) { c.MaxAttempts = game.MaxAttemptsCap + 1 },
		func(c *game.Config) { c.MaxAttempts = 1 << 30 },
	}
	for i, mutate := range bad {
		cfg := game.DefaultConfig()
		mutate(&cfg)
		_, err := game.NewMatch(cfg, nil, nil, nil)
		assert.Error(t, err, "case %d", i)
	}
}

func TestNewMatch_BoundsInclusive(t *testing.T) {
	cfg := game.DefaultConfig()
	cfg.RoundWordLengths = []int{1, game.MaxWordLength}
	cfg.MaxAttempts = game.MaxAttemptsCap
	_, err := game.NewMatch(cfg, nil, nil, nil)
	assert.NoError(t, err)
}

func TestMatch_StarterAlternatesAndGameEnds(t *testing.T) {
	m, err := game.NewMatch(threeRoundConfig(), wordQueue("TEST", "CRANE", "PLANET"), nil, nil)
	require.NoError(t, err)
	m.Start()

	wantStarters := []game.Player{game.PlayerOne, game.PlayerTwo, game.PlayerOne}
	wantTargets := []string{"TEST", "CRANE", "PLANET"}
	for i := range wantStarters {
		require.Equal(t, i+1, m.RoundNumber())
		rd := m.Round()
		assert.Equal(t, wantStarters[i], rd.Starter())
		assert.Equal(t, wantStarters[i].Other(), rd.Stealer())
		assert.Equal(t, len(wantTargets[i]), rd.WordLength())

		require.True(t, m.Ready())
		require.True(t, m.SubmitGuess(wantTargets[i]))
		require.Equal(t, game.StateRoundEnded, m.State())
		m.Advance(100 * time.Millisecond)
	}

	assert.Equal(t, game.StateGameEnded, m.State())
	assert.True(t, m.Ended())
	p1, p2 := m.Scores()
	assert.Equal(t, 300, p1)
	assert.Equal(t, 150, p2)
	assert.Equal(t, game.PlayerOne, m.Leader())

	results := m.Results()
	require.Len(t, results, 3)
	for i, r := range results {
		assert.Equal(t, i+1, r.Number)
		assert.Equal(t, wantTargets[i], r.Target)
		assert.Equal(t, wantStarters[i], r.Winner)
	}

	assert.False(t, m.Ready(), "no input after the game ends")
	m.Advance(time.Minute)
	assert.Equal(t, game.StateGameEnded, m.State())
}

func TestMatch_InitialPlayerTwo(t *testing.T) {
	cfg := threeRoundConfig()
	cfg.InitialPlayer = game.PlayerTwo
	m, err := game.NewMatch(cfg, wordQueue("TEST"), nil, nil)
	require.NoError(t, err)
	m.Start()
	assert.Equal(t, game.PlayerTwo, m.Starter())
	assert.Equal(t, game.PlayerTwo, m.Round().Starter())
}

func TestMatch_RoundEndDelay(t *testing.T) {
	cfg := oneRoundConfig()
	cfg.RoundWordLengths = []int{5, 5}
	cfg.RoundEndDelay = time.Second
	m, err := game.NewMatch(cfg, wordQueue("CRANE"), nil, nil)
	require.NoError(t, err)
	m.Start()
	m.Ready()
	m.SubmitGuess("CRANE")
	require.True(t, m.AdvancePending())

	assert.False(t, m.SubmitGuess("CRANE"), "inputs wait for the next round")
	assert.False(t, m.Ready())

	m.Advance(400 * time.Millisecond)
	m.Advance(400 * time.Millisecond)
	assert.Equal(t, 1, m.RoundNumber())
	assert.Equal(t, game.StateRoundEnded, m.State())

	m.Advance(400 * time.Millisecond)
	assert.False(t, m.AdvancePending())
	assert.Equal(t, 2, m.RoundNumber())
	assert.Equal(t, game.StateWaitingForReady, m.State())
	assert.Equal(t, game.PlayerTwo, m.Starter())
}

func TestMatch_ResetCancelsPendingAdvance(t *testing.T) {
	cfg := threeRoundConfig()
	cfg.RoundEndDelay = time.Second
	m, err := game.NewMatch(cfg, wordQueue("TEST"), nil, nil)
	require.NoError(t, err)
	m.Start()
	m.Ready()
	m.SubmitGuess("TEST")
	require.True(t, m.AdvancePending())

	m.Reset()
	assert.False(t, m.AdvancePending())
	assert.Equal(t, 1, m.RoundNumber())
	assert.Equal(t, game.PlayerOne, m.Starter())
	assert.Equal(t, game.StateWaitingForReady, m.State())
	assert.Empty(t, m.Results())
	p1, p2 := m.Scores()
	assert.Zero(t, p1)
	assert.Zero(t, p2)

	m.Advance(5 * time.Second)
	assert.Equal(t, 1, m.RoundNumber(), "cancelled advance never fires")
	assert.Equal(t, game.StateWaitingForReady, m.State())
}

func TestMatch_ResetAfterGameEnded(t *testing.T) {
	cfg := oneRoundConfig()
	cfg.RoundEndDelay = 0
	m, err := game.NewMatch(cfg, wordQueue("CRANE"), nil, nil)
	require.NoError(t, err)
	m.Start()
	m.Ready()
	m.SubmitGuess("CRANE")
	m.Advance(0)
	require.Equal(t, game.StateGameEnded, m.State())

	m.Reset()
	assert.False(t, m.Ended())
	assert.Equal(t, game.StateWaitingForReady, m.State())
	assert.True(t, m.Ready())
}

func TestMatch_CloseCancelsPendingAdvance(t *testing.T) {
	cfg := threeRoundConfig()
	cfg.RoundEndDelay = time.Second
	m, err := game.NewMatch(cfg, wordQueue("TEST"), nil, nil)
	require.NoError(t, err)
	m.Start()
	m.Ready()
	m.SubmitGuess("TEST")

	m.Close()
	assert.True(t, m.Closed())
	assert.False(t, m.AdvancePending())

	m.Advance(5 * time.Second)
	assert.Equal(t, 1, m.RoundNumber())
	assert.Equal(t, game.StateRoundEnded, m.State())

	m.Reset()
	assert.Equal(t, game.StateRoundEnded, m.State(), "closed matches stay closed")
}

func TestMatch_PlaceholderFallback(t *testing.T) {
	sources := map[string]game.WordSource{
		"nil source":  nil,
		"empty word":  wordQueue(""),
		"wrong size":  wordQueue("CRANES"),
		"non letters": wordQueue("CR4NE"),
	}
	for name, src := range sources {
		t.Run(name, func(t *testing.T) {
			m, err := game.NewMatch(oneRoundConfig(), src, nil, nil)
			require.NoError(t, err)
			m.Start()
			m.Ready()
			require.True(t, m.SubmitGuess("TESTT"))
			assert.Equal(t, "TESTT", m.Round().Revealed())
			res, _ := m.Round().Result()
			assert.Equal(t, game.PlayerOne, res.Winner)
		})
	}
}

func TestMatch_ConfigIsCopied(t *testing.T) {
	cfg := threeRoundConfig()
	m, err := game.NewMatch(cfg, wordQueue("TEST"), nil, nil)
	require.NoError(t, err)

	cfg.RoundWordLengths[0] = 9
	assert.Equal(t, 4, m.Config().RoundWordLengths[0])
	assert.Equal(t, 3, m.RoundCount())
}
