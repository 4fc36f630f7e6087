package display_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/lingo/internal/display"
	"github.com/robalobadob/lingo/internal/game"
)

func newViewMatch(t *testing.T, sinks display.Sink) *game.Match {
	t.Helper()
	cfg := game.DefaultConfig()
	cfg.RoundWordLengths = []int{5}
	cfg.MaxAttempts = 2
	m, err := game.NewMatch(cfg, game.WordSourceFunc(func(int) string { return "CRANE" }), sinks, sinks)
	require.NoError(t, err)
	return m
}

func TestView_RoundLifecycle(t *testing.T) {
	v := display.NewView()
	v.SetPlayerNames("Ann", "")
	m := newViewMatch(t, v)

	s := v.Snapshot()
	assert.Equal(t, display.PhaseIdle, s.Phase)
	assert.Equal(t, -1, s.StealRow)
	assert.True(t, s.InputLocked)

	m.Start()
	s = v.Snapshot()
	assert.Equal(t, display.PhaseReady, s.Phase)
	assert.Equal(t, "Round: 1\nWord: 5 letters | Starter: Ann | Steal: P2\nPress READY to start.", s.RoundText)
	assert.Equal(t, "Ann: 0  |  P2: 0", s.ScoreText)
	require.Len(t, s.Rows, 2)
	assert.Equal(t, display.Cell{Letter: "C", Locked: true}, s.Rows[0][0])
	assert.True(t, s.InputLocked)

	m.Ready()
	s = v.Snapshot()
	assert.Equal(t, display.PhaseMain, s.Phase)
	assert.False(t, s.InputLocked)
	assert.Equal(t, "Ann | Attempt 1 | Time: 30s", s.TimerText)

	m.Advance(0)
	m.Advance(10*time.Second + 500*time.Millisecond)
	assert.Equal(t, "Ann | Attempt 1 | Time: 20s", v.Snapshot().TimerText, "seconds round up")

	m.TypeLetter('R')
	assert.Equal(t, "R", v.Snapshot().Rows[0][1].Letter)

	m.SubmitGuess("CRANK")
	s = v.Snapshot()
	assert.Equal(t, game.FeedbackCorrect, s.Rows[0][0].Feedback)
	assert.Equal(t, game.FeedbackAbsent, s.Rows[0][4].Feedback)
	assert.Equal(t, "K", s.Rows[0][4].Letter)
	assert.Equal(t, 1, s.ActiveRow)
	assert.Equal(t, "Ann | Attempt 2 | Time: 30s", s.TimerText)

	m.Skip()
	s = v.Snapshot()
	assert.Equal(t, display.PhaseSteal, s.Phase)
	assert.Equal(t, 2, s.StealRow)
	assert.Equal(t, 2, s.ActiveRow)
	require.Len(t, s.Rows, 3)
	assert.Equal(t, "STEAL | P2 | Time: 15s", s.TimerText)
	assert.Equal(t, game.PlayerTwo, s.CurrentPlayer)

	m.SubmitGuess("CRANE")
	s = v.Snapshot()
	assert.Equal(t, display.PhaseRoundEnd, s.Phase)
	assert.Equal(t, "Correct Word: CRANE", s.WordText)
	assert.Equal(t, "Ann: 0  |  P2: 100", s.ScoreText)
	assert.True(t, s.InputLocked)

	m.Advance(time.Second)
	s = v.Snapshot()
	assert.True(t, s.GameOver)
	assert.Equal(t, display.PhaseGameOver, s.Phase)
	assert.Equal(t, "GAME OVER\nAnn: 0  |  P2: 100\nReset the match to play again.", s.RoundText)
}

func TestView_SnapshotIsACopy(t *testing.T) {
	v := display.NewView()
	m := newViewMatch(t, v)
	m.Start()

	s := v.Snapshot()
	s.Rows[0][1].Letter = "Z"
	assert.Equal(t, "", v.Snapshot().Rows[0][1].Letter)
}

func TestFanout_LoggerAndView(t *testing.T) {
	var buf bytes.Buffer
	v := display.NewView()
	sinks := display.Fanout{v, display.NewLogger(zerolog.New(&buf).Level(zerolog.InfoLevel))}
	m := newViewMatch(t, sinks)

	m.Start()
	m.Ready()
	m.SubmitGuess("CRANE")

	assert.Equal(t, "Correct Word: CRANE", v.Snapshot().WordText)
	out := buf.String()
	assert.Contains(t, out, `"message":"round started"`)
	assert.Contains(t, out, `"word":"CRANE"`)
	assert.NotContains(t, out, `"message":"tick"`)
}
