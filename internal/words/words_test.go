package words_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/lingo/internal/words"
)

func TestLoad_Embedded(t *testing.T) {
	l, err := words.Load("")
	require.NoError(t, err)
	assert.Equal(t, []int{4, 5, 6}, l.Lengths())

	for _, n := range l.Lengths() {
		w := l.WordByLength(n)
		assert.Len(t, w, n)
		norm, ok := words.Normalize(w)
		assert.True(t, ok)
		assert.Equal(t, w, norm, "embedded words are uppercase")
	}
	assert.Contains(t, l.Bucket(5), "CRANE")
	assert.Equal(t, l.Len(), len(l.All()))
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"fiveLetters":["crane"," apple ","CRANE","cr4ne"],"words":["sun"]}`), 0o644))

	l, err := words.Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"CRANE", "APPLE"}, l.Bucket(5))
	assert.Equal(t, []string{"SUN"}, l.Bucket(3), "words are bucketed by actual length")
	assert.Equal(t, map[int]int{3: 1, 5: 2}, l.Stats())
}

func TestLoad_Errors(t *testing.T) {
	_, err := words.Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	_, err = words.Parse([]byte(`{not json`))
	assert.Error(t, err)

	_, err = words.Parse([]byte(`{"fiveLetters":["12345"]}`))
	assert.Error(t, err, "nothing usable")
}

func TestWordByLength_Placeholder(t *testing.T) {
	l := words.New([]string{"CRANE"})
	assert.Equal(t, "TEST", l.WordByLength(4))
	assert.Equal(t, "TESTTE", l.WordByLength(6))
	assert.Equal(t, "CRANE", l.WordByLength(5))
}

func TestPlaceholder(t *testing.T) {
	assert.Equal(t, "T", words.Placeholder(0))
	assert.Equal(t, "TES", words.Placeholder(3))
	assert.Equal(t, "TEST", words.Placeholder(4))
	assert.Equal(t, "TESTT", words.Placeholder(5))
	assert.Equal(t, "TESTTEST", words.Placeholder(8))
}

func TestNormalize(t *testing.T) {
	w, ok := words.Normalize("  crane\n")
	assert.True(t, ok)
	assert.Equal(t, "CRANE", w)

	for _, bad := range []string{"", "   ", "cr ne", "cr-ne", "12345"} {
		_, ok := words.Normalize(bad)
		assert.False(t, ok, bad)
	}
}

func TestSeeded_Deterministic(t *testing.T) {
	l, err := words.Load("")
	require.NoError(t, err)

	a := l.Seeded("salt", "tournament")
	b := l.Seeded("salt", "tournament")
	for _, n := range []int{4, 5, 5, 5, 6} {
		assert.Equal(t, a.WordByLength(n), b.WordByLength(n))
	}

	// Consecutive rounds of one length use different keys.
	c := l.Seeded("salt", "tournament")
	first, second := c.WordByLength(5), c.WordByLength(5)
	assert.Equal(t, l.Seeded("salt", "tournament").WordByLength(5), first)
	assert.Len(t, second, 5)

	assert.Equal(t, "TESTTEST", l.Seeded("salt", "x").WordByLength(8))
}

func TestSeededIndex(t *testing.T) {
	assert.Equal(t, 0, words.SeededIndex("s", "k", 0))
	i := words.SeededIndex("s", "k", 7)
	assert.GreaterOrEqual(t, i, 0)
	assert.Less(t, i, 7)
	assert.Equal(t, i, words.SeededIndex("s", "k", 7))
}

func TestResolveSeed(t *testing.T) {
	now := time.Date(2024, 3, 9, 23, 30, 0, 0, time.FixedZone("X", -2*3600))
	assert.Equal(t, "2024-03-10", words.ResolveSeed(words.DailySeed, now))
	assert.Equal(t, "abc", words.ResolveSeed("abc", now))
	assert.Equal(t, "2024-03-10", words.DateKey(now))
}
