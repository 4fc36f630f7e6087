// internal/words/words.go
//
// Provides word list management for the round engine.
//
// Responsibilities:
//   - Load word lists from a JSON file or fall back to the embedded default.
//   - Bucket words by letter count for GetWordByLength-style lookups.
//   - Supply a deterministic placeholder when no word of a length exists.
//
// JSON format (keys are informational; words are bucketed by actual length):
//   {"fourLetters": [...], "fiveLetters": [...], "sixLetters": [...], "words": [...]}
//
// Constraints:
//   • Words are trimmed and uppercased; anything with a non-letter is dropped.
//   • Duplicates are kept once.

package words

import (
	"crypto/rand"
	"encoding/json"
	"fmt"
	"math/big"
	"os"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/robalobadob/lingo/assets"
)

// placeholderPattern is cycled to build fallback words of any length.
const placeholderPattern = "TEST"

// listFile mirrors the on-disk JSON layout.
type listFile struct {
	FourLetters []string `json:"fourLetters"`
	FiveLetters []string `json:"fiveLetters"`
	SixLetters  []string `json:"sixLetters"`
	Words       []string `json:"words"`
}

// Lists is an in-memory word source bucketed by length.
// It is read-only after construction and safe for concurrent use.
type Lists struct {
	byLength map[int][]string
}

// Load reads lists from path, or from the embedded default when path is empty.
func Load(path string) (*Lists, error) {
	if path == "" {
		return Parse(assets.WordsJSON())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("words: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes the JSON list format.
func Parse(data []byte) (*Lists, error) {
	var f listFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("words: parse: %w", err)
	}
	l := New(f.FourLetters, f.FiveLetters, f.SixLetters, f.Words)
	if l.Len() == 0 {
		return nil, fmt.Errorf("words: list is empty")
	}
	return l, nil
}

// New builds Lists from any number of word slices.
func New(lists ...[]string) *Lists {
	l := &Lists{byLength: make(map[int][]string)}
	seen := make(map[string]struct{})
	for _, list := range lists {
		for _, raw := range list {
			w, ok := Normalize(raw)
			if !ok {
				continue
			}
			if _, dup := seen[w]; dup {
				continue
			}
			seen[w] = struct{}{}
			n := utf8.RuneCountInString(w)
			l.byLength[n] = append(l.byLength[n], w)
		}
	}
	return l
}

// WordByLength returns a cryptographically random word of exactly length
// letters, or the placeholder if none is loaded.
func (l *Lists) WordByLength(length int) string {
	list := l.byLength[length]
	if len(list) == 0 {
		return Placeholder(length)
	}
	return list[randomIndex(len(list))]
}

// Bucket returns the words of one length.
func (l *Lists) Bucket(length int) []string {
	return append([]string(nil), l.byLength[length]...)
}

// All returns every loaded word, shortest first.
func (l *Lists) All() []string {
	var out []string
	for _, n := range l.Lengths() {
		out = append(out, l.byLength[n]...)
	}
	return out
}

// Lengths returns the available word lengths in ascending order.
func (l *Lists) Lengths() []int {
	out := make([]int, 0, len(l.byLength))
	for n := range l.byLength {
		out = append(out, n)
	}
	sort.Ints(out)
	return out
}

// Stats returns word counts keyed by length.
func (l *Lists) Stats() map[int]int {
	out := make(map[int]int, len(l.byLength))
	for n, list := range l.byLength {
		out[n] = len(list)
	}
	return out
}

// Len is the total number of words.
func (l *Lists) Len() int {
	total := 0
	for _, list := range l.byLength {
		total += len(list)
	}
	return total
}

// Normalize trims and uppercases w. ok is false for empty words or words
// containing anything but letters.
func Normalize(w string) (string, bool) {
	w = strings.ToUpper(strings.TrimSpace(w))
	if w == "" {
		return "", false
	}
	for _, r := range w {
		if !unicode.IsLetter(r) {
			return "", false
		}
	}
	return w, true
}

// Placeholder returns the fixed fallback word of length letters ("TEST" for 4).
func Placeholder(length int) string {
	length = max(1, length)
	var b strings.Builder
	for i := 0; i < length; i++ {
		b.WriteByte(placeholderPattern[i%len(placeholderPattern)])
	}
	return b.String()
}

// randomIndex returns a crypto-random index in [0, n).
func randomIndex(n int) int {
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0
	}
	return int(nBig.Int64())
}
