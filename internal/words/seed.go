package words

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"strconv"
	"time"
)

// DailySeed is the seed keyword that resolves to today's UTC date key.
const DailySeed = "daily"

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// ResolveSeed expands DailySeed into the date key for now; other seeds are
// returned unchanged.
func ResolveSeed(seed string, now time.Time) string {
	if seed == DailySeed {
		return DateKey(now)
	}
	return seed
}

// SeededIndex returns a deterministic index using HMAC(salt, key) % n.
func SeededIndex(salt, key string, n int) int {
	if n <= 0 {
		return 0
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(key))
	sum := h.Sum(nil)
	// take first 8 bytes to uint64 for modulus distribution
	v := binary.BigEndian.Uint64(sum[:8])
	return int(v % uint64(n))
}

// Seeded picks the same words for the same (salt, seed) pair: the k-th call
// uses key "seed#k". Two matches created with one seed play identical rounds.
// Not safe for concurrent use; each match owns its own Seeded.
type Seeded struct {
	lists *Lists
	salt  string
	seed  string
	calls int
}

// Seeded returns a deterministic source over l.
func (l *Lists) Seeded(salt, seed string) *Seeded {
	return &Seeded{lists: l, salt: salt, seed: seed}
}

// WordByLength returns the next seeded word of length letters.
func (s *Seeded) WordByLength(length int) string {
	s.calls++
	list := s.lists.byLength[length]
	if len(list) == 0 {
		return Placeholder(length)
	}
	key := s.seed + "#" + strconv.Itoa(s.calls)
	return list[SeededIndex(s.salt, key, len(list))]
}
