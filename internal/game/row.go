// internal/game/row.go
//
// The row being typed: letter entry, backspace, the locked first letter and
// completeness checks before a row may be submitted.

package game

import "unicode"

// Row is the attempt currently being typed. When the round uses a fixed first
// letter, position 0 is pre-filled and can never be edited or deleted.
type Row struct {
	letters []rune
	locked  int
	cursor  int
}

// NewRow returns an empty row of length letters. A non-zero first rune is
// locked into position 0.
func NewRow(length int, first rune) *Row {
	r := &Row{letters: make([]rune, max(1, length))}
	if first != 0 {
		r.letters[0] = unicode.ToUpper(first)
		r.locked = 1
	}
	r.Reset()
	return r
}

// Reset clears every editable position.
func (r *Row) Reset() {
	for i := r.locked; i < len(r.letters); i++ {
		r.letters[i] = 0
	}
	r.cursor = r.locked
}

// Add appends an uppercase letter. Returns false when the row is full or c is
// not a letter.
func (r *Row) Add(c rune) bool {
	if r.Full() || !unicode.IsLetter(c) {
		return false
	}
	r.letters[r.cursor] = unicode.ToUpper(c)
	r.cursor++
	return true
}

// Remove deletes the last typed letter. The locked prefix is never removed.
func (r *Row) Remove() bool {
	if r.cursor <= r.locked {
		return false
	}
	r.cursor--
	r.letters[r.cursor] = 0
	return true
}

// Full reports whether every position holds a letter.
func (r *Row) Full() bool { return r.cursor == len(r.letters) }

// Len is the number of letter positions.
func (r *Row) Len() int { return len(r.letters) }

// String returns the letters typed so far, locked prefix included.
func (r *Row) String() string { return string(r.letters[:r.cursor]) }
