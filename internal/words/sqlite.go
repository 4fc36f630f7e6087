package words

import (
	"context"
	"database/sql"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog/log"
)

// lookupTimeout bounds a single word query.
const lookupTimeout = 2 * time.Second

// SQLite serves words from the `words` table (see assets/sql).
type SQLite struct {
	db *sql.DB
}

// NewSQLite wraps an open, migrated database.
func NewSQLite(db *sql.DB) *SQLite {
	return &SQLite{db: db}
}

// Seed inserts words, ignoring ones already present. Returns the number of
// rows added.
func (s *SQLite) Seed(ctx context.Context, list []string) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("seed words: begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `INSERT OR IGNORE INTO words(word, length) VALUES (?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("seed words: prepare: %w", err)
	}
	defer stmt.Close()

	added := 0
	for _, raw := range list {
		w, ok := Normalize(raw)
		if !ok {
			continue
		}
		res, err := stmt.ExecContext(ctx, w, utf8.RuneCountInString(w))
		if err != nil {
			return added, fmt.Errorf("seed words: insert %s: %w", w, err)
		}
		if n, err := res.RowsAffected(); err == nil {
			added += int(n)
		}
	}
	if err := tx.Commit(); err != nil {
		return added, fmt.Errorf("seed words: commit: %w", err)
	}
	return added, nil
}

// WordByLength returns a random stored word of length letters. Any database
// failure degrades to the placeholder.
func (s *SQLite) WordByLength(length int) string {
	ctx, cancel := context.WithTimeout(context.Background(), lookupTimeout)
	defer cancel()

	var w string
	err := s.db.QueryRowContext(ctx,
		`SELECT word FROM words WHERE length=? ORDER BY RANDOM() LIMIT 1`, length,
	).Scan(&w)
	if err != nil {
		if err != sql.ErrNoRows {
			log.Warn().Err(err).Int("length", length).Msg("word lookup failed")
		}
		return Placeholder(length)
	}
	if n, ok := Normalize(w); ok && utf8.RuneCountInString(n) == length {
		return n
	}
	log.Warn().Str("word", w).Int("length", length).Msg("malformed word row")
	return Placeholder(length)
}

// Stats returns word counts keyed by length.
func (s *SQLite) Stats(ctx context.Context) (map[int]int, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT length, COUNT(1) FROM words GROUP BY length`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[int]int)
	for rows.Next() {
		var n, c int
		if err := rows.Scan(&n, &c); err != nil {
			return nil, err
		}
		out[n] = c
	}
	return out, rows.Err()
}
