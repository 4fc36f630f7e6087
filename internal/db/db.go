// internal/db/db.go
//
// SQLite helpers for the optional word database.
//   - Open: creates the parent directory and applies connection pragmas.
//   - Migrate: applies *.sql files from an fs.FS once each, in name order,
//     recording them in the _migrations table.

package db

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
)

// dsnParams are appended to every file DSN.
const dsnParams = "?_busy_timeout=5000&_journal_mode=WAL&_foreign_keys=on"

// Open opens path, creating it and its directory when missing.
func Open(path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("db: mkdir %s: %w", dir, err)
		}
	}

	conn, err := sql.Open("sqlite3", path+dsnParams)
	if err != nil {
		return nil, fmt.Errorf("db: open %s: %w", path, err)
	}
	if err := conn.Ping(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("db: ping %s: %w", path, err)
	}
	return conn, nil
}

// Migrate applies every pending *.sql file of fsys. A script that manages its
// own transaction (BEGIN TRANSACTION, or toggling foreign keys) runs as is;
// any other script runs inside a transaction together with its bookkeeping row.
func Migrate(conn *sql.DB, fsys fs.FS) error {
	if _, err := conn.Exec(`CREATE TABLE IF NOT EXISTS _migrations (name TEXT PRIMARY KEY)`); err != nil {
		return fmt.Errorf("db: create _migrations: %w", err)
	}

	names, err := migrationNames(fsys)
	if err != nil {
		return err
	}
	for _, name := range names {
		applied, err := isApplied(conn, name)
		if err != nil {
			return err
		}
		if applied {
			log.Debug().Str("migration", name).Msg("already applied")
			continue
		}

		script, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("db: read %s: %w", name, err)
		}
		if selfManaged(string(script)) {
			err = applyDirect(conn, name, string(script))
		} else {
			err = applyInTx(conn, name, string(script))
		}
		if err != nil {
			return err
		}
		log.Info().Str("migration", name).Msg("applied")
	}
	return nil
}

func migrationNames(fsys fs.FS) ([]string, error) {
	var names []string
	err := fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.EqualFold(filepath.Ext(d.Name()), ".sql") {
			names = append(names, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("db: list migrations: %w", err)
	}
	sort.Strings(names)
	return names, nil
}

func isApplied(conn *sql.DB, name string) (bool, error) {
	var one int
	err := conn.QueryRow(`SELECT 1 FROM _migrations WHERE name=?`, name).Scan(&one)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, sql.ErrNoRows):
		return false, nil
	}
	return false, fmt.Errorf("db: query _migrations: %w", err)
}

func selfManaged(script string) bool {
	upper := strings.ToUpper(script)
	for _, marker := range []string{"BEGIN TRANSACTION", "PRAGMA FOREIGN_KEYS=OFF", "PRAGMA FOREIGN_KEYS = OFF"} {
		if strings.Contains(upper, marker) {
			return true
		}
	}
	return false
}

func applyDirect(conn *sql.DB, name, script string) error {
	if _, err := conn.Exec(script); err != nil {
		return fmt.Errorf("db: apply %s: %w", name, err)
	}
	if _, err := conn.Exec(`INSERT INTO _migrations(name) VALUES (?)`, name); err != nil {
		return fmt.Errorf("db: record %s: %w", name, err)
	}
	return nil
}

func applyInTx(conn *sql.DB, name, script string) error {
	tx, err := conn.Begin()
	if err != nil {
		return fmt.Errorf("db: begin %s: %w", name, err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(script); err != nil {
		return fmt.Errorf("db: apply %s: %w", name, err)
	}
	if _, err := tx.Exec(`INSERT INTO _migrations(name) VALUES (?)`, name); err != nil {
		return fmt.Errorf("db: record %s: %w", name, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("db: commit %s: %w", name, err)
	}
	return nil
}
