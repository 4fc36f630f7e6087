package db

import (
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_Idempotent(t *testing.T) {
	sqlDB, err := Open(filepath.Join(t.TempDir(), "nested", "test.db"))
	require.NoError(t, err)
	defer sqlDB.Close()

	fsys := fstest.MapFS{
		"002_more.sql":  {Data: []byte(`INSERT INTO things(name) VALUES ('second');`)},
		"001_init.sql":  {Data: []byte(`CREATE TABLE things (name TEXT PRIMARY KEY);`)},
		"README.md":     {Data: []byte(`not a migration`)},
		"003_other.SQL": {Data: []byte(`INSERT INTO things(name) VALUES ('third');`)},
	}

	require.NoError(t, Migrate(sqlDB, fsys))
	require.NoError(t, Migrate(sqlDB, fsys), "second run applies nothing")

	var n int
	require.NoError(t, sqlDB.QueryRow(`SELECT COUNT(1) FROM things`).Scan(&n))
	assert.Equal(t, 2, n)

	require.NoError(t, sqlDB.QueryRow(`SELECT COUNT(1) FROM _migrations`).Scan(&n))
	assert.Equal(t, 3, n)
}

func TestMigrate_SelfManaged(t *testing.T) {
	sqlDB, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer sqlDB.Close()

	fsys := fstest.MapFS{
		"001_tx.sql": {Data: []byte("BEGIN TRANSACTION;\nCREATE TABLE t (id INTEGER);\nCOMMIT;")},
	}
	require.NoError(t, Migrate(sqlDB, fsys))

	var name string
	require.NoError(t, sqlDB.QueryRow(`SELECT name FROM _migrations`).Scan(&name))
	assert.Equal(t, "001_tx.sql", name)
}

func TestMigrate_FailureRollsBack(t *testing.T) {
	sqlDB, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer sqlDB.Close()

	fsys := fstest.MapFS{"001_bad.sql": {Data: []byte(`CREATE TABLE oops (`)}}
	assert.Error(t, Migrate(sqlDB, fsys))

	var n int
	require.NoError(t, sqlDB.QueryRow(`SELECT COUNT(1) FROM _migrations`).Scan(&n))
	assert.Zero(t, n)
}
