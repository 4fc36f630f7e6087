// Package assets embeds the default word list and the SQL migrations.
package assets

import (
	"embed"
	"io/fs"
)

//go:embed words.json sql/*.sql
var FS embed.FS

// WordsJSON returns the embedded default word list.
func WordsJSON() []byte {
	data, err := FS.ReadFile("words.json")
	if err != nil {
		return nil
	}
	return data
}

// Migrations returns the migration files rooted at sql/.
func Migrations() fs.FS {
	sub, err := fs.Sub(FS, "sql")
	if err != nil {
		return FS
	}
	return sub
}
