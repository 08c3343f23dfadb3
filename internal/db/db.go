// Package db opens the journal database under the workspace state dir.
package db

import (
	"database/sql"
	"fmt"
	"path/filepath"

	_ "modernc.org/sqlite"

	"huntboard/internal/store"
)

const dbName = "huntboard.db"

// Path returns the journal database path for the workspace.
func Path(workspace string) string {
	return filepath.Join(store.Dir(workspace), dbName)
}

// Open opens the journal database, creating the workspace dir if needed.
func Open(workspace string) (*sql.DB, error) {
	if _, err := store.EnsureWorkspace(workspace); err != nil {
		return nil, err
	}
	dsn := fmt.Sprintf("file:%s?cache=shared&_pragma=foreign_keys(1)", Path(workspace))
	return sql.Open("sqlite", dsn)
}
