package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/khoahotran/portfolio-view/pkg/logger"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS portfolio_fragments (
	fragment_key TEXT PRIMARY KEY,
	payload      TEXT NOT NULL,
	updated_at   INTEGER NOT NULL
);`

var sqlitePragmas = []string{
	"PRAGMA journal_mode = WAL",
	"PRAGMA busy_timeout = 10000",
	"PRAGMA synchronous = NORMAL",
}

// NewSQLiteDB opens (creating if needed) the local fragment database.
func NewSQLiteDB(path string, log logger.Logger) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create sqlite directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	// One writer keeps WAL mode and pragmas consistent across connections.
	db.SetMaxOpenConns(1)

	ctx := context.Background()
	for _, p := range sqlitePragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			db.Close()
			return nil, fmt.Errorf("apply %q: %w", p, err)
		}
	}
	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create sqlite schema: %w", err)
	}

	log.Info("Open SQLite fragment store successfully.")
	return db, nil
}
