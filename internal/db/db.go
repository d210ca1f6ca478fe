package db

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"
)

// BusyTimeoutMillis bounds how long a writer waits on a locked database.
const BusyTimeoutMillis = 5000

// Applied to every pooled connection through the DSN.
var pragmas = []string{
	"journal_mode(WAL)",
	fmt.Sprintf("busy_timeout(%d)", BusyTimeoutMillis),
	"synchronous(NORMAL)",
}

// DSN returns the modernc sqlite data source name for dbPath.
func DSN(dbPath string) string {
	params := make([]string, 0, len(pragmas))
	for _, p := range pragmas {
		params = append(params, "_pragma="+p)
	}
	return "file:" + dbPath + "?" + strings.Join(params, "&")
}

// Open opens the SQLite file at dbPath, creating its directory if needed,
// and checks connectivity.
func Open(ctx context.Context, dbPath string) (*sql.DB, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	conn, err := sql.Open("sqlite", DSN(dbPath))
	if err != nil {
		return nil, fmt.Errorf("open sqlite database %q: %w", dbPath, err)
	}

	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("ping sqlite database %q: %w", dbPath, err)
	}

	return conn, nil
}
