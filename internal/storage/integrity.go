package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"

	"github.com/Veraticus/tastemood/internal/common"
	"github.com/mattn/go-sqlite3"
)

// sidecarSuffixes are the files SQLite keeps next to the main database.
var sidecarSuffixes = []string{"-wal", "-shm", "-journal"}

// checkIntegrity reports whether dbPath is a usable sentiment store: a valid
// SQLite file that passes quick_check and, when the sentiments table exists,
// exposes the expected columns. Damage is reported as
// common.ErrDatabaseCorrupted; anything else (locks, permissions) is returned
// unchanged so the caller does not discard a healthy file.
func checkIntegrity(ctx context.Context, dbPath string) error {
	db, err := sql.Open("sqlite3", dbPath+"?_busy_timeout=5000")
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() { _ = db.Close() }()

	var result string
	if err := db.QueryRowContext(ctx, "PRAGMA quick_check").Scan(&result); err != nil {
		return classifyOpenError(err)
	}
	if result != "ok" {
		return fmt.Errorf("%w: quick_check reported %q", common.ErrDatabaseCorrupted, result)
	}

	var tables int
	err = db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'sentiments'`,
	).Scan(&tables)
	if err != nil {
		return classifyOpenError(err)
	}
	if tables == 0 {
		return nil
	}

	rows, err := db.QueryContext(ctx,
		`SELECT id, text, sentiment_label, sentiment_score, timestamp FROM sentiments LIMIT 1`)
	if err != nil {
		return fmt.Errorf("%w: sentiments table does not match schema: %v", common.ErrDatabaseCorrupted, err)
	}
	return rows.Close()
}

func classifyOpenError(err error) error {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code {
		case sqlite3.ErrNotADB, sqlite3.ErrCorrupt:
			return fmt.Errorf("%w: %v", common.ErrDatabaseCorrupted, err)
		}
	}
	return fmt.Errorf("failed to read database: %w", err)
}

// discardDatabase removes the database file and its sidecar files.
func discardDatabase(dbPath string) error {
	paths := append([]string{dbPath}, sidecarPaths(dbPath)...)
	for _, p := range paths {
		if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to remove %s: %w", p, err)
		}
	}
	return nil
}

func sidecarPaths(dbPath string) []string {
	out := make([]string, 0, len(sidecarSuffixes))
	for _, suffix := range sidecarSuffixes {
		out = append(out, dbPath+suffix)
	}
	return out
}
