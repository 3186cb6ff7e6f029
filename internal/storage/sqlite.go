package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Veraticus/tastemood/internal/common"
	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

const memoryPath = ":memory:"

// SQLiteStorage implements the Storage interface using SQLite.
type SQLiteStorage struct {
	db     *sql.DB
	dbPath string
}

// NewSQLiteStorage opens the database at dbPath without checking or
// migrating it. Most callers want Open.
func NewSQLiteStorage(dbPath string) (*SQLiteStorage, error) {
	// Validate input
	if err := validateString(dbPath, "dbPath"); err != nil {
		return nil, err
	}

	// Ensure directory exists
	if dbPath != memoryPath {
		dir := filepath.Dir(dbPath)
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Every request gets the single connection in turn; SQLite's file
	// locking is the only coordination between writers.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &SQLiteStorage{
		db:     db,
		dbPath: dbPath,
	}, nil
}

// Open verifies the store at dbPath and returns it ready for use.
// A missing store is created with the current schema. A store that cannot be
// read is discarded and recreated empty; that data loss is only logged.
func Open(ctx context.Context, dbPath string) (*SQLiteStorage, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(dbPath, "dbPath"); err != nil {
		return nil, err
	}

	if dbPath != memoryPath {
		if err := ensureReadable(ctx, dbPath); err != nil {
			return nil, err
		}
	}

	store, err := NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, err
	}

	return store, nil
}

func ensureReadable(ctx context.Context, dbPath string) error {
	info, err := os.Stat(dbPath)
	switch {
	case errors.Is(err, os.ErrNotExist):
		slog.Info("Creating sentiment database", "path", dbPath)
		return nil
	case err != nil:
		return fmt.Errorf("failed to stat database: %w", err)
	case info.IsDir():
		return fmt.Errorf("database path %s is a directory", dbPath)
	}

	checkErr := checkIntegrity(ctx, dbPath)
	if checkErr == nil {
		return nil
	}
	if !errors.Is(checkErr, common.ErrDatabaseCorrupted) {
		return checkErr
	}

	slog.Warn("Sentiment database is unreadable, recreating an empty store",
		"path", dbPath,
		"error", checkErr)

	return discardDatabase(dbPath)
}

// Path returns the database location.
func (s *SQLiteStorage) Path() string {
	return s.dbPath
}

// Close closes the database connection.
func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}
