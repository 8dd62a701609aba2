// Package db persists extraction run history in a local SQLite database.
package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

const DefaultDBName = "newsphrases.db"

type DB struct {
	*sql.DB
	path string
}

// openDB opens a SQLite database at the given path
func openDB(dbPath string) (*sql.DB, error) {
	sqlDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable foreign keys
	if _, err := sqlDB.Exec("PRAGMA foreign_keys = ON"); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return sqlDB, nil
}

// Open opens or creates the SQLite database next to the binary
func Open() (*DB, error) {
	execPath, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("failed to get executable path: %w", err)
	}
	return OpenPath(filepath.Join(filepath.Dir(execPath), DefaultDBName))
}

// OpenPath opens or creates the SQLite database at an explicit path.
func OpenPath(path string) (*DB, error) {
	sqlDB, err := openDB(path)
	if err != nil {
		return nil, err
	}

	db := &DB{
		DB:   sqlDB,
		path: path,
	}

	// Auto-initialize schema if it doesn't exist
	if err := db.ensureSchemaExists(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return db, nil
}

// ensureSchemaExists checks if the schema exists and initializes it if not
func (db *DB) ensureSchemaExists() error {
	var tableName string
	err := db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='runs'").Scan(&tableName)

	if err == sql.ErrNoRows {
		return db.InitSchema()
	}

	if err != nil {
		return fmt.Errorf("failed to check schema: %w", err)
	}

	return nil
}

// Path returns the filesystem location of the database.
func (db *DB) Path() string {
	return db.path
}
