package db

import "fmt"

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	started_at TEXT NOT NULL,
	finished_at TEXT,
	input_dir TEXT NOT NULL,
	pattern TEXT NOT NULL,
	output_dir TEXT NOT NULL,
	tables_processed INTEGER NOT NULL DEFAULT 0,
	unique_phrases INTEGER NOT NULL DEFAULT 0,
	total_occurrences INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS run_tables (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id INTEGER NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
	csv_file TEXT NOT NULL,
	csv_name TEXT NOT NULL,
	total_sentences INTEGER NOT NULL,
	total_articles INTEGER NOT NULL,
	unique_noun_phrases INTEGER NOT NULL,
	total_phrase_occurrences INTEGER NOT NULL,
	avg_phrases_per_article REAL NOT NULL,
	language TEXT NOT NULL DEFAULT '',
	output_file TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_run_tables_run_id ON run_tables(run_id);
`

// InitSchema creates the run-history tables.
func (db *DB) InitSchema() error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}
