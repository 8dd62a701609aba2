package db

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/owusus/newsphrases/models"
)

// Run is one recorded extraction run.
type Run struct {
	ID               int64
	StartedAt        string
	FinishedAt       sql.NullString
	InputDir         string
	Pattern          string
	OutputDir        string
	TablesProcessed  int
	UniquePhrases    int
	TotalOccurrences int
}

// BeginRun records the start of an extraction run and returns its id.
func (db *DB) BeginRun(inputDir, pattern, outputDir string) (int64, error) {
	res, err := db.Exec(
		`INSERT INTO runs (started_at, input_dir, pattern, output_dir) VALUES (?, ?, ?, ?)`,
		time.Now().UTC().Format(time.RFC3339), inputDir, pattern, outputDir,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to record run start: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get run id: %w", err)
	}
	return id, nil
}

// RecordTable stores the stats of one processed input table.
func (db *DB) RecordTable(runID int64, st models.DatasetStats) error {
	_, err := db.Exec(
		`INSERT INTO run_tables (
			run_id, csv_file, csv_name, total_sentences, total_articles,
			unique_noun_phrases, total_phrase_occurrences,
			avg_phrases_per_article, language, output_file
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		runID, st.CSVFile, st.CSVName, st.TotalSentences, st.TotalArticles,
		st.UniquePhrases, st.TotalOccurrences,
		st.AvgPhrasesPerArticle, st.Language, st.OutputFile,
	)
	if err != nil {
		return fmt.Errorf("failed to record table stats: %w", err)
	}
	return nil
}

// FinishRun records a run's completion time and overall totals.
func (db *DB) FinishRun(runID int64, tables, uniquePhrases, totalOccurrences int) error {
	_, err := db.Exec(
		`UPDATE runs SET finished_at = ?, tables_processed = ?, unique_phrases = ?, total_occurrences = ?
		 WHERE id = ?`,
		time.Now().UTC().Format(time.RFC3339), tables, uniquePhrases, totalOccurrences, runID,
	)
	if err != nil {
		return fmt.Errorf("failed to record run completion: %w", err)
	}
	return nil
}

// GetRun fetches one run by id.
func (db *DB) GetRun(id int64) (*Run, error) {
	var r Run
	err := db.QueryRow(
		`SELECT id, started_at, finished_at, input_dir, pattern, output_dir,
			tables_processed, unique_phrases, total_occurrences
		 FROM runs WHERE id = ?`, id,
	).Scan(&r.ID, &r.StartedAt, &r.FinishedAt, &r.InputDir, &r.Pattern,
		&r.OutputDir, &r.TablesProcessed, &r.UniquePhrases, &r.TotalOccurrences)
	if err != nil {
		return nil, fmt.Errorf("failed to get run %d: %w", id, err)
	}
	return &r, nil
}

// GetRunTables fetches the per-table stats recorded for a run, in insert
// order.
func (db *DB) GetRunTables(runID int64) ([]models.DatasetStats, error) {
	rows, err := db.Query(
		`SELECT csv_file, csv_name, total_sentences, total_articles,
			unique_noun_phrases, total_phrase_occurrences,
			avg_phrases_per_article, language, output_file
		 FROM run_tables WHERE run_id = ? ORDER BY id`, runID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get tables for run %d: %w", runID, err)
	}
	defer rows.Close()

	var out []models.DatasetStats
	for rows.Next() {
		var st models.DatasetStats
		if err := rows.Scan(&st.CSVFile, &st.CSVName, &st.TotalSentences,
			&st.TotalArticles, &st.UniquePhrases, &st.TotalOccurrences,
			&st.AvgPhrasesPerArticle, &st.Language, &st.OutputFile); err != nil {
			return nil, fmt.Errorf("failed to scan table stats: %w", err)
		}
		out = append(out, st)
	}
	return out, rows.Err()
}
