// Package storage writes phrase tables and run summaries to disk.
package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/owusus/newsphrases/models"
)

const (
	// PhraseTableSuffix is appended to an input table's base name to form
	// its per-table output filename.
	PhraseTableSuffix = "_noun_phrases.csv"

	// CombinedFileName is the cross-table output of one extract run.
	CombinedFileName = "combined_noun_phrases_all.csv"

	// SummaryFileName is the per-run processing summary.
	SummaryFileName = "processing_summary.csv"
)

var phraseHeader = []string{"phrase", "pos", "count", "csv_source"}

var summaryHeader = []string{
	"csv_file", "csv_name", "total_sentences", "total_articles",
	"unique_noun_phrases", "total_phrase_occurrences",
	"avg_phrases_per_article", "output_file", "language",
}

// Storage writes output files under a single directory, creating it on
// first use.
type Storage struct {
	Dir string
}

// New creates the output directory if needed and returns a Storage for it.
func New(dir string) (*Storage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}
	return &Storage{Dir: dir}, nil
}

// WritePhraseTable writes records as a phrase CSV under the storage
// directory and returns the full path.
func (s *Storage) WritePhraseTable(name string, recs []models.PhraseRecord) (string, error) {
	path := filepath.Join(s.Dir, name)
	if err := WritePhraseCSV(path, recs); err != nil {
		return "", err
	}
	return path, nil
}

// WritePhraseCSV writes records as a phrase CSV at path.
func WritePhraseCSV(path string, recs []models.PhraseRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(phraseHeader); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	for _, r := range recs {
		row := []string{r.Phrase, r.Pos, strconv.Itoa(r.Count), r.CSVSource}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Close()
}

// WriteSummary writes the processing summary, one row per processed input
// table, and returns the full path.
func (s *Storage) WriteSummary(name string, stats []models.DatasetStats) (string, error) {
	path := filepath.Join(s.Dir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(summaryHeader); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	for _, st := range stats {
		row := []string{
			st.CSVFile,
			st.CSVName,
			strconv.Itoa(st.TotalSentences),
			strconv.Itoa(st.TotalArticles),
			strconv.Itoa(st.UniquePhrases),
			strconv.Itoa(st.TotalOccurrences),
			strconv.FormatFloat(st.AvgPhrasesPerArticle, 'f', 2, 64),
			st.OutputFile,
			st.Language,
		}
		if err := w.Write(row); err != nil {
			return "", fmt.Errorf("failed to write %s: %w", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return path, nil
}
