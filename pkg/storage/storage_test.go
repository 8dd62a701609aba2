package storage

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/owusus/newsphrases/models"
)

func readAll(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("failed to open %s: %v", path, err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("failed to parse %s: %v", path, err)
	}
	return rows
}

func TestWritePhraseTable(t *testing.T) {
	s, err := New(filepath.Join(t.TempDir(), "out"))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	recs := []models.PhraseRecord{
		{Phrase: "Accra", Pos: models.PosNounPhrase, Count: 5, CSVSource: "ghanaweb"},
		{Phrase: "cocoa prices", Pos: models.PosNounPhrase, Count: 2, CSVSource: "ghanaweb"},
	}
	path, err := s.WritePhraseTable("ghanaweb"+PhraseTableSuffix, recs)
	if err != nil {
		t.Fatalf("WritePhraseTable() error = %v", err)
	}

	rows := readAll(t, path)
	want := [][]string{
		{"phrase", "pos", "count", "csv_source"},
		{"Accra", "NOUN_PHRASE", "5", "ghanaweb"},
		{"cocoa prices", "NOUN_PHRASE", "2", "ghanaweb"},
	}
	if !reflect.DeepEqual(rows, want) {
		t.Errorf("table rows = %v, want %v", rows, want)
	}
}

func TestWriteSummary(t *testing.T) {
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	stats := []models.DatasetStats{{
		CSVFile:              "in/ghanaweb.csv",
		CSVName:              "ghanaweb",
		TotalSentences:       100,
		TotalArticles:        8,
		UniquePhrases:        42,
		TotalOccurrences:     77,
		AvgPhrasesPerArticle: 5.25,
		Language:             "English",
		OutputFile:           "out/ghanaweb_noun_phrases.csv",
	}}
	path, err := s.WriteSummary(SummaryFileName, stats)
	if err != nil {
		t.Fatalf("WriteSummary() error = %v", err)
	}

	rows := readAll(t, path)
	if len(rows) != 2 {
		t.Fatalf("summary has %d rows, want 2", len(rows))
	}
	want := []string{
		"in/ghanaweb.csv", "ghanaweb", "100", "8", "42", "77", "5.25",
		"out/ghanaweb_noun_phrases.csv", "English",
	}
	if !reflect.DeepEqual(rows[1], want) {
		t.Errorf("summary row = %v, want %v", rows[1], want)
	}
}

func TestNew_CreatesNestedDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	if _, err := New(dir); err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		t.Errorf("output directory not created: %v", err)
	}
}
