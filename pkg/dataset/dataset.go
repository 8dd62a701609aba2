// Package dataset reads CSV sentence datasets and groups rows into
// articles.
package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/owusus/newsphrases/models"
)

// Dataset holds one fully loaded input table. Rows with empty sentence
// text are dropped at read time; the remaining rows keep file order.
type Dataset struct {
	Path string
	Name string // base name without the .csv extension
	Rows []models.SentenceRecord
}

// MissingColumnsError reports an input table that lacks required columns.
// Such a table is skipped; the run continues with the rest.
type MissingColumnsError struct {
	Path    string
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("%s: missing columns %s", e.Path, strings.Join(e.Columns, ", "))
}

// Discover finds input tables matching pattern under dir, sorted by path.
// When nothing matches it retries the bare pattern in the working
// directory, matching how the extractor has always been pointed at data.
func Discover(dir, pattern string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return nil, fmt.Errorf("invalid file pattern %q: %w", pattern, err)
	}
	if len(matches) == 0 {
		matches, err = filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid file pattern %q: %w", pattern, err)
		}
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no CSV files found in %q or current directory matching pattern: %s", dir, pattern)
	}
	sort.Strings(matches)
	return matches, nil
}

// Read loads one dataset. It returns a MissingColumnsError when the header
// lacks any of the required text, title or date columns.
func Read(path string, cols models.Columns) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s is empty", path)
	}

	header := records[0]
	textIdx := columnIndex(header, cols.Text)
	titleIdx := columnIndex(header, cols.Title)
	dateIdx := columnIndex(header, cols.Date)
	urlIdx := columnIndex(header, cols.URL)

	var missing []string
	for _, c := range []struct {
		name string
		idx  int
	}{{cols.Text, textIdx}, {cols.Title, titleIdx}, {cols.Date, dateIdx}} {
		if c.idx < 0 {
			missing = append(missing, c.name)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingColumnsError{Path: path, Columns: missing}
	}

	ds := &Dataset{
		Path: path,
		Name: strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
	}
	for _, row := range records[1:] {
		sentence := strings.TrimSpace(field(row, textIdx))
		if sentence == "" {
			continue
		}
		ds.Rows = append(ds.Rows, models.SentenceRecord{
			Sentence: sentence,
			Title:    field(row, titleIdx),
			Date:     field(row, dateIdx),
			URL:      field(row, urlIdx),
		})
	}
	return ds, nil
}

// Sentences returns the sentence text of every row, in file order.
func (d *Dataset) Sentences() []string {
	out := make([]string, len(d.Rows))
	for i, row := range d.Rows {
		out[i] = row.Sentence
	}
	return out
}

// Articles groups rows by (title, date). Keys are returned in sorted
// order; sentences within an article keep file order.
func (d *Dataset) Articles() ([]models.ArticleKey, map[models.ArticleKey][]string) {
	groups := make(map[models.ArticleKey][]string)
	var keys []models.ArticleKey
	for _, row := range d.Rows {
		k := models.ArticleKey{Title: row.Title, Date: row.Date}
		if _, ok := groups[k]; !ok {
			keys = append(keys, k)
		}
		groups[k] = append(groups[k], row.Sentence)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Title != keys[j].Title {
			return keys[i].Title < keys[j].Title
		}
		return keys[i].Date < keys[j].Date
	})
	return keys, groups
}

func columnIndex(header []string, name string) int {
	if name == "" {
		return -1
	}
	for i, h := range header {
		if strings.TrimSpace(h) == name {
			return i
		}
	}
	return -1
}

func field(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}
