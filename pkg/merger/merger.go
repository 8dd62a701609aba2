// Package merger combines already-extracted phrase tables from a
// directory into one deduplicated table.
package merger

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/owusus/newsphrases/models"
	"github.com/owusus/newsphrases/pkg/phrases"
)

// LoadedTable records one successfully parsed input table.
type LoadedTable struct {
	Path string
	Rows int
}

// Result carries the merged rows plus bookkeeping for reporting.
type Result struct {
	Records  []models.PhraseRecord
	Tables   []LoadedTable
	Skipped  []string
	RowsRead int
}

type groupKey struct {
	phrase string // lowercased
	pos    string
}

// Dir merges every phrase table in dir. Rows merge when their lowercased
// phrase and pos both match; the first-encountered casing becomes the
// display text, counts sum, and csv_source values union into a sorted,
// comma-joined string. A table that fails to parse is logged and skipped;
// the merge fails only when no table is found or none is usable.
func Dir(dir string, logger *slog.Logger) (*Result, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.csv"))
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no CSV files found in %s", dir)
	}
	sort.Strings(paths)

	type group struct {
		display string
		pos     string
		count   int
		sources map[string]struct{}
	}

	var order []groupKey
	groups := make(map[groupKey]*group)
	res := &Result{}

	for _, path := range paths {
		rows, err := readPhraseTable(path)
		if err != nil {
			logger.Warn("skipping unreadable phrase table", "path", path, "error", err)
			res.Skipped = append(res.Skipped, path)
			continue
		}
		res.Tables = append(res.Tables, LoadedTable{Path: path, Rows: len(rows)})
		res.RowsRead += len(rows)

		for _, r := range rows {
			k := groupKey{phrase: strings.ToLower(r.Phrase), pos: r.Pos}
			g, ok := groups[k]
			if !ok {
				g = &group{display: r.Phrase, pos: r.Pos, sources: make(map[string]struct{})}
				groups[k] = g
				order = append(order, k)
			}
			g.count += r.Count
			g.sources[r.CSVSource] = struct{}{}
		}
	}

	if len(res.Tables) == 0 {
		return nil, fmt.Errorf("no usable phrase tables in %s (%d skipped)", dir, len(res.Skipped))
	}

	res.Records = make([]models.PhraseRecord, 0, len(order))
	for _, k := range order {
		g := groups[k]
		res.Records = append(res.Records, models.PhraseRecord{
			Phrase:    g.display,
			Pos:       g.pos,
			Count:     g.count,
			CSVSource: phrases.JoinSources(g.sources),
		})
	}
	phrases.SortByCount(res.Records)
	return res, nil
}

// readPhraseTable parses one phrase CSV. The header must name phrase, pos
// and count columns; a missing csv_source column defaults every row's
// source to the file's base name without extension.
func readPhraseTable(path string) ([]models.PhraseRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("empty file")
	}

	header := records[0]
	phraseIdx := indexOf(header, "phrase")
	posIdx := indexOf(header, "pos")
	countIdx := indexOf(header, "count")
	sourceIdx := indexOf(header, "csv_source")
	if phraseIdx < 0 || posIdx < 0 || countIdx < 0 {
		return nil, fmt.Errorf("not a phrase table (columns: %s)", strings.Join(header, ", "))
	}

	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	rows := make([]models.PhraseRecord, 0, len(records)-1)
	for i, row := range records[1:] {
		count, err := strconv.Atoi(strings.TrimSpace(cell(row, countIdx)))
		if err != nil {
			return nil, fmt.Errorf("row %d: bad count %q", i+2, cell(row, countIdx))
		}
		source := cell(row, sourceIdx)
		if sourceIdx < 0 || source == "" {
			source = stem
		}
		rows = append(rows, models.PhraseRecord{
			Phrase:    cell(row, phraseIdx),
			Pos:       cell(row, posIdx),
			Count:     count,
			CSVSource: source,
		})
	}
	return rows, nil
}

func indexOf(header []string, name string) int {
	for i, h := range header {
		if strings.TrimSpace(h) == name {
			return i
		}
	}
	return -1
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}
