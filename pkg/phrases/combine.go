package phrases

import (
	"sort"
	"strings"

	"github.com/owusus/newsphrases/models"
)

// Combine aggregates the per-table phrase records of one extract run into
// a single table. Grouping is by exact phrase text: each per-table output
// has already chosen its canonical casing, and two tables that chose
// different casings for the same key are kept apart here. Counts sum and
// csv_source values union into a sorted, comma-joined string.
func Combine(tables [][]models.PhraseRecord) []models.PhraseRecord {
	type group struct {
		count   int
		sources map[string]struct{}
	}

	var order []string
	groups := make(map[string]*group)

	for _, recs := range tables {
		for _, r := range recs {
			g, ok := groups[r.Phrase]
			if !ok {
				g = &group{sources: make(map[string]struct{})}
				groups[r.Phrase] = g
				order = append(order, r.Phrase)
			}
			g.count += r.Count
			g.sources[r.CSVSource] = struct{}{}
		}
	}

	out := make([]models.PhraseRecord, 0, len(order))
	for _, phrase := range order {
		g := groups[phrase]
		out = append(out, models.PhraseRecord{
			Phrase:    phrase,
			Pos:       models.PosNounPhrase,
			Count:     g.count,
			CSVSource: JoinSources(g.sources),
		})
	}
	SortByCount(out)
	return out
}

// JoinSources renders a source set as a sorted, comma-space-joined string.
func JoinSources(set map[string]struct{}) string {
	names := make([]string, 0, len(set))
	for s := range set {
		names = append(names, s)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

// TotalOccurrences sums the counts of a phrase table.
func TotalOccurrences(recs []models.PhraseRecord) int {
	total := 0
	for _, r := range recs {
		total += r.Count
	}
	return total
}
