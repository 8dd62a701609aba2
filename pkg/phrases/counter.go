// Package phrases implements case-insensitive phrase counting and the
// aggregation steps that turn per-article counts into phrase tables.
package phrases

import (
	"sort"
	"strings"

	"github.com/owusus/newsphrases/models"
)

// Counter accumulates phrase counts keyed by lowercased text. It remembers
// first-seen order and a canonical display casing per key.
type Counter struct {
	order   []string
	entries map[string]*entry
}

type entry struct {
	display string
	count   int
}

// NewCounter returns an empty Counter.
func NewCounter() *Counter {
	return &Counter{entries: make(map[string]*entry)}
}

// Add records one occurrence of phrase.
func (c *Counter) Add(phrase string) {
	c.AddN(phrase, 1)
}

// AddN records n occurrences of phrase. The identity key is the lowercased
// text; when variants disagree on casing, a variant containing uppercase is
// preferred over the all-lowercase form, with ties resolved first-seen.
func (c *Counter) AddN(phrase string, n int) {
	key := strings.ToLower(phrase)
	e, ok := c.entries[key]
	if !ok {
		c.entries[key] = &entry{display: phrase, count: n}
		c.order = append(c.order, key)
		return
	}
	if phrase != key && e.display == key {
		e.display = phrase
	}
	e.count += n
}

// Merge folds other into c, summing counts per key and applying the same
// canonical-casing preference.
func (c *Counter) Merge(other *Counter) {
	for _, key := range other.order {
		e := other.entries[key]
		c.AddN(e.display, e.count)
	}
}

// Len returns the number of distinct phrase keys.
func (c *Counter) Len() int {
	return len(c.order)
}

// TotalCount returns the sum of all occurrence counts.
func (c *Counter) TotalCount() int {
	total := 0
	for _, e := range c.entries {
		total += e.count
	}
	return total
}

// Records materializes the counter as phrase rows tagged with source,
// sorted by count descending. Ties keep first-seen order.
func (c *Counter) Records(source string) []models.PhraseRecord {
	recs := make([]models.PhraseRecord, 0, len(c.order))
	for _, key := range c.order {
		e := c.entries[key]
		recs = append(recs, models.PhraseRecord{
			Phrase:    e.display,
			Pos:       models.PosNounPhrase,
			Count:     e.count,
			CSVSource: source,
		})
	}
	SortByCount(recs)
	return recs
}

// SortByCount sorts records by count descending. The sort is stable so
// ties keep their prior relative order.
func SortByCount(recs []models.PhraseRecord) {
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Count > recs[j].Count
	})
}
