package phrases

import (
	"testing"

	"github.com/owusus/newsphrases/models"
)

func rec(phrase string, count int, source string) models.PhraseRecord {
	return models.PhraseRecord{
		Phrase:    phrase,
		Pos:       models.PosNounPhrase,
		Count:     count,
		CSVSource: source,
	}
}

func TestCombine_GroupsByExactText(t *testing.T) {
	tables := [][]models.PhraseRecord{
		{rec("Accra", 3, "a")},
		{rec("Accra", 2, "b")},
	}

	out := Combine(tables)
	if len(out) != 1 {
		t.Fatalf("Combine() returned %d records, want 1", len(out))
	}
	if out[0].Count != 5 {
		t.Errorf("count = %d, want 5", out[0].Count)
	}
	if out[0].CSVSource != "a, b" {
		t.Errorf("csv_source = %q, want %q", out[0].CSVSource, "a, b")
	}
}

func TestCombine_IsCaseSensitive(t *testing.T) {
	// Tables that chose different canonical casings stay separate here;
	// only the second-stage merger folds them together.
	tables := [][]models.PhraseRecord{
		{rec("Accra", 3, "a")},
		{rec("accra", 2, "b")},
	}

	out := Combine(tables)
	if len(out) != 2 {
		t.Fatalf("Combine() returned %d records, want 2 (case-sensitive grouping)", len(out))
	}
}

func TestCombine_SourcesSortedAndDeduplicated(t *testing.T) {
	tables := [][]models.PhraseRecord{
		{rec("cocoa", 1, "zeta")},
		{rec("cocoa", 1, "alpha")},
		{rec("cocoa", 2, "alpha")},
	}

	out := Combine(tables)
	if out[0].CSVSource != "alpha, zeta" {
		t.Errorf("csv_source = %q, want %q", out[0].CSVSource, "alpha, zeta")
	}
	if out[0].Count != 4 {
		t.Errorf("count = %d, want 4", out[0].Count)
	}
}

func TestCombine_ConservesTotalCounts(t *testing.T) {
	tables := [][]models.PhraseRecord{
		{rec("economy", 4, "a"), rec("Parliament", 2, "a")},
		{rec("economy", 1, "b"), rec("roads", 3, "b")},
	}

	want := 0
	for _, tbl := range tables {
		want += TotalOccurrences(tbl)
	}

	out := Combine(tables)
	if got := TotalOccurrences(out); got != want {
		t.Errorf("TotalOccurrences(combined) = %d, want %d", got, want)
	}
}

func TestCombine_SortedByCountDescending(t *testing.T) {
	tables := [][]models.PhraseRecord{
		{rec("low", 1, "a"), rec("high", 9, "a"), rec("mid", 4, "a")},
	}

	out := Combine(tables)
	for i := 1; i < len(out); i++ {
		if out[i].Count > out[i-1].Count {
			t.Fatalf("records not sorted by count descending: %v", out)
		}
	}
}

func TestStats_AveragePhrasesPerArticle(t *testing.T) {
	recs := []models.PhraseRecord{
		rec("economy", 4, "a"),
		rec("Parliament", 2, "a"),
		rec("roads", 1, "a"),
	}

	st := Stats("in/a.csv", "a", 10, 2, recs, "out/a_noun_phrases.csv")
	if st.UniquePhrases != 3 {
		t.Errorf("UniquePhrases = %d, want 3", st.UniquePhrases)
	}
	if st.TotalOccurrences != 7 {
		t.Errorf("TotalOccurrences = %d, want 7", st.TotalOccurrences)
	}
	if st.AvgPhrasesPerArticle != 1.5 {
		t.Errorf("AvgPhrasesPerArticle = %v, want 1.5", st.AvgPhrasesPerArticle)
	}
}

func TestStats_ZeroArticles(t *testing.T) {
	st := Stats("in/a.csv", "a", 0, 0, nil, "out/a_noun_phrases.csv")
	if st.AvgPhrasesPerArticle != 0 {
		t.Errorf("AvgPhrasesPerArticle = %v, want 0 when there are no articles", st.AvgPhrasesPerArticle)
	}
}

func TestStats_RoundsToTwoDecimals(t *testing.T) {
	recs := []models.PhraseRecord{rec("a b", 1, "a"), rec("c d", 1, "a")}
	st := Stats("in/a.csv", "a", 3, 3, recs, "out")
	if st.AvgPhrasesPerArticle != 0.67 {
		t.Errorf("AvgPhrasesPerArticle = %v, want 0.67", st.AvgPhrasesPerArticle)
	}
}
