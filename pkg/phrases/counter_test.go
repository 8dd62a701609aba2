package phrases

import (
	"testing"
)

func TestCounter_CountsPerOccurrence(t *testing.T) {
	c := NewCounter()
	c.Add("the government")
	c.Add("the government")
	c.Add("the government")

	recs := c.Records("test")
	if len(recs) != 1 {
		t.Fatalf("Records() returned %d records, want 1", len(recs))
	}
	if recs[0].Count != 3 {
		t.Errorf("count = %d, want 3", recs[0].Count)
	}
}

func TestCounter_CaseVariantsMergeIntoOneRecord(t *testing.T) {
	c := NewCounter()
	c.Add("accra")
	c.Add("accra")
	c.Add("Accra")
	c.Add("Accra")
	c.Add("Accra")

	recs := c.Records("test")
	if len(recs) != 1 {
		t.Fatalf("Records() returned %d records, want 1", len(recs))
	}
	if recs[0].Phrase != "Accra" {
		t.Errorf("phrase = %q, want %q (uppercase variant preferred)", recs[0].Phrase, "Accra")
	}
	if recs[0].Count != 5 {
		t.Errorf("count = %d, want 5", recs[0].Count)
	}
}

func TestCounter_FirstUppercaseVariantWins(t *testing.T) {
	c := NewCounter()
	c.Add("Bank of Ghana")
	c.Add("BANK OF GHANA")

	recs := c.Records("test")
	if recs[0].Phrase != "Bank of Ghana" {
		t.Errorf("phrase = %q, want first-seen uppercase variant %q", recs[0].Phrase, "Bank of Ghana")
	}
}

func TestCounter_MergeSumsAndAppliesPreference(t *testing.T) {
	a := NewCounter()
	a.Add("economy")
	a.Add("economy")

	b := NewCounter()
	b.AddN("Economy", 3)

	a.Merge(b)

	recs := a.Records("test")
	if len(recs) != 1 {
		t.Fatalf("Records() returned %d records, want 1", len(recs))
	}
	if recs[0].Count != 5 {
		t.Errorf("count = %d, want 5", recs[0].Count)
	}
	if recs[0].Phrase != "Economy" {
		t.Errorf("phrase = %q, want %q", recs[0].Phrase, "Economy")
	}
}

func TestCounter_MergeOrderIndependentTotals(t *testing.T) {
	build := func(phrases ...string) *Counter {
		c := NewCounter()
		for _, p := range phrases {
			c.Add(p)
		}
		return c
	}

	left := build("Accra", "economy", "accra")
	right := build("accra", "Economy")

	ab := NewCounter()
	ab.Merge(left)
	ab.Merge(right)

	ba := NewCounter()
	ba.Merge(right)
	ba.Merge(left)

	if ab.TotalCount() != ba.TotalCount() {
		t.Errorf("TotalCount() differs by merge order: %d vs %d", ab.TotalCount(), ba.TotalCount())
	}
	if ab.Len() != ba.Len() {
		t.Errorf("Len() differs by merge order: %d vs %d", ab.Len(), ba.Len())
	}
	if got, want := ab.TotalCount(), 5; got != want {
		t.Errorf("TotalCount() = %d, want %d", got, want)
	}
	if got, want := ab.Len(), 2; got != want {
		t.Errorf("Len() = %d, want %d", got, want)
	}
}

func TestRecords_StableSortByCount(t *testing.T) {
	c := NewCounter()
	c.AddN("first tie", 2)
	c.AddN("big phrase", 7)
	c.AddN("second tie", 2)

	recs := c.Records("test")
	if recs[0].Phrase != "big phrase" {
		t.Errorf("recs[0] = %q, want highest count first", recs[0].Phrase)
	}
	if recs[1].Phrase != "first tie" || recs[2].Phrase != "second tie" {
		t.Errorf("ties reordered: got %q then %q, want first-seen order preserved",
			recs[1].Phrase, recs[2].Phrase)
	}
}

func TestRecords_CarriesSourceAndPos(t *testing.T) {
	c := NewCounter()
	c.Add("cocoa farmers")

	recs := c.Records("ghanaweb_2023")
	if recs[0].CSVSource != "ghanaweb_2023" {
		t.Errorf("csv_source = %q, want %q", recs[0].CSVSource, "ghanaweb_2023")
	}
	if recs[0].Pos != "NOUN_PHRASE" {
		t.Errorf("pos = %q, want %q", recs[0].Pos, "NOUN_PHRASE")
	}
}
