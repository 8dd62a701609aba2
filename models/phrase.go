package models

// PosNounPhrase is the fixed pos tag carried by every extracted record.
// No per-token part of speech is retained; a row only asserts that the
// text is a noun phrase.
const PosNounPhrase = "NOUN_PHRASE"

// SentenceRecord is one row of an input sentence dataset.
type SentenceRecord struct {
	Sentence string
	Title    string
	Date     string
	URL      string
}

// ArticleKey identifies the article a sentence belongs to. All rows
// sharing the same title and date form one article.
type ArticleKey struct {
	Title string
	Date  string
}

// PhraseRecord is one row of a phrase table.
type PhraseRecord struct {
	Phrase    string
	Pos       string
	Count     int
	CSVSource string
}

// DatasetStats summarizes one processed input table.
type DatasetStats struct {
	CSVFile              string
	CSVName              string
	TotalSentences       int
	TotalArticles        int
	UniquePhrases        int
	TotalOccurrences     int
	AvgPhrasesPerArticle float64
	Language             string
	OutputFile           string
}
