package phrases

import (
	"math"

	"github.com/owusus/newsphrases/models"
)

// Stats computes the per-table summary figures from a finished phrase
// table. The average is unique phrases per article, rounded to two
// decimals, and defined as 0 when the table had no articles.
func Stats(csvFile, csvName string, sentences, articles int, recs []models.PhraseRecord, outputFile string) models.DatasetStats {
	avg := 0.0
	if articles > 0 {
		avg = math.Round(float64(len(recs))/float64(articles)*100) / 100
	}
	return models.DatasetStats{
		CSVFile:              csvFile,
		CSVName:              csvName,
		TotalSentences:       sentences,
		TotalArticles:        articles,
		UniquePhrases:        len(recs),
		TotalOccurrences:     TotalOccurrences(recs),
		AvgPhrasesPerArticle: avg,
		OutputFile:           outputFile,
	}
}
