// Package detector identifies the dominant language of a sentence
// dataset by sampling rows.
package detector

import (
	"github.com/pemistahl/lingua-go"
)

// sampleSize caps how many sentences are examined per dataset.
const sampleSize = 100

// Detector samples dataset sentences and reports the most frequently
// detected language.
type Detector struct {
	d lingua.LanguageDetector
}

// New builds a detector over the languages that show up in the news
// corpora this tool is pointed at.
func New() *Detector {
	d := lingua.NewLanguageDetectorBuilder().
		FromLanguages(
			lingua.English,
			lingua.French,
			lingua.Spanish,
			lingua.Portuguese,
			lingua.Swahili,
		).
		Build()
	return &Detector{d: d}
}

// DominantLanguage detects the language of up to sampleSize sentences and
// returns the most frequent result, or "unknown" when nothing was
// detected.
func (dt *Detector) DominantLanguage(sentences []string) string {
	counts := make(map[lingua.Language]int)
	for i, s := range sentences {
		if i >= sampleSize {
			break
		}
		if lang, ok := dt.d.DetectLanguageOf(s); ok {
			counts[lang]++
		}
	}

	best := ""
	bestCount := 0
	for lang, n := range counts {
		if n > bestCount {
			best = lang.String()
			bestCount = n
		}
	}
	if best == "" {
		return "unknown"
	}
	return best
}
