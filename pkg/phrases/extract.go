package phrases

import (
	"fmt"
	"strings"

	"github.com/owusus/newsphrases/pkg/chunker"
)

// ExtractArticle runs the chunker over every sentence of one article and
// returns the article's phrase counter. Spans are trimmed, leading stop
// words are stripped, and phrases that are empty afterwards are discarded.
// A phrase repeated across sentences of the article counts once per
// occurrence, not once per article.
func ExtractArticle(ch chunker.Chunker, sentences []string, stop map[string]struct{}) (*Counter, error) {
	c := NewCounter()
	for _, sentence := range sentences {
		spans, err := ch.NounPhrases(sentence)
		if err != nil {
			return nil, fmt.Errorf("failed to chunk sentence: %w", err)
		}
		for _, span := range spans {
			phrase := strings.TrimSpace(span)
			if phrase == "" {
				continue
			}
			phrase = chunker.StripLeadingStopWords(phrase, stop)
			if phrase == "" {
				continue
			}
			c.Add(phrase)
		}
	}
	return c, nil
}
