// Package chunker extracts noun-phrase spans from English sentences.
package chunker

import (
	"fmt"
	"strings"

	"github.com/jdkato/prose/v2"
)

// Chunker produces the noun-phrase spans of a sentence, in order of
// appearance. Spans are contiguous runs of words; no per-token part of
// speech is reported.
type Chunker interface {
	NounPhrases(sentence string) ([]string, error)
}

// Prose chunks sentences using prose's tokenizer and Penn Treebank POS
// tagger. Noun phrases are maximal determiner/adjective/noun runs that
// contain at least one noun, plus standalone personal pronouns.
type Prose struct{}

// NewProse returns a prose-backed chunker.
func NewProse() *Prose {
	return &Prose{}
}

// NounPhrases implements Chunker.
func (p *Prose) NounPhrases(sentence string) ([]string, error) {
	doc, err := prose.NewDocument(sentence,
		prose.WithSegmentation(false),
		prose.WithExtraction(false))
	if err != nil {
		return nil, fmt.Errorf("failed to tag sentence: %w", err)
	}
	return chunkSpans(doc.Tokens()), nil
}

// nounTags are the Penn Treebank tags that make a run a noun phrase.
var nounTags = map[string]bool{
	"NN": true, "NNS": true, "NNP": true, "NNPS": true,
}

// chunkTags are the tags allowed inside a noun-phrase run.
var chunkTags = map[string]bool{
	"DT": true, "PDT": true, "PRP$": true,
	"JJ": true, "JJR": true, "JJS": true,
	"CD": true,
	"NN": true, "NNS": true, "NNP": true, "NNPS": true,
}

// chunkSpans groups tagged tokens into noun-phrase spans. A run without a
// noun tag (e.g. a dangling determiner) is dropped. Personal pronouns form
// single-word spans of their own.
func chunkSpans(tokens []prose.Token) []string {
	var spans []string
	var run []string
	hasNoun := false

	flush := func() {
		if hasNoun && len(run) > 0 {
			spans = append(spans, strings.Join(run, " "))
		}
		run = run[:0]
		hasNoun = false
	}

	for _, tok := range tokens {
		switch {
		case tok.Tag == "PRP":
			flush()
			spans = append(spans, tok.Text)
		case chunkTags[tok.Tag]:
			run = append(run, tok.Text)
			if nounTags[tok.Tag] {
				hasNoun = true
			}
		default:
			flush()
		}
	}
	flush()

	return spans
}
