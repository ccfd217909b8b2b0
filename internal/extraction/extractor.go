// Package extraction pulls skill tokens out of normalized text using the
// lexicon's stop-word set and skill whitelist.
package extraction

import (
	"github.com/jonathan/resume-analyzer/internal/lexicon"
	"github.com/jonathan/resume-analyzer/internal/parsing"
)

// minTokenLength filters out single-character noise left by normalization.
const minTokenLength = 2

// Extractor filters tokens against the lexicon. Safe for concurrent use.
type Extractor struct {
	lex *lexicon.Lexicon
}

// New creates an extractor backed by the given lexicon.
func New(lex *lexicon.Lexicon) *Extractor {
	return &Extractor{lex: lex}
}

// Skills returns the set of whitelisted skill tokens in normalized text.
// Deterministic and order-independent; an empty whitelist (degraded lexicon)
// yields an empty set rather than an error.
func (e *Extractor) Skills(normalizedText string) map[string]bool {
	skills := make(map[string]bool)

	for _, token := range parsing.Tokenize(normalizedText) {
		if len(token) < minTokenLength {
			continue
		}
		if e.lex.StopWords[token] {
			continue
		}
		if e.lex.Whitelist[token] {
			skills[token] = true
		}
	}

	return skills
}
