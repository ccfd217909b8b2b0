// Package relations resolves skill tokens to canonical forms via synonym
// groups and answers whether two tokens mean the same thing.
package relations

import (
	"strings"

	"github.com/jonathan/resume-analyzer/internal/lexicon"
)

// Resolver maps skill spellings to canonical labels. Immutable after New.
type Resolver struct {
	canonicalOf  map[string]string // member -> canonical label
	toolTerms    map[string]bool
	mindsetTerms map[string]bool
}

// New builds a resolver from the lexicon's synonym groups and false-friend
// lists. Canonical labels resolve to themselves, so Canonical is idempotent.
func New(lex *lexicon.Lexicon) *Resolver {
	canonicalOf := make(map[string]string)
	for canonical, members := range lex.SynonymGroups {
		canonicalOf[canonical] = canonical
		for _, member := range members {
			canonicalOf[member] = canonical
		}
	}
	return &Resolver{
		canonicalOf:  canonicalOf,
		toolTerms:    lex.ToolTerms,
		mindsetTerms: lex.MindsetTerms,
	}
}

// Canonical returns the canonical label for a token, or the lowercased token
// itself when it belongs to no synonym group.
func (r *Resolver) Canonical(token string) string {
	lower := strings.ToLower(token)
	if canonical, ok := r.canonicalOf[lower]; ok {
		return canonical
	}
	return lower
}

// CanonicalSet canonicalizes every token in the set. Synonyms collapse onto
// one entry.
func (r *Resolver) CanonicalSet(tokens map[string]bool) map[string]bool {
	out := make(map[string]bool, len(tokens))
	for token := range tokens {
		out[r.Canonical(token)] = true
	}
	return out
}

// AreRelated reports whether two skills are equivalent: literally equal, or
// members of the same synonym group. False-friend pairs (an analytics tool
// name vs. an analytical-mindset term) are forced unrelated; the exclusion is
// checked before group membership.
func (r *Resolver) AreRelated(a, b string) bool {
	la, lb := strings.ToLower(a), strings.ToLower(b)

	if la == lb {
		return true
	}

	if (r.toolTerms[la] && r.mindsetTerms[lb]) || (r.mindsetTerms[la] && r.toolTerms[lb]) {
		return false
	}

	ca, aGrouped := r.canonicalOf[la]
	cb, bGrouped := r.canonicalOf[lb]
	return aGrouped && bGrouped && ca == cb
}
