// Package parsing provides text normalization for resume and job-description content.
package parsing

import (
	"strings"
)

// Clean normalizes raw text for skill extraction: lowercase, digits removed,
// punctuation replaced with spaces, whitespace collapsed, trimmed.
//
// The normalization is intentionally lossy:
//   - number removal alters version suffixes ("java 17" -> "java", "html5" -> "html")
//   - punctuation removal alters compound tokens ("node.js" -> "node js", "c++" -> "c")
//
// These are accepted tradeoffs; downstream synonym resolution absorbs the
// common cases.
func Clean(rawText string) string {
	if strings.TrimSpace(rawText) == "" {
		return ""
	}

	var sb strings.Builder
	sb.Grow(len(rawText))

	lastSpace := false
	for _, r := range strings.ToLower(rawText) {
		if r >= 'a' && r <= 'z' {
			sb.WriteRune(r)
			lastSpace = false
			continue
		}
		// Digits and punctuation both become separators, so "java17"
		// yields "java" and "node.js" yields "node js".
		if !lastSpace {
			sb.WriteByte(' ')
			lastSpace = true
		}
	}

	return strings.TrimSpace(sb.String())
}

// Tokenize splits normalized text into whitespace-separated tokens.
// Input is expected to already be Clean-ed; empty input yields no tokens.
func Tokenize(normalized string) []string {
	if normalized == "" {
		return nil
	}
	return strings.Fields(normalized)
}
