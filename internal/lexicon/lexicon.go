// Package lexicon holds the static lookup tables the analysis pipeline reads at
// startup: the skill whitelist, the stop-word set, synonym groups, and the
// false-friend exclusion lists. A Lexicon is immutable after construction and
// safe for unsynchronized concurrent reads.
package lexicon

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/resume-analyzer/internal/schemas"
)

// Lexicon is the read-only table set shared by the extractor and resolver.
type Lexicon struct {
	StopWords     map[string]bool
	Whitelist     map[string]bool
	SynonymGroups map[string][]string // canonical label -> group members (including the label)

	// False-friend lists: tokens in ToolTerms must never be considered
	// related to tokens in MindsetTerms, regardless of group membership.
	ToolTerms    map[string]bool
	MindsetTerms map[string]bool
}

// Override is the schema for an optional lexicon override file. All fields
// extend the built-in defaults; synonym groups replace the group with the
// same canonical label.
type Override struct {
	Skills        []string            `json:"skills,omitempty"`
	StopWords     []string            `json:"stop_words,omitempty"`
	SynonymGroups map[string][]string `json:"synonym_groups,omitempty"`
}

// Default returns the built-in lexicon.
func Default() *Lexicon {
	return &Lexicon{
		StopWords:     toSet(defaultStopWords),
		Whitelist:     toSet(defaultSkills),
		SynonymGroups: copyGroups(defaultSynonymGroups),
		ToolTerms:     toSet(analyticsToolTerms),
		MindsetTerms:  toSet(analyticalMindsetTerms),
	}
}

// Degraded returns a lexicon with an empty whitelist. Extraction finds no
// skills, so every request scores through the empty-skill branches instead of
// failing. Used when a configured override file cannot be loaded.
func Degraded() *Lexicon {
	lex := Default()
	lex.Whitelist = map[string]bool{}
	return lex
}

// LoadFile loads the default lexicon extended by the override file at path.
// The override is validated against the lexicon-override JSON Schema before
// it is applied. On any failure the returned lexicon is Degraded (empty
// whitelist) and the error describes the cause; callers log the degradation
// and continue serving.
func LoadFile(path string) (*Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Degraded(), fmt.Errorf("failed to read lexicon override %s: %w", path, err)
	}

	// Schema validation is best-effort: a missing schema file (e.g. a
	// stripped deployment) skips validation rather than rejecting overrides.
	if schemaPath := schemas.ResolveSchemaPath("schemas/lexicon_override.schema.json"); schemaPath != "" {
		if schemaContent := mustReadSchema(schemaPath); schemaContent != "" {
			if err := schemas.ValidateJSONString(schemaContent, string(data)); err != nil {
				return Degraded(), fmt.Errorf("lexicon override %s failed schema validation: %w", path, err)
			}
		}
	}

	var ov Override
	if err := json.Unmarshal(data, &ov); err != nil {
		return Degraded(), fmt.Errorf("failed to parse lexicon override %s: %w", path, err)
	}

	lex := Default()
	for _, s := range ov.Skills {
		lex.Whitelist[s] = true
	}
	for _, s := range ov.StopWords {
		lex.StopWords[s] = true
	}
	for canonical, members := range ov.SynonymGroups {
		group := append([]string{canonical}, members...)
		lex.SynonymGroups[canonical] = dedupe(group)
	}
	return lex, nil
}

func mustReadSchema(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return string(data)
}

func toSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, item := range items {
		set[item] = true
	}
	return set
}

func copyGroups(groups map[string][]string) map[string][]string {
	out := make(map[string][]string, len(groups))
	for canonical, members := range groups {
		out[canonical] = append([]string(nil), members...)
	}
	return out
}

func dedupe(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		if !seen[item] {
			seen[item] = true
			out = append(out, item)
		}
	}
	return out
}
