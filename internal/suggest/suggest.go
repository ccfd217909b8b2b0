// Package suggest produces short, actionable resume-improvement tips from a
// match result.
package suggest

import (
	"fmt"

	"github.com/jonathan/resume-analyzer/internal/matching"
)

const (
	maxSuggestions = 3
	// extraSkillLimit is how many off-target skills a resume can list before
	// it reads as unfocused.
	extraSkillLimit = 5
)

// Generate returns at most three suggestions ordered by usefulness: the most
// impactful missing skill first, then a focus tip, then score-band guidance.
// Deterministic for a given input.
func Generate(match matching.Result, score int) []string {
	suggestions := make([]string, 0, maxSuggestions)

	if len(match.Missing) > 0 {
		first := matching.Sorted(match.Missing)[0]
		suggestions = append(suggestions,
			fmt.Sprintf("Consider adding experience with %s, which the job requires.", first))
	}

	if len(match.Extra) > extraSkillLimit {
		suggestions = append(suggestions,
			"Your resume lists many skills not relevant to this job. Consider tailoring it.")
	}

	switch {
	case score < 50:
		suggestions = append(suggestions,
			"This job may require significant upskilling in the listed technologies.")
	case score < 80:
		suggestions = append(suggestions,
			"You are a moderate fit. Strengthening the missing skills would improve your chances.")
	default:
		suggestions = append(suggestions,
			"Strong match. Emphasize your matched skills prominently in your resume.")
	}

	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	return suggestions
}
