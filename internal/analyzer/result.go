package analyzer

import "github.com/jonathan/resume-analyzer/internal/scoring"

// Result is the external shape of one analysis. Skill slices are sorted so
// identical inputs serialize identically.
type Result struct {
	Score         int      `json:"score"`
	MatchedSkills []string `json:"matched_skills"`
	MissingSkills []string `json:"missing_skills"`
	ExtraSkills   []string `json:"extra_skills"`
	Suggestions   []string `json:"suggestions"`
}

// DetailedResult extends Result with the classification and scoring
// intermediates, for explain output.
type DetailedResult struct {
	Result

	ResumeDomain string            `json:"resume_domain"`
	JobDomain    string            `json:"job_domain"`
	Breakdown    scoring.Breakdown `json:"breakdown"`
}
