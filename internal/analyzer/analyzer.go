// Package analyzer wires the full pipeline: normalization, skill extraction,
// synonym resolution, matching, scoring, and suggestions.
package analyzer

import (
	"strings"

	"github.com/jonathan/resume-analyzer/internal/classify"
	"github.com/jonathan/resume-analyzer/internal/extraction"
	"github.com/jonathan/resume-analyzer/internal/lexicon"
	"github.com/jonathan/resume-analyzer/internal/matching"
	"github.com/jonathan/resume-analyzer/internal/parsing"
	"github.com/jonathan/resume-analyzer/internal/relations"
	"github.com/jonathan/resume-analyzer/internal/scoring"
	"github.com/jonathan/resume-analyzer/internal/suggest"
)

// Analyzer runs the match pipeline. Construct with New or NewWithLexicon;
// safe for concurrent use, all state is read-only after construction.
type Analyzer struct {
	lex       *lexicon.Lexicon
	extractor *extraction.Extractor
	resolver  *relations.Resolver
	domains   *classify.DomainClassifier
	scorer    *scoring.Scorer
}

// New returns an analyzer with the default lexicon and scoring policy.
func New() *Analyzer {
	return NewWithLexicon(lexicon.Default(), scoring.DefaultPolicy())
}

// NewWithLexicon returns an analyzer over a custom lexicon and policy.
func NewWithLexicon(lex *lexicon.Lexicon, policy scoring.Policy) *Analyzer {
	return &Analyzer{
		lex:       lex,
		extractor: extraction.New(lex),
		resolver:  relations.New(lex),
		domains:   classify.NewDomainClassifier(),
		scorer:    scoring.NewScorer(policy),
	}
}

// Analyze scores a resume against a job description.
func (a *Analyzer) Analyze(resumeText, jobText string) (*Result, error) {
	detailed, err := a.AnalyzeDetailed(resumeText, jobText)
	if err != nil {
		return nil, err
	}
	return &detailed.Result, nil
}

// AnalyzeDetailed is Analyze plus the classification and scoring
// intermediates.
func (a *Analyzer) AnalyzeDetailed(resumeText, jobText string) (*DetailedResult, error) {
	if strings.TrimSpace(resumeText) == "" {
		return nil, &InvalidInputError{Field: "resume", Reason: "text is empty"}
	}
	if strings.TrimSpace(jobText) == "" {
		return nil, &InvalidInputError{Field: "job description", Reason: "text is empty"}
	}

	resumeNorm := parsing.Clean(resumeText)
	jobNorm := parsing.Clean(jobText)

	resumeSkills := a.extractor.Skills(resumeNorm)
	jobSkills := a.extractor.Skills(jobNorm)

	match := matching.Match(a.resolver, resumeSkills, jobSkills)

	score, breakdown := a.scorer.Score(match, resumeText, jobText)

	out := &DetailedResult{
		Result: Result{
			Score:         score,
			MatchedSkills: matching.Sorted(match.Matched),
			MissingSkills: matching.Sorted(match.Missing),
			ExtraSkills:   matching.Sorted(match.Extra),
			Suggestions:   suggest.Generate(match, score),
		},
		ResumeDomain: a.domains.Detect(tokenSet(resumeNorm)).String(),
		JobDomain:    a.domains.Detect(tokenSet(jobNorm)).String(),
		Breakdown:    breakdown,
	}
	return out, nil
}

func tokenSet(normalized string) map[string]bool {
	set := make(map[string]bool)
	for _, tok := range parsing.Tokenize(normalized) {
		set[tok] = true
	}
	return set
}
