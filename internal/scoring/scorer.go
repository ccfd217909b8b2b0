package scoring

import (
	"math"

	"github.com/jonathan/resume-analyzer/internal/classify"
	"github.com/jonathan/resume-analyzer/internal/matching"
)

// Breakdown records the intermediate values behind a score, for explain
// output and debugging. All fields are derived; none feed back into scoring.
type Breakdown struct {
	Role       classify.RoleIntent    `json:"role"`
	Profile    classify.ResumeProfile `json:"profile"`
	DesignRole bool                   `json:"design_role"`

	VagueJob     bool    `json:"vague_job"`
	CoreMatched  int     `json:"core_matched"`
	CoreRequired int     `json:"core_required"`
	CoreRate     float64 `json:"core_rate"`
	OverallRate  float64 `json:"overall_rate"`
	SkillScore   float64 `json:"skill_score"`
	Multiplier   float64 `json:"multiplier"`
	Final        int     `json:"final"`
}

// Scorer computes the final match percentage from a match result and the two
// raw document texts. Construct with NewScorer; the zero value is unusable.
type Scorer struct {
	policy     Policy
	matrix     *Matrix
	roles      *classify.RoleDetector
	profiles   *classify.ProfileDetector
	importance *classify.ImportanceClassifier
}

// NewScorer returns a scorer using the given policy with default classifiers
// and the default compatibility matrix.
func NewScorer(policy Policy) *Scorer {
	return &Scorer{
		policy:     policy,
		matrix:     DefaultMatrix(),
		roles:      classify.NewRoleDetector(),
		profiles:   classify.NewProfileDetector(),
		importance: classify.NewImportanceClassifier(),
	}
}

// Score produces the final percentage in [role floor, MaxScore] along with
// the breakdown of how it was computed.
//
// The raw texts are consulted for role/profile classification only; all skill
// arithmetic runs on the canonical match result.
func (s *Scorer) Score(match matching.Result, resumeText, jobText string) (int, Breakdown) {
	b := Breakdown{
		Role:       s.roles.Detect(jobText),
		Profile:    s.profiles.Detect(resumeText),
		DesignRole: s.roles.IsDesignRole(jobText),
	}

	b.SkillScore = s.skillScore(match, b.Role, &b)

	b.Multiplier = s.matrix.Multiplier(b.Role, b.Profile)
	if b.DesignRole && b.Profile == classify.Technical {
		// A development-heavy resume against a pure design posting is a much
		// weaker fit than the generic tech-adjacent cell suggests.
		b.Multiplier *= s.policy.DesignPenalty
	}

	final := int(math.Round(b.SkillScore * b.Multiplier * 100))
	if floor := s.matrix.Floor(b.Role); final < floor {
		final = floor
	}
	if final > s.policy.MaxScore {
		final = s.policy.MaxScore
	}
	b.Final = final

	return final, b
}

// skillScore computes the compatibility-independent skill component in
// [SkillScoreFloor, SkillScoreCeil].
func (s *Scorer) skillScore(match matching.Result, role classify.RoleIntent, b *Breakdown) float64 {
	matched := len(match.Matched)
	missing := len(match.Missing)
	total := matched + missing

	// A job description with almost no recognizable skills gives nothing to
	// divide by; score it on a fixed weak baseline instead.
	if total < s.policy.VagueSignalMin {
		b.VagueJob = true
		return s.policy.VagueBaseline
	}

	required := union(match.Matched, match.Missing)
	coreRequired := s.importance.Core(required, role)
	coreMatched := s.importance.Core(match.Matched, role)

	b.CoreRequired = len(coreRequired)
	b.CoreMatched = len(coreMatched)

	b.OverallRate = float64(matched) / float64(total)

	// No core skills demanded: the overall rate is the only signal, taken as
	// is. The gap penalty and core bonus are judgments about core coverage
	// and have nothing to measure here.
	if len(coreRequired) == 0 {
		b.CoreRate = b.OverallRate
		return clamp(b.OverallRate, s.policy.SkillScoreFloor, s.policy.SkillScoreCeil)
	}

	b.CoreRate = float64(len(coreMatched)) / float64(len(coreRequired))

	score := s.policy.CoreWeight*b.CoreRate + s.policy.OverallWeight*b.OverallRate

	if float64(missing) > s.policy.GapRatio*float64(matched) {
		score *= s.policy.GapPenalty
	}

	if b.CoreRate >= s.policy.BonusCoreRate && len(coreMatched) >= s.policy.BonusMinCore {
		score = math.Min(score*s.policy.BonusFactor, s.policy.SkillScoreCeil)
	}

	return clamp(score, s.policy.SkillScoreFloor, s.policy.SkillScoreCeil)
}

func union(a, b map[string]bool) map[string]bool {
	out := make(map[string]bool, len(a)+len(b))
	for k := range a {
		out[k] = true
	}
	for k := range b {
		out[k] = true
	}
	return out
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
