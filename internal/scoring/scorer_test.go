package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-analyzer/internal/classify"
	"github.com/jonathan/resume-analyzer/internal/matching"
)

const backendJob = `We are hiring a Software Engineer. The backend developer
will own programming tasks, algorithm design, and infrastructure work.`

const techResume = `Software engineer with Python and Java experience. Built
backend APIs, published projects on GitHub, strong SQL and algorithm skills.`

const salesJob = `Sales Representative: build client relationships, manage
accounts, and close deals through outreach and negotiation.`

const salesResume = `Sales professional with a track record in account
management, client relationships, and territory growth.`

const designJob = `UX Designer: create wireframes and prototypes in Figma, run
user research and usability studies.`

func set(skills ...string) map[string]bool {
	out := make(map[string]bool, len(skills))
	for _, s := range skills {
		out[s] = true
	}
	return out
}

func match(matched, missing, extra []string) matching.Result {
	return matching.Result{
		Matched: set(matched...),
		Missing: set(missing...),
		Extra:   set(extra...),
	}
}

func TestScore_StrongTechnicalMatch(t *testing.T) {
	s := NewScorer(DefaultPolicy())

	m := match([]string{"python", "java", "sql", "git", "api"}, nil, nil)
	score, b := s.Score(m, techResume, backendJob)

	// Full core coverage earns the bonus, capped at 0.95, then the aligned
	// compatibility cell: round(0.95 * 0.95 * 100) = 90.
	assert.Equal(t, 90, score)
	assert.Equal(t, classify.TechCore, b.Role)
	assert.Equal(t, classify.Technical, b.Profile)
	assert.InDelta(t, 1.0, b.CoreRate, 0.001)
	assert.Equal(t, 0.95, b.SkillScore)
}

func TestScore_VagueJobBaseline(t *testing.T) {
	s := NewScorer(DefaultPolicy())

	// Fewer than three total skill signals: fixed baseline instead of ratios.
	m := match([]string{"communication"}, []string{"excel"}, nil)
	score, b := s.Score(m, salesResume, salesJob)

	assert.True(t, b.VagueJob)
	assert.Equal(t, 0.25, b.SkillScore)
	// 0.25 * 0.95 * 100 = 23.75, rounds to 24.
	assert.Equal(t, 24, score)
}

func TestScore_GapPenaltyApplies(t *testing.T) {
	s := NewScorer(DefaultPolicy())

	withGap := match([]string{"python"}, []string{"java", "sql", "git", "go", "typescript"}, nil)
	_, b := s.Score(withGap, techResume, backendJob)

	// 1/6 blend, then the 0.85 gap penalty.
	assert.InDelta(t, (1.0/6.0)*0.85, b.SkillScore, 0.001)
}

func TestScore_BonusRequiresEnoughCoreMatches(t *testing.T) {
	s := NewScorer(DefaultPolicy())

	// Perfect core rate but only two core matches: no bonus.
	m := match([]string{"python", "sql", "react"}, nil, nil)
	_, b := s.Score(m, techResume, backendJob)

	assert.InDelta(t, 1.0, b.CoreRate, 0.001)
	assert.Equal(t, 2, b.CoreMatched)
	assert.Equal(t, 0.95, b.SkillScore) // clamped at ceiling, not boosted past it
}

func TestScore_DesignRolePenalty(t *testing.T) {
	s := NewScorer(DefaultPolicy())

	m := match([]string{"figma"}, []string{"wireframing", "usability"}, []string{"python", "java"})
	score, b := s.Score(m, techResume, designJob)

	require.True(t, b.DesignRole)
	assert.Equal(t, classify.Technical, b.Profile)
	// The penalty multiplies the compatibility cell down; the role floor
	// catches the result.
	assert.Equal(t, s.matrix.Floor(b.Role), score)
}

func TestScore_FinalBounds(t *testing.T) {
	s := NewScorer(DefaultPolicy())

	cases := []matching.Result{
		match(nil, []string{"java", "sql", "git", "go", "aws"}, nil),
		match([]string{"python", "java", "sql", "git", "api", "go"}, nil, nil),
		match([]string{"excel"}, []string{"sales"}, nil),
	}
	texts := []struct{ resume, job string }{
		{techResume, backendJob},
		{salesResume, salesJob},
		{techResume, salesJob},
		{salesResume, backendJob},
	}

	for _, m := range cases {
		for _, tt := range texts {
			score, _ := s.Score(m, tt.resume, tt.job)
			assert.GreaterOrEqual(t, score, 10)
			assert.LessOrEqual(t, score, 95)
		}
	}
}

func TestScore_MoreMatchesNeverLowersScore(t *testing.T) {
	s := NewScorer(DefaultPolicy())

	smaller := match([]string{"python", "java"}, []string{"sql", "git", "api"}, nil)
	bigger := match([]string{"python", "java", "sql"}, []string{"git", "api"}, nil)

	low, _ := s.Score(smaller, techResume, backendJob)
	high, _ := s.Score(bigger, techResume, backendJob)

	assert.GreaterOrEqual(t, high, low)
}

func TestScore_MismatchedBackgroundScoresLow(t *testing.T) {
	s := NewScorer(DefaultPolicy())

	// Non-tech resume against an engineering role: the 0.30 compatibility
	// cell dominates even a decent skill overlap.
	m := match([]string{"python", "sql"}, []string{"java", "git"}, nil)
	score, b := s.Score(m, salesResume, backendJob)

	assert.Equal(t, classify.ProfileNonTech, b.Profile)
	assert.LessOrEqual(t, score, 30)
	assert.GreaterOrEqual(t, score, 20) // tech-core floor
}

func TestScore_NoCoreSkillsFallsBackToOverallRate(t *testing.T) {
	s := NewScorer(DefaultPolicy())

	// Every skill is framework-tier: core rate mirrors the overall rate.
	m := match([]string{"react", "docker"}, []string{"kubernetes"}, nil)
	_, b := s.Score(m, techResume, backendJob)

	assert.Equal(t, 0, b.CoreRequired)
	assert.InDelta(t, b.OverallRate, b.CoreRate, 0.001)
}

func TestScore_NoCoreSkillsSkipGapPenalty(t *testing.T) {
	s := NewScorer(DefaultPolicy())

	// A framework-only job with a wide gap: without any core skills to judge,
	// the skill score is the plain overall rate, not a penalized blend.
	m := match([]string{"react"},
		[]string{"docker", "kubernetes", "jenkins", "terraform", "ansible"}, nil)
	_, b := s.Score(m, techResume, backendJob)

	require.Equal(t, 0, b.CoreRequired)
	assert.InDelta(t, 1.0/6.0, b.SkillScore, 0.001)
}
