package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-analyzer/internal/analyzer"
	"github.com/jonathan/resume-analyzer/internal/classify"
	"github.com/jonathan/resume-analyzer/internal/scoring"
)

func TestPrintResult(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	result := &analyzer.Result{
		Score:         72,
		MatchedSkills: []string{"go", "python", "sql"},
		MissingSkills: []string{"docker", "kubernetes"},
		ExtraSkills:   []string{"photoshop"},
		Suggestions:   []string{"Consider adding experience with docker, which the job requires."},
	}

	p.PrintResult(result)
	output := buf.String()

	assert.Contains(t, output, "ANALYSIS RESULT")
	assert.Contains(t, output, "72%")
	assert.Contains(t, output, "Matched (3):")
	assert.Contains(t, output, "go")
	assert.Contains(t, output, "Missing (2):")
	assert.Contains(t, output, "docker")
	assert.Contains(t, output, "Suggestions:")
}

func TestPrintResult_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintResult(nil)

	assert.Empty(t, buf.String())
}

func TestPrintResult_TruncatesLongLists(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	result := &analyzer.Result{
		Score:         40,
		MissingSkills: []string{"a", "b", "c", "d", "e", "f", "g"},
	}

	p.PrintResult(result)
	output := buf.String()

	assert.Contains(t, output, "Missing (7):")
	assert.Contains(t, output, "... and 2 more")
}

func TestPrintBreakdown(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	detailed := &analyzer.DetailedResult{
		Result:       analyzer.Result{Score: 85},
		ResumeDomain: "ENGINEERING",
		JobDomain:    "ENGINEERING",
		Breakdown: scoring.Breakdown{
			Role:         classify.TechCore,
			Profile:      classify.Technical,
			CoreMatched:  4,
			CoreRequired: 5,
			CoreRate:     0.80,
			OverallRate:  0.75,
			SkillScore:   0.78,
			Multiplier:   0.95,
			Final:        85,
		},
	}

	p.PrintBreakdown(detailed)
	output := buf.String()

	assert.Contains(t, output, "SCORE BREAKDOWN")
	assert.Contains(t, output, "TECH_CORE")
	assert.Contains(t, output, "TECHNICAL")
	assert.Contains(t, output, "4/5 matched")
	assert.Contains(t, output, "0.95")
}

func TestPrintBreakdown_VagueJob(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	detailed := &analyzer.DetailedResult{
		ResumeDomain: "GENERAL",
		JobDomain:    "GENERAL",
		Breakdown: scoring.Breakdown{
			Role:       classify.RoleNonTech,
			Profile:    classify.ProfileNonTech,
			VagueJob:   true,
			SkillScore: 0.25,
			Multiplier: 0.95,
		},
	}

	p.PrintBreakdown(detailed)
	output := buf.String()

	assert.Contains(t, output, "too vague")
	assert.NotContains(t, output, "Core rate")
}

func TestPrintBreakdown_DesignPenalty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	detailed := &analyzer.DetailedResult{
		Breakdown: scoring.Breakdown{
			Role:       classify.TechAdjacent,
			Profile:    classify.Technical,
			DesignRole: true,
			SkillScore: 0.50,
			Multiplier: 0.182,
		},
	}

	p.PrintBreakdown(detailed)

	assert.Contains(t, buf.String(), "design-role penalty applied")
}
