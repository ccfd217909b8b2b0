// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/analyzer"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintResult outputs the match score and skill lists.
func (p *Printer) PrintResult(result *analyzer.Result) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Match Score:  %d%%\n", result.Score))
	sb.WriteString("\n")

	writeSkillList(&sb, "Matched", result.MatchedSkills)
	writeSkillList(&sb, "Missing", result.MissingSkills)
	writeSkillList(&sb, "Extra", result.ExtraSkills)

	if len(result.Suggestions) > 0 {
		sb.WriteString("Suggestions:\n")
		for _, s := range result.Suggestions {
			sb.WriteString(fmt.Sprintf("  • %s\n", s))
		}
	}

	p.printBox("ANALYSIS RESULT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintBreakdown outputs the classification and scoring intermediates.
func (p *Printer) PrintBreakdown(detailed *analyzer.DetailedResult) {
	if detailed == nil {
		return
	}

	b := detailed.Breakdown

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Job role:        %s\n", b.Role))
	sb.WriteString(fmt.Sprintf("Resume profile:  %s\n", b.Profile))
	sb.WriteString(fmt.Sprintf("Job domain:      %s\n", detailed.JobDomain))
	sb.WriteString(fmt.Sprintf("Resume domain:   %s\n", detailed.ResumeDomain))
	sb.WriteString("\n")

	if b.VagueJob {
		sb.WriteString("Job description too vague for skill-based scoring.\n")
	} else {
		sb.WriteString(fmt.Sprintf("Core skills:     %d/%d matched\n", b.CoreMatched, b.CoreRequired))
		sb.WriteString(fmt.Sprintf("Core rate:       %.2f\n", b.CoreRate))
		sb.WriteString(fmt.Sprintf("Overall rate:    %.2f\n", b.OverallRate))
	}
	sb.WriteString(fmt.Sprintf("Skill score:     %.2f\n", b.SkillScore))
	sb.WriteString(fmt.Sprintf("Compatibility:   %.2f", b.Multiplier))
	if b.DesignRole {
		sb.WriteString(" (design-role penalty applied)")
	}

	p.printBox("SCORE BREAKDOWN", sb.String())
}

func writeSkillList(sb *strings.Builder, label string, skills []string) {
	if len(skills) == 0 {
		return
	}

	sb.WriteString(fmt.Sprintf("%s (%d):\n", label, len(skills)))
	count := min(len(skills), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", skills[i]))
	}
	if len(skills) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(skills)-maxItemsToShow))
	}
	sb.WriteString("\n")
}
