// Package classify contains the rule-based classifiers that feed scoring:
// job-role intent, resume background profile, document domain, and skill
// importance. All classifiers are table-driven, deterministic, and always
// produce a category (defaults exist for every decision rule).
package classify

import "strings"

// RoleIntent is the job-side category.
type RoleIntent int

const (
	// TechCore covers core technical roles: SDE, AI engineer, DevOps, data scientist.
	TechCore RoleIntent = iota
	// TechAdjacent covers marketing, business analyst, growth, product, design.
	TechAdjacent
	// RoleNonTech covers sales, HR, customer success and similar roles.
	RoleNonTech
)

// AllRoleIntents lists every role category, for completeness checks across
// dependent tables.
var AllRoleIntents = []RoleIntent{TechCore, TechAdjacent, RoleNonTech}

func (r RoleIntent) String() string {
	switch r {
	case TechCore:
		return "TECH_CORE"
	case TechAdjacent:
		return "TECH_ADJACENT"
	default:
		return "NON_TECH"
	}
}

var techCoreKeywords = []string{
	"software", "developer", "engineer", "ai", "machine learning",
	"data scientist", "devops", "backend", "frontend", "sde",
	"programming", "coding", "algorithm", "infrastructure",
	"cloud engineer", "ml engineer", "full stack",
}

var techAdjacentKeywords = []string{
	"marketing", "business", "growth", "analyst", "operations",
	"strategy", "content", "seo", "digital marketing", "product manager",
	"business development", "sales engineer", "technical writer",
}

// designKeywords signal a pure design role; devFrameworkKeywords signal that
// the posting expects actual front-end development work.
var designKeywords = []string{
	"ui/ux", "ux designer", "ui designer", "user experience", "user interface",
	"figma", "sketch", "adobe xd", "wireframe", "wireframing", "prototyp",
	"user research", "usability", "design system", "visual design",
	"interaction design",
}

var devFrameworkKeywords = []string{
	"react", "angular", "vue", "svelte", "next.js", "jquery",
}

// RoleDetector classifies job descriptions into role-intent categories.
// The zero value is unusable; construct with NewRoleDetector.
type RoleDetector struct {
	techCore     []string
	techAdjacent []string
	design       []string
	devFramework []string
}

// NewRoleDetector returns a detector with the default keyword tables.
func NewRoleDetector() *RoleDetector {
	return &RoleDetector{
		techCore:     techCoreKeywords,
		techAdjacent: techAdjacentKeywords,
		design:       designKeywords,
		devFramework: devFrameworkKeywords,
	}
}

// Detect classifies the job-description text.
//
// Signals are counted by substring presence over the raw lowercased text, not
// token membership: this catches multi-word phrases ("machine learning") at
// the cost of occasional hits inside unrelated words. Known precision
// tradeoff, kept deliberately.
//
// The decision is threshold-based rather than argmax: a strong and dominant
// tech-core signal wins outright; otherwise a moderate tech-adjacent signal
// wins; a moderate tech-core signal alone is treated as tech-adjacent (job
// posts for hybrid roles mention some tech vocabulary without being
// engineering roles); a very strong tech-core signal still wins; everything
// else is non-tech.
func (d *RoleDetector) Detect(jobText string) RoleIntent {
	text := strings.ToLower(jobText)

	core := countSignals(text, d.techCore)
	adjacent := countSignals(text, d.techAdjacent)

	switch {
	case core >= 3 && core > 2*adjacent:
		return TechCore
	case adjacent >= 2:
		return TechAdjacent
	case core >= 2 && core <= 4:
		return TechAdjacent
	case core >= 5:
		return TechCore
	default:
		return RoleNonTech
	}
}

// IsDesignRole reports whether the job reads as a pure design role: a high
// design-term signal with little to no front-end framework signal. Used as a
// scoring penalty trigger, not a role category.
func (d *RoleDetector) IsDesignRole(jobText string) bool {
	text := strings.ToLower(jobText)

	design := countSignals(text, d.design)
	dev := countSignals(text, d.devFramework)

	return design >= 3 && dev < 2
}

// countSignals counts how many keywords appear in the text (presence, not
// occurrence frequency).
func countSignals(text string, keywords []string) int {
	count := 0
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			count++
		}
	}
	return count
}
