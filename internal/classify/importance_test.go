package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsCore_FrameworksNeverCore(t *testing.T) {
	c := NewImportanceClassifier()

	for _, role := range AllRoleIntents {
		assert.False(t, c.IsCore("react", role), "react must not be core for %s", role)
		assert.False(t, c.IsCore("docker", role), "docker must not be core for %s", role)
		assert.False(t, c.IsCore("spring", role), "spring must not be core for %s", role)
	}
}

func TestIsCore_TechCoreFundamentals(t *testing.T) {
	c := NewImportanceClassifier()

	assert.True(t, c.IsCore("python", TechCore))
	assert.True(t, c.IsCore("sql", TechCore))
	assert.True(t, c.IsCore("git", TechCore))
	assert.True(t, c.IsCore("algorithms", TechCore))
	assert.True(t, c.IsCore("tensorflow", TechCore)) // AI fundamentals fold in
	assert.False(t, c.IsCore("figma", TechCore))
}

func TestIsCore_TechAdjacentRoles(t *testing.T) {
	c := NewImportanceClassifier()

	assert.True(t, c.IsCore("seo", TechAdjacent))
	assert.True(t, c.IsCore("communication", TechAdjacent))
	assert.True(t, c.IsCore("figma", TechAdjacent))
	assert.False(t, c.IsCore("python", TechAdjacent))
}

func TestIsCore_MarkupExcludedForTechAdjacent(t *testing.T) {
	c := NewImportanceClassifier()

	assert.False(t, c.IsCore("html", TechAdjacent))
	assert.False(t, c.IsCore("css", TechAdjacent))
}

func TestIsCore_NonTechUsesBusinessSkills(t *testing.T) {
	c := NewImportanceClassifier()

	assert.True(t, c.IsCore("sales", RoleNonTech))
	assert.True(t, c.IsCore("excel", RoleNonTech))
	assert.False(t, c.IsCore("python", RoleNonTech))
	assert.False(t, c.IsCore("seo", RoleNonTech))
}

func TestCore_FiltersSet(t *testing.T) {
	c := NewImportanceClassifier()

	core := c.Core(tokens("python", "react", "sql", "docker", "git"), TechCore)

	assert.Equal(t, tokens("python", "sql", "git"), core)
}
