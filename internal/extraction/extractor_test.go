package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-analyzer/internal/lexicon"
	"github.com/jonathan/resume-analyzer/internal/parsing"
)

func TestSkills_WhitelistedTokensOnly(t *testing.T) {
	e := New(lexicon.Default())

	text := parsing.Clean("Experienced in Java, Python and SQL. Passionate team player.")
	skills := e.Skills(text)

	assert.True(t, skills["java"])
	assert.True(t, skills["python"])
	assert.True(t, skills["sql"])
	assert.False(t, skills["passionate"])
	assert.False(t, skills["team"])
}

func TestSkills_StopWordsFiltered(t *testing.T) {
	e := New(lexicon.Default())

	skills := e.Skills("the and with java in")

	assert.Equal(t, map[string]bool{"java": true}, skills)
}

func TestSkills_ShortTokensFiltered(t *testing.T) {
	e := New(lexicon.Default())

	// Normalization reduces "C++" to "c", which is too short to keep.
	skills := e.Skills(parsing.Clean("C++ and Go"))

	assert.False(t, skills["c"])
	assert.True(t, skills["go"])
}

func TestSkills_DuplicatesCollapse(t *testing.T) {
	e := New(lexicon.Default())

	skills := e.Skills("python python python")

	assert.Len(t, skills, 1)
}

func TestSkills_EmptyText(t *testing.T) {
	e := New(lexicon.Default())

	assert.Empty(t, e.Skills(""))
}

func TestSkills_DegradedLexicon(t *testing.T) {
	e := New(lexicon.Degraded())

	skills := e.Skills("java python sql docker")

	assert.Empty(t, skills)
}
