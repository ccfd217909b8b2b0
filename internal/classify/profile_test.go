package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProfileDetector_Technical(t *testing.T) {
	d := NewProfileDetector()

	resume := `Software engineer with Python and Java experience. Built backend
	APIs, published projects on GitHub, strong SQL and algorithm skills.`

	assert.Equal(t, Technical, d.Detect(resume))
}

func TestProfileDetector_Mixed(t *testing.T) {
	d := NewProfileDetector()

	resume := `Marketing analyst. Built dashboards with SQL and automated
	reports with Python scripts.`

	assert.Equal(t, Mixed, d.Detect(resume))
}

func TestProfileDetector_NonTech(t *testing.T) {
	d := NewProfileDetector()

	resume := `Sales professional with a track record in account management,
	client relationships, and territory growth.`

	assert.Equal(t, ProfileNonTech, d.Detect(resume))
}

func TestProfileDetector_EmptyResume(t *testing.T) {
	d := NewProfileDetector()

	assert.Equal(t, ProfileNonTech, d.Detect(""))
}

func TestResumeProfile_String(t *testing.T) {
	assert.Equal(t, "TECHNICAL", Technical.String())
	assert.Equal(t, "MIXED", Mixed.String())
	assert.Equal(t, "NON_TECH", ProfileNonTech.String())
}
