package classify

import "strings"

// ResumeProfile is the resume-side background category.
type ResumeProfile int

const (
	// Technical: strong programming/engineering signals.
	Technical ResumeProfile = iota
	// Mixed: some technical signals but not a purely technical background.
	Mixed
	// ProfileNonTech: minimal technical signals.
	ProfileNonTech
)

// AllResumeProfiles lists every profile category, for completeness checks.
var AllResumeProfiles = []ResumeProfile{Technical, Mixed, ProfileNonTech}

func (p ResumeProfile) String() string {
	switch p {
	case Technical:
		return "TECHNICAL"
	case Mixed:
		return "MIXED"
	default:
		return "NON_TECH"
	}
}

var techSignalKeywords = []string{
	"python", "java", "ml", "ai", "sql", "api", "github",
	"project", "javascript", "programming", "code", "software",
	"algorithm", "data structure", "backend", "frontend", "devops",
}

// ProfileDetector classifies resume text into a background profile by
// counting technical signals. Construct with NewProfileDetector.
type ProfileDetector struct {
	signals []string
}

// NewProfileDetector returns a detector with the default signal table.
func NewProfileDetector() *ProfileDetector {
	return &ProfileDetector{signals: techSignalKeywords}
}

// Detect classifies the resume text. Same substring-counting tradeoff as the
// role detector.
func (d *ProfileDetector) Detect(resumeText string) ResumeProfile {
	text := strings.ToLower(resumeText)

	signals := countSignals(text, d.signals)

	switch {
	case signals >= 5:
		return Technical
	case signals >= 2:
		return Mixed
	default:
		return ProfileNonTech
	}
}
