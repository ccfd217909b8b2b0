package classify

// Skill importance: partitioning a skill set into core vs. secondary for a
// given role. Core means critical to the role's actual competency; frameworks
// and tools are always secondary signals, whatever the role.

// neverCoreSkills are frameworks/tools that never count as core. Knowing a
// framework is evidence of using fundamentals, not a fundamental itself.
var neverCoreSkills = toSet([]string{
	"spring", "springboot", "nodejs", "node", "react", "angular", "vue",
	"docker", "kubernetes", "aws", "azure", "gcp", "microservices",
	"jenkins", "gitlab", "terraform", "ansible", "kafka", "redis",
	"mongodb", "postgresql", "mysql", "flask", "django", "express",
	"fastapi", "dotnet", "elasticsearch", "rabbitmq", "nginx", "apache",
	"cicd", "ci-cd", "devops", "jira", "confluence", "grafana", "prometheus",
})

// coreTechSkills are programming fundamentals: languages, CS basics, SQL,
// version control, API fundamentals.
var coreTechSkills = toSet([]string{
	"python", "java", "javascript", "typescript", "c", "cpp",
	"csharp", "go", "ruby", "php", "rust", "kotlin", "scala",
	"dsa", "data-structures", "algorithms", "programming", "coding",
	"sql", "database",
	"git",
	"api", "rest",
})

// coreAISkills extend the tech fundamentals for AI/ML-leaning roles.
var coreAISkills = toSet([]string{
	"python", "ml", "ai", "sql", "tensorflow", "pytorch",
	"pandas", "numpy", "algorithms", "data",
})

var coreBusinessSkills = toSet([]string{
	"communication", "sales", "negotiation", "excel",
	"presentation", "crm", "analytical", "business-development",
})

var coreMarketingSkills = toSet([]string{
	"marketing", "seo", "content", "google-analytics",
	"communication", "email-marketing", "digital-marketing",
})

var coreDesignSkills = toSet([]string{
	"figma", "adobe-xd", "sketch", "user-experience", "user-interface",
	"wireframing", "prototyping", "user-research", "usability",
	"design-systems", "visual-design",
})

// ImportanceClassifier partitions skills into core vs. secondary for a role.
// Construct with NewImportanceClassifier.
type ImportanceClassifier struct {
	neverCore map[string]bool
	tech      map[string]bool
	ai        map[string]bool
	business  map[string]bool
	marketing map[string]bool
	design    map[string]bool
}

// NewImportanceClassifier returns a classifier with the default rule tables.
func NewImportanceClassifier() *ImportanceClassifier {
	return &ImportanceClassifier{
		neverCore: neverCoreSkills,
		tech:      coreTechSkills,
		ai:        coreAISkills,
		business:  coreBusinessSkills,
		marketing: coreMarketingSkills,
		design:    coreDesignSkills,
	}
}

// Core returns the subset of skills considered core for the role.
func (c *ImportanceClassifier) Core(skills map[string]bool, role RoleIntent) map[string]bool {
	core := make(map[string]bool)
	for skill := range skills {
		if c.IsCore(skill, role) {
			core[skill] = true
		}
	}
	return core
}

// IsCore reports whether a single skill is core for the role.
func (c *ImportanceClassifier) IsCore(skill string, role RoleIntent) bool {
	if c.neverCore[skill] {
		return false
	}

	// Markup languages are development skills, irrelevant to design or
	// marketing core competency.
	if (skill == "html" || skill == "css") && role == TechAdjacent {
		return false
	}

	switch role {
	case TechCore:
		return c.tech[skill] || c.ai[skill]
	case TechAdjacent:
		return c.marketing[skill] || c.business[skill] || c.design[skill]
	default:
		return c.business[skill]
	}
}

func toSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, item := range items {
		set[item] = true
	}
	return set
}
