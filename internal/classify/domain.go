package classify

// Domain is a coarse document category used in explain output. The
// domain-compatibility scoring path it once fed was superseded by the
// role-intent and resume-profile model; the classifier itself remains useful
// for explaining results.
type Domain int

const (
	Engineering Domain = iota
	AIData
	DevOps
	Business
	General
)

// AllDomains lists every domain category.
var AllDomains = []Domain{Engineering, AIData, DevOps, Business, General}

func (d Domain) String() string {
	switch d {
	case Engineering:
		return "ENGINEERING"
	case AIData:
		return "AI_DATA"
	case DevOps:
		return "DEVOPS"
	case Business:
		return "BUSINESS"
	default:
		return "GENERAL"
	}
}

// domainEntry pairs a domain with its characteristic keywords. Ordered so
// majority-vote ties break deterministically by table position.
type domainEntry struct {
	domain   Domain
	keywords []string
}

var defaultDomainTable = []domainEntry{
	{Engineering, []string{
		"software", "developer", "engineer", "backend", "frontend",
		"java", "python", "api", "system", "coding", "dsa", "algorithm",
		"programming", "development", "web", "mobile", "application",
	}},
	{AIData, []string{
		"ai", "ml", "data", "model", "nlp", "tensorflow", "pytorch",
		"pandas", "numpy", "analytics", "statistics",
	}},
	{DevOps, []string{
		"devops", "linux", "cloud", "docker", "kubernetes", "aws", "azure",
		"automation", "cicd", "jenkins", "terraform", "infrastructure",
		"deployment",
	}},
	{Business, []string{
		"sales", "marketing", "growth", "business", "client", "customer",
		"seo", "lead", "strategy", "revenue", "partnership", "account",
		"management",
	}},
}

// DomainClassifier assigns a domain to a token set by keyword-hit majority
// vote. Construct with NewDomainClassifier.
type DomainClassifier struct {
	table []domainEntry
}

// NewDomainClassifier returns a classifier with the default keyword table.
func NewDomainClassifier() *DomainClassifier {
	return &DomainClassifier{table: defaultDomainTable}
}

// Detect returns the domain with the most keyword hits against the token set.
// A strict-greater comparison keeps the first-listed domain on ties, and
// General is returned when nothing scores above zero.
func (c *DomainClassifier) Detect(tokens map[string]bool) Domain {
	best := General
	maxHits := 0

	for _, entry := range c.table {
		hits := 0
		for _, keyword := range entry.keywords {
			if tokens[keyword] {
				hits++
			}
		}
		if hits > maxHits {
			maxHits = hits
			best = entry.domain
		}
	}

	return best
}
