package lexicon

// Default tables. Tokens are the post-normalization single-word forms
// (lowercase letters only): "node.js" arrives as "node" and "js", "CI/CD" as
// "ci" and "cd". Hyphenated entries in the synonym and false-friend lists are
// kept for callers that probe the resolver with raw phrases.

// defaultSkills is the skill whitelist: tokens the extractor treats as actual
// skills rather than generic vocabulary.
var defaultSkills = []string{
	// Programming languages
	"python", "java", "javascript", "typescript", "js", "ts", "go", "golang",
	"ruby", "php", "rust", "kotlin", "scala", "c", "cpp", "csharp", "swift",
	"perl", "r", "matlab", "bash", "shell", "powershell", "dart", "elixir",
	"haskell", "lua", "py",

	// Web and frameworks
	"html", "css", "sass", "less", "react", "reactjs", "angular", "vue",
	"vuejs", "svelte", "node", "nodejs", "express", "django", "flask",
	"fastapi", "spring", "springboot", "hibernate", "rails", "laravel",
	"dotnet", "jquery", "bootstrap", "tailwind", "redux", "nextjs", "gatsby",
	"flutter", "android", "ios",

	// Data, AI and analytics
	"ml", "ai", "nlp", "tensorflow", "pytorch", "keras", "pandas", "numpy",
	"scipy", "sklearn", "spark", "hadoop", "hive", "airflow", "etl",
	"tableau", "powerbi", "statistics", "analytics", "data", "dsa",
	"algorithm", "algorithms",

	// Databases
	"sql", "nosql", "mysql", "postgresql", "postgres", "mariadb", "mongodb",
	"sqlite", "oracle", "cassandra", "dynamodb", "snowflake", "redshift",
	"redis", "memcached", "elasticsearch", "database",

	// DevOps, cloud and tooling
	"docker", "kubernetes", "k8s", "aws", "azure", "gcp", "terraform",
	"ansible", "jenkins", "git", "github", "gitlab", "cicd", "ci", "cd",
	"linux", "unix", "nginx", "apache", "grafana", "prometheus", "kibana",
	"logstash", "rabbitmq", "kafka", "helm", "istio", "serverless", "lambda",
	"maven", "gradle", "webpack", "npm", "devops", "microservices",

	// Concepts and practices
	"api", "rest", "graphql", "grpc", "soap", "oop", "tdd", "agile", "scrum",
	"kanban", "jira", "confluence", "testing", "selenium", "junit", "jest",
	"cypress", "mocha", "debugging", "security", "oauth", "jwt", "websocket",
	"json", "xml", "yaml", "protobuf", "coding", "programming",

	// Business, marketing and design
	"marketing", "seo", "sem", "crm", "sales", "negotiation", "communication",
	"presentation", "leadership", "management", "salesforce", "hubspot",
	"copywriting", "branding", "advertising", "analytical", "research",
	"figma", "sketch", "photoshop", "illustrator", "wireframing",
	"prototyping", "usability", "excel", "powerpoint", "word", "spreadsheet",
	"sheets", "slides", "canva", "ppt",
}

// defaultStopWords filters common words plus HR/business vocabulary that looks
// skill-like but carries no signal.
var defaultStopWords = []string{
	"a", "an", "and", "are", "as", "at", "be", "by", "for",
	"from", "has", "he", "in", "is", "it", "its", "of", "on",
	"that", "the", "to", "was", "will", "with", "this",
	"but", "they", "have", "had", "what", "when", "where", "who",
	"which", "why", "how", "all", "each", "every", "both", "few",
	"more", "most", "other", "some", "such", "no", "nor", "not",
	"only", "own", "same", "so", "than", "too", "very", "can",
	"just", "should", "now", "experience", "work", "working",
	"development", "developer", "project", "projects", "responsible",
	"responsibilities", "using", "used", "including", "ability",
	"knowledge", "understanding", "years", "months", "skills",
	"skill", "strong", "good", "excellent", "proficient",
	// Common business/HR terms that are not skills.
	"conversion", "performance", "familiarity", "pursuing", "completed",
	"degree", "bachelor", "master", "internship", "fulltime", "parttime",
	"fresher", "candidate", "applicant", "required", "preferred", "mandatory",
	"responsibility", "qualification", "opportunity", "benefit", "package",
}

// defaultSynonymGroups maps a canonical label to its equivalent spellings.
// The canonical label is always a member of its own group.
var defaultSynonymGroups = map[string][]string{
	// Version control
	"git": {"git", "github", "gitlab"},

	// AI/ML
	"ml":  {"ml", "machine-learning"},
	"ai":  {"ai", "artificial-intelligence"},
	"nlp": {"nlp", "natural-language-processing"},

	// Office tools
	"excel":      {"excel", "ms-excel", "microsoft-excel", "spreadsheet", "sheets"},
	"powerpoint": {"powerpoint", "ppt", "ms-powerpoint", "presentation", "slides"},
	"word":       {"word", "ms-word", "microsoft-word"},

	// Methodologies
	"agile": {"agile", "scrum", "kanban"},

	// Programming languages
	"javascript": {"javascript", "js", "node", "nodejs"},
	"typescript": {"typescript", "ts"},
	"python":     {"python", "py"},
	"go":         {"go", "golang"},

	// Frameworks
	"react": {"react", "reactjs"},
	"vue":   {"vue", "vuejs"},

	// Databases
	"sql": {"sql", "mysql", "postgresql", "postgres", "mariadb"},

	// Cloud
	"aws":        {"aws", "amazon-web-services"},
	"azure":      {"azure", "microsoft-azure"},
	"gcp":        {"gcp", "google-cloud", "google-cloud-platform"},
	"kubernetes": {"kubernetes", "k8s"},

	// CI/CD
	"cicd": {"cicd", "ci-cd", "ci", "cd", "continuous-integration"},

	// Data structures
	"dsa": {"dsa", "data-structures", "data-structures-algorithms"},
}

// analyticsToolTerms and analyticalMindsetTerms sound alike but mean different
// things: an analytics platform is a tool, analytical thinking is a mindset.
// The resolver forces every cross pair unrelated.
var analyticsToolTerms = []string{
	"analytics", "google-analytics", "data-analytics",
	"web-analytics", "business-analytics", "tableau-analytics",
}

var analyticalMindsetTerms = []string{
	"analytical", "analytical-thinking", "analytical-skills",
	"critical-thinking", "problem-solving",
}
