package scoring

// stopwords are tokens never treated as keywords: function words plus
// generic job-posting vocabulary that appears in every listing.
var stopwords = map[string]bool{}

func init() {
	for _, w := range []string{
		"the", "a", "an", "and", "or", "but", "in", "on", "at", "to", "for",
		"of", "with", "by", "from", "up", "about", "into", "through", "during",
		"it", "its", "this", "that", "these", "those", "they", "their", "our",
		"your", "we", "us", "you", "he", "she", "him", "her",
		"is", "are", "was", "were", "be", "been", "being", "have", "has", "had",
		"do", "does", "did", "will", "would", "should", "could", "may", "might",
		"can", "must", "shall",
		"all", "some", "any", "many", "much", "more", "most", "less", "other",
		"such", "own", "same", "so", "than", "too", "very", "just", "where",
		"when", "how", "what", "who", "which", "there", "here", "then", "now",
		"role", "position", "candidate", "candidates", "job", "work", "working",
		"team", "teams", "company", "business", "organization", "department",
		"responsibilities", "requirements", "qualifications", "preferred",
		"required", "looking", "seeking", "hiring", "join", "help", "support",
		"across", "within", "between", "among", "including", "based", "related",
		"also", "both", "each", "either", "every", "neither", "nor", "not",
		"only", "whether", "as", "if", "because", "since", "while",
		"one", "two", "three", "four", "five", "years", "year", "months", "days",
		"large", "small", "big", "new", "old", "high", "low", "good", "best",
		"strong", "able", "well",
		"experience", "skilled", "skills", "skill", "knowledge", "ability",
		"understanding", "familiarity",
		"engineer", "engineers", "engineering", "developer", "developers",
		"specialist", "manager", "lead", "senior", "junior", "intern",
		"location", "remote", "onsite", "hybrid", "office", "site",
		"time", "full", "part", "contract", "permanent", "temporary",
		"problem", "problems", "solution", "solutions", "issue", "issues",
		"communicate", "communicating", "communication", "collaborate",
		"collaborating", "collaboration", "manage", "managing",
		"database", "databases", "monitoring", "deployment", "design",
		"enjoy", "like", "love", "passion", "passionate", "excited",
		"technology", "technologies", "tool", "tools", "system", "systems",
		"platform", "platforms", "software", "application", "applications",
		"service", "services", "product", "products",
		"responsible", "duties", "tasks", "activities",
		"include", "includes", "various", "multiple",
		"several", "different", "relevant", "appropriate", "necessary",
		"using", "used", "use", "build", "built", "create", "created",
		"develop", "developed", "implement", "implemented", "maintain",
		"write", "writing", "read", "reading", "analyze", "analyzed",
	} {
		stopwords[w] = true
	}
}

// technicalPatterns are short acronyms kept as keywords even though
// they fail the minimum-length heuristics.
var technicalPatterns = map[string]bool{
	"ai": true, "ml": true, "ci": true, "cd": true, "ui": true, "ux": true,
	"api": true, "aws": true, "gcp": true, "sql": true, "nlp": true,
	"rnn": true, "cnn": true, "gpu": true, "cpu": true, "ide": true,
	"cli": true, "etl": true, "iot": true, "sla": true, "sdk": true,
	"c++": true, "c#": true, "go": true, "ios": true, "npm": true,
	"git": true, "ssh": true, "tcp": true, "udp": true, "http": true,
	"rest": true, "soap": true, "json": true, "xml": true, "yaml": true,
	"html": true, "css": true, "s3": true, "ec2": true, "rds": true,
	"vpc": true, "iam": true, "eks": true, "ecs": true, "llm": true,
	"rag": true, "ocr": true,
}

// technicalKeywords is the reference skill vocabulary: languages,
// frameworks, databases, cloud, devops, data, and methodology terms.
var technicalKeywords = map[string]bool{}

func init() {
	for _, w := range []string{
		"python", "java", "javascript", "typescript", "c++", "c#", "go", "rust",
		"ruby", "php", "swift", "kotlin", "scala", "r", "matlab", "perl",
		"react", "angular", "vue", "svelte", "nextjs", "nuxt", "gatsby",
		"django", "flask", "fastapi", "spring", "express", "nestjs",
		"rails", "laravel", "aspnet", "blazor",
		"android", "flutter", "xamarin", "ionic",
		"postgresql", "postgres", "mysql", "mongodb", "redis", "elasticsearch",
		"cassandra", "dynamodb", "neo4j", "oracle", "sqlserver",
		"sqlite", "mariadb", "couchdb", "influxdb",
		"azure", "heroku", "digitalocean", "vercel", "netlify", "cloudflare",
		"docker", "kubernetes", "jenkins", "gitlab", "github",
		"terraform", "ansible", "chef", "puppet", "vagrant",
		"circleci", "travis", "bamboo", "teamcity",
		"pytorch", "tensorflow", "keras", "scikit-learn", "pandas",
		"numpy", "scipy", "spark", "hadoop", "airflow", "kafka",
		"flink", "databricks", "mlflow", "kubeflow",
		"pytest", "junit", "testng", "selenium", "cypress",
		"jest", "mocha", "jasmine", "cucumber", "postman",
		"grafana", "prometheus", "datadog", "newrelic", "splunk",
		"kibana", "logstash", "sentry", "pagerduty",
		"rabbitmq", "activemq", "zeromq", "nats", "pulsar",
		"nginx", "apache", "tomcat", "gunicorn", "uvicorn",
		"svn", "mercurial", "graphql", "grpc", "websocket",
		"oauth", "jwt", "saml", "ldap", "ssl", "tls",
		"linux", "unix", "windows", "macos", "ubuntu", "debian",
		"centos", "redhat", "fedora", "alpine",
		"agile", "scrum", "kanban", "devops", "mlops", "cicd",
		"jira", "confluence", "tableau", "powerbi", "looker",
		"microservices", "serverless", "containerization", "orchestration",
		"frontend", "backend", "fullstack", "nosql", "lambda",
		"vim", "bash", "shell", "powershell",
	} {
		technicalKeywords[w] = true
	}
}

// compoundTerms are multi-word technical phrases matched before
// single-token extraction.
var compoundTerms = []string{
	"machine learning", "deep learning", "data science", "web development",
	"mobile development", "cloud computing", "data engineering",
	"software engineering", "full stack", "front end", "back end",
	"natural language processing", "computer vision", "data analysis",
	"business intelligence", "version control", "continuous integration",
	"continuous deployment", "test driven development", "object oriented",
	"functional programming", "responsive design", "api development",
	"database design", "system design", "code review", "unit testing",
	"integration testing", "performance optimization", "load balancing",
	"message queue", "service mesh", "infrastructure as code",
	"configuration management", "container orchestration",
}

// actionVerbs drive the tone score; resumes lead bullets with these.
var actionVerbs = []string{
	"led", "developed", "built", "designed", "implemented", "created",
	"managed", "optimized", "deployed", "launched", "delivered", "improved",
	"reduced", "increased", "automated", "architected", "migrated",
	"mentored", "shipped", "scaled", "streamlined", "spearheaded",
}

// Role detection vocabularies, checked in order: tech, manager, creative.
var (
	techRoleWords = []string{
		"engineer", "developer", "python", "ml", "machine learning",
		"data scientist", "backend", "frontend", "react", "node",
	}
	managerRoleWords = []string{
		"manager", "lead", "head of", "director", "senior manager",
		"product manager",
	}
	creativeRoleWords = []string{
		"designer", "creative", "ux", "ui", "visual", "copywriter",
	}
)
