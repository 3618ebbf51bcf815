package textmine

// Technical vocabulary recognized by the keyword extractor. Entries are
// lowercase; single words match whole tokens only, multi-word phrases match
// anywhere. Recognized terms always sort ahead of frequency keywords.
var technicalVocab = []string{
	// languages and runtimes
	"java", "python", "golang", "c++", "c#", ".net", "javascript", "typescript",
	"react", "angular", "node.js", "ruby", "php", "scala", "kotlin", "swift",
	"rust", "fortran", "cobol", "matlab", "sql", "pl/sql",

	// cloud and platforms
	"aws", "amazon web services", "azure", "gcp", "google cloud",
	"govcloud", "cloud migration", "kubernetes", "docker", "openshift",
	"terraform", "ansible", "serverless", "virtualization", "vmware",

	// data
	"postgresql", "mysql", "oracle", "sql server", "mongodb", "redis",
	"elasticsearch", "kafka", "hadoop", "spark", "snowflake", "databricks",
	"data warehouse", "data lake", "etl", "business intelligence", "tableau",
	"power bi", "data analytics", "big data",

	// ai / ml
	"machine learning", "artificial intelligence", "deep learning",
	"natural language processing", "computer vision", "predictive analytics",
	"tensorflow", "pytorch", "llm", "generative ai",

	// security
	"cybersecurity", "zero trust", "penetration testing", "vulnerability assessment",
	"siem", "incident response", "fedramp", "fisma", "nist 800-53", "nist 800-171",
	"cmmc", "rmf", "ato", "stig", "encryption", "pki", "identity management",
	"security operations center", "threat intelligence",

	// networking / infra
	"network engineering", "sd-wan", "voip", "firewall", "load balancing",
	"data center", "disaster recovery", "high availability", "infrastructure as code",
	"system administration", "help desk", "service desk", "itsm", "servicenow",

	// engineering and delivery
	"devops", "devsecops", "ci/cd", "agile", "scrum", "safe", "kanban",
	"software development", "systems engineering", "systems integration",
	"api development", "microservices", "legacy modernization",
	"test automation", "quality assurance", "configuration management",
	"requirements analysis", "enterprise architecture",

	// certifications and standards
	"pmp", "itil", "cissp", "cism", "ceh", "security+", "comptia",
	"iso 9001", "cmmi", "six sigma",

	// federal domain
	"section 508", "fips 140", "earned value management",
	"geospatial", "gis", "logistics", "supply chain", "erp", "sap",
	"salesforce", "sharepoint", "records management", "grants management",
	"human capital", "financial management", "audit readiness",
}

var technicalVocabSet = func() map[string]struct{} {
	s := make(map[string]struct{}, len(technicalVocab))
	for _, t := range technicalVocab {
		s[t] = struct{}{}
	}
	return s
}()

// IsTechnicalTerm reports whether kw (lowercase) is in the technical
// vocabulary. The capability scorer uses this for its technical-overlap bonus.
func IsTechnicalTerm(kw string) bool {
	_, ok := technicalVocabSet[kw]
	return ok
}
