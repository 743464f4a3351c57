package refdata

// Organization-wide tag pool. Generated once per run, independent of the
// configured entity counts.
var TagNames = []string{
	"high-priority", "low-priority", "urgent", "blocked",

	"needs-review", "in-review", "ready", "on-hold",

	"bug", "feature", "enhancement", "documentation", "refactor",

	"frontend", "backend", "mobile", "infrastructure", "security",

	"api", "ui", "database", "testing", "deployment",

	"customer-request", "internal", "external", "breaking-change",
}
