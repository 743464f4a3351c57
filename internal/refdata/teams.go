package refdata

// Team name pool for a B2B SaaS organization. The team generator shuffles
// this pool and pops names so no two teams collide within a run.
var TeamNames = []string{
	"Platform Engineering", "Frontend Team", "Backend Services", "DevOps",
	"Infrastructure", "Mobile Engineering", "Data Engineering",
	"Security Team", "QA Engineering",

	"Product Management", "Product Design", "User Experience",
	"Product Analytics",

	"Growth Marketing", "Content Marketing", "Product Marketing",
	"Demand Generation", "Brand Marketing", "Marketing Operations",

	"Enterprise Sales", "SMB Sales", "Sales Engineering", "Customer Success",

	"People Operations", "Finance", "Legal", "IT Operations", "Facilities",

	"Customer Support", "Business Development", "Partnerships",
}

// Colors is the shared palette for teams, projects and tags.
var Colors = []string{
	"blue", "green", "orange", "red", "purple", "pink", "yellow", "cyan", "teal",
}
