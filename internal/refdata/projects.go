package refdata

import (
	"fmt"

	"worksim.dev/worksim/internal/model"
)

// ProjectTypeWeight pairs a project type with its sampling weight. The
// slice is ordered so weighted draws are deterministic under a fixed seed.
type ProjectTypeWeight struct {
	Type   model.ProjectType
	Weight float64
}

var ProjectTypeWeights = []ProjectTypeWeight{
	{model.ProjectEngineeringSprint, 0.30},
	{model.ProjectBugTracking, 0.15},
	{model.ProjectMarketingCampaign, 0.20},
	{model.ProjectProductRoadmap, 0.15},
	{model.ProjectOperations, 0.10},
	{model.ProjectDesign, 0.10},
}

// CompletionRates is the per-type band of task completion probability.
var CompletionRates = map[model.ProjectType]float64{
	model.ProjectEngineeringSprint: 0.75,
	model.ProjectBugTracking:       0.65,
	model.ProjectMarketingCampaign: 0.70,
	model.ProjectProductRoadmap:    0.60,
	model.ProjectOperations:        0.65,
	model.ProjectDesign:            0.70,
}

// SectionTemplates lists section names per project type, in display order.
// Positions are assigned sequentially from 0 in this order.
var SectionTemplates = map[model.ProjectType][]string{
	model.ProjectEngineeringSprint: {"Backlog", "To Do", "In Progress", "Code Review", "Testing", "Done"},
	model.ProjectBugTracking:       {"New", "Triaged", "In Progress", "Testing", "Resolved", "Closed"},
	model.ProjectMarketingCampaign: {"Planning", "Content Creation", "Design", "Review", "Published", "Completed"},
	model.ProjectProductRoadmap:    {"Discovery", "Design", "Development", "Testing", "Launch", "Post-Launch"},
	model.ProjectOperations:        {"Requested", "In Progress", "Blocked", "Completed"},
	model.ProjectDesign:            {"Brief", "Research", "Design", "Review", "Handoff", "Complete"},
}

// FieldTemplate describes one custom field definition to create for a
// project. EnumOptions is set exactly when Type is FieldEnum.
type FieldTemplate struct {
	Name        string
	Type        model.FieldType
	EnumOptions []string
}

var (
	priorityOptions        = []string{"Low", "Medium", "High", "Critical"}
	effortOptions          = []string{"Small", "Medium", "Large", "Extra Large"}
	sprintOptions          = []string{"Sprint 1", "Sprint 2", "Sprint 3", "Sprint 4"}
	reproducibilityOptions = []string{"Always", "Sometimes", "Rarely", "Once"}
	channelOptions         = []string{"Email", "Social Media", "Blog", "Website", "Paid Ads"}
	statusOptions          = []string{"Draft", "In Review", "Approved", "Published"}
	categoryOptions        = []string{"Infrastructure", "Process", "Policy", "Tooling"}
)

// FieldTemplates lists the custom field definitions per project type.
var FieldTemplates = map[model.ProjectType][]FieldTemplate{
	model.ProjectEngineeringSprint: {
		{Name: "Priority", Type: model.FieldEnum, EnumOptions: priorityOptions},
		{Name: "Effort", Type: model.FieldEnum, EnumOptions: effortOptions},
		{Name: "Sprint", Type: model.FieldEnum, EnumOptions: sprintOptions},
	},
	model.ProjectBugTracking: {
		{Name: "Severity", Type: model.FieldEnum, EnumOptions: priorityOptions},
		{Name: "Priority", Type: model.FieldEnum, EnumOptions: priorityOptions},
		{Name: "Reproducibility", Type: model.FieldEnum, EnumOptions: reproducibilityOptions},
	},
	model.ProjectMarketingCampaign: {
		{Name: "Channel", Type: model.FieldEnum, EnumOptions: channelOptions},
		{Name: "Priority", Type: model.FieldEnum, EnumOptions: priorityOptions},
		{Name: "Launch Date", Type: model.FieldDate},
	},
	model.ProjectProductRoadmap: {
		{Name: "Priority", Type: model.FieldEnum, EnumOptions: priorityOptions},
		{Name: "Effort", Type: model.FieldEnum, EnumOptions: effortOptions},
		{Name: "Target Date", Type: model.FieldDate},
	},
	model.ProjectOperations: {
		{Name: "Priority", Type: model.FieldEnum, EnumOptions: priorityOptions},
		{Name: "Category", Type: model.FieldEnum, EnumOptions: categoryOptions},
		{Name: "Estimated Cost", Type: model.FieldNumber},
	},
	model.ProjectDesign: {
		{Name: "Priority", Type: model.FieldEnum, EnumOptions: priorityOptions},
		{Name: "Status", Type: model.FieldEnum, EnumOptions: statusOptions},
		{Name: "Review Notes", Type: model.FieldText},
	},
}

// ProjectNameTemplates holds name patterns per project type. {n} is the
// per-type counter, {quarter}/{month}/{year} are filled by the generator.
var ProjectNameTemplates = map[model.ProjectType][]string{
	model.ProjectEngineeringSprint: {
		"Sprint {n} - Platform", "Engineering Sprint {n}",
		"Backend Services Sprint {n}", "Frontend Sprint {n}",
		"Infrastructure Sprint {n}",
	},
	model.ProjectBugTracking: {
		"Bug Tracking - {month}", "Production Issues", "Critical Bugs",
		"Platform Bugs", "Customer Reported Issues",
	},
	model.ProjectMarketingCampaign: {
		"{quarter} Marketing Campaign", "Product Launch Campaign",
		"Brand Awareness {year}", "Growth Campaign - {month}",
		"Content Marketing {quarter}",
	},
	model.ProjectProductRoadmap: {
		"Product Roadmap {year}", "Feature Development {quarter}",
		"Platform Evolution", "Product Strategy {year}", "Innovation Pipeline",
	},
	model.ProjectOperations: {
		"Operations {quarter}", "Process Improvement",
		"Infrastructure Updates", "Compliance {year}", "Internal Tools",
	},
	model.ProjectDesign: {
		"Design System", "UI/UX Improvements", "Design Sprint {n}",
		"User Experience {quarter}", "Visual Identity",
	},
}

// Validate checks that every static table a generator depends on is
// populated. An empty table is a configuration error and aborts the run
// before any entity is generated.
func Validate() error {
	if len(CompanyNames) == 0 {
		return fmt.Errorf("company name table is empty")
	}
	if len(FirstNames) == 0 || len(LastNames) == 0 {
		return fmt.Errorf("person name tables are empty")
	}
	if len(TeamNames) == 0 {
		return fmt.Errorf("team name table is empty")
	}
	if len(TagNames) == 0 {
		return fmt.Errorf("tag name table is empty")
	}
	if len(Colors) == 0 {
		return fmt.Errorf("color palette is empty")
	}
	total := 0.0
	for _, tw := range ProjectTypeWeights {
		total += tw.Weight
	}
	if total <= 0 {
		return fmt.Errorf("project type weights sum to zero")
	}
	for _, tw := range ProjectTypeWeights {
		if len(SectionTemplates[tw.Type]) == 0 {
			return fmt.Errorf("no section template for project type %q", tw.Type)
		}
		if len(ProjectNameTemplates[tw.Type]) == 0 {
			return fmt.Errorf("no name template for project type %q", tw.Type)
		}
		if _, ok := CompletionRates[tw.Type]; !ok {
			return fmt.Errorf("no completion rate for project type %q", tw.Type)
		}
		for _, ft := range FieldTemplates[tw.Type] {
			if ft.Type == model.FieldEnum && len(ft.EnumOptions) == 0 {
				return fmt.Errorf("enum field %q for project type %q has no options", ft.Name, tw.Type)
			}
		}
	}
	return nil
}
