package content

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"worksim.dev/worksim/internal/model"
)

// TemplateProvider fills placeholder templates with vocabulary drawn from
// the supplied random source. It never fails and never touches the
// network, which makes it both the seeded-reproducibility path and the
// fallback for the generative path.
type TemplateProvider struct{}

func NewTemplateProvider() *TemplateProvider {
	return &TemplateProvider{}
}

var taskNameTemplates = map[model.ProjectType][]string{
	model.ProjectEngineeringSprint: {
		"Implement {feature}", "Fix bug in {component}", "Refactor {component}",
		"Add {feature} to {component}", "Optimize {component}", "Update {component}",
	},
	model.ProjectBugTracking: {
		"Fix performance issue in {component}", "Resolve data sync in {component}",
		"Patch security vulnerability", "Fix crash on login", "Resolve data issue",
	},
	model.ProjectMarketingCampaign: {
		"Create blog post for {campaign}", "Design landing page", "Write email copy",
		"Schedule social posts", "Analyze campaign performance",
	},
	model.ProjectProductRoadmap: {
		"Research {feature}", "Design {feature}", "Plan {feature}",
		"Document {feature}", "Validate {feature}",
	},
	model.ProjectOperations: {
		"Update onboarding process", "Review security policy", "Process access request",
		"Audit billing system", "Implement workflow improvement",
	},
	model.ProjectDesign: {
		"Design user interface", "Create design asset", "Update {component} design",
		"Refine user interface", "Create design system component",
	},
}

var subtaskNameTemplates = []string{
	"Review {component}", "Test {feature}", "Update docs", "Verify requirements",
	"Implement component", "Fix bug", "Refactor {component}", "Document {feature}",
}

var (
	componentVocab = []string{"API", "UI", "backend", "frontend", "database", "service", "module"}
	featureVocab   = []string{"authentication", "dashboard", "reporting", "integration", "analytics"}
	campaignVocab  = []string{"Q1 launch", "product launch", "brand refresh", "spring push"}
)

var commentTemplates = []string{
	"Starting work on this now",
	"Making good progress",
	"This is complete and ready for review",
	"Can someone clarify the requirements?",
	"Looks good!",
	"Thanks for the update!",
	"Updated based on feedback",
}

var closingCommentTemplates = []string{
	"This is complete and ready for review",
	"Done, closing this out",
	"Wrapped up, let me know if anything is missing",
}

func fill(r *rand.Rand, template string) string {
	s := template
	s = strings.ReplaceAll(s, "{component}", componentVocab[r.Intn(len(componentVocab))])
	s = strings.ReplaceAll(s, "{feature}", featureVocab[r.Intn(len(featureVocab))])
	s = strings.ReplaceAll(s, "{campaign}", campaignVocab[r.Intn(len(campaignVocab))])
	return s
}

func (p *TemplateProvider) TaskName(_ context.Context, r *rand.Rand, pt model.ProjectType) (string, error) {
	templates, ok := taskNameTemplates[pt]
	if !ok {
		templates = taskNameTemplates[model.ProjectEngineeringSprint]
	}
	return truncateName(fill(r, templates[r.Intn(len(templates))])), nil
}

func (p *TemplateProvider) TaskDescription(_ context.Context, r *rand.Rand, taskName string, pt model.ProjectType, detailed bool) (string, error) {
	if !detailed {
		return fmt.Sprintf("Task: %s", taskName), nil
	}
	return fmt.Sprintf("Task: %s\n\nRequirements:\n- Complete implementation\n- Add tests\n- Update documentation", taskName), nil
}

func (p *TemplateProvider) Comment(_ context.Context, r *rand.Rand, _ string, closing bool) (string, error) {
	if closing {
		return closingCommentTemplates[r.Intn(len(closingCommentTemplates))], nil
	}
	return commentTemplates[r.Intn(len(commentTemplates))], nil
}

// SubtaskName returns a short checklist-style name. Subtasks always use
// templates regardless of strategy.
func (p *TemplateProvider) SubtaskName(r *rand.Rand) string {
	return fill(r, subtaskNameTemplates[r.Intn(len(subtaskNameTemplates))])
}
