package generator

import (
	"fmt"
	"strconv"
	"strings"

	"worksim.dev/worksim/common/id"
	"worksim.dev/worksim/internal/model"
	"worksim.dev/worksim/internal/refdata"
	"worksim.dev/worksim/internal/stats"
)

const (
	teamOwnedRate          = 0.80
	projectDescriptionRate = 0.60
	publicProjectRate      = 0.10
	archivedRate           = 0.05
)

var monthNames = []string{"January", "February", "March", "April", "May", "June", "July", "August", "September", "October", "November", "December"}

var quarterNames = []string{"Q1", "Q2", "Q3", "Q4"}

// Projects generates count projects. Types follow the weighted mix, 80%
// of projects belong to a team and the rest sit at the organization
// level.
func (g *Generator) Projects(org model.Organization, teams []model.Team, count int) ([]model.Project, error) {
	weighted := make([]stats.Weighted[model.ProjectType], len(refdata.ProjectTypeWeights))
	for i, tw := range refdata.ProjectTypeWeights {
		weighted[i] = stats.Weighted[model.ProjectType]{Item: tw.Type, Weight: tw.Weight}
	}

	projects := make([]model.Project, 0, count)
	for i := 0; i < count; i++ {
		pt, err := stats.Choice(g.r, weighted)
		if err != nil {
			return nil, fmt.Errorf("sample project type: %w", err)
		}

		var teamID *int64
		lowerBound := org.CreatedAt
		if len(teams) > 0 && stats.Bernoulli(g.r, teamOwnedRate) {
			team := teams[g.r.Intn(len(teams))]
			teamID = &team.ID
			lowerBound = team.CreatedAt
		}

		var description *string
		if stats.Bernoulli(g.r, projectDescriptionRate) {
			d := fmt.Sprintf("Project for %s", strings.ReplaceAll(string(pt), "_", " "))
			description = &d
		}

		createdAt := g.tl.CreationTime(lowerBound)
		projects = append(projects, model.Project{
			ID:             id.New(),
			OrganizationID: org.ID,
			TeamID:         teamID,
			Name:           g.projectName(pt),
			Description:    description,
			Type:           pt,
			Color:          refdata.Colors[g.r.Intn(len(refdata.Colors))],
			IsPublic:       stats.Bernoulli(g.r, publicProjectRate),
			Archived:       stats.Bernoulli(g.r, archivedRate),
			CreatedAt:      createdAt,
			ModifiedAt:     g.tl.ModifiedTime(createdAt, g.tl.Now()),
		})
	}
	return projects, nil
}

// projectName fills a name template for the type. {n} is a counter that
// increments per type, so repeated sprints number naturally.
func (g *Generator) projectName(pt model.ProjectType) string {
	templates := refdata.ProjectNameTemplates[pt]
	name := templates[g.r.Intn(len(templates))]

	g.projectCounters[pt]++
	name = strings.ReplaceAll(name, "{n}", strconv.Itoa(g.projectCounters[pt]))
	name = strings.ReplaceAll(name, "{month}", monthNames[g.r.Intn(len(monthNames))])
	name = strings.ReplaceAll(name, "{quarter}", quarterNames[g.r.Intn(len(quarterNames))])
	name = strings.ReplaceAll(name, "{year}", strconv.Itoa(g.tl.Now().Year()))
	return name
}
