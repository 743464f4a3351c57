package generator

import (
	"worksim.dev/worksim/common/id"
	"worksim.dev/worksim/internal/model"
	"worksim.dev/worksim/internal/refdata"
)

// Sections instantiates the section template for the project's type.
// Positions run from 0 in template order and sections are created at the
// same moment as their project.
func (g *Generator) Sections(project model.Project) []model.Section {
	names := refdata.SectionTemplates[project.Type]
	sections := make([]model.Section, 0, len(names))
	for i, name := range names {
		sections = append(sections, model.Section{
			ID:        id.New(),
			ProjectID: project.ID,
			Name:      name,
			Position:  i,
			CreatedAt: project.CreatedAt,
		})
	}
	return sections
}
