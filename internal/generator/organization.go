package generator

import (
	"worksim.dev/worksim/common/id"
	"worksim.dev/worksim/internal/model"
	"worksim.dev/worksim/internal/refdata"
)

// Organization picks a company from the reference table and derives its
// email domain from the name. The organization is created at the start of
// the window so every other entity can follow it.
func (g *Generator) Organization() model.Organization {
	name := refdata.CompanyNames[g.r.Intn(len(refdata.CompanyNames))]
	return model.Organization{
		ID:             id.New(),
		Name:           name,
		Domain:         refdata.CompanyDomain(name, g.r),
		IsOrganization: true,
		CreatedAt:      g.tl.Start(),
	}
}
