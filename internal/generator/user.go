package generator

import (
	"fmt"
	"strings"

	"worksim.dev/worksim/common/id"
	"worksim.dev/worksim/internal/model"
	"worksim.dev/worksim/internal/refdata"
	"worksim.dev/worksim/internal/stats"
)

const activeUserRate = 0.95

// Users generates count members of the organization. Emails follow the
// address pattern mix seen in enterprise directories and are unique
// within the organization; collisions get a numeric suffix.
func (g *Generator) Users(org model.Organization, count int) []model.User {
	users := make([]model.User, 0, count)
	for i := 0; i < count; i++ {
		first := refdata.FirstNames[g.r.Intn(len(refdata.FirstNames))]
		last := refdata.LastNames[g.r.Intn(len(refdata.LastNames))]

		users = append(users, model.User{
			ID:             id.New(),
			OrganizationID: org.ID,
			Name:           first + " " + last,
			Email:          g.uniqueEmail(first, last, org.Domain),
			CreatedAt:      g.tl.CreationTime(org.CreatedAt),
			IsActive:       stats.Bernoulli(g.r, activeUserRate),
		})
	}
	return users
}

// emailLocal lowercases a name part and strips anything that does not
// belong in an address, apostrophes included.
func emailLocal(name string) string {
	var b strings.Builder
	for _, c := range strings.ToLower(name) {
		if c >= 'a' && c <= 'z' {
			b.WriteRune(c)
		}
	}
	return b.String()
}

// Enterprise address patterns: first.last 60%, firstlast 20%, f.last 10%,
// first.l 5%, first_last 5%.
func (g *Generator) email(first, last, domain string) string {
	first = emailLocal(first)
	last = emailLocal(last)

	var local string
	switch u := g.r.Float64(); {
	case u < 0.60:
		local = first + "." + last
	case u < 0.80:
		local = first + last
	case u < 0.90:
		local = first[:1] + "." + last
	case u < 0.95:
		local = first + "." + last[:1]
	default:
		local = first + "_" + last
	}
	return local + "@" + domain
}

func (g *Generator) uniqueEmail(first, last, domain string) string {
	for attempt := 0; attempt < 10; attempt++ {
		candidate := g.email(first, last, domain)
		if _, taken := g.emails[candidate]; !taken {
			g.emails[candidate] = struct{}{}
			return candidate
		}
	}
	for {
		candidate := fmt.Sprintf("%s.%s.%d@%s",
			emailLocal(first), emailLocal(last), 1000+g.r.Intn(9000), domain)
		if _, taken := g.emails[candidate]; !taken {
			g.emails[candidate] = struct{}{}
			return candidate
		}
	}
}
