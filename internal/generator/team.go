package generator

import (
	"fmt"
	"strings"

	"worksim.dev/worksim/common/id"
	"worksim.dev/worksim/internal/model"
	"worksim.dev/worksim/internal/refdata"
	"worksim.dev/worksim/internal/stats"
)

const (
	teamDescriptionRate = 0.30
	adminRate           = 0.10
)

// Teams generates count teams with memberships drawn from users. Team
// sizes follow a truncated normal; names are sampled without replacement
// from the reference table and fall back to numbered names when it runs
// out. Each (team, user) pair appears at most once.
func (g *Generator) Teams(org model.Organization, users []model.User, count int) ([]model.Team, []model.TeamMembership, error) {
	names := stats.Sample(g.r, refdata.TeamNames, min(count, len(refdata.TeamNames)))

	teams := make([]model.Team, 0, count)
	var memberships []model.TeamMembership

	for i := 0; i < count; i++ {
		var name string
		if i < len(names) {
			name = names[i]
		} else {
			name = fmt.Sprintf("Team %d", i+1)
		}

		var description *string
		if stats.Bernoulli(g.r, teamDescriptionRate) {
			d := fmt.Sprintf("Team responsible for %s", strings.ToLower(name))
			description = &d
		}

		team := model.Team{
			ID:             id.New(),
			OrganizationID: org.ID,
			Name:           name,
			Description:    description,
			Color:          refdata.Colors[g.r.Intn(len(refdata.Colors))],
			CreatedAt:      g.tl.CreationTime(org.CreatedAt),
		}
		teams = append(teams, team)

		size, err := stats.TruncatedNormalInt(g.r,
			g.cfg.TeamSizeMean, g.cfg.TeamSizeStd, g.cfg.TeamSizeMin, g.cfg.TeamSizeMax)
		if err != nil {
			return nil, nil, fmt.Errorf("sample team size: %w", err)
		}

		members := stats.Sample(g.r, users, min(size, len(users)))
		for _, member := range members {
			role := model.RoleMember
			if stats.Bernoulli(g.r, adminRate) {
				role = model.RoleAdmin
			}
			memberships = append(memberships, model.TeamMembership{
				ID:       id.New(),
				TeamID:   team.ID,
				UserID:   member.ID,
				Role:     role,
				JoinedAt: g.tl.CreationTime(team.CreatedAt),
			})
		}
	}
	return teams, memberships, nil
}
