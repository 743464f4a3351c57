package generator_test

import (
	"context"
	"math/rand"
	"regexp"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"worksim.dev/worksim/common/id"
	"worksim.dev/worksim/core/config"
	"worksim.dev/worksim/internal/content"
	"worksim.dev/worksim/internal/generator"
	"worksim.dev/worksim/internal/model"
	"worksim.dev/worksim/internal/refdata"
	"worksim.dev/worksim/internal/timeline"
)

func TestGenerator(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Generator Suite")
}

var _ = BeforeSuite(func() {
	Expect(id.Init(2)).To(Succeed())
})

func testConfig() config.GenerationConfig {
	return config.GenerationConfig{
		NumOrganizations: 1,
		TeamsMin:         3, TeamsMax: 5,
		UsersMin: 50, UsersMax: 100,
		ProjectsMin: 5, ProjectsMax: 10,
		TasksMin: 5, TasksMax: 10,
		DateRangeMonths: 6,
		WeekdayBias:     0.85,
		UnassignedRate:  0.15,
		SubtaskRate:     0.30,
		CommentRate:     0.40,
		TagRate:         0.30,
		FieldValueRate:  0.70,
		TeamSizeMean:    8, TeamSizeStd: 4,
		TeamSizeMin: 3, TeamSizeMax: 25,
	}
}

func newGenerator(seed int64) *generator.Generator {
	r := rand.New(rand.NewSource(seed))
	end := time.Date(2024, 6, 28, 12, 0, 0, 0, time.UTC)
	tl, err := timeline.New(r, end.AddDate(0, -6, 0), end, 0.85)
	Expect(err).NotTo(HaveOccurred())
	provider := content.NewMixedProvider(content.NewTemplateProvider(), nil, 0)
	return generator.New(r, tl, provider, testConfig())
}

var emailPattern = regexp.MustCompile(`^[a-z._]+(\.[0-9]{4})?@[a-z0-9.]+$`)

var _ = Describe("Generator", func() {
	var g *generator.Generator

	BeforeEach(func() {
		g = newGenerator(11)
	})

	Describe("Organization", func() {
		It("derives the domain from a known company", func() {
			org := g.Organization()
			Expect(refdata.CompanyNames).To(ContainElement(org.Name))
			Expect(org.Domain).To(ContainSubstring("."))
			Expect(org.IsOrganization).To(BeTrue())
		})
	})

	Describe("Users", func() {
		It("produces well-formed unique emails on the company domain", func() {
			org := g.Organization()
			users := g.Users(org, 500)

			seen := map[string]struct{}{}
			for _, u := range users {
				Expect(u.Email).To(HaveSuffix("@" + org.Domain))
				Expect(emailPattern.MatchString(u.Email)).To(BeTrue(), "email %q", u.Email)
				Expect(seen).NotTo(HaveKey(u.Email))
				seen[u.Email] = struct{}{}
			}
		})

		It("keeps roughly 95% of users active", func() {
			org := g.Organization()
			users := g.Users(org, 2000)
			active := 0
			for _, u := range users {
				if u.IsActive {
					active++
				}
			}
			Expect(float64(active) / float64(len(users))).To(BeNumerically("~", 0.95, 0.02))
		})
	})

	Describe("Teams", func() {
		It("sizes teams within the clamp and keeps pairs unique", func() {
			org := g.Organization()
			users := g.Users(org, 80)
			teams, memberships, err := g.Teams(org, users, 5)
			Expect(err).NotTo(HaveOccurred())
			Expect(teams).To(HaveLen(5))

			sizes := map[int64]int{}
			pairs := map[[2]int64]struct{}{}
			for _, m := range memberships {
				sizes[m.TeamID]++
				key := [2]int64{m.TeamID, m.UserID}
				Expect(pairs).NotTo(HaveKey(key))
				pairs[key] = struct{}{}
				Expect(m.Role).To(BeElementOf(model.RoleAdmin, model.RoleMember))
			}
			for _, team := range teams {
				Expect(sizes[team.ID]).To(And(BeNumerically(">=", 3), BeNumerically("<=", 25)))
			}
		})
	})

	Describe("Projects", func() {
		It("fills every name template placeholder", func() {
			org := g.Organization()
			teams, _, err := g.Teams(org, g.Users(org, 50), 3)
			Expect(err).NotTo(HaveOccurred())

			projects, err := g.Projects(org, teams, 200)
			Expect(err).NotTo(HaveOccurred())
			for _, p := range projects {
				Expect(p.Name).NotTo(ContainSubstring("{"))
				Expect(refdata.CompletionRates).To(HaveKey(p.Type))
			}
		})

		It("approximates the configured type mix", func() {
			org := g.Organization()
			projects, err := g.Projects(org, nil, 3000)
			Expect(err).NotTo(HaveOccurred())

			counts := map[model.ProjectType]int{}
			for _, p := range projects {
				counts[p.Type]++
			}
			for _, tw := range refdata.ProjectTypeWeights {
				fraction := float64(counts[tw.Type]) / float64(len(projects))
				Expect(fraction).To(BeNumerically("~", tw.Weight, 0.03),
					"type %s", tw.Type)
			}
		})

		It("leaves roughly 20% of projects at the organization level", func() {
			org := g.Organization()
			teams, _, err := g.Teams(org, g.Users(org, 50), 3)
			Expect(err).NotTo(HaveOccurred())

			projects, err := g.Projects(org, teams, 2000)
			Expect(err).NotTo(HaveOccurred())
			orgLevel := 0
			for _, p := range projects {
				if p.TeamID == nil {
					orgLevel++
				}
			}
			Expect(float64(orgLevel) / float64(len(projects))).To(BeNumerically("~", 0.20, 0.03))
		})
	})

	Describe("Sections and field definitions", func() {
		It("instantiates the templates for the project type", func() {
			org := g.Organization()
			projects, err := g.Projects(org, nil, 1)
			Expect(err).NotTo(HaveOccurred())
			project := projects[0]

			sections := g.Sections(project)
			Expect(sections).To(HaveLen(len(refdata.SectionTemplates[project.Type])))
			for i, s := range sections {
				Expect(s.Name).To(Equal(refdata.SectionTemplates[project.Type][i]))
				Expect(s.Position).To(Equal(i))
			}

			defs := g.FieldDefinitions(project)
			Expect(defs).To(HaveLen(len(refdata.FieldTemplates[project.Type])))
			for _, d := range defs {
				if d.Type == model.FieldEnum {
					Expect(d.EnumOptions).NotTo(BeEmpty())
				}
			}
		})
	})

	Describe("Subtasks", func() {
		It("inherits parent attributes and updates counters", func() {
			org := g.Organization()
			users := g.Users(org, 30)
			projects, err := g.Projects(org, nil, 1)
			Expect(err).NotTo(HaveOccurred())
			project := projects[0]
			sections := g.Sections(project)

			tasks, err := g.Tasks(context.Background(), project, sections, users, 200)
			Expect(err).NotTo(HaveOccurred())

			subtasks := g.Subtasks(tasks)
			byParent := map[int64]int{}
			for _, st := range subtasks {
				Expect(st.ParentTaskID).NotTo(BeNil())
				byParent[*st.ParentTaskID]++
				Expect(st.ProjectID).To(Equal(project.ID))
				Expect(st.NumSubtasks).To(BeZero())
			}
			for _, t := range tasks {
				Expect(t.NumSubtasks).To(Equal(byParent[t.ID]))
				Expect(t.NumCompletedSubtasks).To(BeNumerically("<=", t.NumSubtasks))
			}
		})

		It("keeps subtasks of completed parents inside the parent's lifetime", func() {
			org := g.Organization()
			users := g.Users(org, 30)
			projects, err := g.Projects(org, nil, 20)
			Expect(err).NotTo(HaveOccurred())

			checked := 0
			for _, project := range projects {
				tasks, err := g.Tasks(context.Background(), project, g.Sections(project), users, 30)
				Expect(err).NotTo(HaveOccurred())

				byID := map[int64]model.Task{}
				for _, t := range tasks {
					byID[t.ID] = t
				}
				for _, st := range g.Subtasks(tasks) {
					parent := byID[*st.ParentTaskID]
					Expect(st.CreatedAt).To(BeTemporally(">=", parent.CreatedAt))
					if parent.CompletedAt == nil {
						continue
					}
					checked++
					Expect(st.CreatedAt).To(BeTemporally("<", *parent.CompletedAt))
					if st.CompletedAt != nil {
						Expect(*st.CompletedAt).To(BeTemporally("<=", *parent.CompletedAt))
						Expect(*st.CompletedAt).To(BeTemporally(">", st.CreatedAt))
					}
				}
			}
			Expect(checked).To(BeNumerically(">", 50))
		})
	})

	Describe("FieldValues", func() {
		It("matches value kinds to their definitions", func() {
			org := g.Organization()
			users := g.Users(org, 30)
			projects, err := g.Projects(org, nil, 6)
			Expect(err).NotTo(HaveOccurred())

			for _, project := range projects {
				defs := g.FieldDefinitions(project)
				byID := map[int64]model.FieldDefinition{}
				for _, d := range defs {
					byID[d.ID] = d
				}

				tasks, err := g.Tasks(context.Background(), project, g.Sections(project), users, 50)
				Expect(err).NotTo(HaveOccurred())

				values, err := g.FieldValues(tasks, defs)
				Expect(err).NotTo(HaveOccurred())
				for _, v := range values {
					def := byID[v.FieldID]
					Expect(v.Value.Kind).To(Equal(def.Type))
					if def.Type == model.FieldEnum {
						Expect(def.EnumOptions).To(ContainElement(v.Value.Enum))
					}
				}
			}
		})
	})
})
