// Package pipeline orchestrates a generation run. Stages execute in
// dependency order so every batch only references rows already inserted;
// any store error aborts the run immediately.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"worksim.dev/worksim/core/config"
	"worksim.dev/worksim/internal/generator"
	"worksim.dev/worksim/internal/model"
	"worksim.dev/worksim/internal/stats"
	"worksim.dev/worksim/internal/store"
	"worksim.dev/worksim/internal/timeline"
)

// Summary reports what a completed run produced.
type Summary struct {
	Organizations int
	Users         int
	Teams         int
	Memberships   int
	Projects      int
	Sections      int
	Definitions   int
	Tasks         int
	Subtasks      int
	Comments      int
	Tags          int
	TaskTags      int
	FieldValues   int

	ContentGenerated int
	ContentFallbacks int
	Duration         time.Duration
}

// ContentStats is implemented by providers that track how often the
// generative path succeeded. The template-only provider reports zeros.
type ContentStats interface {
	Stats() (generated, fallbacks int)
}

type Pipeline struct {
	r     *rand.Rand
	tl    *timeline.Engine
	gen   *generator.Generator
	store store.Store
	cfg   config.GenerationConfig
	stats ContentStats
}

func New(r *rand.Rand, tl *timeline.Engine, gen *generator.Generator, st store.Store, cfg config.GenerationConfig, stats ContentStats) *Pipeline {
	return &Pipeline{r: r, tl: tl, gen: gen, store: st, cfg: cfg, stats: stats}
}

// Run executes every stage and returns the run summary. The first error
// aborts the run; a partially written dataset is left behind for
// inspection, never silently patched.
func (p *Pipeline) Run(ctx context.Context) (*Summary, error) {
	start := time.Now()
	summary := &Summary{}

	// Organization.
	org := p.gen.Organization()
	if err := p.store.InsertOrganizations(ctx, []model.Organization{org}); err != nil {
		return nil, err
	}
	summary.Organizations = 1
	slog.Info("organization generated", "name", org.Name, "domain", org.Domain)

	// Users.
	numUsers, err := stats.IntBetween(p.r, p.cfg.UsersMin, p.cfg.UsersMax)
	if err != nil {
		return nil, fmt.Errorf("user count: %w", err)
	}
	users := p.gen.Users(org, numUsers)
	if err := p.store.InsertUsers(ctx, users); err != nil {
		return nil, err
	}
	summary.Users = len(users)
	slog.Info("users generated", "count", len(users))

	// Teams and memberships.
	numTeams, err := stats.IntBetween(p.r, p.cfg.TeamsMin, p.cfg.TeamsMax)
	if err != nil {
		return nil, fmt.Errorf("team count: %w", err)
	}
	teams, memberships, err := p.gen.Teams(org, users, numTeams)
	if err != nil {
		return nil, fmt.Errorf("generate teams: %w", err)
	}
	if err := p.store.InsertTeams(ctx, teams); err != nil {
		return nil, err
	}
	if err := p.store.InsertTeamMemberships(ctx, memberships); err != nil {
		return nil, err
	}
	summary.Teams = len(teams)
	summary.Memberships = len(memberships)
	slog.Info("teams generated", "teams", len(teams), "memberships", len(memberships))

	// Projects.
	numProjects, err := stats.IntBetween(p.r, p.cfg.ProjectsMin, p.cfg.ProjectsMax)
	if err != nil {
		return nil, fmt.Errorf("project count: %w", err)
	}
	projects, err := p.gen.Projects(org, teams, numProjects)
	if err != nil {
		return nil, fmt.Errorf("generate projects: %w", err)
	}
	if err := p.store.InsertProjects(ctx, projects); err != nil {
		return nil, err
	}
	summary.Projects = len(projects)
	slog.Info("projects generated", "count", len(projects))

	// Sections and custom field definitions, per project.
	sectionsByProject := make(map[int64][]model.Section, len(projects))
	defsByProject := make(map[int64][]model.FieldDefinition, len(projects))
	var allSections []model.Section
	var allDefs []model.FieldDefinition
	for _, project := range projects {
		sections := p.gen.Sections(project)
		sectionsByProject[project.ID] = sections
		allSections = append(allSections, sections...)

		defs := p.gen.FieldDefinitions(project)
		defsByProject[project.ID] = defs
		allDefs = append(allDefs, defs...)
	}
	if err := p.store.InsertSections(ctx, allSections); err != nil {
		return nil, err
	}
	if err := p.store.InsertFieldDefinitions(ctx, allDefs); err != nil {
		return nil, err
	}
	summary.Sections = len(allSections)
	summary.Definitions = len(allDefs)

	// Tasks and subtasks. Assignees for team projects come from the
	// owning team's members; org-level projects draw from everyone.
	membersByTeam := p.membersByTeam(users, memberships)
	var allTasks []model.Task
	tasksByProject := make(map[int64][]model.Task, len(projects))
	candidatesByProject := make(map[int64][]model.User, len(projects))
	for _, project := range projects {
		candidates := users
		if project.TeamID != nil {
			if team := membersByTeam[*project.TeamID]; len(team) > 0 {
				candidates = team
			}
		}
		candidatesByProject[project.ID] = candidates

		numTasks, err := stats.IntBetween(p.r, p.cfg.TasksMin, p.cfg.TasksMax)
		if err != nil {
			return nil, fmt.Errorf("task count: %w", err)
		}
		tasks, err := p.gen.Tasks(ctx, project, sectionsByProject[project.ID], candidates, numTasks)
		if err != nil {
			return nil, fmt.Errorf("generate tasks for %q: %w", project.Name, err)
		}

		// Subtask generation updates parent counters, so parents are
		// inserted afterwards with final counts.
		subtasks := p.gen.Subtasks(tasks)
		if err := p.store.InsertTasks(ctx, tasks); err != nil {
			return nil, err
		}
		if err := p.store.InsertTasks(ctx, subtasks); err != nil {
			return nil, err
		}
		summary.Tasks += len(tasks)
		summary.Subtasks += len(subtasks)

		projectTasks := append(append([]model.Task{}, tasks...), subtasks...)
		tasksByProject[project.ID] = projectTasks
		allTasks = append(allTasks, projectTasks...)
	}
	slog.Info("tasks generated", "tasks", summary.Tasks, "subtasks", summary.Subtasks)

	// Comments. Authors draw from the same pool as assignees: the owning
	// team's members, or the whole organization for org-level projects.
	var allComments []model.Comment
	for _, project := range projects {
		comments, err := p.gen.Comments(ctx, tasksByProject[project.ID], candidatesByProject[project.ID])
		if err != nil {
			return nil, fmt.Errorf("generate comments for %q: %w", project.Name, err)
		}
		allComments = append(allComments, comments...)
	}
	if err := p.store.InsertComments(ctx, allComments); err != nil {
		return nil, err
	}
	summary.Comments = len(allComments)
	slog.Info("comments generated", "count", len(allComments))

	// Custom field values, per project so values only pair tasks with
	// their own project's definitions.
	var allValues []model.FieldValue
	for _, project := range projects {
		values, err := p.gen.FieldValues(tasksByProject[project.ID], defsByProject[project.ID])
		if err != nil {
			return nil, fmt.Errorf("generate field values for %q: %w", project.Name, err)
		}
		allValues = append(allValues, values...)
	}
	if err := p.store.InsertFieldValues(ctx, allValues); err != nil {
		return nil, err
	}
	summary.FieldValues = len(allValues)

	// Tags.
	tags := p.gen.Tags(org)
	if err := p.store.InsertTags(ctx, tags); err != nil {
		return nil, err
	}
	taskTags := p.gen.TaskTags(allTasks, tags)
	if err := p.store.InsertTaskTags(ctx, taskTags); err != nil {
		return nil, err
	}
	summary.Tags = len(tags)
	summary.TaskTags = len(taskTags)
	slog.Info("tags generated", "tags", len(tags), "assignments", len(taskTags))

	if p.stats != nil {
		summary.ContentGenerated, summary.ContentFallbacks = p.stats.Stats()
	}
	summary.Duration = time.Since(start)
	return summary, nil
}

func (p *Pipeline) membersByTeam(users []model.User, memberships []model.TeamMembership) map[int64][]model.User {
	byID := make(map[int64]model.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}
	members := make(map[int64][]model.User)
	for _, m := range memberships {
		members[m.TeamID] = append(members[m.TeamID], byID[m.UserID])
	}
	return members
}
