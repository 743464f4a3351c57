package store

import (
	"context"
	"fmt"

	"worksim.dev/worksim/internal/model"
)

// Memory collects batches in slices and enforces the same uniqueness and
// reference rules the Postgres schema does. It backs the pipeline tests
// and dry runs, and surfaces generator bugs as ErrConstraint exactly like
// the real store would.
type Memory struct {
	Organizations []model.Organization
	Users         []model.User
	Teams         []model.Team
	Memberships   []model.TeamMembership
	Projects      []model.Project
	Sections      []model.Section
	Definitions   []model.FieldDefinition
	Tasks         []model.Task
	Comments      []model.Comment
	Tags          []model.Tag
	TaskTags      []model.TaskTag
	Values        []model.FieldValue

	// FailOn, when non-empty, makes the insert for that entity fail with
	// ErrConstraint. Tests use it to exercise fatal-abort behavior.
	FailOn string

	ids map[int64]struct{}
}

func NewMemory() *Memory {
	return &Memory{ids: make(map[int64]struct{})}
}

func (m *Memory) track(entity string, id int64) error {
	if _, dup := m.ids[id]; dup {
		return fmt.Errorf("insert %s: duplicate id %d: %w", entity, id, ErrConstraint)
	}
	m.ids[id] = struct{}{}
	return nil
}

func (m *Memory) fail(entity string) error {
	if m.FailOn == entity {
		return fmt.Errorf("insert %s: injected failure: %w", entity, ErrConstraint)
	}
	return nil
}

func (m *Memory) InsertOrganizations(_ context.Context, orgs []model.Organization) error {
	if err := m.fail("organizations"); err != nil {
		return err
	}
	for _, o := range orgs {
		if err := m.track("organizations", o.ID); err != nil {
			return err
		}
	}
	m.Organizations = append(m.Organizations, orgs...)
	return nil
}

func (m *Memory) InsertUsers(_ context.Context, users []model.User) error {
	if err := m.fail("users"); err != nil {
		return err
	}
	seen := make(map[string]struct{})
	for _, u := range m.Users {
		seen[fmt.Sprintf("%d/%s", u.OrganizationID, u.Email)] = struct{}{}
	}
	for _, u := range users {
		if err := m.track("users", u.ID); err != nil {
			return err
		}
		key := fmt.Sprintf("%d/%s", u.OrganizationID, u.Email)
		if _, dup := seen[key]; dup {
			return fmt.Errorf("insert users: duplicate email %q: %w", u.Email, ErrConstraint)
		}
		seen[key] = struct{}{}
	}
	m.Users = append(m.Users, users...)
	return nil
}

func (m *Memory) InsertTeams(_ context.Context, teams []model.Team) error {
	if err := m.fail("teams"); err != nil {
		return err
	}
	for _, t := range teams {
		if err := m.track("teams", t.ID); err != nil {
			return err
		}
	}
	m.Teams = append(m.Teams, teams...)
	return nil
}

func (m *Memory) InsertTeamMemberships(_ context.Context, memberships []model.TeamMembership) error {
	if err := m.fail("team_memberships"); err != nil {
		return err
	}
	seen := make(map[[2]int64]struct{})
	for _, mb := range memberships {
		if err := m.track("team_memberships", mb.ID); err != nil {
			return err
		}
		key := [2]int64{mb.TeamID, mb.UserID}
		if _, dup := seen[key]; dup {
			return fmt.Errorf("insert team_memberships: duplicate pair %v: %w", key, ErrConstraint)
		}
		seen[key] = struct{}{}
	}
	m.Memberships = append(m.Memberships, memberships...)
	return nil
}

func (m *Memory) InsertProjects(_ context.Context, projects []model.Project) error {
	if err := m.fail("projects"); err != nil {
		return err
	}
	for _, p := range projects {
		if err := m.track("projects", p.ID); err != nil {
			return err
		}
	}
	m.Projects = append(m.Projects, projects...)
	return nil
}

func (m *Memory) InsertSections(_ context.Context, sections []model.Section) error {
	if err := m.fail("sections"); err != nil {
		return err
	}
	for _, s := range sections {
		if err := m.track("sections", s.ID); err != nil {
			return err
		}
	}
	m.Sections = append(m.Sections, sections...)
	return nil
}

func (m *Memory) InsertFieldDefinitions(_ context.Context, defs []model.FieldDefinition) error {
	if err := m.fail("custom_field_definitions"); err != nil {
		return err
	}
	for _, d := range defs {
		if err := m.track("custom_field_definitions", d.ID); err != nil {
			return err
		}
	}
	m.Definitions = append(m.Definitions, defs...)
	return nil
}

func (m *Memory) InsertTasks(_ context.Context, tasks []model.Task) error {
	if err := m.fail("tasks"); err != nil {
		return err
	}
	for _, t := range tasks {
		if err := m.track("tasks", t.ID); err != nil {
			return err
		}
	}
	m.Tasks = append(m.Tasks, tasks...)
	return nil
}

func (m *Memory) InsertComments(_ context.Context, comments []model.Comment) error {
	if err := m.fail("comments"); err != nil {
		return err
	}
	for _, c := range comments {
		if err := m.track("comments", c.ID); err != nil {
			return err
		}
	}
	m.Comments = append(m.Comments, comments...)
	return nil
}

func (m *Memory) InsertTags(_ context.Context, tags []model.Tag) error {
	if err := m.fail("tags"); err != nil {
		return err
	}
	seen := make(map[string]struct{})
	for _, t := range tags {
		if err := m.track("tags", t.ID); err != nil {
			return err
		}
		if _, dup := seen[t.Name]; dup {
			return fmt.Errorf("insert tags: duplicate name %q: %w", t.Name, ErrConstraint)
		}
		seen[t.Name] = struct{}{}
	}
	m.Tags = append(m.Tags, tags...)
	return nil
}

func (m *Memory) InsertTaskTags(_ context.Context, taskTags []model.TaskTag) error {
	if err := m.fail("task_tags"); err != nil {
		return err
	}
	seen := make(map[[2]int64]struct{})
	for _, tt := range taskTags {
		if err := m.track("task_tags", tt.ID); err != nil {
			return err
		}
		key := [2]int64{tt.TaskID, tt.TagID}
		if _, dup := seen[key]; dup {
			return fmt.Errorf("insert task_tags: duplicate pair %v: %w", key, ErrConstraint)
		}
		seen[key] = struct{}{}
	}
	m.TaskTags = append(m.TaskTags, taskTags...)
	return nil
}

func (m *Memory) InsertFieldValues(_ context.Context, values []model.FieldValue) error {
	if err := m.fail("custom_field_values"); err != nil {
		return err
	}
	taskProject := make(map[int64]int64, len(m.Tasks))
	for _, t := range m.Tasks {
		taskProject[t.ID] = t.ProjectID
	}
	defProject := make(map[int64]int64, len(m.Definitions))
	for _, d := range m.Definitions {
		defProject[d.ID] = d.ProjectID
	}
	seen := make(map[[2]int64]struct{})
	for _, v := range values {
		if err := m.track("custom_field_values", v.ID); err != nil {
			return err
		}
		key := [2]int64{v.TaskID, v.FieldID}
		if _, dup := seen[key]; dup {
			return fmt.Errorf("insert custom_field_values: duplicate pair %v: %w", key, ErrConstraint)
		}
		seen[key] = struct{}{}
		// Mirrors the schema trigger: a value may only pair a task with a
		// field defined on the task's own project.
		if tp, ok := taskProject[v.TaskID]; !ok || tp != defProject[v.FieldID] {
			return fmt.Errorf("insert custom_field_values: task %d and field %d belong to different projects: %w", v.TaskID, v.FieldID, ErrConstraint)
		}
	}
	m.Values = append(m.Values, values...)
	return nil
}
