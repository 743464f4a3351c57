package store

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"

	"worksim.dev/worksim/core/db"
	"worksim.dev/worksim/internal/model"
)

//go:embed schema.sql
var schemaSQL string

// Postgres writes batches with COPY, which is the cheapest insert path
// pgx offers and keeps large task batches fast.
type Postgres struct {
	db *db.DB
}

func NewPostgres(database *db.DB) *Postgres {
	return &Postgres{db: database}
}

// Bootstrap creates the schema if it does not exist yet.
func (s *Postgres) Bootstrap(ctx context.Context) error {
	start := time.Now()
	if _, err := s.db.Pool().Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("bootstrap schema: %w", err)
	}
	slog.Debug("schema bootstrapped", "duration", time.Since(start))
	return nil
}

func copyInto[T any](ctx context.Context, s *Postgres, table string, columns []string, rows []T, values func(T) []any) error {
	if len(rows) == 0 {
		return nil
	}
	_, err := s.db.Pool().CopyFrom(ctx, pgx.Identifier{table}, columns,
		pgx.CopyFromSlice(len(rows), func(i int) ([]any, error) {
			return values(rows[i]), nil
		}))
	return mapError("insert "+table, err)
}

func (s *Postgres) InsertOrganizations(ctx context.Context, orgs []model.Organization) error {
	return copyInto(ctx, s, "organizations",
		[]string{"organization_id", "name", "domain", "is_organization", "created_at"},
		orgs, func(o model.Organization) []any {
			return []any{o.ID, o.Name, o.Domain, o.IsOrganization, o.CreatedAt}
		})
}

func (s *Postgres) InsertUsers(ctx context.Context, users []model.User) error {
	return copyInto(ctx, s, "users",
		[]string{"user_id", "organization_id", "name", "email", "photo_url", "is_active", "created_at"},
		users, func(u model.User) []any {
			return []any{u.ID, u.OrganizationID, u.Name, u.Email, u.PhotoURL, u.IsActive, u.CreatedAt}
		})
}

func (s *Postgres) InsertTeams(ctx context.Context, teams []model.Team) error {
	return copyInto(ctx, s, "teams",
		[]string{"team_id", "organization_id", "name", "description", "color", "created_at"},
		teams, func(t model.Team) []any {
			return []any{t.ID, t.OrganizationID, t.Name, t.Description, t.Color, t.CreatedAt}
		})
}

func (s *Postgres) InsertTeamMemberships(ctx context.Context, memberships []model.TeamMembership) error {
	return copyInto(ctx, s, "team_memberships",
		[]string{"membership_id", "team_id", "user_id", "role", "joined_at"},
		memberships, func(m model.TeamMembership) []any {
			return []any{m.ID, m.TeamID, m.UserID, string(m.Role), m.JoinedAt}
		})
}

func (s *Postgres) InsertProjects(ctx context.Context, projects []model.Project) error {
	return copyInto(ctx, s, "projects",
		[]string{"project_id", "organization_id", "team_id", "name", "description", "project_type", "color", "is_public", "archived", "created_at", "modified_at"},
		projects, func(p model.Project) []any {
			return []any{p.ID, p.OrganizationID, p.TeamID, p.Name, p.Description, string(p.Type), p.Color, p.IsPublic, p.Archived, p.CreatedAt, p.ModifiedAt}
		})
}

func (s *Postgres) InsertSections(ctx context.Context, sections []model.Section) error {
	return copyInto(ctx, s, "sections",
		[]string{"section_id", "project_id", "name", "position", "created_at"},
		sections, func(sec model.Section) []any {
			return []any{sec.ID, sec.ProjectID, sec.Name, sec.Position, sec.CreatedAt}
		})
}

func (s *Postgres) InsertFieldDefinitions(ctx context.Context, defs []model.FieldDefinition) error {
	return copyInto(ctx, s, "custom_field_definitions",
		[]string{"field_id", "project_id", "name", "field_type", "enum_options", "created_at"},
		defs, func(d model.FieldDefinition) []any {
			var options any
			if len(d.EnumOptions) > 0 {
				options = d.EnumOptions
			}
			return []any{d.ID, d.ProjectID, d.Name, string(d.Type), options, d.CreatedAt}
		})
}

func (s *Postgres) InsertTasks(ctx context.Context, tasks []model.Task) error {
	return copyInto(ctx, s, "tasks",
		[]string{"task_id", "project_id", "section_id", "name", "description", "assignee_id", "due_date", "completed", "completed_at", "created_at", "modified_at", "parent_task_id", "num_subtasks", "num_completed_subtasks"},
		tasks, func(t model.Task) []any {
			return []any{t.ID, t.ProjectID, t.SectionID, t.Name, t.Description, t.AssigneeID, t.DueDate, t.Completed, t.CompletedAt, t.CreatedAt, t.ModifiedAt, t.ParentTaskID, t.NumSubtasks, t.NumCompletedSubtasks}
		})
}

func (s *Postgres) InsertComments(ctx context.Context, comments []model.Comment) error {
	return copyInto(ctx, s, "comments",
		[]string{"comment_id", "task_id", "user_id", "text", "created_at"},
		comments, func(c model.Comment) []any {
			return []any{c.ID, c.TaskID, c.AuthorID, c.Text, c.CreatedAt}
		})
}

func (s *Postgres) InsertTags(ctx context.Context, tags []model.Tag) error {
	return copyInto(ctx, s, "tags",
		[]string{"tag_id", "organization_id", "name", "color", "created_at"},
		tags, func(t model.Tag) []any {
			return []any{t.ID, t.OrganizationID, t.Name, t.Color, t.CreatedAt}
		})
}

func (s *Postgres) InsertTaskTags(ctx context.Context, taskTags []model.TaskTag) error {
	return copyInto(ctx, s, "task_tags",
		[]string{"task_tag_id", "task_id", "tag_id", "created_at"},
		taskTags, func(tt model.TaskTag) []any {
			return []any{tt.ID, tt.TaskID, tt.TagID, tt.CreatedAt}
		})
}

func (s *Postgres) InsertFieldValues(ctx context.Context, values []model.FieldValue) error {
	return copyInto(ctx, s, "custom_field_values",
		[]string{"value_id", "task_id", "field_id", "value_kind", "value_text", "value_number", "value_date", "created_at"},
		values, func(v model.FieldValue) []any {
			var (
				text   *string
				number *float64
				date   *time.Time
			)
			switch v.Value.Kind {
			case model.FieldText:
				text = &v.Value.Text
			case model.FieldEnum:
				text = &v.Value.Enum
			case model.FieldNumber:
				number = &v.Value.Number
			case model.FieldDate:
				date = &v.Value.Date
			}
			return []any{v.ID, v.TaskID, v.FieldID, string(v.Value.Kind), text, number, date, v.CreatedAt}
		})
}
