// Package store persists generated datasets. The production
// implementation writes to Postgres with batched COPY inserts; an
// in-memory implementation backs tests and dry runs.
package store

import (
	"context"

	"worksim.dev/worksim/internal/model"
)

// Store receives finished entity batches from the pipeline. Batches for a
// given entity arrive exactly once, after every batch they reference has
// been inserted, so implementations never see a dangling reference from a
// correct pipeline.
type Store interface {
	InsertOrganizations(ctx context.Context, orgs []model.Organization) error
	InsertUsers(ctx context.Context, users []model.User) error
	InsertTeams(ctx context.Context, teams []model.Team) error
	InsertTeamMemberships(ctx context.Context, memberships []model.TeamMembership) error
	InsertProjects(ctx context.Context, projects []model.Project) error
	InsertSections(ctx context.Context, sections []model.Section) error
	InsertFieldDefinitions(ctx context.Context, defs []model.FieldDefinition) error
	InsertTasks(ctx context.Context, tasks []model.Task) error
	InsertComments(ctx context.Context, comments []model.Comment) error
	InsertTags(ctx context.Context, tags []model.Tag) error
	InsertTaskTags(ctx context.Context, taskTags []model.TaskTag) error
	InsertFieldValues(ctx context.Context, values []model.FieldValue) error
}
