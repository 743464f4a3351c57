package generator

import (
	"context"
	"fmt"
	"time"

	"worksim.dev/worksim/common/id"
	"worksim.dev/worksim/internal/model"
	"worksim.dev/worksim/internal/refdata"
	"worksim.dev/worksim/internal/stats"
)

const (
	// Description density: 20% none, 50% short, 30% detailed.
	descriptionNoneBand  = 0.20
	descriptionShortBand = 0.50

	subtaskDescriptionRate = 0.50

	// Subtask completion runs higher than the project band: parents only
	// close when their checklist is mostly done.
	subtaskCompletionRate       = 0.70
	subtaskCompletionRateParent = 0.90
)

// Tasks generates count top-level tasks for the project. Assignees come
// from candidates only, which the pipeline restricts to the owning team's
// members (or the whole organization for org-level projects); the
// unassigned rate applies on top of that. Completion follows the
// project type's band.
func (g *Generator) Tasks(ctx context.Context, project model.Project, sections []model.Section, candidates []model.User, count int) ([]model.Task, error) {
	completionRate := refdata.CompletionRates[project.Type]

	tasks := make([]model.Task, 0, count)
	for i := 0; i < count; i++ {
		name, err := g.content.TaskName(ctx, g.r, project.Type)
		if err != nil {
			return nil, fmt.Errorf("task name: %w", err)
		}

		description, err := g.taskDescription(ctx, name, project.Type)
		if err != nil {
			return nil, fmt.Errorf("task description: %w", err)
		}

		var sectionID *int64
		if len(sections) > 0 {
			sectionID = &sections[g.r.Intn(len(sections))].ID
		}

		var assigneeID *int64
		if len(candidates) > 0 && !stats.Bernoulli(g.r, g.cfg.UnassignedRate) {
			assigneeID = &candidates[g.r.Intn(len(candidates))].ID
		}

		createdAt := g.tl.CreationTime(project.CreatedAt)
		dueDate := g.tl.DueDate(createdAt)

		var completedAt *time.Time
		completed := stats.Bernoulli(g.r, completionRate)
		if completed {
			t := g.tl.CompletionTime(createdAt, dueDate)
			completedAt = &t
		}

		modifiedCeil := g.tl.Now()
		if completedAt != nil {
			modifiedCeil = *completedAt
		}

		tasks = append(tasks, model.Task{
			ID:          id.New(),
			ProjectID:   project.ID,
			SectionID:   sectionID,
			Name:        name,
			Description: description,
			AssigneeID:  assigneeID,
			DueDate:     dueDate,
			Completed:   completed,
			CompletedAt: completedAt,
			CreatedAt:   createdAt,
			ModifiedAt:  g.tl.ModifiedTime(createdAt, modifiedCeil),
		})
	}
	return tasks, nil
}

func (g *Generator) taskDescription(ctx context.Context, name string, pt model.ProjectType) (*string, error) {
	u := g.r.Float64()
	if u < descriptionNoneBand {
		return nil, nil
	}
	desc, err := g.content.TaskDescription(ctx, g.r, name, pt, u >= descriptionNoneBand+descriptionShortBand)
	if err != nil {
		return nil, err
	}
	return &desc, nil
}

// Subtasks generates subtasks for a fraction of the parents and updates
// each parent's counters in place, so parents carry final counts when
// they reach the store. Subtasks inherit the parent's project, section
// and assignee; their due dates never pass the parent's and their
// completions never pass a completed parent's.
func (g *Generator) Subtasks(parents []model.Task) []model.Task {
	var subtasks []model.Task
	for i := range parents {
		parent := &parents[i]
		if !stats.Bernoulli(g.r, g.cfg.SubtaskRate) {
			continue
		}
		n := 1 + g.r.Intn(5)
		for j := 0; j < n; j++ {
			subtasks = append(subtasks, g.subtask(parent))
		}
	}
	return subtasks
}

func (g *Generator) subtask(parent *model.Task) model.Task {
	name := g.content.SubtaskName(g.r)

	var description *string
	if stats.Bernoulli(g.r, subtaskDescriptionRate) {
		d := fmt.Sprintf("Subtask: %s", name)
		description = &d
	}

	// Subtasks of a completed parent were created while the parent was
	// still open, so their completions fit under the parent's.
	var createdAt time.Time
	if parent.CompletedAt != nil {
		createdAt = g.tl.CreationTimeBefore(parent.CreatedAt, *parent.CompletedAt)
	} else {
		createdAt = g.tl.CreationTime(parent.CreatedAt)
	}

	// Due a few days ahead of the parent's deadline when it has one.
	var dueDate *time.Time
	if parent.DueDate != nil {
		d := parent.DueDate.AddDate(0, 0, -g.r.Intn(8))
		dueDate = &d
	} else {
		dueDate = g.tl.DueDate(createdAt)
	}

	completionRate := subtaskCompletionRate
	if parent.Completed {
		completionRate = subtaskCompletionRateParent
	}

	var completedAt *time.Time
	completed := stats.Bernoulli(g.r, completionRate)
	if completed {
		var t time.Time
		if parent.CompletedAt != nil {
			t = g.tl.CompletionTimeBefore(createdAt, *parent.CompletedAt)
		} else {
			t = g.tl.CompletionTime(createdAt, dueDate)
		}
		completedAt = &t
	}

	modifiedCeil := g.tl.Now()
	if completedAt != nil {
		modifiedCeil = *completedAt
	}

	parent.NumSubtasks++
	if completed {
		parent.NumCompletedSubtasks++
	}

	return model.Task{
		ID:           id.New(),
		ProjectID:    parent.ProjectID,
		SectionID:    parent.SectionID,
		Name:         name,
		Description:  description,
		AssigneeID:   parent.AssigneeID,
		DueDate:      dueDate,
		Completed:    completed,
		CompletedAt:  completedAt,
		CreatedAt:    createdAt,
		ModifiedAt:   g.tl.ModifiedTime(createdAt, modifiedCeil),
		ParentTaskID: &parent.ID,
	}
}
