package generator

import (
	"context"
	"fmt"

	"worksim.dev/worksim/common/id"
	"worksim.dev/worksim/internal/model"
	"worksim.dev/worksim/internal/stats"
)

// Comments generates discussion for a fraction of the tasks. A commented
// task gets one to five comments authored by the given candidates, which
// the pipeline restricts to the project team's members (or the whole
// organization for org-level projects). Comments are timestamped between
// the task's creation and its completion (or the end of the window for
// open tasks); the last comment on a completed task reads as a completion
// update.
func (g *Generator) Comments(ctx context.Context, tasks []model.Task, candidates []model.User) ([]model.Comment, error) {
	if len(candidates) == 0 {
		return nil, nil
	}

	var comments []model.Comment
	for _, task := range tasks {
		if !stats.Bernoulli(g.r, g.cfg.CommentRate) {
			continue
		}
		n := 1 + g.r.Intn(5)

		ceil := g.tl.Now()
		if task.CompletedAt != nil {
			ceil = *task.CompletedAt
		}

		for i := 0; i < n; i++ {
			closing := task.Completed && i == n-1
			text, err := g.content.Comment(ctx, g.r, task.Name, closing)
			if err != nil {
				return nil, fmt.Errorf("comment: %w", err)
			}
			comments = append(comments, model.Comment{
				ID:        id.New(),
				TaskID:    task.ID,
				AuthorID:  candidates[g.r.Intn(len(candidates))].ID,
				Text:      text,
				CreatedAt: g.tl.ModifiedTime(task.CreatedAt, ceil),
			})
		}
	}
	return comments, nil
}
