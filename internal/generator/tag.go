package generator

import (
	"worksim.dev/worksim/common/id"
	"worksim.dev/worksim/internal/model"
	"worksim.dev/worksim/internal/refdata"
	"worksim.dev/worksim/internal/stats"
)

// Tags creates the organization's tag vocabulary, one tag per reference
// name so names stay unique.
func (g *Generator) Tags(org model.Organization) []model.Tag {
	tags := make([]model.Tag, 0, len(refdata.TagNames))
	for _, name := range refdata.TagNames {
		tags = append(tags, model.Tag{
			ID:             id.New(),
			OrganizationID: org.ID,
			Name:           name,
			Color:          refdata.Colors[g.r.Intn(len(refdata.Colors))],
			CreatedAt:      g.tl.CreationTime(org.CreatedAt),
		})
	}
	return tags
}

// TaskTags labels a fraction of the tasks with one to three distinct
// tags each.
func (g *Generator) TaskTags(tasks []model.Task, tags []model.Tag) []model.TaskTag {
	if len(tags) == 0 {
		return nil
	}

	var taskTags []model.TaskTag
	for _, task := range tasks {
		if !stats.Bernoulli(g.r, g.cfg.TagRate) {
			continue
		}
		n := 1 + g.r.Intn(3)
		for _, tag := range stats.Sample(g.r, tags, min(n, len(tags))) {
			taskTags = append(taskTags, model.TaskTag{
				ID:        id.New(),
				TaskID:    task.ID,
				TagID:     tag.ID,
				CreatedAt: g.tl.ModifiedTime(task.CreatedAt, g.tl.Now()),
			})
		}
	}
	return taskTags
}
