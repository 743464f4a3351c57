// Package content produces the text fields of generated entities: task
// names, task descriptions, and comments. Two strategies exist, a
// deterministic template strategy and a generative one backed by a model
// API, composed by a mixed provider that falls back to templates whenever
// the generative path is unavailable or fails.
package content

import (
	"context"
	"math/rand"

	"worksim.dev/worksim/internal/model"
)

// Provider generates entity text. Implementations must be safe to call
// sequentially from a single goroutine; the passed *rand.Rand carries all
// randomness so that template output is reproducible under a fixed seed.
type Provider interface {
	// TaskName returns a task name of at most 60 characters appropriate
	// for the given project type.
	TaskName(ctx context.Context, r *rand.Rand, pt model.ProjectType) (string, error)

	// TaskDescription returns a description for the named task. Detailed
	// requests a multi-sentence body with requirements; otherwise the
	// result is one or two sentences.
	TaskDescription(ctx context.Context, r *rand.Rand, taskName string, pt model.ProjectType, detailed bool) (string, error)

	// Comment returns a short comment on the named task. Closing marks
	// the comment as a completion update rather than a progress update.
	Comment(ctx context.Context, r *rand.Rand, taskName string, closing bool) (string, error)
}

const maxTaskNameLen = 60

func truncateName(s string) string {
	if len(s) <= maxTaskNameLen {
		return s
	}
	return s[:maxTaskNameLen-3] + "..."
}
