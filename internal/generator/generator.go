// Package generator builds entity batches. Generators are pure with
// respect to their inputs: the same random source, timeline and template
// content yield byte-identical batches apart from IDs, which are
// allocated from the snowflake node.
package generator

import (
	"math/rand"

	"worksim.dev/worksim/core/config"
	"worksim.dev/worksim/internal/content"
	"worksim.dev/worksim/internal/model"
	"worksim.dev/worksim/internal/timeline"
)

// ContentSource is what generators need from the content layer: the
// provider surface plus template-only subtask names.
type ContentSource interface {
	content.Provider
	SubtaskName(r *rand.Rand) string
}

// Generator holds the shared state of one run. Not safe for concurrent
// use; the pipeline drives it from a single goroutine so the random
// stream stays deterministic.
type Generator struct {
	r       *rand.Rand
	tl      *timeline.Engine
	content ContentSource
	cfg     config.GenerationConfig

	projectCounters map[model.ProjectType]int
	emails          map[string]struct{}
}

func New(r *rand.Rand, tl *timeline.Engine, source ContentSource, cfg config.GenerationConfig) *Generator {
	return &Generator{
		r:               r,
		tl:              tl,
		content:         source,
		cfg:             cfg,
		projectCounters: make(map[model.ProjectType]int),
		emails:          make(map[string]struct{}),
	}
}
