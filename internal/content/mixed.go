package content

import (
	"context"
	"log/slog"
	"math/rand"

	"worksim.dev/worksim/internal/model"
)

// MixedProvider routes a configurable fraction of calls to the generative
// provider and the rest to templates. A generative failure is not fatal:
// the item falls back to a template and the failure is counted for the
// end-of-run summary.
type MixedProvider struct {
	template   *TemplateProvider
	generative *GenerativeProvider
	ratio      float64

	generated int
	fallbacks int
}

// NewMixedProvider builds the run's content provider. Generative may be
// nil, in which case every call takes the template path and ratio is
// ignored.
func NewMixedProvider(template *TemplateProvider, generative *GenerativeProvider, ratio float64) *MixedProvider {
	return &MixedProvider{template: template, generative: generative, ratio: ratio}
}

// Stats reports how many items took the generative path and how many of
// those fell back to templates after a failure.
func (p *MixedProvider) Stats() (generated, fallbacks int) {
	return p.generated, p.fallbacks
}

func (p *MixedProvider) useGenerative(r *rand.Rand) bool {
	return p.generative != nil && r.Float64() < p.ratio
}

func (p *MixedProvider) TaskName(ctx context.Context, r *rand.Rand, pt model.ProjectType) (string, error) {
	if p.useGenerative(r) {
		name, err := p.generative.TaskName(ctx, r, pt)
		if err == nil {
			p.generated++
			return name, nil
		}
		p.fallbacks++
		slog.Warn("task name generation failed, using template", "project_type", pt, "error", err)
	}
	return p.template.TaskName(ctx, r, pt)
}

func (p *MixedProvider) TaskDescription(ctx context.Context, r *rand.Rand, taskName string, pt model.ProjectType, detailed bool) (string, error) {
	if p.useGenerative(r) {
		desc, err := p.generative.TaskDescription(ctx, r, taskName, pt, detailed)
		if err == nil {
			p.generated++
			return desc, nil
		}
		p.fallbacks++
		slog.Warn("task description generation failed, using template", "task", taskName, "error", err)
	}
	return p.template.TaskDescription(ctx, r, taskName, pt, detailed)
}

func (p *MixedProvider) Comment(ctx context.Context, r *rand.Rand, taskName string, closing bool) (string, error) {
	if p.useGenerative(r) {
		comment, err := p.generative.Comment(ctx, r, taskName, closing)
		if err == nil {
			p.generated++
			return comment, nil
		}
		p.fallbacks++
		slog.Warn("comment generation failed, using template", "task", taskName, "error", err)
	}
	return p.template.Comment(ctx, r, taskName, closing)
}

// SubtaskName always uses templates.
func (p *MixedProvider) SubtaskName(r *rand.Rand) string {
	return p.template.SubtaskName(r)
}
