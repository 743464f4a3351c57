package content

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"
	"time"

	"worksim.dev/worksim/common/llm"
	"worksim.dev/worksim/internal/model"
)

const (
	taskNameBatchSize = 10
	defaultTimeout    = 10 * time.Second
	defaultMaxTokens  = 200
)

type taskNameBatch struct {
	Names []string `json:"names" jsonschema_description:"List of distinct task names, each at most 60 characters"`
}

var taskNameSchema = llm.GenerateSchema[taskNameBatch]()

// GenerativeProvider produces text through a model API. Task names are
// fetched in batches per project type to keep call volume down; the other
// kinds are one call each. Every call carries a deadline so a slow or
// unreachable backend degrades a single item, not the run.
type GenerativeProvider struct {
	client    llm.Client
	timeout   time.Duration
	maxTokens int

	nameCache map[model.ProjectType][]string
}

func NewGenerativeProvider(client llm.Client, timeout time.Duration, maxTokens int) *GenerativeProvider {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}
	return &GenerativeProvider{
		client:    client,
		timeout:   timeout,
		maxTokens: maxTokens,
		nameCache: make(map[model.ProjectType][]string),
	}
}

const systemPrompt = "You generate realistic work-tracker content for an enterprise project management tool. Respond with only the requested content, no preamble."

func (p *GenerativeProvider) TaskName(ctx context.Context, _ *rand.Rand, pt model.ProjectType) (string, error) {
	if cached := p.nameCache[pt]; len(cached) > 0 {
		name := cached[0]
		p.nameCache[pt] = cached[1:]
		return name, nil
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	var batch taskNameBatch
	err := p.client.CompleteJSON(ctx, llm.Request{
		SystemPrompt: systemPrompt,
		UserPrompt: fmt.Sprintf(
			"Generate %d distinct, concise task names (max 60 chars each) for a %s project.",
			taskNameBatchSize, strings.ReplaceAll(string(pt), "_", " ")),
		SchemaName: "task_names",
		Schema:     taskNameSchema,
		MaxTokens:  p.maxTokens,
	}, &batch)
	if err != nil {
		return "", fmt.Errorf("generate task names: %w", err)
	}

	names := make([]string, 0, len(batch.Names))
	for _, n := range batch.Names {
		n = strings.Trim(strings.TrimSpace(n), `"'`)
		if n != "" {
			names = append(names, truncateName(n))
		}
	}
	if len(names) == 0 {
		return "", fmt.Errorf("generate task names: empty batch from %s", p.client.Model())
	}

	p.nameCache[pt] = names[1:]
	return names[0], nil
}

func (p *GenerativeProvider) TaskDescription(ctx context.Context, _ *rand.Rand, taskName string, pt model.ProjectType, detailed bool) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	var prompt string
	if detailed {
		prompt = fmt.Sprintf(
			"Generate a detailed task description (3-5 sentences with bullet points) for: %s (project type: %s). Include context, requirements, and acceptance criteria.",
			taskName, strings.ReplaceAll(string(pt), "_", " "))
	} else {
		prompt = fmt.Sprintf(
			"Generate a brief 1-2 sentence description for this task: %s (project type: %s).",
			taskName, strings.ReplaceAll(string(pt), "_", " "))
	}

	desc, err := p.client.Complete(ctx, llm.Request{
		SystemPrompt: systemPrompt,
		UserPrompt:   prompt,
		MaxTokens:    p.maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("generate task description: %w", err)
	}
	desc = strings.TrimSpace(desc)
	if desc == "" {
		return "", fmt.Errorf("generate task description: empty response from %s", p.client.Model())
	}
	limit := 200
	if detailed {
		limit = 1000
	}
	if len(desc) > limit {
		desc = desc[:limit]
	}
	return desc, nil
}

func (p *GenerativeProvider) Comment(ctx context.Context, _ *rand.Rand, taskName string, closing bool) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	kind := "progress update"
	if closing {
		kind = "completion update"
	}
	comment, err := p.client.Complete(ctx, llm.Request{
		SystemPrompt: systemPrompt,
		UserPrompt: fmt.Sprintf(
			"Generate a brief, realistic comment (1-2 sentences) for a task management system. Task: %s. Comment type: %s. Be conversational and professional.",
			taskName, kind),
		MaxTokens: p.maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("generate comment: %w", err)
	}
	comment = strings.TrimSpace(comment)
	if comment == "" {
		return "", fmt.Errorf("generate comment: empty response from %s", p.client.Model())
	}
	if len(comment) > 500 {
		comment = comment[:500]
	}
	return comment, nil
}

// Probe issues a single cheap completion to verify the backend is
// reachable before the pipeline commits to the mixed strategy.
func (p *GenerativeProvider) Probe(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	_, err := p.client.Complete(ctx, llm.Request{
		UserPrompt: "Reply with the single word: ok",
		MaxTokens:  8,
	})
	if err != nil {
		slog.Warn("content backend unavailable", "model", p.client.Model(), "error", err)
		return fmt.Errorf("probe %s: %w", p.client.Model(), err)
	}
	return nil
}
