package main

import (
	"context"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"worksim.dev/worksim/common/id"
	"worksim.dev/worksim/common/llm"
	"worksim.dev/worksim/common/logger"
	"worksim.dev/worksim/core/config"
	"worksim.dev/worksim/core/db"
	"worksim.dev/worksim/internal/content"
	"worksim.dev/worksim/internal/generator"
	"worksim.dev/worksim/internal/pipeline"
	"worksim.dev/worksim/internal/refdata"
	"worksim.dev/worksim/internal/store"
	"worksim.dev/worksim/internal/timeline"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration. Invalid configuration exits 2 before anything
	// is generated or touched in the database.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(2)
	}

	logger.Setup(cfg.IsProduction())
	slog.Info("worksim starting", "env", cfg.Env)

	if err := refdata.Validate(); err != nil {
		slog.Error("invalid reference data", "error", err)
		os.Exit(2)
	}

	if err := id.Init(1); err != nil {
		slog.Error("failed to initialize id generator", "error", err)
		os.Exit(1)
	}

	// Random source: seeded for reproducible runs, time-based otherwise.
	var r *rand.Rand
	if cfg.Seed != nil {
		r = rand.New(rand.NewSource(*cfg.Seed))
		slog.Info("seeded run", "seed", *cfg.Seed)
	} else {
		r = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	database, err := db.New(ctx, cfg.DB)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer database.Close()
	slog.Info("database connected")

	pg := store.NewPostgres(database)
	if err := pg.Bootstrap(ctx); err != nil {
		slog.Error("failed to bootstrap schema", "error", err)
		os.Exit(1)
	}

	provider := buildContentProvider(ctx, cfg.LLM)

	end := time.Now().UTC()
	start := end.AddDate(0, -cfg.Generation.DateRangeMonths, 0)
	tl, err := timeline.New(r, start, end, cfg.Generation.WeekdayBias)
	if err != nil {
		slog.Error("invalid generation window", "error", err)
		os.Exit(2)
	}

	gen := generator.New(r, tl, provider, cfg.Generation)
	summary, err := pipeline.New(r, tl, gen, pg, cfg.Generation, provider).Run(ctx)
	if err != nil {
		slog.Error("generation failed", "error", err)
		os.Exit(1)
	}

	slog.Info("generation complete",
		"duration", summary.Duration,
		"organizations", summary.Organizations,
		"users", summary.Users,
		"teams", summary.Teams,
		"memberships", summary.Memberships,
		"projects", summary.Projects,
		"sections", summary.Sections,
		"field_definitions", summary.Definitions,
		"tasks", summary.Tasks,
		"subtasks", summary.Subtasks,
		"comments", summary.Comments,
		"tags", summary.Tags,
		"task_tags", summary.TaskTags,
		"field_values", summary.FieldValues,
		"content_generated", summary.ContentGenerated,
		"content_fallbacks", summary.ContentFallbacks,
	)
}

// buildContentProvider wires the mixed strategy. Without credentials, or
// when the backend fails the upfront probe, the run degrades to the
// template-only path with a warning instead of failing.
func buildContentProvider(ctx context.Context, cfg config.LLMConfig) *content.MixedProvider {
	template := content.NewTemplateProvider()

	if !cfg.Enabled() {
		slog.Info("no content credentials configured, using templates only")
		return content.NewMixedProvider(template, nil, 0)
	}

	client, err := llm.New(llm.Config{
		Provider: cfg.Provider,
		APIKey:   cfg.APIKey,
		BaseURL:  cfg.BaseURL,
		Model:    cfg.Model,
	})
	if err != nil {
		slog.Warn("content backend unavailable, using templates only", "error", err)
		return content.NewMixedProvider(template, nil, 0)
	}

	generative := content.NewGenerativeProvider(client, time.Duration(cfg.TimeoutSeconds)*time.Second, cfg.MaxTokens)
	if err := generative.Probe(ctx); err != nil {
		slog.Warn("content backend failed probe, using templates only", "error", err)
		return content.NewMixedProvider(template, nil, 0)
	}

	slog.Info("content backend ready", "provider", cfg.Provider, "model", client.Model(), "mix_ratio", cfg.MixRatio)
	return content.NewMixedProvider(template, generative, cfg.MixRatio)
}
