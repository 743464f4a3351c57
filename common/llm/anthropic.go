package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

type anthropicClient struct {
	client anthropic.Client
	model  string
}

func newAnthropicClient(cfg Config) *anthropicClient {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	model := cfg.Model
	if model == "" {
		model = "claude-3-5-haiku-latest"
	}

	return &anthropicClient{
		client: anthropic.NewClient(opts...),
		model:  model,
	}
}

func (c *anthropicClient) Complete(ctx context.Context, req Request) (string, error) {
	resp, err := c.message(ctx, req.SystemPrompt, req.UserPrompt, req)
	if err != nil {
		return "", err
	}

	var content string
	for _, block := range resp.Content {
		if block.Type == "text" {
			content += block.Text
		}
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return "", fmt.Errorf("empty completion")
	}
	return content, nil
}

// CompleteJSON has no native structured-output mode on this provider; the
// schema is embedded in the system prompt and the reply parsed as JSON.
func (c *anthropicClient) CompleteJSON(ctx context.Context, req Request, result any) error {
	schemaJSON, err := json.Marshal(req.Schema)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	system := req.SystemPrompt + "\n\nRespond with a single JSON object conforming to this schema, no prose:\n" + string(schemaJSON)

	resp, err := c.message(ctx, system, req.UserPrompt, req)
	if err != nil {
		return err
	}

	var content string
	for _, block := range resp.Content {
		if block.Type == "text" {
			content += block.Text
		}
	}
	content = strings.TrimSpace(content)
	if err := json.Unmarshal([]byte(content), result); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}
	return nil
}

func (c *anthropicClient) message(ctx context.Context, system, user string, req Request) (*anthropic.Message, error) {
	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = 256
	}

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: int64(maxTokens),
		Messages: []anthropic.MessageParam{
			{
				Role: anthropic.MessageParamRoleUser,
				Content: []anthropic.ContentBlockParamUnion{
					anthropic.NewTextBlock(user),
				},
			},
		},
	}
	if system != "" {
		params.System = []anthropic.TextBlockParam{{Type: "text", Text: system}}
	}
	if req.Temperature != nil {
		params.Temperature = anthropic.Float(*req.Temperature)
	}

	start := time.Now()
	resp, err := c.client.Messages.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("anthropic chat: %w", err)
	}

	slog.DebugContext(ctx, "llm completion",
		"model", c.model,
		"duration_ms", time.Since(start).Milliseconds(),
		"input_tokens", resp.Usage.InputTokens,
		"output_tokens", resp.Usage.OutputTokens)

	return resp, nil
}

func (c *anthropicClient) Model() string {
	return c.model
}
