// Package llm wraps the external text-generation providers behind one
// client interface. The generation pipeline only ever sees Client; which
// provider serves it is a configuration concern.
package llm

import (
	"context"
	"fmt"

	"github.com/invopop/jsonschema"
)

// Provider constants for provider selection.
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

// Config holds provider configuration.
type Config struct {
	Provider string // "openai" or "anthropic"
	APIKey   string
	BaseURL  string // Optional: custom API endpoint
	Model    string
}

// Client is a text-completion client. Complete returns plain text;
// CompleteJSON requests output conforming to Request.Schema and decodes it
// into result. Both honor the context deadline.
type Client interface {
	Complete(ctx context.Context, req Request) (string, error)
	CompleteJSON(ctx context.Context, req Request, result any) error
	Model() string
}

// Request carries one completion call. SchemaName and Schema are only
// consulted by CompleteJSON.
type Request struct {
	SystemPrompt string
	UserPrompt   string
	SchemaName   string
	Schema       any
	MaxTokens    int
	Temperature  *float64 // nil = model default, explicit 0 = deterministic
}

// New creates a Client for the configured provider. Defaults to OpenAI
// when no provider is specified.
func New(cfg Config) (Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	provider := cfg.Provider
	if provider == "" {
		provider = ProviderOpenAI
	}

	switch provider {
	case ProviderOpenAI:
		return newOpenAIClient(cfg), nil
	case ProviderAnthropic:
		return newAnthropicClient(cfg), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", provider)
	}
}

// GenerateSchema builds a strict JSON schema for T, suitable for
// structured-output requests.
func GenerateSchema[T any]() any {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	var v T
	return reflector.Reflect(v)
}

func Temp(t float64) *float64 {
	return &t
}
