package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/agenthands/docdiff/internal/config"
)

// NewClient builds a ChatClient for the configured provider. Azure needs a
// key, an endpoint and a deployment name; the other hosted providers need a
// key and a model.
func NewClient(ctx context.Context, cfg config.LLMConfig) (ChatClient, error) {
	provider := strings.ToLower(cfg.Provider)

	switch provider {
	case "openai":
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("openai provider requires an api key")
		}
		return NewOpenAIClient(cfg.APIKey, cfg.Model, cfg.BaseURL), nil

	case "azure":
		if cfg.APIKey == "" || cfg.BaseURL == "" {
			return nil, fmt.Errorf("azure provider requires an api key and an endpoint")
		}
		if cfg.Model == "" {
			return nil, fmt.Errorf("azure provider requires a deployment name")
		}
		return NewAzureClient(cfg.APIKey, cfg.Model, cfg.BaseURL, cfg.APIVersion), nil

	case "claude":
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("claude provider requires an api key")
		}
		return NewClaudeClient(cfg.APIKey, cfg.Model, cfg.BaseURL), nil

	case "gemini":
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("gemini provider requires an api key")
		}
		return NewGeminiClient(ctx, cfg.APIKey, cfg.Model)

	case "ollama":
		// Ollama speaks the OpenAI-compatible API under /v1. It ignores the
		// key but the client config requires one.
		baseURL := cfg.BaseURL
		if baseURL == "" {
			baseURL = "http://localhost:11434"
		}
		if !strings.HasSuffix(baseURL, "/v1") {
			baseURL = fmt.Sprintf("%s/v1", strings.TrimRight(baseURL, "/"))
		}

		apiKey := cfg.APIKey
		if apiKey == "" {
			apiKey = "ollama"
		}

		return NewOpenAIClient(apiKey, cfg.Model, baseURL), nil

	default:
		return nil, fmt.Errorf("unsupported llm provider: %s", cfg.Provider)
	}
}
