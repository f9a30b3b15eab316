package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// AzureAPIVersion is the API version sent on every Azure OpenAI request.
const AzureAPIVersion = "2024-05-01-preview"

type LLMConfig struct {
	Provider   string `toml:"provider"`
	Model      string `toml:"model"`
	APIKey     string `toml:"api_key"`
	BaseURL    string `toml:"base_url"`
	APIVersion string `toml:"api_version"`
}

type Config struct {
	LLM LLMConfig `toml:"llm"`
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	return &cfg, nil
}

// ApplyEnv overrides file values with environment variables. The generic LLM_*
// variables are applied first; the Azure-specific triple wins over both and
// switches the provider to azure.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("LLM_PROVIDER"); v != "" {
		c.LLM.Provider = v
	}
	if v := os.Getenv("LLM_MODEL"); v != "" {
		c.LLM.Model = v
	}
	if v := os.Getenv("LLM_API_KEY"); v != "" {
		c.LLM.APIKey = v
	}
	if v := os.Getenv("LLM_BASE_URL"); v != "" {
		c.LLM.BaseURL = v
	}

	if v := os.Getenv("AZURE_OPENAI_KEY"); v != "" {
		c.LLM.Provider = "azure"
		c.LLM.APIKey = v
	}
	if v := os.Getenv("AZURE_OPENAI_ENDPOINT"); v != "" {
		c.LLM.Provider = "azure"
		c.LLM.BaseURL = v
	}
	if v := os.Getenv("AZURE_OPENAI_DEPLOYMENT_NAME"); v != "" {
		c.LLM.Model = v
	}

	if c.LLM.Provider == "" {
		c.LLM.Provider = "azure"
	}
	if c.LLM.Provider == "azure" && c.LLM.APIVersion == "" {
		c.LLM.APIVersion = AzureAPIVersion
	}
}
