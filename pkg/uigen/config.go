package uigen

import (
	"fmt"
	"net/http"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the YAML representation of a backend configuration.
type Config struct {
	Provider    string  `yaml:"provider"`
	APIKey      string  `yaml:"api_key"` //nolint:gosec // configuration field, not a hardcoded secret
	BaseURL     string  `yaml:"base_url"`
	Model       string  `yaml:"model"`
	Temperature float64 `yaml:"temperature"`
	MaxTokens   int     `yaml:"max_tokens"`
}

// LoadConfig reads a YAML file and returns a Config.
// Environment variables referenced as ${VAR} or $VAR in the YAML are
// expanded before parsing. This allows API keys to be kept in environment
// variables (e.g. loaded from a .env file) rather than committed in the
// config.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is caller-provided configuration, not user input
	if err != nil {
		return Config{}, fmt.Errorf("uigen: load config: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return Config{}, fmt.Errorf("uigen: parse config: %w", err)
	}

	return cfg, nil
}

// Validate checks the fields New validates eagerly, so configuration
// problems surface before a Generator is built.
func (c Config) Validate() error {
	if !Kind(c.Provider).Valid() {
		return fmt.Errorf("uigen: config: provider %q: %w", c.Provider, ErrUnsupportedProvider)
	}
	if c.Model == "" {
		return fmt.Errorf("uigen: config: %w", ErrMissingModel)
	}

	return nil
}

// Options maps the config to Options. The client is left nil so the
// Generator falls back to http.DefaultClient.
func (c Config) Options() Options {
	return c.OptionsWithClient(nil)
}

// OptionsWithClient maps the config to Options using the given HTTP
// client.
func (c Config) OptionsWithClient(client *http.Client) Options {
	return Options{
		Provider:    Kind(c.Provider),
		APIKey:      c.APIKey,
		BaseURL:     c.BaseURL,
		Model:       c.Model,
		Temperature: c.Temperature,
		MaxTokens:   c.MaxTokens,
		Client:      client,
	}
}
