package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/uigenlab/uigen/pkg/uigen"
)

var successStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2")) // green

type wizardAnswers struct {
	Provider    string
	APIKey      string //nolint:gosec // env var reference, not a secret
	BaseURL     string
	Model       string
	Temperature string // empty = backend default
	MaxTokens   string // empty = backend default, openai only
}

type wizardDefaults struct {
	APIKey  string //nolint:gosec // env var reference template, not a hardcoded secret
	BaseURL string
	Model   string
}

//nolint:gosec // env var reference templates, not hardcoded secrets
var providerDefaults = map[string]wizardDefaults{
	"openai": {APIKey: "${OPENAI_API_KEY}", Model: "gpt-4o-mini"},
	"ollama": {BaseURL: "http://localhost:11434", Model: "llama3"},
}

// runInit walks the user through a backend selection and writes the
// resulting uigen.yaml.
func runInit(path string) error {
	a, err := runWizard()
	if err != nil {
		return err
	}

	data, err := buildConfigYAML(a)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil { //nolint:gosec // config file, not secret
		return fmt.Errorf("write config: %w", err)
	}

	fmt.Println(successStyle.Render("✓ wrote " + path))

	return nil
}

func runWizard() (wizardAnswers, error) {
	var a wizardAnswers

	if err := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Backend").
			Options(
				huh.NewOption("OpenAI", "openai"),
				huh.NewOption("Ollama", "ollama"),
			).
			Value(&a.Provider),
	)).Run(); err != nil {
		return wizardAnswers{}, err
	}

	d := providerDefaults[a.Provider]
	a.APIKey = d.APIKey
	a.BaseURL = d.BaseURL
	a.Model = d.Model

	fields := []huh.Field{
		huh.NewInput().Title("Model").Value(&a.Model),
	}

	switch a.Provider {
	case "openai":
		fields = append(fields,
			huh.NewInput().Title("API key (or env var reference)").Value(&a.APIKey),
			huh.NewInput().Title("Base URL (empty = api.openai.com)").Value(&a.BaseURL),
			huh.NewInput().Title("Max output tokens (empty = backend default)").
				Value(&a.MaxTokens).Validate(validateOptionalNonNegativeInt),
		)
	case "ollama":
		fields = append(fields,
			huh.NewInput().Title("Host").Value(&a.BaseURL),
		)
	}

	fields = append(fields,
		huh.NewInput().Title("Temperature (empty = backend default)").
			Value(&a.Temperature).Validate(validateOptionalFloat),
	)

	if err := huh.NewForm(huh.NewGroup(fields...)).Run(); err != nil {
		return wizardAnswers{}, err
	}

	return a, nil
}

// buildConfigYAML converts wizard answers into marshaled uigen.Config
// YAML. Split out from runInit so it can be tested without a terminal.
func buildConfigYAML(a wizardAnswers) ([]byte, error) {
	cfg := uigen.Config{
		Provider: a.Provider,
		APIKey:   a.APIKey,
		BaseURL:  a.BaseURL,
		Model:    a.Model,
	}

	if a.Temperature != "" {
		temp, err := strconv.ParseFloat(a.Temperature, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid temperature %q: %w", a.Temperature, err)
		}
		cfg.Temperature = temp
	}

	if a.MaxTokens != "" {
		maxTokens, err := strconv.Atoi(a.MaxTokens)
		if err != nil {
			return nil, fmt.Errorf("invalid max tokens %q: %w", a.MaxTokens, err)
		}
		cfg.MaxTokens = maxTokens
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}

	return data, nil
}

func validateOptionalNonNegativeInt(s string) error {
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return fmt.Errorf("must be a non-negative integer")
	}
	return nil
}

func validateOptionalFloat(s string) error {
	if s == "" {
		return nil
	}
	if _, err := strconv.ParseFloat(s, 64); err != nil {
		return fmt.Errorf("must be a number")
	}
	return nil
}
