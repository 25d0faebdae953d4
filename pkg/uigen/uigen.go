package uigen

import (
	"context"
	"fmt"
	"net/http"

	"github.com/uigenlab/uigen/pkg/chats/message"
	"github.com/uigenlab/uigen/pkg/chats/role"
	"github.com/uigenlab/uigen/pkg/modeladapter"
	"github.com/uigenlab/uigen/pkg/prompt"
	"github.com/uigenlab/uigen/pkg/providers/ollama"
	"github.com/uigenlab/uigen/pkg/providers/openai"
)

// Kind identifies a supported text-generation backend.
type Kind string

const (
	KindOpenAI Kind = "openai"
	KindOllama Kind = "ollama"
)

// Valid reports whether k is one of the supported backend kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindOpenAI, KindOllama:
		return true
	}
	return false
}

// String returns the underlying string value of the kind.
func (k Kind) String() string {
	return string(k)
}

// DefaultOpenAIBaseURL is used on the openai path when no base URL
// override is configured.
const DefaultOpenAIBaseURL = "https://api.openai.com"

// Preamble is the fixed system instruction sent ahead of every user
// prompt. Generated output depends on its exact wording; keep it
// byte-for-byte stable.
const Preamble = "You are an experienced front-end developer. " +
	"Write the source code of the component the user describes. " +
	"Reply with the plain component source only: no markdown formatting, " +
	"no explanations, and no import or export statements."

// Options configures a Generator. Provider and Model are validated at
// New; the provider-specific required field (APIKey for openai, BaseURL
// for ollama) is checked at dispatch time, before any request is built.
type Options struct {
	Provider    Kind
	APIKey      string       // Required on the openai path. Unused by ollama.
	BaseURL     string       // Required on the ollama path; optional override for openai.
	Model       string       // Backend model identifier. Never checked against a live model list.
	Temperature float64      // Sampling temperature; 0 means backend default.
	MaxTokens   int          // Response token cap; forwarded on the openai path only.
	Client      *http.Client // HTTP client; nil falls back to http.DefaultClient.
}

// Generator dispatches prompts to a single configured backend. It is
// immutable after New and safe for concurrent use.
type Generator struct {
	kind      Kind
	apiKey    string
	baseURL   string
	completer modeladapter.Completer
}

// New validates opts and returns a ready-to-use Generator.
func New(opts Options) (*Generator, error) {
	if !opts.Provider.Valid() {
		return nil, fmt.Errorf("uigen: provider %q: %w", opts.Provider, ErrUnsupportedProvider)
	}
	if opts.Model == "" {
		return nil, fmt.Errorf("uigen: %w", ErrMissingModel)
	}

	g := &Generator{
		kind:    opts.Provider,
		apiKey:  opts.APIKey,
		baseURL: opts.BaseURL,
	}

	switch opts.Provider {
	case KindOpenAI:
		baseURL := opts.BaseURL
		if baseURL == "" {
			baseURL = DefaultOpenAIBaseURL
		}

		a := openai.New(baseURL, opts.APIKey, opts.Model)
		a.Temperature = opts.Temperature
		a.MaxTokens = opts.MaxTokens
		a.Client = opts.Client
		g.completer = a

	case KindOllama:
		a := ollama.New(opts.BaseURL, opts.Model)
		a.Temperature = opts.Temperature
		a.Client = opts.Client
		g.completer = a
	}

	return g, nil
}

// Generate flattens the template and dispatches it. See GenerateText.
func (g *Generator) Generate(ctx context.Context, t *prompt.Template) (string, error) {
	return g.GenerateText(ctx, t.Flatten())
}

// GenerateText sends the fixed Preamble plus userPrompt to the configured
// backend in a single chat call and returns the generated text unchanged.
// Backend failures are returned wrapped in *BackendError.
func (g *Generator) GenerateText(ctx context.Context, userPrompt string) (string, error) {
	if err := g.checkDispatch(); err != nil {
		return "", err
	}

	msgs := []message.Message{
		message.New(role.System, Preamble),
		message.New(role.User, userPrompt),
	}

	out, err := g.completer.Complete(ctx, msgs)
	if err != nil {
		return "", &BackendError{Kind: g.kind, Err: err}
	}

	return out, nil
}

// checkDispatch verifies the provider-specific required field before any
// request is built, so a misconfigured Generator never touches the
// network.
func (g *Generator) checkDispatch() error {
	switch g.kind {
	case KindOpenAI:
		if g.apiKey == "" {
			return fmt.Errorf("uigen: %w", ErrMissingAPIKey)
		}
	case KindOllama:
		if g.baseURL == "" {
			return fmt.Errorf("uigen: %w", ErrMissingHost)
		}
	default:
		// Unreachable through New, which rejects unknown kinds.
		return fmt.Errorf("uigen: provider %q: %w", g.kind, ErrUnsupportedProvider)
	}

	return nil
}
