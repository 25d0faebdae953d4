// Package ollama provides a Completer implementation for the Ollama chat API.
//
// The Ollama path carries no token-limit parameter: MaxTokens on the
// embedded adapter is never forwarded.
package ollama

import (
	"context"
	"fmt"

	"github.com/uigenlab/uigen/pkg/chats/message"
	"github.com/uigenlab/uigen/pkg/modeladapter"
)

const chatPath = "/api/chat"

var _ modeladapter.Completer = (*Adapter)(nil)

// Adapter implements modeladapter.Completer for the Ollama chat API.
type Adapter struct {
	modeladapter.ModelAdapter
}

// New creates an Adapter configured for an Ollama server.
// The host should be the server's base URL, e.g. "http://localhost:11434"
// (no trailing slash). Ollama requires no API key.
func New(host, model string) *Adapter {
	a := &Adapter{}
	a.BaseURL = host
	a.Name = model

	return a
}

// Complete sends the messages to the Ollama chat API and returns the
// reply content unchanged.
func (a *Adapter) Complete(ctx context.Context, msgs []message.Message) (string, error) {
	req := a.buildRequest(msgs)

	var resp apiResponse
	if err := a.PostJSON(ctx, chatPath, req, &resp); err != nil {
		return "", fmt.Errorf("ollama: %w", err)
	}

	return resp.Message.Content, nil
}

// --- request types ---

type apiRequest struct {
	Model    string       `json:"model"`
	Messages []apiMessage `json:"messages"`
	Stream   bool         `json:"stream"`
	Options  *apiOptions  `json:"options,omitempty"`
}

type apiMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type apiOptions struct {
	Temperature float64 `json:"temperature"`
}

// --- response types ---

type apiResponse struct {
	Message apiRespMessage `json:"message"`
}

type apiRespMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

func (a *Adapter) buildRequest(msgs []message.Message) apiRequest {
	req := apiRequest{
		Model:  a.Name,
		Stream: false,
	}

	if a.Temperature != 0 {
		req.Options = &apiOptions{Temperature: a.Temperature}
	}

	req.Messages = make([]apiMessage, len(msgs))
	for i, m := range msgs {
		req.Messages[i] = apiMessage{Role: m.Role.String(), Content: m.Content}
	}

	return req
}
