package ollama_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uigenlab/uigen/pkg/chats/message"
	"github.com/uigenlab/uigen/pkg/chats/role"
	"github.com/uigenlab/uigen/pkg/providers/ollama"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *ollama.Adapter) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	a := ollama.New(srv.URL, "llama3")

	return srv, a
}

func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(v); err != nil {
		t.Errorf("failed to encode response: %v", err)
	}
}

func readBody(t *testing.T, r *http.Request) map[string]any {
	t.Helper()

	body, err := io.ReadAll(r.Body)
	if err != nil {
		t.Fatalf("failed to read body: %v", err)
	}

	var req map[string]any
	if err := json.Unmarshal(body, &req); err != nil {
		t.Fatalf("failed to unmarshal body: %v", err)
	}

	return req
}

func chatResponse(text string) map[string]any {
	return map[string]any{
		"message": map[string]any{"role": "assistant", "content": text},
	}
}

func TestComplete_SimpleText(t *testing.T) {
	_, adapter := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/chat", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))

		req := readBody(t, r)

		assert.Equal(t, "llama3", req["model"])
		assert.Equal(t, false, req["stream"])

		msgs, ok := req["messages"].([]any)
		assert.True(t, ok)
		assert.Len(t, msgs, 2) // system + user

		first, _ := msgs[0].(map[string]any)
		assert.Equal(t, "system", first["role"])

		second, _ := msgs[1].(map[string]any)
		assert.Equal(t, "user", second["role"])
		assert.Equal(t, "Hi", second["content"])

		writeJSON(t, w, chatResponse("Hello there!"))
	})

	got, err := adapter.Complete(context.Background(), []message.Message{
		message.New(role.System, "You are helpful."),
		message.New(role.User, "Hi"),
	})

	require.NoError(t, err)
	assert.Equal(t, "Hello there!", got)
}

func TestComplete_ContentReturnedUnchanged(t *testing.T) {
	text := "\n<div>card</div>  "
	_, adapter := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, chatResponse(text))
	})

	got, err := adapter.Complete(context.Background(), []message.Message{
		message.New(role.User, "a card"),
	})

	require.NoError(t, err)
	assert.Equal(t, text, got)
}

func TestComplete_ForwardsTemperatureInOptions(t *testing.T) {
	_, adapter := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		req := readBody(t, r)

		opts, ok := req["options"].(map[string]any)
		assert.True(t, ok)
		assert.Equal(t, 0.7, opts["temperature"])

		writeJSON(t, w, chatResponse("ok"))
	})

	adapter.Temperature = 0.7

	_, err := adapter.Complete(context.Background(), []message.Message{
		message.New(role.User, "hi"),
	})
	require.NoError(t, err)
}

func TestComplete_NoTokenLimitForwarded(t *testing.T) {
	_, adapter := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		req := readBody(t, r)

		_, hasOptions := req["options"]
		assert.False(t, hasOptions)

		for key := range req {
			assert.NotEqual(t, "max_tokens", key)
		}

		writeJSON(t, w, chatResponse("ok"))
	})

	// MaxTokens set on the embedded adapter must never reach the wire.
	adapter.MaxTokens = 512

	_, err := adapter.Complete(context.Background(), []message.Message{
		message.New(role.User, "hi"),
	})
	require.NoError(t, err)
}

func TestComplete_APIError(t *testing.T) {
	_, adapter := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("model not loaded"))
	})

	_, err := adapter.Complete(context.Background(), []message.Message{
		message.New(role.User, "hi"),
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
	assert.Contains(t, err.Error(), "model not loaded")
}
