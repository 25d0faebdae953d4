package modeladapter

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uigenlab/uigen/pkg/chats/message"
	"github.com/uigenlab/uigen/pkg/chats/role"
)

// Compile-time interface check.
var _ Completer = (*mockCompleter)(nil)

type mockCompleter struct {
	reply string
	err   error
}

func (m *mockCompleter) Complete(_ context.Context, _ []message.Message) (string, error) {
	return m.reply, m.err
}

func TestCompleter_Success(t *testing.T) {
	c := &mockCompleter{reply: "component source"}

	got, err := c.Complete(context.Background(), []message.Message{
		message.New(role.User, "a button"),
	})

	require.NoError(t, err)
	assert.Equal(t, "component source", got)
}

func TestCompleter_Error(t *testing.T) {
	c := &mockCompleter{err: errors.New("api error")}

	_, err := c.Complete(context.Background(), nil)

	assert.EqualError(t, err, "api error")
}

func TestModelAdapter_Complete_Stub(t *testing.T) {
	a := New("http://example.test", Auth{}, nil)

	_, err := a.Complete(context.Background(), nil)

	assert.Error(t, err)
}

func TestNewRequest_DefaultAuthHeader(t *testing.T) {
	a := New("http://example.test", Auth{Key: "secret"}, nil)

	req, err := a.NewRequest(context.Background(), http.MethodPost, "/v1/chat", nil)
	require.NoError(t, err)

	assert.Equal(t, "http://example.test/v1/chat", req.URL.String())
	assert.Equal(t, "Bearer secret", req.Header.Get("Authorization"))
}

func TestNewRequest_CustomAuthHeader(t *testing.T) {
	a := New("http://example.test", Auth{Key: "secret", Header: "x-api-key"}, nil)

	req, err := a.NewRequest(context.Background(), http.MethodPost, "/v1/chat", nil)
	require.NoError(t, err)

	assert.Equal(t, "secret", req.Header.Get("x-api-key"))
	assert.Empty(t, req.Header.Get("Authorization"))
}

func TestNewRequest_NoAuth(t *testing.T) {
	a := New("http://example.test", Auth{}, nil)

	req, err := a.NewRequest(context.Background(), http.MethodPost, "/api/chat", nil)
	require.NoError(t, err)

	assert.Empty(t, req.Header.Get("Authorization"))
}

func TestNewRequest_ExtraHeaders(t *testing.T) {
	a := New("http://example.test", Auth{}, nil)
	a.Headers = map[string]string{"x-custom": "value"}

	req, err := a.NewRequest(context.Background(), http.MethodGet, "/", nil)
	require.NoError(t, err)

	assert.Equal(t, "value", req.Header.Get("x-custom"))
}

func TestPostJSON_RoundTrip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"reply":"ok"}`))
	}))
	t.Cleanup(srv.Close)

	a := New(srv.URL, Auth{}, nil)

	var dest struct {
		Reply string `json:"reply"`
	}
	err := a.PostJSON(context.Background(), "/chat", map[string]string{"q": "hi"}, &dest)

	require.NoError(t, err)
	assert.Equal(t, "ok", dest.Reply)
}

func TestPostJSON_NonTwoHundredIncludesBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("invalid api key"))
	}))
	t.Cleanup(srv.Close)

	a := New(srv.URL, Auth{Key: "bad"}, nil)

	err := a.PostJSON(context.Background(), "/chat", map[string]string{}, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
	assert.Contains(t, err.Error(), "invalid api key")
}

func TestPostJSON_NilDestDiscardsBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"ignored":true}`))
	}))
	t.Cleanup(srv.Close)

	a := New(srv.URL, Auth{}, nil)

	assert.NoError(t, a.PostJSON(context.Background(), "/chat", map[string]string{}, nil))
}
