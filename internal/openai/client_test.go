package openai

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClientRequiresAPIKey(t *testing.T) {
	_, err := NewClient("", "")
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestNewClientDefaultsModel(t *testing.T) {
	c, err := NewClient("sk-test", "")
	require.NoError(t, err)
	assert.Equal(t, DefaultModel, c.model)
}

func TestExtractContentStringContent(t *testing.T) {
	raw := `{"choices":[{"message":{"role":"assistant","content":"hello there"}}]}`
	out, err := ExtractContent([]byte(raw))
	require.NoError(t, err)
	assert.Equal(t, "hello there", out)
}

func TestExtractContentPartsContent(t *testing.T) {
	raw := `{"choices":[{"message":{"content":[
		{"type":"text","text":"part one "},
		{"type":"image_url","image_url":{"url":"http://x"}},
		{"type":"text","text":"part two"}
	]}}]}`
	out, err := ExtractContent([]byte(raw))
	require.NoError(t, err)
	assert.Equal(t, "part one part two", out)
}

func TestExtractContentNoChoices(t *testing.T) {
	_, err := ExtractContent([]byte(`{"choices":[]}`))
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestExtractContentNullContent(t *testing.T) {
	_, err := ExtractContent([]byte(`{"choices":[{"message":{"content":null}}]}`))
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestExtractContentObjectContent(t *testing.T) {
	_, err := ExtractContent([]byte(`{"choices":[{"message":{"content":{"weird":true}}}]}`))
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestExtractContentInvalidJSON(t *testing.T) {
	_, err := ExtractContent([]byte(`not json at all`))
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestCreateChatCompletionSendsPromptAndAuth(t *testing.T) {
	var gotAuth, gotPath string
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		gotBody, _ = io.ReadAll(r.Body)
		w.Write([]byte(`{"choices":[{"message":{"content":"ok"}}]}`))
	}))
	defer srv.Close()

	c, err := NewClient("sk-test", ModelGPT41Mini)
	require.NoError(t, err)
	c.baseURL = srv.URL

	raw, err := c.CreateChatCompletion(context.Background(), "explain mitosis")
	require.NoError(t, err)

	assert.Equal(t, "Bearer sk-test", gotAuth)
	assert.Equal(t, "/v1/chat/completions", gotPath)
	assert.Contains(t, string(gotBody), `"model":"gpt-4.1-mini"`)
	assert.Contains(t, string(gotBody), `"role":"user"`)
	assert.Contains(t, string(gotBody), "explain mitosis")
	assert.Contains(t, string(raw), `"content":"ok"`)
}

func TestCreateChatCompletionNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"message":"rate limited"}}`))
	}))
	defer srv.Close()

	c, err := NewClient("sk-test", "")
	require.NoError(t, err)
	c.baseURL = srv.URL

	_, err = c.CreateChatCompletion(context.Background(), "prompt")
	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusTooManyRequests, statusErr.StatusCode)
	assert.Contains(t, statusErr.Body, "rate limited")
}

func TestCreateChatCompletionTransportFailure(t *testing.T) {
	c, err := NewClient("sk-test", "")
	require.NoError(t, err)
	c.baseURL = "http://127.0.0.1:1"

	_, err = c.CreateChatCompletion(context.Background(), "prompt")
	assert.Error(t, err)
}

func TestCompleteRoundTrip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[{"message":{"content":"the reply"}}]}`))
	}))
	defer srv.Close()

	c, err := NewClient("sk-test", "")
	require.NoError(t, err)
	c.baseURL = srv.URL

	out, err := c.Complete(context.Background(), "prompt")
	require.NoError(t, err)
	assert.Equal(t, "the reply", out)
}
