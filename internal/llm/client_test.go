package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	t.Setenv("OPENAI_API_KEY", "test-key")
	c, err := NewClient("", baseURL)
	require.NoError(t, err)
	return c
}

func TestNewClient_MissingKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	_, err := NewClient("", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OPENAI_API_KEY")
}

func TestNewClient_Defaults(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "test-key")
	c, err := NewClient("", "")
	require.NoError(t, err)
	assert.Equal(t, DefaultModel, c.Model())
	assert.Equal(t, DefaultBaseURL, c.baseURL)
}

func TestAnalyze_RequestShape(t *testing.T) {
	var got chatRequest
	var auth, path string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		auth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"content":"{\"word\":\"casa\"}"}}]}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	content, err := c.Analyze(context.Background(), "casa")
	require.NoError(t, err)

	assert.Equal(t, "/chat/completions", path)
	assert.Equal(t, "Bearer test-key", auth)
	assert.Equal(t, DefaultModel, got.Model)
	assert.InDelta(t, 0.7, got.Temperature, 0.0001)
	assert.Equal(t, 2000, got.MaxTokens)
	require.Len(t, got.Messages, 1)
	assert.Equal(t, "user", got.Messages[0].Role)
	assert.Contains(t, got.Messages[0].Content, "casa")
	assert.Equal(t, `{"word":"casa"}`, content)
}

func TestAnalyze_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"message":"invalid api key"}}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	_, err := c.Analyze(context.Background(), "casa")
	require.Error(t, err)

	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusUnauthorized, se.StatusCode)
	assert.Contains(t, se.Body, "invalid api key")
}

func TestAnalyze_EmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	_, err := c.Analyze(context.Background(), "casa")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty response")
}

func TestAnalyze_APIErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error":{"type":"server_error","message":"overloaded"}}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	_, err := c.Analyze(context.Background(), "casa")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "overloaded")
}

func TestBuildPrompt(t *testing.T) {
	p := buildPrompt("ventana")
	assert.Contains(t, p, "ventana")
	for _, key := range []string{
		"word", "englishMeaning", "etymology", "relatedEnglishWords",
		"mnemonic", "sampleSentences", "confidence", "languageFamily", "pronunciation",
	} {
		assert.Contains(t, p, key)
	}
	assert.True(t, strings.Contains(p, "JSON"))
}
