package openai

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kdduha/explain-camera/backend/internal/generator"
)

const completionBody = `{
  "id": "chatcmpl-1",
  "object": "chat.completion",
  "created": 1700000000,
  "model": "gpt-test",
  "choices": [{"index": 0, "finish_reason": "stop", "message": {"role": "assistant", "content": "  A brown dog on grass.  "}}]
}`

func newTestServer(t *testing.T, status int, body string, calls *int32, captured *map[string]any) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(calls, 1)
		assert.True(t, strings.HasSuffix(r.URL.Path, "/chat/completions"), r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))

		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		if captured != nil {
			require.NoError(t, json.Unmarshal(raw, captured))
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestGenerate(t *testing.T) {
	var calls int32
	var captured map[string]any
	srv := newTestServer(t, http.StatusOK, completionBody, &calls, &captured)

	e, err := New("sk-test", srv.URL, "gpt-test")
	require.NoError(t, err)

	txt, err := e.Generate(context.Background(), generator.Request{
		System:   "system instruction",
		User:     "describe",
		Image:    []byte{0x89, 'P', 'N', 'G'},
		MIMEType: "image/png",
	})
	require.NoError(t, err)
	assert.Equal(t, "A brown dog on grass.", txt)
	assert.EqualValues(t, 1, calls)

	assert.Equal(t, "gpt-test", captured["model"])
	raw, err := json.Marshal(captured["messages"])
	require.NoError(t, err)
	assert.Contains(t, string(raw), "system instruction")
	assert.Contains(t, string(raw), "describe")
	assert.Contains(t, string(raw), "data:image/png;base64,iVBORw==")
}

func TestGenerateUpstreamErrorIsNotRetried(t *testing.T) {
	var calls int32
	srv := newTestServer(t, http.StatusInternalServerError, `{"error":{"message":"boom","type":"server_error"}}`, &calls, nil)

	e, err := New("sk-test", srv.URL, "gpt-test")
	require.NoError(t, err)

	_, err = e.Generate(context.Background(), generator.Request{Image: []byte{1}, MIMEType: "image/jpeg"})
	require.Error(t, err)
	assert.EqualValues(t, 1, calls)
}

func TestGenerateEmptyChoices(t *testing.T) {
	var calls int32
	srv := newTestServer(t, http.StatusOK, `{"id":"x","object":"chat.completion","created":1,"model":"gpt-test","choices":[]}`, &calls, nil)

	e, err := New("sk-test", srv.URL, "gpt-test")
	require.NoError(t, err)

	_, err = e.Generate(context.Background(), generator.Request{Image: []byte{1}, MIMEType: "image/jpeg"})
	assert.ErrorIs(t, err, generator.ErrEmptyResponse)
}

func TestNewRequiresKey(t *testing.T) {
	_, err := New("", "", "gpt-test")
	assert.ErrorContains(t, err, "OPENAI_API_KEY")
}
