// client_test.go - Tests for the OpenAI client against a mock server
// Run with: go test ./...

package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

// chatResponse wraps a content string in the chat completions response shape
// (choices[0].message.content).
func chatResponse(content string) map[string]interface{} {
	return map[string]interface{}{
		"choices": []map[string]interface{}{
			{
				"message": map[string]interface{}{
					"content": content,
				},
			},
		},
	}
}

// newMockServer returns an httptest server that records the last request body
// and replies with the given status and body.
func newMockServer(t *testing.T, status int, body interface{}, lastReq *chatRequest) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		if lastReq != nil {
			_ = json.NewDecoder(r.Body).Decode(lastReq)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(body)
	}))
}

func TestSummarizeSuccess(t *testing.T) {
	var sent chatRequest
	server := newMockServer(t, http.StatusOK, chatResponse("Drink more water."), &sent)
	defer server.Close()

	client := NewClient("test-key", server.URL)
	text, err := client.Summarize(context.Background(), "- weight 160.50 lbs\n")
	assert.NoError(t, err)
	assert.Equal(t, "Drink more water.", text)

	// Fixed model and sampling parameters
	assert.Equal(t, "gpt-4", sent.Model)
	assert.Equal(t, 100, sent.MaxTokens)
	assert.Equal(t, 0.7, sent.Temperature)
	assert.Len(t, sent.Messages, 2)
	assert.Equal(t, "system", sent.Messages[0].Role)
	assert.Contains(t, sent.Messages[1].Content, "- weight 160.50 lbs")
}

func TestSummarizeUpstreamError(t *testing.T) {
	server := newMockServer(t, http.StatusInternalServerError, map[string]string{"error": "boom"}, nil)
	defer server.Close()

	client := NewClient("test-key", server.URL)
	_, err := client.Summarize(context.Background(), "data")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestSummarizeEmptyChoices(t *testing.T) {
	server := newMockServer(t, http.StatusOK, map[string]interface{}{"choices": []interface{}{}}, nil)
	defer server.Close()

	client := NewClient("test-key", server.URL)
	_, err := client.Summarize(context.Background(), "data")
	assert.Error(t, err)
}

func TestSummarizeMissingAPIKey(t *testing.T) {
	client := NewClient("", "http://unused")
	_, err := client.Summarize(context.Background(), "data")
	assert.Error(t, err)
}
