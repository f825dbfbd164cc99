package inference

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"newswatch/domain"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func geminiServer(t *testing.T, status int, body string, seen *string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if seen != nil {
			raw, _ := io.ReadAll(r.Body)
			*seen = string(raw)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
}

func TestGeminiClient_Summarize(t *testing.T) {
	req := require.New(t)

	// Given a Gemini endpoint answering with one candidate
	var sent string
	server := geminiServer(t, http.StatusOK,
		`{"candidates":[{"content":{"role":"model","parts":[{"text":"  Short summary.  "}]}}]}`, &sent)
	defer server.Close()
	client, err := NewGeminiClient(context.Background(), "key", "", server.URL)
	req.NoError(err)

	// When summarizing
	summary, err := client.Summarize(context.Background(), "The article body.", domain.DefaultSummaryOptions)

	// Then the answer is trimmed and the prompt embeds the article
	req.NoError(err)
	req.Equal("Short summary.", summary)
	req.Contains(sent, "The article body.")
	req.Contains(sent, "between 100 and 600 characters")
}

func TestGeminiClient_CapsLongAnswers(t *testing.T) {
	req := require.New(t)
	long := strings.Repeat("a", 50)
	server := geminiServer(t, http.StatusOK,
		`{"candidates":[{"content":{"parts":[{"text":"`+long+`"}]}}]}`, nil)
	defer server.Close()
	client, err := NewGeminiClient(context.Background(), "key", "gemini-test", server.URL)
	req.NoError(err)

	summary, err := client.Summarize(context.Background(), "text", domain.SummaryOptions{MaxLength: 10, MinLength: 1})

	req.NoError(err)
	req.Len(summary, 10)
}

func TestGeminiClient_Failures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{name: "server error", status: http.StatusInternalServerError, body: `{"error":{"code":500,"message":"boom","status":"INTERNAL"}}`},
		{name: "no candidates", status: http.StatusOK, body: `{"candidates":[]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			server := geminiServer(t, tt.status, tt.body, nil)
			defer server.Close()
			client, err := NewGeminiClient(context.Background(), "key", "", server.URL)
			req.NoError(err)

			_, err = client.Summarize(context.Background(), "text", domain.DefaultSummaryOptions)

			req.Error(err)
		})
	}
}

func TestNewGeminiClient_RequiresKey(t *testing.T) {
	_, err := NewGeminiClient(context.Background(), "", "", "")
	require.Error(t, err)
}

func TestPrompt(t *testing.T) {
	prompt := Prompt("body", domain.SummaryOptions{MinLength: 5, MaxLength: 50})
	require.True(t, strings.HasSuffix(prompt, "\n\nbody"))
	require.Contains(t, prompt, "between 5 and 50 characters")
}
