package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"margadarsaka-be/pkg/llm"
)

func newTestProvider(handler http.HandlerFunc) (*GeminiProvider, *httptest.Server) {
	srv := httptest.NewServer(handler)
	p := NewGeminiProvider("test-key", "")
	p.BaseURL = srv.URL
	p.Client = srv.Client()
	return p, srv
}

func candidateResponse(text string) []byte {
	payload := geminiResponse{
		Candidates: []*geminiCandidate{
			{Content: &geminiContent{Parts: []*geminiPart{{Text: text}}}},
		},
	}
	b, _ := json.Marshal(payload)
	return b
}

func TestGenerateSendsKeyAndModel(t *testing.T) {
	var gotPath, gotKey string
	var gotBody geminiRequest

	p, srv := newTestProvider(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-goog-api-key")
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Write(candidateResponse("hello back"))
	})
	defer srv.Close()

	out, err := p.Generate(context.Background(), "hello")
	assert.NoError(t, err)
	assert.Equal(t, "hello back", out)
	assert.Equal(t, "/models/"+DefaultModel+":generateContent", gotPath)
	assert.Equal(t, "test-key", gotKey)
	assert.Len(t, gotBody.Contents, 1)
	assert.Equal(t, "hello", gotBody.Contents[0].Parts[0].Text)
	assert.Equal(t, "user", gotBody.Contents[0].Role)
}

func TestChatFoldsAssistantToModelRole(t *testing.T) {
	var gotBody geminiRequest
	p, srv := newTestProvider(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Write(candidateResponse("ok"))
	})
	defer srv.Close()

	_, err := p.Chat(context.Background(), []llm.Message{
		{Role: "system", Content: "instructions"},
		{Role: "user", Content: "hi"},
		{Role: "assistant", Content: "hello"},
	})
	assert.NoError(t, err)

	assert.Len(t, gotBody.Contents, 3)
	assert.Equal(t, "user", gotBody.Contents[0].Role) // system folds to user
	assert.Equal(t, "user", gotBody.Contents[1].Role)
	assert.Equal(t, "model", gotBody.Contents[2].Role)
}

func TestNon200MarksProviderUnavailable(t *testing.T) {
	p, srv := newTestProvider(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":"quota"}`))
	})
	defer srv.Close()

	_, err := p.Generate(context.Background(), "hello")
	assert.True(t, errors.Is(err, llm.ErrProviderUnavailable))
}

func TestEmptyCandidatesMarksProviderUnavailable(t *testing.T) {
	p, srv := newTestProvider(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[]}`))
	})
	defer srv.Close()

	_, err := p.Generate(context.Background(), "hello")
	assert.True(t, errors.Is(err, llm.ErrProviderUnavailable))
}

func TestModelOverrideOption(t *testing.T) {
	var gotPath string
	p, srv := newTestProvider(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write(candidateResponse("ok"))
	})
	defer srv.Close()

	_, err := p.Generate(context.Background(), "hello", llm.WithModel("gemini-2.5-pro"))
	assert.NoError(t, err)
	assert.Equal(t, "/models/gemini-2.5-pro:generateContent", gotPath)
}
