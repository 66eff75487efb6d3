package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"interview_prep_backend/internal/config"
	"interview_prep_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAIService(baseURL string) *AIService {
	return NewAIService(config.AIConfig{
		BaseURL:        baseURL,
		APIKey:         "test-key",
		Model:          "gpt-4o",
		TimeoutSeconds: 2,
	})
}

func TestCompleteHappyPath(t *testing.T) {
	var gotAuth string
	var gotBody chatCompletionRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"{\"questions\":[\"q1\"]}"}}]}`))
	}))
	defer srv.Close()

	s := newTestAIService(srv.URL)

	content, err := s.Complete(context.Background(), ChatRequest{
		Operation:   "generate_questions",
		System:      "system prompt",
		Prompt:      "user prompt",
		Temperature: 0.7,
		MaxTokens:   400,
	})
	require.NoError(t, err)
	assert.Equal(t, `{"questions":["q1"]}`, content)

	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "gpt-4o", gotBody.Model)
	assert.Equal(t, "json_object", gotBody.ResponseFormat.Type)
	require.Len(t, gotBody.Messages, 2)
	assert.Equal(t, "system", gotBody.Messages[0].Role)
	assert.Equal(t, "user prompt", gotBody.Messages[1].Content)
}

func TestCompleteRateLimitedIsCapacity(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	s := newTestAIService(srv.URL)
	_, err := s.Complete(context.Background(), ChatRequest{Operation: "generate_questions"})
	assert.ErrorIs(t, err, util.ErrUpstreamCapacity)
}

func TestCompleteServiceUnavailableIsCapacity(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	s := newTestAIService(srv.URL)
	_, err := s.Complete(context.Background(), ChatRequest{Operation: "generate_questions"})
	assert.ErrorIs(t, err, util.ErrUpstreamCapacity)
}

func TestCompleteInsufficientQuotaIsCapacity(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		w.Write([]byte(`{"error":{"message":"You exceeded your current quota","code":"insufficient_quota"}}`))
	}))
	defer srv.Close()

	s := newTestAIService(srv.URL)
	_, err := s.Complete(context.Background(), ChatRequest{Operation: "analyze_interview"})
	assert.ErrorIs(t, err, util.ErrUpstreamCapacity)
}

func TestCompleteTimeoutIsCapacity(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	s := newTestAIService(srv.URL)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := s.Complete(ctx, ChatRequest{Operation: "generate_questions"})
	assert.ErrorIs(t, err, util.ErrUpstreamCapacity)
}

func TestCompleteOtherStatusIsNotCapacity(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"message":"Invalid API key"}}`))
	}))
	defer srv.Close()

	s := newTestAIService(srv.URL)
	_, err := s.Complete(context.Background(), ChatRequest{Operation: "generate_questions"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, util.ErrUpstreamCapacity)
}

func TestCompleteAPIErrorPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error":{"message":"model is overloaded, try again"}}`))
	}))
	defer srv.Close()

	s := newTestAIService(srv.URL)
	_, err := s.Complete(context.Background(), ChatRequest{Operation: "generate_questions"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "model is overloaded")
}

func TestCompleteNoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	s := newTestAIService(srv.URL)
	_, err := s.Complete(context.Background(), ChatRequest{Operation: "generate_questions"})
	assert.Error(t, err)
}
