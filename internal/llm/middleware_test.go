package llm

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/ieltsvocab/vocabquiz/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastRetry(attempts int) RetryConfig {
	return RetryConfig{
		MaxAttempts: attempts,
		InitialWait: time.Millisecond,
		MaxWait:     5 * time.Millisecond,
		Multiplier:  2.0,
	}
}

func unavailable() MockResponse {
	return MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("connection refused")}}
}

func TestRetry(t *testing.T) {
	ok := MockResponse{Content: json.RawMessage(`{"questions":[]}`)}
	invalid := MockResponse{Err: &ErrInvalidResponse{Content: json.RawMessage(`oops`), Err: errors.New("invalid JSON")}}

	tests := []struct {
		name      string
		responses []MockResponse
		attempts  int
		wantErr   bool
		wantCalls int
	}{
		{"first attempt succeeds", []MockResponse{ok}, 3, false, 1},
		{"transient then success", []MockResponse{unavailable(), ok}, 3, false, 2},
		{"all attempts fail", []MockResponse{unavailable(), unavailable(), unavailable(), ok}, 3, true, 3},
		{"single attempt never retries", []MockResponse{unavailable(), ok}, 1, true, 1},
		{"zero attempts still calls once", []MockResponse{ok}, 0, false, 1},
		{"truncation not retried", []MockResponse{{Err: &ErrMaxTokensExceeded{}}, ok}, 3, true, 1},
		{"invalid output retried once", []MockResponse{invalid, invalid, ok}, 3, true, 2},
		{"rate limit honours retry-after", []MockResponse{{Err: &ErrRateLimit{RetryAfter: time.Millisecond}}, ok}, 3, false, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := NewMockProvider(tt.responses...)
			p := WithRetry(mock, fastRetry(tt.attempts))

			_, err := p.Generate(context.Background(), Request{})
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantCalls, mock.CallCount())
		})
	}
}

func TestRetry_StopsOnCancelledContext(t *testing.T) {
	mock := NewMockProvider(unavailable(), unavailable(), MockResponse{Content: json.RawMessage(`{}`)})
	p := WithRetry(mock, RetryConfig{MaxAttempts: 3, InitialWait: time.Hour, MaxWait: time.Hour, Multiplier: 1})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Generate(ctx, Request{})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, mock.CallCount())
	assert.Equal(t, "mock", p.ModelID())
}

type recordingRepo struct {
	mu     sync.Mutex
	events []store.LLMRequestEventData
	err    error
}

func (r *recordingRepo) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, data)
	return r.err
}

func TestLogging_RecordsSuccess(t *testing.T) {
	repo := &recordingRepo{}
	mock := NewMockProvider(MockResponse{
		Content: json.RawMessage(`{"enhancedSentence":"a","analysis":"b"}`),
		Usage:   Usage{InputTokens: 42, OutputTokens: 7},
	})
	p := WithLogging(mock, "openrouter", repo)

	ctx := WithPurpose(context.Background(), "sentence-analysis")
	_, err := p.Generate(ctx, Request{
		System:   "You are an expert IELTS tutor.",
		Messages: []Message{{Role: RoleUser, Content: "Word: visa"}},
		Schema:   feedbackSchema(),
	})
	require.NoError(t, err)

	require.Len(t, repo.events, 1)
	ev := repo.events[0]
	assert.Equal(t, "openrouter", ev.Provider)
	assert.Equal(t, "mock", ev.Model)
	assert.Equal(t, "sentence-analysis", ev.Purpose)
	assert.Equal(t, 42, ev.InputTokens)
	assert.True(t, ev.Success)
	assert.Contains(t, ev.RequestBody, "[system]\nYou are an expert IELTS tutor.")
	assert.Contains(t, ev.RequestBody, "[user]\nWord: visa")
	assert.Contains(t, ev.RequestBody, "[schema: test-feedback]")
	assert.JSONEq(t, `{"enhancedSentence":"a","analysis":"b"}`, ev.ResponseBody)
}

func TestLogging_RecordsFailureAndIgnoresRepoErrors(t *testing.T) {
	repo := &recordingRepo{err: errors.New("disk full")}
	p := WithLogging(NewMockProvider(unavailable()), "openai", repo)

	_, err := p.Generate(context.Background(), Request{})
	var un *ErrProviderUnavailable
	require.ErrorAs(t, err, &un, "provider error passes through untouched")

	require.Len(t, repo.events, 1)
	assert.False(t, repo.events[0].Success)
	assert.Contains(t, repo.events[0].ErrorMessage, "connection refused")
	assert.Equal(t, "unknown", repo.events[0].Purpose)
}

func TestLogging_NilRepo(t *testing.T) {
	p := WithLogging(NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)}), "mock", nil)
	_, err := p.Generate(context.Background(), Request{})
	assert.NoError(t, err)
}
