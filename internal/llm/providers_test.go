package llm

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func feedbackSchema() *Schema {
	return &Schema{
		Name:        "test-feedback",
		Description: "Sentence feedback",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"enhancedSentence": map[string]any{"type": "string"},
				"analysis":         map[string]any{"type": "string"},
			},
			"required":             []any{"enhancedSentence", "analysis"},
			"additionalProperties": false,
		},
	}
}

func feedbackRequest(schema *Schema) Request {
	return Request{
		System:      "You are an expert IELTS tutor.",
		Messages:    []Message{{Role: RoleUser, Content: `Word: "itinerary". Sentence: "My itinerary is full."`}},
		Schema:      schema,
		MaxTokens:   500,
		Temperature: 0.7,
	}
}

// chatCompletion writes an OpenAI-style completion with the given content.
func chatCompletion(w http.ResponseWriter, model, content, finish string) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"id":      "chatcmpl-test",
		"object":  "chat.completion",
		"created": 1700000000,
		"model":   model,
		"choices": []map[string]any{{
			"index":         0,
			"message":       map[string]any{"role": "assistant", "content": content},
			"finish_reason": finish,
		}},
		"usage": map[string]any{"prompt_tokens": 120, "completion_tokens": 48, "total_tokens": 168},
	})
}

func apiError(w http.ResponseWriter, status int, kind string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]any{"type": kind, "message": kind},
	})
}

func newOpenAITestProvider(t *testing.T, plainJSON bool, handler http.HandlerFunc) *OpenAIProvider {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := openai.DefaultConfig("test-key")
	cfg.BaseURL = srv.URL + "/v1"
	return &OpenAIProvider{
		client:    openai.NewClientWithConfig(cfg),
		model:     "gpt-4o-mini",
		plainJSON: plainJSON,
	}
}

func TestOpenAIProvider_StructuredOutput(t *testing.T) {
	var body map[string]any
	p := newOpenAITestProvider(t, false, func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &body)
		chatCompletion(w, "gpt-4o-mini", `{"enhancedSentence":"My itinerary is packed.","analysis":"Good."}`, "stop")
	})

	resp, err := p.Generate(context.Background(), feedbackRequest(feedbackSchema()))
	require.NoError(t, err)
	assert.Equal(t, 120, resp.Usage.InputTokens)
	assert.Equal(t, 48, resp.Usage.OutputTokens)
	assert.Equal(t, "end", resp.StopReason)
	assert.JSONEq(t, `{"enhancedSentence":"My itinerary is packed.","analysis":"Good."}`, string(resp.Content))

	format, ok := body["response_format"].(map[string]any)
	require.True(t, ok, "expected response_format in request")
	assert.Equal(t, "json_schema", format["type"])
}

func TestOpenAIProvider_PlainJSONStripsFence(t *testing.T) {
	var body map[string]any
	p := newOpenAITestProvider(t, true, func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &body)
		chatCompletion(w, "gpt-3.5-turbo", "```json\n{\"enhancedSentence\":\"x\",\"analysis\":\"y\"}\n```", "stop")
	})

	resp, err := p.Generate(context.Background(), feedbackRequest(feedbackSchema()))
	require.NoError(t, err)
	assert.JSONEq(t, `{"enhancedSentence":"x","analysis":"y"}`, string(resp.Content))
	assert.NotContains(t, body, "response_format")
}

func TestOpenAIProvider_OffSchemaReply(t *testing.T) {
	p := newOpenAITestProvider(t, true, func(w http.ResponseWriter, r *http.Request) {
		chatCompletion(w, "gpt-3.5-turbo", "I think your sentence is great!", "stop")
	})

	_, err := p.Generate(context.Background(), feedbackRequest(feedbackSchema()))
	var inv *ErrInvalidResponse
	require.ErrorAs(t, err, &inv)
	assert.True(t, IsMalformedOutput(err))
}

func TestOpenAIProvider_TruncatedReply(t *testing.T) {
	p := newOpenAITestProvider(t, true, func(w http.ResponseWriter, r *http.Request) {
		chatCompletion(w, "gpt-3.5-turbo", `{"enhancedSentence":"My itin`, "length")
	})

	_, err := p.Generate(context.Background(), feedbackRequest(feedbackSchema()))
	var maxTok *ErrMaxTokensExceeded
	require.ErrorAs(t, err, &maxTok)
	assert.True(t, IsMalformedOutput(err))
}

func TestOpenAIProvider_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		check  func(t *testing.T, err error)
	}{
		{"rate limit", http.StatusTooManyRequests, func(t *testing.T, err error) {
			var rl *ErrRateLimit
			assert.ErrorAs(t, err, &rl)
		}},
		{"server error", http.StatusBadGateway, func(t *testing.T, err error) {
			var un *ErrProviderUnavailable
			assert.ErrorAs(t, err, &un)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newOpenAITestProvider(t, false, func(w http.ResponseWriter, r *http.Request) {
				apiError(w, tt.status, "upstream")
			})
			_, err := p.Generate(context.Background(), feedbackRequest(nil))
			require.Error(t, err)
			assert.False(t, IsMalformedOutput(err))
			tt.check(t, err)
		})
	}
}

func TestNewOpenAIProvider(t *testing.T) {
	_, err := NewOpenAIProvider(OpenAIConfig{Model: "gpt-4o"})
	assert.Error(t, err, "missing key")

	p, err := NewOpenAIProvider(OpenAIConfig{APIKey: "k", Model: "gpt-4o"})
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o", p.ModelID())
	assert.False(t, p.plainJSON)
}

func TestNewOpenRouterProvider(t *testing.T) {
	_, err := NewOpenRouterProvider(OpenRouterConfig{Model: "gpt-3.5-turbo"})
	assert.Error(t, err, "missing key")

	p, err := NewOpenRouterProvider(OpenRouterConfig{APIKey: "sk-or-test"})
	require.NoError(t, err)
	assert.Equal(t, "gpt-3.5-turbo", p.ModelID(), "default model")
	assert.True(t, p.plainJSON)

	p, err = NewOpenRouterProvider(OpenRouterConfig{APIKey: "sk-or-test", Model: "anthropic/claude-3-haiku"})
	require.NoError(t, err)
	assert.Equal(t, "anthropic/claude-3-haiku", p.ModelID(), "vendor ids pass through")
}

func TestOpenRouterProvider_Generate(t *testing.T) {
	var path string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		chatCompletion(w, "openai/gpt-3.5-turbo", `Sure! {"enhancedSentence":"a","analysis":"b"}`, "stop")
	}))
	defer srv.Close()

	p, err := NewOpenRouterProvider(OpenRouterConfig{APIKey: "k", BaseURL: srv.URL + "/api/v1"})
	require.NoError(t, err)

	resp, err := p.Generate(context.Background(), feedbackRequest(feedbackSchema()))
	require.NoError(t, err)
	assert.Equal(t, "/api/v1/chat/completions", path)
	assert.Equal(t, "openai/gpt-3.5-turbo", resp.Model)
	assert.JSONEq(t, `{"enhancedSentence":"a","analysis":"b"}`, string(resp.Content))
}

func newAnthropicTestProvider(t *testing.T, handler http.HandlerFunc) *AnthropicProvider {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := anthropic.NewClient(
		option.WithAPIKey("test-key"),
		option.WithBaseURL(srv.URL),
		option.WithMaxRetries(0),
	)
	return &AnthropicProvider{client: &client, model: "claude-haiku-4-5-20251001"}
}

func TestAnthropicProvider_Generate(t *testing.T) {
	p := newAnthropicTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":   "msg_test",
			"type": "message",
			"role": "assistant",
			"content": []map[string]any{
				{"type": "text", "text": `{"enhancedSentence":"Our itinerary includes three cities.","analysis":"Clear."}`},
			},
			"model":       "claude-haiku-4-5-20251001",
			"stop_reason": "end_turn",
			"usage":       map[string]any{"input_tokens": 80, "output_tokens": 20},
		})
	})

	resp, err := p.Generate(context.Background(), feedbackRequest(feedbackSchema()))
	require.NoError(t, err)
	assert.Equal(t, 80, resp.Usage.InputTokens)
	assert.Equal(t, 100, resp.Usage.TotalTokens)
	assert.Equal(t, "end", resp.StopReason)
}

func TestAnthropicProvider_ErrorMapping(t *testing.T) {
	p := newAnthropicTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		apiError(w, http.StatusTooManyRequests, "rate_limit_error")
	})
	_, err := p.Generate(context.Background(), feedbackRequest(nil))
	var rl *ErrRateLimit
	assert.ErrorAs(t, err, &rl)

	p = newAnthropicTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		apiError(w, http.StatusServiceUnavailable, "overloaded_error")
	})
	_, err = p.Generate(context.Background(), feedbackRequest(nil))
	var un *ErrProviderUnavailable
	assert.ErrorAs(t, err, &un)
}

func TestResolveModel(t *testing.T) {
	tests := []struct {
		models map[string]string
		in     string
		want   string
	}{
		{anthropicModels, "claude-haiku", "claude-haiku-4-5-20251001"},
		{anthropicModels, "claude-sonnet", "claude-sonnet-4-20250514"},
		{geminiModels, "gemini-flash", "gemini-2.0-flash"},
		{geminiModels, "gemini-2.5-pro", "gemini-2.5-pro"},
		{openaiModels, "gpt-4o-mini", "gpt-4o-mini"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, resolveModel(tt.in, tt.models), tt.in)
	}
}

func TestBuildGeminiSchema(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"word":    map[string]any{"type": "string"},
						"id":      map[string]any{"type": "integer"},
						"note":    map[string]any{"type": []any{"string", "null"}},
						"options": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
					},
					"required": []any{"word", "options"},
				},
			},
		},
		"required": []any{"questions"},
	}

	s := buildGeminiSchema(def)
	require.NotNil(t, s.Properties["questions"])
	assert.EqualValues(t, "OBJECT", s.Type)
	assert.Equal(t, []string{"questions"}, s.Required)

	items := s.Properties["questions"].Items
	require.NotNil(t, items)
	assert.EqualValues(t, "ARRAY", s.Properties["questions"].Type)
	assert.EqualValues(t, "INTEGER", items.Properties["id"].Type)
	assert.Nil(t, items.Properties["id"].Nullable)
	assert.EqualValues(t, "STRING", items.Properties["note"].Type)
	require.NotNil(t, items.Properties["note"].Nullable)
	assert.True(t, *items.Properties["note"].Nullable)
	assert.EqualValues(t, "STRING", items.Properties["options"].Items.Type)
	assert.Len(t, items.Required, 2)
}

func TestLookupCost(t *testing.T) {
	c := LookupCost("gpt-3.5-turbo")
	require.NotNil(t, c)
	assert.InDelta(t, 2.0, c.Cost(1_000_000, 1_000_000), 1e-9)

	assert.NotNil(t, LookupCost("openai/gpt-4o-mini"), "vendor prefix is ignored")
	assert.Nil(t, LookupCost("some/unknown-model"))
}
