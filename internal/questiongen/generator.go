package questiongen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ieltsvocab/vocabquiz/internal/config"
	"github.com/ieltsvocab/vocabquiz/internal/llm"
	"github.com/ieltsvocab/vocabquiz/internal/vocab"
	"github.com/sirupsen/logrus"
)

// Generator produces vocabulary question sets.
type Generator interface {
	// Generate never fails: any model, parse or validation failure yields
	// the fallback set with Result.Fallback set.
	Generate(ctx context.Context, req Request) *Result
}

// errNoProvider marks results produced without a configured model.
var errNoProvider = errors.New("no LLM provider configured")

// LLMGenerator implements Generator using an LLM provider, falling back to
// locally built questions.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
	sampler  *vocab.Sampler
}

// New creates an LLMGenerator. A nil provider runs fallback-only; a nil
// sampler gets a time-seeded one.
func New(provider llm.Provider, cfg Config, sampler *vocab.Sampler) *LLMGenerator {
	if sampler == nil {
		sampler = vocab.NewSampler(nil)
	}
	return &LLMGenerator{provider: provider, config: cfg, sampler: sampler}
}

// Sampler returns the generator's random source, shared with callers that
// build fallback sets themselves.
func (g *LLMGenerator) Sampler() *vocab.Sampler {
	return g.sampler
}

// questionSetOutput is the raw model response before validation.
type questionSetOutput struct {
	Questions []Question `json:"questions"`
}

// Generate produces a question set for req.
func (g *LLMGenerator) Generate(ctx context.Context, req Request) *Result {
	req.Category = vocab.NormalizeCategory(req.Category)
	if req.Mode.IsManual() {
		req.Words = CleanWords(req.Words)
		if len(req.Words) == 0 {
			return &Result{Questions: []Question{}}
		}
	}

	questions, err := g.generate(ctx, req)
	if err != nil {
		config.WithContext(ctx).WithError(err).WithFields(logrus.Fields{
			"mode":     req.Mode,
			"category": req.Category,
		}).Warn("question generation fell back to local set")
		return &Result{Questions: Fallback(g.sampler, req), Fallback: true, Cause: err}
	}
	return &Result{Questions: questions}
}

func (g *LLMGenerator) generate(ctx context.Context, req Request) ([]Question, error) {
	if g.provider == nil {
		return nil, errNoProvider
	}

	ctx = llm.WithPurpose(ctx, llm.PurposeQuestionGen)
	if g.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.config.Timeout)
		defer cancel()
	}

	system, user, want := aiSystemPrompt, "", 0
	if req.Mode.IsManual() {
		system = manualSystemPrompt
		user = buildManualMessage(req.Words, req.Category)
		want = len(req.Words)
	} else {
		settings := req.EffectiveSettings()
		user = buildAIMessage(req.Category, settings)
		want = settings.QuestionLimit
	}

	resp, err := g.provider.Generate(ctx, llm.Request{
		System:      system,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: user}},
		Schema:      QuestionSetSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	var raw questionSetOutput
	if err := json.Unmarshal(llm.ExtractJSON(resp.Content), &raw); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}
	if len(raw.Questions) == 0 {
		return nil, errors.New("LLM returned no questions")
	}
	if len(raw.Questions) > want {
		raw.Questions = raw.Questions[:want]
	}

	for i := range raw.Questions {
		q := &raw.Questions[i]
		for _, v := range g.config.Validators {
			if verr := v.Validate(q, req); verr != nil {
				return nil, verr
			}
		}
		q.ID = i + 1
	}
	return raw.Questions, nil
}
