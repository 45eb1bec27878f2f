package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/ieltsvocab/vocabquiz/internal/config"
	"github.com/ieltsvocab/vocabquiz/internal/questiongen"
	"github.com/ieltsvocab/vocabquiz/internal/sentence"
	"github.com/ieltsvocab/vocabquiz/internal/vocab"
)

// Client wraps a Backend so the quiz can always start: question sets that
// cannot be fetched or fail validation are replaced by a local fallback.
type Client struct {
	backend   Backend
	sampler   *vocab.Sampler
	validator questiongen.Validator
}

// New creates a Client. A nil sampler gets a time-seeded one.
func New(backend Backend, sampler *vocab.Sampler) *Client {
	if sampler == nil {
		sampler = vocab.NewSampler(nil)
	}
	return &Client{backend: backend, sampler: sampler, validator: &questiongen.StructuralValidator{}}
}

// GenerateQuestions never fails.
func (c *Client) GenerateQuestions(ctx context.Context, req questiongen.Request) *questiongen.Result {
	res, err := c.backend.GenerateQuestions(ctx, req)
	if err == nil {
		err = c.check(res, req)
	}
	if err == nil {
		return res
	}

	config.WithContext(ctx).WithError(err).Warn("using local question fallback")
	return &questiongen.Result{
		Questions: questiongen.Fallback(c.sampler, req),
		Fallback:  true,
		Cause:     err,
	}
}

func (c *Client) check(res *questiongen.Result, req questiongen.Request) error {
	if res == nil {
		return errors.New("backend returned no result")
	}
	for i := range res.Questions {
		if verr := c.validator.Validate(&res.Questions[i], req); verr != nil {
			return fmt.Errorf("question %d: %w", i+1, verr)
		}
	}
	return nil
}

// AnalyzeSentence returns feedback for a sentence. On failure the analysis
// has empty fields and the sentence is still recorded without enhancement.
func (c *Client) AnalyzeSentence(ctx context.Context, req sentence.Request) sentence.Analysis {
	res, err := c.backend.AnalyzeSentence(ctx, req)
	if err != nil || res == nil {
		config.WithContext(ctx).WithError(err).WithField("word", req.Word).Warn("sentence analysis unavailable")
		return sentence.Analysis{}
	}
	return *res
}
