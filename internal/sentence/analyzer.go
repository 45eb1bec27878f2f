// Package sentence scores a learner's example sentence with a language
// model and degrades to canned feedback when the model cannot help.
package sentence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ieltsvocab/vocabquiz/internal/config"
	"github.com/ieltsvocab/vocabquiz/internal/llm"
	"github.com/sirupsen/logrus"
)

// Request is the body of an analyze-sentence call.
type Request struct {
	Word         string `json:"word"`
	UserSentence string `json:"userSentence"`
}

// Analysis is the model's feedback on a sentence.
type Analysis struct {
	EnhancedSentence string `json:"enhancedSentence"`
	Analysis         string `json:"analysis"`

	// Fallback is set when canned feedback replaced the model's.
	Fallback bool `json:"-"`
}

const (
	genericEnhanced = "Here's an improved version with better grammar and vocabulary."
	genericAnalysis = "Your sentence shows good effort! Keep practicing to improve your English skills."

	unparsedAnalysis = "Your sentence shows good effort! Consider using more complex sentence structures and IELTS-level vocabulary."
)

// UnparsedFeedback is returned when the model answered with something that
// is not the expected JSON.
func UnparsedFeedback(word string) *Analysis {
	return &Analysis{
		EnhancedSentence: fmt.Sprintf(`Here's an improved version using "%s": "I would like to demonstrate the proper usage of this word in a sentence."`, word),
		Analysis:         unparsedAnalysis,
		Fallback:         true,
	}
}

// GenericFeedback is returned for every other failure.
func GenericFeedback() *Analysis {
	return &Analysis{
		EnhancedSentence: genericEnhanced,
		Analysis:         genericAnalysis,
		Fallback:         true,
	}
}

// Config controls the Analyzer's model calls.
type Config struct {
	MaxTokens   int
	Temperature float64
	Timeout     time.Duration
}

// DefaultConfig returns the budget for a one-sentence rewrite.
func DefaultConfig() Config {
	return Config{MaxTokens: 500, Temperature: 0.7, Timeout: 30 * time.Second}
}

// Analyzer asks the model to improve and critique a sentence.
type Analyzer struct {
	provider llm.Provider
	config   Config
}

// NewAnalyzer creates an Analyzer. A nil provider always returns the
// generic feedback.
func NewAnalyzer(provider llm.Provider, cfg Config) *Analyzer {
	return &Analyzer{provider: provider, config: cfg}
}

// Analyze never fails; model problems are mapped to canned feedback.
func (a *Analyzer) Analyze(ctx context.Context, req Request) *Analysis {
	out, err := a.analyze(ctx, req)
	if err == nil {
		return out
	}

	log := config.WithContext(ctx).WithError(err).WithField("word", req.Word)
	if llm.IsMalformedOutput(err) {
		log.Warn("sentence analysis output unusable, using word feedback")
		return UnparsedFeedback(req.Word)
	}
	log.WithFields(logrus.Fields{"sentence_len": len(req.UserSentence)}).Warn("sentence analysis failed, using generic feedback")
	return GenericFeedback()
}

var errNoProvider = errors.New("no LLM provider configured")

func (a *Analyzer) analyze(ctx context.Context, req Request) (*Analysis, error) {
	if a.provider == nil {
		return nil, errNoProvider
	}

	ctx = llm.WithPurpose(ctx, llm.PurposeSentenceAnalysis)
	if a.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.config.Timeout)
		defer cancel()
	}

	resp, err := a.provider.Generate(ctx, llm.Request{
		System:      systemPrompt,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: buildUserMessage(req)}},
		Schema:      FeedbackSchema,
		MaxTokens:   a.config.MaxTokens,
		Temperature: a.config.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("LLM analysis failed: %w", err)
	}

	content := llm.ExtractJSON(resp.Content)
	var out Analysis
	if err := json.Unmarshal(content, &out); err != nil {
		return nil, &llm.ErrInvalidResponse{Content: content, Err: fmt.Errorf("parse analysis: %w", err)}
	}
	if strings.TrimSpace(out.EnhancedSentence) == "" && strings.TrimSpace(out.Analysis) == "" {
		return nil, &llm.ErrInvalidResponse{Content: content, Err: errors.New("analysis has no content")}
	}
	return &out, nil
}
