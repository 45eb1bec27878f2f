// Package client is how the terminal quiz talks to question generation and
// sentence analysis, either over HTTP or in process.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ieltsvocab/vocabquiz/internal/questiongen"
	"github.com/ieltsvocab/vocabquiz/internal/sentence"
)

// Backend produces question sets and sentence feedback. Errors are
// returned as-is; Client decides how to degrade.
type Backend interface {
	GenerateQuestions(ctx context.Context, req questiongen.Request) (*questiongen.Result, error)
	AnalyzeSentence(ctx context.Context, req sentence.Request) (*sentence.Analysis, error)
}

// Must match server.FallbackHeader. Duplicated to keep the client free of
// server imports.
const fallbackHeader = "X-Quiz-Fallback"

// maxResponseBytes caps how much of a response body is read.
const maxResponseBytes = 1 << 20

// HTTPBackend calls a running `vocabquiz serve`.
type HTTPBackend struct {
	baseURL string
	client  *http.Client
}

// NewHTTPBackend creates an HTTPBackend. A nil client gets one with a
// 60 second timeout.
func NewHTTPBackend(baseURL string, client *http.Client) *HTTPBackend {
	if client == nil {
		client = &http.Client{Timeout: 60 * time.Second}
	}
	return &HTTPBackend{baseURL: strings.TrimRight(baseURL, "/"), client: client}
}

type questionsPayload struct {
	Questions []questiongen.Question `json:"questions"`
}

func (b *HTTPBackend) GenerateQuestions(ctx context.Context, req questiongen.Request) (*questiongen.Result, error) {
	var out questionsPayload
	fallback, err := b.post(ctx, "/generate-questions", req, &out)
	if err != nil {
		return nil, fmt.Errorf("generate questions: %w", err)
	}
	if out.Questions == nil {
		return nil, fmt.Errorf("generate questions: response has no questions field")
	}
	return &questiongen.Result{Questions: out.Questions, Fallback: fallback}, nil
}

func (b *HTTPBackend) AnalyzeSentence(ctx context.Context, req sentence.Request) (*sentence.Analysis, error) {
	var out sentence.Analysis
	fallback, err := b.post(ctx, "/analyze-sentence", req, &out)
	if err != nil {
		return nil, fmt.Errorf("analyze sentence: %w", err)
	}
	out.Fallback = fallback
	return &out, nil
}

// post sends body as JSON and decodes a 200 response into out. It reports
// whether the server flagged the response as a fallback.
func (b *HTTPBackend) post(ctx context.Context, path string, body, out any) (bool, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return false, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return false, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := b.client.Do(req)
	if err != nil {
		return false, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("HTTP %d for %s", resp.StatusCode, path)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, fmt.Errorf("decode %s response: %w", path, err)
	}
	return resp.Header.Get(fallbackHeader) == "true", nil
}

// Analyzer is the in-process sentence analyzer.
type Analyzer interface {
	Analyze(ctx context.Context, req sentence.Request) *sentence.Analysis
}

// LocalBackend runs generation and analysis in process.
type LocalBackend struct {
	generator questiongen.Generator
	analyzer  Analyzer
}

// NewLocalBackend creates a LocalBackend.
func NewLocalBackend(gen questiongen.Generator, analyzer Analyzer) *LocalBackend {
	return &LocalBackend{generator: gen, analyzer: analyzer}
}

func (b *LocalBackend) GenerateQuestions(ctx context.Context, req questiongen.Request) (*questiongen.Result, error) {
	return b.generator.Generate(ctx, req), nil
}

func (b *LocalBackend) AnalyzeSentence(ctx context.Context, req sentence.Request) (*sentence.Analysis, error) {
	return b.analyzer.Analyze(ctx, req), nil
}
