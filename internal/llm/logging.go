package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/ieltsvocab/vocabquiz/internal/config"
	"github.com/ieltsvocab/vocabquiz/internal/store"
	"github.com/sirupsen/logrus"
)

// LoggingProvider is a decorator that logs every LLM request and, when a
// repository is attached, appends it to the audit log.
type LoggingProvider struct {
	inner     Provider
	name      string
	eventRepo store.EventRecorder
}

// WithLogging wraps a Provider with request logging. repo may be nil.
func WithLogging(p Provider, providerName string, repo store.EventRecorder) Provider {
	return &LoggingProvider{inner: p, name: providerName, eventRepo: repo}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	purpose := PurposeFrom(ctx)

	resp, err := l.inner.Generate(ctx, req)

	latencyMs := time.Since(start).Milliseconds()

	data := store.LLMRequestEventData{
		Provider:    l.name,
		Model:       l.inner.ModelID(),
		Purpose:     purpose,
		LatencyMs:   latencyMs,
		Success:     err == nil,
		RequestBody: serializeRequest(req),
	}

	if resp != nil {
		data.InputTokens = resp.Usage.InputTokens
		data.OutputTokens = resp.Usage.OutputTokens
		if resp.Model != "" {
			data.Model = resp.Model
		}
		data.ResponseBody = string(resp.Content)
	}

	entry := config.WithContext(ctx).WithFields(logrus.Fields{
		"provider":   data.Provider,
		"model":      data.Model,
		"purpose":    purpose,
		"latency_ms": latencyMs,
	})
	if err != nil {
		data.ErrorMessage = err.Error()
		entry.WithError(err).Warn("llm request failed")
	} else {
		entry.WithFields(logrus.Fields{
			"input_tokens":  data.InputTokens,
			"output_tokens": data.OutputTokens,
		}).Debug("llm request completed")
	}

	if l.eventRepo != nil {
		// Audit failures never fail the request.
		if logErr := l.eventRepo.AppendLLMRequest(ctx, data); logErr != nil {
			config.WithContext(ctx).WithError(logErr).Warn("failed to record llm request event")
		}
	}

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}

// serializeRequest builds a readable representation of the LLM request.
func serializeRequest(req Request) string {
	var b strings.Builder

	if req.System != "" {
		b.WriteString("[system]\n")
		b.WriteString(req.System)
		b.WriteString("\n\n")
	}

	for _, m := range req.Messages {
		fmt.Fprintf(&b, "[%s]\n", m.Role)
		b.WriteString(m.Content)
		b.WriteString("\n\n")
	}

	if req.Schema != nil {
		if schemaDef, err := json.Marshal(req.Schema.Definition); err == nil {
			fmt.Fprintf(&b, "[schema: %s]\n", req.Schema.Name)
			b.Write(schemaDef)
			b.WriteString("\n")
		}
	}

	return b.String()
}
