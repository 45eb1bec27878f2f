package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/ieltsvocab/vocabquiz/internal/store"
)

// ErrNotConfigured is returned by NewProviderFromEnv when no provider
// settings or API keys are present. Callers run fallback-only.
var ErrNotConfigured = errors.New("no LLM provider configured")

// NewProvider creates a Provider from configuration, wrapped with logging
// middleware and, when cfg.Retry.MaxAttempts > 1, retry middleware.
// eventRepo may be nil, in which case calls are only logged, not recorded.
func NewProvider(ctx context.Context, cfg Config, eventRepo store.EventRecorder) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	// caller → retry → logging → base
	p := WithLogging(base, cfg.Provider, eventRepo)
	if cfg.Retry.MaxAttempts > 1 {
		p = WithRetry(p, cfg.Retry)
	}
	return p, nil
}

// NewProviderFromEnv resolves configuration from the environment and builds
// the provider. It also returns the resolved Config so callers can apply
// its Timeout.
func NewProviderFromEnv(ctx context.Context, eventRepo store.EventRecorder) (Provider, Config, error) {
	cfg, ok := ResolveConfig()
	if !ok {
		return nil, Config{}, ErrNotConfigured
	}
	p, err := NewProvider(ctx, cfg, eventRepo)
	if err != nil {
		return nil, cfg, err
	}
	return p, cfg, nil
}
