package questiongen

import "time"

// Config controls the behavior of the LLMGenerator.
type Config struct {
	// Validators run in order on every generated question; the first
	// failure discards the whole set in favour of the fallback.
	Validators []Validator

	// MaxTokens is the token budget for the model response.
	MaxTokens int

	// Temperature controls output randomness (0.0-1.0).
	Temperature float64

	// Timeout bounds the model call so a stalled provider still ends in the
	// fallback. Zero leaves it to the caller's context.
	Timeout time.Duration
}

// DefaultConfig returns a Config with the structural validator and the
// token budget a ten-question set needs.
func DefaultConfig() Config {
	return Config{
		Validators: []Validator{
			&StructuralValidator{},
		},
		MaxTokens:   2000,
		Temperature: 0.7,
		Timeout:     30 * time.Second,
	}
}
