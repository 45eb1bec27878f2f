package questiongen

import "fmt"

// Validator checks a generated question before it reaches a learner.
// Implementations should be stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier for error messages and logging.
	Name() string

	// Validate returns nil if q passes.
	Validate(q *Question, req Request) *ValidationError
}

// ValidationError describes why a question failed validation.
type ValidationError struct {
	Validator string // Name of the validator that failed
	Word      string // Word of the offending question
	Message   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: question for %q: %s", e.Validator, e.Word, e.Message)
}
