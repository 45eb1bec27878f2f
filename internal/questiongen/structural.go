package questiongen

import "strings"

// StructuralValidator checks that required fields are present, the option
// set is well formed and the correct answer is one of the options.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(q *Question, _ Request) *ValidationError {
	fail := func(msg string) *ValidationError {
		return &ValidationError{Validator: v.Name(), Word: q.Word, Message: msg}
	}

	if strings.TrimSpace(q.Word) == "" {
		return fail("word is empty")
	}
	if strings.TrimSpace(q.Question) == "" {
		return fail("question is empty")
	}
	if len(q.Question) > 500 {
		return fail("question exceeds 500 characters")
	}
	if len(q.Explanation) > 1000 {
		return fail("explanation exceeds 1000 characters")
	}
	if len(q.Options) != 4 {
		return fail("expected exactly 4 options")
	}

	seen := make(map[string]bool, len(q.Options))
	for _, o := range q.Options {
		if strings.TrimSpace(o) == "" {
			return fail("option is empty")
		}
		if seen[o] {
			return fail("duplicate option " + o)
		}
		seen[o] = true
	}

	if !seen[q.CorrectAnswer] {
		return fail("correctAnswer is not one of the options")
	}
	return nil
}
