package llm

import "context"

type contextKey string

const purposeKey contextKey = "llm_purpose"

// Purposes label model calls in the audit log and `vocabquiz llm stats`.
const (
	PurposeQuestionGen      = "question-gen"
	PurposeSentenceAnalysis = "sentence-analysis"
	PurposeUnknown          = "unknown"
)

// WithPurpose tags ctx so the logging middleware can record why a model
// call was made.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey, purpose)
}

// PurposeFrom returns the purpose tag on ctx, or PurposeUnknown.
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey).(string); ok && v != "" {
		return v
	}
	return PurposeUnknown
}
