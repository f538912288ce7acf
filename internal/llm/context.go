package llm

import "context"

type purposeKey struct{}

// WithPurpose tags a context with the reason for an upcoming generation,
// e.g. "notes" or "questions:easy". The logging decorator records it.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey{}, purpose)
}

// PurposeFrom extracts the generation purpose, or "" if untagged.
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey{}).(string); ok {
		return v
	}
	return ""
}
