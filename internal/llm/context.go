package llm

import "context"

// Purpose labels what a request is generated for. It travels on the
// context so middleware (logging, token budgeting) can see it without
// every call site threading an extra argument.
type Purpose string

const (
	// PurposeInterviewGen marks mock-interview question set generation.
	PurposeInterviewGen Purpose = "interview-gen"

	// PurposeCareerAdvice marks roadmap mentor advice generation.
	PurposeCareerAdvice Purpose = "career-advice"

	// PurposeUnknown is reported for requests that never declared one.
	PurposeUnknown Purpose = "unknown"
)

type purposeKey struct{}

// WithPurpose attaches a purpose to the context.
func WithPurpose(ctx context.Context, p Purpose) context.Context {
	return context.WithValue(ctx, purposeKey{}, p)
}

// PurposeFrom extracts the purpose from the context, PurposeUnknown if
// none was attached.
func PurposeFrom(ctx context.Context) Purpose {
	if p, ok := ctx.Value(purposeKey{}).(Purpose); ok {
		return p
	}
	return PurposeUnknown
}

// budgetFor is the output token budget applied when a request does not
// set MaxTokens. Question sets are a page of JSON; advice is a short
// paragraph of prose.
func budgetFor(p Purpose) int {
	switch p {
	case PurposeInterviewGen:
		return 2048
	case PurposeCareerAdvice:
		return 600
	default:
		return 1024
	}
}
