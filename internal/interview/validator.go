package interview

import "fmt"

// SetValidator checks a generated question set before it is served.
// Implementations should be stateless and safe for concurrent use.
type SetValidator interface {
	// Name returns a short identifier for error messages and logging.
	Name() string

	// Validate returns nil if the set passes, or a ValidationError.
	Validate(qs []Question) *ValidationError
}

// ValidationError describes why a question set failed validation.
type ValidationError struct {
	Validator string
	Message   string
	Retryable bool
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}

// StructuralValidator enforces the fixed session shape: five questions
// with the three MCQ leading and the two CODE trailing, unique IDs,
// non-empty prompts, and MCQ options that actually contain the correct
// answer.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(qs []Question) *ValidationError {
	fail := func(format string, args ...any) *ValidationError {
		return &ValidationError{Validator: v.Name(), Message: fmt.Sprintf(format, args...), Retryable: true}
	}

	if len(qs) != QuestionsPerSession {
		return fail("got %d questions, want %d", len(qs), QuestionsPerSession)
	}

	seen := make(map[int]bool, len(qs))
	for i, q := range qs {
		if seen[q.ID] {
			return fail("duplicate question ID %d", q.ID)
		}
		seen[q.ID] = true

		if q.Prompt == "" {
			return fail("question %d has an empty prompt", q.ID)
		}

		// The session order is fixed: MCQ warm-up first, CODE last.
		want := KindMCQ
		if i >= MCQPerSession {
			want = KindCode
		}
		if q.Kind != want {
			return fail("question at position %d is %q, want %q", i+1, q.Kind, want)
		}

		switch q.Kind {
		case KindMCQ:
			if len(q.Options) != MCQOptionCount {
				return fail("question %d has %d options, want %d", q.ID, len(q.Options), MCQOptionCount)
			}
			found := false
			for _, opt := range q.Options {
				if opt == q.CorrectAnswer {
					found = true
					break
				}
			}
			if !found {
				return fail("question %d correct answer not among options", q.ID)
			}
		case KindCode:
			if len(q.Options) != 0 {
				return fail("question %d is CODE but carries options", q.ID)
			}
		}
	}

	return nil
}
