package roadmap

import (
	"errors"
	"fmt"

	"github.com/dev-hari-haran/Way-to-Industry/internal/catalog"
)

// ErrInvalidInput is returned when an operation is given input it cannot
// act on (unknown topic, out-of-range rating, wrong step). The flow state
// is left untouched.
var ErrInvalidInput = errors.New("invalid input")

// Step is the flow's position in the three-step roadmap wizard.
type Step int

const (
	StepSelect Step = iota // Choosing a role from the catalog
	StepAssess             // Rating current skill per topic
	StepView               // Viewing the generated roadmap
)

// MinRating and MaxRating bound the self-assessment star scale.
const (
	MinRating = 1
	MaxRating = 5
)

// CompletionThreshold is the rating at or above which a topic counts as
// already completed when the roadmap is generated.
const CompletionThreshold = 3

// Flow is the roadmap wizard state machine. All mutation goes through the
// named operations; derived views (Readiness, Items, NextRecommended) are
// recomputed on every call and never cached.
type Flow struct {
	step       Step
	role       catalog.Role
	hasRole    bool
	deepLinked bool

	ratings   map[string]int
	context   string
	completed map[string]bool
}

// NewFlow returns a flow at the role-selection step.
func NewFlow() *Flow {
	return &Flow{
		step:      StepSelect,
		ratings:   make(map[string]int),
		completed: make(map[string]bool),
	}
}

// NewFlowWithRole returns a flow that deep-links straight into the
// assessment step for the given role. Backing out of assessment on a
// deep-linked flow exits the flow instead of returning to selection.
func NewFlowWithRole(roleID string) (*Flow, error) {
	role, err := catalog.Get(roleID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	f := NewFlow()
	f.role = role
	f.hasRole = true
	f.deepLinked = true
	f.step = StepAssess
	return f, nil
}

// Step returns the current wizard step.
func (f *Flow) Step() Step { return f.step }

// Role returns the selected role. The second return is false until a
// role has been chosen.
func (f *Flow) Role() (catalog.Role, bool) { return f.role, f.hasRole }

// Select records the chosen role. Valid only at StepSelect.
func (f *Flow) Select(roleID string) error {
	if f.step != StepSelect {
		return fmt.Errorf("%w: select outside selection step", ErrInvalidInput)
	}
	role, err := catalog.Get(roleID)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	f.role = role
	f.hasRole = true
	return nil
}

// Confirm advances from selection to assessment. Requires a selected
// role. Entering assessment always starts a fresh one: any ratings and
// context from an earlier visit are discarded.
func (f *Flow) Confirm() error {
	if f.step != StepSelect {
		return fmt.Errorf("%w: confirm outside selection step", ErrInvalidInput)
	}
	if !f.hasRole {
		return fmt.Errorf("%w: no role selected", ErrInvalidInput)
	}
	f.ratings = make(map[string]int)
	f.context = ""
	f.step = StepAssess
	return nil
}

// Rate records a 1..5 star self-assessment for a topic of the selected
// role. Valid only at StepAssess. Unknown topics and out-of-range values
// are rejected with the state untouched.
func (f *Flow) Rate(topic string, stars int) error {
	if f.step != StepAssess {
		return fmt.Errorf("%w: rate outside assessment step", ErrInvalidInput)
	}
	if stars < MinRating || stars > MaxRating {
		return fmt.Errorf("%w: rating %d out of range", ErrInvalidInput, stars)
	}
	if !f.hasTopic(topic) {
		return fmt.Errorf("%w: unknown topic %q", ErrInvalidInput, topic)
	}
	f.ratings[topic] = stars
	return nil
}

// Rating returns the recorded rating for a topic, if any.
func (f *Flow) Rating(topic string) (int, bool) {
	r, ok := f.ratings[topic]
	return r, ok
}

// SetContext records the free-text "anything else we should know" input
// collected during assessment. It feeds the advisory prompt only.
func (f *Flow) SetContext(text string) { f.context = text }

// ClearContext discards the free-text assessment context.
func (f *Flow) ClearContext() { f.context = "" }

// Context returns the free-text assessment context.
func (f *Flow) Context() string { return f.context }

// Submit generates the roadmap: topics rated at or above the completion
// threshold are marked completed, and the flow advances to StepView.
// Unrated topics count as not completed.
func (f *Flow) Submit() error {
	if f.step != StepAssess {
		return fmt.Errorf("%w: submit outside assessment step", ErrInvalidInput)
	}
	f.completed = make(map[string]bool, len(f.role.Topics))
	for _, t := range f.role.Topics {
		if f.ratings[t] >= CompletionThreshold {
			f.completed[t] = true
		}
	}
	f.step = StepView
	return nil
}

// ToggleTopic flips the completed mark on a roadmap topic. Valid only at
// StepView.
func (f *Flow) ToggleTopic(topic string) error {
	if f.step != StepView {
		return fmt.Errorf("%w: toggle outside roadmap view", ErrInvalidInput)
	}
	if !f.hasTopic(topic) {
		return fmt.Errorf("%w: unknown topic %q", ErrInvalidInput, topic)
	}
	if f.completed[topic] {
		delete(f.completed, topic)
	} else {
		f.completed[topic] = true
	}
	return nil
}

// Completed reports whether a topic is currently marked completed.
func (f *Flow) Completed(topic string) bool { return f.completed[topic] }

// Back steps the wizard backwards. It returns true when the flow is
// exited entirely: from StepSelect, from StepAssess on a deep-linked
// flow (which never visited selection), or from StepView. There is no
// backwards edge out of the roadmap view; once built, the assessment is
// closed and only Reset starts another one.
func (f *Flow) Back() bool {
	if f.step == StepAssess && !f.deepLinked {
		f.step = StepSelect
		return false
	}
	return true
}

// Reset returns the flow to role selection, clearing all assessment and
// roadmap state.
func (f *Flow) Reset() {
	f.step = StepSelect
	f.role = catalog.Role{}
	f.hasRole = false
	f.deepLinked = false
	f.ratings = make(map[string]int)
	f.context = ""
	f.completed = make(map[string]bool)
}

func (f *Flow) hasTopic(topic string) bool {
	for _, t := range f.role.Topics {
		if t == topic {
			return true
		}
	}
	return false
}
