package interview

import (
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/dev-hari-haran/Way-to-Industry/internal/catalog"
)

// Phase is the engine's position in the interview lifecycle.
type Phase int

const (
	PhaseIdle       Phase = iota // No interview running
	PhaseLoading                 // Questions being generated
	PhaseInProgress              // Learner answering questions
	PhaseScoring                 // Finish requested, result being computed
)

// Engine runs mock interview sessions and keeps the in-memory result
// history. One engine instance is shared across screens; all mutation
// goes through the named operations.
type Engine struct {
	phase     Phase
	topic     string
	kind      catalog.Kind
	questions []Question
	index     int
	answers   map[int]string

	history []Result
	now     func() time.Time
	newID   func() string
}

// NewEngine returns an idle engine with empty history.
func NewEngine() *Engine {
	return &Engine{
		now:   time.Now,
		newID: func() string { return uuid.NewString() },
	}
}

// Phase returns the current lifecycle phase.
func (e *Engine) Phase() Phase { return e.phase }

// Topic returns the topic of the running (or loading) interview.
func (e *Engine) Topic() string { return e.topic }

// Kind returns whether the running interview targets a skill or a role.
func (e *Engine) Kind() catalog.Kind { return e.kind }

// Begin starts a new interview for the given topic, entering the loading
// phase while questions are generated. Only valid when idle.
func (e *Engine) Begin(topic string, kind catalog.Kind) error {
	if e.phase != PhaseIdle {
		return fmt.Errorf("%w: interview already running", ErrInvalidInput)
	}
	if topic == "" {
		return fmt.Errorf("%w: empty topic", ErrInvalidInput)
	}
	e.phase = PhaseLoading
	e.topic = topic
	e.kind = kind
	e.questions = nil
	e.index = 0
	e.answers = make(map[int]string)
	return nil
}

// Deliver hands the generated question set to the engine and starts the
// interview. Only valid while loading.
func (e *Engine) Deliver(questions []Question) error {
	if e.phase != PhaseLoading {
		return fmt.Errorf("%w: no interview loading", ErrInvalidInput)
	}
	if len(questions) != QuestionsPerSession {
		return fmt.Errorf("%w: got %d questions, want %d", ErrInvalidInput, len(questions), QuestionsPerSession)
	}
	e.questions = questions
	e.index = 0
	e.phase = PhaseInProgress
	return nil
}

// Current returns the question being answered.
func (e *Engine) Current() (Question, error) {
	if e.phase != PhaseInProgress {
		return Question{}, fmt.Errorf("%w: no interview in progress", ErrInvalidInput)
	}
	return e.questions[e.index], nil
}

// Index returns the zero-based position of the current question.
func (e *Engine) Index() int { return e.index }

// Answer records the learner's answer for the current question. Answers
// for any other question ID are rejected.
func (e *Engine) Answer(id int, value string) error {
	if e.phase != PhaseInProgress {
		return fmt.Errorf("%w: no interview in progress", ErrInvalidInput)
	}
	if id != e.questions[e.index].ID {
		return fmt.Errorf("%w: question %d is not current", ErrInvalidInput, id)
	}
	e.answers[id] = value
	return nil
}

// AnswerFor returns the recorded answer for a question ID, if any.
func (e *Engine) AnswerFor(id int) (string, bool) {
	v, ok := e.answers[id]
	return v, ok
}

// Next advances to the following question. It returns false when the
// current question is the last one, in which case the caller should
// Finish instead.
func (e *Engine) Next() (bool, error) {
	if e.phase != PhaseInProgress {
		return false, fmt.Errorf("%w: no interview in progress", ErrInvalidInput)
	}
	if e.index >= len(e.questions)-1 {
		return false, nil
	}
	e.index++
	return true, nil
}

// Finish scores the session, prepends the result to history, and returns
// the engine to idle. Unanswered questions score zero.
func (e *Engine) Finish() (Result, error) {
	if e.phase != PhaseInProgress {
		return Result{}, fmt.Errorf("%w: no interview in progress", ErrInvalidInput)
	}
	e.phase = PhaseScoring

	score := Score(e.questions, e.answers)
	res := Result{
		ID:        e.newID(),
		Topic:     e.topic,
		Kind:      e.kind,
		Score:     score,
		Label:     LabelFor(score),
		Timestamp: e.now(),
	}
	e.history = append([]Result{res}, e.history...)

	e.reset()
	return res, nil
}

// Abort discards the running or loading interview without recording a
// result. Aborting an idle engine is a no-op.
func (e *Engine) Abort() {
	e.reset()
}

func (e *Engine) reset() {
	e.phase = PhaseIdle
	e.topic = ""
	e.kind = ""
	e.questions = nil
	e.index = 0
	e.answers = nil
}

// History returns past results, newest first.
func (e *Engine) History() []Result {
	return slices.Clone(e.history)
}
