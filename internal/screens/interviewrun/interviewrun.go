package interviewrun

import (
	"context"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/dev-hari-haran/Way-to-Industry/internal/catalog"
	"github.com/dev-hari-haran/Way-to-Industry/internal/interview"
	"github.com/dev-hari-haran/Way-to-Industry/internal/router"
	"github.com/dev-hari-haran/Way-to-Industry/internal/screen"
	"github.com/dev-hari-haran/Way-to-Industry/internal/store"
	"github.com/dev-hari-haran/Way-to-Industry/internal/ui/components"
	"github.com/dev-hari-haran/Way-to-Industry/internal/ui/layout"
)

const spinnerInterval = 150 * time.Millisecond

// InterviewScreen runs one 5-question mock interview from generation
// through the final score card.
type InterviewScreen struct {
	engine    *interview.Engine
	generator interview.Generator
	eventRepo store.EventRepo
	topic     string
	kind      catalog.Kind

	mc          components.MultiChoice
	input       components.TextInput
	showConfirm bool
	spinnerTick int
	result      *interview.Result
	errMsg      string
}

var _ screen.Screen = (*InterviewScreen)(nil)
var _ screen.KeyHintProvider = (*InterviewScreen)(nil)

// New creates an InterviewScreen for the given topic. generator may be
// nil, in which case the built-in question set is used.
func New(engine *interview.Engine, generator interview.Generator, eventRepo store.EventRepo, topic string, kind catalog.Kind) *InterviewScreen {
	return &InterviewScreen{
		engine:    engine,
		generator: generator,
		eventRepo: eventRepo,
		topic:     topic,
		kind:      kind,
	}
}

func (s *InterviewScreen) Init() tea.Cmd {
	if err := s.engine.Begin(s.topic, s.kind); err != nil {
		s.errMsg = err.Error()
		return nil
	}
	return tea.Batch(s.loadQuestions(), spinnerCmd())
}

func (s *InterviewScreen) Title() string {
	return "Mock Interview"
}

func (s *InterviewScreen) KeyHints() []layout.KeyHint {
	if s.result != nil {
		return []layout.KeyHint{
			{Key: "any key", Description: "Back to dashboard"},
		}
	}
	if s.showConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "Abandon"},
			{Key: "N", Description: "Keep going"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Abandon"},
	}
}

// loadQuestions generates the question set off the UI loop. Generation
// failures fall back to the built-in set, so this always delivers.
func (s *InterviewScreen) loadQuestions() tea.Cmd {
	generator := s.generator
	topic := s.topic
	kind := s.kind
	return func() tea.Msg {
		qs := interview.Load(context.Background(), generator, topic, kind)
		return questionsReadyMsg{Questions: qs}
	}
}

func (s *InterviewScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case questionsReadyMsg:
		return s.handleQuestionsReady(msg)

	case spinnerTickMsg:
		if s.engine.Phase() == interview.PhaseLoading {
			s.spinnerTick++
			return s, spinnerCmd()
		}
		return s, nil

	case finishedMsg:
		return s.handleFinished(msg)

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	// Forward everything else to the active input.
	if s.inputActive() {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	return s, nil
}

func (s *InterviewScreen) handleQuestionsReady(msg questionsReadyMsg) (screen.Screen, tea.Cmd) {
	if err := s.engine.Deliver(msg.Questions); err != nil {
		s.errMsg = err.Error()
		return s, nil
	}
	return s, s.setupQuestion()
}

// setupQuestion prepares the input widget for the current question.
func (s *InterviewScreen) setupQuestion() tea.Cmd {
	q, err := s.engine.Current()
	if err != nil {
		s.errMsg = err.Error()
		return nil
	}

	if q.Kind == interview.KindMCQ {
		s.mc = components.NewMultiChoice(q.Prompt, q.Options)
		return nil
	}
	s.input = components.NewTextInput("Sketch your approach...", 240)
	return s.input.Init()
}

func (s *InterviewScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	// Error state: any key goes back.
	if s.errMsg != "" {
		s.engine.Abort()
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	// Score card: any key goes back.
	if s.result != nil {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if s.showConfirm {
		switch key {
		case "y", "Y":
			s.engine.Abort()
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			s.showConfirm = false
		}
		return s, nil
	}

	if s.engine.Phase() != interview.PhaseInProgress {
		if key == "esc" {
			s.engine.Abort()
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return s, nil
	}

	switch key {
	case "esc":
		s.showConfirm = true
		return s, nil
	case "enter":
		return s.submitAnswer()
	}

	q, err := s.engine.Current()
	if err != nil {
		s.errMsg = err.Error()
		return s, nil
	}

	if q.Kind == interview.KindMCQ {
		var cmd tea.Cmd
		s.mc, cmd = s.mc.Update(msg)
		return s, cmd
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// submitAnswer records the current answer and advances. The final
// submit scores the session.
func (s *InterviewScreen) submitAnswer() (screen.Screen, tea.Cmd) {
	q, err := s.engine.Current()
	if err != nil {
		s.errMsg = err.Error()
		return s, nil
	}

	var answer string
	if q.Kind == interview.KindMCQ {
		chosen, ok := s.mc.Chosen()
		if !ok {
			// Require an explicit choice before moving on.
			return s, nil
		}
		answer = chosen
	} else {
		answer = strings.TrimSpace(s.input.Value())
		if answer == "" {
			return s, nil
		}
	}

	if err := s.engine.Answer(q.ID, answer); err != nil {
		s.errMsg = err.Error()
		return s, nil
	}

	more, err := s.engine.Next()
	if err != nil {
		s.errMsg = err.Error()
		return s, nil
	}
	if more {
		return s, s.setupQuestion()
	}

	return s, s.finish()
}

// finish scores the session and records it in the event log.
func (s *InterviewScreen) finish() tea.Cmd {
	return func() tea.Msg {
		result, err := s.engine.Finish()
		if err != nil {
			return finishedMsg{Err: err}
		}

		if s.eventRepo != nil {
			_ = s.eventRepo.AppendInterview(context.Background(), store.InterviewEventData{
				ResultID: result.ID,
				Topic:    result.Topic,
				Kind:     string(result.Kind),
				Score:    result.Score,
				Label:    result.Label,
			})
		}

		return finishedMsg{Result: result}
	}
}

func (s *InterviewScreen) handleFinished(msg finishedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}
	r := msg.Result
	s.result = &r
	return s, nil
}

func (s *InterviewScreen) inputActive() bool {
	if s.engine.Phase() != interview.PhaseInProgress || s.showConfirm || s.result != nil {
		return false
	}
	q, err := s.engine.Current()
	return err == nil && q.Kind == interview.KindCode
}

func spinnerCmd() tea.Cmd {
	return tea.Tick(spinnerInterval, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}
