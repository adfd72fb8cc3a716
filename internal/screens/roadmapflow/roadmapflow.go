package roadmapflow

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/dev-hari-haran/Way-to-Industry/internal/advisor"
	"github.com/dev-hari-haran/Way-to-Industry/internal/catalog"
	"github.com/dev-hari-haran/Way-to-Industry/internal/roadmap"
	"github.com/dev-hari-haran/Way-to-Industry/internal/router"
	"github.com/dev-hari-haran/Way-to-Industry/internal/screen"
	"github.com/dev-hari-haran/Way-to-Industry/internal/ui/components"
	"github.com/dev-hari-haran/Way-to-Industry/internal/ui/layout"
)

const (
	// defaultPace is how long the build animation runs before the
	// roadmap is revealed.
	defaultPace      = 1200 * time.Millisecond
	genTickInterval  = 150 * time.Millisecond
	advicePollPeriod = 500 * time.Millisecond
	relatedCount     = 3
)

// RoadmapFlowScreen walks the three roadmap steps: pick a target,
// self-assess the curriculum, then work the generated roadmap.
type RoadmapFlowScreen struct {
	flow *roadmap.Flow
	adv  *advisor.Service

	// select step
	entries   []catalog.Role
	selectIdx int

	// assess step. focus runs over topic rows, then the context
	// input, then the build button.
	focus      int
	ratings    []components.StarRating
	ctxInput   components.TextInput
	generating bool
	genTick    int

	// view step
	cursor  int
	advice  string
	related []catalog.Role
	quote   string

	pace time.Duration
}

var _ screen.Screen = (*RoadmapFlowScreen)(nil)
var _ screen.KeyHintProvider = (*RoadmapFlowScreen)(nil)

// New creates the screen over a shared flow. The flow may already be
// mid-way (deep link or a previous visit); the screen picks up where it
// stands.
func New(flow *roadmap.Flow, adv *advisor.Service) *RoadmapFlowScreen {
	s := &RoadmapFlowScreen{
		flow:    flow,
		adv:     adv,
		entries: catalog.All(),
		quote:   roadmap.PickQuote(time.Now().UnixNano()),
		pace:    defaultPace,
	}

	switch flow.Step() {
	case roadmap.StepAssess:
		s.syncAssess()
	case roadmap.StepView:
		s.syncView()
	}

	return s
}

// syncAssess rebuilds the per-topic rating widgets from flow state.
func (s *RoadmapFlowScreen) syncAssess() {
	role, ok := s.flow.Role()
	if !ok {
		return
	}
	s.focus = 0
	s.ratings = make([]components.StarRating, len(role.Topics))
	for i, topic := range role.Topics {
		s.ratings[i] = components.NewStarRating(roadmap.MaxRating)
		if stars, rated := s.flow.Rating(topic); rated {
			s.ratings[i].Value = stars
		}
	}
	s.ctxInput = components.NewTextInput("Anything else? (timeline, goals...)", 120)
	s.ctxInput.Model.SetValue(s.flow.Context())
	s.ctxInput.Model.Blur()
}

// syncView prepares view-step state and kicks advice consumption.
func (s *RoadmapFlowScreen) syncView() {
	s.cursor = 0
	if role, ok := s.flow.Role(); ok {
		s.related = catalog.Related(role.ID, relatedCount)
	}
}

func (s *RoadmapFlowScreen) Init() tea.Cmd {
	if s.flow.Step() == roadmap.StepView && s.advice == "" {
		return advicePollCmd()
	}
	return nil
}

func (s *RoadmapFlowScreen) Title() string {
	switch s.flow.Step() {
	case roadmap.StepSelect:
		return "Pick Your Target"
	case roadmap.StepAssess:
		return "Self-Assessment"
	default:
		return "Your Roadmap"
	}
}

func (s *RoadmapFlowScreen) KeyHints() []layout.KeyHint {
	switch s.flow.Step() {
	case roadmap.StepSelect:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Choose"},
			{Key: "Esc", Description: "Back"},
		}
	case roadmap.StepAssess:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Row"},
			{Key: "←→ 1-5", Description: "Rate"},
			{Key: "Enter", Description: "Build"},
			{Key: "Esc", Description: "Back"},
		}
	default:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Space", Description: "Toggle done"},
			{Key: "R", Description: "Start over"},
			{Key: "Esc", Description: "Exit"},
		}
	}
}

func (s *RoadmapFlowScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case genTickMsg:
		if s.generating {
			s.genTick++
			return s, genTickCmd()
		}
		return s, nil

	case generatedMsg:
		return s.finishBuild()

	case advicePollMsg:
		if s.advice != "" {
			return s, nil
		}
		if text, ok := s.adv.ConsumeAdvice(); ok {
			s.advice = text
			return s, nil
		}
		return s, advicePollCmd()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	// Context input needs non-key messages too (cursor blink).
	if s.flow.Step() == roadmap.StepAssess && s.contextFocused() {
		var cmd tea.Cmd
		s.ctxInput, cmd = s.ctxInput.Update(msg)
		return s, cmd
	}

	return s, nil
}

func (s *RoadmapFlowScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if msg.String() == "esc" {
		return s.goBack()
	}

	switch s.flow.Step() {
	case roadmap.StepSelect:
		return s.updateSelect(msg)
	case roadmap.StepAssess:
		return s.updateAssess(msg)
	default:
		return s.updateView(msg)
	}
}

// goBack steps backwards through the wizard, leaving the screen when
// the flow says the exit has been reached.
func (s *RoadmapFlowScreen) goBack() (screen.Screen, tea.Cmd) {
	if s.generating {
		return s, nil
	}
	if s.flow.Back() {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	if s.flow.Step() == roadmap.StepAssess {
		s.syncAssess()
	}
	return s, nil
}

func (s *RoadmapFlowScreen) updateSelect(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if s.selectIdx > 0 {
			s.selectIdx--
		}
	case "down", "j":
		if s.selectIdx < len(s.entries)-1 {
			s.selectIdx++
		}
	case "enter":
		picked := s.entries[s.selectIdx]
		if err := s.flow.Select(picked.ID); err != nil {
			return s, nil
		}
		if err := s.flow.Confirm(); err != nil {
			return s, nil
		}
		s.syncAssess()
	}
	return s, nil
}

func (s *RoadmapFlowScreen) contextFocused() bool {
	return s.focus == len(s.ratings)
}

func (s *RoadmapFlowScreen) buildFocused() bool {
	return s.focus == len(s.ratings)+1
}

func (s *RoadmapFlowScreen) updateAssess(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.generating {
		return s, nil
	}

	role, ok := s.flow.Role()
	if !ok {
		return s, nil
	}

	key := msg.String()

	switch key {
	case "up", "shift+tab":
		if s.focus > 0 {
			s.focus--
		}
		return s, s.refocusContext()
	case "down", "tab":
		if s.focus < len(s.ratings)+1 {
			s.focus++
		}
		return s, s.refocusContext()
	case "enter":
		if s.buildFocused() {
			return s.startBuild()
		}
		// Enter elsewhere advances to the next row.
		if s.focus < len(s.ratings)+1 {
			s.focus++
		}
		return s, s.refocusContext()
	}

	if s.contextFocused() {
		var cmd tea.Cmd
		s.ctxInput, cmd = s.ctxInput.Update(msg)
		s.flow.SetContext(s.ctxInput.Value())
		return s, cmd
	}

	if s.focus < len(s.ratings) {
		before := s.ratings[s.focus].Value
		s.ratings[s.focus], _ = s.ratings[s.focus].Update(msg)
		after := s.ratings[s.focus].Value
		if after != before && after >= roadmap.MinRating {
			_ = s.flow.Rate(role.Topics[s.focus], after)
		}
	}

	return s, nil
}

// refocusContext keeps the text input's focus in sync with the row
// cursor so it only captures keys when selected.
func (s *RoadmapFlowScreen) refocusContext() tea.Cmd {
	if s.contextFocused() {
		return s.ctxInput.Model.Focus()
	}
	s.ctxInput.Model.Blur()
	return nil
}

// startBuild plays the build animation before revealing the roadmap.
func (s *RoadmapFlowScreen) startBuild() (screen.Screen, tea.Cmd) {
	s.generating = true
	s.genTick = 0
	pace := s.pace
	return s, tea.Batch(
		genTickCmd(),
		tea.Tick(pace, func(time.Time) tea.Msg { return generatedMsg{} }),
	)
}

// finishBuild submits the assessment and requests mentor advice.
func (s *RoadmapFlowScreen) finishBuild() (screen.Screen, tea.Cmd) {
	s.generating = false
	if err := s.flow.Submit(); err != nil {
		return s, nil
	}
	s.syncView()
	s.requestAdvice()
	return s, advicePollCmd()
}

// requestAdvice fires the async mentor call from the submitted state.
func (s *RoadmapFlowScreen) requestAdvice() {
	role, ok := s.flow.Role()
	if !ok {
		return
	}

	var strong, weak []string
	for _, topic := range role.Topics {
		if s.flow.Completed(topic) {
			strong = append(strong, topic)
		} else {
			weak = append(weak, topic)
		}
	}

	s.advice = ""
	s.adv.RequestAdvice(context.Background(), advisor.AdviceInput{
		TargetRole:   role.Label,
		StrongTopics: strong,
		WeakTopics:   weak,
		ExtraContext: s.flow.Context(),
		ReadinessPct: s.flow.Readiness(),
	})
}

func (s *RoadmapFlowScreen) updateView(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	items := s.flow.Items()

	switch msg.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(items)-1 {
			s.cursor++
		}
	case " ", "space", "enter":
		item := items[s.cursor]
		if item.Kind == roadmap.ItemTopic {
			_ = s.flow.ToggleTopic(item.Topic)
		}
	case "r":
		s.flow.Reset()
		s.selectIdx = 0
	}

	return s, nil
}

func genTickCmd() tea.Cmd {
	return tea.Tick(genTickInterval, func(t time.Time) tea.Msg {
		return genTickMsg(t)
	})
}

func advicePollCmd() tea.Cmd {
	return tea.Tick(advicePollPeriod, func(t time.Time) tea.Msg {
		return advicePollMsg(t)
	})
}
