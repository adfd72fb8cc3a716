package roadmapflow

import (
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/dev-hari-haran/Way-to-Industry/internal/advisor"
	"github.com/dev-hari-haran/Way-to-Industry/internal/roadmap"
	"github.com/dev-hari-haran/Way-to-Industry/internal/router"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func newTestScreen() (*RoadmapFlowScreen, *roadmap.Flow) {
	flow := roadmap.NewFlow()
	adv := advisor.NewService(nil, advisor.DefaultConfig())
	s := New(flow, adv)
	s.pace = time.Millisecond
	return s, flow
}

// toAssess selects the first catalog entry and confirms it.
func toAssess(s *RoadmapFlowScreen) {
	s.Update(specialKey(tea.KeyEnter))
}

// toView jumps to the build button and fires the build, skipping the
// animation by delivering generatedMsg directly.
func toView(s *RoadmapFlowScreen) {
	s.focus = len(s.ratings) + 1
	s.Update(specialKey(tea.KeyEnter))
	s.Update(generatedMsg{})
}

func TestSelectAdvancesToAssess(t *testing.T) {
	s, flow := newTestScreen()

	s.Update(specialKey(tea.KeyDown))
	s.Update(specialKey(tea.KeyUp))
	toAssess(s)

	if flow.Step() != roadmap.StepAssess {
		t.Fatalf("Step = %v, want StepAssess", flow.Step())
	}
	role, ok := flow.Role()
	if !ok {
		t.Fatal("expected a selected role")
	}
	if len(s.ratings) != len(role.Topics) {
		t.Errorf("ratings = %d, want one per topic (%d)", len(s.ratings), len(role.Topics))
	}
}

func TestEscFromSelectExits(t *testing.T) {
	s, _ := newTestScreen()

	_, cmd := s.Update(specialKey(tea.KeyEscape))
	if cmd == nil {
		t.Fatal("expected a command on esc from selection")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Errorf("expected PopScreenMsg, got %T", cmd())
	}
}

func TestRatingRecordsOnFlow(t *testing.T) {
	s, flow := newTestScreen()
	toAssess(s)

	s.Update(keyPress('4'))

	role, _ := flow.Role()
	if got, ok := flow.Rating(role.Topics[0]); !ok || got != 4 {
		t.Errorf("Rating(%q) = %d, %v, want 4, true", role.Topics[0], got, ok)
	}
	if s.ratings[0].Value != 4 {
		t.Errorf("widget value = %d, want 4", s.ratings[0].Value)
	}
}

func TestBuildAdvancesToView(t *testing.T) {
	s, flow := newTestScreen()
	toAssess(s)

	s.focus = len(s.ratings) + 1
	s.Update(specialKey(tea.KeyEnter))
	if !s.generating {
		t.Fatal("expected build animation to start")
	}

	// Esc must not back out mid-build.
	s.Update(specialKey(tea.KeyEscape))
	if flow.Step() != roadmap.StepAssess {
		t.Fatal("esc during build should not change step")
	}

	s.Update(generatedMsg{})
	if s.generating {
		t.Error("expected build animation to stop")
	}
	if flow.Step() != roadmap.StepView {
		t.Errorf("Step = %v, want StepView", flow.Step())
	}
}

func TestAdviceArrivesWithoutProvider(t *testing.T) {
	s, _ := newTestScreen()
	toAssess(s)
	toView(s)

	// The nil-provider advice lands asynchronously; poll for it the way
	// the screen does.
	deadline := time.Now().Add(2 * time.Second)
	for s.advice == "" && time.Now().Before(deadline) {
		s.Update(advicePollMsg(time.Now()))
		time.Sleep(5 * time.Millisecond)
	}

	if s.advice != advisor.MsgNoProvider {
		t.Errorf("advice = %q, want the no-provider message", s.advice)
	}
}

func TestToggleTopicFromView(t *testing.T) {
	s, flow := newTestScreen()
	toAssess(s)
	toView(s)

	items := flow.Items()
	if items[0].Kind != roadmap.ItemTopic {
		t.Fatal("expected first item to be a topic")
	}
	topic := items[0].Topic

	s.cursor = 0
	s.Update(specialKey(' '))
	if !flow.Completed(topic) {
		t.Error("expected topic to be marked completed")
	}

	s.Update(specialKey(' '))
	if flow.Completed(topic) {
		t.Error("expected topic to be unmarked")
	}
}

func TestEscStepsBackFromAssess(t *testing.T) {
	s, flow := newTestScreen()
	toAssess(s)

	s.Update(specialKey(tea.KeyEscape))
	if flow.Step() != roadmap.StepSelect {
		t.Fatalf("Step = %v, want StepSelect after esc from assess", flow.Step())
	}

	_, cmd := s.Update(specialKey(tea.KeyEscape))
	if cmd == nil {
		t.Fatal("expected a command on esc from selection")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Errorf("expected PopScreenMsg, got %T", cmd())
	}
}

func TestEscFromViewLeavesScreen(t *testing.T) {
	s, flow := newTestScreen()
	toAssess(s)
	toView(s)

	_, cmd := s.Update(specialKey(tea.KeyEscape))
	if cmd == nil {
		t.Fatal("expected a command on esc from the roadmap view")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Errorf("expected PopScreenMsg, got %T", cmd())
	}
	if flow.Step() != roadmap.StepView {
		t.Errorf("Step = %v, the built roadmap must survive leaving", flow.Step())
	}
}

func TestReenteredAssessmentWidgetsStartFresh(t *testing.T) {
	s, flow := newTestScreen()
	toAssess(s)

	s.Update(keyPress('4'))
	s.Update(specialKey(tea.KeyEscape))
	toAssess(s)

	if s.ratings[0].Value != 0 {
		t.Errorf("widget value = %d, want 0 on a fresh assessment", s.ratings[0].Value)
	}
	role, _ := flow.Role()
	if _, ok := flow.Rating(role.Topics[0]); ok {
		t.Error("re-entering assessment must drop the earlier rating")
	}
}

func TestDeepLinkedEscExitsFromAssess(t *testing.T) {
	flow, err := roadmap.NewFlowWithRole("Go")
	if err != nil {
		t.Fatal(err)
	}
	adv := advisor.NewService(nil, advisor.DefaultConfig())
	s := New(flow, adv)

	if len(s.ratings) == 0 {
		t.Fatal("expected assessment widgets for a deep-linked flow")
	}

	_, cmd := s.Update(specialKey(tea.KeyEscape))
	if cmd == nil {
		t.Fatal("expected a command on esc from deep-linked assessment")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Errorf("expected PopScreenMsg, got %T", cmd())
	}
}

func TestResetReturnsToSelection(t *testing.T) {
	s, flow := newTestScreen()
	toAssess(s)
	toView(s)

	s.Update(keyPress('r'))
	if flow.Step() != roadmap.StepSelect {
		t.Errorf("Step = %v, want StepSelect after reset", flow.Step())
	}
}

func TestTitleFollowsStep(t *testing.T) {
	s, _ := newTestScreen()
	if s.Title() != "Pick Your Target" {
		t.Errorf("Title = %q at selection", s.Title())
	}
	toAssess(s)
	if s.Title() != "Self-Assessment" {
		t.Errorf("Title = %q at assessment", s.Title())
	}
	toView(s)
	if s.Title() != "Your Roadmap" {
		t.Errorf("Title = %q at view", s.Title())
	}
}
