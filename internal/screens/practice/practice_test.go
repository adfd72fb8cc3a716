package practice

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/dev-hari-haran/Way-to-Industry/internal/catalog"
	"github.com/dev-hari-haran/Way-to-Industry/internal/router"
	"github.com/dev-hari-haran/Way-to-Industry/internal/screen"
)

// stubScreen stands in for the interview screen the factory builds.
type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "" }
func (s *stubScreen) Title() string                           { return "" }

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func newTestPractice() (*PracticeScreen, *string, *catalog.Kind) {
	var gotTopic string
	var gotKind catalog.Kind
	p := New(func(topic string, kind catalog.Kind) screen.Screen {
		gotTopic = topic
		gotKind = kind
		return &stubScreen{}
	})
	return p, &gotTopic, &gotKind
}

func TestEnterStartsInterviewForSelection(t *testing.T) {
	p, gotTopic, gotKind := newTestPractice()

	roles := catalog.ByKind(catalog.KindRole)
	if len(roles) < 2 {
		t.Fatal("catalog must hold at least two roles")
	}

	p.Update(specialKey(tea.KeyRight))
	_, cmd := p.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a command on enter")
	}
	if _, ok := cmd().(router.PushScreenMsg); !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}

	if *gotTopic != roles[1].Label {
		t.Errorf("topic = %q, want %q", *gotTopic, roles[1].Label)
	}
	if *gotKind != catalog.KindRole {
		t.Errorf("kind = %q, want %q", *gotKind, catalog.KindRole)
	}
}

func TestNavigationIntoSkills(t *testing.T) {
	p, gotTopic, gotKind := newTestPractice()

	// Down past the roles lands in the skill group.
	for p.selected < len(p.roles) {
		before := p.selected
		p.Update(specialKey(tea.KeyDown))
		if p.selected == before {
			// Bottom row reached; walk the rest with right.
			p.Update(specialKey(tea.KeyRight))
		}
	}

	_, cmd := p.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a command on enter")
	}
	cmd()

	if *gotKind != catalog.KindSkill {
		t.Errorf("kind = %q, want %q", *gotKind, catalog.KindSkill)
	}
	if *gotTopic == "" {
		t.Error("expected a skill topic")
	}
}

func TestNavigationStaysInBounds(t *testing.T) {
	p, _, _ := newTestPractice()

	p.Update(specialKey(tea.KeyLeft))
	p.Update(specialKey(tea.KeyUp))
	if p.selected != 0 {
		t.Errorf("selected = %d, want 0 at the top left", p.selected)
	}

	for i := 0; i < p.total()*2; i++ {
		p.Update(specialKey(tea.KeyRight))
	}
	if p.selected != p.total()-1 {
		t.Errorf("selected = %d, want %d at the end", p.selected, p.total()-1)
	}
}

func TestEscPops(t *testing.T) {
	p, _, _ := newTestPractice()

	_, cmd := p.Update(specialKey(tea.KeyEscape))
	if cmd == nil {
		t.Fatal("expected a command on esc")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Errorf("expected PopScreenMsg, got %T", cmd())
	}
}
