package landing

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/dev-hari-haran/Way-to-Industry/internal/router"
	"github.com/dev-hari-haran/Way-to-Industry/internal/screen"
)

// stubScreen is a minimal screen implementation for testing.
type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "dashboard" }
func (s *stubScreen) Title() string                           { return "Dashboard" }

func newTestLanding() (*LandingScreen, *int) {
	callCount := 0
	factory := func() screen.Screen {
		callCount++
		return &stubScreen{}
	}
	return New(factory), &callCount
}

func sendTicks(l *LandingScreen, n int) {
	for i := 0; i < n; i++ {
		l.Update(tickMsg(time.Now()))
	}
}

func TestPhaseTransitions(t *testing.T) {
	l, _ := newTestLanding()

	// Initially at phase 0, no banner visible
	if containsBanner(l.View(80, 24)) {
		t.Error("banner should not be visible at start")
	}

	sendTicks(l, 5)
	if l.elapsed != 500*time.Millisecond {
		t.Errorf("expected elapsed 500ms, got %v", l.elapsed)
	}

	sendTicks(l, 10)
	if l.elapsed != 1500*time.Millisecond {
		t.Errorf("expected elapsed 1500ms, got %v", l.elapsed)
	}

	if !containsBanner(l.View(80, 24)) {
		t.Error("banner should be visible after phase 2")
	}
}

func TestKeypressDuringAnimationSkipsToTransition(t *testing.T) {
	l, callCount := newTestLanding()

	sendTicks(l, 3)

	_, cmd := l.Update(tea.KeyPressMsg{Code: ' '})
	if cmd == nil {
		t.Fatal("keypress during animation should trigger transition")
	}
	msg := cmd()
	if _, ok := msg.(router.ReplaceScreenMsg); !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", msg)
	}
	if *callCount != 1 {
		t.Errorf("factory should be called once, got %d", *callCount)
	}
}

func TestNoAutoTransition(t *testing.T) {
	l, callCount := newTestLanding()

	// Ticks keep going past the animation end without a keypress.
	sendTicks(l, 45)
	if *callCount != 0 {
		t.Errorf("factory should not be called without keypress, got %d", *callCount)
	}
	if l.elapsed != totalDur {
		t.Errorf("expected elapsed capped at %v, got %v", totalDur, l.elapsed)
	}
}

func TestFactoryCalledOnce(t *testing.T) {
	l, callCount := newTestLanding()

	sendTicks(l, 45)
	l.Update(tea.KeyPressMsg{Code: 'a'})

	_, cmd := l.Update(tea.KeyPressMsg{Code: 'b'})
	if cmd != nil {
		t.Error("second keypress should not produce a command")
	}
	if *callCount != 1 {
		t.Errorf("factory should be called exactly once, got %d", *callCount)
	}
}

func TestTitleEmpty(t *testing.T) {
	l, _ := newTestLanding()
	if l.Title() != "" {
		t.Errorf("expected empty title, got %q", l.Title())
	}
}

func containsBanner(s string) bool {
	return strings.Contains(s, "Chart your path")
}
