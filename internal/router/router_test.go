package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/dev-hari-haran/Way-to-Industry/internal/screen"
)

type fakeScreen struct {
	name    string
	initRan bool
	updates int
}

func (f *fakeScreen) Init() tea.Cmd {
	f.initRan = true
	return nil
}

func (f *fakeScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) {
	f.updates++
	return f, nil
}

func (f *fakeScreen) View(int, int) string { return f.name }
func (f *fakeScreen) Title() string        { return f.name }

func requireActive(t *testing.T, r *Router, name string) {
	t.Helper()
	if got := r.Active().Title(); got != name {
		t.Fatalf("active = %q, want %q", got, name)
	}
}

func TestPushGrowsStackAndInits(t *testing.T) {
	r := New(&fakeScreen{name: "dashboard"})

	wizard := &fakeScreen{name: "wizard"}
	r.Push(wizard)

	if r.Depth() != 2 {
		t.Errorf("depth = %d, want 2", r.Depth())
	}
	requireActive(t, r, "wizard")
	if !wizard.initRan {
		t.Error("pushed screen was not initialized")
	}
}

func TestPopReturnsToPreviousScreen(t *testing.T) {
	r := New(&fakeScreen{name: "dashboard"})
	r.Push(&fakeScreen{name: "wizard"})
	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("depth = %d, want 1", r.Depth())
	}
	requireActive(t, r, "dashboard")
}

func TestPopKeepsHomeScreen(t *testing.T) {
	r := New(&fakeScreen{name: "dashboard"})
	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("depth = %d, want the home screen to survive", r.Depth())
	}
	requireActive(t, r, "dashboard")
}

func TestReplaceSwapsWithoutGrowing(t *testing.T) {
	r := New(&fakeScreen{name: "landing"})
	r.Push(&fakeScreen{name: "wizard"})

	view := &fakeScreen{name: "view"}
	r.Replace(view)

	if r.Depth() != 2 {
		t.Errorf("depth = %d, want 2", r.Depth())
	}
	requireActive(t, r, "view")
	if !view.initRan {
		t.Error("replacement screen was not initialized")
	}
}

func TestNavigationMessages(t *testing.T) {
	r := New(&fakeScreen{name: "dashboard"})

	r.Update(PushScreenMsg{Screen: &fakeScreen{name: "wizard"}})
	requireActive(t, r, "wizard")

	r.Update(ReplaceScreenMsg{Screen: &fakeScreen{name: "view"}})
	requireActive(t, r, "view")
	if r.Depth() != 2 {
		t.Errorf("depth = %d, want replace to keep depth", r.Depth())
	}

	r.Update(PopScreenMsg{})
	requireActive(t, r, "dashboard")
}

func TestOtherMessagesReachActiveScreenOnly(t *testing.T) {
	home := &fakeScreen{name: "dashboard"}
	r := New(home)

	wizard := &fakeScreen{name: "wizard"}
	r.Push(wizard)
	r.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	if wizard.updates != 1 {
		t.Errorf("active screen updates = %d, want 1", wizard.updates)
	}
	if home.updates != 0 {
		t.Errorf("background screen updates = %d, want 0", home.updates)
	}
}
