package app

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/dev-hari-haran/Way-to-Industry/internal/advisor"
	"github.com/dev-hari-haran/Way-to-Industry/internal/interview"
	"github.com/dev-hari-haran/Way-to-Industry/internal/roadmap"
	"github.com/dev-hari-haran/Way-to-Industry/internal/router"
	"github.com/dev-hari-haran/Way-to-Industry/internal/screen"
	"github.com/dev-hari-haran/Way-to-Industry/internal/screens/dashboard"
	"github.com/dev-hari-haran/Way-to-Industry/internal/screens/landing"
	"github.com/dev-hari-haran/Way-to-Industry/internal/screens/roadmapflow"
	"github.com/dev-hari-haran/Way-to-Industry/internal/selfupdate"
	"github.com/dev-hari-haran/Way-to-Industry/internal/store"
	"github.com/dev-hari-haran/Way-to-Industry/internal/ui/layout"
)

// Options carries the wired services into the TUI.
type Options struct {
	EventRepo store.EventRepo
	Generator interview.Generator
	Advisor   *advisor.Service
	Checker   *selfupdate.Checker

	// RoleID, when set, deep-links straight into the roadmap
	// assessment for that role, skipping the splash.
	RoleID string

	// SkipSplash goes straight to the dashboard.
	SkipSplash bool
}

type streakMsg struct {
	Streak int
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	opts   Options
	flow   *roadmap.Flow
	engine *interview.Engine
	streak int
	width  int
	height int
}

// newAppModel wires the shared flow, engine, and screens.
func newAppModel(opts Options) (AppModel, error) {
	flow := roadmap.NewFlow()
	engine := interview.NewEngine()

	deps := dashboard.Deps{
		Flow:      flow,
		Engine:    engine,
		Generator: opts.Generator,
		Advisor:   opts.Advisor,
		EventRepo: opts.EventRepo,
		Checker:   opts.Checker,
	}

	var first screen.Screen
	switch {
	case opts.RoleID != "":
		linked, err := roadmap.NewFlowWithRole(opts.RoleID)
		if err != nil {
			return AppModel{}, err
		}
		*flow = *linked
		first = roadmapflow.New(flow, opts.Advisor)
	case opts.SkipSplash:
		first = dashboard.New(deps)
	default:
		first = landing.New(func() screen.Screen {
			return dashboard.New(deps)
		})
	}

	return AppModel{
		router: router.New(first),
		opts:   opts,
		flow:   flow,
		engine: engine,
	}, nil
}

func (m AppModel) Init() tea.Cmd {
	return tea.Batch(m.router.Active().Init(), m.loadStreak())
}

func (m AppModel) loadStreak() tea.Cmd {
	repo := m.opts.EventRepo
	if repo == nil {
		return nil
	}
	return func() tea.Msg {
		days, err := repo.PracticeDays(context.Background())
		if err != nil {
			return streakMsg{}
		}
		return streakMsg{Streak: dashboard.StreakLength(days, time.Now().UTC())}
	}
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case streakMsg:
		m.streak = msg.Streak
		return m, nil

	case router.PopScreenMsg:
		// A finished interview may have extended the streak.
		cmd := m.router.Update(msg)
		return m, tea.Batch(cmd, m.loadStreak())

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	// The splash draws edge to edge with no chrome.
	if title == "" {
		v.SetContent(active.View(m.width, m.height))
		return v
	}

	header := layout.RenderHeader(title, m.flow.Readiness(), m.streak, m.width)

	footerHints := defaultHints(m.router.Depth())
	if provider, ok := active.(screen.KeyHintProvider); ok {
		if hints := provider.KeyHints(); len(hints) > 0 {
			footerHints = hints
		}
	}
	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// defaultHints are the footer hints for screens that provide none.
func defaultHints(depth int) []layout.KeyHint {
	if depth > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	model, err := newAppModel(opts)
	if err != nil {
		return err
	}
	p := tea.NewProgram(model)
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
