package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/dev-hari-haran/Way-to-Industry/internal/catalog"
	"github.com/dev-hari-haran/Way-to-Industry/internal/interview"
	"github.com/dev-hari-haran/Way-to-Industry/internal/router"
	"github.com/dev-hari-haran/Way-to-Industry/internal/screen"
	"github.com/dev-hari-haran/Way-to-Industry/internal/store"
	"github.com/dev-hari-haran/Way-to-Industry/internal/ui/layout"
	"github.com/dev-hari-haran/Way-to-Industry/internal/ui/theme"
)

type daysLoadedMsg struct {
	Days []string
}

// HistoryScreen lists finished mock interviews, newest first, with the
// practice days pulled from the event log.
type HistoryScreen struct {
	engine    *interview.Engine
	eventRepo store.EventRepo
	results   []interview.Result
	days      []string
	selected  int
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(engine *interview.Engine, eventRepo store.EventRepo) *HistoryScreen {
	return &HistoryScreen{
		engine:    engine,
		eventRepo: eventRepo,
		results:   engine.History(),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	repo := s.eventRepo
	if repo == nil {
		return nil
	}
	return func() tea.Msg {
		days, err := repo.PracticeDays(context.Background())
		if err != nil {
			return daysLoadedMsg{}
		}
		return daysLoadedMsg{Days: days}
	}
}

func (s *HistoryScreen) Title() string {
	return "Activity Log"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case daysLoadedMsg:
		s.days = msg.Days
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.results)-1 {
				s.selected++
			}
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if len(s.results) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No interviews yet. Try a quick practice session!")
	}

	var b strings.Builder
	b.WriteString("\n")

	if len(s.days) > 0 {
		daysLine := fmt.Sprintf("%d practice day", len(s.days))
		if len(s.days) > 1 {
			daysLine += "s"
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(daysLine)))
		b.WriteString("\n\n")
	}

	for i, r := range s.results {
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		kindTag := "skill"
		if r.Kind == catalog.KindRole {
			kindTag = "role"
		}

		line := fmt.Sprintf("%s%s  %-24s %-6s %3d/100  %s",
			prefix, r.Timestamp.Format("Jan 02, 15:04"), r.Topic, kindTag, r.Score, r.Label)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}
