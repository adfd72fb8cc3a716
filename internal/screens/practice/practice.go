package practice

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/dev-hari-haran/Way-to-Industry/internal/catalog"
	"github.com/dev-hari-haran/Way-to-Industry/internal/router"
	"github.com/dev-hari-haran/Way-to-Industry/internal/screen"
	"github.com/dev-hari-haran/Way-to-Industry/internal/ui/components"
	"github.com/dev-hari-haran/Way-to-Industry/internal/ui/layout"
	"github.com/dev-hari-haran/Way-to-Industry/internal/ui/theme"
)

// chipsPerRow bounds how many topic chips are laid out on one line.
const chipsPerRow = 5

// PracticeScreen lets the user pick a role or skill for a quick mock
// interview. The chosen topic is handed to interviewFactory.
type PracticeScreen struct {
	interviewFactory func(topic string, kind catalog.Kind) screen.Screen
	roles            []catalog.Role
	skills           []catalog.Role
	selected         int
}

var _ screen.Screen = (*PracticeScreen)(nil)
var _ screen.KeyHintProvider = (*PracticeScreen)(nil)

// New creates a PracticeScreen over the full role and skill catalog.
func New(interviewFactory func(topic string, kind catalog.Kind) screen.Screen) *PracticeScreen {
	return &PracticeScreen{
		interviewFactory: interviewFactory,
		roles:            catalog.ByKind(catalog.KindRole),
		skills:           catalog.ByKind(catalog.KindSkill),
	}
}

func (p *PracticeScreen) Init() tea.Cmd {
	return nil
}

func (p *PracticeScreen) Title() string {
	return "Quick Practice"
}

func (p *PracticeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←→↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Start interview"},
		{Key: "Esc", Description: "Back"},
	}
}

func (p *PracticeScreen) total() int {
	return len(p.roles) + len(p.skills)
}

// at returns the role or skill at the flat selection index.
func (p *PracticeScreen) at(i int) catalog.Role {
	if i < len(p.roles) {
		return p.roles[i]
	}
	return p.skills[i-len(p.roles)]
}

func (p *PracticeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}

	switch kmsg.String() {
	case "esc":
		return p, func() tea.Msg { return router.PopScreenMsg{} }
	case "left", "h":
		if p.selected > 0 {
			p.selected--
		}
	case "right", "l":
		if p.selected < p.total()-1 {
			p.selected++
		}
	case "up", "k":
		if p.selected-chipsPerRow >= 0 {
			p.selected -= chipsPerRow
		}
	case "down", "j":
		if p.selected+chipsPerRow < p.total() {
			p.selected += chipsPerRow
		}
	case "enter":
		picked := p.at(p.selected)
		next := p.interviewFactory(picked.Label, picked.Kind)
		return p, func() tea.Msg {
			return router.PushScreenMsg{Screen: next}
		}
	}

	return p, nil
}

func (p *PracticeScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")

	heading := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("Pick a topic for a 5-question mock interview")
	b.WriteString(heading)
	b.WriteString("\n\n")

	b.WriteString(p.renderGroup("ROLES", p.roles, 0, width))
	b.WriteString("\n")
	b.WriteString(p.renderGroup("SKILLS", p.skills, len(p.roles), width))

	return b.String()
}

// renderGroup renders one labelled block of chips. offset is the flat
// index of the group's first entry.
func (p *PracticeScreen) renderGroup(label string, entries []catalog.Role, offset, width int) string {
	var b strings.Builder

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(label)))
	b.WriteString("\n")

	var rows []string
	var row []string
	for i, entry := range entries {
		row = append(row, components.Chip(entry.Label, offset+i == p.selected))
		if len(row) == chipsPerRow {
			rows = append(rows, strings.Join(row, "  "))
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, strings.Join(row, "  "))
	}

	for _, r := range rows {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, r))
		b.WriteString("\n")
	}

	return b.String()
}
