package placeholder

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/dev-hari-haran/Way-to-Industry/internal/router"
	"github.com/dev-hari-haran/Way-to-Industry/internal/screen"
	"github.com/dev-hari-haran/Way-to-Industry/internal/ui/theme"
)

// Screen stands in for features the dashboard advertises but that are
// not built yet, like accounts.
type Screen struct {
	title string
}

var _ screen.Screen = (*Screen)(nil)

func New(title string) *Screen {
	return &Screen{title: title}
}

func (p *Screen) Init() tea.Cmd {
	return nil
}

func (p *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "esc" {
		return p, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return p, nil
}

func (p *Screen) View(width, height int) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.Text).
		Render("╌╌ Coming Soon ╌╌\n\nAccounts are on the way.\nEverything works locally for now!")
}

func (p *Screen) Title() string {
	return p.title
}
