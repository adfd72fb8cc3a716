package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/dev-hari-haran/Way-to-Industry/internal/ui/layout"
)

// Screen is one navigable view: the dashboard, the roadmap wizard,
// a running interview. The app model owns the frame; a screen only
// renders the content region between the header and footer bars.
type Screen interface {
	Init() tea.Cmd

	// Update returns the screen to keep on the stack, which may be a
	// different screen value than the receiver.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the content region at the given size.
	View(width, height int) string

	// Title is shown centered in the header bar.
	Title() string
}

// KeyHintProvider lets a screen replace the default footer hints with
// its own. Screens without it get the stack-depth defaults.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}
