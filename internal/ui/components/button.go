package components

import (
	"github.com/dev-hari-haran/Way-to-Industry/internal/ui/theme"
)

// Button renders a single action label. Screens own the key handling,
// so the button only needs to know whether it currently has focus.
type Button struct {
	Label  string
	Active bool
}

func NewButton(label string, active bool) Button {
	return Button{Label: label, Active: active}
}

func (b Button) View() string {
	label := "  ▸ " + b.Label + " "
	if b.Active {
		return theme.ButtonActive.Render(label)
	}
	return theme.ButtonInactive.Render(label)
}
