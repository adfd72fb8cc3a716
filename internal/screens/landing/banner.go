package landing

import (
	"charm.land/lipgloss/v2"

	"github.com/dev-hari-haran/Way-to-Industry/internal/ui/theme"
)

const bannerArt = `
 ██╗    ██╗████████╗██╗
 ██║    ██║╚══██╔══╝██║
 ██║ █╗ ██║   ██║   ██║
 ██║███╗██║   ██║   ██║
 ╚███╔███╔╝   ██║   ██║
  ╚══╝╚══╝    ╚═╝   ╚═╝`

const bannerCompact = "W T I"

const bannerSubline = "W A Y   T O   I N D U S T R Y"

// RenderBanner returns the WTI banner styled in the primary color.
// Uses a compact fallback for terminals narrower than 30 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 30 {
		return style.Render(bannerCompact)
	}

	sub := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Render(bannerSubline)

	return style.Render(bannerArt) + "\n\n " + sub
}
