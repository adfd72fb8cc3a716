package dashboard

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/dev-hari-haran/Way-to-Industry/internal/interview"
	"github.com/dev-hari-haran/Way-to-Industry/internal/ui/theme"
)

// Block-letter title (same art as landing/banner.go).
const hubTitleFull = ` ██╗    ██╗████████╗██╗
 ██║    ██║╚══██╔══╝██║
 ██║ █╗ ██║   ██║   ██║
 ██║███╗██║   ██║   ██║
 ╚███╔███╔╝   ██║   ██║
  ╚══╝╚══╝    ╚═╝   ╚═╝`

const hubTitleCompact = "W · T · I"

// contentWidth returns the uniform inner width used for all sections.
// All boxes are rendered at this width so they visually align.
func contentWidth(frameWidth int) int {
	// Leave room for hub border (2) + inner padding (4)
	w := frameWidth - 6
	if w > 60 {
		w = 60
	}
	if w < 20 {
		w = 20
	}
	return w
}

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if compact {
		return lipgloss.NewStyle().
			Width(cw).
			Align(lipgloss.Center).
			Render(style.Render(hubTitleCompact))
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(hubTitleFull))
}

// renderStatsBar renders readiness, streak, and session count in a
// bordered box matching content width.
func renderStatsBar(readiness, streak, sessions, cw int, compact bool) string {
	readyStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	streakStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	sessionStyle := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	var stats string
	if compact {
		stats = fmt.Sprintf("%s %s %s",
			readyStyle.Render(fmt.Sprintf("▲%d%%", readiness)),
			streakText(streak, true, streakStyle, dimStyle),
			sessionStyle.Render(fmt.Sprintf("◆%d", sessions)),
		)
	} else {
		stats = fmt.Sprintf("%s  %s  %s",
			readyStyle.Render(fmt.Sprintf("▲ %d%% READY", readiness)),
			streakText(streak, false, streakStyle, dimStyle),
			sessionStyle.Render(fmt.Sprintf("◆ %d INTERVIEWS", sessions)),
		)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Secondary).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

func streakText(streak int, compact bool, active, dim lipgloss.Style) string {
	if streak == 0 {
		if compact {
			return dim.Render("⚡0")
		}
		return dim.Render("⚡ NO STREAK")
	}
	if compact {
		return active.Render(fmt.Sprintf("⚡%d", streak))
	}
	return active.Render(fmt.Sprintf("⚡ %d DAY STREAK", streak))
}

// renderRecentActivity lists the latest interview results, newest first.
func renderRecentActivity(results []interview.Result, cw int) string {
	if len(results) == 0 {
		return ""
	}
	if len(results) > 3 {
		results = results[:3]
	}

	var lines []string
	lines = append(lines, lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("RECENT ACTIVITY"))
	for _, r := range results {
		line := fmt.Sprintf("%s  %s  %s",
			r.Timestamp.Format("Jan 02"),
			r.Topic,
			lipgloss.NewStyle().Foreground(scoreColor(r.Score)).Bold(true).
				Render(fmt.Sprintf("%d/100 %s", r.Score, r.Label)),
		)
		lines = append(lines, lipgloss.NewStyle().Foreground(theme.Text).Render(line))
	}

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(lines, "\n"))
}

func scoreColor(score int) color.Color {
	switch {
	case score >= 70:
		return theme.Success
	case score >= 40:
		return theme.Accent
	default:
		return theme.Error
	}
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 24

// renderDashboardMenu renders each menu item as a fixed-width button,
// or plain lines on small terminals.
func renderDashboardMenu(items []string, selected int, cw int, compact bool) string {
	if compact {
		var lines []string
		for i, label := range items {
			var line string
			if i == selected {
				line = lipgloss.NewStyle().
					Foreground(theme.BgDark).
					Background(theme.Primary).
					Bold(true).
					Render(" ▸ " + label + " ")
			} else {
				line = lipgloss.NewStyle().
					Foreground(theme.Text).
					Render("   " + label)
			}
			lines = append(lines, line)
		}
		return lipgloss.NewStyle().
			Width(cw).
			Align(lipgloss.Center).
			Render(strings.Join(lines, "\n"))
	}

	selectedBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Bold(true).
		Foreground(theme.BgDark).
		Background(theme.Primary).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Primary).
		Padding(0, 1)

	normalBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)

	var buttons []string
	for i, label := range items {
		if i == selected {
			buttons = append(buttons, selectedBtn.Render("▸ "+label))
		} else {
			buttons = append(buttons, normalBtn.Render(label))
		}
	}
	block := strings.Join(buttons, "\n")

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(block)
}

// renderKeyBanner renders a warning when no LLM API key is configured.
func renderKeyBanner(cw int) string {
	return lipgloss.NewStyle().
		Foreground(theme.Accent).
		Width(cw).
		Align(lipgloss.Center).
		Render("⚠ Set an LLM API key for AI questions and advice (see wti --help)")
}

// renderQuote renders the motivational quote of the day.
func renderQuote(quote string, cw int) string {
	return lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Italic(true).
		Width(cw).
		Align(lipgloss.Center).
		Render("“" + quote + "”")
}

// renderUpdateNote renders a dim one-line update notification.
func renderUpdateNote(latestVersion string, cw int) string {
	text := fmt.Sprintf("New version %s available: run wti update", latestVersion)
	return lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Width(cw).
		Align(lipgloss.Center).
		Render(text)
}

// renderHubFrame wraps content in a double-border frame, centering
// vertically and horizontally within the given dimensions.
func renderHubFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width - 2).
		Height(height - 2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}
