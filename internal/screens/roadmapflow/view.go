package roadmapflow

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/dev-hari-haran/Way-to-Industry/internal/catalog"
	"github.com/dev-hari-haran/Way-to-Industry/internal/roadmap"
	"github.com/dev-hari-haran/Way-to-Industry/internal/ui/components"
	"github.com/dev-hari-haran/Way-to-Industry/internal/ui/theme"
)

var buildFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

func (s *RoadmapFlowScreen) View(width, height int) string {
	if s.generating {
		return s.renderGenerating(width)
	}

	switch s.flow.Step() {
	case roadmap.StepSelect:
		return s.renderSelect(width, height)
	case roadmap.StepAssess:
		return s.renderAssess(width, height)
	default:
		return s.renderRoadmap(width, height)
	}
}

// window returns the [start, end) slice bounds that keep cursor visible
// within max rows.
func window(total, cursor, max int) (int, int) {
	if max <= 0 || total <= max {
		return 0, total
	}
	start := cursor - max/2
	if start < 0 {
		start = 0
	}
	end := start + max
	if end > total {
		end = total
		start = end - max
	}
	return start, end
}

func (s *RoadmapFlowScreen) renderSelect(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")

	heading := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("Where do you want to go?")
	b.WriteString(heading)
	b.WriteString("\n\n")

	maxRows := height - 5
	start, end := window(len(s.entries), s.selectIdx, maxRows)

	if start > 0 {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("▲ more")))
		b.WriteString("\n")
	}

	for i := start; i < end; i++ {
		entry := s.entries[i]

		tag := lipgloss.NewStyle().Foreground(theme.Secondary).Render("[role]")
		if entry.Kind == catalog.KindSkill {
			tag = lipgloss.NewStyle().Foreground(theme.Code).Render("[skill]")
		}

		prefix := "  "
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selectIdx {
			prefix = "▸ "
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}

		line := fmt.Sprintf("%s%-28s %s  %d topics", prefix, entry.Label, tag, entry.TopicCount())
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	if end < len(s.entries) {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("▼ more")))
		b.WriteString("\n")
	}

	return b.String()
}

func (s *RoadmapFlowScreen) renderAssess(width, height int) string {
	role, ok := s.flow.Role()
	if !ok {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")

	heading := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(fmt.Sprintf("Rate yourself on %s topics", role.Label))
	b.WriteString(heading)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("1 star = new to it, 5 stars = could teach it. Leave blank if unsure."))
	b.WriteString("\n\n")

	maxRows := height - 9
	start, end := window(len(s.ratings), clamp(s.focus, 0, len(s.ratings)-1), maxRows)

	if start > 0 {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("▲ more")))
		b.WriteString("\n")
	}

	for i := start; i < end; i++ {
		topic := role.Topics[i]
		focused := i == s.focus

		prefix := "  "
		topicStyle := lipgloss.NewStyle().Foreground(theme.Text)
		if focused {
			prefix = "▸ "
			topicStyle = topicStyle.Bold(true)
		}

		line := fmt.Sprintf("%s%-38s %s", prefix, truncateTopic(topic, 38), s.ratings[i].View(focused))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, topicStyle.Render(line)))
		b.WriteString("\n")
	}

	if end < len(s.ratings) {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("▼ more")))
		b.WriteString("\n")
	}

	b.WriteString("\n")

	// Context row.
	ctxPrefix := "  "
	if s.contextFocused() {
		ctxPrefix = "▸ "
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		ctxPrefix+"Context: "+s.ctxInput.View()))
	b.WriteString("\n\n")

	// Build button.
	btn := components.NewButton("BUILD MY ROADMAP", s.buildFocused())
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, btn.View()))

	return b.String()
}

func (s *RoadmapFlowScreen) renderGenerating(width int) string {
	frame := buildFrames[s.genTick%len(buildFrames)]
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("\n\n\n  %s Mapping your route to industry...", frame))
}

func (s *RoadmapFlowScreen) renderRoadmap(width, height int) string {
	role, ok := s.flow.Role()
	if !ok {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")

	// Readiness bar.
	bar := components.NewProgressBar(
		fmt.Sprintf("  %s readiness", role.Label),
		float64(s.flow.Readiness())/100,
		true,
		min(width-8, 70),
	)
	b.WriteString(bar.View())
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", maxInt(width-4, 0))))
	b.WriteString("\n")

	items := s.flow.Items()

	listRows := height - 8
	if s.advice != "" {
		listRows = height - 12
	}
	start, end := window(len(items), s.cursor, listRows)

	if start > 0 {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("▲ more")))
		b.WriteString("\n")
	}

	for i := start; i < end; i++ {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			s.renderItem(items[i], i == s.cursor, items[i].Recommended)))
		b.WriteString("\n")
	}

	if end < len(items) {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("▼ more")))
		b.WriteString("\n")
	}

	// Mentor advice.
	b.WriteString("\n")
	b.WriteString(s.renderAdvice(width))

	// Related paths + quote.
	if len(s.related) > 0 {
		var chips []string
		for _, r := range s.related {
			chips = append(chips, components.Chip(r.Label, false))
		}
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Related paths:  ")+strings.Join(chips, " ")))
		b.WriteString("\n")
	}

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Italic(true).
		Render("“" + s.quote + "”"))

	return b.String()
}

func (s *RoadmapFlowScreen) renderItem(item roadmap.Item, selected, recommended bool) string {
	if item.Kind == roadmap.ItemMilestone {
		return lipgloss.NewStyle().
			Foreground(theme.Accent).
			Render(fmt.Sprintf("    ◈ Milestone %d: %s", item.Ordinal, item.Topic))
	}

	check := "[ ]"
	if item.Completed {
		check = "[✓]"
	}

	prefix := "  "
	style := lipgloss.NewStyle().Foreground(theme.Text)
	if item.Completed {
		style = lipgloss.NewStyle().Foreground(theme.TextDim)
	}
	if selected {
		prefix = "▸ "
		style = style.Bold(true)
		if !item.Completed {
			style = style.Foreground(theme.Primary)
		}
	}

	line := fmt.Sprintf("%s%s %s", prefix, check, item.Topic)
	if recommended {
		line += lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("  ← start here")
	}
	return style.Render(line)
}

func (s *RoadmapFlowScreen) renderAdvice(width int) string {
	text := s.advice
	style := lipgloss.NewStyle().Foreground(theme.Text)
	if text == "" {
		text = "Your AI mentor is thinking..."
		style = lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true)
	}

	wrapped := lipgloss.NewStyle().
		Width(min(width-10, 72)).
		Render(style.Render(text))

	panel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1).
		Render(wrapped)

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, panel) + "\n"
}

func truncateTopic(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 3 {
		return s[:n]
	}
	return s[:n-3] + "..."
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
