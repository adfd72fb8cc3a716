package interviewrun

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/dev-hari-haran/Way-to-Industry/internal/interview"
	"github.com/dev-hari-haran/Way-to-Industry/internal/ui/components"
	"github.com/dev-hari-haran/Way-to-Industry/internal/ui/theme"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

func (s *InterviewScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, s.errMsg)
	}
	if s.result != nil {
		return s.renderScoreCard(width)
	}
	if s.showConfirm {
		return renderAbandonConfirm(width)
	}
	if s.engine.Phase() == interview.PhaseLoading {
		return s.renderLoading(width)
	}
	return s.renderQuestion(width)
}

func (s *InterviewScreen) renderLoading(width int) string {
	frame := spinnerFrames[s.spinnerTick%len(spinnerFrames)]
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("\n\n\n  %s Preparing your %s interview...", frame, s.topic))
}

func (s *InterviewScreen) renderQuestion(width int) string {
	q, err := s.engine.Current()
	if err != nil {
		return renderError(width, err.Error())
	}

	var b strings.Builder

	// Topic line + progress.
	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Topic: %s", s.topic))

	kindTag := lipgloss.NewStyle().Foreground(theme.Primary).Render("MCQ")
	if q.Kind == interview.KindCode {
		kindTag = lipgloss.NewStyle().Foreground(theme.Code).Render("CODE")
	}
	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Q %d/%d  ", s.engine.Index()+1, interview.QuestionsPerSession)) + kindTag

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}

	b.WriteString(infoLine)
	b.WriteString("\n")

	percent := float64(s.engine.Index()) / float64(interview.QuestionsPerSession)
	bar := components.NewProgressBar("", percent, false, width-8)
	b.WriteString("  " + bar.View())
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	if q.Kind == interview.KindMCQ {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.mc.View()))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Arrows to move, Space to pick, Enter to submit"))
	} else {
		promptStyle := lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Text).
			Bold(true)
		b.WriteString(promptStyle.Render(q.Prompt))
		b.WriteString("\n\n")

		answerLine := lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Render("Answer: " + s.input.View())
		b.WriteString(answerLine)

		if q.Hint != "" {
			b.WriteString("\n\n")
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Foreground(theme.TextDim).
				Italic(true).
				Render("Hint: " + q.Hint))
		}
	}

	return b.String()
}

func (s *InterviewScreen) renderScoreCard(width int) string {
	r := s.result

	var b strings.Builder
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("Interview complete!"))
	b.WriteString("\n\n")

	scoreStyle := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(labelColor(r.Score)).
		Bold(true)
	b.WriteString(scoreStyle.Render(fmt.Sprintf("%d / 100", r.Score)))
	b.WriteString("\n")
	b.WriteString(scoreStyle.Render(r.Label))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%s  ·  %s", r.Topic, r.Timestamp.Format("Jan 02, 15:04"))))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press any key to continue..."))

	return b.String()
}

func labelColor(score int) color.Color {
	switch {
	case score >= 70:
		return theme.Success
	case score >= 40:
		return theme.Accent
	default:
		return theme.Error
	}
}

func renderAbandonConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("Abandon this interview?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Nothing will be scored or recorded."))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render("[Y] Yes, abandon"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No, keep going"))

	return b.String()
}

func renderError(width int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", errMsg))
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
