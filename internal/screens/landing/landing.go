package landing

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/dev-hari-haran/Way-to-Industry/internal/router"
	"github.com/dev-hari-haran/Way-to-Industry/internal/screen"
	"github.com/dev-hari-haran/Way-to-Industry/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	phase1End    = 500 * time.Millisecond
	phase2End    = 1500 * time.Millisecond
	totalDur     = 3000 * time.Millisecond
)

const rocketArt = `      ▲
     ╱█╲
    ╱███╲
    │▓▓▓│
    │▓◉▓│
    │▓▓▓│
   ╱│▓▓▓│╲
  ╱═╧═══╧═╲
     ╱▲╲`

// sparkle frames cycle around the rocket
var sparkleFrames = []string{"★", "✦"}

type tickMsg time.Time

// LandingScreen shows a splash animation before transitioning to the
// dashboard. Any key skips ahead.
type LandingScreen struct {
	nextFactory  func() screen.Screen
	elapsed      time.Duration
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*LandingScreen)(nil)

// New creates a LandingScreen that will transition to the screen produced by nextFactory.
func New(nextFactory func() screen.Screen) *LandingScreen {
	return &LandingScreen{
		nextFactory: nextFactory,
	}
}

func (l *LandingScreen) Title() string {
	return ""
}

func (l *LandingScreen) Init() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (l *LandingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if l.elapsed < totalDur {
			l.elapsed += tickInterval
		}
		l.tickCount++
		return l, tea.Tick(tickInterval, func(t time.Time) tea.Msg {
			return tickMsg(t)
		})

	case tea.KeyPressMsg:
		// Any key skips the remainder of the animation.
		return l, l.transition()
	}

	return l, nil
}

func (l *LandingScreen) transition() tea.Cmd {
	if l.transitioned {
		return nil
	}
	l.transitioned = true
	next := l.nextFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (l *LandingScreen) View(width, height int) string {
	var sections []string

	rocketStyle := lipgloss.NewStyle().Foreground(theme.Primary)

	// Phase 1+: rocket
	rendered := rocketStyle.Render(rocketArt)

	// Phase 2+: sparkles trailing the rocket
	if l.elapsed >= phase1End {
		frame := l.tickCount % len(sparkleFrames)
		sparkle := sparkleFrames[frame]

		accentStyle := lipgloss.NewStyle().Foreground(theme.Accent)
		secondaryStyle := lipgloss.NewStyle().Foreground(theme.Secondary)

		s1 := accentStyle.Render(sparkle)
		s2 := secondaryStyle.Render(sparkle)

		lines := strings.Split(rendered, "\n")
		if len(lines) > 1 {
			lines[1] = s1 + "  " + lines[1] + "  " + s2
		}
		if len(lines) > 4 {
			lines[4] = s2 + "  " + lines[4] + "  " + s1
		}
		if len(lines) > 7 {
			lines[7] = s1 + "  " + lines[7] + "  " + s2
		}
		rendered = strings.Join(lines, "\n")
	}

	sections = append(sections, rendered)

	// Phase 3+: banner + tagline + hint
	if l.elapsed >= phase2End {
		sections = append(sections, "")
		sections = append(sections, RenderBanner(width))
		sections = append(sections, "")

		tagline := lipgloss.NewStyle().
			Foreground(theme.Text).
			Bold(true).
			Render("Chart your path into tech.")
		sections = append(sections, tagline)

		sections = append(sections, "")
		hint := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("press any key to continue")
		sections = append(sections, hint)
	}

	content := strings.Join(sections, "\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
