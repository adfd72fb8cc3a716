package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/dev-hari-haran/Way-to-Industry/internal/ui/theme"
)

// StarRating is a 1..Max star picker for self-assessment. Zero means
// not yet rated.
type StarRating struct {
	Max   int
	Value int
}

// NewStarRating creates an unrated star picker.
func NewStarRating(max int) StarRating {
	return StarRating{Max: max}
}

// Update handles keyboard input: left/right adjust, 1..9 set directly,
// backspace clears.
func (s StarRating) Update(msg tea.Msg) (StarRating, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch key := kmsg.String(); key {
	case "left", "h":
		if s.Value > 1 {
			s.Value--
		}
	case "right", "l":
		if s.Value < s.Max {
			s.Value++
		}
	case "backspace":
		s.Value = 0
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			n := int(key[0] - '0')
			if n <= s.Max {
				s.Value = n
			}
		}
	}

	return s, nil
}

// View renders the stars, highlighted when the row is focused.
func (s StarRating) View(focused bool) string {
	var b strings.Builder
	for i := 1; i <= s.Max; i++ {
		if i <= s.Value {
			b.WriteString("★ ")
		} else {
			b.WriteString("☆ ")
		}
	}
	out := strings.TrimRight(b.String(), " ")

	style := lipgloss.NewStyle().Foreground(theme.TextDim)
	if s.Value > 0 {
		style = lipgloss.NewStyle().Foreground(theme.Accent)
	}
	if focused {
		style = style.Bold(true)
	}
	return style.Render(out)
}

// Rated reports whether a value has been picked.
func (s StarRating) Rated() bool {
	return s.Value > 0
}
