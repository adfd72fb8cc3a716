package dashboard

import (
	"context"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/dev-hari-haran/Way-to-Industry/internal/advisor"
	"github.com/dev-hari-haran/Way-to-Industry/internal/catalog"
	"github.com/dev-hari-haran/Way-to-Industry/internal/interview"
	"github.com/dev-hari-haran/Way-to-Industry/internal/roadmap"
	"github.com/dev-hari-haran/Way-to-Industry/internal/router"
	"github.com/dev-hari-haran/Way-to-Industry/internal/screen"
	"github.com/dev-hari-haran/Way-to-Industry/internal/screens/history"
	interviewscreen "github.com/dev-hari-haran/Way-to-Industry/internal/screens/interviewrun"
	"github.com/dev-hari-haran/Way-to-Industry/internal/screens/placeholder"
	"github.com/dev-hari-haran/Way-to-Industry/internal/screens/practice"
	"github.com/dev-hari-haran/Way-to-Industry/internal/screens/roadmapflow"
	"github.com/dev-hari-haran/Way-to-Industry/internal/selfupdate"
	"github.com/dev-hari-haran/Way-to-Industry/internal/store"
	"github.com/dev-hari-haran/Way-to-Industry/internal/ui/components"
)

// Deps carries the shared services the dashboard hands to sub-screens.
type Deps struct {
	Flow      *roadmap.Flow
	Engine    *interview.Engine
	Generator interview.Generator // nil when no provider is configured
	Advisor   *advisor.Service
	EventRepo store.EventRepo // nil in ephemeral mode
	Checker   *selfupdate.Checker
}

type streakLoadedMsg struct {
	Streak int
}

type updateNoteMsg struct {
	Version string
}

// DashboardScreen is the hub the app lands on after the splash.
type DashboardScreen struct {
	deps       Deps
	menu       components.Menu
	menuLabels []string
	streak     int
	updateNote string
	quote      string
}

var _ screen.Screen = (*DashboardScreen)(nil)

// New creates a new DashboardScreen.
func New(deps Deps) *DashboardScreen {
	menuLabels := []string{"CAREER ROADMAP", "QUICK PRACTICE", "ACTIVITY LOG", "SIGN IN / SIGN UP", "EXIT"}

	items := []components.MenuItem{
		{Label: menuLabels[0], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: roadmapflow.New(deps.Flow, deps.Advisor),
				}
			}
		}},
		{Label: menuLabels[1], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: practice.New(func(topic string, kind catalog.Kind) screen.Screen {
						return interviewscreen.New(deps.Engine, deps.Generator, deps.EventRepo, topic, kind)
					}),
				}
			}
		}},
		{Label: menuLabels[2], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(deps.Engine, deps.EventRepo)}
			}
		}},
		{Label: menuLabels[3], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: placeholder.New("Sign In")}
			}
		}},
		{Label: menuLabels[4], Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &DashboardScreen{
		deps:       deps,
		menu:       components.NewMenu(items),
		menuLabels: menuLabels,
		quote:      roadmap.PickQuote(time.Now().UnixNano()),
	}
}

func (d *DashboardScreen) Init() tea.Cmd {
	return tea.Batch(d.loadStreak(), d.checkUpdate())
}

// loadStreak reads distinct practice days from the event log and counts
// the run of consecutive days ending today or yesterday.
func (d *DashboardScreen) loadStreak() tea.Cmd {
	repo := d.deps.EventRepo
	if repo == nil {
		return nil
	}
	return func() tea.Msg {
		days, err := repo.PracticeDays(context.Background())
		if err != nil {
			return streakLoadedMsg{}
		}
		return streakLoadedMsg{Streak: StreakLength(days, time.Now().UTC())}
	}
}

func (d *DashboardScreen) checkUpdate() tea.Cmd {
	checker := d.deps.Checker
	if checker == nil {
		return nil
	}
	return func() tea.Msg {
		latest, available, err := checker.UpdateAvailable(context.Background())
		if err != nil || !available {
			return nil
		}
		return updateNoteMsg{Version: latest}
	}
}

// StreakLength counts the consecutive practice days ending at now's day
// or the day before. days must be YYYY-MM-DD strings sorted newest first.
func StreakLength(days []string, now time.Time) int {
	if len(days) == 0 {
		return 0
	}

	cursor := now.Truncate(24 * time.Hour)
	head, err := time.Parse("2006-01-02", days[0])
	if err != nil {
		return 0
	}

	// A streak survives until a full day passes without practice.
	gap := int(cursor.Sub(head).Hours() / 24)
	if gap > 1 {
		return 0
	}

	streak := 1
	prev := head
	for _, s := range days[1:] {
		day, err := time.Parse("2006-01-02", s)
		if err != nil {
			break
		}
		if int(prev.Sub(day).Hours()/24) != 1 {
			break
		}
		streak++
		prev = day
	}
	return streak
}

func (d *DashboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case streakLoadedMsg:
		d.streak = msg.Streak
		return d, nil
	case updateNoteMsg:
		d.updateNote = msg.Version
		return d, nil
	}

	var cmd tea.Cmd
	d.menu, cmd = d.menu.Update(msg)
	return d, cmd
}

// Streak returns the current consecutive-day practice streak.
func (d *DashboardScreen) Streak() int { return d.streak }

func (d *DashboardScreen) View(width, height int) string {
	termHeight := height + 8
	compact := termHeight < 30 || width < 100

	cw := contentWidth(width)

	var sections []string

	sections = append(sections, renderTitle(cw, compact))

	if d.deps.Generator == nil {
		sections = append(sections, renderKeyBanner(cw))
	}

	sections = append(sections, renderStatsBar(
		d.deps.Flow.Readiness(), d.streak, len(d.deps.Engine.History()), cw, compact))

	if !compact {
		if recent := renderRecentActivity(d.deps.Engine.History(), cw); recent != "" {
			sections = append(sections, recent)
		}
	}

	sections = append(sections, renderDashboardMenu(d.menuLabels, d.menu.Selected, cw, compact))

	if !compact {
		sections = append(sections, renderQuote(d.quote, cw))
	}

	if d.updateNote != "" {
		sections = append(sections, renderUpdateNote(d.updateNote, cw))
	}

	content := strings.Join(sections, "\n\n")

	return renderHubFrame(content, width, height)
}

func (d *DashboardScreen) Title() string {
	return "Dashboard"
}
