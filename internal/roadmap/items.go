package roadmap

import "math"

// MilestoneInterval is how many topics sit between project milestones.
const MilestoneInterval = 4

// ItemKind distinguishes real curriculum topics from the synthetic
// project-milestone rows interleaved into the display list.
type ItemKind int

const (
	ItemTopic ItemKind = iota
	ItemMilestone
)

// Item is one row of the rendered roadmap.
type Item struct {
	Kind        ItemKind
	Topic       string // the topic text; for milestones, the topic just completed
	Ordinal     int    // 1-based topic position; milestones share their topic's ordinal
	Completed   bool   // topics only, milestones are never scored
	Recommended bool   // uncompleted and reachable: first in order, or predecessor done
}

// Items returns the display list for the roadmap view: every topic in
// curriculum order with a project milestone inserted after each
// MilestoneInterval-th topic. Recomputed from current state on each call.
func (f *Flow) Items() []Item {
	if !f.hasRole {
		return nil
	}
	items := make([]Item, 0, len(f.role.Topics)+len(f.role.Topics)/MilestoneInterval)
	for i, t := range f.role.Topics {
		items = append(items, Item{
			Kind:        ItemTopic,
			Topic:       t,
			Ordinal:     i + 1,
			Completed:   f.completed[t],
			Recommended: f.recommended(i),
		})
		if (i+1)%MilestoneInterval == 0 {
			items = append(items, Item{
				Kind:    ItemMilestone,
				Topic:   t,
				Ordinal: i + 1,
			})
		}
	}
	return items
}

// Readiness returns the completion percentage of the selected role's
// curriculum, rounded to the nearest integer. Milestones do not count.
func (f *Flow) Readiness() int {
	if !f.hasRole {
		return 0
	}
	total := len(f.role.Topics)
	if total == 0 {
		total = 1
	}
	done := 0
	for _, t := range f.role.Topics {
		if f.completed[t] {
			done++
		}
	}
	return int(math.Round(100 * float64(done) / float64(total)))
}

// recommended reports whether the topic at index i is a suggested next
// step: not yet completed, and either first in the curriculum or
// directly after a completed topic. Completion gaps can leave several
// topics recommended at once.
func (f *Flow) recommended(i int) bool {
	t := f.role.Topics[i]
	if f.completed[t] {
		return false
	}
	return i == 0 || f.completed[f.role.Topics[i-1]]
}

// NextRecommended returns the first recommended topic in curriculum
// order. The second return is false when every topic is completed or no
// role is selected.
func (f *Flow) NextRecommended() (string, bool) {
	if !f.hasRole {
		return "", false
	}
	for i, t := range f.role.Topics {
		if f.recommended(i) {
			return t, true
		}
	}
	return "", false
}
