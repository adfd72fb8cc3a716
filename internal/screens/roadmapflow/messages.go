package roadmapflow

import "time"

// generatedMsg fires after the roadmap build pacing delay.
type generatedMsg struct{}

// genTickMsg animates the build spinner.
type genTickMsg time.Time

// advicePollMsg drives polling for the async mentor advice.
type advicePollMsg time.Time
