package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/dev-hari-haran/Way-to-Industry/internal/advisor"
	"github.com/dev-hari-haran/Way-to-Industry/internal/app"
	"github.com/dev-hari-haran/Way-to-Industry/internal/interview"
	"github.com/dev-hari-haran/Way-to-Industry/internal/llm"
	"github.com/dev-hari-haran/Way-to-Industry/internal/selfupdate"
	"github.com/dev-hari-haran/Way-to-Industry/internal/store"
)

// runApp opens the store, builds dependencies, and launches the TUI.
// roleID deep-links into the roadmap assessment when non-empty.
func runApp(cmd *cobra.Command, roleID string) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	eventRepo := st.EventRepo()
	opts := app.Options{
		EventRepo: eventRepo,
		RoleID:    roleID,
		Checker:   selfupdate.NewChecker(selfupdate.WithCurrentVersion(version), selfupdate.WithTimeout(5*time.Second)),
	}

	provider, err := llm.NewProviderFromEnv(ctx, eventRepo)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Interview questions fall back to the built-in set; mentor advice is disabled.")
	}
	if provider != nil {
		opts.Generator = interview.NewGenerator(provider, interview.DefaultConfig())
	}
	// A nil provider still yields a working advisor that explains
	// what is missing.
	opts.Advisor = advisor.NewService(provider, advisor.DefaultConfig())

	return app.Run(opts)
}
