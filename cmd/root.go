package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/dev-hari-haran/Way-to-Industry/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "wti",
	Short: "Career guidance for developers, in the terminal",
	Long: "Way to Industry: pick a target role, self-assess the curriculum,\n" +
		"work a personalised roadmap, and rehearse with AI mock interviews.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, "")
	},
}

func Execute() error {
	// A local .env is optional; missing files are fine.
	_ = godotenv.Load()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides WTI_DB env var)")

	rootCmd.AddCommand(roadmapCmd)
	rootCmd.AddCommand(rolesCmd)
	rootCmd.AddCommand(interviewCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then WTI_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
