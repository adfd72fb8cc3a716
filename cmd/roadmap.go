package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dev-hari-haran/Way-to-Industry/internal/catalog"
)

var roadmapCmd = &cobra.Command{
	Use:   "roadmap [role-id]",
	Short: "Jump straight into a roadmap assessment",
	Long: "Launch the app directly in the self-assessment for the given role,\n" +
		"skipping the splash and dashboard. Run 'wti roles' for valid IDs.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		roleID := args[0]
		if !catalog.Exists(roleID) {
			return fmt.Errorf("unknown role %q (run 'wti roles' to list them)", roleID)
		}
		return runApp(cmd, roleID)
	},
}
