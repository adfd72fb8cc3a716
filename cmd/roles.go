package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dev-hari-haran/Way-to-Industry/internal/catalog"
)

var rolesCmd = &cobra.Command{
	Use:   "roles",
	Short: "List the roles and skill tracks in the catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		kindVal, _ := cmd.Flags().GetString("kind")

		var entries []catalog.Role
		switch strings.ToLower(kindVal) {
		case "":
			entries = catalog.All()
		case "role":
			entries = catalog.ByKind(catalog.KindRole)
		case "skill":
			entries = catalog.ByKind(catalog.KindSkill)
		default:
			return fmt.Errorf("invalid kind %q: must be role or skill", kindVal)
		}

		// Header.
		fmt.Printf("%-24s  %-28s  %-6s  %s\n", "ID", "Label", "Kind", "Topics")
		fmt.Println(strings.Repeat("─", 70))

		for _, e := range entries {
			fmt.Printf("%-24s  %-28s  %-6s  %d\n",
				e.ID, e.Label, strings.ToLower(string(e.Kind)), e.TopicCount())
		}

		fmt.Printf("\n%d entries\n", len(entries))
		return nil
	},
}

func init() {
	rolesCmd.Flags().String("kind", "", "Filter by kind: role or skill")
}
