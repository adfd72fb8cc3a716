package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dev-hari-haran/Way-to-Industry/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show interview practice statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := cmd.Context()
		repo := st.EventRepo()

		stats, err := repo.InterviewStatsByTopic(ctx)
		if err != nil {
			return err
		}
		if len(stats) == 0 {
			fmt.Println("No interviews recorded yet. Run 'wti' and try a quick practice session.")
			return nil
		}

		days, err := repo.PracticeDays(ctx)
		if err != nil {
			return err
		}

		fmt.Printf("%-28s  %-6s  %9s  %4s  %4s\n", "Topic", "Kind", "Sessions", "Avg", "Best")
		fmt.Println(strings.Repeat("─", 60))

		var total int
		for _, s := range stats {
			total += s.Count
			fmt.Printf("%-28s  %-6s  %9d  %4d  %4d\n",
				s.Topic, strings.ToLower(s.Kind), s.Count, s.AvgScore, s.BestScore)
		}

		fmt.Printf("\n%d interviews across %d practice days\n", total, len(days))
		return nil
	},
}
