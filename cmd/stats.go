package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ifedorova/langdrill/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show practice statistics from the history log",
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

		repo, err := st.EventRepo()
		if err != nil {
			return fmt.Errorf("event repo: %w", err)
		}

		ctx := context.Background()

		stats, err := repo.VariantStats(ctx)
		if err != nil {
			return fmt.Errorf("variant stats: %w", err)
		}
		if len(stats) == 0 {
			fmt.Println("No practice history yet. Run `langdrill play` first.")
			return nil
		}

		fmt.Println("Accuracy by exercise type:")
		for _, vs := range stats {
			pct := float64(vs.Correct) / float64(vs.Attempts) * 100
			fmt.Printf("  %-24s %4d attempts   %5.1f%%\n", vs.Variant, vs.Attempts, pct)
		}

		sessions, err := repo.QuerySessionSummaries(ctx, store.QueryOpts{Limit: 10})
		if err != nil {
			return fmt.Errorf("session summaries: %w", err)
		}

		fmt.Println("\nRecent sessions:")
		for _, s := range sessions {
			status := "unfinished"
			if s.Finished {
				status = fmt.Sprintf("%d/%d correct in %ds",
					s.CorrectAnswers, s.QuestionsAnswered, s.DurationSecs)
			}
			fmt.Printf("  %s   %s\n", s.StartedAt.Format("2006-01-02 15:04"), status)
		}

		return nil
	},
}
