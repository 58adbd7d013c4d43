package cmd

import (
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a drill session",
	Long: `Start a drill session over the loaded catalog.

Filters narrow the session:
  langdrill play --variants translate,gap_fill
  langdrill play --level 2-4 --limit 10`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func init() {
	playCmd.Flags().String("variants", "", "Comma-separated variant names to include")
	playCmd.Flags().String("level", "", "Difficulty level or range, e.g. 3 or 2-4")
	playCmd.Flags().Int("limit", 0, "Maximum number of questions (0 = all)")
}
