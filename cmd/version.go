package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// version is stamped via -ldflags on release builds; source builds
// report (devel) and are excluded from self-updating.
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the langdrill version and platform",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("langdrill %s (%s/%s)\n", version, runtime.GOOS, runtime.GOARCH)
		if version != "(devel)" {
			fmt.Println("Run `langdrill update --check` to see if a newer release is available.")
		}
	},
}
