package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ifedorova/langdrill/internal/selfupdate"
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update langdrill to the latest version",
	RunE: func(cmd *cobra.Command, args []string) error {
		checker := selfupdate.NewChecker(selfupdate.WithTimeout(2 * time.Minute))

		ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
		defer cancel()

		if check, _ := cmd.Flags().GetBool("check"); check {
			result, err := checker.Check(ctx, &selfupdate.CheckInput{Version: version})
			if err != nil {
				return err
			}
			if result.UpdateAvailable {
				fmt.Printf("Update available: %s (current %s)\n", result.LatestVersion, version)
				fmt.Println("Run `langdrill update` to install it.")
			} else {
				fmt.Println("Already running the latest version.")
			}
			return nil
		}

		err := checker.Update(ctx, &selfupdate.UpdateInput{
			CurrentVersion: version,
		}, func(_ selfupdate.Stage, detail string) {
			fmt.Println(detail)
		})

		if err == nil {
			return nil
		}

		if errors.Is(err, selfupdate.ErrDevBuild) {
			fmt.Println("Cannot update a development build. Install a release build first.")
			return nil
		}
		if errors.Is(err, selfupdate.ErrAlreadyLatest) {
			fmt.Println("Already running the latest version.")
			return nil
		}
		if os.IsPermission(err) {
			return fmt.Errorf("%w\n\nTry running: sudo langdrill update", err)
		}

		return err
	},
}

func init() {
	updateCmd.Flags().Bool("check", false, "Only check for a newer release, do not install")
}
