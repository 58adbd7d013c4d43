package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ifedorova/langdrill/internal/app"
	"github.com/ifedorova/langdrill/internal/store"
)

// runApp opens the store, loads the catalog, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	logger := newLogger()

	questions, err := loadQuestions(cmd)
	if err != nil {
		return err
	}

	opts := app.Options{
		Questions: questions,
		Logger:    logger,
	}

	// History is optional; the drill still works if the store fails to open.
	dbPath, err := resolveDBPath(cmd)
	if err == nil {
		st, err := store.Open(dbPath)
		if err == nil {
			defer st.Close()
			repo, repoErr := st.EventRepo()
			if repoErr == nil {
				opts.EventRepo = repo
			} else {
				logger.Warn().Err(repoErr).Msg("event repo unavailable")
			}
		} else {
			fmt.Fprintln(os.Stderr, "History unavailable:", err)
			logger.Warn().Err(err).Str("path", dbPath).Msg("store open failed")
		}
	}

	logger.Info().Int("questions", len(questions)).Msg("starting app")
	return app.Run(opts)
}
