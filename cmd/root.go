package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ifedorova/langdrill/internal/catalog"
	"github.com/ifedorova/langdrill/internal/question"
	"github.com/ifedorova/langdrill/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "langdrill",
	Short: "Language drills in your terminal",
	Long:  "Langdrill — a terminal app for practicing a foreign language with short, focused exercises.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides LANGDRILL_DB env var)")
	rootCmd.PersistentFlags().String("catalog", "", "Path to a question catalog JSON file (overrides LANGDRILL_CATALOG env var)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then LANGDRILL_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveCatalogPath returns the catalog file path, or "" for the built-in
// demo catalog.
func resolveCatalogPath(cmd *cobra.Command) string {
	if p, _ := cmd.Flags().GetString("catalog"); p != "" {
		return p
	}
	return os.Getenv("LANGDRILL_CATALOG")
}

// loadQuestions loads the catalog and applies the session filter flags.
func loadQuestions(cmd *cobra.Command) ([]question.Question, error) {
	var qs []question.Question
	var err error

	if path := resolveCatalogPath(cmd); path != "" {
		qs, err = catalog.Load(path)
		if err != nil {
			return nil, fmt.Errorf("load catalog: %w", err)
		}
	} else {
		qs = catalog.Demo()
	}

	filter, err := filterFromFlags(cmd)
	if err != nil {
		return nil, err
	}
	return filter.Apply(qs), nil
}

// filterFromFlags builds a catalog filter from the play flags. Commands
// without those flags get the zero filter.
func filterFromFlags(cmd *cobra.Command) (catalog.Filter, error) {
	var f catalog.Filter

	if cmd.Flags().Lookup("variants") != nil {
		raw, _ := cmd.Flags().GetString("variants")
		if raw != "" {
			for _, part := range strings.Split(raw, ",") {
				v := question.Variant(strings.TrimSpace(part))
				if !v.Known() {
					return f, fmt.Errorf("unknown variant %q", part)
				}
				f.Variants = append(f.Variants, v)
			}
		}
	}

	if cmd.Flags().Lookup("level") != nil {
		raw, _ := cmd.Flags().GetString("level")
		if raw != "" {
			min, max, err := parseLevelRange(raw)
			if err != nil {
				return f, err
			}
			f.MinLevel, f.MaxLevel = min, max
		}
	}

	if cmd.Flags().Lookup("limit") != nil {
		f.Limit, _ = cmd.Flags().GetInt("limit")
	}

	return f, nil
}

// parseLevelRange parses "3" or "2-4" into a min/max pair.
func parseLevelRange(raw string) (int, int, error) {
	if lo, hi, ok := strings.Cut(raw, "-"); ok {
		min, err := strconv.Atoi(strings.TrimSpace(lo))
		if err != nil {
			return 0, 0, fmt.Errorf("invalid level range %q", raw)
		}
		max, err := strconv.Atoi(strings.TrimSpace(hi))
		if err != nil {
			return 0, 0, fmt.Errorf("invalid level range %q", raw)
		}
		return min, max, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid level %q", raw)
	}
	return n, n, nil
}

// newLogger returns a file logger when LANGDRILL_DEBUG names a path, and a
// disabled logger otherwise. The TUI owns the terminal, so debug output
// never goes to stderr.
func newLogger() zerolog.Logger {
	path := os.Getenv("LANGDRILL_DEBUG")
	if path == "" {
		return zerolog.New(io.Discard)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.New(io.Discard)
	}
	return zerolog.New(f).With().Timestamp().Logger().Level(zerolog.DebugLevel)
}
