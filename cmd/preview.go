package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ifedorova/langdrill/internal/catalog"
	"github.com/ifedorova/langdrill/internal/question"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Validate and list a question catalog (no database)",
	Long: `Load a catalog file, run schema and integrity checks, and print a
per-variant breakdown. Useful when authoring new exercise files.`,
	RunE: runPreview,
}

func runPreview(cmd *cobra.Command, args []string) error {
	path := resolveCatalogPath(cmd)

	var qs []question.Question
	var err error
	if path == "" {
		fmt.Println("No catalog given, previewing the built-in demo catalog.")
		qs = catalog.Demo()
	} else {
		qs, err = catalog.Load(path)
		if err != nil {
			return fmt.Errorf("catalog is invalid: %w", err)
		}
		fmt.Printf("Catalog %s is valid.\n", path)
	}

	byVariant := make(map[question.Variant]int)
	minLevel, maxLevel := 0, 0
	for _, q := range qs {
		byVariant[q.Variant]++
		if minLevel == 0 || q.DifficultyLevel < minLevel {
			minLevel = q.DifficultyLevel
		}
		if q.DifficultyLevel > maxLevel {
			maxLevel = q.DifficultyLevel
		}
	}

	fmt.Printf("\n%d questions, levels %d-%d\n\n", len(qs), minLevel, maxLevel)
	for _, v := range question.AllVariants {
		if n := byVariant[v]; n > 0 {
			fmt.Printf("  %-24s %d\n", string(v), n)
		}
	}

	return nil
}
