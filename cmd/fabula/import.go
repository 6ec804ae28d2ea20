package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import cards from a transfer file",
		Long: `Merges a transfer file into the collection. Imported cards receive
fresh ids; references between them are rewritten, and references that do
not resolve within the file are dropped.`,
		Args: cobra.ExactArgs(1),
		RunE: runImport,
	}
}

func runImport(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading import file: %w", err)
	}

	return withSave(func(d *Deps) error {
		result, err := d.Transfer.HandleImport(data)
		if err != nil {
			return fmt.Errorf("importing cards: %w", err)
		}

		fmt.Printf("Imported %d cards", result.Imported)
		if result.Skipped > 0 {
			fmt.Printf(", skipped %d", result.Skipped)
		}
		if result.Renumbered > 0 {
			fmt.Printf(", renumbered %d", result.Renumbered)
		}
		fmt.Println()

		for _, e := range result.Errors {
			fmt.Fprintf(os.Stderr, "  skipped: %v\n", e)
		}
		return nil
	})
}
