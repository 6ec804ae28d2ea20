package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newExportCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all cards to a transfer file",
		Long: `Exports the whole collection as JSON. The file can be imported into
another session, where every card receives a fresh id.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default: stdout)")

	return cmd
}

func runExport(output string) error {
	return withDeps(func(d *Deps) error {
		data, err := d.Transfer.HandleExport()
		if err != nil {
			return fmt.Errorf("exporting cards: %w", err)
		}

		if output == "" {
			_, err := os.Stdout.Write(data)
			return err
		}

		if err := os.WriteFile(output, data, 0644); err != nil {
			return fmt.Errorf("writing export file: %w", err)
		}
		fmt.Printf("Exported to %s\n", output)
		return nil
	})
}
