package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Search cards by name or description",
		Long:  "Case-insensitive substring search over card names and descriptions.",
		Args:  cobra.ExactArgs(1),
		RunE:  runSearch,
	}
}

func runSearch(cmd *cobra.Command, args []string) error {
	return withDeps(func(d *Deps) error {
		cards := d.Cards.HandleSearch(args[0])
		if len(cards) == 0 {
			fmt.Printf("No cards match %q.\n", args[0])
			return nil
		}
		printCardTable(cards)
		return nil
	})
}
