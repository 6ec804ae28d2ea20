package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRenumberCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "renumber",
		Short: "Assign numbers to cards that are missing one",
		Long: `Assigns fresh sequential numbers, per card type and in creation order,
to every card whose number is missing, invalid or duplicated. Cards that
already hold a unique valid number keep it.`,
		RunE: runRenumber,
	}
}

func runRenumber(cmd *cobra.Command, args []string) error {
	return withSave(func(d *Deps) error {
		n := d.Cards.HandleRenumber()
		if n == 0 {
			fmt.Println("All cards already numbered")
			return nil
		}
		fmt.Printf("Renumbered %d cards\n", n)
		return nil
	})
}
