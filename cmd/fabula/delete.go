package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <card>",
		Short: "Delete a card",
		Long: `Deletes a card and removes every reference to it from the remaining
cards, including the automatically maintained mirror entries.`,
		Args: cobra.ExactArgs(1),
		RunE: runDelete,
	}
}

func runDelete(cmd *cobra.Command, args []string) error {
	return withSave(func(d *Deps) error {
		card, err := resolveCard(d, args[0])
		if err != nil {
			return err
		}

		ok, err := d.Cards.HandleDelete(card.ID)
		if err != nil {
			return fmt.Errorf("deleting card: %w", err)
		}
		if !ok {
			return fmt.Errorf("card not found: %s", args[0])
		}

		fmt.Printf("Deleted %s %q (%s)\n", card.Type, card.Name, card.Ref())
		return nil
	})
}
