package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fabula-app/fabula/internal/domain/entities"
)

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <card>",
		Short: "Show a card's details and relationships",
		Long: `Shows a single card. Cards are addressed by ref (c3, l1, e12) or by
full id. Viewing a card records it in the navigation history.`,
		Args: cobra.ExactArgs(1),
		RunE: runShow,
	}
}

func runShow(cmd *cobra.Command, args []string) error {
	return withSave(func(d *Deps) error {
		card, err := resolveCard(d, args[0])
		if err != nil {
			return err
		}
		d.Cards.HandleVisit(card.ID)

		fmt.Printf("%s  %s\n", card.Ref(), card.Name)
		fmt.Printf("  type:    %s\n", card.Type)
		fmt.Printf("  id:      %s\n", card.ID)
		if card.Summary != "" {
			fmt.Printf("  summary: %s\n", card.Summary)
		}
		if card.Description != "" {
			fmt.Printf("  description: %s\n", card.Description)
		}
		if card.Notes != "" {
			fmt.Printf("  notes:   %s\n", card.Notes)
		}
		if len(card.Tags) > 0 {
			fmt.Printf("  tags:    %v\n", card.Tags)
		}
		fmt.Printf("  created: %s\n", card.CreatedAt.Format("2006-01-02 15:04"))
		fmt.Printf("  updated: %s\n", card.UpdatedAt.Format("2006-01-02 15:04"))

		for _, f := range entities.FieldsFor(card.Type) {
			ids := card.Relations.Get(f)
			if len(ids) == 0 {
				continue
			}
			fmt.Printf("  %s:\n", f)
			for _, id := range ids {
				if target := d.Cards.HandleGet(id); target != nil {
					fmt.Printf("    %s  %s\n", target.Ref(), target.Name)
				}
			}
		}
		return nil
	})
}
