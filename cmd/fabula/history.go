package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fabula-app/fabula/internal/domain/entities"
)

func newHistoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "Show recently viewed cards",
		Long:  `Lists recently viewed cards, most recent first.`,
		RunE:  runHistory,
	}
}

func runHistory(cmd *cobra.Command, args []string) error {
	return withDeps(func(d *Deps) error {
		ids := d.Cards.HandleHistory()
		if len(ids) == 0 {
			fmt.Println("No cards viewed yet")
			return nil
		}
		var cards []*entities.Card
		for _, id := range ids {
			if card := d.Cards.HandleGet(id); card != nil {
				cards = append(cards, card)
			}
		}
		printCardTable(cards)
		return nil
	})
}
