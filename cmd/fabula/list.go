package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fabula-app/fabula/internal/domain/entities"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [type]",
		Short: "List cards, optionally filtered by type",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runList,
	}
}

func runList(cmd *cobra.Command, args []string) error {
	var cardType entities.CardType
	if len(args) == 1 {
		t, err := parseCardType(args[0])
		if err != nil {
			return err
		}
		cardType = t
	}

	return withDeps(func(d *Deps) error {
		cards := d.Cards.HandleList(cardType)
		if len(cards) == 0 {
			fmt.Println("No cards found.")
			return nil
		}
		printCardTable(cards)
		return nil
	})
}

func printCardTable(cards []*entities.Card) {
	for _, card := range cards {
		summary := card.Summary
		if len(summary) > 50 {
			summary = summary[:47] + "..."
		}
		fmt.Printf("%-5s %-30s %s\n", card.Ref(), card.Name, summary)
	}
}
