package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fabula-app/fabula/internal/domain/entities"
)

func newUnrelateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unrelate <source> <field> <target>",
		Short: "Remove a relationship edge between two cards",
		Long: `Removes the target card from one of the source card's relationship
fields. The mirrored entry on the target card is cleaned up automatically.`,
		Args: cobra.ExactArgs(3),
		RunE: runUnrelate,
	}
}

func runUnrelate(cmd *cobra.Command, args []string) error {
	return withSave(func(d *Deps) error {
		source, field, target, err := resolveEdge(d, args)
		if err != nil {
			return err
		}
		if !source.Relations.Contains(field, target.ID) {
			fmt.Printf("%s does not hold %s in %s\n", source.Ref(), target.Ref(), field)
			return nil
		}

		kept := make([]string, 0)
		for _, id := range source.Relations.Get(field) {
			if id != target.ID {
				kept = append(kept, id)
			}
		}
		var rp entities.RelationsPatch
		rp.Set(field, kept)
		if _, err := d.Cards.HandleUpdate(source.ID, entities.CardPatch{Relations: rp}); err != nil {
			return fmt.Errorf("updating card: %w", err)
		}

		fmt.Printf("%s -[%s]-x %s\n", source.Ref(), field, target.Ref())
		return nil
	})
}
