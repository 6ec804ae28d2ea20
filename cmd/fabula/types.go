package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fabula-app/fabula/internal/domain/entities"
)

func newTypesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List card types and their relationship fields",
		RunE:  runTypes,
	}
}

func runTypes(cmd *cobra.Command, args []string) error {
	return withDeps(func(d *Deps) error {
		for _, t := range entities.CardTypes {
			next := d.Cards.HandleNextNumber(t)
			fmt.Printf("%s (prefix %q, next number %d)\n", t, t.Prefix(), next)
			editable := make(map[entities.RelationField]bool)
			for _, pf := range entities.PrimaryFields(t) {
				editable[pf.Field] = true
				fmt.Printf("  %s -> %s (editable)\n", pf.Field, pf.Target)
			}
			for _, f := range entities.FieldsFor(t) {
				if !editable[f] {
					fmt.Printf("  %s (mirrored)\n", f)
				}
			}
		}
		return nil
	})
}
