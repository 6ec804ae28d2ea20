package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fabula-app/fabula/internal/domain/entities"
)

func newRelateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "relate <source> <field> <target>",
		Short: "Add a relationship edge between two cards",
		Long: `Adds the target card to one of the source card's relationship fields.
The mirrored entry on the target card is maintained automatically.

Editable fields per type:
  event:     relatedLocations, relatedCharacters
  location:  adjacentLocations, presentCharacters
  character: bonds

Examples:
  fabula relate c1 bonds c2
  fabula relate e1 relatedLocations l3
  fabula relate l1 adjacentLocations l2`,
		Args: cobra.ExactArgs(3),
		RunE: runRelate,
	}
}

func runRelate(cmd *cobra.Command, args []string) error {
	return withSave(func(d *Deps) error {
		source, field, target, err := resolveEdge(d, args)
		if err != nil {
			return err
		}
		if target.ID == source.ID {
			return fmt.Errorf("a card cannot reference itself")
		}
		if source.Relations.Contains(field, target.ID) {
			fmt.Printf("%s already holds %s in %s\n", source.Ref(), target.Ref(), field)
			return nil
		}

		ids := append(source.Relations.Get(field), target.ID)
		var rp entities.RelationsPatch
		rp.Set(field, ids)
		if _, err := d.Cards.HandleUpdate(source.ID, entities.CardPatch{Relations: rp}); err != nil {
			return fmt.Errorf("updating card: %w", err)
		}

		fmt.Printf("%s -[%s]-> %s\n", source.Ref(), field, target.Ref())
		return nil
	})
}

// resolveEdge resolves the source card, the relationship field and the
// target card shared by relate and unrelate.
func resolveEdge(d *Deps, args []string) (*entities.Card, entities.RelationField, *entities.Card, error) {
	source, err := resolveCard(d, args[0])
	if err != nil {
		return nil, "", nil, err
	}

	field := entities.RelationField(args[1])
	var primary *entities.PrimaryField
	for _, pf := range entities.PrimaryFields(source.Type) {
		if pf.Field == field {
			primary = &pf
			break
		}
	}
	if primary == nil {
		var names []string
		for _, pf := range entities.PrimaryFields(source.Type) {
			names = append(names, string(pf.Field))
		}
		return nil, "", nil, fmt.Errorf("field %q is not editable on a %s card (editable: %v)", args[1], source.Type, names)
	}

	target, err := resolveCard(d, args[2])
	if err != nil {
		return nil, "", nil, err
	}
	if target.Type != primary.Target {
		return nil, "", nil, fmt.Errorf("%s entries must reference a %s card, %s is a %s", field, primary.Target, target.Ref(), target.Type)
	}
	return source, field, target, nil
}
