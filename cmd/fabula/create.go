package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fabula-app/fabula/internal/domain/services"
)

type createFlags struct {
	number      int
	summary     string
	description string
	notes       string
	image       string
	tags        []string
}

func newCreateCmd() *cobra.Command {
	var flags createFlags

	cmd := &cobra.Command{
		Use:   "create <type> <name>",
		Short: "Create a new card",
		Long: `Creates a new card of the given type (event, location, character).

The card number is assigned automatically unless --number is given; an
explicit number that is already taken shifts the colliding and higher
numbers up by one.

Examples:
  fabula create character "Alice"
  fabula create location "Harbor District" --summary "Smells of tar"
  fabula create event "The Long Night" --number 1`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(args, flags)
		},
	}

	cmd.Flags().IntVarP(&flags.number, "number", "n", 0, "Explicit card number (default: next free)")
	cmd.Flags().StringVar(&flags.summary, "summary", "", "Short summary")
	cmd.Flags().StringVar(&flags.description, "description", "", "Long description")
	cmd.Flags().StringVar(&flags.notes, "notes", "", "Free-form notes")
	cmd.Flags().StringVar(&flags.image, "image", "", "Image reference")
	cmd.Flags().StringSliceVar(&flags.tags, "tags", nil, "Comma-separated tags")

	return cmd
}

func runCreate(args []string, flags createFlags) error {
	cardType, err := parseCardType(args[0])
	if err != nil {
		return err
	}

	return withSave(func(d *Deps) error {
		card, err := d.Cards.HandleCreate(services.CreateInput{
			Type:        cardType,
			Name:        args[1],
			Number:      flags.number,
			Summary:     flags.summary,
			Description: flags.description,
			Notes:       flags.notes,
			Image:       flags.image,
			Tags:        flags.tags,
		})
		if err != nil {
			return fmt.Errorf("creating card: %w", err)
		}

		fmt.Printf("Created %s %q (%s)\n", card.Type, card.Name, card.Ref())
		return nil
	})
}
