package main

import (
	"fmt"
	"strconv"

	"github.com/fabula-app/fabula/internal/domain/entities"
)

// parseCardRef parses a human-facing card ref like "c3", "l1" or "e12"
// into a card type and number.
func parseCardRef(ref string) (entities.CardType, int, bool) {
	if len(ref) < 2 {
		return "", 0, false
	}
	t, ok := entities.TypeForPrefix(ref[:1])
	if !ok {
		return "", 0, false
	}
	n, err := strconv.Atoi(ref[1:])
	if err != nil || n < 1 {
		return "", 0, false
	}
	return t, n, true
}

// resolveCard resolves either a ref ("c3") or a full card id.
func resolveCard(d *Deps, arg string) (*entities.Card, error) {
	if t, n, ok := parseCardRef(arg); ok {
		if card := d.Cards.HandleGetByRef(t, n); card != nil {
			return card, nil
		}
	}
	if card := d.Cards.HandleGet(arg); card != nil {
		return card, nil
	}
	return nil, fmt.Errorf("card not found: %s", arg)
}

// parseCardType parses and validates a card type argument.
func parseCardType(arg string) (entities.CardType, error) {
	t := entities.CardType(arg)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid type %q, valid types: event, location, character", arg)
	}
	return t, nil
}
