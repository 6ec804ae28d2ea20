// Package ports defines the interfaces between the domain and its
// infrastructure.
package ports

import "github.com/fabula-app/fabula/internal/domain/entities"

// CardStore is an ordered collection of cards keyed by id. Insertion order
// is the stable default iteration order. Implementations hold no card
// semantics: numbering, reciprocity and cascade cleanup all live in the
// services layer. Stores hand out shared pointers; defensive copying is the
// caller's job.
type CardStore interface {
	// Insert appends a card. The id must not already be present.
	Insert(card *entities.Card)

	// Replace swaps the stored card with the same id, keeping its position.
	// Reports false when the id is unknown.
	Replace(card *entities.Card) bool

	// Remove deletes the card with the given id, reporting whether it existed.
	Remove(id string) bool

	// Find returns the stored card or nil.
	Find(id string) *entities.Card

	// List returns all cards in insertion order.
	List() []*entities.Card

	// Len returns the number of stored cards.
	Len() int
}
