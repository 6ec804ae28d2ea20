// Package memstore provides the in-memory CardStore backing a single
// session. All state lives here for the lifetime of the process; durability
// is handled separately through the exchange file format.
package memstore

import (
	"github.com/fabula-app/fabula/internal/domain/entities"
)

// Store implements ports.CardStore with an ordered slice plus an id index.
type Store struct {
	order []*entities.Card
	index map[string]int
}

// New creates an empty store.
func New() *Store {
	return &Store{
		index: make(map[string]int),
	}
}

// Insert appends a card. Existing ids are replaced in place rather than
// duplicated, so a buggy caller cannot corrupt the index.
func (s *Store) Insert(card *entities.Card) {
	if i, ok := s.index[card.ID]; ok {
		s.order[i] = card
		return
	}
	s.index[card.ID] = len(s.order)
	s.order = append(s.order, card)
}

// Replace swaps the stored card with the same id, keeping its position.
func (s *Store) Replace(card *entities.Card) bool {
	i, ok := s.index[card.ID]
	if !ok {
		return false
	}
	s.order[i] = card
	return true
}

// Remove deletes the card with the given id.
func (s *Store) Remove(id string) bool {
	i, ok := s.index[id]
	if !ok {
		return false
	}
	s.order = append(s.order[:i], s.order[i+1:]...)
	delete(s.index, id)
	for j := i; j < len(s.order); j++ {
		s.index[s.order[j].ID] = j
	}
	return true
}

// Find returns the stored card or nil.
func (s *Store) Find(id string) *entities.Card {
	if i, ok := s.index[id]; ok {
		return s.order[i]
	}
	return nil
}

// List returns all cards in insertion order. The slice is fresh but the
// pointers are shared with the store.
func (s *Store) List() []*entities.Card {
	return append([]*entities.Card(nil), s.order...)
}

// Len returns the number of stored cards.
func (s *Store) Len() int {
	return len(s.order)
}
