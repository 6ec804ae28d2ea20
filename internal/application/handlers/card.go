// Package handlers exposes the application boundary consumed by the
// presentation layer. Handlers own sequencing, not semantics: the card
// repository and the relationship synchronizer do the real work.
package handlers

import (
	"github.com/fabula-app/fabula/internal/domain/entities"
	"github.com/fabula-app/fabula/internal/domain/services"
)

// CardHandler couples repository writes with the synchronizer so that
// every save and delete runs as one unit: previous relation state is read
// before the update lands, and reciprocal cleanup runs before a card is
// purged.
type CardHandler struct {
	cards *services.CardService
	sync  *services.SyncService
}

// NewCardHandler creates a new CardHandler.
func NewCardHandler(cards *services.CardService, sync *services.SyncService) *CardHandler {
	return &CardHandler{cards: cards, sync: sync}
}

// HandleCreate stores a new card and mirrors its outbound edges onto the
// referenced cards.
func (h *CardHandler) HandleCreate(in services.CreateInput) (*entities.Card, error) {
	card, err := h.cards.Create(in)
	if err != nil {
		return nil, err
	}
	if err := h.sync.SyncRelationships(card, nil); err != nil {
		return nil, err
	}
	return h.cards.Get(card.ID), nil
}

// HandleUpdate patches a card and reconciles reciprocal edges against the
// pre-update state. Returns nil without error for an unknown id.
func (h *CardHandler) HandleUpdate(id string, patch entities.CardPatch) (*entities.Card, error) {
	before := h.cards.Get(id)
	if before == nil {
		return nil, nil
	}
	previous := before.Relations

	card, err := h.cards.Update(id, patch)
	if err != nil {
		return nil, err
	}
	if card == nil {
		return nil, nil
	}
	if err := h.sync.SyncRelationships(card, &previous); err != nil {
		return nil, err
	}
	return h.cards.Get(id), nil
}

// HandleDelete removes a card: reciprocal edges first, then the card
// itself with its cascade cleanup. Reports false for an unknown id.
func (h *CardHandler) HandleDelete(id string) (bool, error) {
	card := h.cards.Get(id)
	if card == nil {
		return false, nil
	}
	if err := h.sync.RemoveAllReciprocals(card); err != nil {
		return false, err
	}
	return h.cards.Delete(id), nil
}

// HandleGet returns a card snapshot or nil.
func (h *CardHandler) HandleGet(id string) *entities.Card {
	return h.cards.Get(id)
}

// HandleGetByRef resolves a card by its type and human-facing number.
func (h *CardHandler) HandleGetByRef(t entities.CardType, number int) *entities.Card {
	return h.cards.GetByNumber(t, number)
}

// HandleList returns all cards, optionally filtered by type.
func (h *CardHandler) HandleList(t entities.CardType) []*entities.Card {
	if t == "" {
		return h.cards.GetAll()
	}
	return h.cards.GetAllOfType(t)
}

// HandleSearch returns cards matching the query by name or description.
func (h *CardHandler) HandleSearch(query string) []*entities.Card {
	return h.cards.Search(query)
}

// HandleVisit records a card view in the navigation history.
func (h *CardHandler) HandleVisit(id string) {
	h.cards.Visit(id)
}

// HandleHistory returns recently viewed card ids, most recent first.
func (h *CardHandler) HandleHistory() []string {
	return h.cards.History()
}

// HandleRenumber runs the legacy renumber pass and reports how many cards
// changed.
func (h *CardHandler) HandleRenumber() int {
	return h.cards.RenumberLegacy()
}

// HandleNextNumber previews the number the next card of type t would get.
func (h *CardHandler) HandleNextNumber(t entities.CardType) int {
	return h.cards.NextNumber(t)
}
