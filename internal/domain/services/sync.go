package services

import (
	"fmt"

	"github.com/fabula-app/fabula/internal/domain/entities"
)

// SyncService keeps the relationship graph bidirectional. After every card
// save it derives the reciprocal edges other cards must carry as a
// consequence of the edges on the saved card, and reconciles additions and
// removals by diffing against the previous state, so unrelated edges on
// target cards are left alone.
type SyncService struct {
	cards *CardService
}

// NewSyncService creates a SyncService mutating targets through cards.
func NewSyncService(cards *CardService) *SyncService {
	return &SyncService{cards: cards}
}

// SyncRelationships reconciles the reciprocal edges implied by a just-saved
// card. previous is the card's relation state before the save, or nil for a
// newly created card. The caller must capture previous before applying the
// update; the diff is only correct against the pre-update state.
func (s *SyncService) SyncRelationships(saved *entities.Card, previous *entities.Relations) error {
	var prev entities.Relations
	if previous != nil {
		prev = *previous
	}

	for _, pf := range entities.PrimaryFields(saved.Type) {
		current := saved.Relations.Get(pf.Field)
		before := prev.Get(pf.Field)

		for _, id := range diffIDs(current, before) {
			if err := s.addReciprocal(saved, id); err != nil {
				return fmt.Errorf("adding reciprocal on %s: %w", id, err)
			}
		}
		for _, id := range diffIDs(before, current) {
			if err := s.removeEverywhere(id, saved.ID); err != nil {
				return fmt.Errorf("removing reciprocal on %s: %w", id, err)
			}
		}
	}
	return nil
}

// RemoveAllReciprocals strips the card's id from every relation list of
// every card it references. Callers invoke this before deleting the card;
// the repository's delete then sweeps up anything left.
func (s *SyncService) RemoveAllReciprocals(card *entities.Card) error {
	for _, f := range entities.FieldsFor(card.Type) {
		for _, id := range card.Relations.Get(f) {
			if err := s.removeEverywhere(id, card.ID); err != nil {
				return fmt.Errorf("removing reciprocal on %s: %w", id, err)
			}
		}
	}
	return nil
}

// addReciprocal appends source's id to the mirror field on the target card.
// A target that no longer exists is tolerated silently (stale reference
// from partial import data); a re-add of an already-present id is a no-op.
// The mirror field is chosen from the target's actual type, not the type
// the source field nominally points at.
func (s *SyncService) addReciprocal(source *entities.Card, targetID string) error {
	target := s.cards.Get(targetID)
	if target == nil {
		return nil
	}
	field, ok := entities.ReciprocalField(source.Type, target.Type)
	if !ok {
		return nil
	}
	if target.Relations.Contains(field, source.ID) {
		return nil
	}

	ids := append(target.Relations.Get(field), source.ID)
	var rp entities.RelationsPatch
	rp.Set(field, ids)
	_, err := s.cards.Update(target.ID, entities.CardPatch{Relations: rp})
	return err
}

// removeEverywhere strips sourceID from every relation field of the card
// with targetID, not just the nominal reciprocal field. A field's logical
// type can be ambiguous after prior edits, so removal deliberately
// over-scans.
func (s *SyncService) removeEverywhere(targetID, sourceID string) error {
	target := s.cards.Get(targetID)
	if target == nil {
		return nil
	}

	var rp entities.RelationsPatch
	changed := false
	for _, f := range entities.FieldsFor(target.Type) {
		ids := target.Relations.Get(f)
		kept := ids[:0:0]
		for _, id := range ids {
			if id != sourceID {
				kept = append(kept, id)
			}
		}
		if len(kept) != len(ids) {
			rp.Set(f, kept)
			changed = true
		}
	}
	if !changed {
		return nil
	}
	_, err := s.cards.Update(target.ID, entities.CardPatch{Relations: rp})
	return err
}

// diffIDs returns the elements of a that are not in b, preserving a's order.
func diffIDs(a, b []string) []string {
	if len(a) == 0 {
		return nil
	}
	inB := make(map[string]bool, len(b))
	for _, id := range b {
		inB[id] = true
	}
	var out []string
	for _, id := range a {
		if !inB[id] {
			out = append(out, id)
		}
	}
	return out
}
