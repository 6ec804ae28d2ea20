package services

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/fabula-app/fabula/internal/domain/entities"
	"github.com/fabula-app/fabula/internal/domain/ports"
)

// DefaultHistoryCapacity bounds the navigation history stack.
const DefaultHistoryCapacity = 20

// CardService owns the card collection: identity generation, per-type
// sequential numbering, CRUD with cascading reference cleanup, search and
// the bounded navigation history. Execution is single-threaded and
// synchronous; every operation runs to completion before the next begins.
type CardService struct {
	store      ports.CardStore
	history    []string // oldest first
	historyCap int

	now   func() time.Time
	newID func() string
}

// NewCardService creates a CardService over the given store.
func NewCardService(store ports.CardStore) *CardService {
	return &CardService{
		store:      store,
		historyCap: DefaultHistoryCapacity,
		now:        time.Now,
		newID:      func() string { return uuid.New().String() },
	}
}

// CreateInput carries the caller-supplied fields for a new card. A Number
// below 1 means "assign the next free number".
type CreateInput struct {
	Type        entities.CardType
	Name        string
	Number      int
	Summary     string
	Description string
	Notes       string
	Image       string
	Tags        []string
	Nodes       json.RawMessage
	Relations   entities.Relations
}

// Validate checks the fields the repository defends even though the
// boundary layer is expected to have validated them already.
func (in CreateInput) Validate() error {
	draft := entities.Card{Type: in.Type, Name: in.Name}
	return draft.Validate()
}

// NextNumber returns the number the next card of type t would receive:
// one past the highest number currently in use, never reusing a number
// freed by deletion.
func (s *CardService) NextNumber(t entities.CardType) int {
	max := 0
	for _, card := range s.store.List() {
		if card.Type == t && card.Number > max {
			max = card.Number
		}
	}
	return max + 1
}

// GetByNumber returns the card of type t holding number n, or nil.
func (s *CardService) GetByNumber(t entities.CardType, n int) *entities.Card {
	for _, card := range s.store.List() {
		if card.Type == t && card.Number == n {
			return card.Clone()
		}
	}
	return nil
}

// Create stores a new card. An absent or non-positive number is assigned
// via NextNumber; an explicit number colliding with an existing card of the
// same type makes room by shifting the colliding and higher numbers up.
func (s *CardService) Create(in CreateInput) (*entities.Card, error) {
	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	number := in.Number
	if number < 1 {
		number = s.NextNumber(in.Type)
	} else if s.numberTaken(in.Type, number, "") {
		s.reorganize(in.Type, number, "")
	}

	now := s.now()
	card := &entities.Card{
		ID:          s.newID(),
		Type:        in.Type,
		Number:      number,
		Name:        strings.TrimSpace(in.Name),
		Summary:     in.Summary,
		Description: in.Description,
		Notes:       in.Notes,
		Image:       in.Image,
		Tags:        append([]string(nil), in.Tags...),
		Nodes:       append(json.RawMessage(nil), in.Nodes...),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	card.Relations = s.normalizeRelations(card.ID, card.Type, in.Relations)

	s.store.Insert(card)
	return card.Clone(), nil
}

// Update applies a partial patch to the card with the given id. A nil card
// is returned, without error, when the id is unknown. Provided fields are
// merged over the stored card; absent fields stay untouched. A changed
// number colliding with another card of the same type triggers the same
// make-room shift as Create.
func (s *CardService) Update(id string, patch entities.CardPatch) (*entities.Card, error) {
	card := s.store.Find(id)
	if card == nil {
		return nil, nil
	}
	if err := patch.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	// A requested number below 1 is treated as absent: the stored number is
	// the only valid fallback for an update.
	if patch.Number != nil && *patch.Number >= 1 && *patch.Number != card.Number {
		if s.numberTaken(card.Type, *patch.Number, card.ID) {
			s.reorganize(card.Type, *patch.Number, card.ID)
		}
		card.Number = *patch.Number
	}

	if patch.Name != nil {
		card.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Summary != nil {
		card.Summary = *patch.Summary
	}
	if patch.Description != nil {
		card.Description = *patch.Description
	}
	if patch.Notes != nil {
		card.Notes = *patch.Notes
	}
	if patch.Image != nil {
		card.Image = *patch.Image
	}
	if patch.Tags != nil {
		card.Tags = append([]string(nil), (*patch.Tags)...)
	}
	if patch.Nodes != nil {
		card.Nodes = append(json.RawMessage(nil), (*patch.Nodes)...)
	}

	relations := card.Relations
	touched := false
	for _, f := range entities.AllRelationFields {
		if ids := patch.Relations.Get(f); ids != nil {
			relations.Set(f, *ids)
			touched = true
		}
	}
	if touched {
		card.Relations = s.normalizeRelations(card.ID, card.Type, relations)
	}

	card.UpdatedAt = s.now()
	s.store.Replace(card)
	return card.Clone(), nil
}

// Delete removes the card and strips its id from every relation list of
// every remaining card, so no dangling reference survives the operation.
// Callers wanting full reciprocal bookkeeping run the synchronizer's
// removal pass first; this is the low-level safety net beneath it.
func (s *CardService) Delete(id string) bool {
	if s.store.Find(id) == nil {
		return false
	}
	s.store.Remove(id)

	now := s.now()
	for _, other := range s.store.List() {
		if other.Relations.RemoveID(id) {
			other.UpdatedAt = now
			s.store.Replace(other)
		}
	}

	s.dropFromHistory(id)
	return true
}

// Get returns a snapshot of the card or nil.
func (s *CardService) Get(id string) *entities.Card {
	card := s.store.Find(id)
	if card == nil {
		return nil
	}
	return card.Clone()
}

// GetAll returns snapshots of every card in store order.
func (s *CardService) GetAll() []*entities.Card {
	cards := s.store.List()
	out := make([]*entities.Card, 0, len(cards))
	for _, card := range cards {
		out = append(out, card.Clone())
	}
	return out
}

// GetAllOfType returns snapshots of every card of type t in store order.
func (s *CardService) GetAllOfType(t entities.CardType) []*entities.Card {
	var out []*entities.Card
	for _, card := range s.store.List() {
		if card.Type == t {
			out = append(out, card.Clone())
		}
	}
	return out
}

// Search returns cards whose name or description contains the query,
// case-insensitively, in store order.
func (s *CardService) Search(query string) []*entities.Card {
	q := strings.ToLower(query)
	var out []*entities.Card
	for _, card := range s.store.List() {
		if strings.Contains(strings.ToLower(card.Name), q) ||
			strings.Contains(strings.ToLower(card.Description), q) {
			out = append(out, card.Clone())
		}
	}
	return out
}

// RenumberLegacy assigns valid numbers to cards that lack one, per type in
// ascending creation order (ties broken by store order), starting at 1 and
// skipping numbers already validly held. Cards holding a duplicate of an
// already-claimed number count as lacking one, so the pass also clears
// duplicates introduced by imported legacy data. Valid unique numbers are
// never disturbed, which makes the pass idempotent. Returns how many cards
// were renumbered.
func (s *CardService) RenumberLegacy() int {
	changed := 0
	for _, t := range entities.CardTypes {
		changed += s.renumberType(t)
	}
	return changed
}

func (s *CardService) renumberType(t entities.CardType) int {
	var cards []*entities.Card
	for _, card := range s.store.List() {
		if card.Type == t {
			cards = append(cards, card)
		}
	}
	// Stable sort keeps store order among equal timestamps.
	sort.SliceStable(cards, func(i, j int) bool {
		return cards[i].CreatedAt.Before(cards[j].CreatedAt)
	})

	used := make(map[int]bool, len(cards))
	var pending []*entities.Card
	for _, card := range cards {
		if card.Number >= 1 && !used[card.Number] {
			used[card.Number] = true
		} else {
			pending = append(pending, card)
		}
	}

	now := s.now()
	next := 1
	for _, card := range pending {
		for used[next] {
			next++
		}
		card.Number = next
		card.UpdatedAt = now
		used[next] = true
		s.store.Replace(card)
	}
	return len(pending)
}

// Visit records a card view in the navigation history. Unknown ids and
// repeat views of the current card are ignored; the oldest entry is evicted
// once the capacity is reached.
func (s *CardService) Visit(id string) {
	if s.store.Find(id) == nil {
		return
	}
	if n := len(s.history); n > 0 && s.history[n-1] == id {
		return
	}
	s.history = append(s.history, id)
	if len(s.history) > s.historyCap {
		s.history = s.history[len(s.history)-s.historyCap:]
	}
}

// History returns the visited card ids, most recent first.
func (s *CardService) History() []string {
	out := make([]string, 0, len(s.history))
	for i := len(s.history) - 1; i >= 0; i-- {
		out = append(out, s.history[i])
	}
	return out
}

// SetHistoryCapacity adjusts the history bound, trimming oldest entries if
// the current history exceeds it.
func (s *CardService) SetHistoryCapacity(n int) {
	if n < 1 {
		return
	}
	s.historyCap = n
	if len(s.history) > n {
		s.history = s.history[len(s.history)-n:]
	}
}

// RestoreHistory seeds the navigation history from a persisted session,
// oldest first. Ids that no longer resolve are dropped.
func (s *CardService) RestoreHistory(ids []string) {
	s.history = nil
	for _, id := range ids {
		s.Visit(id)
	}
}

// Restore inserts fully-formed cards, bypassing collision reorganization;
// it is the load path for session files and the final step of import.
// Cards failing validation or duplicating an already-stored id are skipped
// (best-effort legacy coercion). After insertion every card's relation
// lists are re-normalized so that forward references between restored cards
// resolve. Callers are expected to run RenumberLegacy afterwards.
func (s *CardService) Restore(cards []*entities.Card) int {
	added := 0
	for _, card := range cards {
		if card.Validate() != nil || card.ID == "" || s.store.Find(card.ID) != nil {
			continue
		}
		s.store.Insert(card)
		added++
	}

	for _, card := range s.store.List() {
		normalized := s.normalizeRelations(card.ID, card.Type, card.Relations)
		card.Relations = normalized
		s.store.Replace(card)
	}
	return added
}

// numberTaken reports whether another card of type t (excluding excludeID)
// already holds number n.
func (s *CardService) numberTaken(t entities.CardType, n int, excludeID string) bool {
	for _, card := range s.store.List() {
		if card.Type == t && card.Number == n && card.ID != excludeID {
			return true
		}
	}
	return false
}

// reorganize makes room for an explicitly requested number: every card of
// type t (except excludeID) holding that number or a higher one is shifted
// up by exactly one, lowest numbers first so the shifts never collide.
func (s *CardService) reorganize(t entities.CardType, n int, excludeID string) {
	var shifting []*entities.Card
	for _, card := range s.store.List() {
		if card.Type == t && card.ID != excludeID && card.Number >= n {
			shifting = append(shifting, card)
		}
	}
	sort.SliceStable(shifting, func(i, j int) bool {
		return shifting[i].Number < shifting[j].Number
	})

	now := s.now()
	for _, card := range shifting {
		card.Number++
		card.UpdatedAt = now
		s.store.Replace(card)
	}
}

// normalizeRelations enforces the structural invariants on a card's
// relation lists: fields foreign to the card's type are dropped, and each
// kept list loses duplicates, the card's own id, and ids that do not
// resolve to an existing card of the field's expected type.
func (s *CardService) normalizeRelations(cardID string, t entities.CardType, rel entities.Relations) entities.Relations {
	var out entities.Relations
	for _, f := range entities.FieldsFor(t) {
		target, _ := entities.FieldTarget(t, f)
		ids := rel.Get(f)
		if len(ids) == 0 {
			continue
		}
		seen := make(map[string]bool, len(ids))
		kept := make([]string, 0, len(ids))
		for _, id := range ids {
			if id == "" || id == cardID || seen[id] {
				continue
			}
			other := s.store.Find(id)
			if other == nil || other.Type != target {
				continue
			}
			seen[id] = true
			kept = append(kept, id)
		}
		if len(kept) > 0 {
			out.Set(f, kept)
		}
	}
	return out
}

func (s *CardService) dropFromHistory(id string) {
	kept := s.history[:0:0]
	for _, v := range s.history {
		if v != id {
			kept = append(kept, v)
		}
	}
	s.history = kept
}
