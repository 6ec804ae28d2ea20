package services

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/fabula-app/fabula/internal/domain/entities"
	"github.com/fabula-app/fabula/internal/infrastructure/exchange"
)

// ImportError describes why a single incoming card was skipped.
type ImportError struct {
	Index   int    // position in the incoming cards array (0-based)
	Name    string // incoming card name, if any
	Message string
}

func (e ImportError) Error() string {
	return fmt.Sprintf("card %d: %s", e.Index, e.Message)
}

// ImportResult summarizes an import run.
type ImportResult struct {
	Imported   int
	Skipped    int
	Renumbered int
	Errors     []ImportError
}

// ImportService merges a foreign transfer file into the live collection.
// Every incoming card receives a fresh id so sessions can never collide;
// all cross-references are rewritten through the old-to-new mapping in a
// second pass, which makes forward references within the batch resolve.
type ImportService struct {
	cards *CardService
	newID func() string
}

// NewImportService creates an ImportService inserting through cards.
func NewImportService(cards *CardService) *ImportService {
	return &ImportService{
		cards: cards,
		newID: func() string { return uuid.New().String() },
	}
}

// Import parses and merges a transfer payload. A payload violating the
// format contract fails with ErrImportFormat before any card is touched.
// Individually invalid cards are skipped and reported; references to them
// drop out along with any reference that does not resolve in the mapping.
func (s *ImportService) Import(data []byte) (*ImportResult, error) {
	file, err := exchange.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrImportFormat, err)
	}
	return s.importFile(file)
}

func (s *ImportService) importFile(file *exchange.File) (*ImportResult, error) {
	result := &ImportResult{}

	// Pass one: validate and assign fresh ids for the whole batch.
	valid := make([]*entities.Card, 0, len(file.Cards))
	mapping := make(map[string]string, len(file.Cards))
	for i := range file.Cards {
		incoming := &file.Cards[i]
		if verr := incoming.Validate(); verr != nil {
			result.Skipped++
			result.Errors = append(result.Errors, ImportError{
				Index:   i,
				Name:    incoming.Name,
				Message: verr.Error(),
			})
			continue
		}
		fresh := s.newID()
		if incoming.ID != "" {
			mapping[incoming.ID] = fresh
		}
		incoming.ID = fresh
		valid = append(valid, incoming)
	}

	// Pass two: rewrite every cross-reference through the mapping and stamp
	// fresh identity fields, then insert the whole batch at once.
	nextNumbers := make(map[entities.CardType]int)
	now := s.cards.now()
	batch := make([]*entities.Card, 0, len(valid))
	for _, incoming := range valid {
		card := incoming.Clone()
		card.Name = strings.TrimSpace(card.Name)
		card.CreatedAt = now
		card.UpdatedAt = now
		card.Relations = remapRelations(card.Type, card.Relations, mapping)
		card.Summary = exchange.RewriteCardRefs(card.Summary, mapping)
		card.Description = exchange.RewriteCardRefs(card.Description, mapping)
		card.Notes = exchange.RewriteCardRefs(card.Notes, mapping)
		if card.Number < 1 {
			card.Number = s.nextImportNumber(card.Type, nextNumbers)
		}
		batch = append(batch, card)
	}

	result.Imported = s.cards.Restore(batch)
	result.Renumbered = s.cards.RenumberLegacy()
	return result, nil
}

// nextImportNumber hands out numbers for incoming cards that lack one,
// continuing past both the live collection and numbers already handed out
// in this batch.
func (s *ImportService) nextImportNumber(t entities.CardType, handed map[entities.CardType]int) int {
	n := s.cards.NextNumber(t)
	if handed[t] >= n {
		n = handed[t] + 1
	}
	handed[t] = n
	return n
}

// remapRelations maps every reference through mapping, dropping the ones
// that do not resolve. Order is preserved.
func remapRelations(t entities.CardType, rel entities.Relations, mapping map[string]string) entities.Relations {
	var out entities.Relations
	for _, f := range entities.FieldsFor(t) {
		ids := rel.Get(f)
		if len(ids) == 0 {
			continue
		}
		kept := make([]string, 0, len(ids))
		for _, id := range ids {
			if fresh, ok := mapping[id]; ok {
				kept = append(kept, fresh)
			}
		}
		if len(kept) > 0 {
			out.Set(f, kept)
		}
	}
	return out
}
