package services

import (
	"github.com/fabula-app/fabula/internal/domain/entities"
	"github.com/fabula-app/fabula/internal/infrastructure/exchange"
)

// ExportService renders the live collection as a transfer file.
type ExportService struct {
	cards *CardService
}

// NewExportService creates an ExportService reading from cards.
func NewExportService(cards *CardService) *ExportService {
	return &ExportService{cards: cards}
}

// Export snapshots every card plus the navigation history into a transfer
// file carrying the current format version.
func (s *ExportService) Export() *exchange.File {
	snapshots := s.cards.GetAll()
	cards := make([]entities.Card, 0, len(snapshots))
	for _, c := range snapshots {
		cards = append(cards, *c)
	}

	// History is persisted oldest-first so a restore replays visits in order.
	recent := s.cards.History()
	history := make([]string, 0, len(recent))
	for i := len(recent) - 1; i >= 0; i-- {
		history = append(history, recent[i])
	}

	return exchange.New(cards, history)
}

// Marshal renders the export as indented JSON with a trailing newline.
func (s *ExportService) Marshal() ([]byte, error) {
	data, err := s.Export().Marshal()
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
