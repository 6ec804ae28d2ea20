package handlers

import (
	"fmt"

	"github.com/fabula-app/fabula/internal/domain/entities"
	"github.com/fabula-app/fabula/internal/domain/services"
	"github.com/fabula-app/fabula/internal/infrastructure/exchange"
)

// TransferHandler owns the durability boundary: export, import of foreign
// files (with id remapping), and restore of a session's own library file
// (ids kept as-is).
type TransferHandler struct {
	cards    *services.CardService
	importer *services.ImportService
	exporter *services.ExportService
}

// NewTransferHandler creates a new TransferHandler.
func NewTransferHandler(cards *services.CardService, importer *services.ImportService, exporter *services.ExportService) *TransferHandler {
	return &TransferHandler{
		cards:    cards,
		importer: importer,
		exporter: exporter,
	}
}

// HandleExport renders the live collection as transfer-file JSON.
func (h *TransferHandler) HandleExport() ([]byte, error) {
	return h.exporter.Marshal()
}

// HandleImport merges a foreign transfer payload, remapping every id.
func (h *TransferHandler) HandleImport(data []byte) (*services.ImportResult, error) {
	return h.importer.Import(data)
}

// HandleRestore loads a session's own library file. Unlike import, ids are
// kept verbatim: a session resuming itself must not remap its references.
// The legacy renumber pass runs afterwards as the load-time coercion step.
func (h *TransferHandler) HandleRestore(data []byte) error {
	file, err := exchange.Parse(data)
	if err != nil {
		return fmt.Errorf("%w: %v", services.ErrImportFormat, err)
	}

	batch := make([]*entities.Card, 0, len(file.Cards))
	for i := range file.Cards {
		batch = append(batch, file.Cards[i].Clone())
	}
	h.cards.Restore(batch)
	h.cards.RenumberLegacy()
	h.cards.RestoreHistory(file.History)
	return nil
}
