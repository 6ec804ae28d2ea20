package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fabula-app/fabula/internal/domain/entities"
	"github.com/fabula-app/fabula/internal/domain/services"
	"github.com/fabula-app/fabula/internal/infrastructure/memstore"
)

func newTestHandlers() (*CardHandler, *TransferHandler) {
	cards := services.NewCardService(memstore.New())
	ch := NewCardHandler(cards, services.NewSyncService(cards))
	th := NewTransferHandler(cards, services.NewImportService(cards), services.NewExportService(cards))
	return ch, th
}

func TestTransferHandler_ExportRestore_KeepsIDs(t *testing.T) {
	ch, th := newTestHandlers()

	mira, err := ch.HandleCreate(services.CreateInput{Type: entities.CardTypeCharacter, Name: "Mira"})
	require.NoError(t, err)
	toren, err := ch.HandleCreate(services.CreateInput{
		Type:      entities.CardTypeCharacter,
		Name:      "Toren",
		Relations: entities.Relations{Bonds: []string{mira.ID}},
	})
	require.NoError(t, err)
	ch.HandleVisit(mira.ID)

	data, err := th.HandleExport()
	require.NoError(t, err)

	// A fresh session restoring its own library keeps ids verbatim.
	ch2, th2 := newTestHandlers()
	require.NoError(t, th2.HandleRestore(data))

	got := ch2.HandleGet(mira.ID)
	require.NotNil(t, got)
	assert.Equal(t, []string{toren.ID}, got.Relations.Bonds)
	assert.Equal(t, []string{mira.ID}, ch2.HandleHistory())
}

func TestTransferHandler_HandleImport_RemapsIDs(t *testing.T) {
	ch, th := newTestHandlers()

	mira, err := ch.HandleCreate(services.CreateInput{Type: entities.CardTypeCharacter, Name: "Mira"})
	require.NoError(t, err)

	data, err := th.HandleExport()
	require.NoError(t, err)

	// Importing into the same session must duplicate the card under a new id.
	result, err := th.HandleImport(data)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Imported)

	all := ch.HandleList(entities.CardTypeCharacter)
	require.Len(t, all, 2)
	assert.NotEqual(t, all[0].ID, all[1].ID)
	assert.Equal(t, mira.ID, all[0].ID)
	assert.Equal(t, 2, all[1].Number)
}

func TestTransferHandler_HandleImport_MalformedPayload(t *testing.T) {
	_, th := newTestHandlers()

	_, err := th.HandleImport([]byte(`[]`))
	assert.ErrorIs(t, err, services.ErrImportFormat)
}

func TestTransferHandler_HandleRestore_MalformedPayload(t *testing.T) {
	_, th := newTestHandlers()

	err := th.HandleRestore([]byte(`{"version":"1.0"}`))
	assert.ErrorIs(t, err, services.ErrImportFormat)
}
