package services

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fabula-app/fabula/internal/domain/entities"
	"github.com/fabula-app/fabula/internal/infrastructure/exchange"
)

func newTestImportService(cards *CardService) *ImportService {
	s := NewImportService(cards)
	var seq int
	s.newID = func() string {
		seq++
		return fmt.Sprintf("imported-%d", seq)
	}
	return s
}

func marshalFile(t *testing.T, f *exchange.File) []byte {
	t.Helper()
	data, err := f.Marshal()
	require.NoError(t, err)
	return data
}

func TestImportService_Import_MalformedPayload(t *testing.T) {
	cards := newTestCardService()
	imp := newTestImportService(cards)

	for _, payload := range []string{
		`not json`,
		`[]`,
		`{"version":"1.0"}`,
		`{"version":"1.0","cards":null}`,
		`{"version":"1.0","cards":{"id":"x"}}`,
	} {
		_, err := imp.Import([]byte(payload))
		assert.ErrorIs(t, err, ErrImportFormat, payload)
	}
	assert.Empty(t, cards.GetAll())
}

func TestImportService_Import_RemapsIDsPreservingTopology(t *testing.T) {
	cards := newTestCardService()
	imp := newTestImportService(cards)

	file := exchange.New([]entities.Card{
		{
			ID: "old-c1", Type: entities.CardTypeCharacter, Name: "Mira", Number: 1,
			Relations: entities.Relations{Bonds: []string{"old-c2"}},
		},
		{
			ID: "old-c2", Type: entities.CardTypeCharacter, Name: "Toren", Number: 2,
			Relations: entities.Relations{Bonds: []string{"old-c1"}},
		},
	}, nil)

	result, err := imp.Import(marshalFile(t, file))
	require.NoError(t, err)
	assert.Equal(t, 2, result.Imported)
	assert.Zero(t, result.Skipped)

	all := cards.GetAll()
	require.Len(t, all, 2)
	mira, toren := all[0], all[1]
	assert.NotEqual(t, "old-c1", mira.ID)
	assert.Equal(t, []string{toren.ID}, mira.Relations.Bonds)
	assert.Equal(t, []string{mira.ID}, toren.Relations.Bonds)
}

func TestImportService_Import_ForwardReferencesResolve(t *testing.T) {
	cards := newTestCardService()
	imp := newTestImportService(cards)

	// The event precedes the location it references within the file.
	file := exchange.New([]entities.Card{
		{
			ID: "old-e1", Type: entities.CardTypeEvent, Name: "Storm", Number: 1,
			Relations: entities.Relations{RelatedLocations: []string{"old-l1"}},
		},
		{ID: "old-l1", Type: entities.CardTypeLocation, Name: "Harbor", Number: 1},
	}, nil)

	result, err := imp.Import(marshalFile(t, file))
	require.NoError(t, err)
	require.Equal(t, 2, result.Imported)

	event := cards.GetAllOfType(entities.CardTypeEvent)[0]
	location := cards.GetAllOfType(entities.CardTypeLocation)[0]
	assert.Equal(t, []string{location.ID}, event.Relations.RelatedLocations)
}

func TestImportService_Import_SkipsInvalidCards(t *testing.T) {
	cards := newTestCardService()
	imp := newTestImportService(cards)

	file := exchange.New([]entities.Card{
		{ID: "old-1", Type: "monster", Name: "Bad", Number: 1},
		{
			ID: "old-2", Type: entities.CardTypeCharacter, Name: "Mira", Number: 1,
			// reference to the skipped card must drop out
			Relations: entities.Relations{Bonds: []string{"old-1"}},
		},
	}, nil)

	result, err := imp.Import(marshalFile(t, file))
	require.NoError(t, err)
	assert.Equal(t, 1, result.Imported)
	assert.Equal(t, 1, result.Skipped)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, 0, result.Errors[0].Index)
	assert.Equal(t, "Bad", result.Errors[0].Name)

	mira := cards.GetAll()[0]
	assert.Empty(t, mira.Relations.Bonds)
}

func TestImportService_Import_AssignsMissingNumbers(t *testing.T) {
	cards := newTestCardService()
	mustCreate(t, cards, CreateInput{Type: entities.CardTypeCharacter, Name: "Existing"})
	imp := newTestImportService(cards)

	file := exchange.New([]entities.Card{
		{ID: "old-1", Type: entities.CardTypeCharacter, Name: "First"},
		{ID: "old-2", Type: entities.CardTypeCharacter, Name: "Second"},
	}, nil)

	result, err := imp.Import(marshalFile(t, file))
	require.NoError(t, err)
	require.Equal(t, 2, result.Imported)

	chars := cards.GetAllOfType(entities.CardTypeCharacter)
	require.Len(t, chars, 3)
	assert.Equal(t, 1, chars[0].Number)
	assert.Equal(t, 2, chars[1].Number)
	assert.Equal(t, 3, chars[2].Number)
}

func TestImportService_Import_CollidingNumbersRenumbered(t *testing.T) {
	cards := newTestCardService()
	mustCreate(t, cards, CreateInput{Type: entities.CardTypeEvent, Name: "Existing"})
	imp := newTestImportService(cards)

	file := exchange.New([]entities.Card{
		{ID: "old-1", Type: entities.CardTypeEvent, Name: "Clash", Number: 1},
	}, nil)

	result, err := imp.Import(marshalFile(t, file))
	require.NoError(t, err)
	assert.Equal(t, 1, result.Imported)
	assert.Equal(t, 1, result.Renumbered)

	events := cards.GetAllOfType(entities.CardTypeEvent)
	require.Len(t, events, 2)
	assert.Equal(t, 1, events[0].Number)
	assert.Equal(t, 2, events[1].Number)
}

func TestImportService_Import_RewritesEmbeddedRefs(t *testing.T) {
	cards := newTestCardService()
	imp := newTestImportService(cards)

	file := exchange.New([]entities.Card{
		{
			ID: "old-1", Type: entities.CardTypeCharacter, Name: "Mira", Number: 1,
			Description: `See <span data-card-id="old-2">Toren</span> and <span data-card-id="gone">lost</span>`,
		},
		{ID: "old-2", Type: entities.CardTypeCharacter, Name: "Toren", Number: 2},
	}, nil)

	_, err := imp.Import(marshalFile(t, file))
	require.NoError(t, err)

	all := cards.GetAll()
	toren := all[1]
	want := fmt.Sprintf(`See <span data-card-id="%s">Toren</span> and <span data-card-id="">lost</span>`, toren.ID)
	assert.Equal(t, want, all[0].Description)
}

func TestImportService_Import_IgnoresForeignHistory(t *testing.T) {
	cards := newTestCardService()
	imp := newTestImportService(cards)

	file := exchange.New([]entities.Card{
		{ID: "old-1", Type: entities.CardTypeEvent, Name: "Storm", Number: 1},
	}, []string{"old-1"})

	_, err := imp.Import(marshalFile(t, file))
	require.NoError(t, err)
	assert.Empty(t, cards.History())
}

func TestExportService_RoundTrip(t *testing.T) {
	cards := newTestCardService()
	mira := mustCreate(t, cards, CreateInput{Type: entities.CardTypeCharacter, Name: "Mira"})
	storm := mustCreate(t, cards, CreateInput{Type: entities.CardTypeEvent, Name: "Storm"})
	cards.Visit(mira.ID)
	cards.Visit(storm.ID)

	data, err := NewExportService(cards).Marshal()
	require.NoError(t, err)

	file, err := exchange.Parse(data)
	require.NoError(t, err)
	assert.Equal(t, exchange.Version, file.Version)
	require.Len(t, file.Cards, 2)
	assert.Equal(t, []string{mira.ID, storm.ID}, file.History)
}

func TestExportService_Export_EmptyCollection(t *testing.T) {
	cards := newTestCardService()

	data, err := NewExportService(cards).Marshal()
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, "[]", string(raw["cards"]))
}
