package exchange

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fabula-app/fabula/internal/domain/entities"
)

func TestParse_ValidFile(t *testing.T) {
	data := []byte(`{
		"version": "1.0",
		"exportDate": "2026-01-10T12:00:00Z",
		"cards": [
			{"id": "c-1", "type": "character", "number": 1, "name": "Mira"}
		],
		"history": ["c-1"]
	}`)

	file, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, "1.0", file.Version)
	require.Len(t, file.Cards, 1)
	assert.Equal(t, entities.CardTypeCharacter, file.Cards[0].Type)
	assert.Equal(t, []string{"c-1"}, file.History)
}

func TestParse_EmptyCardsArray(t *testing.T) {
	file, err := Parse([]byte(`{"version":"1.0","cards":[]}`))
	require.NoError(t, err)
	assert.Empty(t, file.Cards)
}

func TestParse_UnknownFieldsIgnored(t *testing.T) {
	data := []byte(`{
		"version": "2.0",
		"cards": [{"id": "c-1", "type": "event", "name": "Storm", "futureField": true}],
		"futureSection": {}
	}`)

	file, err := Parse(data)
	require.NoError(t, err)
	assert.Len(t, file.Cards, 1)
}

func TestParse_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"not json", `{{`},
		{"top-level array", `[]`},
		{"top-level string", `"cards"`},
		{"missing cards", `{"version":"1.0"}`},
		{"null cards", `{"version":"1.0","cards":null}`},
		{"cards not an array", `{"version":"1.0","cards":{"id":"x"}}`},
		{"cards of wrong element type", `{"version":"1.0","cards":[42]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.payload))
			assert.ErrorIs(t, err, ErrMalformed)
		})
	}
}

func TestMarshalParse_RoundTrip(t *testing.T) {
	file := New([]entities.Card{
		{ID: "c-1", Type: entities.CardTypeCharacter, Number: 1, Name: "Mira"},
	}, []string{"c-1"})

	data, err := file.Marshal()
	require.NoError(t, err)

	parsed, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, Version, parsed.Version)
	assert.Equal(t, file.Cards, parsed.Cards)
	assert.Equal(t, file.History, parsed.History)
}

func TestRewriteCardRefs(t *testing.T) {
	mapping := map[string]string{"old-1": "new-1"}

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			"resolves mapped reference",
			`<span data-card-id="old-1">Mira</span>`,
			`<span data-card-id="new-1">Mira</span>`,
		},
		{
			"blanks unresolved reference",
			`<span data-card-id="stranger">who?</span>`,
			`<span data-card-id="">who?</span>`,
		},
		{
			"handles multiple references",
			`<a data-card-id="old-1"></a><a data-card-id="old-1"></a>`,
			`<a data-card-id="new-1"></a><a data-card-id="new-1"></a>`,
		},
		{
			"leaves plain text alone",
			"no references here",
			"no references here",
		},
		{
			"empty content",
			"",
			"",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RewriteCardRefs(tt.content, mapping))
		})
	}
}
