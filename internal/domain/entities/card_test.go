package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCard_Ref(t *testing.T) {
	tests := []struct {
		cardType CardType
		number   int
		want     string
	}{
		{CardTypeEvent, 12, "e12"},
		{CardTypeLocation, 1, "l1"},
		{CardTypeCharacter, 3, "c3"},
	}
	for _, tt := range tests {
		card := Card{Type: tt.cardType, Number: tt.number}
		assert.Equal(t, tt.want, card.Ref())
	}
}

func TestTypeForPrefix(t *testing.T) {
	got, ok := TypeForPrefix("c")
	require.True(t, ok)
	assert.Equal(t, CardTypeCharacter, got)

	got, ok = TypeForPrefix("L")
	require.True(t, ok)
	assert.Equal(t, CardTypeLocation, got)

	_, ok = TypeForPrefix("x")
	assert.False(t, ok)
}

func TestCard_Validate(t *testing.T) {
	card := Card{Type: CardTypeEvent, Name: "The Fall"}
	assert.NoError(t, card.Validate())

	card = Card{Type: "monster", Name: "The Fall"}
	assert.Error(t, card.Validate())

	card = Card{Type: CardTypeEvent, Name: "   "}
	assert.Error(t, card.Validate())
}

func TestCard_Clone_Independent(t *testing.T) {
	card := &Card{
		ID:   "id-1",
		Type: CardTypeCharacter,
		Name: "Mira",
		Tags: []string{"hero"},
		Relations: Relations{
			Bonds: []string{"id-2"},
		},
	}

	clone := card.Clone()
	clone.Tags[0] = "villain"
	clone.Relations.Bonds[0] = "id-9"

	assert.Equal(t, []string{"hero"}, card.Tags)
	assert.Equal(t, []string{"id-2"}, card.Relations.Bonds)
}

func TestCardPatch_Validate(t *testing.T) {
	blank := "   "
	assert.Error(t, CardPatch{Name: &blank}.Validate())

	name := "Mira"
	assert.NoError(t, CardPatch{Name: &name}.Validate())
	assert.NoError(t, CardPatch{}.Validate())
}
