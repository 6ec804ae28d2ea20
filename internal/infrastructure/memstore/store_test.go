package memstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fabula-app/fabula/internal/domain/entities"
)

func card(id string) *entities.Card {
	return &entities.Card{ID: id, Type: entities.CardTypeEvent, Name: id}
}

func TestStore_InsertAndFind(t *testing.T) {
	s := New()
	s.Insert(card("a"))
	s.Insert(card("b"))

	require.NotNil(t, s.Find("a"))
	assert.Equal(t, "b", s.Find("b").ID)
	assert.Nil(t, s.Find("missing"))
	assert.Equal(t, 2, s.Len())
}

func TestStore_Insert_SameIDReplaces(t *testing.T) {
	s := New()
	s.Insert(card("a"))

	replacement := card("a")
	replacement.Name = "renamed"
	s.Insert(replacement)

	assert.Equal(t, 1, s.Len())
	assert.Equal(t, "renamed", s.Find("a").Name)
}

func TestStore_Remove_ReindexesTail(t *testing.T) {
	s := New()
	s.Insert(card("a"))
	s.Insert(card("b"))
	s.Insert(card("c"))

	require.True(t, s.Remove("a"))
	assert.False(t, s.Remove("a"))

	list := s.List()
	require.Len(t, list, 2)
	assert.Equal(t, "b", list[0].ID)
	assert.Equal(t, "c", list[1].ID)
	assert.Equal(t, "c", s.Find("c").ID)
}

func TestStore_Replace(t *testing.T) {
	s := New()
	s.Insert(card("a"))

	updated := card("a")
	updated.Name = "updated"
	require.True(t, s.Replace(updated))
	assert.Equal(t, "updated", s.Find("a").Name)

	assert.False(t, s.Replace(card("missing")))
}

func TestStore_List_PreservesInsertionOrder(t *testing.T) {
	s := New()
	for _, id := range []string{"x", "y", "z"} {
		s.Insert(card(id))
	}

	var ids []string
	for _, c := range s.List() {
		ids = append(ids, c.ID)
	}
	assert.Equal(t, []string{"x", "y", "z"}, ids)
}
