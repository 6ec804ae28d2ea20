package entities

import (
	"encoding/json"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CardPatch is a partial update for a card. Nil fields leave the stored
// value unchanged; a non-nil field replaces it wholesale. Type, ID and
// CreatedAt are immutable and have no patch slot.
type CardPatch struct {
	Name        *string
	Number      *int
	Summary     *string
	Description *string
	Notes       *string
	Image       *string
	Tags        *[]string
	Nodes       *json.RawMessage
	Relations   RelationsPatch
}

// Validate rejects patches that would put a card into an invalid state.
func (p CardPatch) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Name, validation.By(optionalNotBlankRule)),
	)
}

func optionalNotBlankRule(value interface{}) error {
	s, ok := value.(*string)
	if !ok || s == nil {
		return nil
	}
	if strings.TrimSpace(*s) == "" {
		return validation.NewError("validation_blank", "cannot be blank")
	}
	return nil
}

// RelationsPatch carries optional replacements for individual relation
// lists. A nil list is left unchanged.
type RelationsPatch struct {
	RelatedLocations  *[]string
	RelatedCharacters *[]string
	AdjacentLocations *[]string
	PresentCharacters *[]string
	RelatedEvents     *[]string
	Bonds             *[]string
	PresentLocations  *[]string
}

// Get returns the replacement for field f, or nil when unset.
func (p *RelationsPatch) Get(f RelationField) *[]string {
	switch f {
	case FieldRelatedLocations:
		return p.RelatedLocations
	case FieldRelatedCharacters:
		return p.RelatedCharacters
	case FieldAdjacentLocations:
		return p.AdjacentLocations
	case FieldPresentCharacters:
		return p.PresentCharacters
	case FieldRelatedEvents:
		return p.RelatedEvents
	case FieldBonds:
		return p.Bonds
	case FieldPresentLocations:
		return p.PresentLocations
	}
	return nil
}

// Set records a replacement list for field f.
func (p *RelationsPatch) Set(f RelationField, ids []string) {
	v := append([]string(nil), ids...)
	switch f {
	case FieldRelatedLocations:
		p.RelatedLocations = &v
	case FieldRelatedCharacters:
		p.RelatedCharacters = &v
	case FieldAdjacentLocations:
		p.AdjacentLocations = &v
	case FieldPresentCharacters:
		p.PresentCharacters = &v
	case FieldRelatedEvents:
		p.RelatedEvents = &v
	case FieldBonds:
		p.Bonds = &v
	case FieldPresentLocations:
		p.PresentLocations = &v
	}
}
