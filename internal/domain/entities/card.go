// Package entities contains core domain data structures.
package entities

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CardType represents the kind of a card. The set is closed: every card is
// an event, a location, or a character, fixed at creation.
type CardType string

const (
	CardTypeEvent     CardType = "event"
	CardTypeLocation  CardType = "location"
	CardTypeCharacter CardType = "character"
)

// CardTypes lists all known card types in display order.
var CardTypes = []CardType{CardTypeEvent, CardTypeLocation, CardTypeCharacter}

// IsValid reports whether t is one of the known card types.
func (t CardType) IsValid() bool {
	switch t {
	case CardTypeEvent, CardTypeLocation, CardTypeCharacter:
		return true
	}
	return false
}

// Prefix returns the single-letter prefix used in human-facing card refs
// (e.g. "c3" for character number 3).
func (t CardType) Prefix() string {
	switch t {
	case CardTypeEvent:
		return "e"
	case CardTypeLocation:
		return "l"
	case CardTypeCharacter:
		return "c"
	}
	return "?"
}

// TypeForPrefix resolves a ref prefix letter back to a card type.
func TypeForPrefix(p string) (CardType, bool) {
	switch strings.ToLower(p) {
	case "e":
		return CardTypeEvent, true
	case "l":
		return CardTypeLocation, true
	case "c":
		return CardTypeCharacter, true
	}
	return "", false
}

// Card represents a single worldbuilding entry. ID is opaque and immutable;
// Number is a positive integer unique within the card's type and is the
// human-facing handle. Content fields are opaque to the repository and the
// synchronizer.
type Card struct {
	ID          string          `json:"id"`
	Type        CardType        `json:"type"`
	Number      int             `json:"number"`
	Name        string          `json:"name"`
	Summary     string          `json:"summary,omitempty"`
	Description string          `json:"description,omitempty"`
	Notes       string          `json:"notes,omitempty"`
	Image       string          `json:"image,omitempty"`
	Tags        []string        `json:"tags,omitempty"`
	Nodes       json.RawMessage `json:"nodes,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	Relations   Relations       `json:"relations"`
}

// Ref returns the human-facing reference for the card, e.g. "c3".
func (c *Card) Ref() string {
	return c.Type.Prefix() + strconv.Itoa(c.Number)
}

// Validate checks the structural invariants a stored card must satisfy.
func (c *Card) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Type, validation.Required, validation.By(cardTypeRule)),
		validation.Field(&c.Name, validation.Required, validation.By(notBlankRule)),
	)
}

// Clone returns a deep copy of the card. Snapshots returned by the
// repository are clones, so callers can never mutate the store through them.
func (c *Card) Clone() *Card {
	out := *c
	out.Tags = append([]string(nil), c.Tags...)
	out.Nodes = append(json.RawMessage(nil), c.Nodes...)
	out.Relations = c.Relations.Clone()
	return &out
}

func cardTypeRule(value interface{}) error {
	t, _ := value.(CardType)
	if !t.IsValid() {
		return validation.NewError("validation_card_type", "must be one of event, location, character")
	}
	return nil
}

func notBlankRule(value interface{}) error {
	s, _ := value.(string)
	if strings.TrimSpace(s) == "" {
		return validation.NewError("validation_blank", "cannot be blank")
	}
	return nil
}
