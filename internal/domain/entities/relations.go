package entities

// RelationField names one of the ordered id lists a card can carry. Which
// fields a card actually has depends on its type; see FieldsFor.
type RelationField string

const (
	FieldRelatedLocations  RelationField = "relatedLocations"
	FieldRelatedCharacters RelationField = "relatedCharacters"
	FieldAdjacentLocations RelationField = "adjacentLocations"
	FieldPresentCharacters RelationField = "presentCharacters"
	FieldRelatedEvents     RelationField = "relatedEvents"
	FieldBonds             RelationField = "bonds"
	FieldPresentLocations  RelationField = "presentLocations"
)

// AllRelationFields lists every relation field across all card types.
var AllRelationFields = []RelationField{
	FieldRelatedLocations,
	FieldRelatedCharacters,
	FieldAdjacentLocations,
	FieldPresentCharacters,
	FieldRelatedEvents,
	FieldBonds,
	FieldPresentLocations,
}

// Relations holds every relation list a card may carry. Lists preserve
// insertion order and never contain duplicates.
type Relations struct {
	RelatedLocations  []string `json:"relatedLocations,omitempty"`
	RelatedCharacters []string `json:"relatedCharacters,omitempty"`
	AdjacentLocations []string `json:"adjacentLocations,omitempty"`
	PresentCharacters []string `json:"presentCharacters,omitempty"`
	RelatedEvents     []string `json:"relatedEvents,omitempty"`
	Bonds             []string `json:"bonds,omitempty"`
	PresentLocations  []string `json:"presentLocations,omitempty"`
}

// Get returns the list stored under f. Unknown fields return nil.
func (r *Relations) Get(f RelationField) []string {
	switch f {
	case FieldRelatedLocations:
		return r.RelatedLocations
	case FieldRelatedCharacters:
		return r.RelatedCharacters
	case FieldAdjacentLocations:
		return r.AdjacentLocations
	case FieldPresentCharacters:
		return r.PresentCharacters
	case FieldRelatedEvents:
		return r.RelatedEvents
	case FieldBonds:
		return r.Bonds
	case FieldPresentLocations:
		return r.PresentLocations
	}
	return nil
}

// Set replaces the list stored under f.
func (r *Relations) Set(f RelationField, ids []string) {
	switch f {
	case FieldRelatedLocations:
		r.RelatedLocations = ids
	case FieldRelatedCharacters:
		r.RelatedCharacters = ids
	case FieldAdjacentLocations:
		r.AdjacentLocations = ids
	case FieldPresentCharacters:
		r.PresentCharacters = ids
	case FieldRelatedEvents:
		r.RelatedEvents = ids
	case FieldBonds:
		r.Bonds = ids
	case FieldPresentLocations:
		r.PresentLocations = ids
	}
}

// Contains reports whether the list under f holds id.
func (r *Relations) Contains(f RelationField, id string) bool {
	for _, v := range r.Get(f) {
		if v == id {
			return true
		}
	}
	return false
}

// RemoveID strips id from every relation list and reports whether anything
// changed. Used for cascade cleanup when a card is deleted.
func (r *Relations) RemoveID(id string) bool {
	changed := false
	for _, f := range AllRelationFields {
		ids := r.Get(f)
		filtered := ids[:0:0]
		for _, v := range ids {
			if v != id {
				filtered = append(filtered, v)
			}
		}
		if len(filtered) != len(ids) {
			r.Set(f, filtered)
			changed = true
		}
	}
	return changed
}

// Clone returns a deep copy.
func (r Relations) Clone() Relations {
	var out Relations
	for _, f := range AllRelationFields {
		if ids := r.Get(f); ids != nil {
			out.Set(f, append([]string(nil), ids...))
		}
	}
	return out
}

// PrimaryField describes an editable relationship field together with the
// card type its entries must reference.
type PrimaryField struct {
	Field  RelationField
	Target CardType
}

// primaryFields enumerates, per card type, the fields the synchronizer
// treats as edge sources. The remaining fields (relatedEvents,
// presentLocations) are written only as reciprocals.
var primaryFields = map[CardType][]PrimaryField{
	CardTypeEvent: {
		{Field: FieldRelatedLocations, Target: CardTypeLocation},
		{Field: FieldRelatedCharacters, Target: CardTypeCharacter},
	},
	CardTypeLocation: {
		{Field: FieldAdjacentLocations, Target: CardTypeLocation},
		{Field: FieldPresentCharacters, Target: CardTypeCharacter},
	},
	CardTypeCharacter: {
		{Field: FieldBonds, Target: CardTypeCharacter},
	},
}

// PrimaryFields returns the edge-source fields for cards of type t.
func PrimaryFields(t CardType) []PrimaryField {
	return primaryFields[t]
}

// fieldTargets maps every relation field a card type carries to the card
// type its entries must reference.
var fieldTargets = map[CardType]map[RelationField]CardType{
	CardTypeEvent: {
		FieldRelatedLocations:  CardTypeLocation,
		FieldRelatedCharacters: CardTypeCharacter,
	},
	CardTypeLocation: {
		FieldAdjacentLocations: CardTypeLocation,
		FieldPresentCharacters: CardTypeCharacter,
		FieldRelatedEvents:     CardTypeEvent,
	},
	CardTypeCharacter: {
		FieldBonds:            CardTypeCharacter,
		FieldPresentLocations: CardTypeLocation,
		FieldRelatedEvents:    CardTypeEvent,
	},
}

// FieldsFor returns every relation field carried by cards of type t, in a
// stable order.
func FieldsFor(t CardType) []RelationField {
	var out []RelationField
	for _, f := range AllRelationFields {
		if _, ok := fieldTargets[t][f]; ok {
			out = append(out, f)
		}
	}
	return out
}

// FieldTarget returns the card type entries of field f on a card of type t
// must reference, and whether cards of type t carry f at all.
func FieldTarget(t CardType, f RelationField) (CardType, bool) {
	target, ok := fieldTargets[t][f]
	return target, ok
}

// reciprocalFields resolves the field on a target card that mirrors an edge
// set on a source card, keyed by the source card's type and the target
// card's actual type.
var reciprocalFields = map[CardType]map[CardType]RelationField{
	CardTypeEvent: {
		CardTypeLocation:  FieldRelatedEvents,
		CardTypeCharacter: FieldRelatedEvents,
	},
	CardTypeLocation: {
		CardTypeLocation:  FieldAdjacentLocations,
		CardTypeCharacter: FieldPresentLocations,
	},
	CardTypeCharacter: {
		CardTypeCharacter: FieldBonds,
	},
}

// ReciprocalField returns the field on a card of type target that must
// mirror an edge held by a card of type source. The second result is false
// when the pair has no defined reciprocal.
func ReciprocalField(source, target CardType) (RelationField, bool) {
	f, ok := reciprocalFields[source][target]
	return f, ok
}
