package domain

import "sort"

type Modifier string

const (
	ModGarden      Modifier = "GARDEN"
	ModStudy       Modifier = "STUDY"
	ModParking     Modifier = "PARKING"
	ModBalcony     Modifier = "BALCONY"
	ModModern      Modifier = "MODERN"
	ModTraditional Modifier = "TRADITIONAL"
	ModLuxury      Modifier = "LUXURY"
)

// ModifierSet is an unordered set of modifiers. The zero value is an empty
// set ready for reads; use NewModifierSet before calling Add.
type ModifierSet map[Modifier]struct{}

// NewModifierSet returns a set holding mods; duplicates collapse.
func NewModifierSet(mods ...Modifier) ModifierSet {
	s := make(ModifierSet, len(mods))
	for _, m := range mods {
		s[m] = struct{}{}
	}
	return s
}

func (s ModifierSet) Add(m Modifier) { s[m] = struct{}{} }

func (s ModifierSet) Has(m Modifier) bool {
	_, ok := s[m]
	return ok
}

// Sorted returns the members in lexical order, the canonical form used in
// plans so that output never depends on map iteration order.
func (s ModifierSet) Sorted() []Modifier {
	out := make([]Modifier, 0, len(s))
	for m := range s {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
