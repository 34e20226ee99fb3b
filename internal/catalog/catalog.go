// Package catalog holds the static decision tables of the plan engine: the
// land/family classification rules, the room manifest of every house type,
// per-kind room geometry and the rooms that preference modifiers may add.
//
// Tables are built once and shared read-only by every request. A catalog
// loaded from YAML replaces the built-in one wholesale and is validated
// before use; nothing mutates a catalog after construction.
package catalog

import (
	"fmt"
	"math"

	"github.com/alexanderramin/housewright/internal/domain"
)

// RoomSpec declares one kind of room in a template manifest.
type RoomSpec struct {
	Kind       domain.RoomKind `yaml:"kind" json:"kind"`
	MinCount   int             `yaml:"min_count" json:"min_count"`
	SizeWeight float64         `yaml:"size_weight" json:"size_weight"`
	Floor      int             `yaml:"floor" json:"floor"`
	AdjacentTo domain.RoomKind `yaml:"adjacent_to,omitempty" json:"adjacent_to,omitempty"`
}

// Template is the canonical room manifest of a house type.
type Template struct {
	HouseType domain.HouseType `yaml:"house_type" json:"house_type"`
	Rooms     []RoomSpec       `yaml:"rooms" json:"rooms"`
	// FloorWeights are relative shares of the buildable footprint per floor
	// (index = floor). Missing entries weigh 1, so by default the footprint
	// is split equally across floors.
	FloorWeights []float64 `yaml:"floor_weights,omitempty" json:"floor_weights,omitempty"`
}

// FloorCount returns the number of declared floors (highest floor + 1).
// A template with no rooms declares zero floors.
func (t *Template) FloorCount() int {
	n := 0
	for _, r := range t.Rooms {
		if r.Floor+1 > n {
			n = r.Floor + 1
		}
	}
	return n
}

// FloorWeight returns the relative weight of floor.
func (t *Template) FloorWeight(floor int) float64 {
	if floor < len(t.FloorWeights) {
		return t.FloorWeights[floor]
	}
	return 1.0
}

// FloorShare returns the fraction of the buildable footprint usable on
// floor. Shares over all declared floors sum to 1.
func (t *Template) FloorShare(floor int) float64 {
	n := t.FloorCount()
	if floor < 0 || floor >= n {
		return 0
	}
	var total float64
	for f := 0; f < n; f++ {
		total += t.FloorWeight(f)
	}
	return t.FloorWeight(floor) / total
}

// Declares reports whether the manifest already contains kind.
func (t *Template) Declares(kind domain.RoomKind) bool {
	for _, r := range t.Rooms {
		if r.Kind == kind {
			return true
		}
	}
	return false
}

// Rule maps a (land, family) range to a house type. Land bounds are
// (MinCents, MaxCents]; MaxFamily == 0 means no upper bound.
type Rule struct {
	MinCents  float64          `yaml:"min_cents" json:"min_cents"`
	MaxCents  float64          `yaml:"max_cents" json:"max_cents"`
	MinFamily int              `yaml:"min_family" json:"min_family"`
	MaxFamily int              `yaml:"max_family" json:"max_family"`
	HouseType domain.HouseType `yaml:"house_type" json:"house_type"`
}

// Matches reports whether the rule covers the given land and family size.
func (r Rule) Matches(landCents float64, familySize int) bool {
	if landCents <= r.MinCents || landCents > r.MaxCents {
		return false
	}
	if familySize < r.MinFamily {
		return false
	}
	return r.MaxFamily == 0 || familySize <= r.MaxFamily
}

// CatchAll reports whether the rule covers the whole valid input domain.
func (r Rule) CatchAll() bool {
	return r.MinCents <= 0 && math.IsInf(r.MaxCents, 1) && r.MinFamily <= 1 && r.MaxFamily == 0
}

// RoomGeometry bounds the shape of a room kind. Aspect is length/width (>= 1).
type RoomGeometry struct {
	MinWidth  float64 `yaml:"min_width" json:"min_width"`
	MinLength float64 `yaml:"min_length" json:"min_length"`
	Aspect    float64 `yaml:"aspect" json:"aspect"`
}

// MinArea is the smallest floor area a room of this kind may receive.
func (g RoomGeometry) MinArea() float64 {
	return g.MinWidth * g.MinLength
}

// ExtraRoom is the synthetic spec a modifier appends when the template does
// not already declare the kind.
type ExtraRoom struct {
	Modifier   domain.Modifier `yaml:"modifier" json:"modifier"`
	Kind       domain.RoomKind `yaml:"kind" json:"kind"`
	SizeWeight float64         `yaml:"size_weight" json:"size_weight"`
	Floor      int             `yaml:"floor" json:"floor"`
}

// Catalog bundles every decision table. Build one with New; the zero value
// is not usable.
type Catalog struct {
	// CoverageRatio is the fraction of the plot that may be built on,
	// after setbacks.
	CoverageRatio float64
	rules         []Rule
	templates     []Template
	byType        map[domain.HouseType]*Template
	geometry      map[domain.RoomKind]RoomGeometry
	extras        []ExtraRoom
}

// Tables is the serialisable form of a catalog.
type Tables struct {
	CoverageRatio float64                          `yaml:"coverage_ratio" json:"coverage_ratio"`
	Rules         []Rule                           `yaml:"rules" json:"rules"`
	Templates     []Template                       `yaml:"templates" json:"templates"`
	Geometry      map[domain.RoomKind]RoomGeometry `yaml:"geometry" json:"geometry"`
	Extras        []ExtraRoom                      `yaml:"extras" json:"extras"`
}

// New validates tables and builds a read-only Catalog. Any table defect is
// returned as *domain.InternalConsistencyError.
func New(t Tables) (*Catalog, error) {
	if errs := ValidateTables(t); len(errs) > 0 {
		return nil, &domain.InternalConsistencyError{Component: "catalog", Detail: joinErrors(errs)}
	}
	c := &Catalog{
		CoverageRatio: t.CoverageRatio,
		rules:         append([]Rule(nil), t.Rules...),
		templates:     make([]Template, len(t.Templates)),
		byType:        make(map[domain.HouseType]*Template, len(t.Templates)),
		geometry:      make(map[domain.RoomKind]RoomGeometry, len(t.Geometry)),
		extras:        append([]ExtraRoom(nil), t.Extras...),
	}
	for i, tmpl := range t.Templates {
		tmpl.Rooms = append([]RoomSpec(nil), tmpl.Rooms...)
		tmpl.FloorWeights = append([]float64(nil), tmpl.FloorWeights...)
		c.templates[i] = tmpl
		c.byType[tmpl.HouseType] = &c.templates[i]
	}
	for k, g := range t.Geometry {
		c.geometry[k] = g
	}
	return c, nil
}

// Tables returns a copy of the catalog's tables.
func (c *Catalog) Tables() Tables {
	t := Tables{
		CoverageRatio: c.CoverageRatio,
		Rules:         c.Rules(),
		Templates:     make([]Template, len(c.templates)),
		Geometry:      make(map[domain.RoomKind]RoomGeometry, len(c.geometry)),
		Extras:        c.Extras(),
	}
	for i, tmpl := range c.templates {
		tmpl.Rooms = append([]RoomSpec(nil), tmpl.Rooms...)
		tmpl.FloorWeights = append([]float64(nil), tmpl.FloorWeights...)
		t.Templates[i] = tmpl
	}
	for k, g := range c.geometry {
		t.Geometry[k] = g
	}
	return t
}

// Classify returns the template of the first rule matching the inputs.
func (c *Catalog) Classify(landCents float64, familySize int) (*Template, error) {
	if landCents <= 0 || math.IsNaN(landCents) {
		return nil, &domain.InvalidInputError{Field: "land_area", Value: landCents, Expected: "a positive number of cents"}
	}
	if familySize < 1 {
		return nil, &domain.InvalidInputError{Field: "family_size", Value: familySize, Expected: "an integer >= 1"}
	}
	for _, r := range c.rules {
		if r.Matches(landCents, familySize) {
			return c.Lookup(r.HouseType)
		}
	}
	return nil, &domain.InternalConsistencyError{
		Component: "catalog",
		Detail:    fmt.Sprintf("no rule matches land=%.2f cents family=%d", landCents, familySize),
	}
}

// Lookup returns the template for a house type.
func (c *Catalog) Lookup(ht domain.HouseType) (*Template, error) {
	t, ok := c.byType[ht]
	if !ok {
		return nil, &domain.InternalConsistencyError{Component: "catalog", Detail: fmt.Sprintf("no template for house type %q", ht)}
	}
	return t, nil
}

// Geometry returns the shape bounds for a room kind.
func (c *Catalog) Geometry(kind domain.RoomKind) (RoomGeometry, error) {
	g, ok := c.geometry[kind]
	if !ok {
		return RoomGeometry{}, &domain.InternalConsistencyError{Component: "catalog", Detail: fmt.Sprintf("no geometry for room kind %q", kind)}
	}
	return g, nil
}

// Extras returns the modifier-driven synthetic rooms in table order.
func (c *Catalog) Extras() []ExtraRoom {
	return append([]ExtraRoom(nil), c.extras...)
}

// Rules returns the classification rules in evaluation order.
func (c *Catalog) Rules() []Rule {
	return append([]Rule(nil), c.rules...)
}

// Templates returns all templates in declaration order.
func (c *Catalog) Templates() []*Template {
	out := make([]*Template, len(c.templates))
	for i := range c.templates {
		out[i] = &c.templates[i]
	}
	return out
}

var builtin *Catalog

func init() {
	c, err := New(BuiltinTables())
	if err != nil {
		panic(fmt.Sprintf("catalog: built-in tables are invalid: %v", err))
	}
	builtin = c
}

// Default returns the built-in catalog shared by all callers.
func Default() *Catalog {
	return builtin
}

// Classify classifies against the built-in catalog.
func Classify(landCents float64, familySize int) (*Template, error) {
	return builtin.Classify(landCents, familySize)
}
