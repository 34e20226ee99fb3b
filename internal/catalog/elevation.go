package catalog

import (
	"fmt"

	"github.com/alexanderramin/housewright/internal/domain"
)

// Elevation describes the street-facing look suggested for a plan.
type Elevation struct {
	FrontDesign    string   `json:"front_design"`
	ColorScheme    string   `json:"color_scheme"`
	DesignElements []string `json:"design_elements"`
	Landscaping    []string `json:"landscaping"`
}

type massing string

const (
	massingSingle massing = "single"
	massingDuplex massing = "duplex"
	massingVilla  massing = "villa"
)

func massingOf(ht domain.HouseType) massing {
	switch ht {
	case domain.HouseDuplex:
		return massingDuplex
	case domain.HouseVilla:
		return massingVilla
	default:
		return massingSingle
	}
}

var frontStyles = map[massing]string{
	massingSingle: "Minimalist front with flat roof, linear windows, and %s.",
	massingDuplex: "Contemporary style with glass balconies and %s.",
	massingVilla:  "Villa front with large glass panels, landscaped porch, and %s.",
}

var colorSchemes = map[massing]map[domain.Orientation]string{
	massingSingle: {
		domain.North: "Light beige with white accents",
		domain.South: "Warm gray with cream highlights",
		domain.East:  "Soft white with light blue accents",
		domain.West:  "Warm beige with brown accents",
	},
	massingDuplex: {
		domain.North: "Modern gray with white and black accents",
		domain.South: "Contemporary white with glass elements",
		domain.East:  "Light gray with blue glass accents",
		domain.West:  "Warm gray with wooden elements",
	},
	massingVilla: {
		domain.North: "White with gold accents",
		domain.South: "Elegant beige with stone elements",
		domain.East:  "Modern white with glass and steel",
		domain.West:  "Warm stone with wooden elements",
	},
}

var designElements = map[massing][]string{
	massingSingle: {
		"Clean geometric lines",
		"Large windows for natural light",
		"Minimalist entrance",
		"Flat roof design",
	},
	massingDuplex: {
		"Glass balconies",
		"Split-level facade",
		"Contemporary entrance",
		"Rooftop terrace access",
	},
	massingVilla: {
		"Grand entrance with columns",
		"Large glass panels",
		"Landscaped front yard",
		"Multiple balconies and terraces",
	},
}

// landscapeBands is ordered; the last band is the catch-all.
var landscapeBands = []struct {
	maxCents float64
	items    []string
}{
	{5, []string{"Small front garden with low-maintenance plants", "Paved driveway", "Simple lawn area"}},
	{10, []string{"Medium-sized garden with flowering plants", "Stone pathway to entrance", "Small water feature", "Outdoor seating area"}},
	{0, []string{"Landscaping in multiple zones", "Large water feature or pool", "Outdoor entertainment area", "Garden lighting"}},
}

// ElevationFor suggests a front elevation for a house type facing
// orientation. MODERN and TRADITIONAL adjust the palette of design elements;
// GARDEN adds a landscaping note.
func ElevationFor(ht domain.HouseType, o domain.Orientation, landCents float64, mods domain.ModifierSet) Elevation {
	m := massingOf(ht)
	entry := fmt.Sprintf("%s-facing entry with modern light placement", o)
	if mods.Has(domain.ModTraditional) {
		entry = fmt.Sprintf("%s-facing entry under a sloped tiled portico", o)
	}

	scheme, ok := colorSchemes[m][o.Cardinal()]
	if !ok {
		scheme = "Neutral color scheme"
	}

	elements := append([]string(nil), designElements[m]...)
	switch {
	case mods.Has(domain.ModModern):
		elements = append(elements, "Modern materials (glass, steel)", "Neutral color palette")
	case mods.Has(domain.ModTraditional):
		elements = append(elements, "Sloped clay-tile roof", "Carved wooden entrance door")
	}
	if mods.Has(domain.ModLuxury) {
		elements = append(elements, "Premium cladding (marble, granite)")
	}

	var landscaping []string
	for _, b := range landscapeBands {
		if b.maxCents == 0 || landCents <= b.maxCents {
			landscaping = append(landscaping, b.items...)
			break
		}
	}
	if mods.Has(domain.ModGarden) {
		landscaping = append(landscaping, "Dedicated garden bed along the front setback")
	}

	return Elevation{
		FrontDesign:    fmt.Sprintf(frontStyles[m], entry),
		ColorScheme:    scheme,
		DesignElements: elements,
		Landscaping:    landscaping,
	}
}
