package domain

import "strings"

type HouseType string

const (
	House1BHK   HouseType = "1BHK"
	House2BHK   HouseType = "2BHK"
	House3BHK   HouseType = "3BHK"
	HouseDuplex HouseType = "Duplex"
	HouseVilla  HouseType = "Villa"
)

// HouseTypes lists every house type from smallest to largest.
var HouseTypes = []HouseType{House1BHK, House2BHK, House3BHK, HouseDuplex, HouseVilla}

type Orientation string

const (
	North     Orientation = "North"
	South     Orientation = "South"
	East      Orientation = "East"
	West      Orientation = "West"
	NorthEast Orientation = "NE"
	NorthWest Orientation = "NW"
	SouthEast Orientation = "SE"
	SouthWest Orientation = "SW"
)

// ValidOrientations is the canonical set of accepted orientation values.
var ValidOrientations = map[Orientation]bool{
	North: true, South: true, East: true, West: true,
	NorthEast: true, NorthWest: true, SouthEast: true, SouthWest: true,
}

var orientationAliases = map[string]Orientation{
	"n": North, "north": North,
	"s": South, "south": South,
	"e": East, "east": East,
	"w": West, "west": West,
	"ne": NorthEast, "northeast": NorthEast, "north-east": NorthEast,
	"nw": NorthWest, "northwest": NorthWest, "north-west": NorthWest,
	"se": SouthEast, "southeast": SouthEast, "south-east": SouthEast,
	"sw": SouthWest, "southwest": SouthWest, "south-west": SouthWest,
}

// ParseOrientation accepts the canonical values plus common spellings
// ("north-east", "sw") and returns the canonical Orientation.
func ParseOrientation(s string) (Orientation, error) {
	if o, ok := orientationAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return o, nil
	}
	return "", &InvalidInputError{
		Field:    "orientation",
		Value:    s,
		Expected: "one of North, South, East, West, NE, NW, SE, SW",
	}
}

// Cardinal folds intercardinal orientations onto the cardinal direction
// they face most: NE/NW → North, SE/SW → South.
func (o Orientation) Cardinal() Orientation {
	switch o {
	case NorthEast, NorthWest:
		return North
	case SouthEast, SouthWest:
		return South
	default:
		return o
	}
}

type RoomKind string

const (
	RoomLiving        RoomKind = "living"
	RoomDining        RoomKind = "dining"
	RoomKitchen       RoomKind = "kitchen"
	RoomMasterBedroom RoomKind = "master_bedroom"
	RoomBedroom       RoomKind = "bedroom"
	RoomBathroom      RoomKind = "bathroom"
	RoomStudy         RoomKind = "study"
	RoomStaircase     RoomKind = "staircase"
	RoomBalcony       RoomKind = "balcony"
	RoomParking       RoomKind = "parking"
	RoomGarden        RoomKind = "garden"
)

var roomLabels = map[RoomKind]string{
	RoomLiving:        "Living Room",
	RoomDining:        "Dining",
	RoomKitchen:       "Kitchen",
	RoomMasterBedroom: "Master Bedroom",
	RoomBedroom:       "Bedroom",
	RoomBathroom:      "Bathroom",
	RoomStudy:         "Study",
	RoomStaircase:     "Staircase",
	RoomBalcony:       "Balcony",
	RoomParking:       "Parking",
	RoomGarden:        "Garden",
}

// Label returns the human-readable room name used in plans and reports.
func (k RoomKind) Label() string {
	if l, ok := roomLabels[k]; ok {
		return l
	}
	return string(k)
}

// Covered reports whether the room is roofed built-up area. Open-air
// rooms still take floor space but are excluded from construction cost.
func (k RoomKind) Covered() bool {
	return k != RoomGarden
}

// Known reports whether k is part of the room vocabulary.
func (k RoomKind) Known() bool {
	_, ok := roomLabels[k]
	return ok
}

type MaterialTier string

const (
	TierEconomy  MaterialTier = "Economy"
	TierStandard MaterialTier = "Standard"
	TierPremium  MaterialTier = "Premium"
)

// Tiers lists material tiers from cheapest to most expensive.
var Tiers = []MaterialTier{TierEconomy, TierStandard, TierPremium}

// Up returns the next tier above t, saturating at Premium.
func (t MaterialTier) Up() MaterialTier {
	for i, tier := range Tiers {
		if tier == t && i+1 < len(Tiers) {
			return Tiers[i+1]
		}
	}
	return t
}

// Rank orders tiers; Economy is 0.
func (t MaterialTier) Rank() int {
	for i, tier := range Tiers {
		if tier == t {
			return i
		}
	}
	return -1
}

type CostCategory string

const (
	CostStructure  CostCategory = "Structure"
	CostFinishing  CostCategory = "Finishing"
	CostElectrical CostCategory = "Electrical"
	CostPlumbing   CostCategory = "Plumbing"
	CostLabor      CostCategory = "Labor"
	CostOther      CostCategory = "Other"
)

type BudgetFit string

const (
	UnderBudget BudgetFit = "UnderBudget"
	OnBudget    BudgetFit = "OnBudget"
	OverBudget  BudgetFit = "OverBudget"
)
