package catalog

import (
	"math"

	"github.com/alexanderramin/housewright/internal/domain"
)

// CoverageRatio is the default share of the plot left buildable after
// setbacks and open space.
const CoverageRatio = 0.65

// GardenWeight is the size weight of a garden added by the GARDEN modifier.
const GardenWeight = 2.0

// BuiltinTables returns a fresh copy of the built-in decision tables.
func BuiltinTables() Tables {
	return Tables{
		CoverageRatio: CoverageRatio,
		Rules:         builtinRules(),
		Templates:     builtinTemplates(),
		Geometry:      builtinGeometry(),
		Extras: []ExtraRoom{
			{Modifier: domain.ModGarden, Kind: domain.RoomGarden, SizeWeight: GardenWeight},
			{Modifier: domain.ModStudy, Kind: domain.RoomStudy, SizeWeight: 1.2},
			{Modifier: domain.ModParking, Kind: domain.RoomParking, SizeWeight: 2.0},
			{Modifier: domain.ModBalcony, Kind: domain.RoomBalcony, SizeWeight: 0.8},
		},
	}
}

func builtinRules() []Rule {
	inf := math.Inf(1)
	return []Rule{
		{MinCents: 0, MaxCents: 3, MinFamily: 1, MaxFamily: 2, HouseType: domain.House1BHK},
		{MinCents: 0, MaxCents: 3, MinFamily: 3, MaxFamily: 4, HouseType: domain.House2BHK},
		{MinCents: 0, MaxCents: 3, MinFamily: 5, HouseType: domain.House3BHK},
		{MinCents: 3, MaxCents: 6, MinFamily: 1, MaxFamily: 3, HouseType: domain.House2BHK},
		{MinCents: 3, MaxCents: 6, MinFamily: 4, HouseType: domain.House3BHK},
		{MinCents: 6, MaxCents: 10, MinFamily: 1, MaxFamily: 4, HouseType: domain.House3BHK},
		{MinCents: 6, MaxCents: 10, MinFamily: 5, HouseType: domain.HouseDuplex},
		{MinCents: 0, MaxCents: inf, MinFamily: 1, HouseType: domain.HouseVilla},
	}
}

func builtinGeometry() map[domain.RoomKind]RoomGeometry {
	return map[domain.RoomKind]RoomGeometry{
		domain.RoomBedroom:       {MinWidth: 9, MinLength: 10, Aspect: 1.1},
		domain.RoomMasterBedroom: {MinWidth: 11, MinLength: 12, Aspect: 1.15},
		domain.RoomLiving:        {MinWidth: 11, MinLength: 14, Aspect: 1.4},
		domain.RoomDining:        {MinWidth: 8, MinLength: 10, Aspect: 1.25},
		domain.RoomKitchen:       {MinWidth: 7, MinLength: 9, Aspect: 1.3},
		domain.RoomBathroom:      {MinWidth: 5, MinLength: 7, Aspect: 1.4},
		domain.RoomStudy:         {MinWidth: 7, MinLength: 8, Aspect: 1.15},
		domain.RoomGarden:        {MinWidth: 8, MinLength: 10, Aspect: 1.5},
		domain.RoomParking:       {MinWidth: 9, MinLength: 16, Aspect: 1.8},
		domain.RoomBalcony:       {MinWidth: 4, MinLength: 8, Aspect: 2.5},
		domain.RoomStaircase:     {MinWidth: 6, MinLength: 10, Aspect: 1.7},
	}
}

func room(kind domain.RoomKind, count int, weight float64, floor int) RoomSpec {
	return RoomSpec{Kind: kind, MinCount: count, SizeWeight: weight, Floor: floor}
}

func builtinTemplates() []Template {
	return []Template{
		{
			HouseType: domain.House1BHK,
			Rooms: []RoomSpec{
				room(domain.RoomLiving, 1, 3, 0),
				room(domain.RoomBedroom, 1, 3, 0),
				room(domain.RoomKitchen, 1, 1.5, 0),
				room(domain.RoomBathroom, 1, 0.8, 0),
			},
		},
		{
			HouseType: domain.House2BHK,
			Rooms: []RoomSpec{
				room(domain.RoomLiving, 1, 3.5, 0),
				room(domain.RoomMasterBedroom, 1, 3, 0),
				room(domain.RoomBedroom, 1, 2.5, 0),
				room(domain.RoomKitchen, 1, 1.5, 0),
				room(domain.RoomDining, 1, 1.5, 0),
				{Kind: domain.RoomBathroom, MinCount: 1, SizeWeight: 0.8, Floor: 0, AdjacentTo: domain.RoomMasterBedroom},
				room(domain.RoomBathroom, 1, 0.8, 0),
			},
		},
		{
			HouseType: domain.House3BHK,
			Rooms: []RoomSpec{
				room(domain.RoomLiving, 1, 4, 0),
				room(domain.RoomDining, 1, 2, 0),
				room(domain.RoomMasterBedroom, 1, 3.2, 0),
				room(domain.RoomBedroom, 2, 2.6, 0),
				room(domain.RoomKitchen, 1, 1.8, 0),
				{Kind: domain.RoomBathroom, MinCount: 1, SizeWeight: 0.9, Floor: 0, AdjacentTo: domain.RoomMasterBedroom},
				room(domain.RoomBathroom, 1, 0.9, 0),
			},
		},
		{
			HouseType: domain.HouseDuplex,
			Rooms: []RoomSpec{
				room(domain.RoomLiving, 1, 4, 0),
				room(domain.RoomDining, 1, 2, 0),
				room(domain.RoomKitchen, 1, 1.8, 0),
				room(domain.RoomBedroom, 1, 2.6, 0),
				room(domain.RoomBathroom, 1, 0.9, 0),
				room(domain.RoomStaircase, 1, 1, 0),
				room(domain.RoomMasterBedroom, 1, 3.2, 1),
				{Kind: domain.RoomBathroom, MinCount: 1, SizeWeight: 0.9, Floor: 1, AdjacentTo: domain.RoomMasterBedroom},
				room(domain.RoomBedroom, 2, 2.6, 1),
				room(domain.RoomBathroom, 1, 0.9, 1),
				room(domain.RoomBalcony, 1, 0.8, 1),
				room(domain.RoomStaircase, 1, 1, 1),
			},
		},
		{
			HouseType:    domain.HouseVilla,
			FloorWeights: []float64{1.0, 0.85},
			Rooms: []RoomSpec{
				room(domain.RoomLiving, 1, 4.5, 0),
				room(domain.RoomDining, 1, 2.2, 0),
				room(domain.RoomKitchen, 1, 2, 0),
				room(domain.RoomBedroom, 1, 2.8, 0),
				room(domain.RoomBathroom, 1, 1, 0),
				room(domain.RoomParking, 1, 2.5, 0),
				room(domain.RoomStaircase, 1, 1, 0),
				room(domain.RoomMasterBedroom, 1, 3.6, 1),
				{Kind: domain.RoomBathroom, MinCount: 1, SizeWeight: 1, Floor: 1, AdjacentTo: domain.RoomMasterBedroom},
				room(domain.RoomBedroom, 2, 2.8, 1),
				room(domain.RoomLiving, 1, 2.5, 1),
				room(domain.RoomBathroom, 2, 1, 1),
				room(domain.RoomBalcony, 1, 1, 1),
				room(domain.RoomStudy, 1, 1.5, 1),
				room(domain.RoomStaircase, 1, 1, 1),
			},
		},
	}
}
