// Package render turns a plan into a scene description and hands it to a
// Blender script for 3D model generation.
package render

import (
	"math"

	"github.com/alexanderramin/housewright/internal/domain"
)

// PlacedRoom is a room with a position on its floor, in feet from the
// floor's front-left corner.
type PlacedRoom struct {
	Name   string  `json:"name"`
	Kind   string  `json:"kind"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Length float64 `json:"length"`
}

type SceneFloor struct {
	Index int          `json:"index"`
	Width float64      `json:"width"`
	Depth float64      `json:"depth"`
	Rooms []PlacedRoom `json:"rooms"`
}

// Scene is the renderer's input document.
type Scene struct {
	HouseType   string       `json:"house_type"`
	Orientation string       `json:"orientation"`
	LandCents   float64      `json:"land_cents"`
	LandSide    float64      `json:"land_side_ft"`
	Bathrooms   int          `json:"bathrooms"`
	Garden      bool         `json:"garden"`
	Study       bool         `json:"study_room"`
	Parking     bool         `json:"parking"`
	Balcony     bool         `json:"balcony"`
	Floors      []SceneFloor `json:"floors"`
}

// BuildScene lays each floor's rooms out in rows, in plan order, wrapping
// when a row would exceed the side of a square with the floor's usable area.
func BuildScene(p *domain.Plan) Scene {
	s := Scene{
		HouseType:   string(p.HouseType),
		Orientation: string(p.Request.Orientation),
		LandCents:   p.Request.LandCents,
		LandSide:    round2(math.Sqrt(p.Request.LandSqFt())),
		Bathrooms:   p.CountKind(domain.RoomBathroom),
		Garden:      p.CountKind(domain.RoomGarden) > 0,
		Study:       p.CountKind(domain.RoomStudy) > 0,
		Parking:     p.CountKind(domain.RoomParking) > 0,
		Balcony:     p.CountKind(domain.RoomBalcony) > 0,
	}
	for _, f := range p.Floors {
		s.Floors = append(s.Floors, placeFloor(f, p.RoomsOnFloor(f.Index)))
	}
	return s
}

func placeFloor(f domain.FloorSummary, rooms []domain.RoomAllocation) SceneFloor {
	limit := math.Sqrt(f.UsableArea)
	out := SceneFloor{Index: f.Index, Rooms: make([]PlacedRoom, 0, len(rooms))}

	var x, y, rowDepth float64
	for _, r := range rooms {
		if x > 0 && x+r.Width > limit {
			y += rowDepth
			x, rowDepth = 0, 0
		}
		out.Rooms = append(out.Rooms, PlacedRoom{
			Name:   r.Name,
			Kind:   string(r.Kind),
			X:      round2(x),
			Y:      round2(y),
			Width:  r.Width,
			Length: r.Length,
		})
		x += r.Width
		rowDepth = math.Max(rowDepth, r.Length)
		out.Width = math.Max(out.Width, round2(x))
	}
	out.Depth = round2(y + rowDepth)
	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
