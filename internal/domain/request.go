package domain

import "math"

// SqFtPerCent converts the cent land unit to square feet.
const SqFtPerCent = 435.6

// PlanRequest carries the caller's validated housing requirements.
type PlanRequest struct {
	LandCents   float64     `json:"land_cents"`
	FamilySize  int         `json:"family_size"`
	Budget      int64       `json:"budget"`
	Orientation Orientation `json:"orientation"`
	Preferences string      `json:"preferences"`
}

// Validate checks every field and returns an *InvalidInputError for the
// first one out of domain.
func (r PlanRequest) Validate() error {
	if r.LandCents <= 0 || math.IsNaN(r.LandCents) || math.IsInf(r.LandCents, 0) {
		return &InvalidInputError{Field: "land_area", Value: r.LandCents, Expected: "a positive number of cents"}
	}
	if r.FamilySize < 1 {
		return &InvalidInputError{Field: "family_size", Value: r.FamilySize, Expected: "an integer >= 1"}
	}
	if r.Budget <= 0 {
		return &InvalidInputError{Field: "budget", Value: r.Budget, Expected: "a positive amount in rupees"}
	}
	if !ValidOrientations[r.Orientation] {
		return &InvalidInputError{Field: "orientation", Value: string(r.Orientation), Expected: "one of North, South, East, West, NE, NW, SE, SW"}
	}
	return nil
}

// LandSqFt returns the land area in square feet.
func (r PlanRequest) LandSqFt() float64 {
	return r.LandCents * SqFtPerCent
}
