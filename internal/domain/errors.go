package domain

import "fmt"

// InvalidInputError reports a malformed or out-of-domain request field.
// It is user-correctable.
type InvalidInputError struct {
	Field    string
	Value    any
	Expected string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s %v: expected %s", e.Field, e.Value, e.Expected)
}

// LayoutInfeasibleError reports that the per-room minimums of the classified
// template do not fit on a floor. Areas are square feet.
type LayoutInfeasibleError struct {
	HouseType     HouseType
	Floor         int
	RequiredArea  float64
	AvailableArea float64
}

func (e *LayoutInfeasibleError) Error() string {
	return fmt.Sprintf("%s layout infeasible on floor %d: rooms need at least %.0f sq ft, only %.0f sq ft usable",
		e.HouseType, e.Floor, e.RequiredArea, e.AvailableArea)
}

// InternalConsistencyError reports a defect in the static tables or an
// engine invariant violation. It is never caused by user input.
type InternalConsistencyError struct {
	Component string
	Detail    string
}

func (e *InternalConsistencyError) Error() string {
	return fmt.Sprintf("internal consistency (%s): %s", e.Component, e.Detail)
}
