package domain

// RoomAllocation is one concrete room: dimensions in feet, floor 0 is ground.
type RoomAllocation struct {
	Name   string   `json:"name"`
	Kind   RoomKind `json:"kind"`
	Floor  int      `json:"floor"`
	Width  float64  `json:"width_ft"`
	Length float64  `json:"length_ft"`
}

// Area returns the floor area in square feet.
func (r RoomAllocation) Area() float64 {
	return r.Width * r.Length
}

// FloorSummary records how much of a floor's usable area the layout used.
type FloorSummary struct {
	Index         int     `json:"index"`
	UsableArea    float64 `json:"usable_sqft"`
	AllocatedArea float64 `json:"allocated_sqft"`
}

// CostLine is one category of the estimate, in whole rupees.
type CostLine struct {
	Category CostCategory `json:"category"`
	Amount   int64        `json:"amount"`
}

// Plan is the engine's output. It is built once per request and never
// touched by the engine after it is returned.
type Plan struct {
	Request     PlanRequest      `json:"request"`
	HouseType   HouseType        `json:"house_type"`
	Rooms       []RoomAllocation `json:"rooms"`
	Floors      []FloorSummary   `json:"floors"`
	CostLines   []CostLine       `json:"cost_lines"`
	TotalCost   int64            `json:"total_cost"`
	BudgetFit   BudgetFit        `json:"budget_fit"`
	Tier        MaterialTier     `json:"material_tier"`
	BuiltUpArea float64          `json:"built_up_sqft"`
	Modifiers   []Modifier       `json:"modifiers"`
}

// SumCostLines returns the exact sum of all cost line amounts.
func SumCostLines(lines []CostLine) int64 {
	var total int64
	for _, l := range lines {
		total += l.Amount
	}
	return total
}

// RoomsOnFloor returns the rooms assigned to floor in plan order.
func (p *Plan) RoomsOnFloor(floor int) []RoomAllocation {
	var out []RoomAllocation
	for _, r := range p.Rooms {
		if r.Floor == floor {
			out = append(out, r)
		}
	}
	return out
}

// CountKind returns how many rooms of kind the plan holds.
func (p *Plan) CountKind(kind RoomKind) int {
	n := 0
	for _, r := range p.Rooms {
		if r.Kind == kind {
			n++
		}
	}
	return n
}

// HasModifier reports whether m was applied to the plan.
func (p *Plan) HasModifier(m Modifier) bool {
	for _, x := range p.Modifiers {
		if x == m {
			return true
		}
	}
	return false
}
