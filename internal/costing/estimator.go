// Package costing prices a room layout: it picks a material tier from the
// budget per built-up square foot, splits the base cost into categories and
// classifies the result against the budget.
package costing

import (
	"fmt"
	"math"

	"github.com/alexanderramin/housewright/internal/domain"
	"github.com/alexanderramin/housewright/internal/preference"
)

// OnBudgetTolerance is the fraction below the budget within which a total
// still counts as OnBudget. Totals above the budget are always OverBudget.
const OnBudgetTolerance = 0.05

// OtherBufferBP is the contingency line, in basis points of the base cost.
const OtherBufferBP = 500

const bpScale = 10_000

// TierRule selects Tier when the budget per built-up sq ft is at least
// MinBudgetPerSqFt. The table is evaluated top to bottom.
type TierRule struct {
	Tier             domain.MaterialTier
	MinBudgetPerSqFt float64
}

// TierTable ends with an Economy catch-all. Each threshold sits above the
// tier's rate plus buffer, so the selected tier never prices over budget.
var TierTable = []TierRule{
	{domain.TierPremium, 2750},
	{domain.TierStandard, 2150},
	{domain.TierEconomy, 0},
}

// BaseRates are rupees per built-up sq ft.
var BaseRates = map[domain.MaterialTier]int64{
	domain.TierEconomy:  1600,
	domain.TierStandard: 2000,
	domain.TierPremium:  2600,
}

// Share is a category's slice of the base cost in basis points.
type Share struct {
	Category    domain.CostCategory
	BasisPoints int64
}

// CoreShares sum to 10000 bp. Structure absorbs the rounding remainder.
var CoreShares = []Share{
	{domain.CostStructure, 4000},
	{domain.CostFinishing, 2500},
	{domain.CostElectrical, 1000},
	{domain.CostPlumbing, 1000},
	{domain.CostLabor, 1500},
}

// Breakdown is the estimator's output.
type Breakdown struct {
	Lines       []domain.CostLine
	Total       int64
	Fit         domain.BudgetFit
	Tier        domain.MaterialTier
	RatePerSqFt int64
	BuiltUpArea float64
}

// BuiltUpArea sums the area of the covered rooms in sq ft.
func BuiltUpArea(rooms []domain.RoomAllocation) float64 {
	var area float64
	for _, r := range rooms {
		if r.Kind.Covered() {
			area += r.Area()
		}
	}
	return area
}

// SelectTier returns the first tier whose threshold the budget per sq ft
// meets.
func SelectTier(budgetPerSqFt float64) domain.MaterialTier {
	for _, r := range TierTable {
		if budgetPerSqFt >= r.MinBudgetPerSqFt {
			return r.Tier
		}
	}
	return domain.TierEconomy
}

// Fit classifies total against budget.
func Fit(total, budget int64) domain.BudgetFit {
	switch {
	case total > budget:
		return domain.OverBudget
	case float64(total) >= float64(budget)*(1-OnBudgetTolerance):
		return domain.OnBudget
	default:
		return domain.UnderBudget
	}
}

// Lines prices area at tier and returns the cost lines in category order.
func Lines(area float64, tier domain.MaterialTier) ([]domain.CostLine, error) {
	rate, ok := BaseRates[tier]
	if !ok {
		return nil, &domain.InternalConsistencyError{Component: "costing", Detail: fmt.Sprintf("no base rate for tier %q", tier)}
	}
	base := int64(math.Round(area * float64(rate)))

	lines := make([]domain.CostLine, 0, len(CoreShares)+1)
	var allotted int64
	for _, s := range CoreShares {
		amount := base * s.BasisPoints / bpScale
		allotted += amount
		lines = append(lines, domain.CostLine{Category: s.Category, Amount: amount})
	}
	lines[0].Amount += base - allotted

	other := (base*OtherBufferBP + bpScale/2) / bpScale
	lines = append(lines, domain.CostLine{Category: domain.CostOther, Amount: other})
	return lines, nil
}

// Estimate prices rooms against budget. LUXURY moves the tier up one step
// when the richer tier still fits the budget.
func Estimate(rooms []domain.RoomAllocation, budget int64, mods domain.ModifierSet) (*Breakdown, error) {
	if budget <= 0 {
		return nil, &domain.InvalidInputError{Field: "budget", Value: budget, Expected: "a positive amount in rupees"}
	}
	area := BuiltUpArea(rooms)
	if !(area > 0) || math.IsInf(area, 0) {
		return nil, &domain.InternalConsistencyError{Component: "costing", Detail: fmt.Sprintf("built-up area %v is not positive", area)}
	}

	tier := SelectTier(float64(budget) / area)
	lines, err := Lines(area, tier)
	if err != nil {
		return nil, err
	}
	if preference.TierHint(mods) > 0 && tier.Up() != tier {
		richer, err := Lines(area, tier.Up())
		if err != nil {
			return nil, err
		}
		if domain.SumCostLines(richer) <= budget {
			tier, lines = tier.Up(), richer
		}
	}

	total := domain.SumCostLines(lines)
	return &Breakdown{
		Lines:       lines,
		Total:       total,
		Fit:         Fit(total, budget),
		Tier:        tier,
		RatePerSqFt: BaseRates[tier],
		BuiltUpArea: area,
	}, nil
}
