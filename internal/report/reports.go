package report

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/housewright/internal/catalog"
	"github.com/alexanderramin/housewright/internal/costing"
	"github.com/alexanderramin/housewright/internal/domain"
)

// Kind names one of the generated documents.
type Kind string

const (
	KindSummary   Kind = "summary"
	KindTechnical Kind = "technical"
	KindCost      Kind = "cost"
)

var Kinds = []Kind{KindSummary, KindTechnical, KindCost}

// ParseKind accepts the document names used on the command line.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "summary", "summary_report":
		return KindSummary, nil
	case "technical", "tech", "technical_specifications":
		return KindTechnical, nil
	case "cost", "costs", "cost_breakdown":
		return KindCost, nil
	}
	return "", fmt.Errorf("unknown report %q (want summary, technical or cost)", s)
}

// Render produces the requested document for a saved plan.
func Render(kind Kind, s *domain.SavedPlan) (string, error) {
	switch kind {
	case KindSummary:
		return Summary(s), nil
	case KindTechnical:
		return Technical(&s.Plan), nil
	case KindCost:
		return Cost(&s.Plan), nil
	}
	return "", fmt.Errorf("unknown report %q", kind)
}

// FileName is the conventional output name for a report on plan id.
func FileName(kind Kind, s *domain.SavedPlan) string {
	return fmt.Sprintf("%s_%s.txt", kind, s.ShortID())
}

func Summary(s *domain.SavedPlan) string {
	p := &s.Plan
	var b strings.Builder

	fmt.Fprintf(&b, "House Summary Report\n\n")
	fmt.Fprintf(&b, "Plan ID: %s\n", s.ShortID())
	fmt.Fprintf(&b, "Name: %s\n", s.DisplayName())
	fmt.Fprintf(&b, "House Type: %s\n", p.HouseType)
	fmt.Fprintf(&b, "Orientation: %s\n", p.Request.Orientation)
	fmt.Fprintf(&b, "Land: %s cents (%s)\n", trimFloat(p.Request.LandCents), SqFt(p.Request.LandSqFt()))
	fmt.Fprintf(&b, "Family Size: %d\n", p.Request.FamilySize)
	fmt.Fprintf(&b, "Built-up Area: %s\n", SqFt(p.BuiltUpArea))
	if len(p.Modifiers) > 0 {
		fmt.Fprintf(&b, "Preferences: %s\n", joinMods(p.Modifiers))
	}

	for _, f := range p.Floors {
		fmt.Fprintf(&b, "\n%s (%s of %s usable)\n", floorName(f.Index), SqFt(f.AllocatedArea), SqFt(f.UsableArea))
		for _, r := range p.RoomsOnFloor(f.Index) {
			fmt.Fprintf(&b, "- %s: %s, %s\n", r.Name, Dims(r.Width, r.Length), SqFt(r.Area()))
		}
	}

	e := catalog.ElevationFor(p.HouseType, p.Request.Orientation, p.Request.LandCents, domain.NewModifierSet(p.Modifiers...))
	fmt.Fprintf(&b, "\nElevation\n")
	fmt.Fprintf(&b, "Front: %s\n", e.FrontDesign)
	fmt.Fprintf(&b, "Colours: %s\n", e.ColorScheme)
	for _, d := range e.DesignElements {
		fmt.Fprintf(&b, "- %s\n", d)
	}
	fmt.Fprintf(&b, "\nLandscaping\n")
	for _, l := range e.Landscaping {
		fmt.Fprintf(&b, "- %s\n", l)
	}

	fmt.Fprintf(&b, "\nEstimated Cost: %s (%s tier, %s)\n", Rupees(p.TotalCost), p.Tier, fitLabel(p.BudgetFit))
	return b.String()
}

// techSpec lists specification lines per section for one material tier.
type techSpec struct {
	Structural   []string
	Architecture []string
	Services     []string
	WetAreas     []string
}

var techSpecs = map[domain.MaterialTier]techSpec{
	domain.TierEconomy: {
		Structural: []string{
			"RCC framed structure with earthquake-resistant design",
			"Foundation: Isolated footings with reinforced concrete",
			"Flooring: Vitrified tiles in living areas, anti-skid tiles in bathrooms",
			"Walls: Cement plaster with POP finish",
		},
		Architecture: []string{
			"Doors: Teakwood main door, flush doors for interiors",
			"Windows: Aluminium sliding windows",
			"Painting: Acrylic emulsion interiors, weatherproof exterior paint",
		},
		Services: []string{
			"Electrical: Copper wiring with modular switches and MCBs",
			"Lighting: LED fittings in all rooms",
			"Plumbing: CPVC pipes, standard sanitary fittings",
			"Water: Underground and overhead tanks",
		},
		WetAreas: []string{
			"Kitchen: Granite countertop, SS sink",
			"Bathroom: Anti-skid floor tiles, wall tiles up to 7 ft",
		},
	},
	domain.TierStandard: {
		Structural: []string{
			"RCC frame structure with seismic-resistant design",
			"Foundation: Combined footings with reinforced concrete",
			"Flooring: Vitrified tiles in living/dining, laminated wood in master bedroom",
			"Walls: Smooth plaster with POP punning",
		},
		Architecture: []string{
			"Doors: Teakwood main door, engineered wood interior doors",
			"Windows: UPVC sliding windows with mosquito mesh",
			"Painting: Premium emulsion interiors, weatherproof exterior paint",
		},
		Services: []string{
			"Electrical: Copper wiring with MCBs and RCCB, provision for AC",
			"Lighting: LED fixtures and ceiling fans in all rooms",
			"Plumbing: CPVC lines, branded sanitaryware, geyser provision",
			"Water: Underground and overhead tanks with sump",
		},
		WetAreas: []string{
			"Kitchen: Granite countertop, SS sink, modular cabinets",
			"Bathroom: Anti-skid tiles, wall tiles up to 7–8 ft, branded fittings",
		},
	},
	domain.TierPremium: {
		Structural: []string{
			"RCC framed structure with advanced seismic design",
			"Foundation: Raft or combined footings sized for future expansion",
			"Flooring: Vitrified tiles in common areas, wooden flooring in bedrooms",
			"Walls: POP finish with designer textures on feature walls",
			"Terrace: Waterproofing with insulation layer",
		},
		Architecture: []string{
			"Doors: Teakwood main door, designer engineered wood interiors",
			"Windows: Double-glazed UPVC for energy efficiency",
			"Painting: Premium acrylic emulsion interiors, textured exterior finish",
		},
		Services: []string{
			"Electrical: Copper wiring, MCBs, RCCB, smart home provisions",
			"Lighting: LED downlights, decorative and outdoor lighting",
			"Plumbing: CPVC/PPR pipes, hot and cold lines in all bathrooms",
			"Water: Underground and overhead tanks, RO plant provision",
		},
		WetAreas: []string{
			"Kitchen: Quartz countertops, modular cabinets, chimney and hob provision",
			"Bathrooms: Premium fittings, shower cubicles, geyser provision",
		},
	},
}

// Technical lists construction specifications for the plan's tier.
func Technical(p *domain.Plan) string {
	spec := techSpecs[p.Tier]
	var b strings.Builder

	fmt.Fprintf(&b, "Technical Specifications Report\n\n")
	fmt.Fprintf(&b, "House Type: %s\n", p.HouseType)
	fmt.Fprintf(&b, "Material Tier: %s\n", p.Tier)
	fmt.Fprintf(&b, "Built-up Area: %s over %d floor(s)\n", SqFt(p.BuiltUpArea), len(p.Floors))

	section := func(n int, title string, lines []string) {
		fmt.Fprintf(&b, "\n%d. %s\n", n, title)
		for _, l := range lines {
			fmt.Fprintf(&b, "- %s\n", l)
		}
	}
	section(1, "Structural", spec.Structural)
	section(2, "Architectural", spec.Architecture)
	section(3, "Electrical & Plumbing", spec.Services)
	section(4, "Kitchen & Bathroom", spec.WetAreas)

	if len(p.Floors) > 1 {
		fmt.Fprintf(&b, "\nMulti-storey: RCC dog-legged staircase, columns sized for %d floors.\n", len(p.Floors))
	}
	return b.String()
}

// Cost renders the estimate as a table. Amounts are the plan's own lines.
func Cost(p *domain.Plan) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Cost Breakdown Report\n\n")
	fmt.Fprintf(&b, "House Type: %s\n", p.HouseType)
	fmt.Fprintf(&b, "Built-up Area: %s\n", SqFt(p.BuiltUpArea))
	fmt.Fprintf(&b, "Material Tier: %s at %s per sq ft\n", p.Tier, Rupees(costing.BaseRates[p.Tier]))
	fmt.Fprintf(&b, "Budget: %s\n\n", Rupees(p.Request.Budget))

	rows := make([][]string, 0, len(p.CostLines)+1)
	for _, l := range p.CostLines {
		share := 0.0
		if p.TotalCost > 0 {
			share = float64(l.Amount) / float64(p.TotalCost) * 100
		}
		rows = append(rows, []string{string(l.Category), Rupees(l.Amount), fmt.Sprintf("%.1f%%", share)})
	}
	rows = append(rows, []string{"Total", Rupees(p.TotalCost), ""})
	b.WriteString(Table([]string{"Category", "Amount", "Share"}, rows, TableStyle{}, 1, 2))
	fmt.Fprintf(&b, "\nBudget status: %s", fitLabel(p.BudgetFit))
	switch diff := p.Request.Budget - p.TotalCost; {
	case diff > 0:
		fmt.Fprintf(&b, " (%s headroom)\n", Rupees(diff))
	case diff < 0:
		fmt.Fprintf(&b, " (%s over)\n", Rupees(-diff))
	default:
		b.WriteString("\n")
	}
	return b.String()
}

func fitLabel(f domain.BudgetFit) string {
	switch f {
	case domain.UnderBudget:
		return "under budget"
	case domain.OnBudget:
		return "on budget"
	case domain.OverBudget:
		return "over budget"
	}
	return string(f)
}

func floorName(i int) string {
	switch i {
	case 0:
		return "Ground Floor"
	case 1:
		return "First Floor"
	case 2:
		return "Second Floor"
	}
	return fmt.Sprintf("Floor %d", i)
}

func joinMods(mods []domain.Modifier) string {
	parts := make([]string, len(mods))
	for i, m := range mods {
		parts[i] = strings.ToLower(string(m))
	}
	return strings.Join(parts, ", ")
}

func trimFloat(v float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", v), "0"), ".")
}
