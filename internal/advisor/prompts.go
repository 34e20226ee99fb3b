package advisor

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/housewright/internal/domain"
)

const systemPrompt = `You are a practical, friendly house and land planning advisor.
Answer questions on house design, land usage, construction and cost estimation.
Use concrete details: rupees per sq ft, room sizes in feet, land usage and total cost.
Keep each section to one or two plain sentences with no markdown.
Reply with a single JSON object:
{"design": "...", "layout": "...", "cost": "..."}`

const describePrompt = `You describe house plans to the families who will live in them.
In two or three plain sentences, say how the house is laid out and give one
practical suggestion. No markdown, no lists, no JSON.`

// PlanContext describes plan in a few lines for the model. A nil plan gives
// a generic context.
func PlanContext(p *domain.Plan) string {
	if p == nil {
		return "Context: no plan has been generated yet."
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Context: %s house, %s facing, on %.2f cents of land for a family of %d.\n",
		p.HouseType, p.Request.Orientation, p.Request.LandCents, p.Request.FamilySize)
	fmt.Fprintf(&b, "Built-up area %.0f sq ft over %d floor(s). Estimate Rs %d (%s tier) against a budget of Rs %d (%s).\n",
		p.BuiltUpArea, len(p.Floors), p.TotalCost, p.Tier, p.Request.Budget, p.BudgetFit)
	b.WriteString("Rooms:")
	for _, r := range p.Rooms {
		fmt.Fprintf(&b, " %s %.0fx%.0f ft (floor %d);", r.Name, r.Width, r.Length, r.Floor)
	}
	if len(p.Modifiers) > 0 {
		fmt.Fprintf(&b, "\nPreferences: %v", p.Modifiers)
	}
	return b.String()
}

func userPrompt(p *domain.Plan, question string) string {
	return PlanContext(p) + "\n\nQuestion: " + strings.TrimSpace(question)
}
