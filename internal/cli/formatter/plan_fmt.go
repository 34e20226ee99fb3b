package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/housewright/internal/domain"
	"github.com/alexanderramin/housewright/internal/report"
)

// FormatPlan renders a synthesized plan: headline, rooms per floor and the
// cost estimate.
func FormatPlan(p *domain.Plan) string {
	var b strings.Builder

	b.WriteString(planHeadline(p))
	b.WriteString("\n")
	b.WriteString(requestLine(p.Request))
	b.WriteString("\n")
	b.WriteString(Dim("Preferences: ") + ModifierList(p.Modifiers))
	b.WriteString("\n\n")

	for _, f := range p.Floors {
		b.WriteString(floorSection(p, f))
		b.WriteString("\n")
	}

	b.WriteString(costSection(p))
	return b.String()
}

func planHeadline(p *domain.Plan) string {
	sep := Dim("  ·  ")
	return Bold(string(p.HouseType)) + sep + TierBadge(p.Tier) + sep + FitIndicator(p.BudgetFit)
}

func requestLine(r domain.PlanRequest) string {
	land := strconv.FormatFloat(r.LandCents, 'f', -1, 64)
	return Dim(fmt.Sprintf("Land %s cents (%s)  ·  family of %d  ·  %s facing",
		land, report.SqFt(r.LandSqFt()), r.FamilySize, r.Orientation))
}

func floorSection(p *domain.Plan, f domain.FloorSummary) string {
	var b strings.Builder
	b.WriteString(Header(FloorName(f.Index)))
	b.WriteString("\n")

	rooms := p.RoomsOnFloor(f.Index)
	rows := make([][]string, 0, len(rooms))
	for _, r := range rooms {
		rows = append(rows, []string{r.Name, report.Dims(r.Width, r.Length), report.SqFt(r.Area())})
	}
	b.WriteString(RenderTable([]string{"ROOM", "SIZE", "AREA"}, rows, 2))
	b.WriteString(Dim(fmt.Sprintf("%s of %s usable", report.SqFt(f.AllocatedArea), report.SqFt(f.UsableArea))))
	b.WriteString("\n")
	return b.String()
}

func costSection(p *domain.Plan) string {
	var b strings.Builder
	b.WriteString(Header("Cost estimate"))
	b.WriteString("\n")

	rows := make([][]string, 0, len(p.CostLines)+1)
	for _, l := range p.CostLines {
		rows = append(rows, []string{string(l.Category), report.Rupees(l.Amount)})
	}
	rows = append(rows, []string{Bold("Total"), Bold(report.Rupees(p.TotalCost))})
	b.WriteString(RenderTable([]string{"CATEGORY", "AMOUNT"}, rows, 1))

	fmt.Fprintf(&b, "%s %s\n", Dim("Budget:"), report.Rupees(p.Request.Budget))
	fmt.Fprintf(&b, "%s %s\n", Dim("Built-up area:"), report.SqFt(p.BuiltUpArea))
	fmt.Fprintf(&b, "%s %s\n", Dim("Verdict:"), FitColor(p.BudgetFit).Render(budgetNote(p)))
	return b.String()
}

func budgetNote(p *domain.Plan) string {
	diff := p.Request.Budget - p.TotalCost
	switch {
	case diff < 0:
		return report.Rupees(-diff) + " over budget"
	case p.BudgetFit == domain.OnBudget:
		return "within 5% of budget"
	default:
		return report.Rupees(diff) + " of headroom"
	}
}

// FormatSavedPlan renders a stored plan with its identity line first.
func FormatSavedPlan(s *domain.SavedPlan) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s  %s\n", Bold(s.DisplayName()), TruncID(s.ID), Dim("saved "+SavedAgo(s.CreatedAt)))
	if s.RenderPath != "" {
		fmt.Fprintf(&b, "%s %s\n", Dim("3D model:"), s.RenderPath)
	}
	b.WriteString("\n")
	b.WriteString(FormatPlan(&s.Plan))
	return b.String()
}

// FormatSaveResult confirms a save, or points at the identical plan that
// was already stored.
func FormatSaveResult(saved *domain.SavedPlan, existing bool) string {
	if existing {
		return StyleYellow.Render("Already saved") + " as " + Bold(saved.ShortID()) + Dim(" ("+saved.DisplayName()+")") + "\n"
	}
	return StyleGreen.Render("Saved") + " plan " + Bold(saved.ShortID()) + Dim(" ("+saved.DisplayName()+")") + "\n"
}

// FormatPlanList renders the plan history table, newest first.
func FormatPlanList(plans []*domain.SavedPlan) string {
	if len(plans) == 0 {
		return Dim("No saved plans yet. Run 'housewright plan --save' to keep one.") + "\n"
	}

	rows := make([][]string, 0, len(plans))
	for _, s := range plans {
		rendered := Dim("--")
		if s.RenderPath != "" {
			rendered = StyleGreen.Render("yes")
		}
		rows = append(rows, []string{
			TruncID(s.ID),
			s.DisplayName(),
			string(s.Plan.HouseType),
			report.Rupees(s.Plan.TotalCost),
			FitColor(s.Plan.BudgetFit).Render(string(s.Plan.BudgetFit)),
			rendered,
			Dim(SavedAgo(s.CreatedAt)),
		})
	}
	return Header("Saved plans") + "\n" +
		RenderTable([]string{"ID", "NAME", "TYPE", "COST", "FIT", "3D", "SAVED"}, rows, 3)
}
