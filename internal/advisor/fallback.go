package advisor

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/housewright/internal/costing"
	"github.com/alexanderramin/housewright/internal/domain"
	"github.com/alexanderramin/housewright/internal/report"
)

type topic int

const (
	topicGeneral topic = iota
	topicCost
	topicOrientation
	topicRooms
	topicBudget
)

// topicOf matches in a fixed order: cost words win over budget words.
func topicOf(question string) topic {
	q := strings.ToLower(question)
	switch {
	case containsAny(q, "cost", "price", "estimat"):
		return topicCost
	case containsAny(q, "orientation", "facing"):
		return topicOrientation
	case containsAny(q, "room", "size"):
		return topicRooms
	case strings.Contains(q, "budget"):
		return topicBudget
	}
	return topicGeneral
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// Fallback answers without a model. When plan is non-nil the answer quotes
// its figures.
func Fallback(p *domain.Plan, question string) *Advice {
	a := &Advice{Source: SourceDeterministic}
	switch topicOf(question) {
	case topicCost:
		a.Cost = fmt.Sprintf("Typical build cost ranges %s–%s per sq ft depending on material tier.",
			report.Rupees(costing.BaseRates[domain.TierEconomy]), report.Rupees(costing.BaseRates[domain.TierPremium]))
		if p != nil {
			a.Cost = fmt.Sprintf("This plan is estimated at %s for %s built-up at %s per sq ft (%s tier).",
				report.Rupees(p.TotalCost), report.SqFt(p.BuiltUpArea), report.Rupees(costing.BaseRates[p.Tier]), p.Tier)
		}
	case topicOrientation:
		a.Design = "Prefer East or North facing for light; shade West walls and buffer the harsh South sun."
		if p != nil {
			a.Design += " " + orientationNote(p.Request.Orientation)
		}
	case topicRooms:
		a.Layout = "Good sizes: Master 12×14 ft, Bedroom 10×12 ft, Living 16×20 ft, Kitchen 10×12 ft."
		if p != nil {
			if r, ok := largestRoom(p); ok {
				a.Layout = fmt.Sprintf("The largest room is the %s at %s (%s). %s",
					r.Name, report.Dims(r.Width, r.Length), report.SqFt(r.Area()), a.Layout)
			}
		}
	case topicBudget:
		a.Cost = "Allocate about 60% to the build, 20% to materials, 15% to labour and 5% to approvals; keep a 10% buffer."
		if p != nil {
			a.Cost = fmt.Sprintf("Against a %s budget this plan is %s. %s",
				report.Rupees(p.Request.Budget), budgetPhrase(p), a.Cost)
		}
	default:
		a.Design = "I can help with costs, sizes, orientation and materials. Ask a specific question."
	}
	return a
}

func orientationNote(o domain.Orientation) string {
	switch o.Cardinal() {
	case domain.North, domain.East:
		return fmt.Sprintf("Your %s-facing plot already gets good daylight.", o)
	case domain.West:
		return fmt.Sprintf("For a %s-facing plot, add deep sunshades or a verandah on the front.", o)
	default:
		return fmt.Sprintf("For a %s-facing plot, place the sit-out or parking at the front as a buffer.", o)
	}
}

func largestRoom(p *domain.Plan) (domain.RoomAllocation, bool) {
	var best domain.RoomAllocation
	found := false
	for _, r := range p.Rooms {
		if !r.Kind.Covered() {
			continue
		}
		if !found || r.Area() > best.Area() {
			best, found = r, true
		}
	}
	return best, found
}

func budgetPhrase(p *domain.Plan) string {
	diff := p.Request.Budget - p.TotalCost
	switch p.BudgetFit {
	case domain.OverBudget:
		return report.Rupees(-diff) + " over"
	case domain.OnBudget:
		return "on budget with " + report.Rupees(diff) + " to spare"
	default:
		return "under budget by " + report.Rupees(diff)
	}
}

// DescribeFallback summarises plan from its own figures.
func DescribeFallback(p *domain.Plan) *Description {
	var b strings.Builder
	facing := string(p.Request.Orientation) + "-facing"
	fmt.Fprintf(&b, "%s %s %s with %s built up on %s cents",
		article(facing), facing, p.HouseType, report.SqFt(p.BuiltUpArea),
		strconv.FormatFloat(p.Request.LandCents, 'f', -1, 64))
	if len(p.Floors) > 1 {
		fmt.Fprintf(&b, " across %d floors", len(p.Floors))
	}
	fmt.Fprintf(&b, ", with %d bedrooms and %d bathrooms.",
		p.CountKind(domain.RoomMasterBedroom)+p.CountKind(domain.RoomBedroom), p.CountKind(domain.RoomBathroom))
	fmt.Fprintf(&b, " The %s-tier estimate of %s is %s.", p.Tier, report.Rupees(p.TotalCost), budgetPhrase(p))
	if r, ok := largestRoom(p); ok {
		fmt.Fprintf(&b, " The %s is the largest room at %s.", r.Name, report.Dims(r.Width, r.Length))
	}
	return &Description{Text: b.String(), Source: SourceDeterministic}
}

func article(word string) string {
	if word != "" && strings.ContainsRune("AEIOUaeiou", rune(word[0])) {
		return "An"
	}
	return "A"
}
