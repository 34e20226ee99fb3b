package formatter

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/alexanderramin/housewright/internal/catalog"
	"github.com/alexanderramin/housewright/internal/domain"
)

// FormatCatalog renders the classification rules in evaluation order and
// the room manifest of every template.
func FormatCatalog(cat *catalog.Catalog) string {
	var b strings.Builder

	b.WriteString(Header("Classification rules"))
	b.WriteString("\n")
	rules := cat.Rules()
	rows := make([][]string, 0, len(rules))
	for i, r := range rules {
		rows = append(rows, []string{strconv.Itoa(i + 1), LandRange(r), FamilyRange(r), string(r.HouseType)})
	}
	b.WriteString(RenderTable([]string{"#", "LAND (CENTS)", "FAMILY", "HOUSE TYPE"}, rows, 0))
	b.WriteString(Dim("First matching rule wins."))
	b.WriteString("\n\n")

	b.WriteString(Header("Templates"))
	b.WriteString("\n")
	rows = rows[:0]
	for _, t := range cat.Templates() {
		rows = append(rows, []string{
			string(t.HouseType),
			strconv.Itoa(t.FloorCount()),
			manifest(t),
		})
	}
	b.WriteString(RenderTable([]string{"TYPE", "FLOORS", "ROOMS"}, rows, 1))
	fmt.Fprintf(&b, "%s %.0f%% of the plot\n", Dim("Buildable coverage:"), cat.CoverageRatio*100)
	return b.String()
}

// LandRange formats a rule's (min, max] land bounds.
func LandRange(r catalog.Rule) string {
	lo := strconv.FormatFloat(r.MinCents, 'f', -1, 64)
	if math.IsInf(r.MaxCents, 1) {
		if r.MinCents <= 0 {
			return "any"
		}
		return "> " + lo
	}
	return fmt.Sprintf("(%s, %s]", lo, strconv.FormatFloat(r.MaxCents, 'f', -1, 64))
}

// FamilyRange formats a rule's family bounds; MaxFamily 0 is open-ended.
func FamilyRange(r catalog.Rule) string {
	switch {
	case r.MaxFamily == 0 && r.MinFamily <= 1:
		return "any"
	case r.MaxFamily == 0:
		return fmt.Sprintf("%d+", r.MinFamily)
	case r.MinFamily == r.MaxFamily:
		return strconv.Itoa(r.MinFamily)
	default:
		return fmt.Sprintf("%d-%d", r.MinFamily, r.MaxFamily)
	}
}

// manifest summarises a template as "1 Living Room, 2 Bedroom, ..." in
// declaration order, merging repeated kinds.
func manifest(t *catalog.Template) string {
	counts := make(map[domain.RoomKind]int)
	var order []domain.RoomKind
	for _, spec := range t.Rooms {
		if _, seen := counts[spec.Kind]; !seen {
			order = append(order, spec.Kind)
		}
		counts[spec.Kind] += spec.MinCount
	}
	parts := make([]string, len(order))
	for i, k := range order {
		parts[i] = fmt.Sprintf("%d %s", counts[k], k.Label())
	}
	return strings.Join(parts, ", ")
}
