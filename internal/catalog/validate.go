package catalog

import (
	"fmt"
	"math"
	"strings"

	"github.com/alexanderramin/housewright/internal/domain"
)

// ValidateTables checks a set of tables for structural errors.
// Returns a slice of errors (empty if valid).
func ValidateTables(t Tables) []error {
	var errs []error

	if !(t.CoverageRatio > 0 && t.CoverageRatio <= 1) {
		errs = append(errs, fmt.Errorf("coverage_ratio %v must be in (0, 1]", t.CoverageRatio))
	}

	// Geometry.
	for kind, g := range t.Geometry {
		if !kind.Known() {
			errs = append(errs, fmt.Errorf("geometry: unknown room kind %q", kind))
		}
		if !(g.MinWidth > 0) || !(g.MinLength > 0) {
			errs = append(errs, fmt.Errorf("geometry[%s]: minimum dimensions must be positive", kind))
		}
		if g.MinLength < g.MinWidth {
			errs = append(errs, fmt.Errorf("geometry[%s]: min_length must be >= min_width", kind))
		}
		if !(g.Aspect >= 1) || math.IsInf(g.Aspect, 0) {
			errs = append(errs, fmt.Errorf("geometry[%s]: aspect %v must be a finite ratio >= 1", kind, g.Aspect))
		}
	}

	// Templates.
	seen := map[domain.HouseType]bool{}
	for i, tmpl := range t.Templates {
		prefix := fmt.Sprintf("template[%d] %s", i, tmpl.HouseType)
		if tmpl.HouseType == "" {
			errs = append(errs, fmt.Errorf("template[%d]: house_type is required", i))
		}
		if seen[tmpl.HouseType] {
			errs = append(errs, fmt.Errorf("%s: duplicate house type", prefix))
		}
		seen[tmpl.HouseType] = true
		errs = append(errs, validateTemplate(prefix, tmpl, t.Geometry)...)
	}

	// Rules.
	if len(t.Rules) == 0 {
		errs = append(errs, fmt.Errorf("at least one classification rule is required"))
	} else if !t.Rules[len(t.Rules)-1].CatchAll() {
		errs = append(errs, fmt.Errorf("last classification rule must cover every land area and family size"))
	}
	for i, r := range t.Rules {
		if !seen[r.HouseType] {
			errs = append(errs, fmt.Errorf("rule[%d]: house type %q has no template", i, r.HouseType))
		}
		if math.IsNaN(r.MinCents) || math.IsNaN(r.MaxCents) || r.MaxCents <= r.MinCents {
			errs = append(errs, fmt.Errorf("rule[%d]: land range (%v, %v] is empty", i, r.MinCents, r.MaxCents))
		}
		if r.MaxFamily != 0 && r.MaxFamily < r.MinFamily {
			errs = append(errs, fmt.Errorf("rule[%d]: family range [%d, %d] is empty", i, r.MinFamily, r.MaxFamily))
		}
	}

	// Extras.
	for i, x := range t.Extras {
		if x.Modifier == "" {
			errs = append(errs, fmt.Errorf("extra[%d]: modifier is required", i))
		}
		if _, ok := t.Geometry[x.Kind]; !ok {
			errs = append(errs, fmt.Errorf("extra[%d]: room kind %q has no geometry", i, x.Kind))
		}
		if !(x.SizeWeight > 0) {
			errs = append(errs, fmt.Errorf("extra[%d]: size_weight must be positive", i))
		}
		if x.Floor != 0 {
			errs = append(errs, fmt.Errorf("extra[%d]: synthetic rooms are placed on the ground floor", i))
		}
	}

	return errs
}

func validateTemplate(prefix string, tmpl Template, geometry map[domain.RoomKind]RoomGeometry) []error {
	var errs []error

	floors := tmpl.FloorCount()
	if floors == 0 {
		return append(errs, fmt.Errorf("%s: declares zero floors", prefix))
	}
	used := make([]bool, floors)
	instances := 0
	for j, r := range tmpl.Rooms {
		if !r.Kind.Known() {
			errs = append(errs, fmt.Errorf("%s room[%d]: unknown kind %q", prefix, j, r.Kind))
		} else if _, ok := geometry[r.Kind]; !ok {
			errs = append(errs, fmt.Errorf("%s room[%d]: kind %q has no geometry", prefix, j, r.Kind))
		}
		if r.MinCount < 0 {
			errs = append(errs, fmt.Errorf("%s room[%d]: min_count must not be negative", prefix, j))
		}
		if !(r.SizeWeight > 0) || math.IsInf(r.SizeWeight, 0) {
			errs = append(errs, fmt.Errorf("%s room[%d]: size_weight must be positive", prefix, j))
		}
		if r.Floor < 0 {
			errs = append(errs, fmt.Errorf("%s room[%d]: floor must not be negative", prefix, j))
			continue
		}
		if r.MinCount > 0 {
			used[r.Floor] = true
		}
		instances += r.MinCount
		if r.AdjacentTo != "" && !tmpl.declaresOn(r.AdjacentTo, r.Floor) {
			errs = append(errs, fmt.Errorf("%s room[%d]: adjacent_to %q is not on floor %d", prefix, j, r.AdjacentTo, r.Floor))
		}
	}
	if instances == 0 {
		errs = append(errs, fmt.Errorf("%s: no room has min_count >= 1", prefix))
	}
	for f, ok := range used {
		if !ok {
			errs = append(errs, fmt.Errorf("%s: floor %d has no rooms", prefix, f))
		}
	}
	if len(tmpl.FloorWeights) > floors {
		errs = append(errs, fmt.Errorf("%s: %d floor weights for %d floors", prefix, len(tmpl.FloorWeights), floors))
	}
	for f, w := range tmpl.FloorWeights {
		if !(w > 0 && w <= 1) {
			errs = append(errs, fmt.Errorf("%s: floor_weights[%d] %v must be in (0, 1]", prefix, f, w))
		}
	}
	return errs
}

func (t *Template) declaresOn(kind domain.RoomKind, floor int) bool {
	for _, r := range t.Rooms {
		if r.Kind == kind && r.Floor == floor && r.MinCount > 0 {
			return true
		}
	}
	return false
}

func joinErrors(errs []error) string {
	msgs := make([]string, len(errs))
	for i, e := range errs {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "; ")
}
