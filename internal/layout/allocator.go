// Package layout turns a house-type template into concrete rooms with
// dimensions and floor placement.
package layout

import (
	"fmt"
	"math"

	"github.com/alexanderramin/housewright/internal/catalog"
	"github.com/alexanderramin/housewright/internal/domain"
)

// areaTolerance absorbs float rounding when checking per-floor totals. It is
// relative to the floor's usable area.
const areaTolerance = 1e-9

// Allocator distributes usable floor area among a template's rooms using
// the geometry and coverage of a catalog. It holds no mutable state.
type Allocator struct {
	cat *catalog.Catalog
}

// NewAllocator returns an Allocator over cat; nil means the built-in catalog.
func NewAllocator(cat *catalog.Catalog) *Allocator {
	if cat == nil {
		cat = catalog.Default()
	}
	return &Allocator{cat: cat}
}

// Allocate runs the built-in allocator.
func Allocate(tmpl *catalog.Template, landCents float64, mods domain.ModifierSet) ([]domain.RoomAllocation, []domain.FloorSummary, error) {
	return NewAllocator(nil).Allocate(tmpl, landCents, mods)
}

// EffectiveSpecs returns the template's room specs plus the synthetic specs
// that mods add for kinds the template does not declare.
func (a *Allocator) EffectiveSpecs(tmpl *catalog.Template, mods domain.ModifierSet) []catalog.RoomSpec {
	specs := append([]catalog.RoomSpec(nil), tmpl.Rooms...)
	for _, x := range a.cat.Extras() {
		if !mods.Has(x.Modifier) || tmpl.Declares(x.Kind) {
			continue
		}
		specs = append(specs, catalog.RoomSpec{
			Kind:       x.Kind,
			MinCount:   1,
			SizeWeight: x.SizeWeight,
			Floor:      x.Floor,
		})
	}
	return specs
}

type placed struct {
	spec catalog.RoomSpec
	geom catalog.RoomGeometry
	area float64
}

// Allocate computes the rooms of tmpl on landCents of land. Rooms come back
// ordered by floor, then template order, with adjacent rooms next to their
// partner. Floors lists the usable and allocated area of every floor.
func (a *Allocator) Allocate(tmpl *catalog.Template, landCents float64, mods domain.ModifierSet) ([]domain.RoomAllocation, []domain.FloorSummary, error) {
	if tmpl == nil {
		return nil, nil, &domain.InternalConsistencyError{Component: "layout", Detail: "nil template"}
	}
	if !(landCents > 0) || math.IsInf(landCents, 0) {
		return nil, nil, &domain.InvalidInputError{Field: "land_area", Value: landCents, Expected: "a positive number of cents"}
	}
	floorCount := tmpl.FloorCount()
	if floorCount == 0 {
		return nil, nil, &domain.InternalConsistencyError{Component: "layout", Detail: fmt.Sprintf("template %s declares zero floors", tmpl.HouseType)}
	}

	specs := a.EffectiveSpecs(tmpl, mods)
	footprint := landCents * domain.SqFtPerCent * a.cat.CoverageRatio

	var rooms []placed
	floors := make([]domain.FloorSummary, 0, floorCount)
	for f := 0; f < floorCount; f++ {
		usable := footprint * tmpl.FloorShare(f)
		onFloor, err := a.instances(specs, f)
		if err != nil {
			return nil, nil, err
		}
		if len(onFloor) == 0 {
			return nil, nil, &domain.InternalConsistencyError{Component: "layout", Detail: fmt.Sprintf("template %s has no rooms on floor %d", tmpl.HouseType, f)}
		}

		weights := make([]float64, len(onFloor))
		minimums := make([]float64, len(onFloor))
		var required float64
		for i, p := range onFloor {
			weights[i] = p.spec.SizeWeight
			minimums[i] = p.geom.MinArea()
			required += minimums[i]
		}
		if required > usable {
			return nil, nil, &domain.LayoutInfeasibleError{
				HouseType:     tmpl.HouseType,
				Floor:         f,
				RequiredArea:  required,
				AvailableArea: usable,
			}
		}

		areas := distribute(usable, weights, minimums)
		for i := range onFloor {
			onFloor[i].area = areas[i]
		}
		rooms = append(rooms, onFloor...)
		floors = append(floors, domain.FloorSummary{Index: f, UsableArea: usable})
	}

	out, err := materialize(rooms)
	if err != nil {
		return nil, nil, err
	}
	for _, r := range out {
		floors[r.Floor].AllocatedArea += r.Area()
	}
	for _, fs := range floors {
		if fs.AllocatedArea > fs.UsableArea*(1+areaTolerance) {
			return nil, nil, &domain.InternalConsistencyError{
				Component: "layout",
				Detail:    fmt.Sprintf("floor %d allocated %.6f sq ft of %.6f usable", fs.Index, fs.AllocatedArea, fs.UsableArea),
			}
		}
	}
	return out, floors, nil
}

// instances expands the specs on floor into one entry per room, in
// placement order.
func (a *Allocator) instances(specs []catalog.RoomSpec, floor int) ([]placed, error) {
	var out []placed
	for _, idx := range placementOrder(specs, floor) {
		s := specs[idx]
		g, err := a.cat.Geometry(s.Kind)
		if err != nil {
			return nil, err
		}
		for n := 0; n < s.MinCount; n++ {
			out = append(out, placed{spec: s, geom: g})
		}
	}
	return out, nil
}

// placementOrder returns indexes of the specs on floor in template order,
// each spec followed by the specs declared adjacent to its kind.
func placementOrder(specs []catalog.RoomSpec, floor int) []int {
	done := make([]bool, len(specs))
	var order []int
	var place func(i int)
	place = func(i int) {
		done[i] = true
		order = append(order, i)
		for j, s := range specs {
			if !done[j] && s.Floor == floor && s.AdjacentTo != "" && s.AdjacentTo == specs[i].Kind {
				place(j)
			}
		}
	}
	for i, s := range specs {
		if !done[i] && s.Floor == floor && s.AdjacentTo == "" {
			place(i)
		}
	}
	// Adjacency without a partner on this floor keeps template order.
	for i, s := range specs {
		if !done[i] && s.Floor == floor {
			place(i)
		}
	}
	return order
}

// distribute splits usable among rooms in proportion to weights. A room
// whose share falls below its minimum is pinned at the minimum and the
// rest is re-split among the unpinned rooms until no share changes. The
// caller guarantees sum(minimums) <= usable.
func distribute(usable float64, weights, minimums []float64) []float64 {
	areas := make([]float64, len(weights))
	pinned := make([]bool, len(weights))
	for {
		remaining := usable
		var free float64
		for i := range weights {
			if pinned[i] {
				remaining -= minimums[i]
			} else {
				free += weights[i]
			}
		}
		if free == 0 {
			return areas
		}
		changed := false
		for i := range weights {
			if pinned[i] {
				continue
			}
			areas[i] = remaining * weights[i] / free
			if areas[i] < minimums[i] {
				areas[i] = minimums[i]
				pinned[i] = true
				changed = true
			}
		}
		if !changed {
			return areas
		}
	}
}

// dimensions derives width and length (feet) from area using the kind's
// aspect ratio, then honours the minimum width and length.
func dimensions(area float64, g catalog.RoomGeometry) (width, length float64) {
	width = math.Sqrt(area / g.Aspect)
	length = area / width
	if width < g.MinWidth {
		width = g.MinWidth
		length = area / width
	}
	if length < g.MinLength {
		length = g.MinLength
		width = area / length
	}
	return width, length
}

func materialize(rooms []placed) ([]domain.RoomAllocation, error) {
	totals := map[domain.RoomKind]int{}
	for _, r := range rooms {
		totals[r.spec.Kind]++
	}
	seen := map[domain.RoomKind]int{}
	out := make([]domain.RoomAllocation, 0, len(rooms))
	for _, r := range rooms {
		kind := r.spec.Kind
		seen[kind]++
		name := kind.Label()
		if totals[kind] > 1 {
			name = fmt.Sprintf("%s %d", name, seen[kind])
		}
		w, l := dimensions(r.area, r.geom)
		if !positiveFinite(w) || !positiveFinite(l) {
			return nil, &domain.InternalConsistencyError{
				Component: "layout",
				Detail:    fmt.Sprintf("%s on floor %d has non-positive dimensions %vx%v", name, r.spec.Floor, w, l),
			}
		}
		out = append(out, domain.RoomAllocation{Name: name, Kind: kind, Floor: r.spec.Floor, Width: w, Length: l})
	}
	return out, nil
}

func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
