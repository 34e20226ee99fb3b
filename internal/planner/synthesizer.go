// Package planner is the single entry point of the plan engine. It runs
// validation, classification, preference extraction, layout and costing in
// sequence and assembles the resulting Plan.
//
// The engine is pure: it performs no I/O, holds no mutable state and is safe
// for any number of concurrent callers. Errors from each stage are returned
// unchanged so callers can inspect them with errors.As.
package planner

import (
	"github.com/alexanderramin/housewright/internal/catalog"
	"github.com/alexanderramin/housewright/internal/costing"
	"github.com/alexanderramin/housewright/internal/domain"
	"github.com/alexanderramin/housewright/internal/layout"
	"github.com/alexanderramin/housewright/internal/preference"
)

// Synthesizer turns requests into plans over a fixed catalog and extractor.
type Synthesizer struct {
	catalog   *catalog.Catalog
	extractor preference.Extractor
	allocator *layout.Allocator
}

// Option configures a Synthesizer.
type Option func(*Synthesizer)

// WithCatalog replaces the built-in catalog.
func WithCatalog(c *catalog.Catalog) Option {
	return func(s *Synthesizer) {
		if c != nil {
			s.catalog = c
		}
	}
}

// WithExtractor replaces the keyword extractor.
func WithExtractor(e preference.Extractor) Option {
	return func(s *Synthesizer) {
		if e != nil {
			s.extractor = e
		}
	}
}

func New(opts ...Option) *Synthesizer {
	s := &Synthesizer{
		catalog:   catalog.Default(),
		extractor: preference.NewKeywordExtractor(nil),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.allocator = layout.NewAllocator(s.catalog)
	return s
}

// Catalog returns the catalog the synthesizer plans against.
func (s *Synthesizer) Catalog() *catalog.Catalog {
	return s.catalog
}

var defaultSynthesizer = New()

// Synthesize plans req with the built-in catalog and keyword extractor.
func Synthesize(req domain.PlanRequest) (*domain.Plan, error) {
	return defaultSynthesizer.Synthesize(req)
}

// Synthesize builds a Plan for req. It fails on the first stage error and
// never returns a partial plan.
func (s *Synthesizer) Synthesize(req domain.PlanRequest) (*domain.Plan, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	tmpl, err := s.catalog.Classify(req.LandCents, req.FamilySize)
	if err != nil {
		return nil, err
	}

	mods := s.extractor.Extract(req.Preferences)

	rooms, floors, err := s.allocator.Allocate(tmpl, req.LandCents, mods)
	if err != nil {
		return nil, err
	}

	estimate, err := costing.Estimate(rooms, req.Budget, mods)
	if err != nil {
		return nil, err
	}

	return &domain.Plan{
		Request:     req,
		HouseType:   tmpl.HouseType,
		Rooms:       rooms,
		Floors:      floors,
		CostLines:   estimate.Lines,
		TotalCost:   estimate.Total,
		BudgetFit:   estimate.Fit,
		Tier:        estimate.Tier,
		BuiltUpArea: estimate.BuiltUpArea,
		Modifiers:   mods.Sorted(),
	}, nil
}
