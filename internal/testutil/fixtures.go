package testutil

import (
	"testing"
	"time"

	"github.com/alexanderramin/housewright/internal/domain"
	"github.com/alexanderramin/housewright/internal/planner"
	"github.com/google/uuid"
)

// Request options
type RequestOption func(*domain.PlanRequest)

func WithLand(cents float64) RequestOption {
	return func(r *domain.PlanRequest) { r.LandCents = cents }
}

func WithFamily(n int) RequestOption {
	return func(r *domain.PlanRequest) { r.FamilySize = n }
}

func WithBudget(rupees int64) RequestOption {
	return func(r *domain.PlanRequest) { r.Budget = rupees }
}

func WithOrientation(o domain.Orientation) RequestOption {
	return func(r *domain.PlanRequest) { r.Orientation = o }
}

func WithPreferences(text string) RequestOption {
	return func(r *domain.PlanRequest) { r.Preferences = text }
}

// NewTestRequest returns a valid 5-cent, family-of-four request; options
// override individual fields.
func NewTestRequest(opts ...RequestOption) domain.PlanRequest {
	r := domain.PlanRequest{
		LandCents:   5,
		FamilySize:  4,
		Budget:      3_000_000,
		Orientation: domain.East,
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// SavedPlan options
type SavedPlanOption func(*domain.SavedPlan)

func WithName(name string) SavedPlanOption {
	return func(s *domain.SavedPlan) { s.Name = name }
}

func WithCreatedAt(t time.Time) SavedPlanOption {
	return func(s *domain.SavedPlan) { s.CreatedAt = t }
}

func WithRenderPath(path string) SavedPlanOption {
	return func(s *domain.SavedPlan) { s.RenderPath = path }
}

// NewTestSavedPlan synthesizes req with the built-in catalog and wraps the
// result ready for persistence.
func NewTestSavedPlan(t *testing.T, req domain.PlanRequest, opts ...SavedPlanOption) *domain.SavedPlan {
	t.Helper()
	plan, err := planner.Synthesize(req)
	if err != nil {
		t.Fatalf("synthesizing test plan: %v", err)
	}
	fp, err := planner.Fingerprint(plan)
	if err != nil {
		t.Fatalf("fingerprinting test plan: %v", err)
	}
	s := &domain.SavedPlan{
		ID:          uuid.New().String(),
		Fingerprint: fp,
		Plan:        *plan,
		CreatedAt:   time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
