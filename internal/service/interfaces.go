package service

import (
	"context"
	"time"

	"github.com/alexanderramin/housewright/internal/domain"
	"github.com/alexanderramin/housewright/internal/render"
)

// SaveResult reports whether Save stored a new row or found an identical
// plan already saved.
type SaveResult struct {
	Saved    *domain.SavedPlan
	Existing bool
}

type PlanService interface {
	// Generate synthesizes a plan without persisting it.
	Generate(ctx context.Context, req domain.PlanRequest) (*domain.Plan, error)
	// Save stores plan unless one with the same fingerprint exists.
	Save(ctx context.Context, plan *domain.Plan, name string) (*SaveResult, error)
	Get(ctx context.Context, id string) (*domain.SavedPlan, error)
	List(ctx context.Context, limit int) ([]*domain.SavedPlan, error)
	Delete(ctx context.Context, id string) error
}

type RenderService interface {
	// Render produces a 3D model for a saved plan and returns its path.
	Render(ctx context.Context, id string) (string, error)
}

type StatusService interface {
	GetStatus(ctx context.Context) (*SystemStatus, error)
}

// Renderer is the part of render.Runner the services use.
type Renderer interface {
	Available() (string, bool)
	OutputPath(dir, name string) string
	Run(ctx context.Context, scene render.Scene, outPath string) error
}

// Pinger reports whether an optional collaborator answers.
type Pinger interface {
	Available(ctx context.Context) bool
}

// SystemStatus summarises the local installation.
type SystemStatus struct {
	PlanCount     int
	LastSavedAt   *time.Time
	SchemaVersion int
	CatalogSource string
	HouseTypes    int
	LLMAvailable  bool
	RendererPath  string
}
