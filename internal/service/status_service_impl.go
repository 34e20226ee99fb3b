package service

import (
	"context"
	"database/sql"

	"github.com/alexanderramin/housewright/internal/catalog"
	"github.com/alexanderramin/housewright/internal/db"
	"github.com/alexanderramin/housewright/internal/repository"
)

type statusService struct {
	database      *sql.DB
	plans         repository.PlanRepo
	catalog       *catalog.Catalog
	catalogSource string
	llm           Pinger
	renderer      Renderer
}

// NewStatusService reports on the store and collaborators. llm and
// renderer may be nil when not configured.
func NewStatusService(database *sql.DB, plans repository.PlanRepo, cat *catalog.Catalog, catalogSource string, llm Pinger, renderer Renderer) StatusService {
	return &statusService{
		database:      database,
		plans:         plans,
		catalog:       cat,
		catalogSource: catalogSource,
		llm:           llm,
		renderer:      renderer,
	}
}

func (s *statusService) GetStatus(ctx context.Context) (*SystemStatus, error) {
	st := &SystemStatus{CatalogSource: s.catalogSource}
	if st.CatalogSource == "" {
		st.CatalogSource = "built-in"
	}
	if s.catalog != nil {
		st.HouseTypes = len(s.catalog.Templates())
	}

	var err error
	if st.SchemaVersion, err = db.SchemaVersion(s.database); err != nil {
		return nil, err
	}
	if st.PlanCount, err = s.plans.Count(ctx); err != nil {
		return nil, err
	}
	if st.PlanCount > 0 {
		latest, err := s.plans.List(ctx, 1)
		if err != nil {
			return nil, err
		}
		st.LastSavedAt = &latest[0].CreatedAt
	}

	if s.llm != nil {
		st.LLMAvailable = s.llm.Available(ctx)
	}
	if s.renderer != nil {
		st.RendererPath, _ = s.renderer.Available()
	}
	return st, nil
}
