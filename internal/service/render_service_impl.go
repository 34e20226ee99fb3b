package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/housewright/internal/render"
	"github.com/alexanderramin/housewright/internal/repository"
)

type renderService struct {
	plans     repository.PlanRepo
	renderer  Renderer
	outputDir string
	observer  UseCaseObserver
}

func NewRenderService(plans repository.PlanRepo, renderer Renderer, outputDir string, observers ...UseCaseObserver) RenderService {
	return &renderService{
		plans:     plans,
		renderer:  renderer,
		outputDir: outputDir,
		observer:  useCaseObserverOrNoop(observers),
	}
}

func (s *renderService) Render(ctx context.Context, id string) (path string, err error) {
	fields := map[string]any{"id": id}
	done := track(ctx, s.observer, "render-plan", fields)
	defer func() { done(err) }()

	saved, err := s.plans.GetByID(ctx, id)
	if err != nil {
		return "", err
	}

	path = s.renderer.OutputPath(s.outputDir, "house_"+saved.ShortID())
	fields["output"] = path
	if err := s.renderer.Run(ctx, render.BuildScene(&saved.Plan), path); err != nil {
		return "", fmt.Errorf("rendering plan %s: %w", saved.ShortID(), err)
	}
	if err := s.plans.SetRenderPath(ctx, saved.ID, path, time.Now().UTC()); err != nil {
		return "", err
	}
	return path, nil
}
