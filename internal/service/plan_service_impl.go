package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/housewright/internal/db"
	"github.com/alexanderramin/housewright/internal/domain"
	"github.com/alexanderramin/housewright/internal/planner"
	"github.com/alexanderramin/housewright/internal/repository"
	"github.com/google/uuid"
)

type planService struct {
	synth    *planner.Synthesizer
	plans    repository.PlanRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewPlanService(
	synth *planner.Synthesizer,
	plans repository.PlanRepo,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) PlanService {
	if synth == nil {
		synth = planner.New()
	}
	return &planService{
		synth:    synth,
		plans:    plans,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *planService) Generate(ctx context.Context, req domain.PlanRequest) (plan *domain.Plan, err error) {
	fields := map[string]any{
		"land_cents":  req.LandCents,
		"family_size": req.FamilySize,
	}
	done := track(ctx, s.observer, "generate-plan", fields)
	defer func() { done(err) }()

	plan, err = s.synth.Synthesize(req)
	if err != nil {
		return nil, err
	}
	fields["house_type"] = string(plan.HouseType)
	fields["tier"] = string(plan.Tier)
	fields["budget_fit"] = string(plan.BudgetFit)
	return plan, nil
}

func (s *planService) Save(ctx context.Context, plan *domain.Plan, name string) (result *SaveResult, err error) {
	fields := map[string]any{"house_type": string(plan.HouseType)}
	done := track(ctx, s.observer, "save-plan", fields)
	defer func() { done(err) }()

	fp, err := planner.Fingerprint(plan)
	if err != nil {
		return nil, err
	}
	fields["fingerprint"] = fp

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txPlans := repository.NewSQLitePlanRepo(tx)

		existing, err := txPlans.GetByFingerprint(ctx, fp)
		switch {
		case err == nil:
			result = &SaveResult{Saved: existing, Existing: true}
			return nil
		case !errors.Is(err, repository.ErrPlanNotFound):
			return err
		}

		saved := &domain.SavedPlan{
			ID:          uuid.New().String(),
			Name:        name,
			Fingerprint: fp,
			Plan:        *plan,
			CreatedAt:   time.Now().UTC(),
		}
		if err := txPlans.Create(ctx, saved); err != nil {
			return err
		}
		result = &SaveResult{Saved: saved}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("saving plan: %w", err)
	}
	fields["plan_id"] = result.Saved.ID
	fields["existing"] = result.Existing
	return result, nil
}

func (s *planService) Get(ctx context.Context, id string) (*domain.SavedPlan, error) {
	return s.plans.GetByID(ctx, id)
}

func (s *planService) List(ctx context.Context, limit int) ([]*domain.SavedPlan, error) {
	return s.plans.List(ctx, limit)
}

func (s *planService) Delete(ctx context.Context, id string) (err error) {
	done := track(ctx, s.observer, "delete-plan", map[string]any{"id": id})
	defer func() { done(err) }()

	saved, err := s.plans.GetByID(ctx, id)
	if err != nil {
		return err
	}
	return s.plans.Delete(ctx, saved.ID)
}
