package services

import (
	"errors"
	"strings"

	"github.com/rangehub/member_service/internal/domain"
	"github.com/rangehub/member_service/internal/dto"
	"github.com/rangehub/member_service/internal/helper"
	"github.com/rangehub/member_service/internal/repository"
)

type PlanService interface {
	Create(actorID uint, input dto.PlanCreateRequest) (uint, error)
	List(onlyEnabled bool, search string) ([]domain.Plan, error)
	Get(id uint) (*domain.Plan, error)
	Update(actorID, planID uint, input dto.PlanUpdateRequest) (uint, error)
}

type planService struct {
	plans repository.PlanRepository
	users repository.UserRepository
	audit AuditTrail
}

func NewPlanService(
	plans repository.PlanRepository,
	users repository.UserRepository,
	audit AuditTrail,
) PlanService {
	return &planService{plans: plans, users: users, audit: audit}
}

func (p *planService) Create(actorID uint, input dto.PlanCreateRequest) (uint, error) {
	if err := p.checkActor(actorID); err != nil {
		return 0, err
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return 0, errors.New("plan name is required")
	}
	if input.Value < 0 || input.RenewValue < 0 {
		return 0, errors.New("plan values cannot be negative")
	}

	plan := &domain.Plan{
		Name:                  name,
		Description:           strings.TrimSpace(input.Description),
		Value:                 input.Value,
		RenewValue:            input.RenewValue,
		GunTargetDiscount:     input.GunTargetDiscount,
		CourseDiscount:        input.CourseDiscount,
		ShootingDrillsPerYear: input.ShootingDrillsPerYear,
		GunExemption:          input.GunExemption,
		TargetExemption:       input.TargetExemption,
	}
	plan.Lifecycle = helper.ResolveLifecycle(input.Disabled, actorID, nil)

	created, err := p.plans.Create(plan)
	if err != nil {
		return 0, err
	}
	p.audit.Record(domain.TableMembersPlans, domain.AuditActionInsert, created.ID, actorID)

	return created.ID, nil
}

func (p *planService) List(onlyEnabled bool, search string) ([]domain.Plan, error) {
	return p.plans.FindAll(repository.ListFilter{
		OnlyEnabled: onlyEnabled,
		Search:      search,
	})
}

func (p *planService) Get(id uint) (*domain.Plan, error) {
	if id == 0 {
		return nil, errors.New("invalid plan id")
	}

	plan, err := p.plans.FindByID(id)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, helper.ErrNotFound
	}
	return plan, nil
}

func (p *planService) Update(actorID, planID uint, input dto.PlanUpdateRequest) (uint, error) {
	if planID == 0 {
		return 0, errors.New("invalid plan id")
	}
	if err := p.checkActor(actorID); err != nil {
		return 0, err
	}

	plan, err := p.plans.FindByID(planID)
	if err != nil {
		return 0, err
	}
	if plan == nil {
		return 0, helper.ErrNotFound
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return 0, errors.New("plan name cannot be empty")
		}
		plan.Name = name
	}
	if input.Description != nil {
		plan.Description = strings.TrimSpace(*input.Description)
	}
	if input.Value != nil {
		plan.Value = *input.Value
	}
	if input.RenewValue != nil {
		plan.RenewValue = *input.RenewValue
	}
	if input.GunTargetDiscount != nil {
		plan.GunTargetDiscount = *input.GunTargetDiscount
	}
	if input.CourseDiscount != nil {
		plan.CourseDiscount = *input.CourseDiscount
	}
	if input.ShootingDrillsPerYear != nil {
		plan.ShootingDrillsPerYear = *input.ShootingDrillsPerYear
	}
	if input.GunExemption != nil {
		plan.GunExemption = *input.GunExemption
	}
	if input.TargetExemption != nil {
		plan.TargetExemption = *input.TargetExemption
	}

	plan.Lifecycle = helper.ResolveLifecycle(input.Disabled, actorID, &plan.Lifecycle)

	if err := p.plans.Save(plan); err != nil {
		return 0, err
	}
	p.audit.Record(domain.TableMembersPlans, domain.AuditActionUpdate, plan.ID, actorID)

	return plan.ID, nil
}

func (p *planService) checkActor(actorID uint) error {
	if actorID == 0 {
		return errors.New("request user not found")
	}
	actor, err := p.users.FindByID(actorID)
	if err != nil {
		return err
	}
	if actor == nil {
		return errors.New("request user not found")
	}
	return nil
}
