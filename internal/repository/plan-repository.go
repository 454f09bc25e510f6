package repository

import (
	"errors"
	"log"

	"github.com/rangehub/member_service/internal/domain"
	"gorm.io/gorm"
)

type PlanRepository interface {
	Create(plan *domain.Plan) (*domain.Plan, error)
	FindByID(id uint) (*domain.Plan, error)
	FindAll(filter ListFilter) ([]domain.Plan, error)
	Save(plan *domain.Plan) error
}

type planRepository struct {
	db *gorm.DB
}

func NewPlanRepository(db *gorm.DB) PlanRepository {
	return &planRepository{db: db}
}

func (r *planRepository) Create(plan *domain.Plan) (*domain.Plan, error) {
	if plan == nil {
		return nil, errors.New("nil plan")
	}

	if err := r.db.Create(plan).Error; err != nil {
		log.Printf("create plan error: %v", err)
		return nil, err
	}

	return plan, nil
}

func (r *planRepository) FindByID(id uint) (*domain.Plan, error) {
	plan := &domain.Plan{}

	if err := r.db.First(plan, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("find plan by id error: %v", err)
		return nil, err
	}

	return plan, nil
}

func (r *planRepository) FindAll(filter ListFilter) ([]domain.Plan, error) {
	var plans []domain.Plan

	q := r.db.Model(&domain.Plan{}).Select(disabledByUserSelect("members_plans"))
	q = applyListFilter(q, "members_plans.name", filter)

	if err := q.Order("members_plans.created_at").Find(&plans).Error; err != nil {
		log.Printf("list plans error: %v", err)
		return nil, err
	}

	return plans, nil
}

func (r *planRepository) Save(plan *domain.Plan) error {
	if plan == nil {
		return errors.New("nil plan")
	}

	if err := r.db.Save(plan).Error; err != nil {
		log.Printf("save plan error: %v", err)
		return err
	}
	return nil
}
