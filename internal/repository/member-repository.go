package repository

import (
	"errors"
	"log"

	"github.com/rangehub/member_service/internal/domain"
	"gorm.io/gorm"
)

type MemberRepository interface {
	Create(member *domain.Member) (*domain.Member, error)
	FindByID(id uint) (*domain.Member, error)
	FindByEmail(email string) (*domain.Member, error)
	FindAll(filter ListFilter) ([]domain.Member, error)
	Save(member *domain.Member) error
}

type memberRepository struct {
	db *gorm.DB
}

func NewMemberRepository(db *gorm.DB) MemberRepository {
	return &memberRepository{db: db}
}

func (r *memberRepository) Create(member *domain.Member) (*domain.Member, error) {
	if member == nil {
		return nil, errors.New("nil member")
	}

	if err := r.db.Create(member).Error; err != nil {
		log.Printf("create member error: %v", err)
		return nil, err
	}

	return member, nil
}

func (r *memberRepository) FindByID(id uint) (*domain.Member, error) {
	member := &domain.Member{}

	if err := r.db.First(member, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("find member by id error: %v", err)
		return nil, err
	}

	return member, nil
}

func (r *memberRepository) FindByEmail(email string) (*domain.Member, error) {
	member := &domain.Member{}

	if err := r.db.First(member, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("find member by email error: %v", err)
		return nil, err
	}

	return member, nil
}

func (r *memberRepository) FindAll(filter ListFilter) ([]domain.Member, error) {
	var members []domain.Member

	q := r.db.Model(&domain.Member{}).Select(disabledByUserSelect("members"))
	q = applyListFilter(q, "members.name", filter)

	if err := q.Order("members.created_at").Find(&members).Error; err != nil {
		log.Printf("list members error: %v", err)
		return nil, err
	}

	return members, nil
}

func (r *memberRepository) Save(member *domain.Member) error {
	if member == nil {
		return errors.New("nil member")
	}

	if err := r.db.Save(member).Error; err != nil {
		log.Printf("save member error: %v", err)
		return err
	}
	return nil
}
