package repository

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/rangehub/member_service/internal/domain"
	"github.com/rangehub/member_service/internal/dto"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(user *domain.User) (*domain.User, error)
	FindByID(id uint) (*domain.User, error)
	FindByEmail(email string) (*domain.User, error)
	FindByUsername(username string) (*domain.User, error)
	FindAll(filter ListFilter, sort dto.SortInput) ([]domain.User, error)
	Save(user *domain.User) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// columns a client may sort users by
var userSortColumns = map[string]string{
	"name":       "users.name",
	"email":      "users.email",
	"username":   "users.username",
	"created_at": "users.created_at",
}

func (r *userRepository) Create(user *domain.User) (*domain.User, error) {
	if user == nil {
		return nil, errors.New("nil user")
	}

	if err := r.db.Create(user).Error; err != nil {
		log.Printf("create user error: %v", err)
		return nil, err
	}

	return user, nil
}

func (r *userRepository) FindByID(id uint) (*domain.User, error) {
	user := &domain.User{}

	if err := r.db.First(user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("find user by id error: %v", err)
		return nil, err
	}

	return user, nil
}

func (r *userRepository) FindByEmail(email string) (*domain.User, error) {
	user := &domain.User{}

	if err := r.db.First(user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("find user by email error: %v", err)
		return nil, err
	}

	return user, nil
}

func (r *userRepository) FindByUsername(username string) (*domain.User, error) {
	user := &domain.User{}

	if err := r.db.First(user, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("find user by username error: %v", err)
		return nil, err
	}

	return user, nil
}

func (r *userRepository) FindAll(filter ListFilter, sort dto.SortInput) ([]domain.User, error) {
	var users []domain.User

	q := r.db.Model(&domain.User{}).Select(disabledByUserSelect("users"))
	q = applyListFilter(q, "users.name", filter)

	order := "users.created_at"
	if col, ok := userSortColumns[strings.ToLower(strings.TrimSpace(sort.Name))]; ok {
		direction := "asc"
		if strings.EqualFold(strings.TrimSpace(sort.Sort), "desc") {
			direction = "desc"
		}
		order = fmt.Sprintf("%s %s", col, direction)
	}

	if err := q.Order(order).Find(&users).Error; err != nil {
		log.Printf("list users error: %v", err)
		return nil, err
	}

	return users, nil
}

func (r *userRepository) Save(user *domain.User) error {
	if user == nil {
		return errors.New("nil user")
	}

	if err := r.db.Save(user).Error; err != nil {
		log.Printf("save user error: %v", err)
		return err
	}
	return nil
}
