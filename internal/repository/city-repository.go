package repository

import (
	"errors"

	"github.com/rangehub/member_service/internal/domain"
	"gorm.io/gorm"
)

type CityRepository interface {
	FindByID(id uint) (*domain.City, error)
	List() ([]domain.City, error)
}

type cityRepository struct {
	db *gorm.DB
}

func NewCityRepository(db *gorm.DB) CityRepository {
	return &cityRepository{db: db}
}

func (r *cityRepository) FindByID(id uint) (*domain.City, error) {
	city := &domain.City{}
	if err := r.db.First(city, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return city, nil
}

func (r *cityRepository) List() ([]domain.City, error) {
	var cities []domain.City
	if err := r.db.Order("name ASC").Find(&cities).Error; err != nil {
		return nil, err
	}
	return cities, nil
}
