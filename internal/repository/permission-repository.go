package repository

import (
	"github.com/rangehub/member_service/internal/domain"
	"gorm.io/gorm"
)

// PermissionRepository is the permission catalog lookup.
type PermissionRepository interface {
	FindByCodes(codes []string) ([]domain.Permission, error)
	List() ([]domain.Permission, error)
}

type permissionRepository struct {
	db *gorm.DB
}

func NewPermissionRepository(db *gorm.DB) PermissionRepository {
	return &permissionRepository{db: db}
}

func (r *permissionRepository) FindByCodes(codes []string) ([]domain.Permission, error) {
	var permissions []domain.Permission
	if len(codes) == 0 {
		return permissions, nil
	}
	if err := r.db.Where("code IN ?", codes).Find(&permissions).Error; err != nil {
		return nil, err
	}
	return permissions, nil
}

func (r *permissionRepository) List() ([]domain.Permission, error) {
	var permissions []domain.Permission
	if err := r.db.Order("code ASC").Find(&permissions).Error; err != nil {
		return nil, err
	}
	return permissions, nil
}
