package repository

import (
	"errors"

	"github.com/rangehub/member_service/internal/domain"
	"gorm.io/gorm"
)

type UserPermissionRepository interface {
	ReplaceUserPermissions(userID uint, permissionIDs []uint) error
	GetPermissionsByUserID(userID uint) ([]domain.Permission, error)
}

type userPermissionRepository struct {
	db *gorm.DB
}

func NewUserPermissionRepository(db *gorm.DB) UserPermissionRepository {
	return &userPermissionRepository{db: db}
}

func (up *userPermissionRepository) ReplaceUserPermissions(userID uint, permissionIDs []uint) error {
	if userID == 0 {
		return errors.New("invalid user_id")
	}

	return up.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&domain.UserPermission{}).Error; err != nil {
			return err
		}

		if len(permissionIDs) == 0 {
			return nil
		}

		links := make([]domain.UserPermission, 0, len(permissionIDs))
		for _, pid := range permissionIDs {
			links = append(links, domain.UserPermission{
				UserID:       userID,
				PermissionID: pid,
			})
		}
		return tx.Create(&links).Error
	})
}

func (up *userPermissionRepository) GetPermissionsByUserID(userID uint) ([]domain.Permission, error) {
	var permissions []domain.Permission
	err := up.db.
		Model(&domain.Permission{}).
		Joins("JOIN user_permissions ON user_permissions.permission_id = permissions.id").
		Where("user_permissions.user_id = ?", userID).
		Order("user_permissions.id ASC").
		Find(&permissions).Error
	if err != nil {
		return nil, err
	}
	return permissions, nil
}
