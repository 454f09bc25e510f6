package domain

import "gorm.io/gorm"

// Permission is the catalog of known permission codes. Submitted codes are
// validated against this table at write time.
type Permission struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Code string `gorm:"type:varchar(50);uniqueIndex;not null" json:"code"`
	Name string `gorm:"type:varchar(100);not null" json:"name"`
	gorm.Model
}

type UserPermission struct {
	ID           uint `gorm:"primaryKey" json:"id"`
	UserID       uint `gorm:"index;not null" json:"user_id"`
	PermissionID uint `gorm:"index;not null" json:"permission_id"`
	gorm.Model
}
