package domain

import "gorm.io/gorm"

type MemberDocument struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	MemberID uint   `gorm:"not null;index" json:"member_id"`
	Name     string `gorm:"type:varchar(255);not null" json:"name"`
	Path     string `gorm:"not null" json:"path"`

	Lifecycle
	gorm.Model
}

func (MemberDocument) TableName() string { return TableMembersDocuments }
