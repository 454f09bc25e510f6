package domain

import "gorm.io/gorm"

type City struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Name  string `gorm:"type:varchar(255);not null" json:"name"`
	State string `gorm:"type:varchar(5);not null" json:"state"`
	gorm.Model
}
