package domain

import "gorm.io/gorm"

type Plan struct {
	ID                    uint    `gorm:"primaryKey" json:"id"`
	Name                  string  `gorm:"type:varchar(255);not null" json:"name"`
	Description           string  `json:"description"`
	Value                 float64 `gorm:"not null" json:"value"`
	RenewValue            float64 `gorm:"not null" json:"renew_value"`
	GunTargetDiscount     float64 `json:"gun_target_discount"`
	CourseDiscount        float64 `json:"course_discount"`
	ShootingDrillsPerYear int     `json:"shooting_drills_per_year"`
	GunExemption          bool    `gorm:"default:false" json:"gun_exemption"`
	TargetExemption       bool    `gorm:"default:false" json:"target_exemption"`

	Lifecycle
	gorm.Model
}

func (Plan) TableName() string { return TableMembersPlans }
