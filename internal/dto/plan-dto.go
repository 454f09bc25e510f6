package dto

type PlanCreateRequest struct {
	Name                  string  `json:"name" validate:"required"`
	Description           string  `json:"description"`
	Value                 float64 `json:"value" validate:"required"`
	RenewValue            float64 `json:"renew_value" validate:"required"`
	GunTargetDiscount     float64 `json:"gun_target_discount"`
	CourseDiscount        float64 `json:"course_discount"`
	ShootingDrillsPerYear int     `json:"shooting_drills_per_year"`
	GunExemption          bool    `json:"gun_exemption"`
	TargetExemption       bool    `json:"target_exemption"`
	Disabled              *bool   `json:"disabled,omitempty"`
}

type PlanUpdateRequest struct {
	Name                  *string  `json:"name,omitempty"`
	Description           *string  `json:"description,omitempty"`
	Value                 *float64 `json:"value,omitempty"`
	RenewValue            *float64 `json:"renew_value,omitempty"`
	GunTargetDiscount     *float64 `json:"gun_target_discount,omitempty"`
	CourseDiscount        *float64 `json:"course_discount,omitempty"`
	ShootingDrillsPerYear *int     `json:"shooting_drills_per_year,omitempty"`
	GunExemption          *bool    `json:"gun_exemption,omitempty"`
	TargetExemption       *bool    `json:"target_exemption,omitempty"`
	Disabled              *bool    `json:"disabled,omitempty"`
}
