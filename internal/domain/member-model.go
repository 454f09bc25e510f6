package domain

import (
	"time"

	"gorm.io/gorm"
)

type Member struct {
	ID                uint       `gorm:"primaryKey" json:"id"`
	Name              string     `gorm:"type:varchar(255);not null" json:"name"`
	RG                string     `gorm:"type:varchar(50);not null" json:"rg"`
	IssuingAuthority  string     `gorm:"type:varchar(100);not null" json:"issuing_authority"`
	CPF               string     `gorm:"type:varchar(20);not null" json:"cpf"`
	NaturalityCityID  uint       `gorm:"not null" json:"naturality_city_id"`
	MotherName        string     `json:"mother_name"`
	FatherName        string     `json:"father_name"`
	Profession        string     `gorm:"not null" json:"profession"`
	Email             string     `gorm:"type:varchar(255);index" json:"email"`
	Phone             string     `json:"phone"`
	CellPhone         string     `gorm:"not null" json:"cell_phone"`
	CRNumber          string     `gorm:"type:varchar(50);not null" json:"cr_number"`
	IssuedAt          time.Time  `gorm:"not null" json:"issued_at"`
	BirthDate         time.Time  `gorm:"not null" json:"birth_date"`
	CRValidity        time.Time  `gorm:"not null" json:"cr_validity"`
	HealthIssues      string     `json:"health_issues"`
	Gender            string     `gorm:"type:varchar(10);not null" json:"gender"`          // male | female | other
	MaritalStatus     string     `gorm:"type:varchar(30);not null" json:"marital_status"`  // single | married | widower | legally_separated | divorced
	BloodTyping       string     `gorm:"type:varchar(15);not null" json:"blood_typing"`
	PlanID            uint       `gorm:"not null;index" json:"plan_id"`

	Lifecycle
	gorm.Model
}

func (Member) TableName() string { return TableMembers }
