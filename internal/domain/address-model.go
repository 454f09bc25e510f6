package domain

import "gorm.io/gorm"

// Address belongs to exactly one member. The pair (zipcode, number) scoped to
// the member is the natural match key used by reconciliation; addresses are
// never deleted by an update.
type Address struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	MemberID      uint   `gorm:"not null;index" json:"member_id"`
	Street        string `gorm:"not null" json:"street"`
	Number        string `gorm:"type:varchar(20);not null" json:"number"`
	Neighbourhood string `json:"neighbourhood"`
	Complement    string `json:"complement"`
	Zipcode       string `gorm:"type:varchar(20);not null;index" json:"zipcode"`
	CityID        uint   `gorm:"not null" json:"city_id"`

	Lifecycle
	gorm.Model
}

func (Address) TableName() string { return TableMembersAddresses }
