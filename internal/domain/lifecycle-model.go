package domain

import "time"

// Lifecycle is embedded in every record that can be soft-disabled.
// CreatedBy is written once at insert and never changes afterwards.
// DisabledAt and LastDisabledBy are set only while Disabled is true.
type Lifecycle struct {
	Disabled       bool       `gorm:"not null;default:false;index" json:"disabled"`
	DisabledAt     *time.Time `json:"disabled_at,omitempty"`
	LastDisabledBy *uint      `json:"last_disabled_by,omitempty"`
	LastUpdatedBy  uint       `gorm:"not null" json:"last_updated_by"`
	CreatedBy      uint       `gorm:"not null" json:"created_by"`

	// filled by list queries via subselect, not a stored column
	DisabledByUser *string `gorm:"->;-:migration" json:"disabled_by_user,omitempty"`
}
