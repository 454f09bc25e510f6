package domain

import "time"

// Audited table names. One per entity type this service mutates.
const (
	TableMembers          = "members"
	TableMembersAddresses = "members_addresses"
	TableMembersDocuments = "members_documents"
	TableMembersPlans     = "members_plans"
	TableUsers            = "users"
)

const (
	AuditActionInsert = "insert"
	AuditActionUpdate = "update"
)

// AuditLog is append-only: rows are created once per successful insert/update
// and never modified or deleted.
type AuditLog struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	TableName   string    `gorm:"type:varchar(100);not null;index" json:"table_name"`
	Action      string    `gorm:"type:varchar(20);not null" json:"action"`
	Description string    `gorm:"type:varchar(255);not null" json:"description"`
	ReferenceID uint      `gorm:"not null;index" json:"reference_id"`
	UserID      uint      `gorm:"not null;index" json:"user_id"` // acting user
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}
