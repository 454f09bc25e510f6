package repository

import (
	"errors"

	"github.com/rangehub/member_service/internal/domain"
	"gorm.io/gorm"
)

// AuditRepository only appends. Ledger rows are never updated or deleted.
type AuditRepository interface {
	Store(entry *domain.AuditLog) error
}

type auditRepository struct {
	db *gorm.DB
}

func NewAuditRepository(db *gorm.DB) AuditRepository {
	return &auditRepository{db: db}
}

func (r *auditRepository) Store(entry *domain.AuditLog) error {
	if entry == nil {
		return errors.New("nil audit entry")
	}
	return r.db.Create(entry).Error
}
