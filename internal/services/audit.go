package services

import (
	"fmt"
	"log"

	"github.com/rangehub/member_service/internal/domain"
	"github.com/rangehub/member_service/internal/interfaces"
	"github.com/rangehub/member_service/internal/repository"
)

// fixed per action kind
const (
	auditInsertDescription = "record created by user"
	auditUpdateDescription = "record updated by user"
)

// AuditTrail appends one ledger entry per successful insert/update. It is
// called after the primary write has committed, so a failed ledger write must
// not fail the operation: it is logged and swallowed. The same entry is
// mirrored to kafka for downstream consumers, also best-effort.
type AuditTrail interface {
	Record(tableName, action string, referenceID, actorID uint)
}

type auditTrail struct {
	repo     repository.AuditRepository
	producer interfaces.ProducerHandler
}

func NewAuditTrail(repo repository.AuditRepository, producer interfaces.ProducerHandler) AuditTrail {
	return &auditTrail{repo: repo, producer: producer}
}

func (a *auditTrail) Record(tableName, action string, referenceID, actorID uint) {
	description := auditInsertDescription
	if action == domain.AuditActionUpdate {
		description = auditUpdateDescription
	}

	entry := &domain.AuditLog{
		TableName:   tableName,
		Action:      action,
		Description: description,
		ReferenceID: referenceID,
		UserID:      actorID,
	}

	if err := a.repo.Store(entry); err != nil {
		log.Printf("audit write failed: table=%s action=%s ref=%d user=%d: %v",
			tableName, action, referenceID, actorID, err)
	}

	if a.producer != nil {
		payload := fmt.Sprintf(
			`{"table":"%s","action":"%s","reference_id":%d,"user_id":%d}`,
			tableName, action, referenceID, actorID,
		)
		if err := a.producer.PublishMessage([]byte("audit."+action), []byte(payload)); err != nil {
			log.Printf("audit event publish failed: %v", err)
		}
	}
}
