package repository

import (
	"errors"
	"log"

	"github.com/rangehub/member_service/internal/domain"
	"gorm.io/gorm"
)

type DocumentRepository interface {
	Create(document *domain.MemberDocument) (*domain.MemberDocument, error)
	FindByMemberID(memberID uint) ([]domain.MemberDocument, error)
}

type documentRepository struct {
	db *gorm.DB
}

func NewDocumentRepository(db *gorm.DB) DocumentRepository {
	return &documentRepository{db: db}
}

func (r *documentRepository) Create(document *domain.MemberDocument) (*domain.MemberDocument, error) {
	if document == nil {
		return nil, errors.New("nil document")
	}

	if err := r.db.Create(document).Error; err != nil {
		log.Printf("create document error: %v", err)
		return nil, err
	}

	return document, nil
}

func (r *documentRepository) FindByMemberID(memberID uint) ([]domain.MemberDocument, error) {
	var documents []domain.MemberDocument

	err := r.db.
		Where("member_id = ?", memberID).
		Order("id ASC").
		Find(&documents).Error
	if err != nil {
		log.Printf("find documents by member error: %v", err)
		return nil, err
	}

	return documents, nil
}
