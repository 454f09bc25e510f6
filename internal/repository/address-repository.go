package repository

import (
	"errors"
	"log"

	"github.com/rangehub/member_service/internal/domain"
	"gorm.io/gorm"
)

type AddressRepository interface {
	Create(address *domain.Address) (*domain.Address, error)
	BulkInsert(addresses []domain.Address) ([]domain.Address, error)
	Save(address *domain.Address) error
	FindByZipcode(memberID uint, zipcode string) ([]domain.Address, error)
	FindByMemberID(memberID uint) ([]domain.Address, error)
}

type addressRepository struct {
	db *gorm.DB
}

func NewAddressRepository(db *gorm.DB) AddressRepository {
	return &addressRepository{db: db}
}

func (r *addressRepository) Create(address *domain.Address) (*domain.Address, error) {
	if address == nil {
		return nil, errors.New("nil address")
	}

	if err := r.db.Create(address).Error; err != nil {
		log.Printf("create address error: %v", err)
		return nil, err
	}

	return address, nil
}

func (r *addressRepository) BulkInsert(addresses []domain.Address) ([]domain.Address, error) {
	if len(addresses) == 0 {
		return addresses, nil
	}

	if err := r.db.Create(&addresses).Error; err != nil {
		log.Printf("bulk insert addresses error: %v", err)
		return nil, err
	}

	return addresses, nil
}

func (r *addressRepository) Save(address *domain.Address) error {
	if address == nil {
		return errors.New("nil address")
	}

	if err := r.db.Save(address).Error; err != nil {
		log.Printf("save address error: %v", err)
		return err
	}
	return nil
}

func (r *addressRepository) FindByZipcode(memberID uint, zipcode string) ([]domain.Address, error) {
	var addresses []domain.Address

	err := r.db.
		Where("member_id = ? AND zipcode = ?", memberID, zipcode).
		Order("id ASC").
		Find(&addresses).Error
	if err != nil {
		log.Printf("find addresses by zipcode error: %v", err)
		return nil, err
	}

	return addresses, nil
}

func (r *addressRepository) FindByMemberID(memberID uint) ([]domain.Address, error) {
	var addresses []domain.Address

	err := r.db.
		Where("member_id = ?", memberID).
		Order("id ASC").
		Find(&addresses).Error
	if err != nil {
		log.Printf("find addresses by member error: %v", err)
		return nil, err
	}

	return addresses, nil
}
