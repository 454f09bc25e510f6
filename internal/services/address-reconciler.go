package services

import (
	"github.com/rangehub/member_service/internal/domain"
	"github.com/rangehub/member_service/internal/dto"
	"github.com/rangehub/member_service/internal/helper"
	"github.com/rangehub/member_service/internal/repository"
)

// AddressReconciler aligns a submitted address collection with the persisted
// one. Match key is (zipcode, number) scoped to the member: a match updates
// the stored row in place, anything else inserts. Stored addresses absent
// from the submission are left untouched; nothing is ever deleted.
type AddressReconciler struct {
	addresses repository.AddressRepository
	audit     AuditTrail
}

func NewAddressReconciler(addresses repository.AddressRepository, audit AuditTrail) *AddressReconciler {
	return &AddressReconciler{addresses: addresses, audit: audit}
}

func (r *AddressReconciler) Reconcile(memberID, actorID uint, inputs []dto.AddressInput) error {
	for _, input := range inputs {
		candidates, err := r.addresses.FindByZipcode(memberID, input.Zipcode)
		if err != nil {
			return err
		}

		if len(candidates) == 0 {
			if err := r.insert(memberID, actorID, input); err != nil {
				return err
			}
			continue
		}

		for i := range candidates {
			stored := &candidates[i]
			if stored.Number == input.Number {
				applyAddressInput(stored, input)
				stored.Lifecycle = helper.ResolveLifecycle(nil, actorID, &stored.Lifecycle)
				if err := r.addresses.Save(stored); err != nil {
					return err
				}
				r.audit.Record(domain.TableMembersAddresses, domain.AuditActionUpdate, stored.ID, actorID)
			} else {
				// a zipcode hit with a different number inserts a new row,
				// once per non-matching candidate
				if err := r.insert(memberID, actorID, input); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

func (r *AddressReconciler) insert(memberID, actorID uint, input dto.AddressInput) error {
	address := &domain.Address{MemberID: memberID}
	applyAddressInput(address, input)
	address.Lifecycle = helper.ResolveLifecycle(nil, actorID, nil)

	created, err := r.addresses.Create(address)
	if err != nil {
		return err
	}

	r.audit.Record(domain.TableMembersAddresses, domain.AuditActionInsert, created.ID, actorID)
	return nil
}

func applyAddressInput(address *domain.Address, input dto.AddressInput) {
	address.Street = input.Street
	address.Number = input.Number
	address.Neighbourhood = input.Neighbourhood
	address.Complement = input.Complement
	address.Zipcode = input.Zipcode
	address.CityID = input.CityID
}
