package services

import (
	"github.com/rangehub/member_service/internal/domain"
	"github.com/rangehub/member_service/internal/repository"
)

// PermissionValidator checks a submitted permission list against the catalog.
// Duplicates are dropped keeping first-occurrence order; every code missing
// from the catalog is reported back, not just the first.
type PermissionValidator struct {
	catalog repository.PermissionRepository
}

func NewPermissionValidator(catalog repository.PermissionRepository) *PermissionValidator {
	return &PermissionValidator{catalog: catalog}
}

func (v *PermissionValidator) Validate(submitted []string) (accepted []domain.Permission, unknown []string, err error) {
	distinct := dedupeCodes(submitted)
	if len(distinct) == 0 {
		return nil, nil, nil
	}

	known, err := v.catalog.FindByCodes(distinct)
	if err != nil {
		return nil, nil, err
	}

	byCode := make(map[string]domain.Permission, len(known))
	for _, p := range known {
		byCode[p.Code] = p
	}

	for _, code := range distinct {
		if p, ok := byCode[code]; ok {
			accepted = append(accepted, p)
		} else {
			unknown = append(unknown, code)
		}
	}

	return accepted, unknown, nil
}

func dedupeCodes(codes []string) []string {
	seen := make(map[string]bool, len(codes))
	distinct := make([]string, 0, len(codes))
	for _, code := range codes {
		if seen[code] {
			continue
		}
		seen[code] = true
		distinct = append(distinct, code)
	}
	return distinct
}
