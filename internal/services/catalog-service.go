package services

import (
	"github.com/rangehub/member_service/internal/domain"
	"github.com/rangehub/member_service/internal/repository"
)

// CatalogService exposes the read-only lookup tables the admin UI needs.
type CatalogService interface {
	ListPermissions() ([]domain.Permission, error)
	ListCities() ([]domain.City, error)
}

type catalogService struct {
	permissions repository.PermissionRepository
	cities      repository.CityRepository
}

func NewCatalogService(
	permissions repository.PermissionRepository,
	cities repository.CityRepository,
) CatalogService {
	return &catalogService{permissions: permissions, cities: cities}
}

func (c *catalogService) ListPermissions() ([]domain.Permission, error) {
	return c.permissions.List()
}

func (c *catalogService) ListCities() ([]domain.City, error) {
	return c.cities.List()
}
