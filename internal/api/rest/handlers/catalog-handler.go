package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rangehub/member_service/internal/helper/utils"
	"github.com/rangehub/member_service/internal/services"
)

type CatalogHandler struct {
	svc services.CatalogService
}

func NewCatalogHandler(svc services.CatalogService) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

func (h *CatalogHandler) SetupRoutes(api fiber.Router) {
	api.Get("/permissions", h.Permissions)
	api.Get("/cities", h.Cities)
}

func (h *CatalogHandler) Permissions(ctx *fiber.Ctx) error {
	permissions, err := h.svc.ListPermissions()
	if err != nil {
		return respondServiceError(ctx, err)
	}

	return utils.ResponseSuccess(ctx, fiber.StatusOK, permissions)
}

func (h *CatalogHandler) Cities(ctx *fiber.Ctx) error {
	cities, err := h.svc.ListCities()
	if err != nil {
		return respondServiceError(ctx, err)
	}

	return utils.ResponseSuccess(ctx, fiber.StatusOK, cities)
}
