package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rangehub/member_service/internal/dto"
	"github.com/rangehub/member_service/internal/helper/utils"
	"github.com/rangehub/member_service/internal/services"
)

type PlanHandler struct {
	svc services.PlanService
}

func NewPlanHandler(svc services.PlanService) *PlanHandler {
	return &PlanHandler{svc: svc}
}

func (h *PlanHandler) SetupRoutes(api fiber.Router) {
	plans := api.Group("/plans")

	plans.Post("/", h.Store)
	plans.Get("/", h.Index)
	plans.Get("/:id", h.Show)
	plans.Put("/:id", h.Update)
}

func (h *PlanHandler) Store(ctx *fiber.Ctx) error {
	var requestBody dto.PlanCreateRequest

	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "please provide valid inputs")
	}

	id, err := h.svc.Create(actorID(ctx), requestBody)
	if err != nil {
		return respondServiceError(ctx, err)
	}

	return utils.ResponseSuccess(ctx, fiber.StatusCreated, dto.StoredResponse{ID: id})
}

func (h *PlanHandler) Index(ctx *fiber.Ctx) error {
	plans, err := h.svc.List(parseOnlyEnabled(ctx), ctx.Query("search", ""))
	if err != nil {
		return respondServiceError(ctx, err)
	}

	return utils.ResponseSuccess(ctx, fiber.StatusOK, plans)
}

func (h *PlanHandler) Show(ctx *fiber.Ctx) error {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}

	plan, err := h.svc.Get(id)
	if err != nil {
		return respondServiceError(ctx, err)
	}

	return utils.ResponseSuccess(ctx, fiber.StatusOK, plan)
}

func (h *PlanHandler) Update(ctx *fiber.Ctx) error {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}

	var requestBody dto.PlanUpdateRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "please provide valid inputs")
	}

	updatedID, err := h.svc.Update(actorID(ctx), id, requestBody)
	if err != nil {
		return respondServiceError(ctx, err)
	}

	return utils.ResponseSuccess(ctx, fiber.StatusOK, dto.StoredResponse{ID: updatedID})
}
