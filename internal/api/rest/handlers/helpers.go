package handlers

import (
	"encoding/json"
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/rangehub/member_service/internal/dto"
	"github.com/rangehub/member_service/internal/helper"
	"github.com/rangehub/member_service/internal/helper/utils"
)

func actorID(ctx *fiber.Ctx) uint {
	id, ok := ctx.Locals("userID").(uint)
	if !ok {
		return 0
	}
	return id
}

func respondServiceError(ctx *fiber.Ctx, err error) error {
	var unknownPerms *helper.UnknownPermissionsError

	switch {
	case errors.Is(err, helper.ErrNotFound):
		return utils.ResponseError(ctx, fiber.StatusNotFound, err.Error())
	case errors.Is(err, helper.ErrEmailInUse),
		errors.Is(err, helper.ErrUsernameInUse),
		errors.Is(err, helper.ErrPlanNotFound):
		return utils.ResponseError(ctx, fiber.StatusConflict, err.Error())
	case errors.As(err, &unknownPerms):
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":                   "one or more permissions do not exist",
			"nonexistent_permissions": unknownPerms.Codes,
		})
	default:
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}
}

func parseOnlyEnabled(ctx *fiber.Ctx) bool {
	onlyEnabled, err := strconv.ParseBool(ctx.Query("onlyEnabled", "true"))
	if err != nil {
		return true
	}
	return onlyEnabled
}

func parseSort(ctx *fiber.Ctx) dto.SortInput {
	var sort dto.SortInput
	raw := ctx.Query("sort", "")
	if raw == "" {
		return sort
	}
	// ignore malformed sort, keep the default ordering
	_ = json.Unmarshal([]byte(raw), &sort)
	return sort
}

func parseIDParam(ctx *fiber.Ctx, name string) (uint, error) {
	id, err := strconv.ParseUint(ctx.Params(name), 10, 32)
	if err != nil || id == 0 {
		return 0, errors.New("invalid id")
	}
	return uint(id), nil
}
