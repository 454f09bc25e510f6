package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rangehub/member_service/internal/dto"
	"github.com/rangehub/member_service/internal/helper"
	"github.com/rangehub/member_service/internal/helper/utils"
	"github.com/rangehub/member_service/internal/services"
)

type UserHandler struct {
	svc  services.UserService
	auth helper.Auth
}

func NewUserHandler(svc services.UserService, auth helper.Auth) *UserHandler {
	return &UserHandler{svc: svc, auth: auth}
}

// SetupPublicRoutes registers the routes that run before auth middleware.
func (h *UserHandler) SetupPublicRoutes(api fiber.Router) {
	api.Post("/sessions", h.Login)
}

func (h *UserHandler) SetupRoutes(api fiber.Router) {
	users := api.Group("/users")

	users.Post("/", h.Store)
	users.Get("/", h.Index)
	users.Get("/permissions", h.FindPermissions)
	users.Get("/me", h.Me)
	users.Get("/:id", h.Show)
	users.Put("/:id", h.Update)
}

func (h *UserHandler) Login(ctx *fiber.Ctx) error {
	var requestBody dto.UserLogin
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "username and password are required")
	}

	user, err := h.svc.Login(requestBody)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "invalid username or password")
	}

	token, err := h.auth.GenerateToken(user.ID, user.Username)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, "could not generate token")
	}

	return utils.ResponseSuccess(ctx, fiber.StatusOK, dto.LoginResponse{
		Token: token,
		User: dto.UserResponse{
			ID:       user.ID,
			Name:     user.Name,
			Email:    user.Email,
			Username: user.Username,
			Disabled: user.Disabled,
		},
	})
}

func (h *UserHandler) Store(ctx *fiber.Ctx) error {
	var requestBody dto.UserCreateRequest

	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "please provide valid inputs")
	}

	if requestBody.Email == "" || requestBody.Password == "" || requestBody.Username == "" {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "please provide valid inputs")
	}

	id, err := h.svc.Create(actorID(ctx), requestBody)
	if err != nil {
		return respondServiceError(ctx, err)
	}

	return utils.ResponseSuccess(ctx, fiber.StatusCreated, dto.StoredResponse{ID: id})
}

func (h *UserHandler) Index(ctx *fiber.Ctx) error {
	users, err := h.svc.List(parseOnlyEnabled(ctx), ctx.Query("search", ""), parseSort(ctx))
	if err != nil {
		return respondServiceError(ctx, err)
	}

	return utils.ResponseSuccess(ctx, fiber.StatusOK, users)
}

func (h *UserHandler) FindPermissions(ctx *fiber.Ctx) error {
	permissions, err := h.svc.FindPermissions(actorID(ctx))
	if err != nil {
		return respondServiceError(ctx, err)
	}

	return utils.ResponseSuccess(ctx, fiber.StatusOK, dto.UserPermissionsResponse{
		Permissions: permissions,
	})
}

// Me resolves the user record behind the current token.
func (h *UserHandler) Me(ctx *fiber.Ctx) error {
	user, err := h.svc.Get(actorID(ctx))
	if err != nil {
		return respondServiceError(ctx, err)
	}

	return utils.ResponseSuccess(ctx, fiber.StatusOK, user)
}

func (h *UserHandler) Show(ctx *fiber.Ctx) error {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}

	user, err := h.svc.Get(id)
	if err != nil {
		return respondServiceError(ctx, err)
	}

	return utils.ResponseSuccess(ctx, fiber.StatusOK, user)
}

func (h *UserHandler) Update(ctx *fiber.Ctx) error {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}

	var requestBody dto.UserUpdateRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "please provide valid inputs")
	}

	updatedID, err := h.svc.Update(actorID(ctx), id, requestBody)
	if err != nil {
		return respondServiceError(ctx, err)
	}

	return utils.ResponseSuccess(ctx, fiber.StatusOK, dto.StoredResponse{ID: updatedID})
}
