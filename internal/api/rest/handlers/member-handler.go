package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rangehub/member_service/internal/dto"
	"github.com/rangehub/member_service/internal/helper/utils"
	"github.com/rangehub/member_service/internal/services"
	pkgutils "github.com/rangehub/member_service/pkg/utils"
)

const maxDocumentSize = 10 * 1024 * 1024 // 10MB

type MemberHandler struct {
	svc services.MemberService
}

func NewMemberHandler(svc services.MemberService) *MemberHandler {
	return &MemberHandler{svc: svc}
}

func (h *MemberHandler) SetupRoutes(api fiber.Router) {
	members := api.Group("/members")

	members.Post("/", h.Store)
	members.Get("/", h.Index)
	members.Get("/:id", h.Show)
	members.Put("/:id", h.Update)
	members.Get("/:id/addresses", h.Addresses)
	members.Post("/:id/documents", h.AttachDocuments)
	members.Get("/:id/documents", h.Documents)
}

func (h *MemberHandler) Store(ctx *fiber.Ctx) error {
	var requestBody dto.MemberCreateRequest

	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "please provide valid inputs")
	}

	id, err := h.svc.Create(actorID(ctx), requestBody)
	if err != nil {
		return respondServiceError(ctx, err)
	}

	return utils.ResponseSuccess(ctx, fiber.StatusCreated, dto.StoredResponse{ID: id})
}

func (h *MemberHandler) Index(ctx *fiber.Ctx) error {
	members, err := h.svc.List(parseOnlyEnabled(ctx), ctx.Query("search", ""))
	if err != nil {
		return respondServiceError(ctx, err)
	}

	return utils.ResponseSuccess(ctx, fiber.StatusOK, members)
}

func (h *MemberHandler) Show(ctx *fiber.Ctx) error {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}

	member, err := h.svc.Get(id)
	if err != nil {
		return respondServiceError(ctx, err)
	}

	return utils.ResponseSuccess(ctx, fiber.StatusOK, member)
}

func (h *MemberHandler) Update(ctx *fiber.Ctx) error {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}

	var requestBody dto.MemberUpdateRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "please provide valid inputs")
	}

	updatedID, err := h.svc.Update(actorID(ctx), id, requestBody)
	if err != nil {
		return respondServiceError(ctx, err)
	}

	return utils.ResponseSuccess(ctx, fiber.StatusOK, dto.StoredResponse{ID: updatedID})
}

func (h *MemberHandler) Addresses(ctx *fiber.Ctx) error {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}

	addresses, err := h.svc.GetAddresses(id)
	if err != nil {
		return respondServiceError(ctx, err)
	}

	return utils.ResponseSuccess(ctx, fiber.StatusOK, addresses)
}

func (h *MemberHandler) AttachDocuments(ctx *fiber.Ctx) error {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}

	form, err := ctx.MultipartForm()
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "multipart form is required")
	}

	files := form.File["documents"]
	if len(files) == 0 {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "at least one document is required")
	}

	stored := make([]dto.DocumentResponse, 0, len(files))
	for _, file := range files {
		f, err := file.Open()
		if err != nil {
			return utils.ResponseError(ctx, fiber.StatusBadRequest, "cannot open uploaded file")
		}

		data, err := pkgutils.ReadAllLimit(f, maxDocumentSize)
		f.Close()
		if err != nil {
			return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
		}

		document, err := h.svc.AttachDocument(ctx.UserContext(), actorID(ctx), id, file.Filename, data)
		if err != nil {
			return respondServiceError(ctx, err)
		}

		stored = append(stored, dto.DocumentResponse{
			ID:   document.ID,
			Name: document.Name,
			Path: document.Path,
		})
	}

	return utils.ResponseSuccess(ctx, fiber.StatusCreated, stored)
}

func (h *MemberHandler) Documents(ctx *fiber.Ctx) error {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}

	documents, err := h.svc.ListDocuments(id)
	if err != nil {
		return respondServiceError(ctx, err)
	}

	return utils.ResponseSuccess(ctx, fiber.StatusOK, documents)
}
