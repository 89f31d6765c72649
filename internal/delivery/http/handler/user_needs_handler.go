package handler

import (
	"skillswap/internal/delivery/http/dto"
	"skillswap/internal/delivery/http/middleware"
	"skillswap/internal/pkg/response"
	"skillswap/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type UserNeedsHandler struct {
	uc usecase.UserNeedsUsecase
}

func NewUserNeedsHandler(uc usecase.UserNeedsUsecase) *UserNeedsHandler {
	return &UserNeedsHandler{uc: uc}
}

func (h *UserNeedsHandler) RegisterRoutes(r fiber.Router) {
	grp := r.Group("/me/needs")
	grp.Get("/", h.Get)
	grp.Put("/", h.Replace)
}

func (h *UserNeedsHandler) Get(c fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return unauthorized()
	}

	needs, err := h.uc.GetNeeds(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NeedsResponse{Needs: needs})
}

func (h *UserNeedsHandler) Replace(c fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return unauthorized()
	}

	var req dto.NeedsResponse
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request body", nil, err)
	}

	needs, err := h.uc.ReplaceNeeds(c.Context(), userID, req.Needs)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NeedsResponse{Needs: needs})
}
