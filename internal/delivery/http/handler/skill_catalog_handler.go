package handler

import (
	"math"
	"strings"

	"skillswap/internal/delivery/http/dto"
	"skillswap/internal/delivery/http/middleware"
	"skillswap/internal/pkg/response"
	"skillswap/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type SkillCatalogHandler struct {
	uc usecase.SkillCatalogUsecase
}

func NewSkillCatalogHandler(uc usecase.SkillCatalogUsecase) *SkillCatalogHandler {
	return &SkillCatalogHandler{uc: uc}
}

func (h *SkillCatalogHandler) RegisterRoutes(r fiber.Router) {
	r.Get("/skills", h.Browse)
}

// Browse lists every user's skills, newest first. No session is required.
func (h *SkillCatalogHandler) Browse(c fiber.Ctx) error {
	fields := map[string]string{}
	limit, ok := queryInt(c, "limit", usecase.DefaultSkillPageLimit, 1, usecase.MaxSkillPageLimit)
	if !ok {
		fields["limit"] = "limit must be an integer between 1 and 100"
	}
	page, ok := queryInt(c, "page", 1, 1, math.MaxInt32)
	if !ok {
		fields["page"] = "page must be a positive integer"
	}
	if len(fields) > 0 {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid query parameters", response.ValidationData{Fields: fields}, nil)
	}

	res, err := h.uc.Browse(c.Context(), usecase.BrowseSkillsParams{
		Category: strings.TrimSpace(c.Query("category")),
		Search:   strings.TrimSpace(c.Query("search")),
		Limit:    limit,
		Page:     page,
	})
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.SkillListResponse{
		Skills: dto.NewSkillListingResponses(res.Items),
		Pagination: dto.PaginationResponse{
			Total: res.Total,
			Page:  res.Page,
			Limit: res.Limit,
			Pages: res.Pages,
		},
	})
}
