package handler

import (
	"strconv"
	"strings"

	"skillswap/internal/delivery/http/dto"
	"skillswap/internal/delivery/http/middleware"
	"skillswap/internal/pkg/response"
	"skillswap/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type SkillMatchHandler struct {
	uc usecase.SkillMatchUsecase
}

func NewSkillMatchHandler(uc usecase.SkillMatchUsecase) *SkillMatchHandler {
	return &SkillMatchHandler{uc: uc}
}

func (h *SkillMatchHandler) RegisterRoutes(r fiber.Router) {
	r.Get("/skill-matches", h.FindMatches)
}

func (h *SkillMatchHandler) FindMatches(c fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return unauthorized()
	}

	fields := map[string]string{}
	limit, ok := queryInt(c, "limit", usecase.DefaultMatchLimit, 1, usecase.MaxMatchLimit)
	if !ok {
		fields["limit"] = "limit must be an integer between 1 and 100"
	}
	minScore, ok := queryInt(c, "minScore", 0, 0, usecase.MaxMatchMinScore)
	if !ok {
		fields["minScore"] = "minScore must be an integer between 0 and 100"
	}
	if len(fields) > 0 {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid query parameters", response.ValidationData{Fields: fields}, nil)
	}

	items, err := h.uc.FindMatches(c.Context(), userID, usecase.SkillMatchParams{Limit: limit, MinScore: minScore})
	if err != nil {
		return mapUsecaseError(err)
	}

	res := make([]dto.SkillMatchResponse, 0, len(items))
	for _, it := range items {
		needs := it.Needs
		if needs == nil {
			needs = []string{}
		}
		res = append(res, dto.SkillMatchResponse{
			User:       dto.NewMatchUserResponse(it.User),
			Skills:     dto.NewSkillResponses(it.Skills),
			Needs:      needs,
			MatchScore: it.MatchScore,
			Strategy:   string(it.Strategy),
		})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func queryInt(c fiber.Ctx, key string, def, min, max int) (int, bool) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return def, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < min || v > max {
		return 0, false
	}
	return v, true
}
