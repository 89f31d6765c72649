package handler

import (
	"math"

	"skillswap/internal/delivery/http/dto"
	"skillswap/internal/delivery/http/middleware"
	"skillswap/internal/domain/assessment"
	"skillswap/internal/pkg/response"
	"skillswap/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type SkillAssessmentHandler struct {
	uc usecase.SkillAssessmentUsecase
}

type skillAssessmentRequest struct {
	Skill       string   `json:"skill"`
	Description string   `json:"description"`
	Level       *float64 `json:"level"`
}

func NewSkillAssessmentHandler(uc usecase.SkillAssessmentUsecase) *SkillAssessmentHandler {
	return &SkillAssessmentHandler{uc: uc}
}

func (h *SkillAssessmentHandler) RegisterRoutes(r fiber.Router) {
	r.Post("/skill-assessment", h.Assess)
}

func (h *SkillAssessmentHandler) Assess(c fiber.Ctx) error {
	if _, ok := middleware.UserID(c); !ok {
		return unauthorized()
	}

	var req skillAssessmentRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request body", nil, err)
	}

	res, err := h.uc.Assess(c.Context(), assessment.Input{
		Skill:       req.Skill,
		Description: req.Description,
		Level:       levelFromRequest(req.Level),
	})
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewAssessmentResponse(res))
}

// levelFromRequest maps a missing or non-integral level to 0 so validation
// rejects it with the usual range message.
func levelFromRequest(v *float64) int {
	if v == nil || math.IsNaN(*v) || *v != math.Trunc(*v) {
		return 0
	}
	if *v < math.MinInt32 || *v > math.MaxInt32 {
		return 0
	}
	return int(*v)
}
