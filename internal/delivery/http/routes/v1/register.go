package v1

import (
	"skillswap/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

// Handlers holds everything mounted under /api/v1. Auth guards /ai and
// /users; the skill catalog is public.
type Handlers struct {
	Auth            fiber.Handler
	SkillAssessment *handler.SkillAssessmentHandler
	SkillMatch      *handler.SkillMatchHandler
	SkillCatalog    *handler.SkillCatalogHandler
	UserSkill       *handler.UserSkillHandler
	UserNeeds       *handler.UserNeedsHandler
}

func Register(r fiber.Router, h Handlers) {
	if r == nil {
		return
	}

	if h.SkillCatalog != nil {
		h.SkillCatalog.RegisterRoutes(r)
	}

	ai := h.group(r, "/ai")
	if h.SkillAssessment != nil {
		h.SkillAssessment.RegisterRoutes(ai)
	}
	if h.SkillMatch != nil {
		h.SkillMatch.RegisterRoutes(ai)
	}

	users := h.group(r, "/users")
	if h.UserSkill != nil {
		h.UserSkill.RegisterRoutes(users)
	}
	if h.UserNeeds != nil {
		h.UserNeeds.RegisterRoutes(users)
	}
}

// group mounts auth on the prefix itself so sibling routes stay public.
func (h Handlers) group(r fiber.Router, prefix string) fiber.Router {
	if h.Auth == nil {
		return r.Group(prefix)
	}
	return r.Group(prefix, h.Auth)
}
