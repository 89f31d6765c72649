package handler

import (
	"context"
	"time"

	"skillswap/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

// CacheChecker is an optional cache; a disabled one is bypassed by reads.
type CacheChecker interface {
	Pinger
	Enabled() bool
}

type HealthHandler struct {
	db    Pinger
	cache CacheChecker
}

func NewHealthHandler(db Pinger, cache CacheChecker) *HealthHandler {
	return &HealthHandler{db: db, cache: cache}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	r.Get("/health", h.Health)
}

// Health reports liveness plus the reachability of whatever backends are
// wired. Only a down database fails the check; a down cache degrades it.
func (h *HealthHandler) Health(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	data := fiber.Map{"status": "ok"}

	if h.cache != nil {
		switch {
		case !h.cache.Enabled():
			data["cache"] = "bypassed"
		case h.cache.Ping(ctx) != nil:
			data["status"] = "degraded"
			data["cache"] = "down"
		default:
			data["cache"] = "up"
		}
	}

	if h.db == nil {
		return response.Success(c, fiber.StatusOK, response.MessageOK, data)
	}
	if err := h.db.Ping(ctx); err != nil {
		data["status"] = "degraded"
		data["database"] = "down"
		return response.Error(c, fiber.StatusServiceUnavailable, "service unavailable", data)
	}
	data["database"] = "up"
	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}
