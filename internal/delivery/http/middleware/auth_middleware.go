package middleware

import (
	"errors"
	"strings"

	"skillswap/internal/pkg/jwt"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const ctxCallerKey = "caller"

// Caller is the authenticated identity attached to a request.
type Caller struct {
	UserID uuid.UUID
	Email  string
}

type AuthMiddleware struct {
	verifier jwt.Verifier
}

func NewAuthMiddleware(verifier jwt.Verifier) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier}
}

func (m *AuthMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		token, ok := bearerToken(c.Get(fiber.HeaderAuthorization))
		if !ok {
			return NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
		}

		claims, err := m.verifier.ValidateToken(token)
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return NewAppError(fiber.StatusUnauthorized, "Token expired", nil, err)
		case err != nil:
			return NewAppError(fiber.StatusUnauthorized, "Invalid token", nil, err)
		}

		SetCaller(c, Caller{UserID: claims.UserID, Email: claims.Email})
		return c.Next()
	}
}

// SetCaller attaches an identity to the request. Tests use it to skip token handling.
func SetCaller(c fiber.Ctx, caller Caller) {
	c.Locals(ctxCallerKey, caller)
}

func CallerFrom(c fiber.Ctx) (Caller, bool) {
	caller, ok := c.Locals(ctxCallerKey).(Caller)
	if !ok || caller.UserID == uuid.Nil {
		return Caller{}, false
	}
	return caller, true
}

// UserID returns the caller's id set by AuthMiddleware.
func UserID(c fiber.Ctx) (uuid.UUID, bool) {
	caller, ok := CallerFrom(c)
	return caller.UserID, ok
}

// callerField tags log lines with the caller when one is known.
func callerField(c fiber.Ctx) zap.Field {
	if caller, ok := CallerFrom(c); ok {
		return zap.Stringer("user_id", caller.UserID)
	}
	return zap.Skip()
}

func bearerToken(header string) (string, bool) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
