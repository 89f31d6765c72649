package handler

import (
	"errors"

	"skillswap/internal/delivery/http/middleware"
	"skillswap/internal/domain/assessment"
	"skillswap/internal/domain/skill"
	"skillswap/internal/pkg/response"
	"skillswap/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

func unauthorized() error {
	return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
}

func validationFailed(fields map[string]string, cause error) error {
	return middleware.NewAppError(fiber.StatusBadRequest, response.MessageValidationFailed, response.ValidationData{Fields: fields}, cause)
}

// mapUsecaseError turns usecase sentinels and field errors into HTTP errors.
func mapUsecaseError(err error) error {
	var verrs assessment.ValidationErrors
	if errors.As(err, &verrs) {
		return validationFailed(verrs.Fields(), err)
	}
	var ferrs skill.FieldErrors
	if errors.As(err, &ferrs) {
		return validationFailed(ferrs.Fields(), err)
	}

	switch {
	case errors.Is(err, usecase.ErrUnauthorized):
		return unauthorized()
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid input", nil, err)
	case errors.Is(err, usecase.ErrUserSkillProfileEmpty):
		return middleware.NewAppError(fiber.StatusBadRequest, "Profile incomplete", map[string]string{
			"detail": "Please add skills or needs to your profile to find matches",
		}, err)
	case errors.Is(err, usecase.ErrUserNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "User not found", nil, err)
	case errors.Is(err, usecase.ErrSkillNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Skill not found", nil, err)
	case errors.Is(err, usecase.ErrDuplicateSkill):
		return middleware.NewAppError(fiber.StatusConflict, "Duplicate skill", map[string]string{
			"detail": "You already have a skill with this title",
		}, err)
	case errors.Is(err, usecase.ErrForbidden):
		return middleware.NewAppError(fiber.StatusForbidden, "Forbidden", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, "Internal server error", nil, err)
	}
}
