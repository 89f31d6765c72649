package usecase

import "errors"

var (
	ErrInternal              = errors.New("internal error")
	ErrInvalidInput          = errors.New("invalid input")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrForbidden             = errors.New("forbidden")
	ErrUserNotFound          = errors.New("User not found")
	ErrSkillNotFound         = errors.New("skill not found")
	ErrDuplicateSkill        = errors.New("duplicate skill")
	ErrUserSkillProfileEmpty = errors.New("Profile incomplete")
)
