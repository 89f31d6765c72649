package usecase

import (
	"context"
	"errors"
	"strings"

	"skillswap/internal/domain/skill"
	"skillswap/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AddSkillInput struct {
	Title             string
	Description       string
	Category          string
	ContactPreference string
}

type UserSkillUsecase interface {
	ListSkills(ctx context.Context, userID uuid.UUID) ([]skill.Skill, error)
	AddSkill(ctx context.Context, userID uuid.UUID, in AddSkillInput) (skill.Skill, error)
	DeleteSkill(ctx context.Context, userID uuid.UUID, skillID uuid.UUID) error
}

type UserSkill struct {
	repo   repository.SkillRepository
	logger *zap.Logger
}

func NewUserSkillUsecase(repo repository.SkillRepository, logger *zap.Logger) *UserSkill {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UserSkill{repo: repo, logger: logger}
}

func (u *UserSkill) ListSkills(ctx context.Context, userID uuid.UUID) ([]skill.Skill, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	items, err := u.repo.ListByUserID(ctx, userID)
	if err != nil {
		u.logger.Error("list skills", zap.String("user_id", userID.String()), zap.Error(err))
		return nil, ErrInternal
	}
	return items, nil
}

// AddSkill returns skill.FieldErrors when the input is invalid and
// ErrDuplicateSkill when the user already has a skill with the same title,
// compared case-insensitively.
func (u *UserSkill) AddSkill(ctx context.Context, userID uuid.UUID, in AddSkillInput) (skill.Skill, error) {
	if userID == uuid.Nil {
		return skill.Skill{}, ErrUnauthorized
	}

	pref := skill.ContactPreference(strings.ToLower(strings.TrimSpace(in.ContactPreference)))
	if pref == "" {
		pref = skill.ContactEmail
	}
	s := skill.Skill{
		UserID:            userID,
		Title:             strings.TrimSpace(in.Title),
		Description:       strings.TrimSpace(in.Description),
		Category:          strings.TrimSpace(in.Category),
		ContactPreference: pref,
	}
	if err := s.Validate(); err != nil {
		return skill.Skill{}, err
	}

	taken, err := u.repo.HasTitle(ctx, userID, s.Title)
	if err != nil {
		u.logger.Error("check skill title", zap.String("user_id", userID.String()), zap.Error(err))
		return skill.Skill{}, ErrInternal
	}
	if taken {
		return skill.Skill{}, ErrDuplicateSkill
	}

	created, err := u.repo.Create(ctx, s)
	switch {
	case err == nil:
		return created, nil
	case errors.Is(err, repository.ErrDuplicateSkill):
		return skill.Skill{}, ErrDuplicateSkill
	default:
		u.logger.Error("create skill", zap.String("user_id", userID.String()), zap.Error(err))
		return skill.Skill{}, ErrInternal
	}
}

func (u *UserSkill) DeleteSkill(ctx context.Context, userID uuid.UUID, skillID uuid.UUID) error {
	if userID == uuid.Nil {
		return ErrUnauthorized
	}
	if skillID == uuid.Nil {
		return ErrInvalidInput
	}

	err := u.repo.Delete(ctx, skillID, userID)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrSkillNotFound):
		return ErrSkillNotFound
	case errors.Is(err, repository.ErrSkillForbidden):
		return ErrForbidden
	default:
		u.logger.Error("delete skill", zap.String("skill_id", skillID.String()), zap.Error(err))
		return ErrInternal
	}
}
