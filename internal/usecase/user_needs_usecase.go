package usecase

import (
	"context"
	"errors"
	"strings"

	"skillswap/internal/domain/user"
	"skillswap/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	MaxNeeds   = 50
	MaxNeedLen = 100
)

type UserNeedsUsecase interface {
	GetNeeds(ctx context.Context, userID uuid.UUID) ([]string, error)
	ReplaceNeeds(ctx context.Context, userID uuid.UUID, needs []string) ([]string, error)
}

type UserNeeds struct {
	repo   repository.NeedRepository
	logger *zap.Logger
}

func NewUserNeedsUsecase(repo repository.NeedRepository, logger *zap.Logger) *UserNeeds {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UserNeeds{repo: repo, logger: logger}
}

func (u *UserNeeds) GetNeeds(ctx context.Context, userID uuid.UUID) ([]string, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	needs, err := u.repo.Get(ctx, userID)
	if err != nil {
		return nil, u.mapErr(err, userID)
	}
	return needs, nil
}

// ReplaceNeeds trims entries, drops blanks and case-insensitive duplicates,
// and keeps the first spelling of each.
func (u *UserNeeds) ReplaceNeeds(ctx context.Context, userID uuid.UUID, needs []string) ([]string, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}

	clean := make([]string, 0, len(needs))
	seen := make(map[string]struct{}, len(needs))
	for _, n := range needs {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		if len([]rune(n)) > MaxNeedLen {
			return nil, ErrInvalidInput
		}
		key := strings.ToLower(n)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		clean = append(clean, n)
	}
	if len(clean) > MaxNeeds {
		return nil, ErrInvalidInput
	}

	out, err := u.repo.Replace(ctx, userID, clean)
	if err != nil {
		return nil, u.mapErr(err, userID)
	}
	return out, nil
}

func (u *UserNeeds) mapErr(err error, userID uuid.UUID) error {
	if errors.Is(err, user.ErrNotFound) {
		return ErrUserNotFound
	}
	u.logger.Error("user needs", zap.String("user_id", userID.String()), zap.Error(err))
	return ErrInternal
}
