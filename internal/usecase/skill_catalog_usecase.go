package usecase

import (
	"context"

	"skillswap/internal/repository"

	"go.uber.org/zap"
)

const (
	DefaultSkillPageLimit = 50
	MaxSkillPageLimit     = 100
)

type BrowseSkillsParams struct {
	Category string
	Search   string
	Limit    int
	Page     int
}

func (p BrowseSkillsParams) Validate() error {
	if p.Limit < 1 || p.Limit > MaxSkillPageLimit {
		return ErrInvalidInput
	}
	if p.Page < 1 {
		return ErrInvalidInput
	}
	return nil
}

type SkillPage struct {
	Items []repository.SkillListing
	Total int
	Page  int
	Limit int
	Pages int
}

type SkillCatalogUsecase interface {
	Browse(ctx context.Context, params BrowseSkillsParams) (SkillPage, error)
}

// SkillCatalog serves the public skill listing.
type SkillCatalog struct {
	repo   repository.SkillRepository
	logger *zap.Logger
}

func NewSkillCatalogUsecase(repo repository.SkillRepository, logger *zap.Logger) *SkillCatalog {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SkillCatalog{repo: repo, logger: logger}
}

func (u *SkillCatalog) Browse(ctx context.Context, params BrowseSkillsParams) (SkillPage, error) {
	if err := params.Validate(); err != nil {
		return SkillPage{}, err
	}

	items, total, err := u.repo.Search(ctx, repository.SkillQuery{
		Category: params.Category,
		Search:   params.Search,
		Limit:    params.Limit,
		Offset:   (params.Page - 1) * params.Limit,
	})
	if err != nil {
		u.logger.Error("browse skills", zap.String("category", params.Category), zap.Error(err))
		return SkillPage{}, ErrInternal
	}

	return SkillPage{
		Items: items,
		Total: total,
		Page:  params.Page,
		Limit: params.Limit,
		Pages: (total + params.Limit - 1) / params.Limit,
	}, nil
}
