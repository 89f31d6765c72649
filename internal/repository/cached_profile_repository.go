package repository

import (
	"context"
	"time"

	"skillswap/internal/domain/skill"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const profilesWithSkillsKey = "profiles:with_skills"

type JSONCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// CachedProfileRepository caches the candidate list read by matching.
// Single-user lookups always go to the underlying repository.
type CachedProfileRepository struct {
	next   ProfileRepository
	cache  JSONCache
	ttl    time.Duration
	logger *zap.Logger
}

func NewCachedProfileRepository(next ProfileRepository, cache JSONCache, ttl time.Duration, logger *zap.Logger) *CachedProfileRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CachedProfileRepository{next: next, cache: cache, ttl: ttl, logger: logger}
}

func (r *CachedProfileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (Profile, error) {
	return r.next.FindByUserID(ctx, userID)
}

func (r *CachedProfileRepository) ListWithSkills(ctx context.Context) ([]Profile, error) {
	if r.cache != nil {
		var cached []Profile
		hit, err := r.cache.GetJSON(ctx, profilesWithSkillsKey, &cached)
		if err != nil {
			r.logger.Debug("profile cache read failed", zap.Error(err))
		}
		if hit {
			return cached, nil
		}
	}

	out, err := r.next.ListWithSkills(ctx)
	if err != nil {
		return nil, err
	}

	if r.cache != nil {
		if err := r.cache.SetJSON(ctx, profilesWithSkillsKey, out, r.ttl); err != nil {
			r.logger.Debug("profile cache write failed", zap.Error(err))
		}
	}
	return out, nil
}

func (r *CachedProfileRepository) Invalidate(ctx context.Context) {
	if r.cache == nil {
		return
	}
	if err := r.cache.Delete(ctx, profilesWithSkillsKey); err != nil {
		r.logger.Warn("profile cache invalidation failed", zap.Error(err))
	}
}

type Invalidator interface {
	Invalidate(ctx context.Context)
}

// InvalidatingSkillRepository drops cached profiles after every successful write.
type InvalidatingSkillRepository struct {
	SkillRepository
	inv Invalidator
}

func NewInvalidatingSkillRepository(next SkillRepository, inv Invalidator) *InvalidatingSkillRepository {
	return &InvalidatingSkillRepository{SkillRepository: next, inv: inv}
}

func (r *InvalidatingSkillRepository) Create(ctx context.Context, s skill.Skill) (skill.Skill, error) {
	out, err := r.SkillRepository.Create(ctx, s)
	if err == nil {
		r.inv.Invalidate(ctx)
	}
	return out, err
}

func (r *InvalidatingSkillRepository) Delete(ctx context.Context, id uuid.UUID, userID uuid.UUID) error {
	err := r.SkillRepository.Delete(ctx, id, userID)
	if err == nil {
		r.inv.Invalidate(ctx)
	}
	return err
}

type InvalidatingNeedRepository struct {
	NeedRepository
	inv Invalidator
}

func NewInvalidatingNeedRepository(next NeedRepository, inv Invalidator) *InvalidatingNeedRepository {
	return &InvalidatingNeedRepository{NeedRepository: next, inv: inv}
}

func (r *InvalidatingNeedRepository) Replace(ctx context.Context, userID uuid.UUID, needs []string) ([]string, error) {
	out, err := r.NeedRepository.Replace(ctx, userID, needs)
	if err == nil {
		r.inv.Invalidate(ctx)
	}
	return out, err
}
