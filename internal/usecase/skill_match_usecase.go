package usecase

import (
	"context"
	"errors"

	"skillswap/internal/domain/matching"
	"skillswap/internal/domain/skill"
	"skillswap/internal/domain/user"
	"skillswap/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	DefaultMatchLimit = 20
	MaxMatchLimit     = 100
	MaxMatchMinScore  = 100
)

type SkillMatchParams struct {
	Limit    int
	MinScore int
}

func (p SkillMatchParams) Validate() error {
	if p.Limit < 1 || p.Limit > MaxMatchLimit {
		return ErrInvalidInput
	}
	if p.MinScore < 0 || p.MinScore > MaxMatchMinScore {
		return ErrInvalidInput
	}
	return nil
}

type SkillMatchItem struct {
	User       user.User
	Skills     []skill.Skill
	Needs      []string
	MatchScore int
	Strategy   matching.Strategy
}

type SkillMatchUsecase interface {
	FindMatches(ctx context.Context, userID uuid.UUID, params SkillMatchParams) ([]SkillMatchItem, error)
}

type SkillMatch struct {
	profiles repository.ProfileRepository
	matcher  *matching.Matcher
	logger   *zap.Logger
}

func NewSkillMatchUsecase(profiles repository.ProfileRepository, matcher *matching.Matcher, logger *zap.Logger) *SkillMatch {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SkillMatch{profiles: profiles, matcher: matcher, logger: logger}
}

// FindMatches ranks every other user owning at least one skill against the
// caller's skills and needs.
func (u *SkillMatch) FindMatches(ctx context.Context, userID uuid.UUID, params SkillMatchParams) ([]SkillMatchItem, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	me, err := u.profiles.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		u.logger.Error("load caller profile", zap.String("user_id", userID.String()), zap.Error(err))
		return nil, ErrInternal
	}

	self := matching.Profile{Skills: me.SkillTitles(), Needs: me.User.Needs}
	if self.Empty() {
		return nil, ErrUserSkillProfileEmpty
	}

	others, err := u.profiles.ListWithSkills(ctx)
	if err != nil {
		u.logger.Error("list candidate profiles", zap.Error(err))
		return nil, ErrInternal
	}

	byID := make(map[string]repository.Profile, len(others))
	candidates := make([]matching.Candidate, 0, len(others))
	for _, p := range others {
		if p.User.ID == userID || len(p.Skills) == 0 {
			continue
		}
		id := p.User.ID.String()
		byID[id] = p
		candidates = append(candidates, matching.Candidate{
			ID:      id,
			Profile: matching.Profile{Skills: p.SkillTitles(), Needs: p.User.Needs},
		})
	}

	ranked, err := u.matcher.Rank(ctx, self, candidates, matching.RankParams{
		MinScore: params.MinScore,
		Limit:    params.Limit,
	})
	if err != nil {
		return nil, err
	}

	out := make([]SkillMatchItem, 0, len(ranked))
	for _, r := range ranked {
		p := byID[r.SubjectUserID]
		out = append(out, SkillMatchItem{
			User:       p.User,
			Skills:     p.Skills,
			Needs:      p.User.Needs,
			MatchScore: r.Score,
			Strategy:   r.Strategy,
		})
	}
	return out, nil
}
