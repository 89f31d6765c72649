package repository

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"skillswap/internal/domain/skill"
	"skillswap/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryCache struct {
	data map[string][]byte
	ttl  time.Duration
}

func newMemoryCache() *memoryCache {
	return &memoryCache{data: map[string][]byte{}}
}

func (m *memoryCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	b, ok := m.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (m *memoryCache) SetJSON(_ context.Context, key string, value any, ttl time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.data[key] = b
	m.ttl = ttl
	return nil
}

func (m *memoryCache) Delete(_ context.Context, key string) error {
	delete(m.data, key)
	return nil
}

type countingProfiles struct {
	profiles []Profile
	lists    int
}

func (c *countingProfiles) FindByUserID(context.Context, uuid.UUID) (Profile, error) {
	return Profile{}, user.ErrNotFound
}

func (c *countingProfiles) ListWithSkills(context.Context) ([]Profile, error) {
	c.lists++
	return c.profiles, nil
}

type stubSkills struct {
	err error
}

func (s stubSkills) ListByUserID(context.Context, uuid.UUID) ([]skill.Skill, error) { return nil, nil }
func (s stubSkills) Search(context.Context, SkillQuery) ([]SkillListing, int, error) {
	return nil, 0, nil
}
func (s stubSkills) HasTitle(context.Context, uuid.UUID, string) (bool, error) { return false, nil }
func (s stubSkills) Create(_ context.Context, sk skill.Skill) (skill.Skill, error) {
	return sk, s.err
}
func (s stubSkills) Delete(context.Context, uuid.UUID, uuid.UUID) error { return s.err }

type stubNeeds struct{}

func (stubNeeds) Get(context.Context, uuid.UUID) ([]string, error) { return nil, nil }
func (stubNeeds) Replace(_ context.Context, _ uuid.UUID, needs []string) ([]string, error) {
	return needs, nil
}

func TestCachedProfileRepositoryReadThrough(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	inner := &countingProfiles{profiles: []Profile{{
		User:   user.User{ID: id, Name: "ayu", Needs: []string{"Figma"}},
		Skills: []skill.Skill{{ID: uuid.New(), UserID: id, Title: "Go"}},
	}}}
	cache := newMemoryCache()
	repo := NewCachedProfileRepository(inner, cache, time.Minute, nil)

	first, err := repo.ListWithSkills(ctx)
	require.NoError(t, err)
	second, err := repo.ListWithSkills(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, inner.lists)
	assert.Equal(t, time.Minute, cache.ttl)
	assert.Equal(t, first[0].User.ID, second[0].User.ID)
	assert.Equal(t, []string{"Go"}, second[0].SkillTitles())
	assert.Equal(t, []string{"Figma"}, second[0].User.Needs)

	repo.Invalidate(ctx)
	_, err = repo.ListWithSkills(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, inner.lists)
}

func TestCachedProfileRepositoryWithoutCache(t *testing.T) {
	inner := &countingProfiles{}
	repo := NewCachedProfileRepository(inner, nil, 0, nil)

	_, _ = repo.ListWithSkills(context.Background())
	_, _ = repo.ListWithSkills(context.Background())
	repo.Invalidate(context.Background())
	assert.Equal(t, 2, inner.lists)

	_, err := repo.FindByUserID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, user.ErrNotFound)
}

type countingInvalidator struct{ n int }

func (c *countingInvalidator) Invalidate(context.Context) { c.n++ }

func TestInvalidatingRepositories(t *testing.T) {
	ctx := context.Background()
	inv := &countingInvalidator{}

	skills := NewInvalidatingSkillRepository(stubSkills{}, inv)
	_, err := skills.Create(ctx, skill.Skill{Title: "Go"})
	require.NoError(t, err)
	require.NoError(t, skills.Delete(ctx, uuid.New(), uuid.New()))
	assert.Equal(t, 2, inv.n)

	failing := NewInvalidatingSkillRepository(stubSkills{err: errors.New("db down")}, inv)
	_, err = failing.Create(ctx, skill.Skill{})
	assert.Error(t, err)
	assert.Equal(t, 2, inv.n)

	needs := NewInvalidatingNeedRepository(stubNeeds{}, inv)
	_, err = needs.Replace(ctx, uuid.New(), []string{"SEO"})
	require.NoError(t, err)
	assert.Equal(t, 3, inv.n)
}
