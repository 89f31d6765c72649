package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"skillswap/internal/delivery/http/middleware"
	"skillswap/internal/domain/assessment"
	"skillswap/internal/domain/matching"
	"skillswap/internal/domain/skill"
	"skillswap/internal/domain/user"
	"skillswap/internal/repository"
	"skillswap/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestApp(userID uuid.UUID, register func(r fiber.Router)) *fiber.App {
	app := fiber.New()
	app.Use(middleware.NewErrorMiddleware(nil).Middleware())
	app.Use(func(c fiber.Ctx) error {
		if userID != uuid.Nil {
			middleware.SetCaller(c, middleware.Caller{UserID: userID})
		}
		return c.Next()
	})
	register(app)
	return app
}

func do(t *testing.T, app *fiber.App, method, target, body string) (int, envelope) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

func TestSkillAssessmentHandler(t *testing.T) {
	uc := usecase.NewSkillAssessmentUsecase(assessment.NewGenerator(assessment.DefaultVocabulary()))
	app := newTestApp(uuid.New(), NewSkillAssessmentHandler(uc).RegisterRoutes)

	status, env := do(t, app, http.MethodPost, "/skill-assessment",
		`{"skill":"Python","description":"I love coding and solving problems","level":2}`)
	require.Equal(t, http.StatusOK, status)

	var res struct {
		CurrentLevel    string   `json:"current_level"`
		Strengths       []string `json:"strengths"`
		Recommendations []string `json:"recommendations"`
		Resources       []struct {
			Type string `json:"type"`
			Link string `json:"link"`
		} `json:"resources"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &res))
	assert.Equal(t, "Beginner", res.CurrentLevel)
	assert.GreaterOrEqual(t, len(res.Strengths), 3)
	assert.GreaterOrEqual(t, len(res.Recommendations), 4)
	require.Len(t, res.Resources, 3)
	assert.Equal(t, "Course", res.Resources[0].Type)
}

func TestSkillAssessmentHandlerValidation(t *testing.T) {
	uc := usecase.NewSkillAssessmentUsecase(assessment.NewGenerator(assessment.DefaultVocabulary()))
	app := newTestApp(uuid.New(), NewSkillAssessmentHandler(uc).RegisterRoutes)

	cases := []struct {
		name   string
		body   string
		fields []string
	}{
		{"all missing", `{}`, []string{"skill", "description", "level"}},
		{"level too high", `{"skill":"Go","description":"x","level":11}`, []string{"level"}},
		{"level fractional", `{"skill":"Go","description":"x","level":2.5}`, []string{"level"}},
		{"blank skill", `{"skill":"   ","description":"x","level":5}`, []string{"skill"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, env := do(t, app, http.MethodPost, "/skill-assessment", tc.body)
			require.Equal(t, http.StatusBadRequest, status)
			assert.Equal(t, "Validation failed", env.Message)

			var data struct {
				Fields map[string]string `json:"fields"`
			}
			require.NoError(t, json.Unmarshal(env.Data, &data))
			assert.Len(t, data.Fields, len(tc.fields))
			for _, f := range tc.fields {
				assert.Contains(t, data.Fields, f)
			}
		})
	}

	status, _ := do(t, app, http.MethodPost, "/skill-assessment", `{"skill":`)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestSkillAssessmentHandlerUnauthorized(t *testing.T) {
	uc := usecase.NewSkillAssessmentUsecase(assessment.NewGenerator(assessment.DefaultVocabulary()))
	app := newTestApp(uuid.Nil, NewSkillAssessmentHandler(uc).RegisterRoutes)

	status, _ := do(t, app, http.MethodPost, "/skill-assessment", `{}`)
	assert.Equal(t, http.StatusUnauthorized, status)
}

type fakeMatchUC struct {
	params usecase.SkillMatchParams
	items  []usecase.SkillMatchItem
	err    error
}

func (f *fakeMatchUC) FindMatches(_ context.Context, _ uuid.UUID, p usecase.SkillMatchParams) ([]usecase.SkillMatchItem, error) {
	f.params = p
	return f.items, f.err
}

func TestSkillMatchHandler(t *testing.T) {
	other := uuid.New()
	uc := &fakeMatchUC{items: []usecase.SkillMatchItem{{
		User:       user.User{ID: other, Name: "Bima"},
		Skills:     []skill.Skill{{ID: uuid.New(), UserID: other, Title: "Figma", ContactPreference: skill.ContactEmail}},
		MatchScore: 88,
		Strategy:   matching.StrategyEmbedding,
	}}}
	app := newTestApp(uuid.New(), NewSkillMatchHandler(uc).RegisterRoutes)

	status, env := do(t, app, http.MethodGet, "/skill-matches", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, usecase.SkillMatchParams{Limit: 20, MinScore: 0}, uc.params)

	var items []struct {
		User struct {
			ID   uuid.UUID `json:"id"`
			Name string    `json:"name"`
		} `json:"user"`
		Skills []struct {
			Title string `json:"title"`
		} `json:"skills"`
		Needs      []string `json:"needs"`
		MatchScore int      `json:"match_score"`
		Strategy   string   `json:"strategy"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &items))
	require.Len(t, items, 1)
	assert.Equal(t, other, items[0].User.ID)
	assert.Equal(t, 88, items[0].MatchScore)
	assert.Equal(t, "embedding", items[0].Strategy)
	assert.Equal(t, "Figma", items[0].Skills[0].Title)
	assert.NotNil(t, items[0].Needs)

	status, _ = do(t, app, http.MethodGet, "/skill-matches?limit=5&minScore=40", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, usecase.SkillMatchParams{Limit: 5, MinScore: 40}, uc.params)
}

func TestSkillMatchHandlerQueryValidation(t *testing.T) {
	app := newTestApp(uuid.New(), NewSkillMatchHandler(&fakeMatchUC{}).RegisterRoutes)

	for _, q := range []string{"limit=0", "limit=101", "limit=abc", "limit=2.5", "minScore=-1", "minScore=101", "minScore=x"} {
		status, env := do(t, app, http.MethodGet, "/skill-matches?"+q, "")
		assert.Equal(t, http.StatusBadRequest, status, q)
		assert.Equal(t, "Invalid query parameters", env.Message, q)
	}
}

func TestSkillMatchHandlerErrors(t *testing.T) {
	cases := []struct {
		err    error
		status int
		msg    string
	}{
		{usecase.ErrUserSkillProfileEmpty, http.StatusBadRequest, "Profile incomplete"},
		{usecase.ErrUserNotFound, http.StatusNotFound, "User not found"},
		{usecase.ErrInternal, http.StatusInternalServerError, "internal server error"},
		{context.Canceled, http.StatusInternalServerError, "internal server error"},
	}
	for _, tc := range cases {
		app := newTestApp(uuid.New(), NewSkillMatchHandler(&fakeMatchUC{err: tc.err}).RegisterRoutes)
		status, env := do(t, app, http.MethodGet, "/skill-matches", "")
		assert.Equal(t, tc.status, status)
		assert.Equal(t, tc.msg, env.Message)
	}
}

type fakeSkillUC struct {
	items     []skill.Skill
	in        usecase.AddSkillInput
	addErr    error
	deleteErr error
}

func (f *fakeSkillUC) ListSkills(context.Context, uuid.UUID) ([]skill.Skill, error) {
	return f.items, nil
}

func (f *fakeSkillUC) AddSkill(_ context.Context, userID uuid.UUID, in usecase.AddSkillInput) (skill.Skill, error) {
	f.in = in
	if f.addErr != nil {
		return skill.Skill{}, f.addErr
	}
	return skill.Skill{ID: uuid.New(), UserID: userID, Title: in.Title, ContactPreference: skill.ContactEmail}, nil
}

func (f *fakeSkillUC) DeleteSkill(context.Context, uuid.UUID, uuid.UUID) error {
	return f.deleteErr
}

func TestUserSkillHandler(t *testing.T) {
	uc := &fakeSkillUC{items: []skill.Skill{{ID: uuid.New(), Title: "Go backend"}}}
	app := newTestApp(uuid.New(), NewUserSkillHandler(uc).RegisterRoutes)

	status, env := do(t, app, http.MethodGet, "/me/skills", "")
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(env.Data), `"title":"Go backend"`)

	status, _ = do(t, app, http.MethodPost, "/me/skills",
		`{"title":"Figma basics","description":"Teaching auto layout and components.","category":"Design","contact_preference":"both"}`)
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "both", uc.in.ContactPreference)

	status, _ = do(t, app, http.MethodDelete, "/me/skills/not-a-uuid", "")
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = do(t, app, http.MethodDelete, "/me/skills/"+uuid.NewString(), "")
	assert.Equal(t, http.StatusOK, status)
}

func TestUserSkillHandlerErrors(t *testing.T) {
	uc := &fakeSkillUC{
		addErr:    skill.FieldErrors{"title": "Title must be at least 5 characters"},
		deleteErr: usecase.ErrForbidden,
	}
	app := newTestApp(uuid.New(), NewUserSkillHandler(uc).RegisterRoutes)

	status, env := do(t, app, http.MethodPost, "/me/skills", `{"title":"Go"}`)
	require.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, string(env.Data), `"title":"Title must be at least 5 characters"`)

	status, _ = do(t, app, http.MethodDelete, "/me/skills/"+uuid.NewString(), "")
	assert.Equal(t, http.StatusForbidden, status)

	uc.deleteErr = usecase.ErrSkillNotFound
	status, _ = do(t, app, http.MethodDelete, "/me/skills/"+uuid.NewString(), "")
	assert.Equal(t, http.StatusNotFound, status)
}

type fakeNeedsUC struct {
	needs []string
}

func (f *fakeNeedsUC) GetNeeds(context.Context, uuid.UUID) ([]string, error) {
	return f.needs, nil
}

func (f *fakeNeedsUC) ReplaceNeeds(_ context.Context, _ uuid.UUID, needs []string) ([]string, error) {
	if len(needs) > 2 {
		return nil, usecase.ErrInvalidInput
	}
	f.needs = needs
	return needs, nil
}

func TestUserNeedsHandler(t *testing.T) {
	uc := &fakeNeedsUC{needs: []string{"SEO"}}
	app := newTestApp(uuid.New(), NewUserNeedsHandler(uc).RegisterRoutes)

	status, env := do(t, app, http.MethodGet, "/me/needs", "")
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"needs":["SEO"]}`, string(env.Data))

	status, env = do(t, app, http.MethodPut, "/me/needs", `{"needs":["Figma","Go"]}`)
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"needs":["Figma","Go"]}`, string(env.Data))

	status, _ = do(t, app, http.MethodPut, "/me/needs", `{"needs":["a","b","c"]}`)
	assert.Equal(t, http.StatusBadRequest, status)
}

type fakePinger struct{ err error }

func (f fakePinger) Ping(context.Context) error { return f.err }

type fakeCache struct {
	fakePinger
	enabled bool
}

func (f fakeCache) Enabled() bool { return f.enabled }

func TestHealthHandler(t *testing.T) {
	app := newTestApp(uuid.Nil, NewHealthHandler(fakePinger{}, nil).RegisterRoutes)
	status, env := do(t, app, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"status":"ok","database":"up"}`, string(env.Data))

	app = newTestApp(uuid.Nil, NewHealthHandler(fakePinger{err: context.DeadlineExceeded}, nil).RegisterRoutes)
	status, _ = do(t, app, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusServiceUnavailable, status)
}

func TestHealthHandlerReportsCache(t *testing.T) {
	cases := []struct {
		name   string
		cache  fakeCache
		status int
		data   string
	}{
		{"up", fakeCache{enabled: true}, http.StatusOK, `{"status":"ok","database":"up","cache":"up"}`},
		{"bypassed", fakeCache{}, http.StatusOK, `{"status":"ok","database":"up","cache":"bypassed"}`},
		{"down", fakeCache{fakePinger{err: context.DeadlineExceeded}, true}, http.StatusOK, `{"status":"degraded","database":"up","cache":"down"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := newTestApp(uuid.Nil, NewHealthHandler(fakePinger{}, tc.cache).RegisterRoutes)
			status, env := do(t, app, http.MethodGet, "/health", "")
			assert.Equal(t, tc.status, status)
			assert.JSONEq(t, tc.data, string(env.Data))
		})
	}

	app := newTestApp(uuid.Nil, NewHealthHandler(fakePinger{err: context.Canceled}, fakeCache{enabled: true}).RegisterRoutes)
	status, env := do(t, app, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusServiceUnavailable, status)
	assert.JSONEq(t, `{"status":"degraded","database":"down","cache":"up"}`, string(env.Data))
}

type fakeCatalogUC struct {
	params usecase.BrowseSkillsParams
	page   usecase.SkillPage
	err    error
}

func (f *fakeCatalogUC) Browse(_ context.Context, p usecase.BrowseSkillsParams) (usecase.SkillPage, error) {
	f.params = p
	return f.page, f.err
}

func TestSkillCatalogHandler(t *testing.T) {
	owner := uuid.New()
	uc := &fakeCatalogUC{page: usecase.SkillPage{
		Items: []repository.SkillListing{{
			Skill:     skill.Skill{ID: uuid.New(), UserID: owner, Title: "Go backend", Category: "Programming"},
			OwnerName: "Bima",
		}},
		Total: 3, Page: 2, Limit: 1, Pages: 3,
	}}
	app := newTestApp(uuid.Nil, NewSkillCatalogHandler(uc).RegisterRoutes)

	status, env := do(t, app, http.MethodGet, "/skills?category=Programming&search=%20go%20&limit=1&page=2", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, usecase.BrowseSkillsParams{Category: "Programming", Search: "go", Limit: 1, Page: 2}, uc.params)

	var out struct {
		Skills []struct {
			Title string `json:"title"`
			User  struct {
				ID   uuid.UUID `json:"id"`
				Name string    `json:"name"`
			} `json:"user"`
		} `json:"skills"`
		Pagination map[string]int `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &out))
	require.Len(t, out.Skills, 1)
	assert.Equal(t, "Go backend", out.Skills[0].Title)
	assert.Equal(t, owner, out.Skills[0].User.ID)
	assert.Equal(t, "Bima", out.Skills[0].User.Name)
	assert.Equal(t, map[string]int{"total": 3, "page": 2, "limit": 1, "pages": 3}, out.Pagination)

	status, _ = do(t, app, http.MethodGet, "/skills", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, usecase.DefaultSkillPageLimit, uc.params.Limit)
	assert.Equal(t, 1, uc.params.Page)
}

func TestSkillCatalogHandlerQueryValidation(t *testing.T) {
	app := newTestApp(uuid.Nil, NewSkillCatalogHandler(&fakeCatalogUC{}).RegisterRoutes)

	for _, target := range []string{"/skills?limit=0", "/skills?limit=101", "/skills?page=0", "/skills?page=x"} {
		status, env := do(t, app, http.MethodGet, target, "")
		assert.Equal(t, http.StatusBadRequest, status, target)
		assert.Equal(t, "Invalid query parameters", env.Message, target)
	}
}

func TestUserSkillHandlerDuplicateTitle(t *testing.T) {
	uc := &fakeSkillUC{addErr: usecase.ErrDuplicateSkill}
	app := newTestApp(uuid.New(), NewUserSkillHandler(uc).RegisterRoutes)

	status, env := do(t, app, http.MethodPost, "/me/skills",
		`{"title":"Figma basics","description":"Teaching auto layout and components.","category":"Design","contact_preference":"email"}`)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "Duplicate skill", env.Message)
	assert.JSONEq(t, `{"detail":"You already have a skill with this title"}`, string(env.Data))
}
