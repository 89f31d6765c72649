package app

import (
	"context"
	"fmt"
	"strings"

	"skillswap/internal/config"
	"skillswap/internal/delivery/http/handler"
	"skillswap/internal/delivery/http/middleware"
	"skillswap/internal/delivery/http/routes"
	v1 "skillswap/internal/delivery/http/routes/v1"
	"skillswap/internal/pkg/jwt"
	"skillswap/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
)

type App struct {
	Fiber *fiber.App
}

func New(c *Container) *App {
	f := fiber.New(fiber.Config{AppName: c.Config.App.AppName})

	registerGlobalMiddleware(f, c.Logger)
	registerRoutes(f, c)

	return &App{Fiber: f}
}

// Bootstrap validates the server settings, builds the container and the
// HTTP app. The returned cleanup closes every connection the container opened.
func Bootstrap(ctx context.Context, cfg config.Config, logger *zap.Logger) (*App, func() error, error) {
	if err := cfg.ValidateServer(); err != nil {
		return nil, nil, err
	}

	c, err := NewContainer(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	return New(c), c.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, logger *zap.Logger) {
	if app == nil {
		return
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	app.Use(middleware.NewAccessLogMiddleware(logger.Named("http")).Middleware())
	app.Use(middleware.NewErrorMiddleware(logger.Named("http")).Middleware())
}

func registerRoutes(app *fiber.App, c *Container) {
	if app == nil {
		return
	}

	auth := middleware.NewAuthMiddleware(jwt.NewHMACService(c.Config.JWT.AccessSecret))

	var db handler.Pinger
	if c.DB != nil {
		db = c.DB
	}
	var cache handler.CacheChecker
	if c.Cache != nil {
		cache = c.Cache
	}
	health := handler.NewHealthHandler(db, cache)

	routes.NewRegistry(health, v1.Handlers{
		Auth:            auth.Middleware(),
		SkillAssessment: handler.NewSkillAssessmentHandler(usecase.NewSkillAssessmentUsecase(c.Generator)),
		SkillMatch:      handler.NewSkillMatchHandler(usecase.NewSkillMatchUsecase(c.Profiles, c.Matcher, c.Logger)),
		SkillCatalog:    handler.NewSkillCatalogHandler(usecase.NewSkillCatalogUsecase(c.Skills, c.Logger)),
		UserSkill:       handler.NewUserSkillHandler(usecase.NewUserSkillUsecase(c.Skills, c.Logger)),
		UserNeeds:       handler.NewUserNeedsHandler(usecase.NewUserNeedsUsecase(c.Needs, c.Logger)),
	}).Register(app)
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
