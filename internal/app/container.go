package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"skillswap/internal/config"
	"skillswap/internal/database"
	dbpostgres "skillswap/internal/database/postgres"
	"skillswap/internal/domain/assessment"
	"skillswap/internal/domain/matching"
	"skillswap/internal/infrastructure/cache"
	"skillswap/internal/infrastructure/embedding"
	"skillswap/internal/repository"

	"go.uber.org/zap"
)

type Container struct {
	Config config.Config
	Logger *zap.Logger

	DB    database.DB
	Cache *cache.Redis

	Matcher   *matching.Matcher
	Generator *assessment.Generator

	Profiles repository.ProfileRepository
	Skills   repository.SkillRepository
	Needs    repository.NeedRepository
}

// NewContainer connects to Postgres and Redis and wires the repositories,
// the matcher and the assessment generator.
func NewContainer(ctx context.Context, cfg config.Config, logger *zap.Logger) (*Container, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	matcher, err := NewMatcher(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	gen, err := NewGenerator(cfg)
	if err != nil {
		return nil, err
	}

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(connectCtx, cfg.Database)
	if err != nil {
		return nil, err
	}

	rdb := cache.NewRedis(cfg.Redis, logger.Named("cache"))

	cached := repository.NewCachedProfileRepository(
		repository.NewPostgresProfileRepository(db),
		rdb,
		cfg.Redis.TTL,
		logger.Named("profiles"),
	)

	return &Container{
		Config:    cfg,
		Logger:    logger,
		DB:        db,
		Cache:     rdb,
		Matcher:   matcher,
		Generator: gen,
		Profiles:  cached,
		Skills:    repository.NewInvalidatingSkillRepository(repository.NewPostgresSkillRepository(db), cached),
		Needs:     repository.NewInvalidatingNeedRepository(repository.NewPostgresNeedRepository(db), cached),
	}, nil
}

// NewMatcher builds the matcher with the configured embedding provider.
func NewMatcher(ctx context.Context, cfg config.Config, logger *zap.Logger) (*matching.Matcher, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	embedder, err := embedding.New(ctx, cfg.Embedding, logger.Named("embedding"))
	if err != nil {
		return nil, fmt.Errorf("embedding provider: %w", err)
	}
	if embedder == nil {
		logger.Info("no embedding provider configured, matching uses keyword overlap")
	}

	return matching.NewMatcher(embedder,
		matching.WithEmbedTimeout(cfg.Embedding.Timeout),
		matching.WithConcurrency(cfg.Matching.Concurrency),
		matching.WithLogger(logger.Named("matching")),
	), nil
}

func NewGenerator(cfg config.Config) (*assessment.Generator, error) {
	path := strings.TrimSpace(cfg.Assessment.VocabularyFile)
	if path == "" {
		return assessment.NewGenerator(assessment.DefaultVocabulary()), nil
	}
	vocab, err := assessment.LoadVocabulary(path)
	if err != nil {
		return nil, fmt.Errorf("load assessment vocabulary: %w", err)
	}
	return assessment.NewGenerator(vocab), nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	var errs []error
	if c.Cache != nil {
		errs = append(errs, c.Cache.Close())
	}
	if c.DB != nil {
		errs = append(errs, c.DB.Close())
	}
	return errors.Join(errs...)
}
