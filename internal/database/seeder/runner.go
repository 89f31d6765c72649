package seeder

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"go.uber.org/zap"

	"skillswap/internal/database"
)

type Seeder interface {
	Name() string
	Run(ctx context.Context, db database.DB) error
}

// Runner executes seeders in order and stops at the first failure.
// When Only is set, seeders whose name is not listed are skipped.
type Runner struct {
	Seeders []Seeder
	Only    []string
	Logger  *zap.Logger
}

func (r Runner) Run(ctx context.Context, db database.DB) error {
	if db == nil {
		return errors.New("nil db")
	}
	logger := r.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	if unknown := r.unknownNames(); len(unknown) > 0 {
		return fmt.Errorf("unknown seeders: %s", strings.Join(unknown, ", "))
	}

	for _, s := range r.Seeders {
		if s == nil {
			continue
		}
		if len(r.Only) > 0 && !slices.Contains(r.Only, s.Name()) {
			continue
		}

		start := time.Now()
		if err := s.Run(ctx, db); err != nil {
			return fmt.Errorf("seed %s: %w", s.Name(), err)
		}
		logger.Info("seeded", zap.String("seeder", s.Name()), zap.Duration("took", time.Since(start)))
	}
	return nil
}

func (r Runner) unknownNames() []string {
	var unknown []string
	for _, name := range r.Only {
		found := slices.ContainsFunc(r.Seeders, func(s Seeder) bool {
			return s != nil && s.Name() == name
		})
		if !found {
			unknown = append(unknown, name)
		}
	}
	return unknown
}
