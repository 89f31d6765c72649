package repository

import (
	"context"
	"errors"

	"skillswap/internal/database"
	"skillswap/internal/domain/user"

	"github.com/google/uuid"
)

type NeedRepository interface {
	Get(ctx context.Context, userID uuid.UUID) ([]string, error)
	Replace(ctx context.Context, userID uuid.UUID, needs []string) ([]string, error)
}

type PostgresNeedRepository struct {
	db database.DB
}

func NewPostgresNeedRepository(db database.DB) *PostgresNeedRepository {
	return &PostgresNeedRepository{db: db}
}

func (r *PostgresNeedRepository) Get(ctx context.Context, userID uuid.UUID) ([]string, error) {
	var needs []string
	if err := r.db.QueryRow(ctx, `SELECT needs FROM users WHERE id = $1`, userID).Scan(&needs); err != nil {
		if errors.Is(err, database.ErrNoRows) {
			return nil, user.ErrNotFound
		}
		return nil, err
	}
	if needs == nil {
		needs = []string{}
	}
	return needs, nil
}

func (r *PostgresNeedRepository) Replace(ctx context.Context, userID uuid.UUID, needs []string) ([]string, error) {
	if needs == nil {
		needs = []string{}
	}
	var out []string
	err := r.db.QueryRow(ctx,
		`UPDATE users SET needs = $2 WHERE id = $1 RETURNING needs`,
		userID, needs,
	).Scan(&out)
	if err != nil {
		if errors.Is(err, database.ErrNoRows) {
			return nil, user.ErrNotFound
		}
		return nil, err
	}
	if out == nil {
		out = []string{}
	}
	return out, nil
}
