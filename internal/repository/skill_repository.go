package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"skillswap/internal/database"
	"skillswap/internal/domain/skill"

	"github.com/google/uuid"
)

var (
	ErrSkillNotFound  = errors.New("skill not found")
	ErrSkillForbidden = errors.New("forbidden")
	ErrDuplicateSkill = errors.New("duplicate skill")
)

// SkillQuery filters the public skill listing. Category matches exactly; Search
// is a case-insensitive substring of the title or description.
type SkillQuery struct {
	Category string
	Search   string
	Limit    int
	Offset   int
}

// SkillListing is a skill with the public fields of its owner.
type SkillListing struct {
	Skill      skill.Skill
	OwnerName  string
	OwnerImage string
}

type SkillRepository interface {
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]skill.Skill, error)
	Search(ctx context.Context, q SkillQuery) ([]SkillListing, int, error)
	HasTitle(ctx context.Context, userID uuid.UUID, title string) (bool, error)
	Create(ctx context.Context, s skill.Skill) (skill.Skill, error)
	Delete(ctx context.Context, id uuid.UUID, userID uuid.UUID) error
}

type PostgresSkillRepository struct {
	db database.DB
}

func NewPostgresSkillRepository(db database.DB) *PostgresSkillRepository {
	return &PostgresSkillRepository{db: db}
}

func (r *PostgresSkillRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]skill.Skill, error) {
	return listSkills(ctx, r.db, userID)
}

func listSkills(ctx context.Context, db database.DB, userID uuid.UUID) ([]skill.Skill, error) {
	rows, err := db.Query(ctx,
		`SELECT id, user_id, title, description, category, contact_preference, created_at
		 FROM skills
		 WHERE user_id = $1
		 ORDER BY created_at ASC, id ASC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]skill.Skill, 0)
	for rows.Next() {
		var s skill.Skill
		var pref string
		if err := rows.Scan(&s.ID, &s.UserID, &s.Title, &s.Description, &s.Category, &pref, &s.CreatedAt); err != nil {
			return nil, err
		}
		s.ContactPreference = skill.ContactPreference(pref)
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresSkillRepository) Create(ctx context.Context, s skill.Skill) (skill.Skill, error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	row := r.db.QueryRow(ctx,
		`INSERT INTO skills (id, user_id, title, description, category, contact_preference)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING created_at`,
		s.ID, s.UserID, s.Title, s.Description, s.Category, string(s.ContactPreference),
	)
	if err := row.Scan(&s.CreatedAt); err != nil {
		if errors.Is(err, database.ErrUniqueViolation) {
			return skill.Skill{}, ErrDuplicateSkill
		}
		return skill.Skill{}, err
	}
	return s, nil
}

// HasTitle reports whether userID already owns a skill with this title, ignoring case.
func (r *PostgresSkillRepository) HasTitle(ctx context.Context, userID uuid.UUID, title string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM skills WHERE user_id = $1 AND lower(title) = lower($2))`,
		userID, strings.TrimSpace(title),
	).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// Search returns one page of skills, newest first, and the total number of
// matching skills.
func (r *PostgresSkillRepository) Search(ctx context.Context, q SkillQuery) ([]SkillListing, int, error) {
	where, args := q.where()

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM skills s`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}
	out := make([]SkillListing, 0)
	if total == 0 || q.Offset >= total {
		return out, total, nil
	}

	args = append(args, q.Limit, q.Offset)
	rows, err := r.db.Query(ctx, fmt.Sprintf(
		`SELECT s.id, s.user_id, s.title, s.description, s.category, s.contact_preference, s.created_at, u.name, u.image
		 FROM skills s
		 JOIN users u ON u.id = s.user_id%s
		 ORDER BY s.created_at DESC, s.id DESC
		 LIMIT $%d OFFSET $%d`, where, len(args)-1, len(args)),
		args...,
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	for rows.Next() {
		var l SkillListing
		var pref string
		if err := rows.Scan(&l.Skill.ID, &l.Skill.UserID, &l.Skill.Title, &l.Skill.Description, &l.Skill.Category,
			&pref, &l.Skill.CreatedAt, &l.OwnerName, &l.OwnerImage); err != nil {
			return nil, 0, err
		}
		l.Skill.ContactPreference = skill.ContactPreference(pref)
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (q SkillQuery) where() (string, []any) {
	var conds []string
	var args []any

	if c := strings.TrimSpace(q.Category); c != "" {
		args = append(args, c)
		conds = append(conds, fmt.Sprintf("s.category = $%d", len(args)))
	}
	if term := strings.TrimSpace(q.Search); term != "" {
		args = append(args, "%"+escapeLike(term)+"%")
		conds = append(conds, fmt.Sprintf("(s.title ILIKE $%[1]d OR s.description ILIKE $%[1]d)", len(args)))
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes term match literally inside a LIKE pattern.
func escapeLike(term string) string {
	return likeEscaper.Replace(term)
}

// Delete removes the skill only when userID owns it.
func (r *PostgresSkillRepository) Delete(ctx context.Context, id uuid.UUID, userID uuid.UUID) error {
	affected, err := r.db.Exec(ctx, `DELETE FROM skills WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if affected > 0 {
		return nil
	}

	var exists bool
	if err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM skills WHERE id = $1)`, id).Scan(&exists); err != nil {
		return err
	}
	if exists {
		return ErrSkillForbidden
	}
	return ErrSkillNotFound
}
