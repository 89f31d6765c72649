package repository

import (
	"context"
	"errors"

	"skillswap/internal/database"
	"skillswap/internal/domain/skill"
	"skillswap/internal/domain/user"

	"github.com/google/uuid"
)

// Profile is a user together with the skills they offer.
type Profile struct {
	User   user.User     `json:"user"`
	Skills []skill.Skill `json:"skills"`
}

func (p Profile) SkillTitles() []string {
	return skill.Titles(p.Skills)
}

type ProfileRepository interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) (Profile, error)
	ListWithSkills(ctx context.Context) ([]Profile, error)
}

type PostgresProfileRepository struct {
	db database.DB
}

func NewPostgresProfileRepository(db database.DB) *PostgresProfileRepository {
	return &PostgresProfileRepository{db: db}
}

const userColumns = `u.id, u.name, u.email, u.image, u.bio, u.location, u.github, u.phone, u.needs, u.created_at`

func scanUser(row database.Row, u *user.User, extra ...any) error {
	dest := []any{&u.ID, &u.Name, &u.Email, &u.Image, &u.Bio, &u.Location, &u.Github, &u.Phone, &u.Needs, &u.CreatedAt}
	return row.Scan(append(dest, extra...)...)
}

func (r *PostgresProfileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (Profile, error) {
	var p Profile
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users u WHERE u.id = $1`, userID)
	if err := scanUser(row, &p.User); err != nil {
		if errors.Is(err, database.ErrNoRows) {
			return Profile{}, user.ErrNotFound
		}
		return Profile{}, err
	}
	if p.User.Needs == nil {
		p.User.Needs = []string{}
	}

	skills, err := listSkills(ctx, r.db, userID)
	if err != nil {
		return Profile{}, err
	}
	p.Skills = skills
	return p, nil
}

// ListWithSkills returns every user that owns at least one skill, oldest
// account first, each with their skills in creation order.
func (r *PostgresProfileRepository) ListWithSkills(ctx context.Context) ([]Profile, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+userColumns+`,
		        s.id, s.title, s.description, s.category, s.contact_preference, s.created_at
		 FROM users u
		 JOIN skills s ON s.user_id = u.id
		 ORDER BY u.created_at ASC, u.id ASC, s.created_at ASC, s.id ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Profile, 0)
	for rows.Next() {
		var u user.User
		var s skill.Skill
		var pref string
		if err := scanUser(rows, &u, &s.ID, &s.Title, &s.Description, &s.Category, &pref, &s.CreatedAt); err != nil {
			return nil, err
		}
		s.UserID = u.ID
		s.ContactPreference = skill.ContactPreference(pref)

		if n := len(out); n > 0 && out[n-1].User.ID == u.ID {
			out[n-1].Skills = append(out[n-1].Skills, s)
			continue
		}
		if u.Needs == nil {
			u.Needs = []string{}
		}
		out = append(out, Profile{User: u, Skills: []skill.Skill{s}})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
