package seeder

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"skillswap/internal/database"
	"skillswap/internal/domain/skill"
)

type demoSkill struct {
	Title       string
	Description string
	Category    string
}

type demoProfile struct {
	Name     string
	Email    string
	Location string
	Bio      string
	Needs    []string
	Skills   []demoSkill
}

// DemoProfiles is the data ProfilesSeeder inserts.
var DemoProfiles = []demoProfile{
	{
		Name:     "Ayu Lestari",
		Email:    "ayu@example.com",
		Location: "Bandung",
		Bio:      "Backend developer who wants to get better at visual design.",
		Needs:    []string{"UI Design", "Figma"},
		Skills: []demoSkill{
			{Title: "Go", Description: "Building HTTP services and CLIs in Go.", Category: "Programming"},
			{Title: "PostgreSQL", Description: "Schema design and query tuning.", Category: "Database"},
		},
	},
	{
		Name:     "Bima Pratama",
		Email:    "bima@example.com",
		Location: "Jakarta",
		Bio:      "Product designer learning to ship code.",
		Needs:    []string{"Go", "JavaScript"},
		Skills: []demoSkill{
			{Title: "UI Design", Description: "Design systems and interface prototypes.", Category: "Design"},
			{Title: "Figma", Description: "Component libraries and auto layout.", Category: "Design"},
		},
	},
	{
		Name:     "Citra Dewi",
		Email:    "citra@example.com",
		Location: "Yogyakarta",
		Bio:      "Marketer with a soft spot for data.",
		Needs:    []string{"PostgreSQL", "Data Analysis"},
		Skills: []demoSkill{
			{Title: "SEO", Description: "Content strategy and search analytics.", Category: "Marketing"},
			{Title: "Copywriting", Description: "Landing pages and email campaigns.", Category: "Marketing"},
		},
	},
	{
		Name:     "Dimas Saputra",
		Email:    "dimas@example.com",
		Location: "Surabaya",
		Bio:      "Frontend engineer.",
		Needs:    []string{"SEO"},
		Skills: []demoSkill{
			{Title: "JavaScript", Description: "React and TypeScript front ends.", Category: "Programming"},
		},
	},
}

type ProfilesSeeder struct{}

func (ProfilesSeeder) Name() string { return "profiles" }

func (ProfilesSeeder) Run(ctx context.Context, db database.DB) error {
	err := RequireColumns(ctx, db, map[string][]string{
		"users":  {"id", "name", "email", "location", "bio", "needs"},
		"skills": {"id", "user_id", "title", "description", "category", "contact_preference"},
	})
	if err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	for _, p := range DemoProfiles {
		var userID uuid.UUID
		err := tx.QueryRow(
			ctx,
			`INSERT INTO users (name, email, location, bio, needs)
			 VALUES ($1, $2, $3, $4, $5)
			 ON CONFLICT (email) DO UPDATE SET needs = EXCLUDED.needs
			 RETURNING id`,
			p.Name,
			p.Email,
			p.Location,
			p.Bio,
			p.Needs,
		).Scan(&userID)
		if err != nil {
			return fmt.Errorf("upsert user %s: %w", p.Email, err)
		}

		for _, s := range p.Skills {
			_, err := tx.Exec(
				ctx,
				`INSERT INTO skills (user_id, title, description, category, contact_preference)
				 SELECT $1, $2, $3, $4, $5
				 WHERE NOT EXISTS (SELECT 1 FROM skills WHERE user_id = $1 AND lower(title) = lower($2))`,
				userID,
				s.Title,
				s.Description,
				s.Category,
				string(skill.ContactEmail),
			)
			if err != nil {
				return fmt.Errorf("insert skill %s for %s: %w", s.Title, p.Email, err)
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
