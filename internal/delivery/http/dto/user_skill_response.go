package dto

import (
	"time"

	"skillswap/internal/domain/skill"

	"github.com/google/uuid"
)

type SkillResponse struct {
	ID                uuid.UUID `json:"id"`
	UserID            uuid.UUID `json:"user_id"`
	Title             string    `json:"title"`
	Description       string    `json:"description"`
	Category          string    `json:"category"`
	ContactPreference string    `json:"contact_preference"`
	CreatedAt         time.Time `json:"created_at"`
}

func NewSkillResponse(s skill.Skill) SkillResponse {
	return SkillResponse{
		ID:                s.ID,
		UserID:            s.UserID,
		Title:             s.Title,
		Description:       s.Description,
		Category:          s.Category,
		ContactPreference: string(s.ContactPreference),
		CreatedAt:         s.CreatedAt,
	}
}

func NewSkillResponses(items []skill.Skill) []SkillResponse {
	out := make([]SkillResponse, 0, len(items))
	for _, s := range items {
		out = append(out, NewSkillResponse(s))
	}
	return out
}

type NeedsResponse struct {
	Needs []string `json:"needs"`
}
