package dto

import (
	"skillswap/internal/repository"

	"github.com/google/uuid"
)

type SkillOwnerResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Image string    `json:"image"`
}

type SkillListingResponse struct {
	SkillResponse
	User SkillOwnerResponse `json:"user"`
}

type PaginationResponse struct {
	Total int `json:"total"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Pages int `json:"pages"`
}

type SkillListResponse struct {
	Skills     []SkillListingResponse `json:"skills"`
	Pagination PaginationResponse     `json:"pagination"`
}

func NewSkillListingResponses(items []repository.SkillListing) []SkillListingResponse {
	out := make([]SkillListingResponse, 0, len(items))
	for _, it := range items {
		out = append(out, SkillListingResponse{
			SkillResponse: NewSkillResponse(it.Skill),
			User: SkillOwnerResponse{
				ID:    it.Skill.UserID,
				Name:  it.OwnerName,
				Image: it.OwnerImage,
			},
		})
	}
	return out
}
