package dto

import (
	"skillswap/internal/domain/user"

	"github.com/google/uuid"
)

// MatchUserResponse is the public view of a matched user.
type MatchUserResponse struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Email  string    `json:"email"`
	Image  string    `json:"image"`
	Github string    `json:"github"`
	Phone  string    `json:"phone"`
}

func NewMatchUserResponse(u user.User) MatchUserResponse {
	return MatchUserResponse{
		ID:     u.ID,
		Name:   u.Name,
		Email:  u.Email,
		Image:  u.Image,
		Github: u.Github,
		Phone:  u.Phone,
	}
}
