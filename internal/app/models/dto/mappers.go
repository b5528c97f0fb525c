package dto

import (
	"github.com/attendly/attendly/internal/app/models"
	"github.com/attendly/attendly/internal/pkg/helpers"
)

// NewUserResponse maps a user to its API shape, deriving the avatar fields
func NewUserResponse(user models.User) UserResponse {
	return UserResponse{
		ID:          user.ID,
		Name:        user.Name,
		Email:       user.Email,
		Role:        user.Role,
		Initials:    helpers.AvatarInitials(user.Name),
		AvatarColor: helpers.AvatarColor(user.Name),
	}
}

// NewUserResponses maps a slice of users, preserving order
func NewUserResponses(users []models.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, NewUserResponse(u))
	}
	return out
}
