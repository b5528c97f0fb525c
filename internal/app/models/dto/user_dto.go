package dto

import "github.com/attendly/attendly/internal/app/models"

// SaveUserRequest represents a create-or-replace user payload. An ID of
// zero creates a new user; a non-zero ID replaces the existing one.
type SaveUserRequest struct {
	ID    int64       `json:"id" example:"0"`
	Name  string      `json:"name" binding:"required" example:"Bob Smith"`
	Email string      `json:"email" binding:"required,email" example:"bob@college.edu"`
	Role  models.Role `json:"role" binding:"required,attrole" example:"teacher"`
}

// UserListResponse represents a list of users
type UserListResponse struct {
	Users []UserResponse `json:"users"`
	Total int            `json:"total" example:"9"`
}
