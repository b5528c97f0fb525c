package dto

import "github.com/attendly/attendly/internal/app/models"

// LoginRequest represents the login request payload
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"admin@college.edu"`
	Password string `json:"password" binding:"required" example:"password123"`
}

// TokenResponse represents the issued access token
type TokenResponse struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expiresIn" example:"86400"`
}

// AuthResponse represents a successful authentication response
type AuthResponse struct {
	Token TokenResponse `json:"auth"`
	User  UserResponse  `json:"user"`
}

// UserResponse represents a user in API responses, enriched with the
// derived avatar fields the dashboard renders.
type UserResponse struct {
	ID          int64       `json:"id" example:"1"`
	Name        string      `json:"name" example:"Alice Johnson"`
	Email       string      `json:"email" example:"alice@college.edu"`
	Role        models.Role `json:"role" example:"student"`
	Initials    string      `json:"initials" example:"AJ"`
	AvatarColor string      `json:"avatarColor" example:"hsl(210, 50%, 60%)"`
}
