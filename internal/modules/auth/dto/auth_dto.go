package dto

import (
	"io"

	"anoa.com/askify/internal/entity"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	Name            string `json:"name" binding:"required,max=100"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" binding:"required,eqfield=Password"`
	AcceptTerms     bool   `json:"accept_terms" binding:"eq=true"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// UpdateProfileRequest is a partial update. Absent fields are left as they
// are. Name and Avatar may be sent as "" to clear them; Email may not.
type UpdateProfileRequest struct {
	Name       *string `json:"name" binding:"omitempty,max=100"`
	Email      *string `json:"email" binding:"omitempty,email"`
	Avatar     *string `json:"avatar" binding:"omitempty,url|eq="`
	Reputation *int    `json:"reputation" binding:"omitempty,min=0"`
}

// AvatarFile is an uploaded avatar image.
type AvatarFile struct {
	Reader   io.Reader
	FileName string
}

// AuthResult reports the outcome of login and register. Failures carry a
// message instead of an error value.
type AuthResult struct {
	Success     bool         `json:"success"`
	User        *entity.User `json:"user,omitempty"`
	AccessToken string       `json:"access_token,omitempty"`
	TokenType   string       `json:"token_type,omitempty"`
	ExpiresIn   int64        `json:"expires_in,omitempty"`
	Error       string       `json:"error,omitempty"`
}

type ForgotPasswordResult struct {
	Sent  bool   `json:"sent"`
	Email string `json:"email"`
}
