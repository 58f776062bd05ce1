package user

import (
	"time"

	"github.com/portalhq/jobboard/pkg/iam/auth"
	"github.com/portalhq/jobboard/pkg/kernel"
)

// RegisterRequest - DTO for account registration
type RegisterRequest struct {
	FullName string `json:"full_name" validate:"required,max=200"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required"`
}

// LoginRequest - DTO for credential login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse - token plus the basic identity of the logged in user
type AuthResponse struct {
	Token     string        `json:"token"`
	UserID    kernel.UserID `json:"user_id"`
	FullName  string        `json:"full_name"`
	Email     kernel.Email  `json:"email"`
	Role      auth.Role     `json:"role"`
	ExpiresAt time.Time     `json:"expires_at"`
}

// ProfileResponse - the caller's account plus its role profile
type ProfileResponse struct {
	UserID    kernel.UserID `json:"user_id"`
	FullName  string        `json:"full_name"`
	Email     kernel.Email  `json:"email"`
	Role      auth.Role     `json:"role"`
	CreatedAt time.Time     `json:"created_at"`
	Company   any           `json:"company,omitempty"`
	Candidate any           `json:"candidate,omitempty"`
}
