package identity

import (
	"time"

	"github.com/alimenta/backend/internal/domain/identity"
	"github.com/alimenta/backend/internal/infrastructure/auth"
	"github.com/google/uuid"
)

// RegisterRequest is the input for account creation. Organization fields are
// required only when registering an ORGANIZATION account.
type RegisterRequest struct {
	Username  string `json:"username" binding:"required,min=3,max=50"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8,max=128"`
	Role      string `json:"role" binding:"required,oneof=DONOR ORGANIZATION"`
	FirstName string `json:"first_name" binding:"max=100"`
	LastName  string `json:"last_name" binding:"max=100"`
	Phone     string `json:"phone" binding:"max=50"`
	Address   string `json:"address" binding:"max=500"`

	OrganizationName   string `json:"organization_name" binding:"max=200"`
	RegistrationNumber string `json:"registration_number" binding:"max=50"`
}

// LoginRequest is the input for authentication
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest carries a refresh token
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// ChangePasswordRequest is the input for a password change
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=8,max=128"`
}

// UserResponse is the user representation returned to clients
type UserResponse struct {
	ID             uuid.UUID  `json:"id"`
	Username       string     `json:"username"`
	Email          string     `json:"email"`
	FirstName      string     `json:"first_name,omitempty"`
	LastName       string     `json:"last_name,omitempty"`
	Phone          string     `json:"phone,omitempty"`
	Address        string     `json:"address,omitempty"`
	Role           string     `json:"role"`
	OrganizationID *uuid.UUID `json:"organization_id,omitempty"`
	Active         bool       `json:"active"`
	LastLoginAt    *time.Time `json:"last_login_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

// AuthResponse bundles tokens with the authenticated user
type AuthResponse struct {
	Tokens auth.TokenPair `json:"tokens"`
	User   UserResponse   `json:"user"`
}

// ToUserResponse converts a domain user to its response form
func ToUserResponse(u *identity.User, organizationID *uuid.UUID) UserResponse {
	return UserResponse{
		ID:             u.ID,
		Username:       u.Username,
		Email:          u.Email,
		FirstName:      u.FirstName,
		LastName:       u.LastName,
		Phone:          u.Phone,
		Address:        u.Address,
		Role:           u.Role.String(),
		OrganizationID: organizationID,
		Active:         u.Active,
		LastLoginAt:    u.LastLoginAt,
		CreatedAt:      u.CreatedAt,
	}
}
