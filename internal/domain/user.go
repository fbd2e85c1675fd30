package domain

import (
	"context"
	"time"
)

// User roles
const (
	RoleCandidate = "candidate"
	RoleEmployer  = "employer"
	RoleAdmin     = "admin"
)

type User struct {
	ID         string    `json:"id"` // Supabase UUID
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	IsDisabled bool      `json:"is_disabled"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type AssignRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=candidate employer admin"`
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Update(ctx context.Context, user *User) error
}

type AuthUsecase interface {
	EnsureUserExists(ctx context.Context, user *User) (*User, error)
	AssignRole(ctx context.Context, userID string, role string) error
	GetCurrentUser(ctx context.Context, id string) (*User, error)
}
