package domain

import (
	"context"
	"time"
)

// Company verification statuses
const (
	VerificationStatusPending  = "pending"
	VerificationStatusVerified = "verified"
	VerificationStatusRejected = "rejected"
)

// CompanyProfile represents an employer's company profile
type CompanyProfile struct {
	ID                 int64     `json:"id"`
	UserID             string    `json:"user_id"`
	CompanyName        string    `json:"company_name" validate:"required,min=2,max=150"`
	LogoURL            *string   `json:"logo_url" validate:"omitempty,url"`
	Location           *string   `json:"location" validate:"omitempty,max=150"`
	Website            *string   `json:"website" validate:"omitempty,url"`
	Industry           *string   `json:"industry" validate:"omitempty,max=100"`
	Description        *string   `json:"description" validate:"omitempty,max=3000"`
	VerificationStatus string    `json:"verification_status"`
	RejectionReason    *string   `json:"rejection_reason,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func (p *CompanyProfile) IsVerified() bool {
	return p != nil && p.VerificationStatus == VerificationStatusVerified
}

// PublicCompanyProfile is the public-facing version without moderation data
type PublicCompanyProfile struct {
	ID          int64   `json:"id"`
	CompanyName string  `json:"company_name"`
	LogoURL     *string `json:"logo_url"`
	Location    *string `json:"location"`
	Website     *string `json:"website"`
	Industry    *string `json:"industry"`
	Description *string `json:"description"`
}

// CompanyProfileRepository defines storage operations
type CompanyProfileRepository interface {
	GetByUserID(ctx context.Context, userID string) (*CompanyProfile, error)
	GetByID(ctx context.Context, id int64) (*CompanyProfile, error)
	Upsert(ctx context.Context, profile *CompanyProfile) error
}

// CompanyProfileUsecase defines business logic operations
type CompanyProfileUsecase interface {
	GetEmployerProfile(ctx context.Context, userID string) (*CompanyProfile, error)
	UpdateEmployerProfile(ctx context.Context, userID string, profile *CompanyProfile) (*CompanyProfile, error)
	GetPublicProfile(ctx context.Context, id int64) (*PublicCompanyProfile, error)
}
