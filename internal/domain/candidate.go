package domain

import (
	"context"
	"time"

	"go-jobboard-backend/internal/matching"
)

type CandidateProfile struct {
	ID         int64     `json:"id"`
	UserID     string    `json:"user_id" validate:"required"`
	FullName   string    `json:"full_name" validate:"omitempty,max=100,valid_name"`
	Headline   string    `json:"headline" validate:"max=150,no_emoji"`
	City       string    `json:"city" validate:"max=100"`
	Province   string    `json:"province" validate:"max=100"`
	Major      string    `json:"major" validate:"max=150"`
	Skills     []string  `json:"skills" validate:"max=50,dive,max=80"`
	AvatarURL  string    `json:"avatar_url" validate:"omitempty,url"`
	Phone      string    `json:"phone" validate:"omitempty,valid_phone"`
	Bio        string    `json:"bio" validate:"max=1000"`
	Experience string    `json:"experience" validate:"max=1000"`
	Education  string    `json:"education" validate:"max=150"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// MatchProfile exposes the fields used by the match scorer.
func (p *CandidateProfile) MatchProfile() matching.CandidateProfile {
	if p == nil {
		return matching.CandidateProfile{}
	}
	return matching.CandidateProfile{
		Skills:     p.Skills,
		Major:      p.Major,
		Education:  p.Education,
		Experience: p.Experience,
	}
}

func (p *CandidateProfile) CompletenessFields() matching.ProfileFields {
	if p == nil {
		return matching.ProfileFields{}
	}
	return matching.ProfileFields{
		Name:       p.FullName,
		Headline:   p.Headline,
		City:       p.City,
		Major:      p.Major,
		Skills:     p.Skills,
		AvatarURL:  p.AvatarURL,
		Phone:      p.Phone,
		Bio:        p.Bio,
		Experience: p.Experience,
		Education:  p.Education,
	}
}

// ProfileCompleteness is returned by GET /candidates/me/completeness
type ProfileCompleteness struct {
	Percentage    int      `json:"percentage"`
	MissingFields []string `json:"missing_fields"`
}

type CandidateRepository interface {
	GetByUserID(ctx context.Context, userID string) (*CandidateProfile, error)
	Upsert(ctx context.Context, profile *CandidateProfile) error
}

type CandidateUsecase interface {
	GetProfile(ctx context.Context, userID string) (*CandidateProfile, error)
	UpdateProfile(ctx context.Context, profile *CandidateProfile) error
	GetCompleteness(ctx context.Context, userID string) (*ProfileCompleteness, error)
}
