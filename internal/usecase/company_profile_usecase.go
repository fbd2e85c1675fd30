package usecase

import (
	"context"
	"errors"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

type companyProfileUsecase struct {
	profileRepo domain.CompanyProfileRepository
	validate    *validator.Validate
}

// NewCompanyProfileUsecase creates a new company profile usecase
func NewCompanyProfileUsecase(profileRepo domain.CompanyProfileRepository, validate *validator.Validate) domain.CompanyProfileUsecase {
	return &companyProfileUsecase{
		profileRepo: profileRepo,
		validate:    validate,
	}
}

// GetEmployerProfile retrieves the employer's own company profile
func (uc *companyProfileUsecase) GetEmployerProfile(ctx context.Context, userID string) (*domain.CompanyProfile, error) {
	profile, err := uc.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// Return empty profile instead of error for new employers
			return &domain.CompanyProfile{
				UserID:             userID,
				VerificationStatus: domain.VerificationStatusPending,
			}, nil
		}
		return nil, err
	}
	return profile, nil
}

// UpdateEmployerProfile creates or updates the employer's company profile.
// A new or previously rejected profile goes (back) to pending review.
func (uc *companyProfileUsecase) UpdateEmployerProfile(ctx context.Context, userID string, profile *domain.CompanyProfile) (*domain.CompanyProfile, error) {
	// Force user ID from context (security: prevent IDOR)
	profile.UserID = userID

	if err := uc.validate.Struct(profile); err != nil {
		return nil, apperror.Validation(err)
	}

	existing, err := uc.profileRepo.GetByUserID(ctx, userID)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		profile.VerificationStatus = domain.VerificationStatusPending
		profile.RejectionReason = nil
	case err != nil:
		return nil, err
	case existing.VerificationStatus == domain.VerificationStatusRejected:
		profile.VerificationStatus = domain.VerificationStatusPending
		profile.RejectionReason = nil
	default:
		profile.VerificationStatus = existing.VerificationStatus
		profile.RejectionReason = existing.RejectionReason
	}

	if err := uc.profileRepo.Upsert(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// GetPublicProfile returns a verified company's public page
func (uc *companyProfileUsecase) GetPublicProfile(ctx context.Context, id int64) (*domain.PublicCompanyProfile, error) {
	profile, err := uc.profileRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Company profile not found")
		}
		return nil, err
	}
	if !profile.IsVerified() {
		return nil, apperror.NotFound("Company profile not found")
	}

	return &domain.PublicCompanyProfile{
		ID:          profile.ID,
		CompanyName: profile.CompanyName,
		LogoURL:     profile.LogoURL,
		Location:    profile.Location,
		Website:     profile.Website,
		Industry:    profile.Industry,
		Description: profile.Description,
	}, nil
}
