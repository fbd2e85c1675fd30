package usecase

import (
	"context"
	"errors"
	"strings"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/matching"
	"go-jobboard-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

type candidateUsecase struct {
	repo     domain.CandidateRepository
	validate *validator.Validate
}

func NewCandidateUsecase(repo domain.CandidateRepository, validate *validator.Validate) domain.CandidateUsecase {
	return &candidateUsecase{
		repo:     repo,
		validate: validate,
	}
}

func (u *candidateUsecase) GetProfile(ctx context.Context, userID string) (*domain.CandidateProfile, error) {
	if err := requireOwner(ctx, userID, "You can only view your own profile"); err != nil {
		return nil, err
	}

	profile, err := u.repo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Candidate profile not found")
		}
		return nil, err
	}
	return profile, nil
}

func (u *candidateUsecase) UpdateProfile(ctx context.Context, profile *domain.CandidateProfile) error {
	ctxUserID := ctxString(ctx, domain.KeyUserID)
	if ctxUserID == "" {
		return apperror.Unauthorized("User not authenticated")
	}

	// Force the UserID to be the context user, ensuring they can't update someone else's profile
	profile.UserID = ctxUserID
	profile.Skills = cleanSkills(profile.Skills)

	if err := u.validate.Struct(profile); err != nil {
		return apperror.Validation(err)
	}

	return u.repo.Upsert(ctx, profile)
}

// GetCompleteness reports how many of the ten profile fields are filled.
// A candidate without a stored profile is 0% complete.
func (u *candidateUsecase) GetCompleteness(ctx context.Context, userID string) (*domain.ProfileCompleteness, error) {
	if err := requireOwner(ctx, userID, "You can only view your own profile"); err != nil {
		return nil, err
	}

	profile, err := u.repo.GetByUserID(ctx, userID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	return completenessOf(profile), nil
}

func completenessOf(profile *domain.CandidateProfile) *domain.ProfileCompleteness {
	fields := profile.CompletenessFields()
	return &domain.ProfileCompleteness{
		Percentage:    matching.Completeness(fields),
		MissingFields: matching.MissingFields(fields),
	}
}

// cleanSkills trims entries and drops blanks and case-insensitive duplicates.
func cleanSkills(skills []string) []string {
	out := make([]string, 0, len(skills))
	seen := make(map[string]bool, len(skills))
	for _, s := range skills {
		s = strings.TrimSpace(s)
		key := strings.ToLower(s)
		if s == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, s)
	}
	return out
}
