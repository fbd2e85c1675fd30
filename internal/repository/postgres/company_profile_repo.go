package postgres

import (
	"context"
	"time"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type companyProfileRepo struct {
	db *pgxpool.Pool
}

// NewCompanyProfileRepository creates a new company profile repository
func NewCompanyProfileRepository(db *pgxpool.Pool) domain.CompanyProfileRepository {
	return &companyProfileRepo{db: db}
}

const companyColumns = `
	id, user_id, company_name, logo_url, location, website, industry, description,
	verification_status, rejection_reason, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCompany(row rowScanner) (*domain.CompanyProfile, error) {
	var p domain.CompanyProfile
	err := row.Scan(
		&p.ID, &p.UserID, &p.CompanyName, &p.LogoURL, &p.Location, &p.Website,
		&p.Industry, &p.Description, &p.VerificationStatus, &p.RejectionReason,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, mapError(err, "")
	}
	return &p, nil
}

// GetByUserID retrieves a company profile by the employer's user ID
func (r *companyProfileRepo) GetByUserID(ctx context.Context, userID string) (*domain.CompanyProfile, error) {
	query := `SELECT ` + companyColumns + ` FROM company_profiles WHERE user_id = $1`
	return scanCompany(r.db.QueryRow(ctx, query, userID))
}

// GetByID retrieves a company profile by its ID (for public page)
func (r *companyProfileRepo) GetByID(ctx context.Context, id int64) (*domain.CompanyProfile, error) {
	query := `SELECT ` + companyColumns + ` FROM company_profiles WHERE id = $1`
	return scanCompany(r.db.QueryRow(ctx, query, id))
}

// Upsert creates or updates a company profile (1 profile per user).
// Moderation fields are written as given; the usecase decides them.
func (r *companyProfileRepo) Upsert(ctx context.Context, profile *domain.CompanyProfile) error {
	now := time.Now()
	profile.UpdatedAt = now

	query := `
		INSERT INTO company_profiles (
			user_id, company_name, logo_url, location, website, industry, description,
			verification_status, rejection_reason, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (user_id) DO UPDATE SET
			company_name = EXCLUDED.company_name,
			logo_url = EXCLUDED.logo_url,
			location = EXCLUDED.location,
			website = EXCLUDED.website,
			industry = EXCLUDED.industry,
			description = EXCLUDED.description,
			verification_status = EXCLUDED.verification_status,
			rejection_reason = EXCLUDED.rejection_reason,
			updated_at = EXCLUDED.updated_at
		RETURNING id, created_at`

	err := r.db.QueryRow(ctx, query,
		profile.UserID, profile.CompanyName, profile.LogoURL, profile.Location, profile.Website,
		profile.Industry, profile.Description, profile.VerificationStatus, profile.RejectionReason,
		now, now,
	).Scan(&profile.ID, &profile.CreatedAt)
	return mapError(err, "Company profile already exists")
}
