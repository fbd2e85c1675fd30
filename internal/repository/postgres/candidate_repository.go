package postgres

import (
	"context"
	"time"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type candidateRepository struct {
	db *pgxpool.Pool
}

func NewCandidateRepository(db *pgxpool.Pool) domain.CandidateRepository {
	return &candidateRepository{db: db}
}

const candidateColumns = `
	id, user_id, COALESCE(full_name, ''), COALESCE(headline, ''),
	COALESCE(city, ''), COALESCE(province, ''), COALESCE(major, ''), skills,
	COALESCE(avatar_url, ''), COALESCE(phone, ''), COALESCE(bio, ''),
	COALESCE(experience, ''), COALESCE(education, ''), created_at, updated_at`

func (r *candidateRepository) GetByUserID(ctx context.Context, userID string) (*domain.CandidateProfile, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidate_profiles WHERE user_id = $1`

	var p domain.CandidateProfile
	var skills []string
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&p.ID, &p.UserID, &p.FullName, &p.Headline,
		&p.City, &p.Province, &p.Major, pq.Array(&skills),
		&p.AvatarURL, &p.Phone, &p.Bio,
		&p.Experience, &p.Education, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, mapError(err, "")
	}
	p.Skills = skills
	return &p, nil
}

// Upsert creates or replaces the profile of profile.UserID (1 profile per user)
func (r *candidateRepository) Upsert(ctx context.Context, profile *domain.CandidateProfile) error {
	now := time.Now()
	profile.UpdatedAt = now

	query := `
		INSERT INTO candidate_profiles (
			user_id, full_name, headline, city, province, major, skills,
			avatar_url, phone, bio, experience, education, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (user_id) DO UPDATE SET
			full_name = EXCLUDED.full_name,
			headline = EXCLUDED.headline,
			city = EXCLUDED.city,
			province = EXCLUDED.province,
			major = EXCLUDED.major,
			skills = EXCLUDED.skills,
			avatar_url = EXCLUDED.avatar_url,
			phone = EXCLUDED.phone,
			bio = EXCLUDED.bio,
			experience = EXCLUDED.experience,
			education = EXCLUDED.education,
			updated_at = EXCLUDED.updated_at
		RETURNING id, created_at`

	skills := profile.Skills
	if skills == nil {
		skills = []string{}
	}

	err := r.db.QueryRow(ctx, query,
		profile.UserID, profile.FullName, profile.Headline, profile.City, profile.Province,
		profile.Major, pq.Array(skills), profile.AvatarURL, profile.Phone, profile.Bio,
		profile.Experience, profile.Education, now, now,
	).Scan(&profile.ID, &profile.CreatedAt)
	return mapError(err, "Candidate profile already exists")
}
