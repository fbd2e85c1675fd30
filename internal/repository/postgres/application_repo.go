package postgres

import (
	"context"
	"time"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type applicationRepo struct {
	db *pgxpool.Pool
}

// NewApplicationRepository creates a new application repository
func NewApplicationRepository(db *pgxpool.Pool) domain.ApplicationRepository {
	return &applicationRepo{db: db}
}

// Create inserts a new application
func (r *applicationRepo) Create(ctx context.Context, app *domain.Application) error {
	query := `
		INSERT INTO applications (job_id, candidate_user_id, cover_letter, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	now := time.Now()
	app.CreatedAt = now
	app.UpdatedAt = now
	if app.Status == "" {
		app.Status = domain.ApplicationStatusApplied
	}

	err := r.db.QueryRow(ctx, query,
		app.JobID,
		app.CandidateUserID,
		app.CoverLetter,
		app.Status,
		app.CreatedAt,
		app.UpdatedAt,
	).Scan(&app.ID)
	return mapError(err, "You have already applied to this job")
}

// GetByID retrieves an application by ID with its job title
func (r *applicationRepo) GetByID(ctx context.Context, id int64) (*domain.Application, error) {
	query := `
		SELECT
			a.id, a.job_id, a.candidate_user_id, a.cover_letter, a.status, a.created_at, a.updated_at,
			j.title as job_title
		FROM applications a
		LEFT JOIN jobs j ON a.job_id = j.id
		WHERE a.id = $1`

	var app domain.Application
	err := r.db.QueryRow(ctx, query, id).Scan(
		&app.ID, &app.JobID, &app.CandidateUserID, &app.CoverLetter, &app.Status,
		&app.CreatedAt, &app.UpdatedAt, &app.JobTitle,
	)
	if err != nil {
		return nil, mapError(err, "")
	}
	return &app, nil
}

// GetApplicantsByJobID retrieves all applications for a job joined with the candidate profile
func (r *applicationRepo) GetApplicantsByJobID(ctx context.Context, jobID int64) ([]domain.Applicant, error) {
	query := `
		SELECT
			a.id, a.job_id, a.candidate_user_id, a.cover_letter, a.status, a.created_at, a.updated_at,
			cp.id, COALESCE(cp.full_name, ''), COALESCE(cp.headline, ''), COALESCE(cp.city, ''),
			COALESCE(cp.province, ''), COALESCE(cp.major, ''), cp.skills, COALESCE(cp.avatar_url, ''),
			COALESCE(cp.phone, ''), COALESCE(cp.bio, ''), COALESCE(cp.experience, ''), COALESCE(cp.education, '')
		FROM applications a
		LEFT JOIN candidate_profiles cp ON a.candidate_user_id = cp.user_id
		WHERE a.job_id = $1
		ORDER BY a.created_at ASC`

	rows, err := r.db.Query(ctx, query, jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	applicants := []domain.Applicant{}
	for rows.Next() {
		var a domain.Applicant
		var profileID *int64
		var p domain.CandidateProfile
		var skills []string
		if err := rows.Scan(
			&a.ID, &a.JobID, &a.CandidateUserID, &a.CoverLetter, &a.Status, &a.CreatedAt, &a.UpdatedAt,
			&profileID, &p.FullName, &p.Headline, &p.City,
			&p.Province, &p.Major, pq.Array(&skills), &p.AvatarURL,
			&p.Phone, &p.Bio, &p.Experience, &p.Education,
		); err != nil {
			return nil, err
		}
		if profileID != nil {
			p.ID = *profileID
			p.UserID = a.CandidateUserID
			p.Skills = skills
			a.Candidate = &p
		}
		applicants = append(applicants, a)
	}
	return applicants, rows.Err()
}

// GetByUserID retrieves all applications for a user with job titles
func (r *applicationRepo) GetByUserID(ctx context.Context, userID string) ([]domain.Application, error) {
	query := `
		SELECT
			a.id, a.job_id, a.candidate_user_id, a.cover_letter, a.status, a.created_at, a.updated_at,
			j.title as job_title, cp.company_name
		FROM applications a
		LEFT JOIN jobs j ON a.job_id = j.id
		LEFT JOIN company_profiles cp ON j.company_id = cp.id
		WHERE a.candidate_user_id = $1
		ORDER BY a.created_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	applications := []domain.Application{}
	for rows.Next() {
		var app domain.Application
		if err := rows.Scan(
			&app.ID, &app.JobID, &app.CandidateUserID, &app.CoverLetter, &app.Status,
			&app.CreatedAt, &app.UpdatedAt, &app.JobTitle, &app.CompanyName,
		); err != nil {
			return nil, err
		}
		applications = append(applications, app)
	}
	return applications, rows.Err()
}

// CheckExists checks if an application already exists for the job/user combination
func (r *applicationRepo) CheckExists(ctx context.Context, jobID int64, userID string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM applications WHERE job_id = $1 AND candidate_user_id = $2)`
	var exists bool
	err := r.db.QueryRow(ctx, query, jobID, userID).Scan(&exists)
	return exists, err
}

// UpdateStatus updates the status of an application and sets updated_at
func (r *applicationRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	query := `UPDATE applications SET status = $2, updated_at = $3 WHERE id = $1`
	result, err := r.db.Exec(ctx, query, id, status, time.Now())
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// CountByUserID groups the candidate's applications by status
func (r *applicationRepo) CountByUserID(ctx context.Context, userID string) (*domain.ApplicationCounts, error) {
	query := `SELECT status, COUNT(*) FROM applications WHERE candidate_user_id = $1 GROUP BY status`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := &domain.ApplicationCounts{}
	for rows.Next() {
		var status string
		var n int64
		if err := rows.Scan(&status, &n); err != nil {
			return nil, err
		}
		counts.Total += n
		switch status {
		case domain.ApplicationStatusApplied:
			counts.Applied = n
		case domain.ApplicationStatusReviewed:
			counts.Reviewed = n
		case domain.ApplicationStatusAccepted:
			counts.Accepted = n
		case domain.ApplicationStatusRejected:
			counts.Rejected = n
		}
	}
	return counts, rows.Err()
}
