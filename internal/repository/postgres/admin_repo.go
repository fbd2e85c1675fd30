package postgres

import (
	"context"
	"time"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type adminRepo struct {
	db *pgxpool.Pool
}

func NewAdminRepository(db *pgxpool.Pool) domain.AdminRepository {
	return &adminRepo{db: db}
}

// GetStats fetches dashboard statistics in a single round trip
func (r *adminRepo) GetStats(ctx context.Context) (*domain.AdminStats, error) {
	stats := &domain.AdminStats{
		SystemHealth: domain.SystemHealth{
			Status:      "healthy",
			LastChecked: time.Now().Format(time.RFC3339),
		},
	}

	query := `
		SELECT
			(SELECT COUNT(*) FROM users),
			(SELECT COUNT(*) FROM users WHERE role = 'admin'),
			(SELECT COUNT(*) FROM users WHERE role = 'employer'),
			(SELECT COUNT(*) FROM users WHERE role = 'candidate'),
			(SELECT COUNT(*) FROM company_profiles),
			(SELECT COUNT(*) FROM company_profiles WHERE verification_status = 'pending'),
			(SELECT COUNT(*) FROM company_profiles WHERE verification_status = 'verified'),
			(SELECT COUNT(*) FROM company_profiles WHERE verification_status = 'rejected'),
			(SELECT COUNT(*) FROM jobs),
			(SELECT COUNT(*) FROM jobs WHERE status = 'active'),
			(SELECT COUNT(*) FROM jobs WHERE status = 'hidden'),
			(SELECT COUNT(*) FROM jobs WHERE is_flagged),
			(SELECT COUNT(*) FROM applications)`

	err := r.db.QueryRow(ctx, query).Scan(
		&stats.TotalUsers,
		&stats.UsersByRole.Admin, &stats.UsersByRole.Employer, &stats.UsersByRole.Candidate,
		&stats.TotalCompanies,
		&stats.CompaniesByStatus.Pending, &stats.CompaniesByStatus.Verified, &stats.CompaniesByStatus.Rejected,
		&stats.TotalJobs,
		&stats.JobsByStatus.Active, &stats.JobsByStatus.Hidden, &stats.JobsByStatus.Flagged,
		&stats.TotalApplications,
	)
	if err != nil {
		return nil, err
	}
	return stats, nil
}

// ListUsers fetches paginated users with optional role filter
func (r *adminRepo) ListUsers(ctx context.Context, role string, page, pageSize int) ([]domain.AdminUser, int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users WHERE ($1 = '' OR role = $1)`, role).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT id, email, role, COALESCE(is_disabled, false), created_at, updated_at
	          FROM users WHERE ($1 = '' OR role = $1)
	          ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.Query(ctx, query, role, pageSize, offsetFor(page, pageSize))
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	users := []domain.AdminUser{}
	for rows.Next() {
		var u domain.AdminUser
		var createdAt, updatedAt time.Time
		if err := rows.Scan(&u.ID, &u.Email, &u.Role, &u.IsDisabled, &createdAt, &updatedAt); err != nil {
			return nil, 0, err
		}
		u.CreatedAt = createdAt.Format(time.RFC3339)
		u.UpdatedAt = updatedAt.Format(time.RFC3339)
		users = append(users, u)
	}
	return users, total, rows.Err()
}

// DisableUser enables or disables a user
func (r *adminRepo) DisableUser(ctx context.Context, userID string, disable bool) error {
	query := `UPDATE users SET is_disabled = $2, updated_at = $3 WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, userID, disable, time.Now())
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// CreateUser inserts a new user
func (r *adminRepo) CreateUser(ctx context.Context, u domain.AdminUser) error {
	query := `INSERT INTO users (id, email, role, is_disabled, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6)`
	created, _ := time.Parse(time.RFC3339, u.CreatedAt)
	if created.IsZero() {
		created = time.Now()
	}

	_, err := r.db.Exec(ctx, query, u.ID, u.Email, u.Role, u.IsDisabled, created, created)
	return mapError(err, "User with this email already exists")
}

const adminCompanyColumns = `
	cp.id, cp.company_name, cp.verification_status, COALESCE(cp.rejection_reason, ''),
	cp.user_id, COALESCE(u.email, ''), cp.created_at, cp.updated_at`

func scanAdminCompany(row rowScanner) (*domain.AdminCompany, error) {
	var c domain.AdminCompany
	var createdAt, updatedAt time.Time
	if err := row.Scan(&c.ID, &c.Name, &c.VerificationStatus, &c.RejectionReason,
		&c.EmployerId, &c.EmployerEmail, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	c.CreatedAt = createdAt.Format(time.RFC3339)
	c.UpdatedAt = updatedAt.Format(time.RFC3339)
	return &c, nil
}

// ListCompanies fetches paginated company profiles, oldest pending first
func (r *adminRepo) ListCompanies(ctx context.Context, status string, page, pageSize int) ([]domain.AdminCompany, int64, error) {
	var total int64
	countQuery := `SELECT COUNT(*) FROM company_profiles WHERE ($1 = '' OR verification_status = $1)`
	if err := r.db.QueryRow(ctx, countQuery, status).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + adminCompanyColumns + `
	          FROM company_profiles cp
	          LEFT JOIN users u ON u.id = cp.user_id
	          WHERE ($1 = '' OR cp.verification_status = $1)
	          ORDER BY cp.updated_at ASC LIMIT $2 OFFSET $3`
	rows, err := r.db.Query(ctx, query, status, pageSize, offsetFor(page, pageSize))
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	companies := []domain.AdminCompany{}
	for rows.Next() {
		c, err := scanAdminCompany(rows)
		if err != nil {
			return nil, 0, err
		}
		companies = append(companies, *c)
	}
	return companies, total, rows.Err()
}

// VerifyCompany stores the moderation decision and returns the updated company
func (r *adminRepo) VerifyCompany(ctx context.Context, companyID int64, status string, reason string) (*domain.AdminCompany, error) {
	var rejection *string
	if reason != "" {
		rejection = &reason
	}

	query := `
		WITH updated AS (
			UPDATE company_profiles SET verification_status = $2, rejection_reason = $3, updated_at = $4
			WHERE id = $1
			RETURNING *
		)
		SELECT ` + adminCompanyColumns + `
		FROM updated cp
		LEFT JOIN users u ON u.id = cp.user_id`
	c, err := scanAdminCompany(r.db.QueryRow(ctx, query, companyID, status, rejection, time.Now()))
	if err != nil {
		return nil, mapError(err, "")
	}
	return c, nil
}

const adminJobColumns = `
	j.id, j.title, j.company_id, COALESCE(cp.company_name, 'Unknown'), COALESCE(j.city, ''),
	j.status, j.is_flagged, j.created_at, j.updated_at`

func scanAdminJob(row rowScanner) (*domain.AdminJob, error) {
	var j domain.AdminJob
	var createdAt, updatedAt time.Time
	if err := row.Scan(&j.ID, &j.Title, &j.CompanyId, &j.CompanyName, &j.City,
		&j.Status, &j.IsFlagged, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	j.CreatedAt = createdAt.Format(time.RFC3339)
	j.UpdatedAt = updatedAt.Format(time.RFC3339)
	return &j, nil
}

// ListJobsForAdmin fetches paginated jobs for moderation. The "flagged"
// status filter matches the flag rather than the status column.
func (r *adminRepo) ListJobsForAdmin(ctx context.Context, status string, page, pageSize int) ([]domain.AdminJob, int64, error) {
	where := `($1 = '' OR j.status = $1)`
	if status == "flagged" {
		where = `($1 = 'flagged' AND j.is_flagged)`
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM jobs j WHERE `+where, status).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + adminJobColumns + `
	          FROM jobs j
	          LEFT JOIN company_profiles cp ON j.company_id = cp.id
	          WHERE ` + where + `
	          ORDER BY j.created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.Query(ctx, query, status, pageSize, offsetFor(page, pageSize))
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	jobs := []domain.AdminJob{}
	for rows.Next() {
		j, err := scanAdminJob(rows)
		if err != nil {
			return nil, 0, err
		}
		jobs = append(jobs, *j)
	}
	return jobs, total, rows.Err()
}

func (r *adminRepo) updateJob(ctx context.Context, set string, jobID int64, value any) (*domain.AdminJob, error) {
	query := `
		WITH j AS (
			UPDATE jobs SET ` + set + ` = $2, updated_at = $3 WHERE id = $1 RETURNING *
		)
		SELECT ` + adminJobColumns + `
		FROM j
		LEFT JOIN company_profiles cp ON j.company_id = cp.id`
	job, err := scanAdminJob(r.db.QueryRow(ctx, query, jobID, value, time.Now()))
	if err != nil {
		return nil, mapError(err, "")
	}
	return job, nil
}

// HideJob hides or unhides a job
func (r *adminRepo) HideJob(ctx context.Context, jobID int64, hide bool) (*domain.AdminJob, error) {
	status := domain.JobStatusActive
	if hide {
		status = domain.JobStatusHidden
	}
	return r.updateJob(ctx, "status", jobID, status)
}

// FlagJob flags or unflags a job
func (r *adminRepo) FlagJob(ctx context.Context, jobID int64, flag bool) (*domain.AdminJob, error) {
	return r.updateJob(ctx, "is_flagged", jobID, flag)
}
