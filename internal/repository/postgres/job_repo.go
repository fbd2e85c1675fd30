package postgres

import (
	"context"
	"fmt"
	"strings"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type jobRepo struct {
	db *pgxpool.Pool
}

func NewJobRepository(db *pgxpool.Pool) domain.JobRepository {
	return &jobRepo{db: db}
}

const jobColumns = `
	j.id, j.company_id, j.title, COALESCE(j.description, ''), COALESCE(j.city, ''), COALESCE(j.province, ''),
	COALESCE(j.employment_type, ''), COALESCE(j.job_level, ''), COALESCE(j.major_required, ''),
	j.skills_required, j.requirements, COALESCE(j.education_required, ''), COALESCE(j.experience_required, ''),
	COALESCE(j.salary_min, 0), COALESCE(j.salary_max, 0), j.status, j.is_flagged, j.created_at, j.updated_at`

const jobWithCompanyColumns = jobColumns + `,
	COALESCE(cp.company_name, 'Unknown Company'), cp.logo_url, cp.industry`

// Only active jobs of verified companies are visible to the public.
const publicJobCondition = `j.status = 'active' AND cp.verification_status = 'verified'`

func scanJob(row rowScanner, extra ...any) (*domain.Job, error) {
	var job domain.Job
	var skills, requirements []string
	dest := []any{
		&job.ID, &job.CompanyID, &job.Title, &job.Description, &job.City, &job.Province,
		&job.EmploymentType, &job.JobLevel, &job.MajorRequired,
		pq.Array(&skills), pq.Array(&requirements), &job.EducationRequired, &job.ExperienceRequired,
		&job.SalaryMin, &job.SalaryMax, &job.Status, &job.IsFlagged, &job.CreatedAt, &job.UpdatedAt,
	}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return nil, err
	}
	job.SkillsRequired = skills
	job.Requirements = requirements
	return &job, nil
}

func scanJobWithCompany(row rowScanner) (*domain.JobWithCompany, error) {
	var out domain.JobWithCompany
	job, err := scanJob(row, &out.CompanyName, &out.CompanyLogoURL, &out.Industry)
	if err != nil {
		return nil, err
	}
	out.Job = *job
	return &out, nil
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

func (r *jobRepo) Create(ctx context.Context, job *domain.Job) error {
	query := `INSERT INTO jobs (
			company_id, title, description, city, province, employment_type, job_level,
			major_required, skills_required, requirements, education_required, experience_required,
			salary_min, salary_max, status, is_flagged, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18) RETURNING id`
	err := r.db.QueryRow(ctx, query,
		job.CompanyID, job.Title, job.Description, job.City, job.Province, job.EmploymentType, job.JobLevel,
		job.MajorRequired, pq.Array(nonNil(job.SkillsRequired)), pq.Array(nonNil(job.Requirements)),
		job.EducationRequired, job.ExperienceRequired,
		job.SalaryMin, job.SalaryMax, job.Status, job.IsFlagged, job.CreatedAt, job.UpdatedAt,
	).Scan(&job.ID)
	return mapError(err, "Job already exists")
}

func (r *jobRepo) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs j WHERE j.id = $1`
	job, err := scanJob(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, mapError(err, "")
	}
	return job, nil
}

// GetPublicByID retrieves a publicly visible job with company profile details
func (r *jobRepo) GetPublicByID(ctx context.Context, id int64) (*domain.JobWithCompany, error) {
	query := `SELECT ` + jobWithCompanyColumns + `
		FROM jobs j
		JOIN company_profiles cp ON j.company_id = cp.id
		WHERE j.id = $1 AND ` + publicJobCondition
	job, err := scanJobWithCompany(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, mapError(err, "")
	}
	return job, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern matches s literally anywhere in a column.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

// buildPublicFilter renders the optional filters as SQL conditions with
// positional arguments.
func buildPublicFilter(filter domain.JobFilter) (string, []any) {
	conds := []string{publicJobCondition}
	var args []any

	add := func(cond string, value any) {
		args = append(args, value)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if q := strings.TrimSpace(filter.Query); q != "" {
		add(`(j.title ILIKE $%[1]d ESCAPE '\' OR j.description ILIKE $%[1]d ESCAPE '\')`, containsPattern(q))
	}
	if loc := strings.TrimSpace(filter.Location); loc != "" {
		add(`(j.city ILIKE $%[1]d ESCAPE '\' OR j.province ILIKE $%[1]d ESCAPE '\')`, containsPattern(loc))
	}
	if level := strings.TrimSpace(filter.JobLevel); level != "" {
		add("LOWER(j.job_level) = LOWER($%d)", level)
	}
	if et := strings.TrimSpace(filter.EmploymentType); et != "" {
		add("j.employment_type = $%d", et)
	}

	return strings.Join(conds, " AND "), args
}

// FetchPublicActiveJobs retrieves active jobs of verified companies.
// The visibility condition is always applied; filters only narrow it.
func (r *jobRepo) FetchPublicActiveJobs(ctx context.Context, filter domain.JobFilter, limit, offset int) ([]domain.JobWithCompany, int64, error) {
	where, args := buildPublicFilter(filter)

	var total int64
	countQuery := `SELECT COUNT(*) FROM jobs j JOIN company_profiles cp ON j.company_id = cp.id WHERE ` + where
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`SELECT %s
		FROM jobs j
		JOIN company_profiles cp ON j.company_id = cp.id
		WHERE %s
		ORDER BY j.created_at DESC
		LIMIT $%d OFFSET $%d`, jobWithCompanyColumns, where, len(args)+1, len(args)+2)

	rows, err := r.db.Query(ctx, query, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	jobs, err := collectJobsWithCompany(rows)
	if err != nil {
		return nil, 0, err
	}
	return jobs, total, nil
}

// FetchAllPublicActive returns every publicly visible job, newest first.
// Used as the candidate pool for recommendations.
func (r *jobRepo) FetchAllPublicActive(ctx context.Context) ([]domain.JobWithCompany, error) {
	query := `SELECT ` + jobWithCompanyColumns + `
		FROM jobs j
		JOIN company_profiles cp ON j.company_id = cp.id
		WHERE ` + publicJobCondition + `
		ORDER BY j.created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectJobsWithCompany(rows)
}

func collectJobsWithCompany(rows pgx.Rows) ([]domain.JobWithCompany, error) {
	jobs := []domain.JobWithCompany{}
	for rows.Next() {
		job, err := scanJobWithCompany(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, *job)
	}
	return jobs, rows.Err()
}

// FetchByCompanyID retrieves jobs for a specific company (employer's jobs only)
func (r *jobRepo) FetchByCompanyID(ctx context.Context, companyID int64, limit, offset int) ([]domain.Job, int64, error) {
	query := `SELECT ` + jobColumns + `
		FROM jobs j WHERE j.company_id = $1 ORDER BY j.created_at DESC LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, companyID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	jobs := []domain.Job{}
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, 0, err
		}
		jobs = append(jobs, *job)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM jobs WHERE company_id = $1`, companyID).Scan(&total); err != nil {
		return nil, 0, err
	}

	return jobs, total, nil
}

// Update rewrites the employer-editable fields. Status and flag are owned by moderation.
func (r *jobRepo) Update(ctx context.Context, job *domain.Job) error {
	query := `UPDATE jobs SET
			title = $2, description = $3, city = $4, province = $5, employment_type = $6, job_level = $7,
			major_required = $8, skills_required = $9, requirements = $10, education_required = $11,
			experience_required = $12, salary_min = $13, salary_max = $14, updated_at = $15
		WHERE id = $1`
	tag, err := r.db.Exec(ctx, query,
		job.ID, job.Title, job.Description, job.City, job.Province, job.EmploymentType, job.JobLevel,
		job.MajorRequired, pq.Array(nonNil(job.SkillsRequired)), pq.Array(nonNil(job.Requirements)),
		job.EducationRequired, job.ExperienceRequired, job.SalaryMin, job.SalaryMax, job.UpdatedAt,
	)
	if err != nil {
		return mapError(err, "")
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *jobRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return mapError(err, "")
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
