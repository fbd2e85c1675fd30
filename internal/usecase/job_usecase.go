package usecase

import (
	"context"
	"errors"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/matching"
	"go-jobboard-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

type jobUsecase struct {
	jobRepo            domain.JobRepository
	companyProfileRepo domain.CompanyProfileRepository
	validate           *validator.Validate
}

func NewJobUsecase(jobRepo domain.JobRepository, companyProfileRepo domain.CompanyProfileRepository, validate *validator.Validate) domain.JobUsecase {
	return &jobUsecase{
		jobRepo:            jobRepo,
		companyProfileRepo: companyProfileRepo,
		validate:           validate,
	}
}

func (u *jobUsecase) employerCompany(ctx context.Context, userID string) (*domain.CompanyProfile, error) {
	company, err := u.companyProfileRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Employer profile not found. Please create a company profile first.")
		}
		return nil, err
	}
	return company, nil
}

// prepare canonicalises the job level and runs struct validation.
func (u *jobUsecase) prepare(job *domain.Job) error {
	if job.JobLevel != "" {
		if level, ok := matching.JobLevel(job.JobLevel).Normalize(); ok {
			job.JobLevel = string(level)
		}
	}
	job.SkillsRequired = cleanSkills(job.SkillsRequired)
	if err := u.validate.Struct(job); err != nil {
		return apperror.Validation(err)
	}
	return nil
}

func (u *jobUsecase) CreateJob(ctx context.Context, userID string, job *domain.Job) error {
	company, err := u.employerCompany(ctx, userID)
	if err != nil {
		return err
	}
	if !company.IsVerified() {
		return apperror.Forbidden("Your company must be verified before posting jobs")
	}

	if err := u.prepare(job); err != nil {
		return err
	}

	job.CompanyID = company.ID
	job.Status = domain.JobStatusActive
	job.IsFlagged = false
	job.CreatedAt = time.Now()
	job.UpdatedAt = job.CreatedAt

	return u.jobRepo.Create(ctx, job)
}

func (u *jobUsecase) GetPublicJob(ctx context.Context, id int64) (*domain.JobWithCompany, error) {
	job, err := u.jobRepo.GetPublicByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, err
	}
	return job, nil
}

// ListPublicActiveJobs returns only active jobs of verified companies
func (u *jobUsecase) ListPublicActiveJobs(ctx context.Context, filter domain.JobFilter, page, pageSize int) (*domain.PaginatedResult[domain.JobWithCompany], error) {
	page, pageSize = normalizePage(page, pageSize)

	jobs, total, err := u.jobRepo.FetchPublicActiveJobs(ctx, filter, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, err
	}
	return domain.NewPaginatedResult(jobs, total, page, pageSize), nil
}

// ListJobsByEmployer returns jobs belonging to the employer's company, any status
func (u *jobUsecase) ListJobsByEmployer(ctx context.Context, userID string, page, pageSize int) (*domain.PaginatedResult[domain.Job], error) {
	company, err := u.employerCompany(ctx, userID)
	if err != nil {
		return nil, err
	}

	page, pageSize = normalizePage(page, pageSize)
	jobs, total, err := u.jobRepo.FetchByCompanyID(ctx, company.ID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, err
	}
	return domain.NewPaginatedResult(jobs, total, page, pageSize), nil
}

// ownedJob loads a job and checks it belongs to the employer's company.
func (u *jobUsecase) ownedJob(ctx context.Context, userID string, id int64) (*domain.Job, error) {
	job, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, err
	}

	company, err := u.employerCompany(ctx, userID)
	if err != nil {
		return nil, err
	}
	if job.CompanyID != company.ID {
		return nil, apperror.Forbidden("You can only manage your own jobs")
	}
	return job, nil
}

func (u *jobUsecase) UpdateJob(ctx context.Context, userID string, job *domain.Job) error {
	existing, err := u.ownedJob(ctx, userID, job.ID)
	if err != nil {
		return err
	}

	if err := u.prepare(job); err != nil {
		return err
	}

	// Moderation state and ownership are not editable by the employer
	job.CompanyID = existing.CompanyID
	job.Status = existing.Status
	job.IsFlagged = existing.IsFlagged
	job.CreatedAt = existing.CreatedAt
	job.UpdatedAt = time.Now()

	return u.jobRepo.Update(ctx, job)
}

func (u *jobUsecase) DeleteJob(ctx context.Context, userID string, id int64) error {
	if _, err := u.ownedJob(ctx, userID, id); err != nil {
		return err
	}
	return u.jobRepo.Delete(ctx, id)
}
