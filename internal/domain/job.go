package domain

import (
	"context"
	"errors"
	"time"

	"go-jobboard-backend/internal/matching"
)

// Common domain errors
var ErrNotFound = errors.New("resource not found")

// Job status constants
const (
	JobStatusActive = "active"
	JobStatusHidden = "hidden"
)

type Job struct {
	ID                 int64     `json:"id"`
	CompanyID          int64     `json:"company_id"`
	Title              string    `json:"title" validate:"required,min=3,max=150"`
	Description        string    `json:"description"`
	City               string    `json:"city" validate:"max=100"`
	Province           string    `json:"province" validate:"max=100"`
	EmploymentType     string    `json:"employment_type" validate:"omitempty,oneof=full_time part_time contract internship freelance"`
	JobLevel           string    `json:"job_level" validate:"job_level"`
	MajorRequired      string    `json:"major_required" validate:"max=150"`
	SkillsRequired     []string  `json:"skills_required" validate:"max=50,dive,max=80"`
	Requirements       []string  `json:"requirements" validate:"max=50,dive,max=500"`
	EducationRequired  string    `json:"education_required" validate:"max=50"`
	ExperienceRequired string    `json:"experience_required" validate:"max=50"`
	SalaryMin          float64   `json:"salary_min" validate:"gte=0"`
	SalaryMax          float64   `json:"salary_max" validate:"omitempty,gtefield=SalaryMin"`
	Status             string    `json:"status"`
	IsFlagged          bool      `json:"is_flagged"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// MatchRequirement exposes the fields used by the match scorer.
func (j Job) MatchRequirement() matching.JobRequirement {
	return matching.JobRequirement{
		SkillsRequired:     j.SkillsRequired,
		MajorRequired:      j.MajorRequired,
		JobLevel:           matching.JobLevel(j.JobLevel),
		Requirements:       j.Requirements,
		EducationRequired:  j.EducationRequired,
		ExperienceRequired: j.ExperienceRequired,
	}
}

func (j Job) MatchLocation() (string, string) {
	return j.City, j.Province
}

// JobWithCompany extends Job with company profile information
type JobWithCompany struct {
	Job
	CompanyName    string  `json:"company_name"`
	CompanyLogoURL *string `json:"company_logo_url"`
	Industry       *string `json:"industry"`
}

// JobFilter narrows the public job listing. Empty fields are ignored.
type JobFilter struct {
	Query          string
	Location       string
	JobLevel       string
	EmploymentType string
}

type JobRepository interface {
	Create(ctx context.Context, job *Job) error
	GetByID(ctx context.Context, id int64) (*Job, error)
	GetPublicByID(ctx context.Context, id int64) (*JobWithCompany, error)
	FetchPublicActiveJobs(ctx context.Context, filter JobFilter, limit, offset int) ([]JobWithCompany, int64, error)
	FetchAllPublicActive(ctx context.Context) ([]JobWithCompany, error)
	FetchByCompanyID(ctx context.Context, companyID int64, limit, offset int) ([]Job, int64, error)
	Update(ctx context.Context, job *Job) error
	Delete(ctx context.Context, id int64) error
}

type JobUsecase interface {
	CreateJob(ctx context.Context, userID string, job *Job) error
	GetPublicJob(ctx context.Context, id int64) (*JobWithCompany, error)
	ListPublicActiveJobs(ctx context.Context, filter JobFilter, page, pageSize int) (*PaginatedResult[JobWithCompany], error)
	ListJobsByEmployer(ctx context.Context, userID string, page, pageSize int) (*PaginatedResult[Job], error)
	UpdateJob(ctx context.Context, userID string, job *Job) error
	DeleteJob(ctx context.Context, userID string, id int64) error
}
