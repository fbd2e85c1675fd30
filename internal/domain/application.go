package domain

import (
	"context"
	"time"
)

// Application status constants
const (
	ApplicationStatusApplied  = "applied"
	ApplicationStatusReviewed = "reviewed"
	ApplicationStatusAccepted = "accepted"
	ApplicationStatusRejected = "rejected"
)

// Application represents a job application from a candidate
type Application struct {
	ID              int64     `json:"id"`
	JobID           int64     `json:"job_id"`
	CandidateUserID string    `json:"candidate_user_id"`
	CoverLetter     *string   `json:"cover_letter,omitempty"`
	Status          string    `json:"status"` // applied → reviewed → accepted / rejected
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	// Joined data for list responses
	JobTitle    *string `json:"job_title,omitempty"`
	CompanyName *string `json:"company_name,omitempty"`
}

// MyApplication is a candidate's own application with its current match score
type MyApplication struct {
	Application
	MatchScore int `json:"match_score"`
}

// Applicant is an application joined with the candidate profile, as seen by the employer
type Applicant struct {
	Application
	Candidate  *CandidateProfile `json:"candidate"`
	MatchScore int               `json:"match_score"`
}

type ApplyRequest struct {
	CoverLetter string `json:"cover_letter" binding:"max=3000"`
}

type UpdateApplicationStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=reviewed accepted rejected"`
}

// ApplicationCounts groups a candidate's applications by status
type ApplicationCounts struct {
	Total    int64 `json:"total"`
	Applied  int64 `json:"applied"`
	Reviewed int64 `json:"reviewed"`
	Accepted int64 `json:"accepted"`
	Rejected int64 `json:"rejected"`
}

// ApplicationRepository defines data access methods for applications
type ApplicationRepository interface {
	Create(ctx context.Context, app *Application) error
	GetByID(ctx context.Context, id int64) (*Application, error)
	GetByUserID(ctx context.Context, userID string) ([]Application, error)
	GetApplicantsByJobID(ctx context.Context, jobID int64) ([]Applicant, error)
	CheckExists(ctx context.Context, jobID int64, userID string) (bool, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
	CountByUserID(ctx context.Context, userID string) (*ApplicationCounts, error)
}

// ApplicationUsecase defines business logic for applications
type ApplicationUsecase interface {
	// Candidate operations
	ApplyToJob(ctx context.Context, userID string, jobID int64, coverLetter string) (*Application, error)
	GetMyApplications(ctx context.Context, userID string) ([]MyApplication, error)

	// Employer operations
	ListApplicants(ctx context.Context, userID string, jobID int64) ([]Applicant, error)
	UpdateApplicationStatus(ctx context.Context, userID string, applicationID int64, status string) error
	ExportApplicants(ctx context.Context, userID string, jobID int64, format string) ([]byte, string, error)
}
