package usecase

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"strings"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/matching"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/audit"
)

type applicationUsecase struct {
	applicationRepo    domain.ApplicationRepository
	jobRepo            domain.JobRepository
	candidateRepo      domain.CandidateRepository
	companyProfileRepo domain.CompanyProfileRepository
	audit              *audit.Logger
}

// NewApplicationUsecase creates a new application usecase
func NewApplicationUsecase(
	appRepo domain.ApplicationRepository,
	jobRepo domain.JobRepository,
	candidateRepo domain.CandidateRepository,
	companyProfileRepo domain.CompanyProfileRepository,
	auditLog *audit.Logger,
) domain.ApplicationUsecase {
	return &applicationUsecase{
		applicationRepo:    appRepo,
		jobRepo:            jobRepo,
		candidateRepo:      candidateRepo,
		companyProfileRepo: companyProfileRepo,
		audit:              auditLog,
	}
}

// ApplyToJob allows a candidate with a profile to apply to a public job once
func (uc *applicationUsecase) ApplyToJob(ctx context.Context, userID string, jobID int64, coverLetter string) (*domain.Application, error) {
	// 1. Job must be visible to the public
	job, err := uc.jobRepo.GetPublicByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, err
	}

	// 2. Candidate must have a profile
	if _, err := uc.candidateRepo.GetByUserID(ctx, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.Forbidden("Complete your profile before applying")
		}
		return nil, err
	}

	// 3. Check for duplicate application
	exists, err := uc.applicationRepo.CheckExists(ctx, jobID, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if exists {
		return nil, apperror.Conflict("You have already applied to this job")
	}

	var coverLetterPtr *string
	if cl := strings.TrimSpace(coverLetter); cl != "" {
		coverLetterPtr = &cl
	}

	app := &domain.Application{
		JobID:           jobID,
		CandidateUserID: userID,
		CoverLetter:     coverLetterPtr,
		Status:          domain.ApplicationStatusApplied,
		JobTitle:        &job.Title,
		CompanyName:     &job.CompanyName,
	}
	if err := uc.applicationRepo.Create(ctx, app); err != nil {
		return nil, err
	}
	return app, nil
}

// GetMyApplications returns the user's applications with the current match score
func (uc *applicationUsecase) GetMyApplications(ctx context.Context, userID string) ([]domain.MyApplication, error) {
	apps, err := uc.applicationRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile, err := uc.candidateRepo.GetByUserID(ctx, userID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	matchProfile := profile.MatchProfile()

	jobs := make(map[int64]*domain.Job)
	out := make([]domain.MyApplication, 0, len(apps))
	for _, app := range apps {
		job, ok := jobs[app.JobID]
		if !ok {
			job, err = uc.jobRepo.GetByID(ctx, app.JobID)
			if err != nil && !errors.Is(err, domain.ErrNotFound) {
				return nil, err
			}
			jobs[app.JobID] = job
		}

		mine := domain.MyApplication{Application: app}
		if job != nil {
			mine.MatchScore = matching.ScoreJob(matchProfile, job.MatchRequirement())
		}
		out = append(out, mine)
	}
	return out, nil
}

// ownedJob loads a job and checks it belongs to the employer's company
func (uc *applicationUsecase) ownedJob(ctx context.Context, userID string, jobID int64) (*domain.Job, error) {
	job, err := uc.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, err
	}

	company, err := uc.companyProfileRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.Forbidden("You do not have access to this job")
		}
		return nil, err
	}
	if company.ID != job.CompanyID {
		return nil, apperror.Forbidden("You do not have access to this job")
	}
	return job, nil
}

// ListApplicants returns the job's applicants ranked by match score.
// Applicants with equal scores keep the order in which they applied.
func (uc *applicationUsecase) ListApplicants(ctx context.Context, userID string, jobID int64) ([]domain.Applicant, error) {
	job, err := uc.ownedJob(ctx, userID, jobID)
	if err != nil {
		return nil, err
	}

	applicants, err := uc.applicationRepo.GetApplicantsByJobID(ctx, jobID)
	if err != nil {
		return nil, err
	}

	req := job.MatchRequirement()
	for i := range applicants {
		applicants[i].MatchScore = matching.ScoreJob(applicants[i].Candidate.MatchProfile(), req)
	}
	sort.SliceStable(applicants, func(i, j int) bool {
		return applicants[i].MatchScore > applicants[j].MatchScore
	})
	return applicants, nil
}

// canTransition encodes applied → reviewed → accepted / rejected.
// Accepted and rejected are final.
func canTransition(from, to string) bool {
	switch from {
	case domain.ApplicationStatusApplied:
		return to == domain.ApplicationStatusReviewed ||
			to == domain.ApplicationStatusAccepted ||
			to == domain.ApplicationStatusRejected
	case domain.ApplicationStatusReviewed:
		return to == domain.ApplicationStatusAccepted || to == domain.ApplicationStatusRejected
	default:
		return false
	}
}

// UpdateApplicationStatus allows the job owner to move an application forward
func (uc *applicationUsecase) UpdateApplicationStatus(ctx context.Context, userID string, applicationID int64, status string) error {
	validStatuses := map[string]bool{
		domain.ApplicationStatusReviewed: true,
		domain.ApplicationStatusAccepted: true,
		domain.ApplicationStatusRejected: true,
	}
	if !validStatuses[status] {
		return apperror.BadRequest("Invalid status. Must be: reviewed, accepted, or rejected")
	}

	app, err := uc.applicationRepo.GetByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Application not found")
		}
		return err
	}

	if _, err := uc.ownedJob(ctx, userID, app.JobID); err != nil {
		return err
	}

	if !canTransition(app.Status, status) {
		return apperror.BadRequest("Cannot change application status from " + app.Status + " to " + status)
	}

	if err := uc.applicationRepo.UpdateStatus(ctx, applicationID, status); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Application not found")
		}
		return err
	}

	employer := actorFrom(ctx)
	uc.audit.Record(ctx, audit.Event{
		Action:     audit.ActionApplicationStatus,
		ActorID:    userID,
		ActorEmail: employer.Email,
		TargetType: "application",
		TargetID:   strconv.FormatInt(applicationID, 10),
		Details:    map[string]interface{}{"job_id": app.JobID, "from": app.Status, "to": status},
	})
	return nil
}

// ExportApplicants renders the ranked applicant list as xlsx (default) or csv
func (uc *applicationUsecase) ExportApplicants(ctx context.Context, userID string, jobID int64, format string) ([]byte, string, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if format != "" && format != "xlsx" && format != "csv" {
		return nil, "", apperror.BadRequest("Unsupported export format: " + format)
	}

	applicants, err := uc.ListApplicants(ctx, userID, jobID)
	if err != nil {
		return nil, "", err
	}

	if format == "csv" {
		return exportApplicantsCSV(jobID, applicants)
	}
	return exportApplicantsExcel(jobID, applicants)
}
