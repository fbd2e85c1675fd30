package usecase

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/audit"

	"github.com/google/uuid"
)

type adminUsecase struct {
	adminRepo domain.AdminRepository
	audit     *audit.Logger
}

func NewAdminUsecase(adminRepo domain.AdminRepository, auditLog *audit.Logger) domain.AdminUsecase {
	return &adminUsecase{adminRepo: adminRepo, audit: auditLog}
}

// GetStats returns dashboard statistics
func (u *adminUsecase) GetStats(ctx context.Context) (*domain.AdminStats, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	stats, err := u.adminRepo.GetStats(ctx)
	if err != nil {
		return nil, apperror.Internal(errors.New("Failed to fetch statistics: " + err.Error()))
	}
	return stats, nil
}

// ListUsers returns paginated users
func (u *adminUsecase) ListUsers(ctx context.Context, role string, page, pageSize int) (*domain.PaginatedResult[domain.AdminUser], error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, err
	}
	switch role {
	case "", domain.RoleCandidate, domain.RoleEmployer, domain.RoleAdmin:
	default:
		return nil, apperror.BadRequest("Invalid role filter")
	}

	page, pageSize = normalizePage(page, pageSize)
	users, total, err := u.adminRepo.ListUsers(ctx, role, page, pageSize)
	if err != nil {
		return nil, apperror.Internal(errors.New("Failed to fetch users: " + err.Error()))
	}
	return domain.NewPaginatedResult(users, total, page, pageSize), nil
}

// DisableUser enables or disables a user
func (u *adminUsecase) DisableUser(ctx context.Context, userID string, disable bool) (*domain.AdminUser, error) {
	admin, err := requireAdmin(ctx)
	if err != nil {
		return nil, err
	}
	if userID == "" {
		return nil, apperror.BadRequest("User ID is required")
	}
	if userID == admin.ID && disable {
		return nil, apperror.BadRequest("You cannot disable your own account")
	}

	if err := u.adminRepo.DisableUser(ctx, userID, disable); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, apperror.Internal(errors.New("Failed to update user: " + err.Error()))
	}
	return &domain.AdminUser{ID: userID, IsDisabled: disable, UpdatedAt: time.Now().Format(time.RFC3339)}, nil
}

// CreateUser creates a new user (DB only)
func (u *adminUsecase) CreateUser(ctx context.Context, req domain.CreateUserRequest) (*domain.AdminUser, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	now := time.Now().Format(time.RFC3339)
	user := domain.AdminUser{
		ID:        uuid.NewString(),
		Email:     strings.TrimSpace(req.Email),
		Role:      req.Role,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := u.adminRepo.CreateUser(ctx, user); err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			return nil, appErr
		}
		return nil, apperror.Internal(errors.New("Failed to create user: " + err.Error()))
	}
	return &user, nil
}

// ListCompanies returns paginated companies
func (u *adminUsecase) ListCompanies(ctx context.Context, status string, page, pageSize int) (*domain.PaginatedResult[domain.AdminCompany], error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, err
	}
	switch status {
	case "", domain.VerificationStatusPending, domain.VerificationStatusVerified, domain.VerificationStatusRejected:
	default:
		return nil, apperror.BadRequest("Invalid status filter")
	}

	page, pageSize = normalizePage(page, pageSize)
	companies, total, err := u.adminRepo.ListCompanies(ctx, status, page, pageSize)
	if err != nil {
		return nil, apperror.Internal(errors.New("Failed to fetch companies: " + err.Error()))
	}
	return domain.NewPaginatedResult(companies, total, page, pageSize), nil
}

// VerifyCompany approves or rejects a company. Rejection requires a reason.
func (u *adminUsecase) VerifyCompany(ctx context.Context, companyID int64, action string, reason string) (*domain.AdminCompany, error) {
	admin, err := requireAdmin(ctx)
	if err != nil {
		return nil, err
	}

	reason = strings.TrimSpace(reason)
	var status string
	var event audit.Action
	switch action {
	case "approve":
		status, event = domain.VerificationStatusVerified, audit.ActionCompanyApproved
		reason = ""
	case "reject":
		if reason == "" {
			return nil, apperror.BadRequest("Rejection reason is required")
		}
		status, event = domain.VerificationStatusRejected, audit.ActionCompanyRejected
	default:
		return nil, apperror.BadRequest("Action must be 'approve' or 'reject'")
	}

	company, err := u.adminRepo.VerifyCompany(ctx, companyID, status, reason)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Company not found")
		}
		return nil, apperror.Internal(errors.New("Failed to verify company: " + err.Error()))
	}

	details := map[string]interface{}{"status": status}
	if reason != "" {
		details["reason"] = reason
	}
	u.audit.Record(ctx, audit.Event{
		Action:     event,
		ActorID:    admin.ID,
		ActorEmail: admin.Email,
		TargetType: "company",
		TargetID:   strconv.FormatInt(companyID, 10),
		Details:    details,
	})
	return company, nil
}

// ListJobs returns paginated jobs for moderation
func (u *adminUsecase) ListJobs(ctx context.Context, status string, page, pageSize int) (*domain.PaginatedResult[domain.AdminJob], error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, err
	}
	switch status {
	case "", domain.JobStatusActive, domain.JobStatusHidden, "flagged":
	default:
		return nil, apperror.BadRequest("Invalid status filter")
	}

	page, pageSize = normalizePage(page, pageSize)
	jobs, total, err := u.adminRepo.ListJobsForAdmin(ctx, status, page, pageSize)
	if err != nil {
		return nil, apperror.Internal(errors.New("Failed to fetch jobs: " + err.Error()))
	}
	return domain.NewPaginatedResult(jobs, total, page, pageSize), nil
}

// HideJob hides or unhides a job
func (u *adminUsecase) HideJob(ctx context.Context, jobID int64, hide bool, reason string) (*domain.AdminJob, error) {
	admin, err := requireAdmin(ctx)
	if err != nil {
		return nil, err
	}

	job, err := u.adminRepo.HideJob(ctx, jobID, hide)
	if err != nil {
		return nil, moderationError(err)
	}

	event := audit.ActionJobUnhidden
	if hide {
		event = audit.ActionJobHidden
	}
	u.recordJob(ctx, admin, event, jobID, reason)
	return job, nil
}

// FlagJob flags or unflags a job
func (u *adminUsecase) FlagJob(ctx context.Context, jobID int64, flag bool, reason string) (*domain.AdminJob, error) {
	admin, err := requireAdmin(ctx)
	if err != nil {
		return nil, err
	}

	job, err := u.adminRepo.FlagJob(ctx, jobID, flag)
	if err != nil {
		return nil, moderationError(err)
	}

	event := audit.ActionJobUnflagged
	if flag {
		event = audit.ActionJobFlagged
	}
	u.recordJob(ctx, admin, event, jobID, reason)
	return job, nil
}

func moderationError(err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return apperror.NotFound("Job not found")
	}
	return apperror.Internal(errors.New("Failed to update job: " + err.Error()))
}

func (u *adminUsecase) recordJob(ctx context.Context, admin actor, event audit.Action, jobID int64, reason string) {
	var details map[string]interface{}
	if r := strings.TrimSpace(reason); r != "" {
		details = map[string]interface{}{"reason": r}
	}
	u.audit.Record(ctx, audit.Event{
		Action:     event,
		ActorID:    admin.ID,
		ActorEmail: admin.Email,
		TargetType: "job",
		TargetID:   strconv.FormatInt(jobID, 10),
		Details:    details,
	})
}
