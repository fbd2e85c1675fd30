package usecase_test

import (
	"context"
	"errors"
	"testing"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/usecase"
	"go-jobboard-backend/pkg/audit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAdminRequiresAdminRole(t *testing.T) {
	repo := new(MockAdminRepo)
	uc := usecase.NewAdminUsecase(repo, audit.Nop())
	ctx := userCtx("emp1", "employer")

	_, err := uc.GetStats(ctx)
	assert.Equal(t, 403, appCode(t, err))
	_, err = uc.ListUsers(ctx, "", 1, 10)
	assert.Equal(t, 403, appCode(t, err))
	_, err = uc.VerifyCompany(ctx, 1, "approve", "")
	assert.Equal(t, 403, appCode(t, err))
	_, err = uc.HideJob(context.Background(), 1, true, "")
	assert.Equal(t, 403, appCode(t, err))

	repo.AssertExpectations(t)
}

func TestAdminListUsers(t *testing.T) {
	ctx := userCtx("admin1", "admin")

	t.Run("Should reject an unknown role filter", func(t *testing.T) {
		uc := usecase.NewAdminUsecase(new(MockAdminRepo), audit.Nop())
		_, err := uc.ListUsers(ctx, "superuser", 1, 10)
		assert.Equal(t, 400, appCode(t, err))
	})

	t.Run("Should paginate with defaults", func(t *testing.T) {
		repo := new(MockAdminRepo)
		uc := usecase.NewAdminUsecase(repo, audit.Nop())
		repo.On("ListUsers", ctx, "candidate", 1, 10).Return([]domain.AdminUser{{ID: "u1"}}, int64(21), nil)

		got, err := uc.ListUsers(ctx, "candidate", 0, 500)
		require.NoError(t, err)
		assert.Equal(t, 3, got.TotalPages)
		assert.Len(t, got.Data, 1)
	})
}

func TestAdminDisableUser(t *testing.T) {
	ctx := userCtx("admin1", "admin")

	t.Run("Should not disable itself", func(t *testing.T) {
		repo := new(MockAdminRepo)
		uc := usecase.NewAdminUsecase(repo, audit.Nop())
		_, err := uc.DisableUser(ctx, "admin1", true)
		assert.Equal(t, 400, appCode(t, err))
		repo.AssertNotCalled(t, "DisableUser", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should map a missing user to 404", func(t *testing.T) {
		repo := new(MockAdminRepo)
		uc := usecase.NewAdminUsecase(repo, audit.Nop())
		repo.On("DisableUser", ctx, "u9", true).Return(domain.ErrNotFound)

		_, err := uc.DisableUser(ctx, "u9", true)
		assert.Equal(t, 404, appCode(t, err))
	})
}

func TestAdminVerifyCompany(t *testing.T) {
	ctx := userCtx("admin1", "admin")

	t.Run("Should require a rejection reason", func(t *testing.T) {
		repo := new(MockAdminRepo)
		auditLog, logs := observedAudit()
		uc := usecase.NewAdminUsecase(repo, auditLog)

		_, err := uc.VerifyCompany(ctx, 4, "reject", "   ")
		assert.Equal(t, 400, appCode(t, err))
		repo.AssertNotCalled(t, "VerifyCompany", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		assert.Equal(t, 0, logs.Len())
	})

	t.Run("Should reject unknown actions", func(t *testing.T) {
		uc := usecase.NewAdminUsecase(new(MockAdminRepo), audit.Nop())
		_, err := uc.VerifyCompany(ctx, 4, "ban", "")
		assert.Equal(t, 400, appCode(t, err))
	})

	t.Run("Should approve and audit", func(t *testing.T) {
		repo := new(MockAdminRepo)
		auditLog, logs := observedAudit()
		uc := usecase.NewAdminUsecase(repo, auditLog)
		repo.On("VerifyCompany", ctx, int64(4), "verified", "").Return(&domain.AdminCompany{
			ID: 4, VerificationStatus: "verified",
		}, nil)

		got, err := uc.VerifyCompany(ctx, 4, "approve", "ignored")
		require.NoError(t, err)
		assert.Equal(t, "verified", got.VerificationStatus)

		require.Equal(t, 1, logs.Len())
		fields := logs.All()[0].ContextMap()
		assert.Equal(t, "company_approved", fields["action"])
		assert.Equal(t, "company", fields["target_type"])
		assert.Equal(t, "4", fields["target_id"])
		assert.Equal(t, audit.HashValue("admin1@example.com"), fields["actor_email_hash"])
	})

	t.Run("Should reject with a reason", func(t *testing.T) {
		repo := new(MockAdminRepo)
		uc := usecase.NewAdminUsecase(repo, audit.Nop())
		repo.On("VerifyCompany", ctx, int64(4), "rejected", "Fake documents").Return(&domain.AdminCompany{
			ID: 4, VerificationStatus: "rejected", RejectionReason: "Fake documents",
		}, nil)

		got, err := uc.VerifyCompany(ctx, 4, "reject", " Fake documents ")
		require.NoError(t, err)
		assert.Equal(t, "Fake documents", got.RejectionReason)
	})

	t.Run("Should map a missing company to 404", func(t *testing.T) {
		repo := new(MockAdminRepo)
		uc := usecase.NewAdminUsecase(repo, audit.Nop())
		repo.On("VerifyCompany", ctx, int64(5), "verified", "").Return(nil, domain.ErrNotFound)

		_, err := uc.VerifyCompany(ctx, 5, "approve", "")
		assert.Equal(t, 404, appCode(t, err))
	})
}

func TestAdminModerateJobs(t *testing.T) {
	ctx := userCtx("admin1", "admin")

	t.Run("Should hide and audit", func(t *testing.T) {
		repo := new(MockAdminRepo)
		auditLog, logs := observedAudit()
		uc := usecase.NewAdminUsecase(repo, auditLog)
		repo.On("HideJob", ctx, int64(2), true).Return(&domain.AdminJob{ID: 2, Status: "hidden"}, nil)

		got, err := uc.HideJob(ctx, 2, true, "spam")
		require.NoError(t, err)
		assert.Equal(t, "hidden", got.Status)

		require.Equal(t, 1, logs.Len())
		assert.Equal(t, "job_hidden", logs.All()[0].ContextMap()["action"])
	})

	t.Run("Should unflag", func(t *testing.T) {
		repo := new(MockAdminRepo)
		auditLog, logs := observedAudit()
		uc := usecase.NewAdminUsecase(repo, auditLog)
		repo.On("FlagJob", ctx, int64(2), false).Return(&domain.AdminJob{ID: 2}, nil)

		_, err := uc.FlagJob(ctx, 2, false, "")
		require.NoError(t, err)
		assert.Equal(t, "job_unflagged", logs.All()[0].ContextMap()["action"])
	})

	t.Run("Should surface storage failures as 500", func(t *testing.T) {
		repo := new(MockAdminRepo)
		uc := usecase.NewAdminUsecase(repo, audit.Nop())
		repo.On("FlagJob", ctx, int64(2), true).Return(nil, errors.New("timeout"))

		_, err := uc.FlagJob(ctx, 2, true, "")
		assert.Equal(t, 500, appCode(t, err))
	})

	t.Run("Should reject an unknown status filter", func(t *testing.T) {
		uc := usecase.NewAdminUsecase(new(MockAdminRepo), audit.Nop())
		_, err := uc.ListJobs(ctx, "deleted", 1, 10)
		assert.Equal(t, 400, appCode(t, err))
	})
}
