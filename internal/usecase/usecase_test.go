package usecase_test

import (
	"context"
	"errors"
	"testing"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/usecase"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/audit"
	"go-jobboard-backend/pkg/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func appCode(t *testing.T, err error) int {
	t.Helper()
	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %v", err)
	return appErr.Code
}

func observedAudit() (*audit.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.InfoLevel)
	return audit.NewWithZap(zap.New(core), "jobboard", "test"), logs
}

func TestCandidateIDOR(t *testing.T) {
	mockRepo := new(MockCandidateRepo)
	uc := usecase.NewCandidateUsecase(mockRepo, validation.New())

	t.Run("Should fail when Context UserID does not match Argument UserID", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), domain.KeyUserID, "user1")
		_, err := uc.GetProfile(ctx, "user2")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "only view your own profile")
	})

	t.Run("Should fail safely when Context UserID is nil", func(t *testing.T) {
		ctx := context.Background() // keys missing
		_, err := uc.GetProfile(ctx, "user1")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "User not authenticated")
	})

	t.Run("Should map a missing profile to 404", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), domain.KeyUserID, "user3")
		mockRepo.On("GetByUserID", ctx, "user3").Return(nil, domain.ErrNotFound).Once()
		_, err := uc.GetProfile(ctx, "user3")
		assert.Equal(t, 404, appCode(t, err))
	})
}

func TestAuthPrivilege(t *testing.T) {
	mockRepo := new(MockUserRepo)
	uc := usecase.NewAuthUsecase(mockRepo, audit.Nop())

	t.Run("Should fail if role is not admin", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), domain.KeyUserRole, "candidate")
		err := uc.AssignRole(ctx, "target_user", "admin")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Only admins can assign roles")
	})

	t.Run("Should fail safe if role is nil", func(t *testing.T) {
		ctx := context.Background()
		err := uc.AssignRole(ctx, "target_user", "admin")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Only admins can assign roles")
	})

	t.Run("Should reject unknown roles", func(t *testing.T) {
		err := uc.AssignRole(userCtx("admin1", "admin"), "target_user", "superuser")
		assert.Equal(t, 400, appCode(t, err))
	})

	mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestAssignRoleIsAudited(t *testing.T) {
	mockRepo := new(MockUserRepo)
	auditLog, logs := observedAudit()
	uc := usecase.NewAuthUsecase(mockRepo, auditLog)
	ctx := userCtx("admin1", "admin")

	mockRepo.On("GetByID", ctx, "u1").Return(&domain.User{ID: "u1", Role: "candidate"}, nil)
	mockRepo.On("Update", ctx, mock.MatchedBy(func(u *domain.User) bool {
		return u.ID == "u1" && u.Role == "employer"
	})).Return(nil)

	require.NoError(t, uc.AssignRole(ctx, "u1", "employer"))

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "role_assigned", fields["action"])
	assert.Equal(t, "admin1", fields["actor_id"])
	assert.Equal(t, "u1", fields["target_id"])
	mockRepo.AssertExpectations(t)
}

func TestEnsureUserExists(t *testing.T) {
	t.Run("Should return the existing user untouched", func(t *testing.T) {
		repo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(repo, audit.Nop())
		existing := &domain.User{ID: "u1", Role: "employer"}
		repo.On("GetByID", mock.Anything, "u1").Return(existing, nil)

		got, err := uc.EnsureUserExists(context.Background(), &domain.User{ID: "u1", Role: "admin"})
		require.NoError(t, err)
		assert.Equal(t, "employer", got.Role)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("Should never self-assign admin", func(t *testing.T) {
		repo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(repo, audit.Nop())
		repo.On("GetByID", mock.Anything, "u2").Return(nil, domain.ErrNotFound)
		repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)

		got, err := uc.EnsureUserExists(context.Background(), &domain.User{ID: "u2", Email: " a@b.co ", Role: "admin"})
		require.NoError(t, err)
		assert.Equal(t, "candidate", got.Role)
		assert.Equal(t, "a@b.co", got.Email)
		assert.False(t, got.CreatedAt.IsZero())
	})

	t.Run("Should keep the employer role on sign-up", func(t *testing.T) {
		repo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(repo, audit.Nop())
		repo.On("GetByID", mock.Anything, "u3").Return(nil, domain.ErrNotFound)
		repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)

		got, err := uc.EnsureUserExists(context.Background(), &domain.User{ID: "u3", Role: "employer"})
		require.NoError(t, err)
		assert.Equal(t, "employer", got.Role)
	})

	t.Run("Should surface storage errors as 500", func(t *testing.T) {
		repo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(repo, audit.Nop())
		repo.On("GetByID", mock.Anything, "u4").Return(nil, errors.New("db down"))

		_, err := uc.EnsureUserExists(context.Background(), &domain.User{ID: "u4"})
		assert.Equal(t, 500, appCode(t, err))
	})
}

func TestCandidateUpdateValidation(t *testing.T) {
	mockRepo := new(MockCandidateRepo)
	uc := usecase.NewCandidateUsecase(mockRepo, validation.New())

	t.Run("Should fail if fields are invalid", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), domain.KeyUserID, "user1")
		profile := &domain.CandidateProfile{Phone: "not-a-phone"}
		err := uc.UpdateProfile(ctx, profile)
		assert.Equal(t, 422, appCode(t, err))
		mockRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	})

	t.Run("Should force UserID from context", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), domain.KeyUserID, "user1")
		profile := &domain.CandidateProfile{
			UserID:   "hacker_try",
			FullName: "Valid Name",
			Skills:   []string{" Go ", "", "go", "SQL"},
		}

		mockRepo.On("Upsert", ctx, mock.AnythingOfType("*domain.CandidateProfile")).Return(nil).Run(func(args mock.Arguments) {
			p := args.Get(1).(*domain.CandidateProfile)
			assert.Equal(t, "user1", p.UserID)
			assert.Equal(t, []string{"Go", "SQL"}, p.Skills)
		})

		require.NoError(t, uc.UpdateProfile(ctx, profile))
		mockRepo.AssertExpectations(t)
	})
}

func TestCandidateCompleteness(t *testing.T) {
	mockRepo := new(MockCandidateRepo)
	uc := usecase.NewCandidateUsecase(mockRepo, validation.New())

	t.Run("Should report 0 when no profile exists", func(t *testing.T) {
		ctx := userCtx("u1", "candidate")
		mockRepo.On("GetByUserID", ctx, "u1").Return(nil, domain.ErrNotFound).Once()

		got, err := uc.GetCompleteness(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, 0, got.Percentage)
		assert.Len(t, got.MissingFields, 10)
	})

	t.Run("Should count filled fields", func(t *testing.T) {
		ctx := userCtx("u2", "candidate")
		mockRepo.On("GetByUserID", ctx, "u2").Return(&domain.CandidateProfile{
			UserID:     "u2",
			FullName:   "Siti",
			Headline:   "Backend Engineer",
			City:       "Jakarta",
			Major:      "Informatika",
			Skills:     []string{"Go"},
			Experience: "3 tahun",
			Education:  "S1",
		}, nil).Once()

		got, err := uc.GetCompleteness(ctx, "u2")
		require.NoError(t, err)
		assert.Equal(t, 70, got.Percentage)
		assert.Equal(t, []string{"avatar", "phone", "bio"}, got.MissingFields)
	})

	t.Run("Should enforce ownership", func(t *testing.T) {
		_, err := uc.GetCompleteness(userCtx("u1", "candidate"), "u2")
		assert.Equal(t, 403, appCode(t, err))
	})
}
