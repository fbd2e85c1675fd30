package usecase_test

import (
	"context"
	"errors"
	"testing"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCandidateDashboard(t *testing.T) {
	ctx := userCtx("cand1", "candidate")

	candidateRepo := new(MockCandidateRepo)
	appRepo := new(MockApplicationRepo)
	matchUC := new(MockMatchUsecase)
	uc := usecase.NewDashboardUsecase(candidateRepo, appRepo, matchUC, 3)

	candidateRepo.On("GetByUserID", ctx, "cand1").Return(&domain.CandidateProfile{
		FullName: "Siti", City: "Jakarta",
	}, nil)
	appRepo.On("CountByUserID", ctx, "cand1").Return(&domain.ApplicationCounts{Total: 4, Applied: 3, Rejected: 1}, nil)
	matchUC.On("Recommendations", ctx, "cand1", domain.RecommendationQuery{Limit: 3}).Return([]domain.JobRecommendation{
		{Job: domain.JobWithCompany{Job: domain.Job{ID: 1}}, MatchScore: 90},
	}, nil)

	got, err := uc.CandidateDashboard(ctx, "cand1")
	require.NoError(t, err)
	assert.Equal(t, 20, got.Completeness.Percentage)
	assert.Equal(t, int64(4), got.Applications.Total)
	require.Len(t, got.Recommendations, 1)
	assert.Equal(t, 90, got.Recommendations[0].MatchScore)

	_, err = uc.CandidateDashboard(ctx, "cand2")
	assert.Equal(t, 403, appCode(t, err))
}

type fakePinger struct{ err error }

func (p fakePinger) Ping(ctx context.Context) error { return p.err }

func TestHealthCheck(t *testing.T) {
	t.Run("Should report ok without redis", func(t *testing.T) {
		got := usecase.NewHealthUsecase(fakePinger{}, nil).Check(context.Background())
		assert.Equal(t, "ok", got["status"])
		assert.Equal(t, "disabled", got["redis"])
	})

	t.Run("Should degrade when the database is down", func(t *testing.T) {
		redisOK := func(ctx context.Context) error { return nil }
		got := usecase.NewHealthUsecase(fakePinger{err: errors.New("refused")}, redisOK).Check(context.Background())
		assert.Equal(t, "degraded", got["status"])
		assert.Equal(t, "down", got["database"])
		assert.Equal(t, "ok", got["redis"])
	})

	t.Run("Should report redis failures without degrading", func(t *testing.T) {
		redisDown := func(ctx context.Context) error { return errors.New("timeout") }
		got := usecase.NewHealthUsecase(fakePinger{}, redisDown).Check(context.Background())
		assert.Equal(t, "ok", got["status"])
		assert.Equal(t, "down", got["redis"])
	})
}
