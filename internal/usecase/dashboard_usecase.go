package usecase

import (
	"context"
	"errors"

	"go-jobboard-backend/internal/domain"
)

type dashboardUsecase struct {
	candidateRepo   domain.CandidateRepository
	applicationRepo domain.ApplicationRepository
	matchUC         domain.MatchUsecase
	topN            int
}

// NewDashboardUsecase builds the candidate dashboard; topN bounds the recommendation list.
func NewDashboardUsecase(candidateRepo domain.CandidateRepository, applicationRepo domain.ApplicationRepository, matchUC domain.MatchUsecase, topN int) domain.DashboardUsecase {
	if topN < 1 {
		topN = 5
	}
	return &dashboardUsecase{
		candidateRepo:   candidateRepo,
		applicationRepo: applicationRepo,
		matchUC:         matchUC,
		topN:            topN,
	}
}

func (u *dashboardUsecase) CandidateDashboard(ctx context.Context, userID string) (*domain.CandidateDashboard, error) {
	if err := requireOwner(ctx, userID, "You can only view your own dashboard"); err != nil {
		return nil, err
	}

	profile, err := u.candidateRepo.GetByUserID(ctx, userID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	counts, err := u.applicationRepo.CountByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	recs, err := u.matchUC.Recommendations(ctx, userID, domain.RecommendationQuery{Limit: u.topN})
	if err != nil {
		return nil, err
	}

	return &domain.CandidateDashboard{
		Completeness:    *completenessOf(profile),
		Applications:    *counts,
		Recommendations: recs,
	}, nil
}
