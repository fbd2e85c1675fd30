package usecase

import (
	"context"
	"errors"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/matching"
	"go-jobboard-backend/pkg/apperror"
)

const maxRecommendationLimit = 100

// MatchDefaults are the recommendation parameters used when a request omits them.
type MatchDefaults struct {
	Limit    int
	MinScore int
}

type matchUsecase struct {
	candidateRepo domain.CandidateRepository
	jobRepo       domain.JobRepository
	defaults      MatchDefaults
}

func NewMatchUsecase(candidateRepo domain.CandidateRepository, jobRepo domain.JobRepository, defaults MatchDefaults) domain.MatchUsecase {
	if defaults.Limit < 1 || defaults.Limit > maxRecommendationLimit {
		defaults.Limit = 20
	}
	defaults.MinScore = clampScore(defaults.MinScore)
	return &matchUsecase{
		candidateRepo: candidateRepo,
		jobRepo:       jobRepo,
		defaults:      defaults,
	}
}

func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// matchProfile loads the candidate's scoring fields. A missing profile
// scores as an empty one.
func (u *matchUsecase) matchProfile(ctx context.Context, userID string) (matching.CandidateProfile, error) {
	profile, err := u.candidateRepo.GetByUserID(ctx, userID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return matching.CandidateProfile{}, err
	}
	return profile.MatchProfile(), nil
}

// Recommendations ranks every public job for the candidate. Scores are
// computed on each call and never stored.
func (u *matchUsecase) Recommendations(ctx context.Context, userID string, q domain.RecommendationQuery) ([]domain.JobRecommendation, error) {
	if err := requireOwner(ctx, userID, "You can only view your own recommendations"); err != nil {
		return nil, err
	}

	limit := q.Limit
	if limit < 1 {
		limit = u.defaults.Limit
	}
	if limit > maxRecommendationLimit {
		limit = maxRecommendationLimit
	}
	minScore := u.defaults.MinScore
	if q.MinScore != nil {
		minScore = clampScore(*q.MinScore)
	}

	profile, err := u.matchProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	jobs, err := u.jobRepo.FetchAllPublicActive(ctx)
	if err != nil {
		return nil, err
	}

	ranked := matching.Rank(profile, jobs, q.Location)

	out := make([]domain.JobRecommendation, 0, limit)
	for _, r := range ranked {
		if len(out) == limit {
			break
		}
		// Sorted descending, nothing after this passes either
		if r.Score < minScore {
			break
		}
		out = append(out, domain.JobRecommendation{
			Job:                r.Job,
			MatchScore:         r.Score,
			RequiredEducation:  r.RequiredEducation,
			RequiredExperience: r.RequiredExperience,
		})
	}
	return out, nil
}

// JobMatch explains the score of one public job for the candidate.
func (u *matchUsecase) JobMatch(ctx context.Context, userID string, jobID int64) (*domain.JobMatch, error) {
	if err := requireOwner(ctx, userID, "You can only view your own match"); err != nil {
		return nil, err
	}

	job, err := u.jobRepo.GetPublicByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, err
	}

	profile, err := u.matchProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	in := matching.NewMatchInput(profile, job.MatchRequirement())
	breakdown := matching.Evaluate(in)

	return &domain.JobMatch{
		JobID:              job.ID,
		MatchScore:         breakdown.Total,
		RequiredEducation:  in.RequiredEducation,
		RequiredExperience: in.RequiredExperience,
		Breakdown:          breakdown,
	}, nil
}
