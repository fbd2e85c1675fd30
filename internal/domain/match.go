package domain

import (
	"context"

	"go-jobboard-backend/internal/matching"
)

// JobRecommendation is one entry of the candidate's ranked job feed
type JobRecommendation struct {
	Job                JobWithCompany `json:"job"`
	MatchScore         int            `json:"match_score"`
	RequiredEducation  string         `json:"required_education"`
	RequiredExperience string         `json:"required_experience"`
}

// JobMatch explains the score of a single job for the current candidate
type JobMatch struct {
	JobID              int64              `json:"job_id"`
	MatchScore         int                `json:"match_score"`
	RequiredEducation  string             `json:"required_education"`
	RequiredExperience string             `json:"required_experience"`
	Breakdown          matching.Breakdown `json:"breakdown"`
}

// RecommendationQuery holds the optional parameters of a recommendation request.
// Zero Limit and nil MinScore fall back to the configured defaults.
type RecommendationQuery struct {
	Location string
	Limit    int
	MinScore *int
}

type MatchUsecase interface {
	Recommendations(ctx context.Context, userID string, q RecommendationQuery) ([]JobRecommendation, error)
	JobMatch(ctx context.Context, userID string, jobID int64) (*JobMatch, error)
}
