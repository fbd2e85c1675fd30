package domain

import "context"

// CandidateDashboard summarises a candidate's profile, applications and best matches
type CandidateDashboard struct {
	Completeness    ProfileCompleteness `json:"completeness"`
	Applications    ApplicationCounts   `json:"applications"`
	Recommendations []JobRecommendation `json:"recommendations"`
}

type DashboardUsecase interface {
	CandidateDashboard(ctx context.Context, userID string) (*CandidateDashboard, error)
}
