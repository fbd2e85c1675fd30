package domain_test

import (
	"testing"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/matching"

	"github.com/stretchr/testify/assert"
)

func TestNewPaginatedResult(t *testing.T) {
	got := domain.NewPaginatedResult[domain.AdminUser](nil, 0, 1, 10)
	assert.NotNil(t, got.Data)
	assert.Equal(t, 0, got.TotalPages)

	got = domain.NewPaginatedResult([]domain.AdminUser{{ID: "a"}}, 21, 3, 10)
	assert.Equal(t, 3, got.TotalPages)
	assert.Equal(t, int64(21), got.Total)

	got = domain.NewPaginatedResult([]domain.AdminUser{}, 20, 1, 10)
	assert.Equal(t, 2, got.TotalPages)
}

func TestJobMatchRequirement(t *testing.T) {
	job := domain.Job{
		SkillsRequired:     []string{"Go"},
		MajorRequired:      "Informatika",
		JobLevel:           "Mid Level",
		Requirements:       []string{"Minimal S1"},
		EducationRequired:  "D3",
		ExperienceRequired: "",
		City:               "Bandung",
		Province:           "Jawa Barat",
	}

	req := job.MatchRequirement()
	assert.Equal(t, matching.LevelMid, req.JobLevel)
	assert.Equal(t, "D3", matching.RequiredEducation(req))
	assert.Equal(t, "2-4 tahun", matching.RequiredExperience(req))

	city, province := job.MatchLocation()
	assert.Equal(t, "Bandung", city)
	assert.Equal(t, "Jawa Barat", province)
}

func TestNilCandidateProfile(t *testing.T) {
	var p *domain.CandidateProfile
	assert.Empty(t, p.MatchProfile().Skills)
	assert.Equal(t, 0, matching.Completeness(p.CompletenessFields()))

	var c *domain.CompanyProfile
	assert.False(t, c.IsVerified())
}
