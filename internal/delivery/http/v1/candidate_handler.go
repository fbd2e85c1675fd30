package v1

import (
	"net/http"

	"go-jobboard-backend/internal/delivery/http/middleware"
	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type CandidateHandler struct {
	candidateUC domain.CandidateUsecase
	dashboardUC domain.DashboardUsecase
}

func NewCandidateHandler(r *gin.RouterGroup, candidateUC domain.CandidateUsecase, dashboardUC domain.DashboardUsecase) {
	handler := &CandidateHandler{candidateUC: candidateUC, dashboardUC: dashboardUC}

	candidates := r.Group("/candidates", middleware.RequireRole(domain.RoleCandidate))
	{
		candidates.GET("/me", handler.GetProfile)
		candidates.PUT("/me", handler.UpdateProfile)
		candidates.GET("/me/completeness", handler.GetCompleteness)
		candidates.GET("/me/dashboard", handler.GetDashboard)
	}
}

// UpdateCandidateProfileRequest is the editable part of a candidate profile
type UpdateCandidateProfileRequest struct {
	FullName   string   `json:"full_name"`
	Headline   string   `json:"headline"`
	City       string   `json:"city"`
	Province   string   `json:"province"`
	Major      string   `json:"major"`
	Skills     []string `json:"skills"`
	AvatarURL  string   `json:"avatar_url"`
	Phone      string   `json:"phone"`
	Bio        string   `json:"bio"`
	Experience string   `json:"experience"`
	Education  string   `json:"education"`
}

// GetProfile godoc
// @Summary      Get candidate profile
// @Description  Get the profile of the currently logged-in candidate
// @Tags         candidates
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.CandidateProfile}
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /candidates/me [get]
// @Security     BearerAuth
func (h *CandidateHandler) GetProfile(c *gin.Context) {
	// Pass 'c' directly because Gin Context implements context.Context and contains the Keys
	profile, err := h.candidateUC.GetProfile(c, currentUserID(c))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Candidate profile", profile)
}

// UpdateProfile godoc
// @Summary      Update candidate profile
// @Description  Creates or replaces the profile of the currently logged-in candidate
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        body  body      UpdateCandidateProfileRequest  true  "Profile"
// @Success      200   {object}  response.Response{data=domain.CandidateProfile}
// @Failure      400   {object}  response.Response
// @Failure      422   {object}  response.Response
// @Router       /candidates/me [put]
// @Security     BearerAuth
func (h *CandidateHandler) UpdateProfile(c *gin.Context) {
	var req UpdateCandidateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	profile := &domain.CandidateProfile{
		FullName:   req.FullName,
		Headline:   req.Headline,
		City:       req.City,
		Province:   req.Province,
		Major:      req.Major,
		Skills:     req.Skills,
		AvatarURL:  req.AvatarURL,
		Phone:      req.Phone,
		Bio:        req.Bio,
		Experience: req.Experience,
		Education:  req.Education,
	}
	if err := h.candidateUC.UpdateProfile(c, profile); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile updated", profile)
}

// GetCompleteness godoc
// @Summary      Profile completeness
// @Description  Percentage of the ten profile fields filled in, plus the missing ones
// @Tags         candidates
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.ProfileCompleteness}
// @Router       /candidates/me/completeness [get]
// @Security     BearerAuth
func (h *CandidateHandler) GetCompleteness(c *gin.Context) {
	completeness, err := h.candidateUC.GetCompleteness(c, currentUserID(c))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile completeness", completeness)
}

// GetDashboard godoc
// @Summary      Candidate dashboard
// @Description  Completeness, application counts and the best job matches
// @Tags         candidates
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.CandidateDashboard}
// @Router       /candidates/me/dashboard [get]
// @Security     BearerAuth
func (h *CandidateHandler) GetDashboard(c *gin.Context) {
	dashboard, err := h.dashboardUC.CandidateDashboard(c, currentUserID(c))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Candidate dashboard", dashboard)
}
