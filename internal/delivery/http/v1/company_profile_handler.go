package v1

import (
	"net/http"

	"go-jobboard-backend/internal/delivery/http/middleware"
	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// CompanyProfileHandler handles company profile HTTP requests
type CompanyProfileHandler struct {
	profileUC domain.CompanyProfileUsecase
}

// NewCompanyProfileHandler registers company profile routes
func NewCompanyProfileHandler(public *gin.RouterGroup, protected *gin.RouterGroup, profileUC domain.CompanyProfileUsecase) {
	handler := &CompanyProfileHandler{profileUC: profileUC}

	// Public route - view verified company profiles
	public.GET("/companies/:id", handler.GetPublicProfile)

	employers := protected.Group("/employers", middleware.RequireRole(domain.RoleEmployer))
	{
		employers.GET("/profile", handler.GetProfile)
		employers.PUT("/profile", handler.UpdateProfile)
	}
}

// UpdateCompanyProfileRequest is the editable part of a company profile
type UpdateCompanyProfileRequest struct {
	CompanyName string  `json:"company_name" binding:"required"`
	LogoURL     *string `json:"logo_url"`
	Location    *string `json:"location"`
	Website     *string `json:"website"`
	Industry    *string `json:"industry"`
	Description *string `json:"description"`
}

// GetProfile godoc
// @Summary      Get employer's company profile
// @Description  Returns the company profile, or an empty pending one for new employers
// @Tags         company
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.CompanyProfile}
// @Router       /employers/profile [get]
// @Security     BearerAuth
func (h *CompanyProfileHandler) GetProfile(c *gin.Context) {
	profile, err := h.profileUC.GetEmployerProfile(c, currentUserID(c))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Company profile", profile)
}

// UpdateProfile godoc
// @Summary      Update employer's company profile
// @Description  Creates or updates the company profile. A rejected profile goes back to pending review.
// @Tags         company
// @Accept       json
// @Produce      json
// @Param        body  body      UpdateCompanyProfileRequest  true  "Company profile"
// @Success      200   {object}  response.Response{data=domain.CompanyProfile}
// @Failure      400   {object}  response.Response
// @Failure      422   {object}  response.Response
// @Router       /employers/profile [put]
// @Security     BearerAuth
func (h *CompanyProfileHandler) UpdateProfile(c *gin.Context) {
	var req UpdateCompanyProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	profile, err := h.profileUC.UpdateEmployerProfile(c, currentUserID(c), &domain.CompanyProfile{
		CompanyName: req.CompanyName,
		LogoURL:     req.LogoURL,
		Location:    req.Location,
		Website:     req.Website,
		Industry:    req.Industry,
		Description: req.Description,
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Company profile updated", profile)
}

// GetPublicProfile godoc
// @Summary      Public company profile
// @Description  Verified companies only
// @Tags         company
// @Produce      json
// @Param        id   path      int  true  "Company ID"
// @Success      200  {object}  response.Response{data=domain.PublicCompanyProfile}
// @Failure      404  {object}  response.Response
// @Router       /companies/{id} [get]
func (h *CompanyProfileHandler) GetPublicProfile(c *gin.Context) {
	id, err := pathID(c, "id", "company")
	if err != nil {
		c.Error(err)
		return
	}

	profile, err := h.profileUC.GetPublicProfile(c, id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Company profile", profile)
}
