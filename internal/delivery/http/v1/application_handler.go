package v1

import (
	"net/http"
	"strings"

	"go-jobboard-backend/internal/delivery/http/middleware"
	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	applicationUC domain.ApplicationUsecase
}

// NewApplicationHandler registers application routes
func NewApplicationHandler(r *gin.RouterGroup, applicationUC domain.ApplicationUsecase) {
	handler := &ApplicationHandler{applicationUC: applicationUC}

	// Candidate routes
	candidates := r.Group("/candidates", middleware.RequireRole(domain.RoleCandidate))
	{
		candidates.POST("/jobs/:jobId/apply", handler.ApplyToJob)
		candidates.GET("/applications", handler.GetMyApplications)
	}

	// Employer routes
	employers := r.Group("/employers", middleware.RequireRole(domain.RoleEmployer))
	{
		employers.GET("/jobs/:jobId/applications", handler.ListJobApplications)
		employers.GET("/jobs/:jobId/applications/export", handler.ExportJobApplications)
		employers.PATCH("/applications/:id", handler.UpdateApplicationStatus)
	}
}

// ApplyToJob godoc
// @Summary      Apply to a job
// @Description  Submit an application for an active job (candidate with a profile only)
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        jobId  path      int                 true  "Job ID"
// @Param        body   body      domain.ApplyRequest  false "Application data"
// @Success      201    {object}  response.Response{data=domain.Application}
// @Failure      403    {object}  response.Response
// @Failure      404    {object}  response.Response
// @Failure      409    {object}  response.Response
// @Router       /candidates/jobs/{jobId}/apply [post]
// @Security     BearerAuth
func (h *ApplicationHandler) ApplyToJob(c *gin.Context) {
	jobID, err := pathID(c, "jobId", "job")
	if err != nil {
		c.Error(err)
		return
	}

	// The body is optional
	var req domain.ApplyRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.Error(apperror.BadRequest(err.Error()))
			return
		}
	}

	app, err := h.applicationUC.ApplyToJob(c, currentUserID(c), jobID, req.CoverLetter)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Application submitted successfully", app)
}

// GetMyApplications godoc
// @Summary      My applications
// @Description  The candidate's applications with the current match score
// @Tags         applications
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.MyApplication}
// @Router       /candidates/applications [get]
// @Security     BearerAuth
func (h *ApplicationHandler) GetMyApplications(c *gin.Context) {
	apps, err := h.applicationUC.GetMyApplications(c, currentUserID(c))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "My applications", apps)
}

// ListJobApplications godoc
// @Summary      Ranked applicants
// @Description  Applicants of an owned job, best match first
// @Tags         applications
// @Produce      json
// @Param        jobId  path      int  true  "Job ID"
// @Success      200    {object}  response.Response{data=[]domain.Applicant}
// @Failure      403    {object}  response.Response
// @Router       /employers/jobs/{jobId}/applications [get]
// @Security     BearerAuth
func (h *ApplicationHandler) ListJobApplications(c *gin.Context) {
	jobID, err := pathID(c, "jobId", "job")
	if err != nil {
		c.Error(err)
		return
	}

	applicants, err := h.applicationUC.ListApplicants(c, currentUserID(c), jobID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job applicants", applicants)
}

// ExportJobApplications godoc
// @Summary      Export ranked applicants
// @Description  Downloads the ranked applicant list as xlsx (default) or csv
// @Tags         applications
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Produce      text/csv
// @Param        jobId   path      int     true   "Job ID"
// @Param        format  query     string  false  "xlsx or csv"
// @Success      200
// @Failure      400     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Router       /employers/jobs/{jobId}/applications/export [get]
// @Security     BearerAuth
func (h *ApplicationHandler) ExportJobApplications(c *gin.Context) {
	jobID, err := pathID(c, "jobId", "job")
	if err != nil {
		c.Error(err)
		return
	}

	format := strings.ToLower(c.DefaultQuery("format", "xlsx"))
	data, filename, err := h.applicationUC.ExportApplicants(c, currentUserID(c), jobID, format)
	if err != nil {
		c.Error(err)
		return
	}

	contentType := "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	if format == "csv" {
		contentType = "text/csv; charset=utf-8"
	}
	response.Attachment(c, filename, contentType, data)
}

// UpdateApplicationStatus godoc
// @Summary      Update application status
// @Description  applied → reviewed → accepted or rejected (job owner only)
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id    path      int                                    true  "Application ID"
// @Param        body  body      domain.UpdateApplicationStatusRequest  true  "New status"
// @Success      200   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Router       /employers/applications/{id} [patch]
// @Security     BearerAuth
func (h *ApplicationHandler) UpdateApplicationStatus(c *gin.Context) {
	id, err := pathID(c, "id", "application")
	if err != nil {
		c.Error(err)
		return
	}

	var req domain.UpdateApplicationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.applicationUC.UpdateApplicationStatus(c, currentUserID(c), id, req.Status); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Application status updated", gin.H{"id": id, "status": req.Status})
}
