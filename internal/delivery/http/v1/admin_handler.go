package v1

import (
	"net/http"

	"go-jobboard-backend/internal/delivery/http/middleware"
	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	adminUC domain.AdminUsecase
}

func NewAdminHandler(protected *gin.RouterGroup, adminUC domain.AdminUsecase) {
	handler := &AdminHandler{adminUC: adminUC}

	admin := protected.Group("/admin", middleware.RequireRole(domain.RoleAdmin))
	{
		// Dashboard stats
		admin.GET("/stats", handler.GetStats)

		// User management
		admin.GET("/users", handler.ListUsers)
		admin.POST("/users", handler.CreateUser)
		admin.PATCH("/users/:id/disable", handler.DisableUser)

		// Company verification
		admin.GET("/companies", handler.ListCompanies)
		admin.PATCH("/companies/:id/verify", handler.VerifyCompany)

		// Job moderation
		admin.GET("/jobs", handler.ListJobs)
		admin.PATCH("/jobs/:id/hide", handler.HideJob)
		admin.PATCH("/jobs/:id/flag", handler.FlagJob)
	}
}

// GetStats godoc
// @Summary      Get admin dashboard statistics
// @Description  Returns counts for users, companies, jobs, and applications
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=domain.AdminStats}
// @Failure      403  {object}  response.Response
// @Router       /admin/stats [get]
func (h *AdminHandler) GetStats(c *gin.Context) {
	stats, err := h.adminUC.GetStats(c)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Dashboard statistics", stats)
}

// ListUsers godoc
// @Summary      List all users
// @Description  Returns paginated list of users with optional role filter
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        role     query     string  false  "Filter by role (admin, employer, candidate)"
// @Param        page     query     int     false  "Page number"
// @Param        pageSize query     int     false  "Items per page"
// @Success      200      {object}  response.Response
// @Failure      403      {object}  response.Response
// @Router       /admin/users [get]
func (h *AdminHandler) ListUsers(c *gin.Context) {
	page, pageSize := pageParams(c)

	result, err := h.adminUC.ListUsers(c, c.Query("role"), page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Users list", result)
}

// DisableUser godoc
// @Summary      Disable or enable a user
// @Description  Toggles user disabled status
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string  true   "User ID"
// @Param        body     body      object  true   "{ disable: bool }"
// @Success      200      {object}  response.Response
// @Failure      403      {object}  response.Response
// @Router       /admin/users/{id}/disable [patch]
func (h *AdminHandler) DisableUser(c *gin.Context) {
	var body struct {
		Disable bool `json:"disable"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	user, err := h.adminUC.DisableUser(c, c.Param("id"), body.Disable)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "User updated", user)
}

// CreateUser godoc
// @Summary      Create a new user
// @Description  Creates a new user record in the database
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body     body      domain.CreateUserRequest  true   "User details"
// @Success      201      {object}  response.Response
// @Failure      403      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Router       /admin/users [post]
func (h *AdminHandler) CreateUser(c *gin.Context) {
	var req domain.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	user, err := h.adminUC.CreateUser(c, req)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "User created", user)
}

// ListCompanies godoc
// @Summary      List companies
// @Description  Returns paginated companies with optional verification status filter
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        status   query     string  false  "pending, verified or rejected"
// @Param        page     query     int     false  "Page number"
// @Param        pageSize query     int     false  "Items per page"
// @Success      200      {object}  response.Response
// @Router       /admin/companies [get]
func (h *AdminHandler) ListCompanies(c *gin.Context) {
	page, pageSize := pageParams(c)

	result, err := h.adminUC.ListCompanies(c, c.Query("status"), page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Companies list", result)
}

// VerifyCompany godoc
// @Summary      Approve or reject a company
// @Description  Rejection requires a reason
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                          true  "Company ID"
// @Param        body  body      domain.VerifyCompanyRequest  true  "Decision"
// @Success      200   {object}  response.Response{data=domain.AdminCompany}
// @Failure      400   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /admin/companies/{id}/verify [patch]
func (h *AdminHandler) VerifyCompany(c *gin.Context) {
	id, err := pathID(c, "id", "company")
	if err != nil {
		c.Error(err)
		return
	}

	var req domain.VerifyCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	company, err := h.adminUC.VerifyCompany(c, id, req.Action, req.Reason)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Company verification updated", company)
}

// ListJobs godoc
// @Summary      List jobs for moderation
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        status   query     string  false  "active, hidden or flagged"
// @Param        page     query     int     false  "Page number"
// @Param        pageSize query     int     false  "Items per page"
// @Success      200      {object}  response.Response
// @Router       /admin/jobs [get]
func (h *AdminHandler) ListJobs(c *gin.Context) {
	page, pageSize := pageParams(c)

	result, err := h.adminUC.ListJobs(c, c.Query("status"), page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Jobs list", result)
}

func (h *AdminHandler) moderationRequest(c *gin.Context) (int64, *domain.ModerateJobRequest, bool) {
	id, err := pathID(c, "id", "job")
	if err != nil {
		c.Error(err)
		return 0, nil, false
	}

	var req domain.ModerateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return 0, nil, false
	}
	return id, &req, true
}

// HideJob godoc
// @Summary      Hide or unhide a job
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                        true  "Job ID"
// @Param        body  body      domain.ModerateJobRequest  true  "value=true hides the job"
// @Success      200   {object}  response.Response{data=domain.AdminJob}
// @Failure      404   {object}  response.Response
// @Router       /admin/jobs/{id}/hide [patch]
func (h *AdminHandler) HideJob(c *gin.Context) {
	id, req, ok := h.moderationRequest(c)
	if !ok {
		return
	}

	job, err := h.adminUC.HideJob(c, id, req.Value, req.Reason)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job visibility updated", job)
}

// FlagJob godoc
// @Summary      Flag or unflag a job
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                        true  "Job ID"
// @Param        body  body      domain.ModerateJobRequest  true  "value=true flags the job"
// @Success      200   {object}  response.Response{data=domain.AdminJob}
// @Failure      404   {object}  response.Response
// @Router       /admin/jobs/{id}/flag [patch]
func (h *AdminHandler) FlagJob(c *gin.Context) {
	id, req, ok := h.moderationRequest(c)
	if !ok {
		return
	}

	job, err := h.adminUC.FlagJob(c, id, req.Value, req.Reason)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job flag updated", job)
}
