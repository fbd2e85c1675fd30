package v1

import (
	"net/http"
	"strconv"
	"strings"

	"go-jobboard-backend/internal/delivery/http/middleware"
	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobUC   domain.JobUsecase
	matchUC domain.MatchUsecase
}

func NewJobHandler(public *gin.RouterGroup, protected *gin.RouterGroup, jobUC domain.JobUsecase, matchUC domain.MatchUsecase) {
	handler := &JobHandler{jobUC: jobUC, matchUC: matchUC}

	// PUBLIC routes: only active jobs of verified companies
	publicJobs := public.Group("/jobs")
	{
		publicJobs.GET("/public", handler.PublicList)
		publicJobs.GET("/public/:id", handler.PublicGetDetails)
	}

	candidateJobs := protected.Group("/jobs", middleware.RequireRole(domain.RoleCandidate))
	{
		candidateJobs.GET("/recommendations", handler.Recommendations)
		candidateJobs.GET("/:id/match", handler.Match)
	}

	employerJobs := protected.Group("/jobs", middleware.RequireRole(domain.RoleEmployer))
	{
		employerJobs.POST("", handler.Create)
		employerJobs.PUT("/:id", handler.Update)
		employerJobs.DELETE("/:id", handler.Delete)
	}

	// Employer-specific job routes (only shows employer's own jobs)
	employers := protected.Group("/employers", middleware.RequireRole(domain.RoleEmployer))
	{
		employers.GET("/jobs", handler.ListByEmployer)
	}
}

type JobRequest struct {
	Title              string   `json:"title" binding:"required"`
	Description        string   `json:"description"`
	City               string   `json:"city"`
	Province           string   `json:"province"`
	EmploymentType     string   `json:"employment_type"`
	JobLevel           string   `json:"job_level"`
	MajorRequired      string   `json:"major_required"`
	SkillsRequired     []string `json:"skills_required"`
	Requirements       []string `json:"requirements"`
	EducationRequired  string   `json:"education_required"`
	ExperienceRequired string   `json:"experience_required"`
	SalaryMin          float64  `json:"salary_min"`
	SalaryMax          float64  `json:"salary_max"`
}

func (r JobRequest) toJob() *domain.Job {
	return &domain.Job{
		Title:              strings.TrimSpace(r.Title),
		Description:        r.Description,
		City:               strings.TrimSpace(r.City),
		Province:           strings.TrimSpace(r.Province),
		EmploymentType:     r.EmploymentType,
		JobLevel:           r.JobLevel,
		MajorRequired:      strings.TrimSpace(r.MajorRequired),
		SkillsRequired:     r.SkillsRequired,
		Requirements:       r.Requirements,
		EducationRequired:  strings.TrimSpace(r.EducationRequired),
		ExperienceRequired: strings.TrimSpace(r.ExperienceRequired),
		SalaryMin:          r.SalaryMin,
		SalaryMax:          r.SalaryMax,
	}
}

// Create godoc
// @Summary      Create a new job
// @Description  Create a new job posting (employer with a verified company only)
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        job  body      JobRequest  true  "Job JSON"
// @Success      201  {object}  response.Response{data=domain.Job}
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      422  {object}  response.Response
// @Router       /jobs [post]
// @Security     BearerAuth
func (h *JobHandler) Create(c *gin.Context) {
	var req JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	job := req.toJob()
	if err := h.jobUC.CreateJob(c, currentUserID(c), job); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Job created", job)
}

// Update godoc
// @Summary      Update a job
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id   path      int         true  "Job ID"
// @Param        job  body      JobRequest  true  "Job JSON"
// @Success      200  {object}  response.Response{data=domain.Job}
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [put]
// @Security     BearerAuth
func (h *JobHandler) Update(c *gin.Context) {
	id, err := pathID(c, "id", "job")
	if err != nil {
		c.Error(err)
		return
	}

	var req JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	job := req.toJob()
	job.ID = id
	if err := h.jobUC.UpdateJob(c, currentUserID(c), job); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job updated", job)
}

// Delete godoc
// @Summary      Delete a job
// @Tags         jobs
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [delete]
// @Security     BearerAuth
func (h *JobHandler) Delete(c *gin.Context) {
	id, err := pathID(c, "id", "job")
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.jobUC.DeleteJob(c, currentUserID(c), id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job deleted", nil)
}

// PublicList godoc
// @Summary      List active jobs (public)
// @Description  Active jobs of verified companies, newest first
// @Tags         jobs
// @Produce      json
// @Param        q                query     string  false  "Search in title and description"
// @Param        location         query     string  false  "City or province"
// @Param        job_level        query     string  false  "Entry Level, Mid Level, Senior Level or Executive"
// @Param        employment_type  query     string  false  "full_time, part_time, contract, internship, freelance"
// @Param        page             query     int     false  "Page number"
// @Param        page_size        query     int     false  "Page size"
// @Success      200              {object}  response.Response
// @Router       /jobs/public [get]
func (h *JobHandler) PublicList(c *gin.Context) {
	page, pageSize := pageParams(c)
	filter := domain.JobFilter{
		Query:          strings.TrimSpace(c.Query("q")),
		Location:       strings.TrimSpace(c.Query("location")),
		JobLevel:       strings.TrimSpace(c.Query("job_level")),
		EmploymentType: strings.TrimSpace(c.Query("employment_type")),
	}

	result, err := h.jobUC.ListPublicActiveJobs(c, filter, page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Public job list", result)
}

// PublicGetDetails godoc
// @Summary      Job details (public)
// @Tags         jobs
// @Produce      json
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  response.Response{data=domain.JobWithCompany}
// @Failure      404  {object}  response.Response
// @Router       /jobs/public/{id} [get]
func (h *JobHandler) PublicGetDetails(c *gin.Context) {
	id, err := pathID(c, "id", "job")
	if err != nil {
		c.Error(err)
		return
	}

	job, err := h.jobUC.GetPublicJob(c, id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job details", job)
}

// ListByEmployer godoc
// @Summary      List the employer's jobs
// @Description  Every job of the employer's company, including hidden ones
// @Tags         jobs
// @Produce      json
// @Param        page       query     int  false  "Page number"
// @Param        page_size  query     int  false  "Page size"
// @Success      200        {object}  response.Response
// @Router       /employers/jobs [get]
// @Security     BearerAuth
func (h *JobHandler) ListByEmployer(c *gin.Context) {
	page, pageSize := pageParams(c)

	result, err := h.jobUC.ListJobsByEmployer(c, currentUserID(c), page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Employer job list", result)
}

// Recommendations godoc
// @Summary      Recommended jobs
// @Description  Active jobs ranked by match score for the current candidate
// @Tags         matching
// @Produce      json
// @Param        location   query     string  false  "City or province filter"
// @Param        limit      query     int     false  "Maximum number of jobs (1-100)"
// @Param        min_score  query     int     false  "Minimum match score (0-100)"
// @Success      200        {object}  response.Response{data=[]domain.JobRecommendation}
// @Failure      400        {object}  response.Response
// @Router       /jobs/recommendations [get]
// @Security     BearerAuth
func (h *JobHandler) Recommendations(c *gin.Context) {
	q := domain.RecommendationQuery{Location: strings.TrimSpace(c.Query("location"))}

	if v := c.Query("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit < 1 {
			c.Error(apperror.BadRequest("limit must be a positive integer"))
			return
		}
		q.Limit = limit
	}
	if v := c.Query("min_score"); v != "" {
		minScore, err := strconv.Atoi(v)
		if err != nil || minScore < 0 || minScore > 100 {
			c.Error(apperror.BadRequest("min_score must be between 0 and 100"))
			return
		}
		q.MinScore = &minScore
	}

	recs, err := h.matchUC.Recommendations(c, currentUserID(c), q)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job recommendations", recs)
}

// Match godoc
// @Summary      Match breakdown
// @Description  Score breakdown and inferred requirements of one job for the current candidate
// @Tags         matching
// @Produce      json
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  response.Response{data=domain.JobMatch}
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id}/match [get]
// @Security     BearerAuth
func (h *JobHandler) Match(c *gin.Context) {
	id, err := pathID(c, "id", "job")
	if err != nil {
		c.Error(err)
		return
	}

	match, err := h.matchUC.JobMatch(c, currentUserID(c), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job match", match)
}
