package v1_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-jobboard-backend/internal/delivery/http/middleware"
	v1 "go-jobboard-backend/internal/delivery/http/v1"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// --- Mocks ---

type MockJobUsecase struct {
	mock.Mock
}

func (m *MockJobUsecase) CreateJob(ctx context.Context, userID string, job *domain.Job) error {
	return m.Called(ctx, userID, job).Error(0)
}
func (m *MockJobUsecase) GetPublicJob(ctx context.Context, id int64) (*domain.JobWithCompany, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobWithCompany), args.Error(1)
}
func (m *MockJobUsecase) ListPublicActiveJobs(ctx context.Context, filter domain.JobFilter, page, pageSize int) (*domain.PaginatedResult[domain.JobWithCompany], error) {
	args := m.Called(ctx, filter, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaginatedResult[domain.JobWithCompany]), args.Error(1)
}
func (m *MockJobUsecase) ListJobsByEmployer(ctx context.Context, userID string, page, pageSize int) (*domain.PaginatedResult[domain.Job], error) {
	args := m.Called(ctx, userID, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaginatedResult[domain.Job]), args.Error(1)
}
func (m *MockJobUsecase) UpdateJob(ctx context.Context, userID string, job *domain.Job) error {
	return m.Called(ctx, userID, job).Error(0)
}
func (m *MockJobUsecase) DeleteJob(ctx context.Context, userID string, id int64) error {
	return m.Called(ctx, userID, id).Error(0)
}

type MockMatchUsecase struct {
	mock.Mock
}

func (m *MockMatchUsecase) Recommendations(ctx context.Context, userID string, q domain.RecommendationQuery) ([]domain.JobRecommendation, error) {
	args := m.Called(ctx, userID, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JobRecommendation), args.Error(1)
}
func (m *MockMatchUsecase) JobMatch(ctx context.Context, userID string, jobID int64) (*domain.JobMatch, error) {
	args := m.Called(ctx, userID, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobMatch), args.Error(1)
}

type MockApplicationUsecase struct {
	mock.Mock
}

func (m *MockApplicationUsecase) ApplyToJob(ctx context.Context, userID string, jobID int64, coverLetter string) (*domain.Application, error) {
	args := m.Called(ctx, userID, jobID, coverLetter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}
func (m *MockApplicationUsecase) GetMyApplications(ctx context.Context, userID string) ([]domain.MyApplication, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MyApplication), args.Error(1)
}
func (m *MockApplicationUsecase) ListApplicants(ctx context.Context, userID string, jobID int64) ([]domain.Applicant, error) {
	args := m.Called(ctx, userID, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Applicant), args.Error(1)
}
func (m *MockApplicationUsecase) UpdateApplicationStatus(ctx context.Context, userID string, applicationID int64, status string) error {
	return m.Called(ctx, userID, applicationID, status).Error(0)
}
func (m *MockApplicationUsecase) ExportApplicants(ctx context.Context, userID string, jobID int64, format string) ([]byte, string, error) {
	args := m.Called(ctx, userID, jobID, format)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).([]byte), args.String(1), args.Error(2)
}

type fakeHealth struct {
	result map[string]string
}

func (f fakeHealth) Check(ctx context.Context) map[string]string {
	return f.result
}

// --- Helpers ---

// newTestRouter mounts handlers behind a stub that authenticates every
// request as the given user.
func newTestRouter(userID, role string, mount func(public, protected *gin.RouterGroup)) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.ErrorHandler())

	public := r.Group("/v1")
	protected := r.Group("/v1", func(c *gin.Context) {
		c.Set(string(domain.KeyUserID), userID)
		c.Set(string(domain.KeyUserRole), role)
		c.Next()
	})
	mount(public, protected)
	return r
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func message(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Message
}

// --- Tests ---

func TestJobHandler(t *testing.T) {
	mountJobs := func(jobUC domain.JobUsecase, matchUC domain.MatchUsecase) func(public, protected *gin.RouterGroup) {
		return func(public, protected *gin.RouterGroup) {
			v1.NewJobHandler(public, protected, jobUC, matchUC)
		}
	}

	t.Run("Should pass public filters and paging to the usecase", func(t *testing.T) {
		jobUC := new(MockJobUsecase)
		filter := domain.JobFilter{Query: "golang", Location: "Jakarta", JobLevel: "Mid Level"}
		jobUC.On("ListPublicActiveJobs", mock.Anything, filter, 2, 5).
			Return(domain.NewPaginatedResult([]domain.JobWithCompany{}, 0, 2, 5), nil)

		r := newTestRouter("", "", mountJobs(jobUC, new(MockMatchUsecase)))
		w := do(r, http.MethodGet, "/v1/jobs/public?q=golang&location=%20Jakarta&job_level=Mid+Level&page=2&page_size=5", "")

		assert.Equal(t, http.StatusOK, w.Code)
		jobUC.AssertExpectations(t)
	})

	t.Run("Should reject a non numeric job id", func(t *testing.T) {
		r := newTestRouter("", "", mountJobs(new(MockJobUsecase), new(MockMatchUsecase)))
		w := do(r, http.MethodGet, "/v1/jobs/public/abc", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid job ID", message(t, w))
	})

	t.Run("Should validate recommendation parameters", func(t *testing.T) {
		r := newTestRouter("cand-1", domain.RoleCandidate, mountJobs(new(MockJobUsecase), new(MockMatchUsecase)))

		assert.Equal(t, http.StatusBadRequest, do(r, http.MethodGet, "/v1/jobs/recommendations?limit=0", "").Code)
		assert.Equal(t, http.StatusBadRequest, do(r, http.MethodGet, "/v1/jobs/recommendations?min_score=101", "").Code)
	})

	t.Run("Should forward recommendation parameters", func(t *testing.T) {
		matchUC := new(MockMatchUsecase)
		matchUC.On("Recommendations", mock.Anything, "cand-1", mock.MatchedBy(func(q domain.RecommendationQuery) bool {
			return q.Location == "Bandung" && q.Limit == 3 && q.MinScore != nil && *q.MinScore == 60
		})).Return([]domain.JobRecommendation{{MatchScore: 88}}, nil)

		r := newTestRouter("cand-1", domain.RoleCandidate, mountJobs(new(MockJobUsecase), matchUC))
		w := do(r, http.MethodGet, "/v1/jobs/recommendations?location=Bandung&limit=3&min_score=60", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"match_score":88`)
		matchUC.AssertExpectations(t)
	})

	t.Run("Should keep employers out of candidate routes", func(t *testing.T) {
		r := newTestRouter("emp-1", domain.RoleEmployer, mountJobs(new(MockJobUsecase), new(MockMatchUsecase)))
		assert.Equal(t, http.StatusForbidden, do(r, http.MethodGet, "/v1/jobs/7/match", "").Code)
	})

	t.Run("Should surface usecase errors", func(t *testing.T) {
		jobUC := new(MockJobUsecase)
		jobUC.On("CreateJob", mock.Anything, "emp-1", mock.AnythingOfType("*domain.Job")).
			Return(apperror.Forbidden("Company is not verified"))

		r := newTestRouter("emp-1", domain.RoleEmployer, mountJobs(jobUC, new(MockMatchUsecase)))
		w := do(r, http.MethodPost, "/v1/jobs", `{"title":"Backend Engineer"}`)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, "Company is not verified", message(t, w))
	})

	t.Run("Should require a title", func(t *testing.T) {
		r := newTestRouter("emp-1", domain.RoleEmployer, mountJobs(new(MockJobUsecase), new(MockMatchUsecase)))
		assert.Equal(t, http.StatusBadRequest, do(r, http.MethodPost, "/v1/jobs", `{"city":"Jakarta"}`).Code)
	})
}

func TestApplicationHandler(t *testing.T) {
	mountApps := func(appUC domain.ApplicationUsecase) func(public, protected *gin.RouterGroup) {
		return func(public, protected *gin.RouterGroup) {
			v1.NewApplicationHandler(protected, appUC)
		}
	}

	t.Run("Should apply without a body", func(t *testing.T) {
		appUC := new(MockApplicationUsecase)
		appUC.On("ApplyToJob", mock.Anything, "cand-1", int64(9), "").
			Return(&domain.Application{ID: 1, JobID: 9}, nil)

		r := newTestRouter("cand-1", domain.RoleCandidate, mountApps(appUC))
		w := do(r, http.MethodPost, "/v1/candidates/jobs/9/apply", "")

		assert.Equal(t, http.StatusCreated, w.Code)
		appUC.AssertExpectations(t)
	})

	t.Run("Should stream the export as an attachment", func(t *testing.T) {
		appUC := new(MockApplicationUsecase)
		appUC.On("ExportApplicants", mock.Anything, "emp-1", int64(4), "csv").
			Return([]byte("rank,name\n1,Budi\n"), "applicants-job-4.csv", nil)

		r := newTestRouter("emp-1", domain.RoleEmployer, mountApps(appUC))
		w := do(r, http.MethodGet, "/v1/employers/jobs/4/applications/export?format=CSV", "")

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, `attachment; filename="applicants-job-4.csv"`, w.Header().Get("Content-Disposition"))
		assert.Equal(t, "text/csv; charset=utf-8", w.Header().Get("Content-Type"))
		assert.Equal(t, "rank,name\n1,Budi\n", w.Body.String())
	})

	t.Run("Should report export errors as json", func(t *testing.T) {
		appUC := new(MockApplicationUsecase)
		appUC.On("ExportApplicants", mock.Anything, "emp-1", int64(4), "pdf").
			Return(nil, "", apperror.BadRequest("Unsupported export format"))

		r := newTestRouter("emp-1", domain.RoleEmployer, mountApps(appUC))
		w := do(r, http.MethodGet, "/v1/employers/jobs/4/applications/export?format=pdf", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Unsupported export format", message(t, w))
	})

	t.Run("Should require a status when updating", func(t *testing.T) {
		r := newTestRouter("emp-1", domain.RoleEmployer, mountApps(new(MockApplicationUsecase)))
		assert.Equal(t, http.StatusBadRequest, do(r, http.MethodPatch, "/v1/employers/applications/3", `{}`).Code)
	})
}

func TestHealthHandler(t *testing.T) {
	mountHealth := func(result map[string]string) func(public, protected *gin.RouterGroup) {
		return func(public, protected *gin.RouterGroup) {
			v1.NewHealthHandler(public, fakeHealth{result: result})
		}
	}

	ok := newTestRouter("", "", mountHealth(map[string]string{"status": "ok", "database": "ok", "redis": "disabled"}))
	assert.Equal(t, http.StatusOK, do(ok, http.MethodGet, "/v1/health", "").Code)

	degraded := newTestRouter("", "", mountHealth(map[string]string{"status": "degraded", "database": "down", "redis": "disabled"}))
	w := do(degraded, http.MethodGet, "/v1/health", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), `"database":"down"`)
}
