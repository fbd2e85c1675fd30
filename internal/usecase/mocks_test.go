package usecase_test

import (
	"context"

	"go-jobboard-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

func userCtx(userID, role string) context.Context {
	ctx := context.WithValue(context.Background(), domain.KeyUserID, userID)
	ctx = context.WithValue(ctx, domain.KeyUserEmail, userID+"@example.com")
	return context.WithValue(ctx, domain.KeyUserRole, role)
}

// Mock Repositories
type MockCandidateRepo struct {
	mock.Mock
}

func (m *MockCandidateRepo) GetByUserID(ctx context.Context, userID string) (*domain.CandidateProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CandidateProfile), args.Error(1)
}

func (m *MockCandidateRepo) Upsert(ctx context.Context, profile *domain.CandidateProfile) error {
	return m.Called(ctx, profile).Error(0)
}

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}
func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockJobRepo struct {
	mock.Mock
}

func (m *MockJobRepo) Create(ctx context.Context, job *domain.Job) error {
	return m.Called(ctx, job).Error(0)
}
func (m *MockJobRepo) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}
func (m *MockJobRepo) GetPublicByID(ctx context.Context, id int64) (*domain.JobWithCompany, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobWithCompany), args.Error(1)
}
func (m *MockJobRepo) FetchPublicActiveJobs(ctx context.Context, filter domain.JobFilter, limit, offset int) ([]domain.JobWithCompany, int64, error) {
	args := m.Called(ctx, filter, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.JobWithCompany), args.Get(1).(int64), args.Error(2)
}
func (m *MockJobRepo) FetchAllPublicActive(ctx context.Context) ([]domain.JobWithCompany, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JobWithCompany), args.Error(1)
}
func (m *MockJobRepo) FetchByCompanyID(ctx context.Context, companyID int64, limit, offset int) ([]domain.Job, int64, error) {
	args := m.Called(ctx, companyID, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Job), args.Get(1).(int64), args.Error(2)
}
func (m *MockJobRepo) Update(ctx context.Context, job *domain.Job) error {
	return m.Called(ctx, job).Error(0)
}
func (m *MockJobRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockCompanyRepo struct {
	mock.Mock
}

func (m *MockCompanyRepo) GetByUserID(ctx context.Context, userID string) (*domain.CompanyProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CompanyProfile), args.Error(1)
}
func (m *MockCompanyRepo) GetByID(ctx context.Context, id int64) (*domain.CompanyProfile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CompanyProfile), args.Error(1)
}
func (m *MockCompanyRepo) Upsert(ctx context.Context, profile *domain.CompanyProfile) error {
	return m.Called(ctx, profile).Error(0)
}

type MockApplicationRepo struct {
	mock.Mock
}

func (m *MockApplicationRepo) Create(ctx context.Context, app *domain.Application) error {
	return m.Called(ctx, app).Error(0)
}
func (m *MockApplicationRepo) GetByID(ctx context.Context, id int64) (*domain.Application, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) GetByUserID(ctx context.Context, userID string) ([]domain.Application, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) GetApplicantsByJobID(ctx context.Context, jobID int64) ([]domain.Applicant, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Applicant), args.Error(1)
}
func (m *MockApplicationRepo) CheckExists(ctx context.Context, jobID int64, userID string) (bool, error) {
	args := m.Called(ctx, jobID, userID)
	return args.Bool(0), args.Error(1)
}
func (m *MockApplicationRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	return m.Called(ctx, id, status).Error(0)
}
func (m *MockApplicationRepo) CountByUserID(ctx context.Context, userID string) (*domain.ApplicationCounts, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ApplicationCounts), args.Error(1)
}

type MockAdminRepo struct {
	mock.Mock
}

func (m *MockAdminRepo) GetStats(ctx context.Context) (*domain.AdminStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AdminStats), args.Error(1)
}
func (m *MockAdminRepo) ListUsers(ctx context.Context, role string, page, pageSize int) ([]domain.AdminUser, int64, error) {
	args := m.Called(ctx, role, page, pageSize)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.AdminUser), args.Get(1).(int64), args.Error(2)
}
func (m *MockAdminRepo) DisableUser(ctx context.Context, userID string, disable bool) error {
	return m.Called(ctx, userID, disable).Error(0)
}
func (m *MockAdminRepo) CreateUser(ctx context.Context, user domain.AdminUser) error {
	return m.Called(ctx, user).Error(0)
}
func (m *MockAdminRepo) ListCompanies(ctx context.Context, status string, page, pageSize int) ([]domain.AdminCompany, int64, error) {
	args := m.Called(ctx, status, page, pageSize)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.AdminCompany), args.Get(1).(int64), args.Error(2)
}
func (m *MockAdminRepo) VerifyCompany(ctx context.Context, companyID int64, status string, reason string) (*domain.AdminCompany, error) {
	args := m.Called(ctx, companyID, status, reason)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AdminCompany), args.Error(1)
}
func (m *MockAdminRepo) ListJobsForAdmin(ctx context.Context, status string, page, pageSize int) ([]domain.AdminJob, int64, error) {
	args := m.Called(ctx, status, page, pageSize)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.AdminJob), args.Get(1).(int64), args.Error(2)
}
func (m *MockAdminRepo) HideJob(ctx context.Context, jobID int64, hide bool) (*domain.AdminJob, error) {
	args := m.Called(ctx, jobID, hide)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AdminJob), args.Error(1)
}
func (m *MockAdminRepo) FlagJob(ctx context.Context, jobID int64, flag bool) (*domain.AdminJob, error) {
	args := m.Called(ctx, jobID, flag)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AdminJob), args.Error(1)
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
