package v1

import (
	"go-jobboard-backend/config"
	"go-jobboard-backend/internal/delivery/http/middleware"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/usecase"
	"go-jobboard-backend/pkg/auth"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AuthUC           domain.AuthUsecase
	JobUC            domain.JobUsecase
	MatchUC          domain.MatchUsecase
	CandidateUC      domain.CandidateUsecase
	ApplicationUC    domain.ApplicationUsecase
	AdminUC          domain.AdminUsecase
	CompanyProfileUC domain.CompanyProfileUsecase
	DashboardUC      domain.DashboardUsecase
	HealthUC         usecase.HealthUsecase
	JWKSProvider     *auth.Provider
	Config           *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.RateLimitMiddleware(middleware.GlobalRateLimitConfig(deps.Config)))
	r.Use(middleware.ErrorHandler())

	v1 := r.Group("/v1")

	NewHealthHandler(v1, deps.HealthUC)

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.JWKSProvider, deps.Config, deps.AuthUC))

	authRoutes := protected.Group("")
	authRoutes.Use(middleware.RateLimitMiddleware(middleware.AuthRateLimitConfig(deps.Config)))
	{
		NewAuthHandler(authRoutes, deps.AuthUC)
	}

	NewJobHandler(v1, protected, deps.JobUC, deps.MatchUC)
	NewCandidateHandler(protected, deps.CandidateUC, deps.DashboardUC)
	NewApplicationHandler(protected, deps.ApplicationUC)
	NewCompanyProfileHandler(v1, protected, deps.CompanyProfileUC)
	NewAdminHandler(protected, deps.AdminUC)

	return r
}
