package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-jobboard-backend/config"
	_ "go-jobboard-backend/docs" // Important for Swagger
	v1 "go-jobboard-backend/internal/delivery/http/v1"
	"go-jobboard-backend/internal/repository/postgres"
	"go-jobboard-backend/internal/usecase"
	"go-jobboard-backend/pkg/audit"
	"go-jobboard-backend/pkg/auth"
	"go-jobboard-backend/pkg/database"
	"go-jobboard-backend/pkg/logger"
	"go-jobboard-backend/pkg/redis"
	"go-jobboard-backend/pkg/validation"
)

// @title           Job Board Backend API
// @version         1.0
// @description     Job board with candidate/job matching, applications and admin moderation.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init(cfg.LogLevel)
	logger.Log.Info("Starting job board backend", "port", cfg.Port, "env", cfg.AppEnv)

	ctx := context.Background()

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(ctx, cfg.DBUrl, database.PoolOptions{
		MaxConns: int32(cfg.DBMaxConns),
		MinConns: int32(cfg.DBMinConns),
	})
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (optional, rate limiting falls back to memory)
	var redisCheck func(ctx context.Context) error
	if err := redis.Initialize(ctx, redis.Config{
		URL:      cfg.UpstashRedisURL,
		Password: cfg.UpstashRedisPassword,
	}); err != nil {
		logger.Log.Warn("Redis unavailable, using in-memory rate limiting", "error", err)
	} else {
		redisCheck = redis.HealthCheck
		defer redis.Close()
	}

	// 5. Audit log
	auditLog := audit.New("jobboard-api", cfg.AppEnv)
	defer func() { _ = auditLog.Sync() }()

	// 6. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	jobRepo := postgres.NewJobRepository(dbPool)
	candidateRepo := postgres.NewCandidateRepository(dbPool)
	adminRepo := postgres.NewAdminRepository(dbPool)
	applicationRepo := postgres.NewApplicationRepository(dbPool)
	companyProfileRepo := postgres.NewCompanyProfileRepository(dbPool)

	// 7. Setup UseCases
	validate := validation.New()
	authUC := usecase.NewAuthUsecase(userRepo, auditLog)
	jobUC := usecase.NewJobUsecase(jobRepo, companyProfileRepo, validate)
	matchUC := usecase.NewMatchUsecase(candidateRepo, jobRepo, usecase.MatchDefaults{
		Limit:    cfg.RecommendationLimit,
		MinScore: cfg.RecommendationMinScore,
	})
	candidateUC := usecase.NewCandidateUsecase(candidateRepo, validate)
	adminUC := usecase.NewAdminUsecase(adminRepo, auditLog)
	applicationUC := usecase.NewApplicationUsecase(applicationRepo, jobRepo, candidateRepo, companyProfileRepo, auditLog)
	companyProfileUC := usecase.NewCompanyProfileUsecase(companyProfileRepo, validate)
	dashboardUC := usecase.NewDashboardUsecase(candidateRepo, applicationRepo, matchUC, 5)
	healthUC := usecase.NewHealthUsecase(dbPool, redisCheck)

	// 8. Setup Auth Provider (JWKS)
	jwksURL := cfg.SupabaseUrl + "/auth/v1/.well-known/jwks.json"
	jwksProvider := auth.NewProvider(jwksURL)

	// 9. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:           authUC,
		JobUC:            jobUC,
		MatchUC:          matchUC,
		CandidateUC:      candidateUC,
		ApplicationUC:    applicationUC,
		AdminUC:          adminUC,
		CompanyProfileUC: companyProfileUC,
		DashboardUC:      dashboardUC,
		HealthUC:         healthUC,
		JWKSProvider:     jwksProvider,
		Config:           cfg,
	})

	// 10. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
