package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port              string
	AppEnv            string
	LogLevel          string
	DBUrl             string
	DBMaxConns        int
	DBMinConns        int
	SupabaseUrl       string
	SupabaseJWTSecret string
	FrontendURL       string
	// Redis/Upstash Configuration
	UpstashRedisURL      string
	UpstashRedisPassword string
	// Rate Limiting Configuration
	RateLimitWindowSeconds   int
	RateLimitGlobalThreshold int
	RateLimitAuthThreshold   int
	// Matching
	RecommendationLimit    int
	RecommendationMinScore int
}

func LoadConfig() (*Config, error) {
	// Load .env file (Hanya efektif di Local, diabaikan di Production jika file tidak ada)
	_ = godotenv.Load()

	cfg := &Config{
		Port:       getEnv("PORT", "8080"),
		AppEnv:     getEnv("APP_ENV", "development"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		DBUrl:      getEnv("DATABASE_URL", ""),
		DBMaxConns: getEnvInt("DB_MAX_CONNS", 25),
		DBMinConns: getEnvInt("DB_MIN_CONNS", 5),
		// Sanitasi: Hapus slash di akhir URL untuk mencegah double slash (misal: .co//auth)
		SupabaseUrl:       strings.TrimRight(getEnv("SUPABASE_URL", ""), "/"),
		SupabaseJWTSecret: getEnv("SUPABASE_JWT_SECRET", getEnv("SUPABASE_JWT_KEY", "")),
		FrontendURL:       strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),
		// Redis/Upstash Configuration
		UpstashRedisURL:      getEnv("UPSTASH_REDIS_URL", ""),
		UpstashRedisPassword: getEnv("UPSTASH_REDIS_PASSWORD", ""),
		// Rate Limiting Configuration
		RateLimitWindowSeconds:   getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),
		RateLimitGlobalThreshold: getEnvInt("RATE_LIMIT_GLOBAL_THRESHOLD", 100),
		RateLimitAuthThreshold:   getEnvInt("RATE_LIMIT_AUTH_THRESHOLD", 10),
		// Matching
		RecommendationLimit:    getEnvInt("RECOMMENDATION_LIMIT", 20),
		RecommendationMinScore: getEnvInt("RECOMMENDATION_MIN_SCORE", 0),
	}

	if cfg.DBMinConns > cfg.DBMaxConns {
		cfg.DBMinConns = cfg.DBMaxConns
	}

	// Validasi dasar untuk mencegah panic aneh nanti
	if cfg.DBUrl == "" {
		log.Println("WARNING: DATABASE_URL is missing. Application may fail to connect.")
	}

	if cfg.UpstashRedisURL == "" {
		log.Println("WARNING: UPSTASH_REDIS_URL not configured. Rate limiting will use in-memory fallback.")
	}

	return cfg, nil
}

// IsProduction reports whether the service runs with APP_ENV=production.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.AppEnv, "production")
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
