package usecase

import (
	"context"
	"time"
)

// Pinger is satisfied by *pgxpool.Pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthUsecase interface {
	Check(ctx context.Context) map[string]string
}

type healthUsecase struct {
	db    Pinger
	redis func(ctx context.Context) error
}

// NewHealthUsecase checks the database and, when redisCheck is non-nil, Redis.
func NewHealthUsecase(db Pinger, redisCheck func(ctx context.Context) error) HealthUsecase {
	return &healthUsecase{db: db, redis: redisCheck}
}

func (u *healthUsecase) Check(ctx context.Context) map[string]string {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	result := map[string]string{
		"status":   "ok",
		"database": "ok",
		"redis":    "disabled",
	}

	if u.db == nil || u.db.Ping(ctx) != nil {
		result["database"] = "down"
		result["status"] = "degraded"
	}

	// Redis only backs rate limiting, which falls back to memory
	if u.redis != nil {
		if err := u.redis(ctx); err != nil {
			result["redis"] = "down"
		} else {
			result["redis"] = "ok"
		}
	}

	return result
}
