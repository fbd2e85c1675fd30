package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"go-jobboard-backend/config"
	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/pkg/logger"
	"go-jobboard-backend/pkg/redis"

	"github.com/gin-gonic/gin"
)

// RateLimitConfig holds configuration for rate limiting
type RateLimitConfig struct {
	// Requests per window
	Limit int
	// Time window duration
	Window time.Duration
	// Custom key extractor (default: IP-based)
	KeyFunc func(*gin.Context) string
	// Key prefix for Redis
	KeyPrefix string
	// Whether to fail closed (reject) when Redis is unavailable
	FailClosed bool
}

// rateLimitEntry tracks request count for a key (in-memory fallback)
type rateLimitEntry struct {
	count   int
	resetAt time.Time
	// removed is set under mu once the entry has been swept from the map
	removed bool
	mu      sync.Mutex
}

// memoryStore is the fixed-window fallback used when Redis is unavailable.
type memoryStore struct {
	entries     sync.Map
	cleanupOnce sync.Once
}

func (s *memoryStore) startCleanup(interval time.Duration) {
	s.cleanupOnce.Do(func() {
		go func() {
			ticker := time.NewTicker(interval)
			defer ticker.Stop()
			for now := range ticker.C {
				s.sweep(now)
			}
		}()
	})
}

// sweep drops entries whose window ended before now.
func (s *memoryStore) sweep(now time.Time) {
	s.entries.Range(func(key, value interface{}) bool {
		entry := value.(*rateLimitEntry)
		entry.mu.Lock()
		if now.After(entry.resetAt) {
			entry.removed = true
			s.entries.CompareAndDelete(key, entry)
		}
		entry.mu.Unlock()
		return true
	})
}

func (s *memoryStore) increment(key string, window time.Duration, now time.Time) (int, time.Time) {
	for {
		entryI, _ := s.entries.LoadOrStore(key, &rateLimitEntry{resetAt: now.Add(window)})
		entry := entryI.(*rateLimitEntry)

		entry.mu.Lock()
		if entry.removed {
			// Swept between load and lock; count on the replacement.
			entry.mu.Unlock()
			continue
		}

		// Reset if window expired
		if now.After(entry.resetAt) {
			entry.count = 0
			entry.resetAt = now.Add(window)
		}
		entry.count++
		count, resetAt := entry.count, entry.resetAt
		entry.mu.Unlock()
		return count, resetAt
	}
}

func clientIPKey(c *gin.Context) string {
	return c.ClientIP()
}

// GlobalRateLimitConfig is the per-IP limit applied to every route.
func GlobalRateLimitConfig(cfg *config.Config) RateLimitConfig {
	return RateLimitConfig{
		Limit:     cfg.RateLimitGlobalThreshold,
		Window:    time.Duration(cfg.RateLimitWindowSeconds) * time.Second,
		KeyPrefix: "rl:ip:",
		KeyFunc:   clientIPKey,
	}
}

// AuthRateLimitConfig is the stricter limit for the auth routes.
func AuthRateLimitConfig(cfg *config.Config) RateLimitConfig {
	return RateLimitConfig{
		Limit:      cfg.RateLimitAuthThreshold,
		Window:     time.Duration(cfg.RateLimitWindowSeconds) * time.Second,
		KeyPrefix:  "rl:auth:",
		FailClosed: true,
		KeyFunc:    clientIPKey,
	}
}

// RateLimitMiddleware enforces a fixed window per key. It counts in Redis
// when the client is configured and in process memory otherwise.
func RateLimitMiddleware(cfg RateLimitConfig) gin.HandlerFunc {
	if cfg.Limit < 1 {
		cfg.Limit = 100
	}
	if cfg.Window <= 0 {
		cfg.Window = time.Minute
	}
	if cfg.KeyFunc == nil {
		cfg.KeyFunc = clientIPKey
	}

	store := &memoryStore{}
	store.startCleanup(5 * time.Minute)

	return func(c *gin.Context) {
		fullKey := cfg.KeyPrefix + cfg.KeyFunc(c)

		var count int
		var resetAt time.Time

		if client := redis.Client(); client != nil {
			var err error
			count, resetAt, err = redis.IncrementWindow(c.Request.Context(), client, fullKey, cfg.Window)
			if err != nil {
				logger.Log.Warn("rate limit redis error", "key_prefix", cfg.KeyPrefix, "error", err)
				if cfg.FailClosed {
					response.Error(c, http.StatusServiceUnavailable, "Service temporarily unavailable. Please try again.", nil)
					c.Abort()
					return
				}
				count, resetAt = store.increment(fullKey, cfg.Window, time.Now())
			}
		} else {
			count, resetAt = store.increment(fullKey, cfg.Window, time.Now())
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(cfg.Limit))
		c.Header("X-RateLimit-Reset", resetAt.Format(time.RFC3339))

		if count > cfg.Limit {
			retryAfter := int(time.Until(resetAt).Seconds())
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("X-RateLimit-Remaining", "0")
			c.Header("Retry-After", strconv.Itoa(retryAfter))

			logger.Log.Info("rate limit triggered",
				"ip", c.ClientIP(),
				"path", c.FullPath(),
				"request_id", c.GetString("RequestID"),
			)
			response.Error(c, http.StatusTooManyRequests, "Rate limit exceeded. Please try again later.", nil)
			c.Abort()
			return
		}

		c.Header("X-RateLimit-Remaining", strconv.Itoa(cfg.Limit-count))
		c.Next()
	}
}
