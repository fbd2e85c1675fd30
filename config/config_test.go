package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("Should apply defaults when env is empty", func(t *testing.T) {
		t.Setenv("RECOMMENDATION_LIMIT", "")
		t.Setenv("FRONTEND_URL", "https://kerja.example.id/")

		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, 20, cfg.RecommendationLimit, "invalid ints fall back")
		assert.Equal(t, "https://kerja.example.id", cfg.FrontendURL)
	})

	t.Run("Should read matching settings", func(t *testing.T) {
		t.Setenv("RECOMMENDATION_LIMIT", "5")
		t.Setenv("RECOMMENDATION_MIN_SCORE", "60")
		t.Setenv("APP_ENV", "Production")

		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, 5, cfg.RecommendationLimit)
		assert.Equal(t, 60, cfg.RecommendationMinScore)
		assert.True(t, cfg.IsProduction())
	})

	t.Run("Should clamp min connections to max", func(t *testing.T) {
		t.Setenv("DB_MAX_CONNS", "4")
		t.Setenv("DB_MIN_CONNS", "10")

		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, 4, cfg.DBMinConns)
	})
}
