package config_test

import (
	"testing"

	"github.com/shopcloud/backend/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("it should apply defaults", func(t *testing.T) {
		cfg, err := config.LoadConfig()

		require.NoError(t, err)
		assert.Equal(t, "local", cfg.AppEnv)
		assert.Equal(t, 8080, cfg.Port)
		assert.Equal(t, "shop.domain-events", cfg.Events.Channel)
		assert.True(t, cfg.IsLocal())
	})

	t.Run("it should read the environment", func(t *testing.T) {
		t.Setenv("APP_ENV", "production")
		t.Setenv("PORT", "9090")
		t.Setenv("DB_DSN", "postgres://u:p@db:5432/shop")
		t.Setenv("REDIS_ADDR", "redis:6379")
		t.Setenv("EVENTS_CHANNEL", "events")

		cfg, err := config.LoadConfig()

		require.NoError(t, err)
		assert.Equal(t, 9090, cfg.Port)
		assert.Equal(t, "postgres://u:p@db:5432/shop", cfg.DB.DSN)
		assert.Equal(t, "redis:6379", cfg.Redis.Addr)
		assert.Equal(t, "events", cfg.Events.Channel)
		assert.False(t, cfg.IsLocal())
	})

	t.Run("it should reject malformed values", func(t *testing.T) {
		t.Setenv("PORT", "not-a-port")

		_, err := config.LoadConfig()

		assert.Error(t, err)
	})
}
