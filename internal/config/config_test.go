package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"APP_ENV", "DB_DRIVER", "REDIS_ENABLED", "CACHE_TTL", "CORS_ALLOWED_ORIGINS", "APP_PORT"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, "8000", cfg.App.Port)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.True(t, cfg.Database.AutoMigrate)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, 5*time.Minute, cfg.Redis.CacheTTL)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("SQLITE_PATH", "/tmp/test.db")
	t.Setenv("DB_AUTO_MIGRATE", "false")
	t.Setenv("REDIS_ENABLED", "true")
	t.Setenv("CACHE_TTL", "30s")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test,")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "/tmp/test.db", cfg.Database.SQLitePath)
	assert.False(t, cfg.Database.AutoMigrate)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, 30*time.Second, cfg.Redis.CacheTTL)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORS.AllowedOrigins)
}

func TestValidate(t *testing.T) {
	t.Run("unknown driver", func(t *testing.T) {
		t.Setenv("DB_DRIVER", "mysql")
		_, err := Load()
		assert.ErrorContains(t, err, "DB_DRIVER")
	})

	t.Run("production postgres needs password", func(t *testing.T) {
		t.Setenv("APP_ENV", "production")
		t.Setenv("DB_DRIVER", "postgres")
		t.Setenv("DB_PASSWORD", "")
		_, err := Load()
		assert.ErrorContains(t, err, "DB_PASSWORD")
	})

	t.Run("production sqlite is fine", func(t *testing.T) {
		t.Setenv("APP_ENV", "production")
		t.Setenv("DB_DRIVER", "sqlite")
		cfg, err := Load()
		require.NoError(t, err)
		assert.True(t, cfg.IsProduction())
	})
}

func TestLoadDatabaseConfig(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("DB_MAX_CONNS", "10")
	t.Setenv("DB_MIN_CONNS", "2")
	t.Setenv("DB_RETRY_DELAY", "250ms")

	cfg, err := LoadDatabaseConfig()
	require.NoError(t, err)
	assert.Equal(t, "db.internal", cfg.Host)
	assert.Equal(t, 6543, cfg.Port)
	assert.Equal(t, int32(10), cfg.MaxConns)
	assert.Equal(t, int32(2), cfg.MinConns)
	assert.Equal(t, 250*time.Millisecond, cfg.RetryDelay)
	assert.Contains(t, cfg.DSN(), "@db.internal:6543/")

	t.Setenv("DB_PORT", "not-a-port")
	_, err = LoadDatabaseConfig()
	assert.ErrorContains(t, err, "DB_PORT")

	t.Setenv("DB_PORT", "5432")
	t.Setenv("DB_MIN_CONNS", "50")
	_, err = LoadDatabaseConfig()
	assert.ErrorContains(t, err, "DB_MIN_CONNS")
}
