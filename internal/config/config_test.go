package config_test

import (
	"testing"
	"time"

	"go-northwind/internal/config"

	"github.com/stretchr/testify/assert"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("NORTHWIND_DATABASE_HOST", "localhost")
	t.Setenv("NORTHWIND_DATABASE_USER", "northwind")
	t.Setenv("NORTHWIND_DATABASE_PASSWORD", "secret")
	t.Setenv("NORTHWIND_DATABASE_NAME", "northwind")
}

func TestLoad(t *testing.T) {
	t.Run("defaults applied", func(t *testing.T) {
		setRequiredEnv(t)

		cfg, err := config.Load()

		assert.NoError(t, err)
		assert.Equal(t, config.EnvDevelopment, cfg.Primary.Env)
		assert.Equal(t, "localhost", cfg.Database.Host)
		assert.Equal(t, 5432, cfg.Database.Port)
		assert.Equal(t, "disable", cfg.Database.SSLMode)
		assert.Equal(t, 5, cfg.Database.MaxRetries)
		assert.Equal(t, 25, cfg.Database.MaxOpenConns)
		assert.Equal(t, 10, cfg.Database.MaxIdleConns)
		assert.Equal(t, time.Hour, cfg.Database.ConnMaxLifetimeDuration())
	})

	t.Run("overrides from env", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("NORTHWIND_PRIMARY_ENV", "production")
		t.Setenv("NORTHWIND_DATABASE_PORT", "6543")
		t.Setenv("NORTHWIND_DATABASE_SSL_MODE", "require")
		t.Setenv("NORTHWIND_DATABASE_MAX_RETRIES", "2")

		cfg, err := config.Load()

		assert.NoError(t, err)
		assert.Equal(t, config.EnvProduction, cfg.Primary.Env)
		assert.Equal(t, 6543, cfg.Database.Port)
		assert.Equal(t, "require", cfg.Database.SSLMode)
		assert.Equal(t, 2, cfg.Database.MaxRetries)
	})

	t.Run("missing host fails validation", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("NORTHWIND_DATABASE_HOST", "")

		cfg, err := config.Load()

		assert.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "validate config")
	})

	t.Run("unknown env rejected", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("NORTHWIND_PRIMARY_ENV", "staging")

		_, err := config.Load()

		assert.Error(t, err)
	})
}

func TestDatabaseConfig_DSN(t *testing.T) {
	cfg := config.DatabaseConfig{
		Host:     "db",
		Port:     5432,
		User:     "u",
		Password: "p",
		Name:     "northwind",
		SSLMode:  "disable",
	}

	assert.Equal(t, "host=db user=u password=p dbname=northwind port=5432 sslmode=disable", cfg.DSN())
}
