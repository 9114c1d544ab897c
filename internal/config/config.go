// Package config loads runtime settings from the environment.
//
// A `.env` file, when present, is loaded first. Variables carrying the
// NORTHWIND_ prefix are then mapped into Config, defaults are applied and the
// result is validated.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "NORTHWIND_"

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Primary  Primary        `koanf:"primary" validate:"required"`
	Database DatabaseConfig `koanf:"database" validate:"required"`
}

type Primary struct {
	Env string `koanf:"env" validate:"required,oneof=development production"`
}

// DatabaseConfig holds the PostgreSQL connection parameters and pool tuning.
// ConnMaxLifetime is in seconds.
type DatabaseConfig struct {
	Host            string `koanf:"host" validate:"required"`
	Port            int    `koanf:"port" validate:"required,min=1,max=65535"`
	User            string `koanf:"user" validate:"required"`
	Password        string `koanf:"password"`
	Name            string `koanf:"name" validate:"required"`
	SSLMode         string `koanf:"ssl_mode" validate:"required,oneof=disable allow prefer require verify-ca verify-full"`
	MaxRetries      int    `koanf:"max_retries" validate:"min=1"`
	MaxOpenConns    int    `koanf:"max_open_conns" validate:"min=1"`
	MaxIdleConns    int    `koanf:"max_idle_conns" validate:"min=0"`
	ConnMaxLifetime int    `koanf:"conn_max_lifetime" validate:"min=0"`
}

// DSN builds a libpq key/value connection string.
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%d sslmode=%s",
		c.Host, c.User, c.Password, c.Name, c.Port, c.SSLMode,
	)
}

func (c DatabaseConfig) ConnMaxLifetimeDuration() time.Duration {
	return time.Duration(c.ConnMaxLifetime) * time.Second
}

// Load reads .env (if any) and the process environment into a validated Config.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return loadFromEnv()
}

func loadFromEnv() (*Config, error) {
	k := koanf.New(".")

	// NORTHWIND_DATABASE_SSL_MODE -> database.ssl_mode
	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, envPrefix))
		return strings.Replace(key, "_", ".", 1)
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	cfg := defaultConfig()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Primary: Primary{Env: EnvDevelopment},
		Database: DatabaseConfig{
			Port:            5432,
			SSLMode:         "disable",
			MaxRetries:      5,
			MaxOpenConns:    25,
			MaxIdleConns:    10,
			ConnMaxLifetime: int(time.Hour / time.Second),
		},
	}
}
