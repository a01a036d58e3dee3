package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type ServerConfig struct {
	Port            int
	Env             string
	ShutdownTimeout time.Duration
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type HolidayConfig struct {
	// ProviderURL is the base URL of the public-holiday REST API.
	ProviderURL string
	// Store selects the durable cache backend: "postgres" or "redis".
	Store string
	// RefreshCron is the asynq scheduler spec for the periodic
	// refresh sweep over all cached (country, year) keys.
	RefreshCron string
}

type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

// Config aggregates all service settings, loaded once at startup.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Holiday  HolidayConfig
	Auth     AuthConfig
}

// Load reads configuration from the environment, with a .env file as
// optional local override. Missing keys fall back to sane defaults.
func Load() (*Config, error) {
	// .env is optional; environment variables always win.
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("SERVER_PORT", 7070)
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("SHUTDOWN_TIMEOUT_SECONDS", 10)

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "equimeet")
	v.SetDefault("DB_SSLMODE", "disable")

	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("HOLIDAY_PROVIDER_URL", "https://date.nager.at/api/v3")
	v.SetDefault("HOLIDAY_STORE", "postgres")
	v.SetDefault("HOLIDAY_REFRESH_CRON", "@daily")

	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("TOKEN_TTL_HOURS", 72)

	cfg := &Config{
		Server: ServerConfig{
			Port:            v.GetInt("SERVER_PORT"),
			Env:             v.GetString("APP_ENV"),
			ShutdownTimeout: time.Duration(v.GetInt("SHUTDOWN_TIMEOUT_SECONDS")) * time.Second,
		},
		Database: DatabaseConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetInt("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			DBName:   v.GetString("DB_NAME"),
			SSLMode:  v.GetString("DB_SSLMODE"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("REDIS_ADDR"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Holiday: HolidayConfig{
			ProviderURL: v.GetString("HOLIDAY_PROVIDER_URL"),
			Store:       v.GetString("HOLIDAY_STORE"),
			RefreshCron: v.GetString("HOLIDAY_REFRESH_CRON"),
		},
		Auth: AuthConfig{
			JWTSecret: v.GetString("JWT_SECRET"),
			TokenTTL:  time.Duration(v.GetInt("TOKEN_TTL_HOURS")) * time.Hour,
		},
	}

	if cfg.Auth.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET must be set")
	}
	if cfg.Holiday.Store != "postgres" && cfg.Holiday.Store != "redis" {
		return nil, fmt.Errorf("HOLIDAY_STORE must be postgres or redis, got %q", cfg.Holiday.Store)
	}

	return cfg, nil
}
