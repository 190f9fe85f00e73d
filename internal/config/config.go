// Package config loads service configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

type HTTPConfig struct {
	Addr string `env:"LAC_HTTP_ADDR" env-default:":8080" validate:"required"`
}

type DatabaseConfig struct {
	Host     string `env:"LAC_PG_HOST" env-default:"localhost" validate:"required"`
	Port     int    `env:"LAC_PG_PORT" env-default:"5432" validate:"gt=0,lt=65536"`
	User     string `env:"LAC_PG_USER" env-default:"shop" validate:"required"`
	Password string `env:"LAC_PG_PASSWORD" env-default:"shop"`
	Database string `env:"LAC_PG_DATABASE" env-default:"shop_dev" validate:"required"`
	SSLMode  string `env:"LAC_PG_SSLMODE" env-default:"disable" validate:"oneof=disable allow prefer require verify-ca verify-full"`
}

type SessionConfig struct {
	Secret string        `env:"SESSION_SECRET" validate:"required,min=16"`
	Secure bool          `env:"SESSION_SECURE" env-default:"false"`
	MaxAge time.Duration `env:"SESSION_MAX_AGE" env-default:"24h" validate:"gt=0"`
}

// LoginAsCustomerConfig mirrors the admin "Login as Customer" settings.
type LoginAsCustomerConfig struct {
	Enabled bool `env:"LOGIN_AS_CUSTOMER_ENABLED" env-default:"true"`

	// StoreManualChoice makes the admin pick the store view instead of using the
	// customer's home store.
	StoreManualChoice bool `env:"LOGIN_AS_CUSTOMER_STORE_MANUAL_CHOICE" env-default:"false"`

	// Expiration bounds how long an issued secret can be redeemed.
	Expiration time.Duration `env:"LOGIN_AS_CUSTOMER_EXPIRATION" env-default:"60s" validate:"gt=0"`

	// SecretKey keys the HMAC used to store secrets at rest.
	SecretKey string `env:"LOGIN_AS_CUSTOMER_SECRET_KEY" validate:"required,min=16"`
}

type AnalyticsConfig struct {
	PostHogProjectKey string `env:"POSTHOG_PROJECT_KEY"`
	PostHogHost       string `env:"POSTHOG_HOST" env-default:"https://app.posthog.com"`
}

type WorkerConfig struct {
	Concurrency   int           `env:"WORKER_CONCURRENCY" env-default:"2" validate:"gt=0"`
	PurgeInterval time.Duration `env:"TOKEN_PURGE_INTERVAL" env-default:"1h" validate:"gt=0"`
}

type Config struct {
	LogLevel        string `env:"LAC_LOG_LEVEL" env-default:"info"`
	HTTP            HTTPConfig
	Database        DatabaseConfig
	Session         SessionConfig
	LoginAsCustomer LoginAsCustomerConfig
	Analytics       AnalyticsConfig
	Worker          WorkerConfig
}

// Load reads the configuration from environment variables and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
