package config

import (
	"fmt"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
)

type AppConfig struct {
	DatabaseURL       string        `long:"database-url" env:"DATABASE_URL" description:"Postgres connection string" required:"true"`
	Port              int           `long:"port" env:"PORT" default:"8080" description:"HTTP listen port"`
	LogLevel          string        `long:"log-level" env:"LOG_LEVEL" default:"info" description:"debug, info or warn"`
	ReconcileInterval time.Duration `long:"reconcile-interval" env:"RECONCILE_INTERVAL" default:"5m" description:"counter reconciliation period, 0 disables"`
	AuditLog          bool          `long:"audit-log" env:"AUDIT_LOG" description:"record mutating API requests in the database"`
}

func LoadConfig() (*AppConfig, error) {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	config := &AppConfig{}
	if _, err := flags.Parse(config); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}
	return config, nil
}
