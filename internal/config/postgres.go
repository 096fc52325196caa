package config

import (
	"errors"
	"fmt"
)

// ErrHistoryDisabled is returned when no history database is configured
var ErrHistoryDisabled = errors.New("run history database not configured")

// PostgresConfig holds connection settings for the run history database
type PostgresConfig struct {
	User     string
	Password string
	Database string
	Host     string
	Port     string
	SSLMode  string
}

// LoadPostgresConfig loads PostgreSQL configuration from environment variables.
// History is optional: when POSTGRES_HOSTNAME is unset it returns ErrHistoryDisabled.
func LoadPostgresConfig(getenv func(string) string) (*PostgresConfig, error) {
	config := &PostgresConfig{
		User:     getenv("POSTGRES_USER"),
		Password: getenv("POSTGRES_PASSWORD"),
		Database: getenv("POSTGRES_DB"),
		Host:     getenv("POSTGRES_HOSTNAME"),
		Port:     valueOr(getenv("POSTGRES_PORT"), "5432"),
		SSLMode:  valueOr(getenv("POSTGRES_SSLMODE"), "disable"),
	}

	if config.Host == "" {
		return nil, ErrHistoryDisabled
	}
	if config.User == "" {
		return nil, fmt.Errorf("POSTGRES_USER is required")
	}
	if config.Password == "" {
		return nil, fmt.Errorf("POSTGRES_PASSWORD is required")
	}
	if config.Database == "" {
		return nil, fmt.Errorf("POSTGRES_DB is required")
	}

	return config, nil
}

// ConnectionString returns a lib/pq keyword/value connection string
func (c *PostgresConfig) ConnectionString() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode)
}
