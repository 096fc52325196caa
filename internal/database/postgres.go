package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/automationexercise/storefront-e2e/internal/config"
	_ "github.com/lib/pq"
)

var DB *sql.DB

// Connect opens the run history database and verifies it is reachable
func Connect(pgConfig *config.PostgresConfig) error {
	if pgConfig == nil {
		return config.ErrHistoryDisabled
	}

	db, err := Open(pgConfig.ConnectionString())
	if err != nil {
		return err
	}

	DB = db
	return nil
}

// Open connects to connStr with the suite's pool settings
func Open(connStr string) (*sql.DB, error) {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// A suite run writes sequentially; the report server reads a handful at a time
	db.SetMaxOpenConns(5)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// Close closes the database connection
func Close() error {
	if DB != nil {
		err := DB.Close()
		DB = nil
		return err
	}
	return nil
}
