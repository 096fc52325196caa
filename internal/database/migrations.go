package database

import (
	"database/sql"
	"fmt"

	"go.uber.org/zap"
)

// Schema is the run history schema. Statements are idempotent.
const Schema = `
CREATE TABLE IF NOT EXISTS runs (
	id UUID PRIMARY KEY,
	base_url VARCHAR(2048) NOT NULL,
	status VARCHAR(20) NOT NULL,
	started_at TIMESTAMPTZ NOT NULL,
	finished_at TIMESTAMPTZ,
	report_path VARCHAR(1024)
);

CREATE INDEX IF NOT EXISTS idx_runs_started_at ON runs(started_at DESC);

CREATE TABLE IF NOT EXISTS case_results (
	run_id UUID NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
	position INTEGER NOT NULL,
	case_id VARCHAR(64) NOT NULL,
	title VARCHAR(255) NOT NULL,
	status VARCHAR(20) NOT NULL,
	started_at TIMESTAMPTZ NOT NULL,
	duration_ms BIGINT NOT NULL,
	steps JSONB NOT NULL DEFAULT '[]',
	error TEXT,
	screenshot VARCHAR(1024),
	PRIMARY KEY (run_id, position)
);

CREATE INDEX IF NOT EXISTS idx_case_results_case_id ON case_results(case_id);
`

// RunMigrations creates the run history tables on the global connection
func RunMigrations(logger *zap.Logger) error {
	if DB == nil {
		return fmt.Errorf("database connection not initialized")
	}
	if err := Migrate(DB); err != nil {
		return err
	}

	logger.Info("database migrations completed")
	return nil
}

// Migrate applies Schema to db
func Migrate(db *sql.DB) error {
	if _, err := db.Exec(Schema); err != nil {
		return fmt.Errorf("failed to create run history tables: %w", err)
	}
	return nil
}
