package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/automationexercise/storefront-e2e/internal/database"
	"github.com/automationexercise/storefront-e2e/internal/models"
	"github.com/google/uuid"
)

// ErrRunNotFound is returned when no run matches the requested id
var ErrRunNotFound = errors.New("run not found")

// RunRepository handles database operations for suite runs
type RunRepository struct {
	db *sql.DB
}

// NewRunRepository creates a run repository on the global connection
func NewRunRepository() *RunRepository {
	return &RunRepository{
		db: database.DB,
	}
}

// NewRunRepositoryWithDB creates a run repository with a specific database connection
func NewRunRepositoryWithDB(db *sql.DB) *RunRepository {
	return &RunRepository{
		db: db,
	}
}

// CreateRun inserts a run that has just started
func (r *RunRepository) CreateRun(ctx context.Context, run *models.Run) error {
	query := `
		INSERT INTO runs (id, base_url, status, started_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.ExecContext(ctx, query, run.ID, run.BaseURL, run.Status, run.StartedAt)
	if err != nil {
		return fmt.Errorf("failed to create run: %w", err)
	}

	return nil
}

// SaveCaseResult stores the case at position within the run
func (r *RunRepository) SaveCaseResult(ctx context.Context, runID string, position int, result models.CaseResult) error {
	steps, err := json.Marshal(stepsOrEmpty(result.Steps))
	if err != nil {
		return fmt.Errorf("failed to encode steps: %w", err)
	}

	query := `
		INSERT INTO case_results (run_id, position, case_id, title, status, started_at, duration_ms, steps, error, screenshot)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NULLIF($9, ''), NULLIF($10, ''))
	`

	_, err = r.db.ExecContext(ctx, query,
		runID,
		position,
		result.CaseID,
		result.Title,
		result.Status,
		result.StartedAt,
		result.Duration.Milliseconds(),
		steps,
		result.Error,
		result.Screenshot,
	)
	if err != nil {
		return fmt.Errorf("failed to save case %s: %w", result.CaseID, err)
	}

	return nil
}

// FinishRun records the final status, finish time and report path of a run
func (r *RunRepository) FinishRun(ctx context.Context, run *models.Run) error {
	query := `
		UPDATE runs
		SET status = $1, finished_at = $2, report_path = NULLIF($3, '')
		WHERE id = $4
	`

	result, err := r.db.ExecContext(ctx, query, run.Status, run.FinishedAt, run.ReportPath, run.ID)
	if err != nil {
		return fmt.Errorf("failed to finish run: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("%w: %s", ErrRunNotFound, run.ID)
	}

	return nil
}

// GetRun retrieves a run together with its case results in execution order
func (r *RunRepository) GetRun(ctx context.Context, id string) (*models.Run, error) {
	// Run ids are UUIDs; anything else cannot match a row.
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}

	query := `
		SELECT id, base_url, status, started_at, finished_at, COALESCE(report_path, '')
		FROM runs
		WHERE id = $1
	`

	run, err := scanRun(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}

	cases, err := r.caseResults(ctx, id)
	if err != nil {
		return nil, err
	}
	run.Cases = cases

	return run, nil
}

// ListRuns returns the most recent runs, newest first, without case results
func (r *RunRepository) ListRuns(ctx context.Context, limit int) ([]models.Run, error) {
	query := `
		SELECT id, base_url, status, started_at, finished_at, COALESCE(report_path, '')
		FROM runs
		ORDER BY started_at DESC
		LIMIT $1
	`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []models.Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, *run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}

	return runs, nil
}

func (r *RunRepository) caseResults(ctx context.Context, runID string) ([]models.CaseResult, error) {
	query := `
		SELECT case_id, title, status, started_at, duration_ms, steps,
		       COALESCE(error, ''), COALESCE(screenshot, '')
		FROM case_results
		WHERE run_id = $1
		ORDER BY position
	`

	rows, err := r.db.QueryContext(ctx, query, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to get case results: %w", err)
	}
	defer rows.Close()

	var cases []models.CaseResult
	for rows.Next() {
		var (
			c          models.CaseResult
			durationMS int64
			steps      []byte
		)
		err := rows.Scan(
			&c.CaseID,
			&c.Title,
			&c.Status,
			&c.StartedAt,
			&durationMS,
			&steps,
			&c.Error,
			&c.Screenshot,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan case result: %w", err)
		}

		c.Duration = time.Duration(durationMS) * time.Millisecond
		if err := json.Unmarshal(steps, &c.Steps); err != nil {
			return nil, fmt.Errorf("failed to decode steps of %s: %w", c.CaseID, err)
		}
		cases = append(cases, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to get case results: %w", err)
	}

	return cases, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (*models.Run, error) {
	run := &models.Run{}
	var finishedAt sql.NullTime

	err := row.Scan(
		&run.ID,
		&run.BaseURL,
		&run.Status,
		&run.StartedAt,
		&finishedAt,
		&run.ReportPath,
	)
	if err != nil {
		return nil, err
	}

	if finishedAt.Valid {
		t := finishedAt.Time
		run.FinishedAt = &t
	}

	return run, nil
}

func stepsOrEmpty(steps []models.StepResult) []models.StepResult {
	if steps == nil {
		return []models.StepResult{}
	}
	return steps
}
