package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/automationexercise/storefront-e2e/internal/models"
)

// List bounds for ListRuns
const (
	DefaultListLimit = 20
	MaxListLimit     = 100
)

// ErrRunStillRunning is returned when finishing a run that has not been closed
var ErrRunStillRunning = errors.New("run is still running")

// RunRepository defines the interface for run persistence
type RunRepository interface {
	CreateRun(ctx context.Context, run *models.Run) error
	SaveCaseResult(ctx context.Context, runID string, position int, result models.CaseResult) error
	FinishRun(ctx context.Context, run *models.Run) error
	GetRun(ctx context.Context, id string) (*models.Run, error)
	ListRuns(ctx context.Context, limit int) ([]models.Run, error)
}

// HistoryService records suite runs and serves them back
type HistoryService interface {
	StartRun(ctx context.Context, run *models.Run) error
	RecordCase(ctx context.Context, run *models.Run, result models.CaseResult) error
	FinishRun(ctx context.Context, run *models.Run) error
	GetRun(ctx context.Context, id string) (*models.Run, error)
	ListRuns(ctx context.Context, limit int) ([]models.Run, error)
}

// HistoryServiceImpl implements HistoryService
type HistoryServiceImpl struct {
	runRepo RunRepository
}

// NewHistoryService creates a new history service
func NewHistoryService(runRepo RunRepository) HistoryService {
	return &HistoryServiceImpl{
		runRepo: runRepo,
	}
}

// StartRun persists a freshly started run
func (s *HistoryServiceImpl) StartRun(ctx context.Context, run *models.Run) error {
	if run.Status != models.RunStatusRunning {
		return fmt.Errorf("%w: cannot start %s run", models.ErrInvalidStatusTransition, run.Status)
	}

	if err := s.runRepo.CreateRun(ctx, run); err != nil {
		return fmt.Errorf("failed to start run: %w", err)
	}
	return nil
}

// RecordCase appends result to run and stores it at its position
func (s *HistoryServiceImpl) RecordCase(ctx context.Context, run *models.Run, result models.CaseResult) error {
	if err := run.AddCase(result); err != nil {
		return err
	}

	if err := s.runRepo.SaveCaseResult(ctx, run.ID, len(run.Cases)-1, result); err != nil {
		return fmt.Errorf("failed to record case: %w", err)
	}
	return nil
}

// FinishRun stores the final state of a run closed with models.Run.Finish
func (s *HistoryServiceImpl) FinishRun(ctx context.Context, run *models.Run) error {
	if run.Status == models.RunStatusRunning {
		return ErrRunStillRunning
	}

	if err := s.runRepo.FinishRun(ctx, run); err != nil {
		return fmt.Errorf("failed to finish run: %w", err)
	}
	return nil
}

// GetRun retrieves a run with its cases
func (s *HistoryServiceImpl) GetRun(ctx context.Context, id string) (*models.Run, error) {
	run, err := s.runRepo.GetRun(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return run, nil
}

// ListRuns returns recent runs, newest first. A non-positive limit means
// DefaultListLimit; larger limits are capped at MaxListLimit.
func (s *HistoryServiceImpl) ListRuns(ctx context.Context, limit int) ([]models.Run, error) {
	switch {
	case limit <= 0:
		limit = DefaultListLimit
	case limit > MaxListLimit:
		limit = MaxListLimit
	}

	runs, err := s.runRepo.ListRuns(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	if runs == nil {
		runs = []models.Run{}
	}
	return runs, nil
}
