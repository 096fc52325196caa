package models

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/google/uuid"
)

// RunStatus represents the lifecycle of a suite run
type RunStatus string

// Run statuses
const (
	RunStatusRunning RunStatus = "running"
	RunStatusPassed  RunStatus = "passed"
	RunStatusFailed  RunStatus = "failed"
)

// CaseStatus is the outcome of one test case
type CaseStatus string

// Case statuses
const (
	CaseStatusPassed CaseStatus = "passed"
	CaseStatusFailed CaseStatus = "failed"
)

// Run errors
var (
	ErrInvalidBaseURL          = errors.New("run base URL must be absolute")
	ErrInvalidStatusTransition = errors.New("invalid run status transition")
	ErrEmptyCaseID             = errors.New("case id cannot be empty")
)

// StepResult is one labelled step of a case
type StepResult struct {
	Number   int           `json:"number"`
	Label    string        `json:"label"`
	Passed   bool          `json:"passed"`
	Duration time.Duration `json:"duration"`
	Error    string        `json:"error,omitempty"`
}

// CaseResult is the outcome of one case within a run
type CaseResult struct {
	CaseID     string        `json:"caseId"`
	Title      string        `json:"title"`
	Status     CaseStatus    `json:"status"`
	StartedAt  time.Time     `json:"startedAt"`
	Duration   time.Duration `json:"duration"`
	Steps      []StepResult  `json:"steps,omitempty"`
	Error      string        `json:"error,omitempty"`
	Screenshot string        `json:"screenshot,omitempty"`
}

// Passed reports whether the case passed
func (c CaseResult) Passed() bool {
	return c.Status == CaseStatusPassed
}

// Run is one execution of the suite against a base URL
type Run struct {
	ID         string       `json:"id"`
	BaseURL    string       `json:"baseUrl"`
	Status     RunStatus    `json:"status"`
	StartedAt  time.Time    `json:"startedAt"`
	FinishedAt *time.Time   `json:"finishedAt,omitempty"`
	ReportPath string       `json:"reportPath,omitempty"`
	Cases      []CaseResult `json:"cases,omitempty"`
}

// NewRun starts a run against baseURL
func NewRun(baseURL string, now time.Time) (*Run, error) {
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBaseURL, baseURL)
	}

	return &Run{
		ID:        uuid.New().String(),
		BaseURL:   baseURL,
		Status:    RunStatusRunning,
		StartedAt: now,
	}, nil
}

// AddCase appends a case result to a running run
func (r *Run) AddCase(result CaseResult) error {
	if r.Status != RunStatusRunning {
		return fmt.Errorf("%w: cannot add case to %s run", ErrInvalidStatusTransition, r.Status)
	}
	if result.CaseID == "" {
		return ErrEmptyCaseID
	}
	r.Cases = append(r.Cases, result)
	return nil
}

// Finish closes the run, marking it failed when any case failed
func (r *Run) Finish(now time.Time) error {
	if r.Status != RunStatusRunning {
		return fmt.Errorf("%w: run already %s", ErrInvalidStatusTransition, r.Status)
	}

	r.Status = RunStatusPassed
	for _, c := range r.Cases {
		if !c.Passed() {
			r.Status = RunStatusFailed
			break
		}
	}
	r.FinishedAt = &now
	return nil
}

// Failed returns the failed cases
func (r *Run) Failed() []CaseResult {
	var out []CaseResult
	for _, c := range r.Cases {
		if !c.Passed() {
			out = append(out, c)
		}
	}
	return out
}

// Duration returns the wall time of a finished run, or zero while running
func (r *Run) Duration() time.Duration {
	if r.FinishedAt == nil {
		return 0
	}
	return r.FinishedAt.Sub(r.StartedAt)
}
