// Package flows sequences page objects into the shop's numbered test cases.
package flows

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/automationexercise/storefront-e2e/internal/fixtures"
	"github.com/automationexercise/storefront-e2e/internal/models"
	"github.com/automationexercise/storefront-e2e/internal/pages"
	"github.com/automationexercise/storefront-e2e/internal/testdata"
	"github.com/automationexercise/storefront-e2e/internal/wait"
)

// Env is what a flow works with
type Env struct {
	// Context ends the flow early once done. Teardown still runs.
	Context  context.Context
	Site     *pages.Site
	Fixtures *fixtures.Set
	Data     *testdata.Generator
	Poller   wait.Poller
	Logger   *zap.Logger

	// OnFailure, when set, sees a failed flow before its teardown runs.
	OnFailure func(caseID string, err error)
}

// Flow is one scripted user journey
type Flow func(j *Journey) error

type cleanup struct {
	label string
	fn    func() error
}

// Journey runs the steps of one case and owns its teardown
type Journey struct {
	Env
	CaseID string

	logger   *zap.Logger
	steps    []models.StepResult
	cleanups []cleanup
	now      func() time.Time
}

// NewJourney starts a journey for caseID. The poller and site are rebound
// to env.Context so every wait ends with it.
func NewJourney(caseID string, env Env) *Journey {
	logger := env.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	if env.Context == nil {
		env.Context = context.Background()
	}
	j := &Journey{
		Env:    env,
		CaseID: caseID,
		logger: logger.With(zap.String("case", caseID)),
		now:    time.Now,
	}
	j.bind(env.Context)
	return j
}

// bind points the journey's waits at ctx
func (j *Journey) bind(ctx context.Context) {
	j.Context = ctx
	j.Poller = j.Poller.WithContext(ctx)
	if j.Site != nil {
		j.Site = pages.New(j.Site.Driver(), j.Poller)
	}
}

// Step runs fn as the next numbered step. A failure is wrapped with the
// step number and label. Once the context is done no step runs.
func (j *Journey) Step(label string, fn func() error) error {
	n := len(j.steps) + 1
	start := j.now()
	err := j.Context.Err()
	if err == nil {
		err = fn()
	}

	result := models.StepResult{
		Number:   n,
		Label:    label,
		Passed:   err == nil,
		Duration: j.now().Sub(start),
	}
	if err != nil {
		result.Error = err.Error()
		j.steps = append(j.steps, result)
		j.logger.Error("step failed", zap.Int("step", n), zap.String("label", label), zap.Error(err))
		return fmt.Errorf("step %d %q: %w", n, label, err)
	}

	j.steps = append(j.steps, result)
	j.logger.Info("step passed", zap.Int("step", n), zap.String("label", label), zap.Duration("took", result.Duration))
	return nil
}

// Steps returns the recorded step results
func (j *Journey) Steps() []models.StepResult {
	return append([]models.StepResult(nil), j.steps...)
}

// Defer registers a teardown action. Cleanup runs them last-in first-out.
func (j *Journey) Defer(label string, fn func() error) {
	j.cleanups = append(j.cleanups, cleanup{label: label, fn: fn})
}

// Cleanup runs every registered teardown, even after earlier ones fail,
// and joins their errors. Each teardown runs at most once.
func (j *Journey) Cleanup() error {
	var errs []error
	for len(j.cleanups) > 0 {
		c := j.cleanups[len(j.cleanups)-1]
		j.cleanups = j.cleanups[:len(j.cleanups)-1]

		if err := c.fn(); err != nil {
			j.logger.Warn("cleanup failed", zap.String("label", c.label), zap.Error(err))
			errs = append(errs, fmt.Errorf("cleanup %q: %w", c.label, err))
			continue
		}
		j.logger.Debug("cleanup done", zap.String("label", c.label))
	}
	return errors.Join(errs...)
}

// Run executes flow and then Cleanup, whatever the flow's outcome. Cleanup
// is not cut short by the journey's context.
func (j *Journey) Run(flow Flow) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("flow panicked: %v", r)
		}
		if err != nil && j.OnFailure != nil {
			j.OnFailure(j.CaseID, err)
		}
		j.bind(context.WithoutCancel(j.Context))
		err = errors.Join(err, j.Cleanup())
	}()
	return flow(j)
}

type stepDef struct {
	label string
	fn    func() error
}

func step(label string, fn func() error) stepDef {
	return stepDef{label: label, fn: fn}
}

// sequence runs steps in order and stops at the first failure
func (j *Journey) sequence(steps ...stepDef) error {
	for _, s := range steps {
		if err := j.Step(s.label, s.fn); err != nil {
			return err
		}
	}
	return nil
}

// all folds several checks into one step body
func all(checks ...func() error) func() error {
	return func() error {
		for _, check := range checks {
			if err := check(); err != nil {
				return err
			}
		}
		return nil
	}
}
