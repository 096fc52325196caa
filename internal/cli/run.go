package cli

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"time"

	"github.com/automationexercise/storefront-e2e/internal/browser"
	"github.com/automationexercise/storefront-e2e/internal/config"
	"github.com/automationexercise/storefront-e2e/internal/fixtures"
	"github.com/automationexercise/storefront-e2e/internal/flows"
	"github.com/automationexercise/storefront-e2e/internal/models"
	"github.com/automationexercise/storefront-e2e/internal/pages"
	"github.com/automationexercise/storefront-e2e/internal/report"
	"github.com/automationexercise/storefront-e2e/internal/services"
	"github.com/automationexercise/storefront-e2e/internal/testdata"
	"github.com/automationexercise/storefront-e2e/internal/wait"
	"go.uber.org/zap"
)

// Suite run errors
var (
	ErrNoCases     = errors.New("no test cases selected")
	ErrCasesFailed = errors.New("test cases failed")
)

// TabOpener opens one isolated page per case
type TabOpener interface {
	OpenTab() (driver browser.Driver, closeTab func() error, err error)
}

// SessionTabs opens tabs on a launched browser session
type SessionTabs struct {
	Session *browser.Session
}

// OpenTab opens a fresh browser context and page
func (s SessionTabs) OpenTab() (browser.Driver, func() error, error) {
	tab, err := s.Session.NewTab()
	if err != nil {
		return nil, nil, err
	}
	return tab.Driver(), tab.Close, nil
}

// RunDependencies holds everything a suite run needs
type RunDependencies struct {
	Config   *config.RunnerConfig
	Logger   *zap.Logger
	Tabs     TabOpener
	Fixtures *fixtures.Set
	Reports  *report.Writer
	// History is optional; nil runs without recording history.
	History services.HistoryService
	Now     func() time.Time
}

// RunSuite executes cases in order, one tab each, writes the JSON report and
// returns the finished run. It returns ErrCasesFailed when any case failed
// and the context error when ctx ended the run early.
func RunSuite(ctx context.Context, deps RunDependencies, cases []flows.Case) (*models.Run, error) {
	if len(cases) == 0 {
		return nil, ErrNoCases
	}

	r := newSuiteRunner(deps)

	run, err := models.NewRun(deps.Config.BaseURL, r.now())
	if err != nil {
		return nil, err
	}
	r.logger.Info("suite run started",
		zap.String("run_id", run.ID),
		zap.String("base_url", run.BaseURL),
		zap.Int("cases", len(cases)))

	if r.history != nil {
		if err := r.history.StartRun(ctx, run); err != nil {
			r.logger.Warn("run history disabled for this run", zap.Error(err))
			r.history = nil
		}
	}

	var interrupted error
	for _, c := range cases {
		if err := ctx.Err(); err != nil {
			interrupted = fmt.Errorf("suite run interrupted: %w", err)
			r.logger.Warn("suite run interrupted", zap.Int("skipped", len(cases)-len(run.Cases)), zap.Error(err))
			break
		}

		result := r.runCase(ctx, run.ID, c)
		if err := r.record(ctx, run, result); err != nil {
			return run, err
		}
	}

	if err := run.Finish(r.now()); err != nil {
		return run, err
	}

	if deps.Reports != nil {
		path, err := deps.Reports.Write(run)
		if err != nil {
			r.logger.Error("writing report", zap.Error(err))
		} else {
			run.ReportPath = path
			r.logger.Info("report written", zap.String("path", path))
		}
	}

	if r.history != nil {
		// Store the final state even when ctx was cancelled mid-run.
		if err := r.history.FinishRun(context.WithoutCancel(ctx), run); err != nil {
			r.logger.Warn("recording run result", zap.Error(err))
		}
	}

	failed := run.Failed()
	r.logger.Info("suite run finished",
		zap.String("run_id", run.ID),
		zap.String("status", string(run.Status)),
		zap.Int("passed", len(run.Cases)-len(failed)),
		zap.Int("failed", len(failed)),
		zap.Duration("took", run.Duration()))

	var errs []error
	if len(failed) > 0 {
		errs = append(errs, fmt.Errorf("%w: %d of %d", ErrCasesFailed, len(failed), len(run.Cases)))
	}
	if interrupted != nil {
		errs = append(errs, interrupted)
	}
	return run, errors.Join(errs...)
}

type suiteRunner struct {
	cfg      *config.RunnerConfig
	logger   *zap.Logger
	tabs     TabOpener
	fixtures *fixtures.Set
	history  services.HistoryService
	now      func() time.Time
}

func newSuiteRunner(deps RunDependencies) *suiteRunner {
	r := &suiteRunner{
		cfg:      deps.Config,
		logger:   deps.Logger,
		tabs:     deps.Tabs,
		fixtures: deps.Fixtures,
		history:  deps.History,
		now:      deps.Now,
	}
	if r.logger == nil {
		r.logger = zap.NewNop()
	}
	if r.now == nil {
		r.now = time.Now
	}
	return r
}

// runCase runs c in its own tab. Failures are captured in the result. When
// ctx ends, the case stops at its next step or wait and its cleanup runs.
func (r *suiteRunner) runCase(ctx context.Context, runID string, c flows.Case) models.CaseResult {
	logger := r.logger.With(zap.String("case", c.ID))
	started := r.now()
	result := models.CaseResult{
		CaseID:    c.ID,
		Title:     c.Title,
		Status:    models.CaseStatusPassed,
		StartedAt: started,
	}

	driver, closeTab, err := r.tabs.OpenTab()
	if err != nil {
		result.Status = models.CaseStatusFailed
		result.Error = fmt.Sprintf("open tab: %v", err)
		result.Duration = r.now().Sub(started)
		logger.Error("case failed", zap.Error(err))
		return result
	}
	defer func() {
		if err := closeTab(); err != nil {
			logger.Warn("closing tab", zap.Error(err))
		}
	}()

	poller := wait.New(r.cfg.DefaultTimeout, r.cfg.PollInterval)
	env := flows.Env{
		Context:  ctx,
		Site:     pages.New(driver, poller),
		Fixtures: r.fixtures,
		Data:     testdata.New(r.cfg.Seed),
		Poller:   poller,
		Logger:   r.logger,
	}
	if r.cfg.ScreenshotOnFailure {
		env.OnFailure = func(caseID string, _ error) {
			path := screenshotPath(r.cfg.ArtifactDir, runID, caseID)
			if err := driver.Screenshot(path); err != nil {
				logger.Warn("failure screenshot", zap.Error(err))
				return
			}
			result.Screenshot = path
		}
	}

	j, err := flows.RunCase(c, env)
	result.Steps = j.Steps()
	result.Duration = r.now().Sub(started)
	if err != nil {
		result.Status = models.CaseStatusFailed
		result.Error = err.Error()
		logger.Error("case failed", zap.Duration("took", result.Duration), zap.Error(err))
		return result
	}

	logger.Info("case passed", zap.Duration("took", result.Duration))
	return result
}

// record adds result to run, storing it in history when enabled. A history
// write failure disables history for the rest of the run.
func (r *suiteRunner) record(ctx context.Context, run *models.Run, result models.CaseResult) error {
	if r.history == nil {
		return run.AddCase(result)
	}

	n := len(run.Cases)
	err := r.history.RecordCase(ctx, run, result)
	if err == nil {
		return nil
	}
	if len(run.Cases) == n {
		return err
	}

	r.logger.Warn("run history disabled for this run", zap.String("case", result.CaseID), zap.Error(err))
	r.history = nil
	return nil
}

var unsafeName = regexp.MustCompile(`[^A-Za-z0-9_-]+`)

func screenshotPath(dir, runID, caseID string) string {
	prefix := runID
	if len(prefix) > 8 {
		prefix = prefix[:8]
	}
	return filepath.Join(dir, fmt.Sprintf("%s_%s.png", prefix, unsafeName.ReplaceAllString(caseID, "_")))
}
