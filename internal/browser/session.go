package browser

import (
	"errors"
	"fmt"
	"os"

	"github.com/automationexercise/storefront-e2e/internal/config"
	"github.com/playwright-community/playwright-go"
	"go.uber.org/zap"
)

// Install downloads the Chromium build playwright-go drives
func Install() error {
	if err := playwright.Install(&playwright.RunOptions{Browsers: []string{"chromium"}}); err != nil {
		return fmt.Errorf("install chromium: %w", err)
	}
	return nil
}

// Session owns the playwright driver process and one browser
type Session struct {
	pw      *playwright.Playwright
	browser playwright.Browser
	cfg     *config.RunnerConfig
	logger  *zap.Logger
}

// Launch starts playwright and a Chromium instance configured by cfg
func Launch(cfg *config.RunnerConfig, logger *zap.Logger) (*Session, error) {
	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("start playwright: %w", err)
	}

	opts := playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(cfg.Headless),
	}
	if cfg.SlowMo > 0 {
		opts.SlowMo = playwright.Float(float64(cfg.SlowMo.Milliseconds()))
	}

	browser, err := pw.Chromium.Launch(opts)
	if err != nil {
		_ = pw.Stop()
		return nil, fmt.Errorf("launch chromium: %w", err)
	}

	logger.Info("browser launched",
		zap.String("version", browser.Version()),
		zap.Bool("headless", cfg.Headless))

	return &Session{pw: pw, browser: browser, cfg: cfg, logger: logger}, nil
}

// NewTab opens an isolated browser context and page. Every case gets its own
// tab so cookies and cart state never leak between cases.
func (s *Session) NewTab() (*Tab, error) {
	opts := playwright.BrowserNewContextOptions{
		Viewport: &playwright.Size{
			Width:  s.cfg.ViewportWidth,
			Height: s.cfg.ViewportHeight,
		},
	}
	if s.cfg.VideoDir != "" {
		if err := os.MkdirAll(s.cfg.VideoDir, 0o755); err != nil {
			return nil, fmt.Errorf("create video dir: %w", err)
		}
		opts.RecordVideo = &playwright.RecordVideo{Dir: s.cfg.VideoDir}
	}

	bctx, err := s.browser.NewContext(opts)
	if err != nil {
		return nil, fmt.Errorf("create browser context: %w", err)
	}
	timeout := float64(s.cfg.DefaultTimeout.Milliseconds())
	bctx.SetDefaultTimeout(timeout)
	bctx.SetDefaultNavigationTimeout(timeout * 3)

	page, err := bctx.NewPage()
	if err != nil {
		_ = bctx.Close()
		return nil, fmt.Errorf("create page: %w", err)
	}

	return &Tab{
		context: bctx,
		driver:  NewPageDriver(page, s.cfg.URL, s.cfg.DefaultTimeout),
	}, nil
}

// Close shuts the browser and the playwright driver down
func (s *Session) Close() error {
	var errs []error
	if err := s.browser.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close browser: %w", err))
	}
	if err := s.pw.Stop(); err != nil {
		errs = append(errs, fmt.Errorf("stop playwright: %w", err))
	}
	return errors.Join(errs...)
}

// Tab is one browser context with a single page
type Tab struct {
	context playwright.BrowserContext
	driver  *PageDriver
}

// Driver returns the page driver for this tab
func (t *Tab) Driver() *PageDriver {
	return t.driver
}

// Close closes the context, flushing any recorded video
func (t *Tab) Close() error {
	if err := t.context.Close(); err != nil {
		return fmt.Errorf("close browser context: %w", err)
	}
	return nil
}
