package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// DefaultBaseURL is the public demo shop the suite targets.
const DefaultBaseURL = "https://automationexercise.com"

// RunnerConfig holds browser and artifact settings for a suite run
type RunnerConfig struct {
	BaseURL             string
	ViewportWidth       int
	ViewportHeight      int
	DefaultTimeout      time.Duration
	PollInterval        time.Duration
	Headless            bool
	SlowMo              time.Duration
	VideoDir            string
	ScreenshotOnFailure bool
	ArtifactDir         string
	ReportDir           string
	// Seed fixes generated test data; zero draws a fresh seed per run.
	Seed uint64
}

// LoadRunnerConfig loads runner configuration from environment variables.
// Unset variables fall back to the defaults the suite was tuned against.
func LoadRunnerConfig(getenv func(string) string) (*RunnerConfig, error) {
	config := &RunnerConfig{
		BaseURL:             strings.TrimRight(valueOr(getenv("BASE_URL"), DefaultBaseURL), "/"),
		VideoDir:            getenv("VIDEO_DIR"),
		ArtifactDir:         valueOr(getenv("ARTIFACT_DIR"), "reports/screenshots"),
		ReportDir:           valueOr(getenv("REPORT_DIR"), "reports/mochawesome"),
		ScreenshotOnFailure: true,
		Headless:            true,
	}

	var err error
	if config.ViewportWidth, err = intOr(getenv, "VIEWPORT_WIDTH", 1191); err != nil {
		return nil, err
	}
	if config.ViewportHeight, err = intOr(getenv, "VIEWPORT_HEIGHT", 961); err != nil {
		return nil, err
	}
	if config.DefaultTimeout, err = durationOr(getenv, "DEFAULT_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}
	if config.PollInterval, err = durationOr(getenv, "POLL_INTERVAL", 250*time.Millisecond); err != nil {
		return nil, err
	}
	if config.SlowMo, err = durationOr(getenv, "SLOW_MO", 0); err != nil {
		return nil, err
	}
	if config.Headless, err = boolOr(getenv, "HEADLESS", true); err != nil {
		return nil, err
	}
	if config.ScreenshotOnFailure, err = boolOr(getenv, "SCREENSHOT_ON_FAILURE", true); err != nil {
		return nil, err
	}
	if raw := getenv("SEED"); raw != "" {
		if config.Seed, err = strconv.ParseUint(raw, 10, 64); err != nil {
			return nil, fmt.Errorf("SEED: invalid seed %q: %w", raw, err)
		}
	}

	// Validate
	u, err := url.Parse(config.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("BASE_URL must be an absolute URL, got %q", config.BaseURL)
	}
	if config.ViewportWidth <= 0 || config.ViewportHeight <= 0 {
		return nil, fmt.Errorf("viewport must be positive, got %dx%d", config.ViewportWidth, config.ViewportHeight)
	}
	if config.DefaultTimeout <= 0 {
		return nil, fmt.Errorf("DEFAULT_TIMEOUT must be positive")
	}
	if config.PollInterval <= 0 || config.PollInterval > config.DefaultTimeout {
		return nil, fmt.Errorf("POLL_INTERVAL must be positive and not exceed DEFAULT_TIMEOUT")
	}

	return config, nil
}

// URL resolves a site-relative path against the base URL
func (c *RunnerConfig) URL(path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.BaseURL + path
}

func valueOr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func intOr(getenv func(string) string, key string, fallback int) (int, error) {
	raw := getenv(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid integer %q: %w", key, raw, err)
	}
	return v, nil
}

func durationOr(getenv func(string) string, key string, fallback time.Duration) (time.Duration, error) {
	raw := getenv(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid duration %q: %w", key, raw, err)
	}
	return v, nil
}

func boolOr(getenv func(string) string, key string, fallback bool) (bool, error) {
	raw := getenv(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%s: invalid boolean %q: %w", key, raw, err)
	}
	return v, nil
}
