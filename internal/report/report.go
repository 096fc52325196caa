// Package report writes one JSON file per suite run in the mochawesome
// layout CI dashboards already read.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/automationexercise/storefront-e2e/internal/models"
)

const (
	filePrefix = "mochawesome_"
	fileExt    = ".json"
	// MMDDYYYY_HHMMSS
	stampLayout = "01022006_150405"
)

// Stats summarises a run
type Stats struct {
	Suites   int       `json:"suites"`
	Tests    int       `json:"tests"`
	Passes   int       `json:"passes"`
	Failures int       `json:"failures"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	Duration int64     `json:"duration"`
}

// TestError is the failure detail of a test
type TestError struct {
	Message string `json:"message"`
}

// Test is one case of the run
type Test struct {
	Title      string              `json:"title"`
	FullTitle  string              `json:"fullTitle"`
	State      string              `json:"state"`
	Pass       bool                `json:"pass"`
	Fail       bool                `json:"fail"`
	Duration   int64               `json:"duration"`
	Steps      []models.StepResult `json:"steps,omitempty"`
	Screenshot string              `json:"screenshot,omitempty"`
	Err        *TestError          `json:"err,omitempty"`
}

// Suite groups the tests of a run
type Suite struct {
	Title string `json:"title"`
	Tests []Test `json:"tests"`
}

// Report is the document written to disk
type Report struct {
	RunID   string  `json:"runId"`
	BaseURL string  `json:"baseUrl"`
	Stats   Stats   `json:"stats"`
	Results []Suite `json:"results"`
}

// Build converts a finished run into a report
func Build(run *models.Run) Report {
	end := run.StartedAt
	if run.FinishedAt != nil {
		end = *run.FinishedAt
	}

	suite := Suite{Title: "storefront e2e"}
	stats := Stats{
		Suites:   1,
		Start:    run.StartedAt,
		End:      end,
		Duration: end.Sub(run.StartedAt).Milliseconds(),
	}

	for _, c := range run.Cases {
		t := Test{
			Title:      c.Title,
			FullTitle:  c.CaseID + " - " + c.Title,
			State:      string(c.Status),
			Pass:       c.Passed(),
			Fail:       !c.Passed(),
			Duration:   c.Duration.Milliseconds(),
			Steps:      c.Steps,
			Screenshot: c.Screenshot,
		}
		if c.Error != "" {
			t.Err = &TestError{Message: c.Error}
		}

		stats.Tests++
		if c.Passed() {
			stats.Passes++
		} else {
			stats.Failures++
		}
		suite.Tests = append(suite.Tests, t)
	}

	return Report{
		RunID:   run.ID,
		BaseURL: run.BaseURL,
		Stats:   stats,
		Results: []Suite{suite},
	}
}

// Writer stores reports under Dir
type Writer struct {
	Dir string
	now func() time.Time
}

// NewWriter returns a writer for dir
func NewWriter(dir string) *Writer {
	return &Writer{Dir: dir, now: time.Now}
}

// Write stores run as mochawesome_MMDDYYYY_HHMMSS.json and returns the
// path. An existing file is never replaced; a numeric suffix is added
// instead.
func (w *Writer) Write(run *models.Run) (string, error) {
	if err := os.MkdirAll(w.Dir, 0o755); err != nil {
		return "", fmt.Errorf("create report dir: %w", err)
	}

	data, err := json.MarshalIndent(Build(run), "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode report: %w", err)
	}

	base := filePrefix + w.now().Format(stampLayout)
	for i := 0; ; i++ {
		name := base + fileExt
		if i > 0 {
			name = fmt.Sprintf("%s_%d%s", base, i, fileExt)
		}
		path := filepath.Join(w.Dir, name)

		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("create report: %w", err)
		}

		_, werr := f.Write(data)
		cerr := f.Close()
		if err := errors.Join(werr, cerr); err != nil {
			return "", fmt.Errorf("write report %s: %w", path, err)
		}
		return path, nil
	}
}

// List returns the report file names in dir, newest name first
func List(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read report dir: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !IsReportName(e.Name()) {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Slice(names, func(i, j int) bool {
		si, ni := stampOf(names[i])
		sj, nj := stampOf(names[j])
		if si != sj {
			return si > sj
		}
		return ni > nj
	})
	return names, nil
}

// IsReportName reports whether name looks like a file Write produced
func IsReportName(name string) bool {
	return strings.HasPrefix(name, filePrefix) && strings.HasSuffix(name, fileExt) &&
		!strings.ContainsAny(name, `/\`)
}

// stampOf turns the MMDDYYYY_HHMMSS stamp into a sortable YYYYMMDDHHMMSS
// key and returns the numeric suffix Write adds on collisions, zero if none.
func stampOf(name string) (string, int) {
	stamp := strings.TrimSuffix(strings.TrimPrefix(name, filePrefix), fileExt)
	if len(stamp) < len(stampLayout) {
		return stamp, 0
	}
	key := stamp[4:8] + stamp[0:4] + stamp[9:15]
	seq, err := strconv.Atoi(strings.TrimPrefix(stamp[15:], "_"))
	if err != nil {
		return key + stamp[15:], 0
	}
	return key, seq
}
