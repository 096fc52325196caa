package handlers

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zaptest"
)

func TestReportIndexHandler_ServeHTTP(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{
		"mochawesome_01022026_100000.json",
		"mochawesome_03042026_090000.json",
		"notes.txt",
	} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("{}"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	tests := []struct {
		name           string
		method         string
		dir            string
		expectedStatus int
		checkContent   []string
		absentContent  []string
	}{
		{
			name:           "lists reports",
			method:         http.MethodGet,
			dir:            dir,
			expectedStatus: http.StatusOK,
			checkContent: []string{
				`href="/reports/mochawesome_03042026_090000.json"`,
				`href="/reports/mochawesome_01022026_100000.json"`,
			},
			absentContent: []string{"notes.txt"},
		},
		{
			name:           "missing directory",
			method:         http.MethodGet,
			dir:            filepath.Join(dir, "missing"),
			expectedStatus: http.StatusOK,
			checkContent:   []string{"No reports yet."},
		},
		{
			name:           "method not allowed - POST",
			method:         http.MethodPost,
			dir:            dir,
			expectedStatus: http.StatusMethodNotAllowed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, err := NewReportIndexHandler(tt.dir, zaptest.NewLogger(t))
			if err != nil {
				t.Fatalf("Failed to create handler: %v", err)
			}

			req := httptest.NewRequest(tt.method, "/", nil)
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d", tt.expectedStatus, w.Code)
			}

			body := w.Body.String()
			for _, content := range tt.checkContent {
				if !strings.Contains(body, content) {
					t.Errorf("expected response to contain '%s'", content)
				}
			}
			for _, content := range tt.absentContent {
				if strings.Contains(body, content) {
					t.Errorf("expected response not to contain '%s'", content)
				}
			}
		})
	}
}

func TestReportIndexHandler_NewestFirst(t *testing.T) {
	dir := t.TempDir()
	older := "mochawesome_12312025_235959.json"
	newer := "mochawesome_01012026_000000.json"
	for _, name := range []string{older, newer} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("{}"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	handler, err := NewReportIndexHandler(dir, zaptest.NewLogger(t))
	if err != nil {
		t.Fatal(err)
	}

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	body := w.Body.String()
	if strings.Index(body, newer) > strings.Index(body, older) {
		t.Errorf("expected %s listed before %s", newer, older)
	}
}
