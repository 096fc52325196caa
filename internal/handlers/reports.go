package handlers

import (
	"html/template"
	"net/http"

	"github.com/automationexercise/storefront-e2e/internal/report"
	"go.uber.org/zap"
)

const reportIndexTemplate = `<!DOCTYPE html>
<html>
<head><title>Storefront e2e reports</title></head>
<body>
<h1>Reports</h1>
{{if .}}<ul>
{{range .}}<li><a href="/reports/{{.}}">{{.}}</a></li>
{{end}}</ul>{{else}}<p>No reports yet.</p>{{end}}
</body>
</html>
`

// ReportIndexHandler lists the JSON reports in a directory, newest first
type ReportIndexHandler struct {
	template *template.Template
	dir      string
	logger   *zap.Logger
}

// NewReportIndexHandler creates a new ReportIndexHandler
func NewReportIndexHandler(dir string, logger *zap.Logger) (*ReportIndexHandler, error) {
	tmpl, err := template.New("reports").Parse(reportIndexTemplate)
	if err != nil {
		return nil, err
	}

	return &ReportIndexHandler{
		template: tmpl,
		dir:      dir,
		logger:   logger,
	}, nil
}

// ServeHTTP handles the GET / request
func (h *ReportIndexHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	names, err := report.List(h.dir)
	if err != nil {
		h.logger.Error("listing reports", zap.String("dir", h.dir), zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.template.Execute(w, names); err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
}
