package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/automationexercise/storefront-e2e/internal/repository"
	"github.com/automationexercise/storefront-e2e/internal/services"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// RunsHandler lists recorded suite runs
type RunsHandler struct {
	history services.HistoryService
	logger  *zap.Logger
}

// NewRunsHandler creates a new runs handler
func NewRunsHandler(history services.HistoryService, logger *zap.Logger) *RunsHandler {
	return &RunsHandler{
		history: history,
		logger:  logger,
	}
}

// ServeHTTP handles GET /api/runs?limit=N
func (h *RunsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			sendErrorResponse(w, "limit must be an integer", http.StatusBadRequest)
			return
		}
		limit = v
	}

	runs, err := h.history.ListRuns(r.Context(), limit)
	if err != nil {
		h.logger.Error("listing runs", zap.Error(err))
		sendErrorResponse(w, "Failed to list runs", http.StatusInternalServerError)
		return
	}

	sendJSON(w, h.logger, runs)
}

// RunHandler returns one run with its case results
type RunHandler struct {
	history services.HistoryService
	logger  *zap.Logger
}

// NewRunHandler creates a new run handler
func NewRunHandler(history services.HistoryService, logger *zap.Logger) *RunHandler {
	return &RunHandler{
		history: history,
		logger:  logger,
	}
}

// ServeHTTP handles GET /api/runs/{id}
func (h *RunHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id := r.PathValue("id")
	if id == "" {
		sendErrorResponse(w, "Missing run ID", http.StatusBadRequest)
		return
	}
	if _, err := uuid.Parse(id); err != nil {
		sendErrorResponse(w, "Run not found", http.StatusNotFound)
		return
	}

	run, err := h.history.GetRun(r.Context(), id)
	if errors.Is(err, repository.ErrRunNotFound) {
		sendErrorResponse(w, "Run not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.Error("getting run", zap.String("run_id", id), zap.Error(err))
		sendErrorResponse(w, "Failed to get run", http.StatusInternalServerError)
		return
	}

	sendJSON(w, h.logger, run)
}

func sendJSON(w http.ResponseWriter, logger *zap.Logger, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("encoding response", zap.Error(err))
	}
}

// sendErrorResponse sends a JSON error response
func sendErrorResponse(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
	})
}
