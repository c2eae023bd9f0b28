package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"docuchat-ai/internal/contextutil"
)

// HealthHandler handles HTTP requests for health checks.
type HealthHandler struct {
	admin              IndexAdmin
	healthCheckTimeout time.Duration
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(admin IndexAdmin) *HealthHandler {
	return &HealthHandler{
		admin:              admin,
		healthCheckTimeout: 5 * time.Second,
	}
}

// HealthResponse represents the health check response.
//
// swagger:model HealthResponse
type HealthResponse struct {
	// Overall health status: "healthy" or "unhealthy"
	Status string `json:"status"`

	// Timestamp of the health check
	Timestamp string `json:"timestamp"`

	// Individual check results
	Checks map[string]string `json:"checks"`

	// List of issues (only present if status is unhealthy)
	Issues []string `json:"issues,omitempty"`
}

// ServeHTTP checks the system and its dependencies. Returns 200 OK when
// healthy, 503 Service Unavailable otherwise.
//
// swagger:route GET /api/health healthCheck
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodGet {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	checkCtx, cancel := context.WithTimeout(ctx, h.healthCheckTimeout)
	defer cancel()

	checks := make(map[string]string)
	var issues []string

	if h.checkIndex(checkCtx, logger) {
		checks["search_index"] = "ok"
	} else {
		checks["search_index"] = "error"
		issues = append(issues, "search_index_unavailable")
	}

	// The model APIs are not probed here; a failed call would add latency
	// and the search index is the critical dependency.

	status := "healthy"
	httpStatus := http.StatusOK
	if len(issues) > 0 {
		status = "unhealthy"
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    checks,
		Issues:    issues,
	})
}

// checkIndex checks that the search index collection is reachable.
func (h *HealthHandler) checkIndex(ctx context.Context, logger *slog.Logger) bool {
	if _, err := h.admin.Stats(ctx); err != nil {
		logger.WarnContext(ctx, "search index health check failed", "error", err)
		return false
	}
	return true
}
