package handlers

import (
	"net/http"

	"docuchat-ai/internal/contextutil"
)

// StatsHandler handles HTTP requests for index statistics.
type StatsHandler struct {
	admin IndexAdmin
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(admin IndexAdmin) *StatsHandler {
	return &StatsHandler{admin: admin}
}

// ServeHTTP returns the current vector count, dimension, and status of the
// search index.
func (h *StatsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodGet {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	stats, err := h.admin.Stats(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "failed to read index stats", "error", err)
		writeError(w, http.StatusServiceUnavailable, "Search index unavailable")
		return
	}

	writeJSON(w, http.StatusOK, stats)
}
