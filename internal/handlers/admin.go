package handlers

import (
	"context"
	"net/http"

	"docuchat-ai/internal/contextutil"
	"docuchat-ai/internal/storage"
)

// AdminHandler handles destructive index maintenance requests. Clearing or
// deleting the index also resets the document ledger so the next ingestion
// pass re-indexes every file instead of skipping by hash.
type AdminHandler struct {
	admin IndexAdmin
	docs  storage.DocumentStore
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(admin IndexAdmin, docs storage.DocumentStore) *AdminHandler {
	return &AdminHandler{admin: admin, docs: docs}
}

// Clear removes every vector from the index but keeps the collection.
//
// swagger:route POST /api/v1/index/clear clearIndex
func (h *AdminHandler) Clear(w http.ResponseWriter, r *http.Request) {
	h.run(w, r, "clear index", h.admin.Clear)
}

// Delete drops the collection entirely.
//
// swagger:route DELETE /api/v1/index deleteIndex
func (h *AdminHandler) Delete(w http.ResponseWriter, r *http.Request) {
	h.run(w, r, "delete index", h.admin.DeleteCollection)
}

func (h *AdminHandler) run(w http.ResponseWriter, r *http.Request, op string, fn func(ctx context.Context) error) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if err := fn(ctx); err != nil {
		logger.ErrorContext(ctx, "index maintenance failed", "op", op, "error", err)
		writeError(w, http.StatusServiceUnavailable, "Search index unavailable")
		return
	}

	if err := h.docs.DeleteAll(ctx); err != nil {
		logger.ErrorContext(ctx, "failed to reset document ledger", "op", op, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to reset document ledger")
		return
	}

	logger.InfoContext(ctx, "index maintenance done", "op", op)
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
