package handlers

import (
	"net/http"
	"strings"

	"docuchat-ai/internal/contextutil"
)

// IngestHandler handles HTTP requests that trigger an ingestion pass.
type IngestHandler struct {
	runner IngestRunner
}

// NewIngestHandler creates a new IngestHandler.
func NewIngestHandler(runner IngestRunner) *IngestHandler {
	return &IngestHandler{runner: runner}
}

// ServeHTTP runs a synchronous ingestion pass over the documents folder and
// returns the resulting report. With ?force=true the document ledger is
// reset first so every file is re-indexed.
//
// swagger:route POST /api/v1/ingest runIngestion
//
// # Ingest the documents folder
//
// ---
// produces:
// - application/json
// parameters:
//   - in: query
//     name: force
//     type: boolean
//     description: Re-index every document even if unchanged
//     required: false
//
// responses:
//
//	'200':
//	  description: Ingestion report
//	'500':
//	  description: Ingestion failed
//	  schema:
//	    "$ref": "#/definitions/ErrorResponse"
func (h *IngestHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodPost {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	force := strings.EqualFold(r.URL.Query().Get("force"), "true")

	report, err := h.runner.Run(ctx, force)
	if err != nil {
		logger.ErrorContext(ctx, "ingestion failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Ingestion failed")
		return
	}

	logger.InfoContext(ctx, "ingestion finished",
		"found", report.DocumentsFound,
		"indexed", report.DocumentsIndexed,
		"skipped", report.DocumentsSkipped,
		"failed", report.DocumentsFailed,
	)

	writeJSON(w, http.StatusOK, report)
}
