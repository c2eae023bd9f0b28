package handlers

import (
	"net/http"
	"time"

	"docuchat-ai/internal/contextutil"
	"docuchat-ai/internal/storage"
)

// DocumentsHandler handles HTTP requests for the ingested document ledger.
type DocumentsHandler struct {
	docs storage.DocumentStore
}

// NewDocumentsHandler creates a new DocumentsHandler.
func NewDocumentsHandler(docs storage.DocumentStore) *DocumentsHandler {
	return &DocumentsHandler{docs: docs}
}

// DocumentResponse represents one ingested document in the HTTP response.
//
// swagger:model DocumentResponse
type DocumentResponse struct {
	// Name of the source document file
	Filename string `json:"filename"`

	// Number of chunks produced at the last ingestion
	ChunkCount int `json:"chunk_count"`

	// When the document was last indexed, RFC 3339
	IndexedAt time.Time `json:"indexed_at"`
}

// ServeHTTP lists the documents currently recorded in the ingestion ledger,
// ordered by name.
func (h *DocumentsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodGet {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	records, err := h.docs.ListAll(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "failed to list documents", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to list documents")
		return
	}

	documents := make([]DocumentResponse, len(records))
	for i, record := range records {
		documents[i] = DocumentResponse{
			Filename:   record.Name,
			ChunkCount: record.ChunkCount,
			IndexedAt:  record.IndexedAt,
		}
	}

	writeJSON(w, http.StatusOK, documents)
}
