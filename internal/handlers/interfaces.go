package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"docuchat-ai/internal/index"
	"docuchat-ai/internal/ingest"
)

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_ingest_runner.go -package=mocks docuchat-ai/internal/handlers IngestRunner
//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_index_admin.go -package=mocks docuchat-ai/internal/handlers IndexAdmin

// IngestRunner runs a full ingestion pass over the documents folder.
type IngestRunner interface {
	Run(ctx context.Context, force bool) (ingest.Report, error)
}

// IndexAdmin exposes the maintenance surface of the vector index.
type IndexAdmin interface {
	Stats(ctx context.Context) (index.Stats, error)
	Clear(ctx context.Context) error
	DeleteCollection(ctx context.Context) error
}

// ErrorResponse represents an error response.
//
// swagger:model ErrorResponse
type ErrorResponse struct {
	Error string `json:"error"`
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, ErrorResponse{Error: message})
}
